package render

import (
	"context"

	"github.com/goliatone/go-blazonry/pkg/heraldry"
)

// Renderer converts a composition into a byte representation (SVG document,
// blazon text, ...). Renderers must be deterministic: identical composition
// and options yield identical output.
type Renderer interface {
	Name() string
	ContentType() string
	Render(ctx context.Context, comp heraldry.Composition, options Options) ([]byte, error)
}
