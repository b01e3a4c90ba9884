package template

import "io"

// Renderer mirrors the github.com/goliatone/go-template engine contract,
// providing the seam document renderers rely on so template engines can be
// swapped in tests.
type Renderer interface {
	Render(name string, data any, out ...io.Writer) (string, error)
	RenderString(templateContent string, data any, out ...io.Writer) (string, error)
}
