// Package assets defines the external asset contracts the render pipeline
// consumes: charge artwork providers and shield outline providers. The
// embedded implementations back the default pipeline; callers can swap in
// their own providers (HTTP catalogs, databases) by satisfying the
// interfaces.
package assets

import (
	"context"
	"fmt"
	"strings"

	"github.com/goliatone/go-blazonry/pkg/geometry"
)

// ChargeArtwork is a recolourable vector symbol. Content is inner SVG markup
// (no <svg> wrapper); ViewBox is the artwork's native coordinate window.
// FillMarker declares the artwork's recolourable region explicitly: every
// fill matching it (case-insensitively, including common aliases of white) is
// substituted with the charge tincture. Declaring the marker instead of
// assuming "white" keeps recolouring from silently breaking on assets that
// use a different convention.
type ChargeArtwork struct {
	ViewBox    string `yaml:"viewBox"`
	Content    string `yaml:"content"`
	FillMarker string `yaml:"fillMarker"`
}

// ChargeProvider fetches charge artwork and names charges in blazon terms.
// Fetch returns a *NotFoundError for unknown ids and a *FetchError when the
// backing store fails. Implementations must be safe for concurrent use.
type ChargeProvider interface {
	Fetch(ctx context.Context, chargeID string) (ChargeArtwork, error)
	BlazonTerm(chargeID, tinctureName string, count int) string
}

// Outline is a shield boundary shape. BoundingBox is the geometric bounding
// box of Path itself, not the document viewBox; the projector maps canonical
// space onto it.
type Outline struct {
	Path        string        `yaml:"path"`
	ViewBox     string        `yaml:"viewBox"`
	BoundingBox geometry.Rect `yaml:"boundingBox"`
}

// AspectRatio returns height/width of the outline's bounding box, the
// non-uniform scale ratio the projector applies. Charges pre-compensate with
// its reciprocal.
func (o Outline) AspectRatio() float64 {
	if o.BoundingBox.Width <= 0 || o.BoundingBox.Height <= 0 {
		return 1
	}
	return o.BoundingBox.Height / o.BoundingBox.Width
}

// OutlineProvider resolves shield outlines. Unrecognised shieldType values
// resolve to the provider's default outline rather than failing; only a
// genuinely unloadable catalog returns an error.
type OutlineProvider interface {
	Load(shieldType string) (Outline, error)
}

// ParseViewBox splits an SVG viewBox attribute into a rectangle.
func ParseViewBox(viewBox string) (geometry.Rect, error) {
	fields := strings.Fields(viewBox)
	if len(fields) != 4 {
		return geometry.Rect{}, fmt.Errorf("assets: malformed viewBox %q", viewBox)
	}
	var vals [4]float64
	for i, f := range fields {
		if _, err := fmt.Sscanf(f, "%g", &vals[i]); err != nil {
			return geometry.Rect{}, fmt.Errorf("assets: malformed viewBox %q: %w", viewBox, err)
		}
	}
	return geometry.Rect{X: vals[0], Y: vals[1], Width: vals[2], Height: vals[3]}, nil
}
