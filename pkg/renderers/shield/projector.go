package shield

import (
	"github.com/goliatone/go-blazonry/pkg/assets"
	"github.com/goliatone/go-blazonry/pkg/geometry"
)

// projection maps the canonical 200×200 space onto an outline bounding box:
// independent X and Y scale factors plus a translation aligning origins. The
// scale is non-uniform whenever the outline is not square, which is why the
// charge compositor pre-compensates vertically.
type projection struct {
	ScaleX     float64
	ScaleY     float64
	TranslateX float64
	TranslateY float64
}

// projectOnto derives the projection for an outline. A degenerate bounding
// box collapses to the identity mapping rather than failing: a minimal valid
// projection always exists.
func projectOnto(outline assets.Outline) projection {
	box := outline.BoundingBox
	if box.Empty() {
		box = geometry.Rect{Width: geometry.CanvasSize, Height: geometry.CanvasSize}
	}
	return projection{
		ScaleX:     box.Width / geometry.CanvasSize,
		ScaleY:     box.Height / geometry.CanvasSize,
		TranslateX: box.X,
		TranslateY: box.Y,
	}
}

// Transform renders the projection as an SVG transform attribute. Translation
// precedes scale so the scale factors operate in canonical units.
func (p projection) Transform() string {
	return "translate(" + geometry.FormatCoord(p.TranslateX) + " " + geometry.FormatCoord(p.TranslateY) +
		") scale(" + geometry.FormatCoord(p.ScaleX) + " " + geometry.FormatCoord(p.ScaleY) + ")"
}

// Apply maps a canonical-space point into document coordinates. Tests use it
// to verify where artwork lands after projection.
func (p projection) Apply(pt geometry.Point) geometry.Point {
	return geometry.Point{
		X: p.TranslateX + pt.X*p.ScaleX,
		Y: p.TranslateY + pt.Y*p.ScaleY,
	}
}
