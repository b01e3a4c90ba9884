package shield

import (
	"strings"

	"github.com/goliatone/go-blazonry/pkg/geometry"
	"github.com/goliatone/go-blazonry/pkg/heraldry"
	"github.com/goliatone/go-blazonry/pkg/render"
)

const canvas = geometry.CanvasSize

// composeField emits the layer-0 division: a full-canvas base fill in
// tincture1 followed by overlay regions in tincture2 (and tincture3 for
// tierced divisions). Every canvas point is covered by the base, so the
// topmost region containing a point decides its tincture. Unknown divisions
// degrade to the plain fill.
func (r *Renderer) composeField(b *strings.Builder, field heraldry.Field, options render.Options) {
	t1 := r.resolveTincture(field.Tincture1, options)
	t2 := r.resolveTincture(field.Tincture2, options)
	style := r.lineStyleFor(field.LineStyle)

	writeRegion(b, rectPath(0, 0, canvas, canvas), t1)

	switch field.Division {
	case "perPale":
		path := geometry.Path{}.Move(pt(canvas/2, 0))
		path = geometry.TexturedEdge(path, pt(canvas/2, 0), pt(canvas/2, canvas), style)
		path = path.Line(pt(canvas, canvas)).Line(pt(canvas, 0)).ClosePath()
		writeRegion(b, path, t2)

	case "perFess":
		path := geometry.Path{}.Move(pt(0, canvas/2))
		path = geometry.TexturedEdge(path, pt(0, canvas/2), pt(canvas, canvas/2), style)
		path = path.Line(pt(canvas, canvas)).Line(pt(0, canvas)).ClosePath()
		writeRegion(b, path, t2)

	case "perBend":
		path := geometry.Path{}.Move(pt(0, 0))
		path = geometry.TexturedEdge(path, pt(0, 0), pt(canvas, canvas), style)
		path = path.Line(pt(0, canvas)).ClosePath()
		writeRegion(b, path, t2)

	case "perBendSinister":
		path := geometry.Path{}.Move(pt(canvas, 0))
		path = geometry.TexturedEdge(path, pt(canvas, 0), pt(0, canvas), style)
		path = path.Line(pt(canvas, canvas)).ClosePath()
		writeRegion(b, path, t2)

	case "perChevron":
		left, apex, right := pt(0, 140), pt(canvas/2, 60), pt(canvas, 140)
		if field.Inverted {
			left, apex, right = pt(0, 60), pt(canvas/2, 140), pt(canvas, 60)
		}
		path := geometry.Path{}.Move(left)
		path = geometry.TexturedEdge(path, left, apex, style)
		path = geometry.TexturedEdge(path, apex, right, style)
		path = path.Line(pt(canvas, canvas)).Line(pt(0, canvas)).ClosePath()
		writeRegion(b, path, t2)

	case "quarterly":
		writeRegion(b, rectPath(canvas/2, 0, canvas/2, canvas/2), t2)
		writeRegion(b, rectPath(0, canvas/2, canvas/2, canvas/2), t2)

	case "perSaltire":
		center := pt(canvas/2, canvas/2)
		writeRegion(b, trianglePath(pt(0, 0), center, pt(0, canvas)), t2)
		writeRegion(b, trianglePath(pt(canvas, 0), center, pt(canvas, canvas)), t2)

	case "gyronny":
		r.composeGyronny(b, t2)

	case "paly":
		n := stripeCount(field.Multiplicity)
		w := canvas / float64(n)
		for i := 1; i < n; i += 2 {
			x := float64(i) * w
			path := stripePath(pt(x, 0), pt(x, canvas), pt(x+w, canvas), pt(x+w, 0), style, i+1 < n)
			writeRegion(b, path, t2)
		}

	case "barry":
		n := stripeCount(field.Multiplicity)
		h := canvas / float64(n)
		for i := 1; i < n; i += 2 {
			y := float64(i) * h
			path := stripePath(pt(0, y), pt(canvas, y), pt(canvas, y+h), pt(0, y+h), style, i+1 < n)
			writeRegion(b, path, t2)
		}

	case "bendy":
		n := stripeCount(field.Multiplicity)
		span := 2 * canvas / float64(n)
		for i := 1; i < n; i += 2 {
			b0 := -canvas + float64(i)*span
			b1 := b0 + span
			path := geometry.Path{}.
				Move(pt(0, b0)).Line(pt(0, b1)).
				Line(pt(canvas, canvas+b1)).Line(pt(canvas, canvas+b0)).
				ClosePath()
			writeRegion(b, path, t2)
		}

	case "checky":
		n := stripeCount(field.Multiplicity)
		cell := canvas / float64(n)
		for row := 0; row < n; row++ {
			for col := 0; col < n; col++ {
				if (row+col)%2 == 1 {
					writeRegion(b, rectPath(float64(col)*cell, float64(row)*cell, cell, cell), t2)
				}
			}
		}

	case "lozengy":
		n := stripeCount(field.Multiplicity)
		cell := canvas / float64(n)
		// Half-cell horizontal extent keeps the lozenges from tiling the
		// whole canvas: the overlay covers half the area and tincture1
		// shows through between the diamonds.
		for row := 0; row <= n; row++ {
			for col := 0; col <= n; col++ {
				if (row+col)%2 == 1 {
					cx, cy := float64(col)*cell, float64(row)*cell
					writeRegion(b, diamondPath(pt(cx, cy), cell/2, cell), t2)
				}
			}
		}

	case "tiercedPerPale":
		t3 := r.resolveTincture(field.Tincture3, options)
		third := canvas / 3
		middle := geometry.Path{}.Move(pt(third, 0))
		middle = geometry.TexturedEdge(middle, pt(third, 0), pt(third, canvas), style)
		middle = middle.Line(pt(2*third, canvas))
		middle = geometry.TexturedEdge(middle, pt(2*third, canvas), pt(2*third, 0), style)
		middle = middle.ClosePath()
		writeRegion(b, middle, t2)
		last := geometry.Path{}.Move(pt(2*third, 0))
		last = geometry.TexturedEdge(last, pt(2*third, 0), pt(2*third, canvas), style)
		last = last.Line(pt(canvas, canvas)).Line(pt(canvas, 0)).ClosePath()
		writeRegion(b, last, t3)

	case "tiercedPerFess":
		t3 := r.resolveTincture(field.Tincture3, options)
		third := canvas / 3
		middle := geometry.Path{}.Move(pt(0, third))
		middle = geometry.TexturedEdge(middle, pt(0, third), pt(canvas, third), style)
		middle = middle.Line(pt(canvas, 2*third))
		middle = geometry.TexturedEdge(middle, pt(canvas, 2*third), pt(0, 2*third), style)
		middle = middle.ClosePath()
		writeRegion(b, middle, t2)
		last := geometry.Path{}.Move(pt(0, 2*third))
		last = geometry.TexturedEdge(last, pt(0, 2*third), pt(canvas, 2*third), style)
		last = last.Line(pt(canvas, canvas)).Line(pt(0, canvas)).ClosePath()
		writeRegion(b, last, t3)
	}
}

// composeGyronny emits the four tincture2 rays of the eight-way radial
// division. Rays run from the centre to corners and edge midpoints.
func (r *Renderer) composeGyronny(b *strings.Builder, fill string) {
	center := pt(canvas/2, canvas/2)
	spokes := []geometry.Point{
		pt(canvas/2, 0), pt(canvas, 0), pt(canvas, canvas/2), pt(canvas, canvas),
		pt(canvas/2, canvas), pt(0, canvas), pt(0, canvas/2), pt(0, 0),
	}
	for i := 0; i < len(spokes); i += 2 {
		next := spokes[(i+1)%len(spokes)]
		writeRegion(b, trianglePath(center, spokes[i], next), fill)
	}
}

// stripeCount clamps the multiplicity into the renderable range, defaulting
// to the customary six.
func stripeCount(multiplicity int) int {
	if multiplicity < 2 {
		return 6
	}
	if multiplicity > 12 {
		return 12
	}
	return multiplicity
}

// stripePath builds a four-sided stripe whose two long edges carry the line
// texture. The edge closing against the canvas border stays straight.
func stripePath(a, bPt, c, d geometry.Point, style geometry.LineStyle, textureFar bool) geometry.Path {
	path := geometry.Path{}.Move(a)
	path = geometry.TexturedEdge(path, a, bPt, style)
	path = path.Line(c)
	if textureFar {
		path = geometry.TexturedEdge(path, c, d, style)
	} else {
		path = path.Line(d)
	}
	return path.ClosePath()
}

func pt(x, y float64) geometry.Point {
	return geometry.Point{X: x, Y: y}
}

func rectPath(x, y, w, h float64) geometry.Path {
	return geometry.Path{}.
		Move(pt(x, y)).Line(pt(x+w, y)).Line(pt(x+w, y+h)).Line(pt(x, y+h)).
		ClosePath()
}

func trianglePath(a, b, c geometry.Point) geometry.Path {
	return geometry.Path{}.Move(a).Line(b).Line(c).ClosePath()
}

func diamondPath(center geometry.Point, halfW, halfH float64) geometry.Path {
	return geometry.Path{}.
		Move(pt(center.X, center.Y-halfH)).
		Line(pt(center.X+halfW, center.Y)).
		Line(pt(center.X, center.Y+halfH)).
		Line(pt(center.X-halfW, center.Y)).
		ClosePath()
}
