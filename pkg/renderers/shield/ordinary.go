package shield

import (
	"strings"

	"github.com/goliatone/go-blazonry/pkg/geometry"
	"github.com/goliatone/go-blazonry/pkg/heraldry"
	"github.com/goliatone/go-blazonry/pkg/render"
)

// Base band widths in canonical units, before thickness and count scaling.
const (
	bandWidth    = 50.0
	chevronWidth = 36.0
	crossWidth   = 40.0
	pileHalfTop  = 45.0
)

// composeOrdinaries emits every visible ordinary in array order; index zero
// lands at the bottom of the ordinary stack.
func (r *Renderer) composeOrdinaries(b *strings.Builder, ordinaries []heraldry.Ordinary, options render.Options) {
	for _, ord := range ordinaries {
		if !ord.Visible {
			continue
		}
		fill := r.resolveTincture(ord.Tincture, options)
		style := r.lineStyleFor(ord.LineStyle)
		for _, path := range ordinaryPaths(ord, style) {
			writeRegion(b, path, fill)
		}
	}
}

// ordinaryPaths builds the canonical-space shapes for one ordinary. Count
// yields evenly spaced parallel repetitions; unknown types yield nothing so a
// malformed layer degrades to absence rather than noise.
func ordinaryPaths(ord heraldry.Ordinary, style geometry.LineStyle) []geometry.Path {
	count := ord.Count
	if count < 1 || count > 3 {
		count = 1
	}
	w := bandWidth * ord.Thickness.Multiplier() * diminish(count)

	var paths []geometry.Path
	switch ord.Type {
	case "fess":
		for i := 0; i < count; i++ {
			y := spacedCenter(i, count)
			paths = append(paths, bandPath(pt(0, y), pt(canvas, y), w/2, style))
		}
	case "pale":
		for i := 0; i < count; i++ {
			x := spacedCenter(i, count)
			paths = append(paths, bandPath(pt(x, 0), pt(x, canvas), w/2, style))
		}
	case "bend":
		for i := 0; i < count; i++ {
			c := spacedCenter(i, count)*2 - canvas
			paths = append(paths, bandPath(pt(-20, c-20), pt(canvas+20, canvas+c+20), w/2, style))
		}
	case "bendSinister":
		for i := 0; i < count; i++ {
			c := spacedCenter(i, count)*2 - canvas
			paths = append(paths, bandPath(pt(canvas+20, c-20), pt(-20, canvas+c+20), w/2, style))
		}
	case "chief":
		for i := 0; i < count; i++ {
			top := float64(i) * 1.5 * w
			paths = append(paths, horizontalBarPath(top, w, style, false))
		}
	case "base":
		for i := 0; i < count; i++ {
			top := canvas - float64(i)*1.5*w - w
			paths = append(paths, horizontalBarPath(top, w, style, true))
		}
	case "chevron":
		cw := chevronWidth * ord.Thickness.Multiplier() * diminish(count)
		for i := 0; i < count; i++ {
			dy := (float64(i) - float64(count-1)/2) * cw * 1.8
			paths = append(paths, chevronPath(dy, cw, ord.Inverted, style))
		}
	case "pile":
		half := pileHalfTop * ord.Thickness.Multiplier() * diminish(count)
		for i := 0; i < count; i++ {
			x := spacedCenter(i, count)
			paths = append(paths, pilePath(x, half, ord.Inverted, style))
		}
	case "cross":
		cw := crossWidth * ord.Thickness.Multiplier() * diminish(count)
		// Only the vertical arms repeat; the horizontal arm is shared.
		for i := 0; i < count; i++ {
			x := spacedCenter(i, count)
			paths = append(paths, bandPath(pt(x, 0), pt(x, canvas), cw/2, style))
		}
		paths = append(paths, bandPath(pt(0, canvas/2), pt(canvas, canvas/2), cw/2, style))
	case "saltire":
		cw := crossWidth * ord.Thickness.Multiplier() * diminish(count)
		for i := 0; i < count; i++ {
			x := spacedCenter(i, count)
			paths = append(paths,
				bandPath(pt(x-canvas/2-20, -20), pt(x+canvas/2+20, canvas+20), cw/2, style),
				bandPath(pt(x+canvas/2+20, -20), pt(x-canvas/2-20, canvas+20), cw/2, style),
			)
		}
	}
	return paths
}

// diminish shrinks repeated ordinaries the way their heraldic diminutives
// are drawn narrower than the parent shape.
func diminish(count int) float64 {
	switch count {
	case 2:
		return 0.55
	case 3:
		return 0.4
	default:
		return 1
	}
}

// spacedCenter places repetition i of count on the canvas axis so the group
// sits symmetric about the centre with equal gaps.
func spacedCenter(i, count int) float64 {
	return canvas * float64(i+1) / float64(count+1)
}

// bandPath builds a straight band of the given half-width around the
// centreline from a to b, texturing both long edges.
func bandPath(a, b geometry.Point, half float64, style geometry.LineStyle) geometry.Path {
	offset := b.Sub(a).Normalize().Perp().Scale(half)
	c1, c2 := a.Add(offset), b.Add(offset)
	c3, c4 := b.Sub(offset), a.Sub(offset)

	path := geometry.Path{}.Move(c1)
	path = geometry.TexturedEdge(path, c1, c2, style)
	path = path.Line(c3)
	path = geometry.TexturedEdge(path, c3, c4, style)
	return path.ClosePath()
}

// horizontalBarPath builds a full-width bar whose open edge (away from the
// canvas border it hugs) carries the texture.
func horizontalBarPath(top, height float64, style geometry.LineStyle, textureTop bool) geometry.Path {
	if textureTop {
		path := geometry.Path{}.Move(pt(canvas, top+height)).Line(pt(0, top+height)).Line(pt(0, top))
		path = geometry.TexturedEdge(path, pt(0, top), pt(canvas, top), style)
		return path.ClosePath()
	}
	path := geometry.Path{}.Move(pt(0, top)).Line(pt(canvas, top)).Line(pt(canvas, top+height))
	path = geometry.TexturedEdge(path, pt(canvas, top+height), pt(0, top+height), style)
	return path.ClosePath()
}

// chevronPath builds one chevron band shifted vertically by dy. Inverted
// chevrons point downward.
func chevronPath(dy, width float64, inverted bool, style geometry.LineStyle) geometry.Path {
	half := width * 0.7
	apexY, footY := 60.0, 160.0
	if inverted {
		apexY, footY = 140.0, 40.0
	}

	upperLeft := pt(0, footY-half+dy)
	upperApex := pt(canvas/2, apexY-half+dy)
	upperRight := pt(canvas, footY-half+dy)
	lowerRight := pt(canvas, footY+half+dy)
	lowerApex := pt(canvas/2, apexY+half+dy)
	lowerLeft := pt(0, footY+half+dy)

	path := geometry.Path{}.Move(upperLeft)
	path = geometry.TexturedEdge(path, upperLeft, upperApex, style)
	path = geometry.TexturedEdge(path, upperApex, upperRight, style)
	path = path.Line(lowerRight)
	path = geometry.TexturedEdge(path, lowerRight, lowerApex, style)
	path = geometry.TexturedEdge(path, lowerApex, lowerLeft, style)
	return path.ClosePath()
}

// pilePath builds one downward (or upward, when inverted) wedge anchored on
// the canvas edge at x.
func pilePath(x, half float64, inverted bool, style geometry.LineStyle) geometry.Path {
	top, tip := 0.0, 150.0
	if inverted {
		top, tip = canvas, 50.0
	}
	left := pt(x-half, top)
	right := pt(x+half, top)
	point := pt(x, tip)

	path := geometry.Path{}.Move(left).Line(right)
	path = geometry.TexturedEdge(path, right, point, style)
	path = geometry.TexturedEdge(path, point, left, style)
	return path.ClosePath()
}
