package geometry

import "math"

// Line style identifiers understood by TexturedLine. The catalog in
// pkg/heraldry carries the display metadata for each of these.
const (
	LineStraight   = "straight"
	LineWavy       = "wavy"
	LineEngrailed  = "engrailed"
	LineInvected   = "invected"
	LineIndented   = "indented"
	LineDancetty   = "dancetty"
	LineEmbattled  = "embattled"
	LineRaguly     = "raguly"
	LineDovetailed = "dovetailed"
	LineNebuly     = "nebuly"
)

// LineStyle parameterises a decorative texture. Unit is the baseline length
// consumed by one repeat; Amplitude is the perpendicular offset of the
// texture from the baseline.
type LineStyle struct {
	Name      string
	Unit      float64
	Amplitude float64
}

// TexturedLine replaces the straight baseline from p1 to p2 with a decorated
// path in the named style. The baseline is subdivided into
// max(4, round(length/Unit)) repeats so the texture density stays constant
// regardless of segment length. The result always starts with a MoveTo at p1
// and, for non-degenerate input, ends exactly at p2. Identical inputs yield
// identical paths.
//
// A zero-length baseline collapses to a single-point path rather than an
// error so degenerate geometry never aborts a render.
func TexturedLine(p1, p2 Point, style LineStyle) Path {
	length := p1.Distance(p2)
	if length == 0 {
		return Path{}.Move(p1)
	}
	if style.Name == "" || style.Name == LineStraight {
		return Path{}.Move(p1).Line(p2)
	}

	unit := style.Unit
	if unit <= 0 {
		unit = 10
	}
	amp := style.Amplitude
	if amp <= 0 {
		amp = 3
	}

	n := int(math.Round(length / unit))
	if n < 4 {
		n = 4
	}

	dir := p2.Sub(p1).Normalize()
	perp := dir.Perp()
	step := length / float64(n)

	path := Path{}.Move(p1)
	for i := 0; i < n; i++ {
		a := p1.Add(dir.Scale(float64(i) * step))
		b := p1.Add(dir.Scale(float64(i+1) * step))
		side := 1.0
		if i%2 == 1 {
			side = -1
		}
		off := perp.Scale(amp * side)

		switch style.Name {
		case LineWavy:
			path = path.Quad(a.Lerp(b, 0.5).Add(off), b)
		case LineNebuly:
			c1 := a.Lerp(b, 0.25).Add(off.Scale(1.6))
			c2 := a.Lerp(b, 0.75).Add(off.Scale(1.6))
			path = path.Cubic(c1, c2, b)
		case LineEngrailed:
			path = path.Quad(a.Lerp(b, 0.5).Add(perp.Scale(amp)), b)
		case LineInvected:
			path = path.Quad(a.Lerp(b, 0.5).Add(perp.Scale(-amp)), b)
		case LineIndented, LineDancetty:
			path = path.Line(a.Lerp(b, 0.5).Add(off)).Line(b)
		case LineEmbattled:
			if side > 0 {
				raised := perp.Scale(amp)
				path = path.Line(a.Add(raised)).Line(b.Add(raised)).Line(b)
			} else {
				path = path.Line(b)
			}
		case LineRaguly:
			if side > 0 {
				raised := perp.Scale(amp)
				slant := dir.Scale(step * 0.25)
				path = path.Line(a.Add(raised).Add(slant)).Line(b.Add(raised).Add(slant)).Line(b)
			} else {
				path = path.Line(b)
			}
		case LineDovetailed:
			if side > 0 {
				raised := perp.Scale(amp)
				flare := dir.Scale(step * 0.18)
				path = path.Line(a.Add(raised).Sub(flare)).Line(b.Add(raised).Add(flare)).Line(b)
			} else {
				path = path.Line(b)
			}
		default:
			path = path.Line(b)
		}
	}
	return path
}

// TexturedEdge appends the texture from p1 to p2 to an existing path without
// the leading MoveTo, so closed regions can carry decorated boundaries.
func TexturedEdge(path Path, p1, p2 Point, style LineStyle) Path {
	segment := TexturedLine(p1, p2, style)
	if len(segment) <= 1 {
		return path.Line(p2)
	}
	return path.Append(segment[1:])
}
