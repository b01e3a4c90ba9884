package geometry

import (
	"strconv"
	"strings"
)

// Op identifies a path command verb.
type Op uint8

const (
	MoveTo Op = iota
	LineTo
	QuadTo
	CubicTo
	Close
)

// Command is a single path instruction. MoveTo and LineTo carry one point,
// QuadTo two (control, end), CubicTo three (control, control, end) and Close
// none.
type Command struct {
	Op     Op
	Points []Point
}

// Path is an ordered command list describing an open or closed contour.
type Path []Command

// Move appends a MoveTo command.
func (p Path) Move(pt Point) Path {
	return append(p, Command{Op: MoveTo, Points: []Point{pt}})
}

// Line appends a LineTo command.
func (p Path) Line(pt Point) Path {
	return append(p, Command{Op: LineTo, Points: []Point{pt}})
}

// Quad appends a quadratic Bézier command.
func (p Path) Quad(ctrl, end Point) Path {
	return append(p, Command{Op: QuadTo, Points: []Point{ctrl, end}})
}

// Cubic appends a cubic Bézier command.
func (p Path) Cubic(c1, c2, end Point) Path {
	return append(p, Command{Op: CubicTo, Points: []Point{c1, c2, end}})
}

// ClosePath appends a Close command.
func (p Path) ClosePath() Path {
	return append(p, Command{Op: Close})
}

// Append concatenates other onto p. The caller is responsible for making the
// join meaningful (other usually starts where p ends).
func (p Path) Append(other Path) Path {
	return append(p, other...)
}

// Data encodes the path as SVG path data. Coordinates are rounded to two
// decimals so identical inputs serialise identically across platforms.
func (p Path) Data() string {
	var b strings.Builder
	for i, cmd := range p {
		if i > 0 {
			b.WriteByte(' ')
		}
		switch cmd.Op {
		case MoveTo:
			b.WriteString("M ")
			writePoints(&b, cmd.Points)
		case LineTo:
			b.WriteString("L ")
			writePoints(&b, cmd.Points)
		case QuadTo:
			b.WriteString("Q ")
			writePoints(&b, cmd.Points)
		case CubicTo:
			b.WriteString("C ")
			writePoints(&b, cmd.Points)
		case Close:
			b.WriteString("Z")
		}
	}
	return b.String()
}

func writePoints(b *strings.Builder, points []Point) {
	for i, pt := range points {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(FormatCoord(pt.X))
		b.WriteByte(' ')
		b.WriteString(FormatCoord(pt.Y))
	}
}

// FormatCoord renders a coordinate with at most two decimal places and no
// trailing zeros.
func FormatCoord(v float64) string {
	s := strconv.FormatFloat(v, 'f', 2, 64)
	s = strings.TrimRight(s, "0")
	s = strings.TrimRight(s, ".")
	if s == "-0" || s == "" {
		return "0"
	}
	return s
}

// Flatten approximates the path as a polygon, splitting each curve into
// curveSteps straight segments. Close commands return to the subpath start.
// Intended for containment sampling, not for rendering.
func (p Path) Flatten(curveSteps int) []Point {
	if curveSteps < 1 {
		curveSteps = 8
	}
	var (
		out     []Point
		current Point
		start   Point
	)
	for _, cmd := range p {
		switch cmd.Op {
		case MoveTo:
			current = cmd.Points[0]
			start = current
			out = append(out, current)
		case LineTo:
			current = cmd.Points[0]
			out = append(out, current)
		case QuadTo:
			ctrl, end := cmd.Points[0], cmd.Points[1]
			for i := 1; i <= curveSteps; i++ {
				t := float64(i) / float64(curveSteps)
				a := current.Lerp(ctrl, t)
				b := ctrl.Lerp(end, t)
				out = append(out, a.Lerp(b, t))
			}
			current = end
		case CubicTo:
			c1, c2, end := cmd.Points[0], cmd.Points[1], cmd.Points[2]
			for i := 1; i <= curveSteps; i++ {
				t := float64(i) / float64(curveSteps)
				a := current.Lerp(c1, t)
				b := c1.Lerp(c2, t)
				c := c2.Lerp(end, t)
				ab := a.Lerp(b, t)
				bc := b.Lerp(c, t)
				out = append(out, ab.Lerp(bc, t))
			}
			current = end
		case Close:
			out = append(out, start)
			current = start
		}
	}
	return out
}

// PolygonContains reports whether pt lies inside the polygon using the
// even-odd rule. Points exactly on an edge may resolve either way.
func PolygonContains(poly []Point, pt Point) bool {
	inside := false
	n := len(poly)
	if n < 3 {
		return false
	}
	j := n - 1
	for i := 0; i < n; i++ {
		pi, pj := poly[i], poly[j]
		if (pi.Y > pt.Y) != (pj.Y > pt.Y) {
			x := pi.X + (pt.Y-pi.Y)/(pj.Y-pi.Y)*(pj.X-pi.X)
			if pt.X < x {
				inside = !inside
			}
		}
		j = i
	}
	return inside
}
