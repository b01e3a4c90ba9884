package geometry

import "math"

// CanvasSize is the extent of the canonical coordinate space. All generation
// math happens in a CanvasSize×CanvasSize square before projection.
const CanvasSize = 200.0

// Point is a position in canonical space.
type Point struct {
	X float64
	Y float64
}

// Add returns p translated by q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns the vector from q to p.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Scale returns p with both components multiplied by f.
func (p Point) Scale(f float64) Point {
	return Point{X: p.X * f, Y: p.Y * f}
}

// Distance returns the Euclidean distance between p and q.
func (p Point) Distance(q Point) float64 {
	return math.Hypot(q.X-p.X, q.Y-p.Y)
}

// Normalize returns the unit vector pointing in p's direction. The zero
// vector normalises to itself so callers never divide by zero.
func (p Point) Normalize() Point {
	length := math.Hypot(p.X, p.Y)
	if length == 0 {
		return Point{}
	}
	return Point{X: p.X / length, Y: p.Y / length}
}

// Perp returns p rotated 90° counter-clockwise. For a unit direction vector
// this is the unit normal used for perpendicular texture offsets.
func (p Point) Perp() Point {
	return Point{X: -p.Y, Y: p.X}
}

// Lerp returns the point a fraction t of the way from p to q.
func (p Point) Lerp(q Point, t float64) Point {
	return Point{X: p.X + (q.X-p.X)*t, Y: p.Y + (q.Y-p.Y)*t}
}

// Rect is an axis-aligned rectangle in document coordinates.
type Rect struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
}

// Center returns the rectangle's midpoint.
func (r Rect) Center() Point {
	return Point{X: r.X + r.Width/2, Y: r.Y + r.Height/2}
}

// Empty reports whether the rectangle has no area.
func (r Rect) Empty() bool {
	return r.Width <= 0 || r.Height <= 0
}
