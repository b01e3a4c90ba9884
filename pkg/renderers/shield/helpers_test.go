package shield

import (
	"math"
	"regexp"
	"strconv"
	"strings"
	"testing"

	"github.com/goliatone/go-blazonry/pkg/geometry"
	theme "github.com/goliatone/go-theme"
)

// region is one emitted <path> element: its geometry plus its fill.
type region struct {
	path geometry.Path
	fill string
}

var regionPattern = regexp.MustCompile(`<path d="([^"]*)" fill="([^"]*)"/>`)

func parseRegions(t *testing.T, svg string) []region {
	t.Helper()
	matches := regionPattern.FindAllStringSubmatch(svg, -1)
	regions := make([]region, 0, len(matches))
	for _, m := range matches {
		regions = append(regions, region{path: parsePathData(t, m[1]), fill: m[2]})
	}
	return regions
}

// parsePathData reads back the serialised path command stream.
func parsePathData(t *testing.T, d string) geometry.Path {
	t.Helper()
	tokens := strings.Fields(d)
	var path geometry.Path

	i := 0
	next := func() geometry.Point {
		if i+1 >= len(tokens) {
			t.Fatalf("path data truncated at token %d: %q", i, d)
		}
		x, err := strconv.ParseFloat(tokens[i], 64)
		if err != nil {
			t.Fatalf("bad coordinate %q: %v", tokens[i], err)
		}
		y, err := strconv.ParseFloat(tokens[i+1], 64)
		if err != nil {
			t.Fatalf("bad coordinate %q: %v", tokens[i+1], err)
		}
		i += 2
		return geometry.Point{X: x, Y: y}
	}

	for i < len(tokens) {
		op := tokens[i]
		i++
		switch op {
		case "M":
			path = path.Move(next())
		case "L":
			path = path.Line(next())
		case "Q":
			ctrl := next()
			path = path.Quad(ctrl, next())
		case "C":
			c1 := next()
			c2 := next()
			path = path.Cubic(c1, c2, next())
		case "Z":
			path = path.ClosePath()
		default:
			t.Fatalf("unexpected path token %q in %q", op, d)
		}
	}
	return path
}

// fillAt returns the fill of the topmost region containing the point, or ""
// when nothing covers it.
func fillAt(regions []region, p geometry.Point) string {
	fill := ""
	for _, r := range regions {
		if geometry.PolygonContains(r.path.Flatten(12), p) {
			fill = r.fill
		}
	}
	return fill
}

// bounds computes the axis-aligned extent of a flattened path.
func bounds(pts []geometry.Point) (minX, minY, maxX, maxY float64) {
	minX, minY = math.Inf(1), math.Inf(1)
	maxX, maxY = math.Inf(-1), math.Inf(-1)
	for _, p := range pts {
		minX = math.Min(minX, p.X)
		minY = math.Min(minY, p.Y)
		maxX = math.Max(maxX, p.X)
		maxY = math.Max(maxY, p.Y)
	}
	return minX, minY, maxX, maxY
}

func themedConfig(tokens map[string]string) *theme.RendererConfig {
	return &theme.RendererConfig{Theme: "heraldic", Tokens: tokens}
}

func newTestRenderer(t *testing.T, options ...Option) *Renderer {
	t.Helper()
	r, err := New(options...)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return r
}
