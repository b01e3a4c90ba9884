package shield

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/goliatone/go-blazonry/pkg/assets"
	"github.com/goliatone/go-blazonry/pkg/geometry"
	"github.com/goliatone/go-blazonry/pkg/heraldry"
	"github.com/goliatone/go-blazonry/pkg/render"
)

// chargeBaseExtent is the canonical-space footprint of a size-1 charge along
// its longer viewBox axis.
const chargeBaseExtent = 60.0

type fetchResult struct {
	artwork assets.ChargeArtwork
	err     error
}

// fetchCharges retrieves artwork for every distinct visible charge id. The
// fetches run concurrently; arrival order is irrelevant because stacking
// order comes from the charge array index, never from completion order.
func (r *Renderer) fetchCharges(ctx context.Context, charges []heraldry.Charge) map[string]fetchResult {
	distinct := make(map[string]struct{})
	for _, ch := range charges {
		if ch.Visible && ch.ID != "" {
			distinct[ch.ID] = struct{}{}
		}
	}
	results := make(map[string]fetchResult, len(distinct))
	if len(distinct) == 0 {
		return results
	}

	var (
		wg sync.WaitGroup
		mu sync.Mutex
	)
	for id := range distinct {
		wg.Add(1)
		go func(id string) {
			defer wg.Done()
			artwork, err := r.charges.Fetch(ctx, id)
			mu.Lock()
			results[id] = fetchResult{artwork: artwork, err: err}
			mu.Unlock()
		}(id)
	}
	wg.Wait()
	return results
}

// composeCharges places every visible charge layer in array order. Each
// instance is recoloured, sanitised and wrapped in two transforms: the outer
// one translates to the arrangement point and applies the size scale plus the
// vertical aspect pre-compensation; the inner one shifts the artwork so its
// viewBox centre (not its coordinate origin) lands on the target point.
func (r *Renderer) composeCharges(b *strings.Builder, charges []heraldry.Charge, fetched map[string]fetchResult, outline assets.Outline, options render.Options) {
	// The projector scales Y by aspectRatio relative to X; squeezing charges
	// by its reciprocal keeps their proportions square after projection.
	aspectCorrection := 1 / outline.AspectRatio()

	for _, ch := range charges {
		if !ch.Visible {
			continue
		}
		result, ok := fetched[ch.ID]
		if !ok {
			continue
		}
		if result.err != nil {
			options.ReportChargeFailure(ch.ID, result.err)
			continue
		}

		hex := r.resolveTincture(ch.Tincture, options)
		content := assets.SanitizeArtwork(assets.Recolor(result.artwork, hex))

		viewBox, err := assets.ParseViewBox(result.artwork.ViewBox)
		if err != nil || viewBox.Empty() {
			viewBox = geometry.Rect{Width: 100, Height: 100}
		}
		center := viewBox.Center()

		size := ch.Size
		if size == 0 {
			size = 1
		}
		if size < heraldry.MinChargeSize {
			size = heraldry.MinChargeSize
		}
		if size > heraldry.MaxChargeSize {
			size = heraldry.MaxChargeSize
		}

		longest := viewBox.Width
		if viewBox.Height > longest {
			longest = viewBox.Height
		}
		sx := size * chargeBaseExtent / longest
		sy := sx * aspectCorrection

		for _, point := range r.arrangementPoints(ch) {
			fmt.Fprintf(b,
				"<g transform=\"translate(%s %s) scale(%s %s)\"><g transform=\"translate(%s %s)\">\n%s\n</g></g>\n",
				geometry.FormatCoord(point.X), geometry.FormatCoord(point.Y),
				geometry.FormatCoord(sx), geometry.FormatCoord(sy),
				geometry.FormatCoord(-center.X), geometry.FormatCoord(-center.Y),
				content,
			)
		}
	}
}

// arrangementPoints resolves the charge's placement template. Unknown or
// mismatched arrangements fall back to the default layout for the count.
func (r *Renderer) arrangementPoints(ch heraldry.Charge) []geometry.Point {
	count := ch.Count
	if count < 1 || count > 3 {
		count = 1
	}
	name := ch.Arrangement
	if arr, ok := r.catalog.Arrangement(name); ok && arr.Count == count {
		return arrangementToPoints(arr)
	}
	if arr, ok := r.catalog.Arrangement(defaultArrangement(count)); ok {
		return arrangementToPoints(arr)
	}
	return []geometry.Point{{X: canvas / 2, Y: canvas / 2}}
}

func defaultArrangement(count int) string {
	switch count {
	case 2:
		return "pairInFess"
	case 3:
		return "twoAndOne"
	default:
		return "single"
	}
}

func arrangementToPoints(arr heraldry.Arrangement) []geometry.Point {
	points := make([]geometry.Point, len(arr.Points))
	for i, p := range arr.Points {
		points[i] = geometry.Point{X: p.X, Y: p.Y}
	}
	return points
}
