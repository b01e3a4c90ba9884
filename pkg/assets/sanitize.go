package assets

import (
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	artworkPolicyOnce sync.Once
	artworkPolicy     *bluemonday.Policy
)

// SanitizeArtwork strips everything from externally supplied charge markup
// that cannot survive the projection transform or that a drawing has no
// business carrying: clip-path references (invalid once the artwork is
// re-projected), scripts, event handlers and foreign elements. Only plain
// drawing elements and their geometric attributes pass through.
func SanitizeArtwork(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}
	return strings.TrimSpace(artworkSanitizer().Sanitize(trimmed))
}

func artworkSanitizer() *bluemonday.Policy {
	artworkPolicyOnce.Do(func() {
		policy := bluemonday.StrictPolicy()
		elements := []string{
			"g", "path", "circle", "rect", "line", "polyline", "polygon", "ellipse",
		}
		policy.AllowElements(elements...)

		// No clip-path and no id/href attrs: embedded clip references do not
		// survive the shield projection and dangling ids leak between
		// instances of the same charge.
		for _, el := range elements {
			policy.AllowAttrs(
				"d", "cx", "cy", "r", "x", "y", "x1", "y1", "x2", "y2",
				"points", "rx", "ry", "width", "height", "fill", "fill-rule",
				"stroke", "stroke-width", "stroke-linecap", "stroke-linejoin",
				"transform", "opacity",
			).OnElements(el)
		}

		artworkPolicy = policy
	})
	return artworkPolicy
}
