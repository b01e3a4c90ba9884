package assets

import (
	"fmt"
	"regexp"
	"strings"
	"sync"
)

var (
	recolorMu       sync.RWMutex
	recolorPatterns = make(map[string]*regexp.Regexp)
)

// Recolor substitutes the artwork's declared fill marker with the given hex
// colour. Matching is case-insensitive and, when the marker is a spelling of
// white, covers the usual aliases (#fff, #ffffff, white) so assets exported
// by different tools recolour consistently.
func Recolor(artwork ChargeArtwork, hex string) string {
	marker := strings.TrimSpace(artwork.FillMarker)
	if marker == "" || hex == "" {
		return artwork.Content
	}
	return markerPattern(marker).ReplaceAllString(artwork.Content, `fill="`+hex+`"`)
}

// markerPattern caches one compiled pattern per distinct marker. The catalog
// is static, so the map only ever grows by a handful of entries.
func markerPattern(marker string) *regexp.Regexp {
	recolorMu.RLock()
	re, ok := recolorPatterns[marker]
	recolorMu.RUnlock()
	if ok {
		return re
	}

	alternatives := []string{regexp.QuoteMeta(marker)}
	if isWhiteMarker(marker) {
		alternatives = []string{"#fff", "#ffffff", "white"}
	}
	re = regexp.MustCompile(fmt.Sprintf(`(?i)fill\s*=\s*"(?:%s)"`, strings.Join(alternatives, "|")))

	recolorMu.Lock()
	recolorPatterns[marker] = re
	recolorMu.Unlock()
	return re
}

func isWhiteMarker(marker string) bool {
	switch strings.ToLower(marker) {
	case "#fff", "#ffffff", "white":
		return true
	}
	return false
}
