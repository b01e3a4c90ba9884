package assets

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
)

func TestEmbeddedChargeProvider_FetchKnownCharge(t *testing.T) {
	provider, err := NewEmbeddedChargeProvider()
	if err != nil {
		t.Fatalf("load provider: %v", err)
	}

	artwork, err := provider.Fetch(context.Background(), "lion4")
	if err != nil {
		t.Fatalf("fetch lion4: %v", err)
	}
	if artwork.ViewBox == "" || artwork.Content == "" {
		t.Fatal("artwork missing viewBox or content")
	}
	if artwork.FillMarker != "#FFFFFF" {
		t.Fatalf("fill marker = %q, want #FFFFFF", artwork.FillMarker)
	}
}

func TestEmbeddedChargeProvider_NotFound(t *testing.T) {
	provider, err := NewEmbeddedChargeProvider()
	if err != nil {
		t.Fatalf("load provider: %v", err)
	}

	_, err = provider.Fetch(context.Background(), "griffin9")
	var notFound *NotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("expected *NotFoundError, got %v", err)
	}
	if notFound.ID != "griffin9" {
		t.Fatalf("NotFoundError.ID = %q", notFound.ID)
	}
}

func TestEmbeddedChargeProvider_CancelledContext(t *testing.T) {
	provider, err := NewEmbeddedChargeProvider()
	if err != nil {
		t.Fatalf("load provider: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = provider.Fetch(ctx, "lion4")
	var fetchErr *FetchError
	if !errors.As(err, &fetchErr) {
		t.Fatalf("expected *FetchError, got %v", err)
	}
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled in chain, got %v", err)
	}
}

func TestEmbeddedChargeProvider_ConcurrentSameKeyFetch(t *testing.T) {
	provider, err := NewEmbeddedChargeProvider()
	if err != nil {
		t.Fatalf("load provider: %v", err)
	}

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := provider.Fetch(context.Background(), "mullet"); err != nil {
				t.Errorf("concurrent fetch: %v", err)
			}
		}()
	}
	wg.Wait()

	if provider.cache.Len() != 1 {
		t.Fatalf("cache holds %d entries, want 1", provider.cache.Len())
	}
}

func TestBlazonTerm(t *testing.T) {
	provider, err := NewEmbeddedChargeProvider()
	if err != nil {
		t.Fatalf("load provider: %v", err)
	}

	cases := []struct {
		id       string
		tincture string
		count    int
		want     string
	}{
		{"lion4", "or", 1, "a lion rampant or"},
		{"lion4", "or", 3, "three lions rampant or"},
		{"eagle2", "sable", 1, "an eagle displayed sable"},
		{"mullet", "argent", 2, "two mullets argent"},
		{"unknown", "gules", 1, "a charge gules"},
	}
	for _, tc := range cases {
		if got := provider.BlazonTerm(tc.id, tc.tincture, tc.count); got != tc.want {
			t.Errorf("BlazonTerm(%q, %q, %d) = %q, want %q", tc.id, tc.tincture, tc.count, got, tc.want)
		}
	}
}

func TestEmbeddedOutlineProvider_DefaultFallback(t *testing.T) {
	provider, err := NewEmbeddedOutlineProvider()
	if err != nil {
		t.Fatalf("load provider: %v", err)
	}

	heater, err := provider.Load("heater")
	if err != nil {
		t.Fatalf("load heater: %v", err)
	}
	fallback, err := provider.Load("not-a-shield")
	if err != nil {
		t.Fatalf("load fallback: %v", err)
	}
	if fallback.Path != heater.Path {
		t.Fatal("unknown shield type should resolve to the default outline")
	}
	if heater.BoundingBox.Width != 200 || heater.BoundingBox.Height != 240 {
		t.Fatalf("heater bounding box = %+v", heater.BoundingBox)
	}
	if got := heater.AspectRatio(); got != 1.2 {
		t.Fatalf("heater aspect ratio = %v, want 1.2", got)
	}
}

func TestSanitizeArtwork_StripsClipPathsAndScripts(t *testing.T) {
	raw := `<g clip-path="url(#c)"><script>alert(1)</script>` +
		`<clipPath id="c"><rect x="0" y="0" width="10" height="10"/></clipPath>` +
		`<path d="M 0 0 L 10 10" fill="#FFFFFF" onclick="evil()"/></g>`

	cleaned := SanitizeArtwork(raw)
	for _, banned := range []string{"clip-path", "clipPath", "script", "onclick"} {
		if strings.Contains(cleaned, banned) {
			t.Fatalf("sanitized output still contains %q: %s", banned, cleaned)
		}
	}
	if !strings.Contains(cleaned, `d="M 0 0 L 10 10"`) {
		t.Fatalf("drawing path lost during sanitization: %s", cleaned)
	}
}

func TestRecolor(t *testing.T) {
	artwork := ChargeArtwork{
		FillMarker: "#FFFFFF",
		Content:    `<path fill="#ffffff" d="M 0 0"/><circle fill="WHITE" r="2"/><rect fill="#000" x="1"/>`,
	}
	got := Recolor(artwork, "#FFD700")
	if strings.Count(got, `fill="#FFD700"`) != 2 {
		t.Fatalf("expected 2 recoloured fills, got: %s", got)
	}
	if !strings.Contains(got, `fill="#000"`) {
		t.Fatalf("non-marker fill was touched: %s", got)
	}
}

func TestRecolor_NonWhiteMarkerIsExact(t *testing.T) {
	artwork := ChargeArtwork{
		FillMarker: "#ABCDEF",
		Content:    `<path fill="#abcdef"/><path fill="white"/>`,
	}
	got := Recolor(artwork, "#111111")
	if !strings.Contains(got, `fill="#111111"`) {
		t.Fatalf("declared marker not recoloured: %s", got)
	}
	if !strings.Contains(got, `fill="white"`) {
		t.Fatalf("undeclared fill recoloured: %s", got)
	}
}

func TestParseViewBox(t *testing.T) {
	rect, err := ParseViewBox("0 0 100 120")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if rect.Width != 100 || rect.Height != 120 {
		t.Fatalf("rect = %+v", rect)
	}
	if _, err := ParseViewBox("not a viewbox"); err == nil {
		t.Fatal("expected malformed viewBox error")
	}
}
