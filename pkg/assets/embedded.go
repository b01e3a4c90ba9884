package assets

import (
	"context"
	"embed"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed data/*.yaml
var embeddedCatalogs embed.FS

type chargeEntry struct {
	ID         string `yaml:"id"`
	Article    string `yaml:"article"`
	Singular   string `yaml:"singular"`
	Plural     string `yaml:"plural"`
	ViewBox    string `yaml:"viewBox"`
	FillMarker string `yaml:"fillMarker"`
	Content    string `yaml:"content"`
}

type chargeCatalogFile struct {
	Charges []chargeEntry `yaml:"charges"`
}

// EmbeddedChargeProvider serves the built-in charge catalog. It satisfies
// ChargeProvider and keeps fetched artwork in an evict-never cache shared by
// concurrent renders.
type EmbeddedChargeProvider struct {
	catalog map[string]chargeEntry
	cache   *Cache[ChargeArtwork]
}

var _ ChargeProvider = (*EmbeddedChargeProvider)(nil)

// NewEmbeddedChargeProvider loads the embedded charge catalog.
func NewEmbeddedChargeProvider() (*EmbeddedChargeProvider, error) {
	data, err := embeddedCatalogs.ReadFile("data/charges.yaml")
	if err != nil {
		return nil, fmt.Errorf("assets: read charge catalog: %w", err)
	}
	var doc chargeCatalogFile
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("assets: parse charge catalog: %w", err)
	}

	catalog := make(map[string]chargeEntry, len(doc.Charges))
	for _, entry := range doc.Charges {
		if entry.ID == "" {
			return nil, fmt.Errorf("assets: charge catalog entry missing id")
		}
		if _, exists := catalog[entry.ID]; exists {
			return nil, fmt.Errorf("assets: duplicate charge id %q", entry.ID)
		}
		catalog[entry.ID] = entry
	}
	return &EmbeddedChargeProvider{
		catalog: catalog,
		cache:   NewCache[ChargeArtwork](),
	}, nil
}

// Fetch resolves artwork by charge id, honouring context cancellation.
func (p *EmbeddedChargeProvider) Fetch(ctx context.Context, chargeID string) (ChargeArtwork, error) {
	if err := ctx.Err(); err != nil {
		return ChargeArtwork{}, &FetchError{ID: chargeID, Err: err}
	}
	if artwork, ok := p.cache.Get(chargeID); ok {
		return artwork, nil
	}

	entry, ok := p.catalog[chargeID]
	if !ok {
		return ChargeArtwork{}, &NotFoundError{ID: chargeID}
	}
	artwork := ChargeArtwork{
		ViewBox:    entry.ViewBox,
		Content:    strings.TrimSpace(entry.Content),
		FillMarker: entry.FillMarker,
	}
	p.cache.Put(chargeID, artwork)
	return artwork, nil
}

// BlazonTerm names count charges of the given tincture in blazon wording,
// e.g. ("lion4", "or", 3) → "three lions rampant or". Unknown ids degrade to
// a generic noun so blazon generation stays total.
func (p *EmbeddedChargeProvider) BlazonTerm(chargeID, tinctureName string, count int) string {
	entry, ok := p.catalog[chargeID]
	if !ok {
		entry = chargeEntry{Article: "a", Singular: "charge", Plural: "charges"}
	}
	var noun string
	switch {
	case count <= 1:
		article := entry.Article
		if article == "" {
			article = "a"
		}
		noun = article + " " + entry.Singular
	default:
		noun = countWord(count) + " " + entry.Plural
	}
	if tinctureName == "" {
		return noun
	}
	return noun + " " + tinctureName
}

// Known reports whether the catalog holds the charge id. The interactive
// composer uses it for input validation.
func (p *EmbeddedChargeProvider) Known(chargeID string) bool {
	_, ok := p.catalog[chargeID]
	return ok
}

// ChargeIDs lists the catalog's charge identifiers in unspecified order.
func (p *EmbeddedChargeProvider) ChargeIDs() []string {
	ids := make([]string, 0, len(p.catalog))
	for id := range p.catalog {
		ids = append(ids, id)
	}
	return ids
}

func countWord(n int) string {
	switch n {
	case 2:
		return "two"
	case 3:
		return "three"
	default:
		return fmt.Sprintf("%d", n)
	}
}

type outlineEntry struct {
	ID          string  `yaml:"id"`
	ViewBox     string  `yaml:"viewBox"`
	BoundingBox bbox    `yaml:"boundingBox"`
	Path        string  `yaml:"path"`
	Stroke      float64 `yaml:"stroke"`
}

type bbox struct {
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

type outlineCatalogFile struct {
	Default  string         `yaml:"default"`
	Outlines []outlineEntry `yaml:"outlines"`
}

// EmbeddedOutlineProvider serves the built-in shield outlines. Unknown shield
// types resolve to the catalog's default outline.
type EmbeddedOutlineProvider struct {
	outlines  map[string]Outline
	defaultID string
}

var _ OutlineProvider = (*EmbeddedOutlineProvider)(nil)

// NewEmbeddedOutlineProvider loads the embedded outline catalog.
func NewEmbeddedOutlineProvider() (*EmbeddedOutlineProvider, error) {
	data, err := embeddedCatalogs.ReadFile("data/outlines.yaml")
	if err != nil {
		return nil, fmt.Errorf("assets: read outline catalog: %w", err)
	}
	var doc outlineCatalogFile
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("assets: parse outline catalog: %w", err)
	}
	if doc.Default == "" {
		return nil, fmt.Errorf("assets: outline catalog declares no default")
	}

	outlines := make(map[string]Outline, len(doc.Outlines))
	for _, entry := range doc.Outlines {
		box := entry.BoundingBox
		outline := Outline{
			Path:    entry.Path,
			ViewBox: entry.ViewBox,
		}
		outline.BoundingBox.X = box.X
		outline.BoundingBox.Y = box.Y
		outline.BoundingBox.Width = box.Width
		outline.BoundingBox.Height = box.Height
		if outline.BoundingBox.Empty() {
			return nil, fmt.Errorf("assets: outline %q has an empty bounding box", entry.ID)
		}
		outlines[entry.ID] = outline
	}
	if _, ok := outlines[doc.Default]; !ok {
		return nil, fmt.Errorf("assets: default outline %q not in catalog", doc.Default)
	}
	return &EmbeddedOutlineProvider{outlines: outlines, defaultID: doc.Default}, nil
}

// Load resolves an outline; unknown ids fall back to the default shape.
func (p *EmbeddedOutlineProvider) Load(shieldType string) (Outline, error) {
	if outline, ok := p.outlines[shieldType]; ok {
		return outline, nil
	}
	outline, ok := p.outlines[p.defaultID]
	if !ok {
		return Outline{}, fmt.Errorf("assets: default outline %q missing", p.defaultID)
	}
	return outline, nil
}

// OutlineIDs lists the catalog's shield type identifiers in unspecified
// order.
func (p *EmbeddedOutlineProvider) OutlineIDs() []string {
	ids := make([]string, 0, len(p.outlines))
	for id := range p.outlines {
		ids = append(ids, id)
	}
	return ids
}
