// Package shield renders a composition into a self-contained SVG document:
// field division, ordinary layers and charge layers are composed in the
// 200×200 canonical space, then projected onto the shield outline's bounding
// box and clipped to its path.
package shield

import (
	"context"
	"fmt"
	"io/fs"
	"strings"

	"github.com/goliatone/go-blazonry/pkg/assets"
	"github.com/goliatone/go-blazonry/pkg/geometry"
	"github.com/goliatone/go-blazonry/pkg/heraldry"
	"github.com/goliatone/go-blazonry/pkg/render"
	rendertemplate "github.com/goliatone/go-blazonry/pkg/render/template"
)

// fallbackHex fills regions whose tincture cannot be resolved. Unknown
// identifiers degrade instead of aborting a render already in flight.
const fallbackHex = "#F5F5F5"

// Option configures the renderer.
type Option func(*config)

type config struct {
	catalog          *heraldry.Catalog
	charges          assets.ChargeProvider
	outlines         assets.OutlineProvider
	templateFS       fs.FS
	templateRenderer rendertemplate.Renderer
	borderColour     string
	borderWidth      float64
}

// WithCatalog replaces the default registries.
func WithCatalog(catalog *heraldry.Catalog) Option {
	return func(cfg *config) {
		if catalog != nil {
			cfg.catalog = catalog
		}
	}
}

// WithChargeProvider injects the charge artwork source.
func WithChargeProvider(provider assets.ChargeProvider) Option {
	return func(cfg *config) {
		if provider != nil {
			cfg.charges = provider
		}
	}
}

// WithOutlineProvider injects the shield outline source.
func WithOutlineProvider(provider assets.OutlineProvider) Option {
	return func(cfg *config) {
		if provider != nil {
			cfg.outlines = provider
		}
	}
}

// WithTemplatesFS supplies an alternate document template bundle.
func WithTemplatesFS(files fs.FS) Option {
	return func(cfg *config) {
		if files != nil {
			cfg.templateFS = files
		}
	}
}

// WithTemplateRenderer injects a custom template renderer implementation.
func WithTemplateRenderer(renderer rendertemplate.Renderer) Option {
	return func(cfg *config) {
		if renderer != nil {
			cfg.templateRenderer = renderer
		}
	}
}

// WithBorder overrides the outline stroke.
func WithBorder(colour string, width float64) Option {
	return func(cfg *config) {
		if colour != "" {
			cfg.borderColour = colour
		}
		if width > 0 {
			cfg.borderWidth = width
		}
	}
}

// Renderer is the SVG image renderer.
type Renderer struct {
	catalog      *heraldry.Catalog
	charges      assets.ChargeProvider
	outlines     assets.OutlineProvider
	templates    rendertemplate.Renderer
	borderColour string
	borderWidth  float64
}

var _ render.Renderer = (*Renderer)(nil)

// New constructs the shield renderer applying any provided options. Missing
// dependencies fall back to the embedded catalog, providers and templates.
func New(options ...Option) (*Renderer, error) {
	cfg := config{
		templateFS:   TemplatesFS(),
		borderColour: "#2B2B2B",
		borderWidth:  3,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}

	if cfg.catalog == nil {
		cfg.catalog = heraldry.DefaultCatalog()
	}
	if cfg.charges == nil {
		provider, err := assets.NewEmbeddedChargeProvider()
		if err != nil {
			return nil, fmt.Errorf("shield renderer: charge provider: %w", err)
		}
		cfg.charges = provider
	}
	if cfg.outlines == nil {
		provider, err := assets.NewEmbeddedOutlineProvider()
		if err != nil {
			return nil, fmt.Errorf("shield renderer: outline provider: %w", err)
		}
		cfg.outlines = provider
	}
	if cfg.templateRenderer == nil {
		engine, err := rendertemplate.New(
			rendertemplate.WithFS(cfg.templateFS),
			rendertemplate.WithExtension(".tmpl"),
		)
		if err != nil {
			return nil, fmt.Errorf("shield renderer: configure template renderer: %w", err)
		}
		cfg.templateRenderer = engine
	}

	return &Renderer{
		catalog:      cfg.catalog,
		charges:      cfg.charges,
		outlines:     cfg.outlines,
		templates:    cfg.templateRenderer,
		borderColour: cfg.borderColour,
		borderWidth:  cfg.borderWidth,
	}, nil
}

func (r *Renderer) Name() string {
	return "shield"
}

func (r *Renderer) ContentType() string {
	return "image/svg+xml"
}

// Render composes the canonical-space artwork and projects it onto the
// requested shield outline. A failing charge degrades the output (and is
// reported through the options hook); a failing outline aborts the render.
func (r *Renderer) Render(ctx context.Context, comp heraldry.Composition, options render.Options) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	outline, err := r.outlines.Load(options.ShieldType)
	if err != nil {
		return nil, fmt.Errorf("shield renderer: load outline: %w", err)
	}

	fetched := r.fetchCharges(ctx, comp.Charges)

	var artwork strings.Builder
	r.composeField(&artwork, comp.Field, options)
	r.composeOrdinaries(&artwork, comp.Ordinaries, options)
	r.composeCharges(&artwork, comp.Charges, fetched, outline, options)

	proj := projectOnto(outline)
	docRect := documentRect(outline)

	output, err := r.templates.Render("templates/document.svg", map[string]any{
		"width":         geometry.FormatCoord(docRect.Width),
		"height":        geometry.FormatCoord(docRect.Height),
		"view_box":      viewBoxAttr(docRect),
		"clip_id":       "shield-outline",
		"outline_path":  outline.Path,
		"projection":    proj.Transform(),
		"artwork":       artwork.String(),
		"border_colour": r.borderColour,
		"border_width":  geometry.FormatCoord(r.borderWidth),
	})
	if err != nil {
		return nil, fmt.Errorf("shield renderer: render document: %w", err)
	}
	return []byte(output), nil
}

// resolveTincture maps a tincture name to a hex fill, honouring theme palette
// overrides first, then the catalog, then the safe fallback.
func (r *Renderer) resolveTincture(name string, options render.Options) string {
	if hex, ok := options.PaletteOverride(name); ok {
		return hex
	}
	if tincture, ok := r.catalog.Tincture(name); ok {
		return tincture.Hex
	}
	return fallbackHex
}

// lineStyleFor resolves a line style name into texture parameters. Unknown
// names degrade to a straight boundary.
func (r *Renderer) lineStyleFor(name string) geometry.LineStyle {
	spec, ok := r.catalog.LineStyle(name)
	if !ok {
		return geometry.LineStyle{Name: geometry.LineStraight}
	}
	return geometry.LineStyle{Name: spec.Name, Unit: spec.Unit, Amplitude: spec.Amplitude}
}

func writeRegion(b *strings.Builder, path geometry.Path, fill string) {
	fmt.Fprintf(b, "<path d=\"%s\" fill=\"%s\"/>\n", path.Data(), fill)
}

func documentRect(outline assets.Outline) geometry.Rect {
	if rect, err := assets.ParseViewBox(outline.ViewBox); err == nil && !rect.Empty() {
		return rect
	}
	box := outline.BoundingBox
	return geometry.Rect{X: 0, Y: 0, Width: box.X + box.Width + box.X, Height: box.Y + box.Height + box.Y}
}

func viewBoxAttr(rect geometry.Rect) string {
	return geometry.FormatCoord(rect.X) + " " + geometry.FormatCoord(rect.Y) + " " +
		geometry.FormatCoord(rect.Width) + " " + geometry.FormatCoord(rect.Height)
}
