// Package blazonry generates heraldic shield images and blazon text from
// layered composition documents. The root package re-exports the pipeline
// entry points so callers can start with a single import.
package blazonry

import (
	"context"

	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-blazonry/pkg/document"
	"github.com/goliatone/go-blazonry/pkg/heraldry"
	"github.com/goliatone/go-blazonry/pkg/orchestrator"
)

// Composition aliases the layered design model.
type Composition = heraldry.Composition

// Field, Ordinary and Charge alias the layer types for callers assembling
// compositions in code.
type (
	Field    = heraldry.Field
	Ordinary = heraldry.Ordinary
	Charge   = heraldry.Charge
)

// Request aliases the orchestrator request for convenience.
type Request = orchestrator.Request

// Result aliases the orchestrator result.
type Result = orchestrator.Result

// NewOrchestrator exposes the orchestrator constructor from the top-level
// module.
func NewOrchestrator(options ...orchestrator.Option) *orchestrator.Orchestrator {
	return orchestrator.New(options...)
}

// GenerateShield loads a composition source and renders the SVG shield image.
// It is the simplest entry point for callers that just want an image.
func GenerateShield(ctx context.Context, source document.Source, shieldType string, options ...orchestrator.Option) (Result, error) {
	gen := orchestrator.New(options...)
	return gen.Generate(ctx, orchestrator.Request{
		Source:     source,
		Renderer:   "shield",
		ShieldType: shieldType,
	})
}

// GenerateBlazon loads a composition source and renders its blazon text.
func GenerateBlazon(ctx context.Context, source document.Source, options ...orchestrator.Option) (Result, error) {
	gen := orchestrator.New(options...)
	return gen.Generate(ctx, orchestrator.Request{
		Source:   source,
		Renderer: "blazon",
	})
}

// GenerateFromComposition renders an in-memory composition with the named
// renderer, bypassing the document loader.
func GenerateFromComposition(ctx context.Context, comp Composition, rendererName, shieldType string, options ...orchestrator.Option) (Result, error) {
	gen := orchestrator.New(options...)
	return gen.Generate(ctx, orchestrator.Request{
		Composition: &comp,
		Renderer:    rendererName,
		ShieldType:  shieldType,
	})
}

// WithThemeSelector passes a go-theme selector through to the orchestrator so
// theme and variant choices resolve to palette overrides ahead of rendering.
func WithThemeSelector(selector theme.ThemeSelector) orchestrator.Option {
	return orchestrator.WithThemeSelector(selector)
}

// WithDefaultTheme forwards the default theme selection.
func WithDefaultTheme(name, variant string) orchestrator.Option {
	return orchestrator.WithDefaultTheme(name, variant)
}
