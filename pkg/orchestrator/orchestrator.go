// Package orchestrator coordinates the full pipeline from stored composition
// document to rendered output: load, migrate, validate, theme selection,
// render.
package orchestrator

import (
	"context"
	"errors"
	"fmt"

	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-blazonry/pkg/assets"
	"github.com/goliatone/go-blazonry/pkg/document"
	"github.com/goliatone/go-blazonry/pkg/heraldry"
	"github.com/goliatone/go-blazonry/pkg/render"
	"github.com/goliatone/go-blazonry/pkg/renderers/blazon"
	"github.com/goliatone/go-blazonry/pkg/renderers/shield"
)

const defaultRendererName = "shield"

// Option customises the orchestrator configuration.
type Option func(*Orchestrator)

// WithLoader injects a custom document loader.
func WithLoader(loader document.Loader) Option {
	return func(o *Orchestrator) {
		o.loader = loader
	}
}

// WithCatalog injects the heraldic registries used for validation.
func WithCatalog(catalog *heraldry.Catalog) Option {
	return func(o *Orchestrator) {
		o.catalog = catalog
	}
}

// WithChargeProvider injects the charge artwork source shared by the default
// renderers.
func WithChargeProvider(provider assets.ChargeProvider) Option {
	return func(o *Orchestrator) {
		o.charges = provider
	}
}

// WithOutlineProvider injects the shield outline source used by the default
// image renderer.
func WithOutlineProvider(provider assets.OutlineProvider) Option {
	return func(o *Orchestrator) {
		o.outlines = provider
	}
}

// WithRegistry injects a renderer registry.
func WithRegistry(registry *render.Registry) Option {
	return func(o *Orchestrator) {
		o.registry = registry
	}
}

// WithDefaultRenderer overrides the renderer used when a request omits an
// explicit Renderer field.
func WithDefaultRenderer(name string) Option {
	return func(o *Orchestrator) {
		o.defaultRenderer = name
	}
}

// WithThemeSelector passes a go-theme selector through so renderers receive
// resolved palette configuration.
func WithThemeSelector(selector theme.ThemeSelector) Option {
	return func(o *Orchestrator) {
		o.themeSelector = selector
	}
}

// WithDefaultTheme sets the theme selected when a request does not name one.
func WithDefaultTheme(name, variant string) Option {
	return func(o *Orchestrator) {
		o.defaultTheme = name
		o.defaultVariant = variant
	}
}

// Orchestrator coordinates the generation pipeline. It applies sensible
// defaults (embedded catalog and providers, shield and blazon renderers)
// while remaining open to dependency injection for advanced callers.
type Orchestrator struct {
	loader          document.Loader
	catalog         *heraldry.Catalog
	charges         assets.ChargeProvider
	outlines        assets.OutlineProvider
	registry        *render.Registry
	defaultRenderer string
	themeSelector   theme.ThemeSelector
	defaultTheme    string
	defaultVariant  string
	generations     *Coordinator
	initialiseErr   error
	defaultsApplied bool
}

// New constructs an Orchestrator applying any provided options. Missing
// dependencies are initialised with the built-in implementations so callers
// can start with a single constructor call.
func New(options ...Option) *Orchestrator {
	o := &Orchestrator{
		defaultRenderer: defaultRendererName,
		generations:     NewCoordinator(),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(o)
	}
	o.applyDefaults()
	return o
}

// Request describes the inputs required to generate output from a
// composition.
type Request struct {
	// Source identifies where the composition document lives. Optional when
	// Document or Composition is supplied.
	Source document.Source

	// Document allows callers to bypass the loader when they already hold a
	// raw payload.
	Document *document.Document

	// Composition bypasses document decoding entirely.
	Composition *heraldry.Composition

	// Renderer names the renderer to use. Empty falls back to the configured
	// default renderer.
	Renderer string

	// ShieldType names the outline for image renderers.
	ShieldType string

	// ThemeName and ThemeVariant select a palette through the configured
	// theme selector. Empty values fall back to the orchestrator defaults.
	ThemeName    string
	ThemeVariant string

	// ChargeFailure is forwarded to renderers so callers hear about degraded
	// output. May be nil.
	ChargeFailure func(chargeID string, err error)
}

// Result carries the rendered bytes plus the metadata callers need to place
// and possibly discard them.
type Result struct {
	Output      []byte
	ContentType string
	Renderer    string

	// Generation identifies this render pass. Stale is set when a younger
	// generation committed first; stale output should be discarded, not
	// displayed.
	Generation Generation
	Stale      bool

	// Warnings lists rule-of-tincture advisories. They never block a render.
	Warnings []string
}

// Generate executes the load → migrate → validate → render sequence.
// Validation failures surface as *heraldry.ValidationError before any
// renderer runs.
func (o *Orchestrator) Generate(ctx context.Context, req Request) (Result, error) {
	if ctx == nil {
		return Result{}, errors.New("orchestrator: context is required")
	}
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}
	if err := o.initialiseErr; err != nil {
		return Result{}, err
	}
	if !o.defaultsApplied {
		o.applyDefaults()
		if err := o.initialiseErr; err != nil {
			return Result{}, err
		}
	}

	generation := o.generations.Begin()

	comp, err := o.resolveComposition(ctx, req)
	if err != nil {
		return Result{}, err
	}

	if err := heraldry.Validate(comp, o.catalog); err != nil {
		return Result{}, err
	}

	renderer, err := o.rendererFor(req.Renderer)
	if err != nil {
		return Result{}, err
	}

	options := render.Options{
		ShieldType:    req.ShieldType,
		ChargeFailure: req.ChargeFailure,
	}
	if cfg, err := o.selectTheme(req); err != nil {
		return Result{}, err
	} else if cfg != nil {
		options.Theme = cfg
	}

	output, err := renderer.Render(ctx, comp, options)
	if err != nil {
		return Result{}, fmt.Errorf("orchestrator: render output: %w", err)
	}

	return Result{
		Output:      output,
		ContentType: renderer.ContentType(),
		Renderer:    renderer.Name(),
		Generation:  generation,
		Stale:       !o.generations.Commit(generation),
		Warnings:    heraldry.ContrastWarnings(comp, o.catalog),
	}, nil
}

// Generations exposes the render-generation coordinator so interactive
// callers can issue ids for edits that bypass Generate.
func (o *Orchestrator) Generations() *Coordinator {
	return o.generations
}

func (o *Orchestrator) resolveComposition(ctx context.Context, req Request) (heraldry.Composition, error) {
	if req.Composition != nil {
		comp := req.Composition.Clone()
		if err := document.ValidateShape(comp); err != nil {
			return heraldry.Composition{}, err
		}
		return comp, nil
	}
	if req.Document != nil {
		return document.Parse(*req.Document)
	}
	if req.Source == nil {
		return heraldry.Composition{}, errors.New("orchestrator: source, document or composition is required")
	}
	doc, err := o.loader.Load(ctx, req.Source)
	if err != nil {
		return heraldry.Composition{}, fmt.Errorf("orchestrator: load document: %w", err)
	}
	return document.Parse(doc)
}

func (o *Orchestrator) rendererFor(name string) (render.Renderer, error) {
	if o.registry == nil {
		return nil, errors.New("orchestrator: renderer registry is nil")
	}

	target := name
	if target == "" {
		target = o.defaultRenderer
	}

	if target != "" {
		renderer, err := o.registry.Get(target)
		if err == nil {
			return renderer, nil
		}
		if name != "" {
			return nil, fmt.Errorf("orchestrator: renderer %q: %w", name, err)
		}
	}

	names := o.registry.List()
	if len(names) == 0 {
		return nil, errors.New("orchestrator: no renderers registered")
	}

	renderer, err := o.registry.Get(names[0])
	if err != nil {
		return nil, fmt.Errorf("orchestrator: renderer %q: %w", names[0], err)
	}
	return renderer, nil
}

func (o *Orchestrator) applyDefaults() {
	if o.defaultsApplied {
		return
	}

	if o.loader == nil {
		o.loader = document.NewLoader()
	}
	if o.catalog == nil {
		o.catalog = heraldry.DefaultCatalog()
	}
	if o.charges == nil {
		provider, err := assets.NewEmbeddedChargeProvider()
		if err != nil {
			o.initialiseErr = fmt.Errorf("orchestrator: charge provider: %w", err)
			return
		}
		o.charges = provider
	}
	if o.outlines == nil {
		provider, err := assets.NewEmbeddedOutlineProvider()
		if err != nil {
			o.initialiseErr = fmt.Errorf("orchestrator: outline provider: %w", err)
			return
		}
		o.outlines = provider
	}
	if o.registry == nil {
		o.registry = render.NewRegistry()

		image, err := shield.New(
			shield.WithCatalog(o.catalog),
			shield.WithChargeProvider(o.charges),
			shield.WithOutlineProvider(o.outlines),
		)
		if err != nil {
			o.initialiseErr = fmt.Errorf("orchestrator: shield renderer: %w", err)
			return
		}
		o.registry.MustRegister(image)

		text, err := blazon.New(
			blazon.WithCatalog(o.catalog),
			blazon.WithChargeProvider(o.charges),
		)
		if err != nil {
			o.initialiseErr = fmt.Errorf("orchestrator: blazon renderer: %w", err)
			return
		}
		o.registry.MustRegister(text)
	}
	if o.defaultRenderer == "" {
		o.defaultRenderer = defaultRendererName
	}

	o.defaultsApplied = true
}
