package orchestrator

import (
	"fmt"
	"strings"

	theme "github.com/goliatone/go-theme"
)

// selectTheme resolves the request's theme through the configured selector
// and flattens the selection into renderer configuration. No selector means
// no theme: renderers fall back to catalog palette values.
func (o *Orchestrator) selectTheme(req Request) (*theme.RendererConfig, error) {
	if o.themeSelector == nil {
		return nil, nil
	}

	name := req.ThemeName
	if name == "" {
		name = o.defaultTheme
	}
	variant := req.ThemeVariant
	if variant == "" {
		variant = o.defaultVariant
	}
	if name == "" {
		return nil, nil
	}

	selection, err := o.themeSelector.Select(name, variant)
	if err != nil {
		return nil, fmt.Errorf("orchestrator: select theme %q: %w", name, err)
	}
	if selection == nil {
		return nil, nil
	}
	return buildRendererConfig(selection), nil
}

// buildRendererConfig merges manifest tokens with variant overrides and
// derives CSS variables and the asset resolver renderers expect.
func buildRendererConfig(selection *theme.Selection) *theme.RendererConfig {
	cfg := &theme.RendererConfig{
		Theme:   selection.Theme,
		Variant: selection.Variant,
	}

	manifest := selection.Manifest
	if manifest == nil {
		return cfg
	}

	tokens := make(map[string]string, len(manifest.Tokens))
	for k, v := range manifest.Tokens {
		tokens[k] = v
	}
	partials := make(map[string]string, len(manifest.Templates))
	for k, v := range manifest.Templates {
		partials[k] = v
	}
	assetFiles := make(map[string]string, len(manifest.Assets.Files))
	for k, v := range manifest.Assets.Files {
		assetFiles[k] = v
	}

	if variant, ok := manifest.Variants[selection.Variant]; ok {
		for k, v := range variant.Tokens {
			tokens[k] = v
		}
		for k, v := range variant.Templates {
			partials[k] = v
		}
		for k, v := range variant.Assets.Files {
			assetFiles[k] = v
		}
	}

	cfg.Tokens = tokens
	cfg.Partials = partials
	cfg.CSSVars = make(map[string]string, len(tokens))
	for k, v := range tokens {
		cfg.CSSVars["--"+strings.ReplaceAll(k, ".", "-")] = v
	}

	prefix := manifest.Assets.Prefix
	cfg.AssetURL = func(key string) string {
		if key == "" {
			return ""
		}
		file, ok := assetFiles[key]
		if !ok {
			return ""
		}
		if prefix == "" {
			return file
		}
		return strings.TrimSuffix(prefix, "/") + "/" + file
	}

	return cfg
}
