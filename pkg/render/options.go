package render

import theme "github.com/goliatone/go-theme"

// Options describe per-request data renderers can use to customise output
// without touching the composition itself.
type Options struct {
	// ShieldType names the outline the projector should load. Empty selects
	// the provider's default outline.
	ShieldType string

	// Theme carries resolved go-theme configuration. The shield renderer
	// honours palette tokens named "tincture.<name>" as hex overrides for the
	// catalog entry of the same name.
	Theme *theme.RendererConfig

	// ChargeFailure is invoked once per charge whose artwork could not be
	// fetched. The render continues without that charge; the hook is how the
	// caller learns the output is degraded. May be nil.
	ChargeFailure func(chargeID string, err error)
}

// TinctureToken is the theme token prefix for palette overrides.
const TinctureToken = "tincture."

// PaletteOverride resolves a theme token override for the named tincture.
func (o Options) PaletteOverride(name string) (string, bool) {
	if o.Theme == nil || len(o.Theme.Tokens) == 0 {
		return "", false
	}
	hex, ok := o.Theme.Tokens[TinctureToken+name]
	return hex, ok && hex != ""
}

// ReportChargeFailure invokes the failure hook when one is configured.
func (o Options) ReportChargeFailure(chargeID string, err error) {
	if o.ChargeFailure != nil {
		o.ChargeFailure(chargeID, err)
	}
}
