package heraldry

// MaxLayers caps the ordinary and charge arrays. Compositions carrying more
// layers are rejected by Validate before any generation begins.
const MaxLayers = 3

// Thickness selects an ordinary's band width multiplier.
type Thickness string

const (
	ThicknessNarrow Thickness = "narrow"
	ThicknessNormal Thickness = "normal"
	ThicknessWide   Thickness = "wide"
)

// Multiplier returns the band width factor for the thickness. Unknown values
// resolve to the normal width so a malformed layer still renders.
func (t Thickness) Multiplier() float64 {
	switch t {
	case ThicknessNarrow:
		return 0.6
	case ThicknessWide:
		return 1.4
	default:
		return 1.0
	}
}

// Charge size bounds. Size is a scale applied to the charge artwork.
const (
	MinChargeSize = 0.7
	MaxChargeSize = 2.3
)

// Field describes the layer-0 division of the shield surface.
//
// Multiplicity is meaningful only for stripe and check divisions (paly,
// barry, bendy, checky, lozengy); Tincture3 only for tierced divisions.
type Field struct {
	Division     string `json:"division" yaml:"division"`
	Tincture1    string `json:"tincture1" yaml:"tincture1"`
	Tincture2    string `json:"tincture2,omitempty" yaml:"tincture2,omitempty"`
	Tincture3    string `json:"tincture3,omitempty" yaml:"tincture3,omitempty"`
	LineStyle    string `json:"lineStyle,omitempty" yaml:"lineStyle,omitempty"`
	Multiplicity int    `json:"multiplicity,omitempty" yaml:"multiplicity,omitempty"`
	Inverted     bool   `json:"inverted,omitempty" yaml:"inverted,omitempty"`
}

// Ordinary is one geometric band layer. Array index is stacking order; index
// zero is drawn first.
type Ordinary struct {
	Type      string    `json:"type" yaml:"type"`
	Tincture  string    `json:"tincture" yaml:"tincture"`
	LineStyle string    `json:"lineStyle,omitempty" yaml:"lineStyle,omitempty"`
	Thickness Thickness `json:"thickness,omitempty" yaml:"thickness,omitempty"`
	Count     int       `json:"count" yaml:"count"`
	Inverted  bool      `json:"inverted,omitempty" yaml:"inverted,omitempty"`
	Visible   bool      `json:"visible" yaml:"visible"`
}

// Charge is one symbol layer. ID references artwork held by an external
// charge asset provider.
type Charge struct {
	ID          string  `json:"chargeId" yaml:"chargeId"`
	Tincture    string  `json:"tincture" yaml:"tincture"`
	Size        float64 `json:"size,omitempty" yaml:"size,omitempty"`
	Count       int     `json:"count" yaml:"count"`
	Arrangement string  `json:"arrangement,omitempty" yaml:"arrangement,omitempty"`
	Visible     bool    `json:"visible" yaml:"visible"`
}

// Composition is the complete design: a field plus up to MaxLayers ordinaries
// and charges, each array ordered bottom to top.
type Composition struct {
	Field      Field      `json:"field" yaml:"field"`
	Ordinaries []Ordinary `json:"ordinaries,omitempty" yaml:"ordinaries,omitempty"`
	Charges    []Charge   `json:"charges,omitempty" yaml:"charges,omitempty"`
}

// Clone returns a deep copy. Layer slices are copied so the result can be
// edited without touching the receiver.
func (c Composition) Clone() Composition {
	out := c
	if len(c.Ordinaries) > 0 {
		out.Ordinaries = append([]Ordinary(nil), c.Ordinaries...)
	}
	if len(c.Charges) > 0 {
		out.Charges = append([]Charge(nil), c.Charges...)
	}
	return out
}
