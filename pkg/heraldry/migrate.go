package heraldry

// Schema versions carried by stored composition documents. Version 1 is the
// historical flat schema with at most one ordinary and one charge as scalar
// fields; version 2 is the layered schema used everywhere in this package.
const (
	SchemaVersionFlat    = 1
	SchemaVersionLayered = 2
)

// LegacyComposition is the version-1 flat schema. It exists only as a
// migration source; nothing renders it directly and there is deliberately no
// reverse conversion.
type LegacyComposition struct {
	Field    Field     `json:"field" yaml:"field"`
	Ordinary *Ordinary `json:"ordinary,omitempty" yaml:"ordinary,omitempty"`
	Charge   *Charge   `json:"charge,omitempty" yaml:"charge,omitempty"`
}

// MigrateLegacy lifts a flat composition into the layered schema. Scalar
// layers become single-element arrays; absent layers become empty arrays.
// Flat-schema layers predate the visibility flag, so migrated layers are
// always visible.
func MigrateLegacy(legacy LegacyComposition) Composition {
	out := Composition{Field: legacy.Field}
	if legacy.Ordinary != nil {
		ord := *legacy.Ordinary
		ord.Visible = true
		if ord.Count == 0 {
			ord.Count = 1
		}
		out.Ordinaries = []Ordinary{ord}
	}
	if legacy.Charge != nil {
		ch := *legacy.Charge
		ch.Visible = true
		if ch.Count == 0 {
			ch.Count = 1
		}
		if ch.Arrangement == "" {
			ch.Arrangement = "single"
		}
		out.Charges = []Charge{ch}
	}
	return out
}
