package document

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-blazonry/pkg/heraldry"
)

// envelope carries the schema version discriminator ahead of the payload.
type envelope struct {
	Version int `json:"version" yaml:"version"`
}

type layeredPayload struct {
	Field      heraldry.Field      `json:"field" yaml:"field"`
	Ordinaries []heraldry.Ordinary `json:"ordinaries" yaml:"ordinaries"`
	Charges    []heraldry.Charge   `json:"charges" yaml:"charges"`
}

type legacyPayload struct {
	Field    heraldry.Field     `json:"field" yaml:"field"`
	Ordinary *heraldry.Ordinary `json:"ordinary" yaml:"ordinary"`
	Charge   *heraldry.Charge   `json:"charge" yaml:"charge"`
}

// Decode parses a stored document into the layered composition. Version-1
// flat documents are migrated on the way in; there is no reverse conversion.
// Documents without a version field are read as the current layered schema.
// YAML is the canonical encoding; JSON parses through the same path.
func Decode(doc Document) (heraldry.Composition, error) {
	raw := doc.Raw()

	var env envelope
	if err := yaml.Unmarshal(raw, &env); err != nil {
		return heraldry.Composition{}, fmt.Errorf("document: decode envelope: %w", err)
	}

	switch env.Version {
	case heraldry.SchemaVersionFlat:
		var payload legacyPayload
		if err := yaml.Unmarshal(raw, &payload); err != nil {
			return heraldry.Composition{}, fmt.Errorf("document: decode flat payload: %w", err)
		}
		return heraldry.MigrateLegacy(heraldry.LegacyComposition{
			Field:    payload.Field,
			Ordinary: payload.Ordinary,
			Charge:   payload.Charge,
		}), nil

	case 0, heraldry.SchemaVersionLayered:
		var payload layeredPayload
		if err := yaml.Unmarshal(raw, &payload); err != nil {
			return heraldry.Composition{}, fmt.Errorf("document: decode payload: %w", err)
		}
		return heraldry.Composition{
			Field:      payload.Field,
			Ordinaries: payload.Ordinaries,
			Charges:    payload.Charges,
		}, nil

	default:
		return heraldry.Composition{}, fmt.Errorf("document: unsupported schema version %d", env.Version)
	}
}

// Parse decodes a document and checks its structure against the embedded
// schema. Semantic checks against the catalog stay with heraldry.Validate.
func Parse(doc Document) (heraldry.Composition, error) {
	comp, err := Decode(doc)
	if err != nil {
		return heraldry.Composition{}, err
	}
	if err := ValidateShape(comp); err != nil {
		return heraldry.Composition{}, err
	}
	return comp, nil
}

// Encode serialises a composition as a current-version YAML document.
func Encode(comp heraldry.Composition) ([]byte, error) {
	out := struct {
		Version    int                 `yaml:"version"`
		Field      heraldry.Field      `yaml:"field"`
		Ordinaries []heraldry.Ordinary `yaml:"ordinaries,omitempty"`
		Charges    []heraldry.Charge   `yaml:"charges,omitempty"`
	}{
		Version:    heraldry.SchemaVersionLayered,
		Field:      comp.Field,
		Ordinaries: comp.Ordinaries,
		Charges:    comp.Charges,
	}
	raw, err := yaml.Marshal(out)
	if err != nil {
		return nil, fmt.Errorf("document: encode: %w", err)
	}
	return raw, nil
}
