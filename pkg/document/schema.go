package document

import (
	"context"
	"embed"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/goliatone/go-blazonry/pkg/heraldry"
)

//go:embed schema/composition.yaml
var schemaFS embed.FS

var (
	schemaOnce  sync.Once
	schemaValue *openapi3.Schema
	schemaErr   error
)

// compositionSchema loads the embedded OpenAPI schema once. A broken embedded
// schema is a build defect, not a runtime condition, so the error is cached
// and surfaces on every validation attempt.
func compositionSchema() (*openapi3.Schema, error) {
	schemaOnce.Do(func() {
		raw, err := schemaFS.ReadFile("schema/composition.yaml")
		if err != nil {
			schemaErr = fmt.Errorf("document: read embedded schema: %w", err)
			return
		}

		loader := &openapi3.Loader{Context: context.Background()}
		spec, err := loader.LoadFromData(raw)
		if err != nil {
			schemaErr = fmt.Errorf("document: load embedded schema: %w", err)
			return
		}
		if err := spec.Validate(loader.Context, openapi3.DisableExamplesValidation()); err != nil {
			schemaErr = fmt.Errorf("document: validate embedded schema: %w", err)
			return
		}

		ref, ok := spec.Components.Schemas["Composition"]
		if !ok || ref.Value == nil {
			schemaErr = fmt.Errorf("document: embedded schema missing Composition")
			return
		}
		schemaValue = ref.Value
	})
	return schemaValue, schemaErr
}

// ValidateShape checks a composition against the embedded OpenAPI schema:
// required fields, array bounds, numeric ranges and enums. Failures come back
// as a heraldry.ValidationError so callers report schema and semantic issues
// the same way.
func ValidateShape(comp heraldry.Composition) error {
	schema, err := compositionSchema()
	if err != nil {
		return err
	}

	// Round-trip through JSON so the validator sees the wire shape, not Go
	// structs.
	payload, err := json.Marshal(comp)
	if err != nil {
		return fmt.Errorf("document: marshal composition: %w", err)
	}
	var value any
	if err := json.Unmarshal(payload, &value); err != nil {
		return fmt.Errorf("document: unmarshal composition: %w", err)
	}

	err = schema.VisitJSON(value, openapi3.MultiErrors())
	if err == nil {
		return nil
	}

	issues := flattenSchemaErrors(err)
	return &heraldry.ValidationError{Issues: issues}
}

func flattenSchemaErrors(err error) []string {
	multi, ok := err.(openapi3.MultiError)
	if !ok {
		return []string{err.Error()}
	}
	issues := make([]string, 0, len(multi))
	for _, e := range multi {
		issues = append(issues, e.Error())
	}
	return issues
}
