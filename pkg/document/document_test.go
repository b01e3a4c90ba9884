package document

import (
	"context"
	"errors"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-blazonry/pkg/heraldry"
)

const layeredYAML = `version: 2
field:
  division: perPale
  tincture1: azure
  tincture2: or
ordinaries:
  - type: fess
    tincture: gules
    count: 2
    visible: true
charges:
  - chargeId: lion4
    tincture: or
    count: 3
    arrangement: twoAndOne
    visible: true
`

const flatYAML = `version: 1
field:
  division: plain
  tincture1: gules
ordinary:
  type: chevron
  tincture: or
charge:
  chargeId: mullet
  tincture: argent
`

func TestDecodeLayered(t *testing.T) {
	doc := MustNewDocument(SourceFromFS("composition.yaml"), []byte(layeredYAML))
	comp, err := Decode(doc)
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}

	want := heraldry.Composition{
		Field: heraldry.Field{Division: "perPale", Tincture1: "azure", Tincture2: "or"},
		Ordinaries: []heraldry.Ordinary{
			{Type: "fess", Tincture: "gules", Count: 2, Visible: true},
		},
		Charges: []heraldry.Charge{
			{ID: "lion4", Tincture: "or", Count: 3, Arrangement: "twoAndOne", Visible: true},
		},
	}
	if diff := cmp.Diff(want, comp); diff != "" {
		t.Fatalf("composition mismatch (-want +got):\n%s", diff)
	}
}

func TestDecodeJSONPayload(t *testing.T) {
	raw := `{"version":2,"field":{"division":"plain","tincture1":"vert"}}`
	doc := MustNewDocument(SourceFromFS("composition.json"), []byte(raw))
	comp, err := Decode(doc)
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if comp.Field.Tincture1 != "vert" {
		t.Fatalf("tincture1 = %q, want vert", comp.Field.Tincture1)
	}
}

func TestDecodeMigratesFlatSchema(t *testing.T) {
	doc := MustNewDocument(SourceFromFS("flat.yaml"), []byte(flatYAML))
	comp, err := Decode(doc)
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}

	want := heraldry.Composition{
		Field: heraldry.Field{Division: "plain", Tincture1: "gules"},
		Ordinaries: []heraldry.Ordinary{
			{Type: "chevron", Tincture: "or", Count: 1, Visible: true},
		},
		Charges: []heraldry.Charge{
			{ID: "mullet", Tincture: "argent", Count: 1, Arrangement: "single", Visible: true},
		},
	}
	if diff := cmp.Diff(want, comp); diff != "" {
		t.Fatalf("migrated composition mismatch (-want +got):\n%s", diff)
	}
}

func TestDecodeMissingVersionReadsLayered(t *testing.T) {
	raw := "field:\n  division: plain\n  tincture1: or\n"
	doc := MustNewDocument(SourceFromFS("composition.yaml"), []byte(raw))
	comp, err := Decode(doc)
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if comp.Field.Division != "plain" {
		t.Fatalf("division = %q", comp.Field.Division)
	}
}

func TestDecodeUnsupportedVersion(t *testing.T) {
	doc := MustNewDocument(SourceFromFS("c.yaml"), []byte("version: 7\nfield:\n  division: plain\n  tincture1: or\n"))
	if _, err := Decode(doc); err == nil || !strings.Contains(err.Error(), "unsupported schema version") {
		t.Fatalf("Decode() error = %v, want unsupported version", err)
	}
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	comp := heraldry.Composition{
		Field: heraldry.Field{Division: "barry", Tincture1: "azure", Tincture2: "argent", Multiplicity: 8},
		Ordinaries: []heraldry.Ordinary{
			{Type: "pale", Tincture: "gules", Count: 1, Visible: true},
		},
	}
	raw, err := Encode(comp)
	if err != nil {
		t.Fatalf("Encode() error = %v", err)
	}
	if !strings.Contains(string(raw), "version: 2") {
		t.Fatalf("encoded document missing version discriminator:\n%s", raw)
	}

	got, err := Decode(MustNewDocument(SourceFromFS("c.yaml"), raw))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if diff := cmp.Diff(comp, got); diff != "" {
		t.Fatalf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestValidateShape(t *testing.T) {
	valid := heraldry.Composition{
		Field: heraldry.Field{Division: "perPale", Tincture1: "azure", Tincture2: "or"},
		Ordinaries: []heraldry.Ordinary{
			{Type: "fess", Tincture: "gules", Count: 2, Visible: true},
		},
	}
	if err := ValidateShape(valid); err != nil {
		t.Fatalf("ValidateShape(valid) error = %v", err)
	}
}

func TestValidateShapeRejections(t *testing.T) {
	tests := []struct {
		name string
		comp heraldry.Composition
	}{
		{
			name: "missing division",
			comp: heraldry.Composition{Field: heraldry.Field{Tincture1: "azure"}},
		},
		{
			name: "ordinary count out of range",
			comp: heraldry.Composition{
				Field: heraldry.Field{Division: "plain", Tincture1: "azure"},
				Ordinaries: []heraldry.Ordinary{
					{Type: "fess", Tincture: "gules", Count: 5, Visible: true},
				},
			},
		},
		{
			name: "charge size out of range",
			comp: heraldry.Composition{
				Field: heraldry.Field{Division: "plain", Tincture1: "azure"},
				Charges: []heraldry.Charge{
					{ID: "lion4", Tincture: "or", Size: 4.5, Count: 1, Visible: true},
				},
			},
		},
		{
			name: "too many layers",
			comp: heraldry.Composition{
				Field: heraldry.Field{Division: "plain", Tincture1: "azure"},
				Ordinaries: []heraldry.Ordinary{
					{Type: "fess", Tincture: "gules", Count: 1, Visible: true},
					{Type: "pale", Tincture: "gules", Count: 1, Visible: true},
					{Type: "bend", Tincture: "gules", Count: 1, Visible: true},
					{Type: "chief", Tincture: "gules", Count: 1, Visible: true},
				},
			},
		},
		{
			name: "bad thickness enum",
			comp: heraldry.Composition{
				Field: heraldry.Field{Division: "plain", Tincture1: "azure"},
				Ordinaries: []heraldry.Ordinary{
					{Type: "fess", Tincture: "gules", Thickness: "chunky", Count: 1, Visible: true},
				},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateShape(tt.comp)
			if err == nil {
				t.Fatal("ValidateShape() = nil, want error")
			}
			var verr *heraldry.ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("ValidateShape() error = %T, want *heraldry.ValidationError", err)
			}
			if len(verr.Issues) == 0 {
				t.Fatal("validation error carries no issues")
			}
		})
	}
}

func TestParseValidatesAfterMigration(t *testing.T) {
	// flat document whose ordinary lacks a tincture: migration succeeds but
	// the shape check rejects it
	raw := "version: 1\nfield:\n  division: plain\n  tincture1: gules\nordinary:\n  type: fess\n"
	doc := MustNewDocument(SourceFromFS("flat.yaml"), []byte(raw))
	_, err := Parse(doc)
	var verr *heraldry.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("Parse() error = %v, want validation error", err)
	}
}

func TestLoaderFromFS(t *testing.T) {
	files := fstest.MapFS{
		"compositions/arms.yaml": &fstest.MapFile{Data: []byte(layeredYAML)},
	}
	l := NewLoader(WithFileSystem(files))

	doc, err := l.Load(context.Background(), SourceFromFS("compositions/arms.yaml"))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if doc.Location() != "compositions/arms.yaml" {
		t.Fatalf("Location() = %q", doc.Location())
	}
	if _, err := Parse(doc); err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
}

func TestLoaderRejectsURLWhenOffline(t *testing.T) {
	l := NewLoader()
	_, err := l.Load(context.Background(), SourceFromURL("https://example.com/arms.yaml"))
	if err == nil || !strings.Contains(err.Error(), "disabled") {
		t.Fatalf("Load() error = %v, want disabled url sources", err)
	}
}

func TestLoaderCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	l := NewLoader()
	if _, err := l.Load(ctx, SourceFromFS("x.yaml")); !errors.Is(err, context.Canceled) {
		t.Fatalf("Load() error = %v, want context.Canceled", err)
	}
}
