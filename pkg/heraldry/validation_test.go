package heraldry

import (
	"errors"
	"strings"
	"testing"
)

func validComposition() Composition {
	return Composition{
		Field: Field{Division: "perPale", Tincture1: "azure", Tincture2: "or"},
		Ordinaries: []Ordinary{
			{Type: "fess", Tincture: "gules", Count: 2, Visible: true},
		},
		Charges: []Charge{
			{ID: "lion4", Tincture: "or", Count: 3, Arrangement: "twoAndOne", Size: 1, Visible: true},
		},
	}
}

func TestValidate_AcceptsWellFormedComposition(t *testing.T) {
	if err := Validate(validComposition(), DefaultCatalog()); err != nil {
		t.Fatalf("unexpected validation error: %v", err)
	}
}

func TestValidate_PlainFieldNeedsOnlyOneTincture(t *testing.T) {
	comp := Composition{Field: Field{Division: "plain", Tincture1: "azure"}}
	if err := Validate(comp, DefaultCatalog()); err != nil {
		t.Fatalf("unexpected validation error: %v", err)
	}
}

func TestValidate_Rejections(t *testing.T) {
	cases := []struct {
		name    string
		mutate  func(*Composition)
		keyword string
	}{
		{
			name:    "unknown tincture",
			mutate:  func(c *Composition) { c.Field.Tincture1 = "chartreuse" },
			keyword: "tincture1",
		},
		{
			name:    "unknown division",
			mutate:  func(c *Composition) { c.Field.Division = "perNothing" },
			keyword: "division",
		},
		{
			name:    "divided field missing tincture2",
			mutate:  func(c *Composition) { c.Field.Tincture2 = "" },
			keyword: "tincture2 is required",
		},
		{
			name: "tierced field missing tincture3",
			mutate: func(c *Composition) {
				c.Field.Division = "tiercedPerPale"
				c.Field.Tincture3 = ""
			},
			keyword: "tincture3 is required",
		},
		{
			name:    "unknown line style",
			mutate:  func(c *Composition) { c.Ordinaries[0].LineStyle = "sawtooth" },
			keyword: "line style",
		},
		{
			name:    "count too high",
			mutate:  func(c *Composition) { c.Ordinaries[0].Count = 4 },
			keyword: "count 4",
		},
		{
			name:    "count too low",
			mutate:  func(c *Composition) { c.Charges[0].Count = 0 },
			keyword: "count 0",
		},
		{
			name: "too many layers",
			mutate: func(c *Composition) {
				ord := c.Ordinaries[0]
				c.Ordinaries = []Ordinary{ord, ord, ord, ord}
			},
			keyword: "exceeds maximum",
		},
		{
			name:    "charge size out of range",
			mutate:  func(c *Composition) { c.Charges[0].Size = 3.1 },
			keyword: "size",
		},
		{
			name:    "arrangement count mismatch",
			mutate:  func(c *Composition) { c.Charges[0].Count = 2 },
			keyword: "arrangement",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			comp := validComposition()
			tc.mutate(&comp)

			err := Validate(comp, DefaultCatalog())
			if err == nil {
				t.Fatal("expected validation error")
			}
			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("expected *ValidationError, got %T", err)
			}
			if !strings.Contains(err.Error(), tc.keyword) {
				t.Fatalf("error %q does not mention %q", err.Error(), tc.keyword)
			}
		})
	}
}

func TestValidate_CollectsAllIssues(t *testing.T) {
	comp := validComposition()
	comp.Field.Tincture1 = "nope"
	comp.Ordinaries[0].Count = 9
	comp.Charges[0].Tincture = "also-nope"

	err := Validate(comp, DefaultCatalog())
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected *ValidationError, got %v", err)
	}
	if len(verr.Issues) != 3 {
		t.Fatalf("expected 3 issues, got %d: %v", len(verr.Issues), verr.Issues)
	}
}
