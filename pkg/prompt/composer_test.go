package prompt

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-blazonry/pkg/heraldry"
)

// scriptDriver replays canned answers in the order prompts arrive.
type scriptDriver struct {
	t        *testing.T
	selects  []string
	inputs   []string
	confirms []bool
	err      error
}

func (d *scriptDriver) Select(_ context.Context, cfg SelectConfig) (int, error) {
	if d.err != nil {
		return 0, d.err
	}
	if len(d.selects) == 0 {
		d.t.Fatalf("unexpected select prompt %q", cfg.Message)
	}
	want := d.selects[0]
	d.selects = d.selects[1:]
	for i, option := range cfg.Options {
		if option == want {
			return i, nil
		}
	}
	d.t.Fatalf("prompt %q does not offer %q (options %v)", cfg.Message, want, cfg.Options)
	return 0, nil
}

func (d *scriptDriver) Input(_ context.Context, cfg InputConfig) (string, error) {
	if d.err != nil {
		return "", d.err
	}
	if len(d.inputs) == 0 {
		d.t.Fatalf("unexpected input prompt %q", cfg.Message)
	}
	out := d.inputs[0]
	d.inputs = d.inputs[1:]
	if cfg.Validator != nil {
		if err := cfg.Validator(out); err != nil {
			d.t.Fatalf("scripted input %q rejected: %v", out, err)
		}
	}
	return out, nil
}

func (d *scriptDriver) Confirm(_ context.Context, cfg ConfirmConfig) (bool, error) {
	if d.err != nil {
		return false, d.err
	}
	if len(d.confirms) == 0 {
		d.t.Fatalf("unexpected confirm prompt %q", cfg.Message)
	}
	out := d.confirms[0]
	d.confirms = d.confirms[1:]
	return out, nil
}

func (d *scriptDriver) Info(context.Context, string) error { return nil }

func TestComposeFullSession(t *testing.T) {
	driver := &scriptDriver{
		t: t,
		selects: []string{
			"perPale", "azure", "or", "wavy",
			"fess", "gules", "straight", "normal",
			"lion4", "or", "twoAndOne",
		},
		inputs:   []string{"2", "3"},
		confirms: []bool{true, false, false, true, false},
	}

	composer, err := NewComposer(WithDriver(driver))
	if err != nil {
		t.Fatalf("NewComposer() error = %v", err)
	}
	comp, err := composer.Compose(context.Background())
	if err != nil {
		t.Fatalf("Compose() error = %v", err)
	}

	want := heraldry.Composition{
		Field: heraldry.Field{
			Division: "perPale", Tincture1: "azure", Tincture2: "or", LineStyle: "wavy",
		},
		Ordinaries: []heraldry.Ordinary{
			{Type: "fess", Tincture: "gules", LineStyle: "straight", Thickness: heraldry.ThicknessNormal, Count: 2, Visible: true},
		},
		Charges: []heraldry.Charge{
			{ID: "lion4", Tincture: "or", Count: 3, Arrangement: "twoAndOne", Visible: true},
		},
	}
	if diff := cmp.Diff(want, comp); diff != "" {
		t.Fatalf("composition mismatch (-want +got):\n%s", diff)
	}

	if len(driver.selects)+len(driver.inputs)+len(driver.confirms) != 0 {
		t.Fatal("scripted answers left unconsumed")
	}
}

func TestComposePlainFieldSkipsSecondTincture(t *testing.T) {
	driver := &scriptDriver{
		t:        t,
		selects:  []string{"plain", "gules"},
		confirms: []bool{false, false},
	}
	composer, err := NewComposer(WithDriver(driver))
	if err != nil {
		t.Fatalf("NewComposer() error = %v", err)
	}
	comp, err := composer.Compose(context.Background())
	if err != nil {
		t.Fatalf("Compose() error = %v", err)
	}
	if comp.Field.Tincture2 != "" {
		t.Fatalf("plain field acquired a second tincture %q", comp.Field.Tincture2)
	}
}

func TestComposeStripeDivisionAsksMultiplicity(t *testing.T) {
	driver := &scriptDriver{
		t:        t,
		selects:  []string{"paly", "argent", "gules", "straight"},
		inputs:   []string{"8"},
		confirms: []bool{false, false},
	}
	composer, err := NewComposer(WithDriver(driver))
	if err != nil {
		t.Fatalf("NewComposer() error = %v", err)
	}
	comp, err := composer.Compose(context.Background())
	if err != nil {
		t.Fatalf("Compose() error = %v", err)
	}
	if comp.Field.Multiplicity != 8 {
		t.Fatalf("multiplicity = %d, want 8", comp.Field.Multiplicity)
	}
}

func TestComposeAbortPropagates(t *testing.T) {
	driver := &scriptDriver{t: t, err: ErrAborted}
	composer, err := NewComposer(WithDriver(driver))
	if err != nil {
		t.Fatalf("NewComposer() error = %v", err)
	}
	if _, err := composer.Compose(context.Background()); !errors.Is(err, ErrAborted) {
		t.Fatalf("Compose() error = %v, want ErrAborted", err)
	}
}
