package prompt

import (
	"context"
	"fmt"
	"strconv"

	"github.com/goliatone/go-blazonry/pkg/assets"
	"github.com/goliatone/go-blazonry/pkg/heraldry"
)

// ComposerOption configures the composer.
type ComposerOption func(*Composer)

// WithDriver replaces the terminal driver.
func WithDriver(driver PromptDriver) ComposerOption {
	return func(c *Composer) {
		if driver != nil {
			c.driver = driver
		}
	}
}

// WithCatalog replaces the default registries.
func WithCatalog(catalog *heraldry.Catalog) ComposerOption {
	return func(c *Composer) {
		if catalog != nil {
			c.catalog = catalog
		}
	}
}

// WithChargeIDs supplies the selectable charge identifiers.
func WithChargeIDs(ids []string) ComposerOption {
	return func(c *Composer) {
		if len(ids) > 0 {
			c.chargeIDs = ids
		}
	}
}

// Composer walks the user through building a composition layer by layer:
// field division, tinctures, ordinaries, charges. Every choice is offered
// from the catalog so the result passes validation by construction.
type Composer struct {
	driver    PromptDriver
	catalog   *heraldry.Catalog
	chargeIDs []string
}

// NewComposer constructs a Composer. Missing dependencies fall back to the
// survey driver, the embedded catalog and the embedded charge set.
func NewComposer(options ...ComposerOption) (*Composer, error) {
	c := &Composer{}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(c)
	}
	if c.driver == nil {
		c.driver = NewSurveyDriver()
	}
	if c.catalog == nil {
		c.catalog = heraldry.DefaultCatalog()
	}
	if len(c.chargeIDs) == 0 {
		provider, err := assets.NewEmbeddedChargeProvider()
		if err != nil {
			return nil, fmt.Errorf("prompt: charge provider: %w", err)
		}
		c.chargeIDs = provider.ChargeIDs()
	}
	return c, nil
}

// Compose runs the interactive session and returns the assembled
// composition.
func (c *Composer) Compose(ctx context.Context) (heraldry.Composition, error) {
	var comp heraldry.Composition

	field, err := c.composeField(ctx)
	if err != nil {
		return heraldry.Composition{}, err
	}
	comp.Field = field

	for len(comp.Ordinaries) < heraldry.MaxLayers {
		more, err := c.driver.Confirm(ctx, ConfirmConfig{Message: "Add an ordinary?"})
		if err != nil {
			return heraldry.Composition{}, err
		}
		if !more {
			break
		}
		ord, err := c.composeOrdinary(ctx)
		if err != nil {
			return heraldry.Composition{}, err
		}
		comp.Ordinaries = append(comp.Ordinaries, ord)
	}

	for len(comp.Charges) < heraldry.MaxLayers {
		more, err := c.driver.Confirm(ctx, ConfirmConfig{Message: "Add a charge?"})
		if err != nil {
			return heraldry.Composition{}, err
		}
		if !more {
			break
		}
		ch, err := c.composeCharge(ctx)
		if err != nil {
			return heraldry.Composition{}, err
		}
		comp.Charges = append(comp.Charges, ch)
	}

	if err := heraldry.Validate(comp, c.catalog); err != nil {
		return heraldry.Composition{}, err
	}
	return comp, nil
}

func (c *Composer) composeField(ctx context.Context) (heraldry.Field, error) {
	var field heraldry.Field

	division, err := c.selectName(ctx, "Field division", c.catalog.DivisionNames())
	if err != nil {
		return heraldry.Field{}, err
	}
	field.Division = division

	spec, _ := c.catalog.Division(division)

	field.Tincture1, err = c.selectName(ctx, "First tincture", c.catalog.TinctureNames())
	if err != nil {
		return heraldry.Field{}, err
	}
	if division != "plain" {
		field.Tincture2, err = c.selectName(ctx, "Second tincture", c.catalog.TinctureNames())
		if err != nil {
			return heraldry.Field{}, err
		}
	}
	if spec.Tierced {
		field.Tincture3, err = c.selectName(ctx, "Third tincture", c.catalog.TinctureNames())
		if err != nil {
			return heraldry.Field{}, err
		}
	}
	if spec.Textured {
		field.LineStyle, err = c.selectName(ctx, "Boundary line style", c.catalog.LineStyleNames())
		if err != nil {
			return heraldry.Field{}, err
		}
	}
	if spec.Multiplicity {
		field.Multiplicity, err = c.intInput(ctx, "Number of pieces", 6, 2, 12)
		if err != nil {
			return heraldry.Field{}, err
		}
	}
	return field, nil
}

func (c *Composer) composeOrdinary(ctx context.Context) (heraldry.Ordinary, error) {
	ord := heraldry.Ordinary{Visible: true}

	typ, err := c.selectName(ctx, "Ordinary", c.catalog.OrdinaryTypeNames())
	if err != nil {
		return heraldry.Ordinary{}, err
	}
	ord.Type = typ

	ord.Tincture, err = c.selectName(ctx, "Ordinary tincture", c.catalog.TinctureNames())
	if err != nil {
		return heraldry.Ordinary{}, err
	}
	ord.LineStyle, err = c.selectName(ctx, "Edge line style", c.catalog.LineStyleNames())
	if err != nil {
		return heraldry.Ordinary{}, err
	}

	thicknesses := []string{string(heraldry.ThicknessNarrow), string(heraldry.ThicknessNormal), string(heraldry.ThicknessWide)}
	idx, err := c.driver.Select(ctx, SelectConfig{Message: "Thickness", Options: thicknesses, DefaultIndex: 1})
	if err != nil {
		return heraldry.Ordinary{}, err
	}
	ord.Thickness = heraldry.Thickness(thicknesses[idx])

	ord.Count, err = c.intInput(ctx, "How many?", 1, 1, 3)
	if err != nil {
		return heraldry.Ordinary{}, err
	}
	ord.Inverted, err = c.driver.Confirm(ctx, ConfirmConfig{Message: "Inverted?"})
	if err != nil {
		return heraldry.Ordinary{}, err
	}
	return ord, nil
}

func (c *Composer) composeCharge(ctx context.Context) (heraldry.Charge, error) {
	ch := heraldry.Charge{Visible: true}

	id, err := c.selectName(ctx, "Charge", c.chargeIDs)
	if err != nil {
		return heraldry.Charge{}, err
	}
	ch.ID = id

	ch.Tincture, err = c.selectName(ctx, "Charge tincture", c.catalog.TinctureNames())
	if err != nil {
		return heraldry.Charge{}, err
	}
	ch.Count, err = c.intInput(ctx, "How many?", 1, 1, 3)
	if err != nil {
		return heraldry.Charge{}, err
	}

	arrangements := c.arrangementsFor(ch.Count)
	if len(arrangements) > 0 {
		ch.Arrangement, err = c.selectName(ctx, "Arrangement", arrangements)
		if err != nil {
			return heraldry.Charge{}, err
		}
	}
	return ch, nil
}

// arrangementsFor filters the catalog to layouts matching the chosen count.
func (c *Composer) arrangementsFor(count int) []string {
	var out []string
	for _, name := range c.catalog.ArrangementNames() {
		if arr, ok := c.catalog.Arrangement(name); ok && arr.Count == count {
			out = append(out, name)
		}
	}
	return out
}

func (c *Composer) selectName(ctx context.Context, message string, options []string) (string, error) {
	idx, err := c.driver.Select(ctx, SelectConfig{Message: message, Options: options})
	if err != nil {
		return "", err
	}
	if idx < 0 || idx >= len(options) {
		return "", fmt.Errorf("prompt: selection out of range for %q", message)
	}
	return options[idx], nil
}

func (c *Composer) intInput(ctx context.Context, message string, def, min, max int) (int, error) {
	raw, err := c.driver.Input(ctx, InputConfig{
		Message: message,
		Default: strconv.Itoa(def),
		Validator: func(s string) error {
			n, err := strconv.Atoi(s)
			if err != nil {
				return fmt.Errorf("enter a number")
			}
			if n < min || n > max {
				return fmt.Errorf("enter a number between %d and %d", min, max)
			}
			return nil
		},
	})
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("prompt: %s: %w", message, err)
	}
	if n < min {
		n = min
	}
	if n > max {
		n = max
	}
	return n, nil
}
