package heraldry

import (
	"fmt"
	"strings"
)

// ValidationError reports every problem found in a composition. Generation
// never starts on a composition that fails validation, so no partial render
// is ever produced for malformed input.
type ValidationError struct {
	Issues []string
}

func (e *ValidationError) Error() string {
	return "heraldry: invalid composition: " + strings.Join(e.Issues, "; ")
}

// Validate checks a composition against the catalog: every identifier must
// resolve, divided fields must name every tincture their division uses,
// layer arrays must hold at most MaxLayers entries, counts must be 1..3 and
// charge sizes inside [MinChargeSize, MaxChargeSize]. A nil return means the
// composition is safe to render.
//
// Renderers invoked directly (without going through validation) still degrade
// gracefully on unknown identifiers; validation exists so API callers get a
// precise rejection instead of a silently degraded render.
func Validate(c Composition, cat *Catalog) error {
	if cat == nil {
		cat = DefaultCatalog()
	}
	var issues []string
	report := func(format string, args ...any) {
		issues = append(issues, fmt.Sprintf(format, args...))
	}

	div, ok := cat.Division(c.Field.Division)
	if !ok {
		report("unknown division %q", c.Field.Division)
	}
	if _, ok := cat.Tincture(c.Field.Tincture1); !ok {
		report("unknown field tincture1 %q", c.Field.Tincture1)
	}
	if ok && div.Name != "plain" && c.Field.Tincture2 == "" {
		report("field tincture2 is required for division %q", c.Field.Division)
	}
	if c.Field.Tincture2 != "" {
		if _, ok := cat.Tincture(c.Field.Tincture2); !ok {
			report("unknown field tincture2 %q", c.Field.Tincture2)
		}
	}
	if div.Tierced && c.Field.Tincture3 == "" {
		report("field tincture3 is required for division %q", c.Field.Division)
	}
	if c.Field.Tincture3 != "" {
		if _, ok := cat.Tincture(c.Field.Tincture3); !ok {
			report("unknown field tincture3 %q", c.Field.Tincture3)
		}
	}
	if c.Field.LineStyle != "" {
		if _, ok := cat.LineStyle(c.Field.LineStyle); !ok {
			report("unknown field line style %q", c.Field.LineStyle)
		}
	}
	if div.Multiplicity && c.Field.Multiplicity != 0 && (c.Field.Multiplicity < 2 || c.Field.Multiplicity > 12) {
		report("field multiplicity %d outside 2..12", c.Field.Multiplicity)
	}

	if len(c.Ordinaries) > MaxLayers {
		report("ordinaries: %d layers exceeds maximum %d", len(c.Ordinaries), MaxLayers)
	}
	for i, ord := range c.Ordinaries {
		if _, ok := cat.OrdinaryType(ord.Type); !ok {
			report("ordinary %d: unknown type %q", i, ord.Type)
		}
		if _, ok := cat.Tincture(ord.Tincture); !ok {
			report("ordinary %d: unknown tincture %q", i, ord.Tincture)
		}
		if ord.LineStyle != "" {
			if _, ok := cat.LineStyle(ord.LineStyle); !ok {
				report("ordinary %d: unknown line style %q", i, ord.LineStyle)
			}
		}
		if ord.Count < 1 || ord.Count > 3 {
			report("ordinary %d: count %d outside 1..3", i, ord.Count)
		}
	}

	if len(c.Charges) > MaxLayers {
		report("charges: %d layers exceeds maximum %d", len(c.Charges), MaxLayers)
	}
	for i, ch := range c.Charges {
		if ch.ID == "" {
			report("charge %d: missing charge id", i)
		}
		if _, ok := cat.Tincture(ch.Tincture); !ok {
			report("charge %d: unknown tincture %q", i, ch.Tincture)
		}
		if ch.Count < 1 || ch.Count > 3 {
			report("charge %d: count %d outside 1..3", i, ch.Count)
		}
		if ch.Size != 0 && (ch.Size < MinChargeSize || ch.Size > MaxChargeSize) {
			report("charge %d: size %.2f outside %.1f..%.1f", i, ch.Size, MinChargeSize, MaxChargeSize)
		}
		if ch.Arrangement != "" {
			arr, ok := cat.Arrangement(ch.Arrangement)
			if !ok {
				report("charge %d: unknown arrangement %q", i, ch.Arrangement)
			} else if ch.Count >= 1 && ch.Count <= 3 && arr.Count != ch.Count {
				report("charge %d: arrangement %q places %d charges, count is %d", i, ch.Arrangement, arr.Count, ch.Count)
			}
		}
	}

	if len(issues) > 0 {
		return &ValidationError{Issues: issues}
	}
	return nil
}
