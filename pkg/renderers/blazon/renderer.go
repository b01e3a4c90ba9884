// Package blazon renders a composition into its formal textual description.
// The generator is total: it never returns an error, and unknown identifiers
// degrade to the safest wording available, because a degraded description is
// preferable to a failed pipeline.
package blazon

import (
	"context"
	"fmt"
	"strings"

	"github.com/goliatone/go-blazonry/pkg/assets"
	"github.com/goliatone/go-blazonry/pkg/heraldry"
	"github.com/goliatone/go-blazonry/pkg/render"
)

// Option configures the renderer.
type Option func(*Renderer)

// WithCatalog replaces the default registries.
func WithCatalog(catalog *heraldry.Catalog) Option {
	return func(r *Renderer) {
		if catalog != nil {
			r.catalog = catalog
		}
	}
}

// WithChargeProvider injects the provider whose blazon-term function names
// charges.
func WithChargeProvider(provider assets.ChargeProvider) Option {
	return func(r *Renderer) {
		if provider != nil {
			r.charges = provider
		}
	}
}

// Renderer is the text renderer. It consumes the composition directly and
// never looks at generated artwork.
type Renderer struct {
	catalog *heraldry.Catalog
	charges assets.ChargeProvider
}

var _ render.Renderer = (*Renderer)(nil)

// New constructs the blazon renderer.
func New(options ...Option) (*Renderer, error) {
	r := &Renderer{}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(r)
	}
	if r.catalog == nil {
		r.catalog = heraldry.DefaultCatalog()
	}
	if r.charges == nil {
		provider, err := assets.NewEmbeddedChargeProvider()
		if err != nil {
			return nil, fmt.Errorf("blazon renderer: charge provider: %w", err)
		}
		r.charges = provider
	}
	return r, nil
}

func (r *Renderer) Name() string {
	return "blazon"
}

func (r *Renderer) ContentType() string {
	return "text/plain; charset=utf-8"
}

// Render emits the blazon. The error result exists only to satisfy the
// renderer contract; it is always nil.
func (r *Renderer) Render(_ context.Context, comp heraldry.Composition, _ render.Options) ([]byte, error) {
	return []byte(r.Generate(comp)), nil
}

// Generate is the pure composition→string function behind Render. Identical
// compositions always produce identical strings.
func (r *Renderer) Generate(comp heraldry.Composition) string {
	clauses := []string{r.fieldClause(comp.Field)}
	for _, ord := range comp.Ordinaries {
		if !ord.Visible {
			continue
		}
		clauses = append(clauses, r.ordinaryClause(ord, comp.Field))
	}
	for _, ch := range comp.Charges {
		if !ch.Visible {
			continue
		}
		clauses = append(clauses, r.chargeClause(ch))
	}
	return capitalize(strings.Join(clauses, ", "))
}

// fieldClause words the layer-0 division: division phrase, line-style
// adjective, "of N" for stripe/check divisions, then the tincture names
// joined by "and". An unknown division collapses to the primary tincture
// name alone.
func (r *Renderer) fieldClause(field heraldry.Field) string {
	primary := r.tinctureName(field.Tincture1)

	division, ok := r.catalog.Division(field.Division)
	if !ok || division.Phrase == "" {
		return primary
	}

	parts := []string{division.Phrase}
	if division.Textured {
		if adj := r.lineAdjective(field.LineStyle); adj != "" {
			parts = append(parts, adj)
		}
	}
	if division.Multiplicity {
		parts = append(parts, "of "+numberWord(stripeWording(field.Multiplicity)))
	}

	tinctures := []string{primary, r.tinctureName(field.Tincture2)}
	if division.Tierced {
		tinctures = append(tinctures, r.tinctureName(field.Tincture3))
	}
	if joined := joinNames(tinctures); joined != "" {
		parts = append(parts, joined)
	}
	return strings.Join(parts, " ")
}

// ordinaryClause words one geometric layer using the per-type noun table:
// count 1 takes the singular with an article, 2 and 3 the plural diminutive.
// Unknown types collapse to the field's primary tincture name.
func (r *Renderer) ordinaryClause(ord heraldry.Ordinary, field heraldry.Field) string {
	typ, ok := r.catalog.OrdinaryType(ord.Type)
	if !ok {
		return r.tinctureName(field.Tincture1)
	}

	var noun string
	if ord.Count <= 1 {
		noun = "a " + typ.Singular
	} else {
		noun = numberWord(ord.Count) + " " + typ.Plural
	}

	parts := []string{noun}
	if adj := r.lineAdjective(ord.LineStyle); adj != "" {
		parts = append(parts, adj)
	}
	if ord.Inverted {
		parts = append(parts, "inverted")
	}
	parts = append(parts, r.tinctureName(ord.Tincture))
	return strings.Join(parts, " ")
}

// chargeClause delegates naming to the asset provider's blazon-term
// function, which owns the charge vocabulary.
func (r *Renderer) chargeClause(ch heraldry.Charge) string {
	count := ch.Count
	if count < 1 || count > 3 {
		count = 1
	}
	return r.charges.BlazonTerm(ch.ID, r.tinctureName(ch.Tincture), count)
}

// tinctureName resolves to the catalog spelling; identifiers double as names
// so unknown ids pass through as the safest available wording.
func (r *Renderer) tinctureName(id string) string {
	if tincture, ok := r.catalog.Tincture(id); ok {
		return tincture.Name
	}
	return id
}

func (r *Renderer) lineAdjective(id string) string {
	if spec, ok := r.catalog.LineStyle(id); ok {
		return spec.Adjective
	}
	return ""
}

// joinNames joins tincture names heraldic style: "azure and or",
// "azure, or and vert". Empty names are dropped so a field missing a
// tincture never produces a dangling conjunction.
func joinNames(names []string) string {
	kept := make([]string, 0, len(names))
	for _, name := range names {
		if name != "" {
			kept = append(kept, name)
		}
	}
	switch len(kept) {
	case 0:
		return ""
	case 1:
		return kept[0]
	case 2:
		return kept[0] + " and " + kept[1]
	default:
		return strings.Join(kept[:len(kept)-1], ", ") + " and " + kept[len(kept)-1]
	}
}

// stripeWording clamps the multiplicity the same way the field compositor
// does, so the text always matches the drawn stripe count.
func stripeWording(multiplicity int) int {
	if multiplicity < 2 {
		return 6
	}
	if multiplicity > 12 {
		return 12
	}
	return multiplicity
}

var numberWords = map[int]string{
	2: "two", 3: "three", 4: "four", 5: "five", 6: "six",
	7: "seven", 8: "eight", 9: "nine", 10: "ten", 11: "eleven", 12: "twelve",
}

func numberWord(n int) string {
	if word, ok := numberWords[n]; ok {
		return word
	}
	return fmt.Sprintf("%d", n)
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
