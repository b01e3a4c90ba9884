package heraldry

import "fmt"

// ContrastWarnings applies the rule of tincture as an advisory check: metal
// should not rest on metal, nor colour on colour. Stains count as colours;
// furs are exempt. The result is informational only; nothing in the render
// pipeline consults it.
func ContrastWarnings(c Composition, cat *Catalog) []string {
	if cat == nil {
		cat = DefaultCatalog()
	}
	var warnings []string
	fieldClass, ok := tinctureClass(cat, c.Field.Tincture1)
	if !ok {
		return nil
	}

	for i, ord := range c.Ordinaries {
		if !ord.Visible {
			continue
		}
		if class, ok := tinctureClass(cat, ord.Tincture); ok && class == fieldClass {
			warnings = append(warnings, fmt.Sprintf(
				"ordinary %d (%s %s): %s on %s breaks the rule of tincture",
				i, ord.Type, ord.Tincture, className(class), className(fieldClass)))
		}
	}
	for i, ch := range c.Charges {
		if !ch.Visible {
			continue
		}
		if class, ok := tinctureClass(cat, ch.Tincture); ok && class == fieldClass {
			warnings = append(warnings, fmt.Sprintf(
				"charge %d (%s %s): %s on %s breaks the rule of tincture",
				i, ch.ID, ch.Tincture, className(class), className(fieldClass)))
		}
	}
	return warnings
}

// tinctureClass folds stains into colours and reports furs as exempt.
func tinctureClass(cat *Catalog, name string) (TinctureClass, bool) {
	t, ok := cat.Tincture(name)
	if !ok || t.Class == ClassFur {
		return "", false
	}
	if t.Class == ClassStain {
		return ClassColour, true
	}
	return t.Class, true
}

func className(class TinctureClass) string {
	if class == ClassMetal {
		return "metal"
	}
	return "colour"
}
