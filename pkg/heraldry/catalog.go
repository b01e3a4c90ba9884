package heraldry

import (
	"embed"
	"fmt"
	"io/fs"
	"sort"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed data/*.yaml
var catalogData embed.FS

// TinctureClass groups tinctures for the rule-of-tincture contrast check.
type TinctureClass string

const (
	ClassMetal  TinctureClass = "metal"
	ClassColour TinctureClass = "colour"
	ClassStain  TinctureClass = "stain"
	ClassFur    TinctureClass = "fur"
)

// Tincture is a named heraldic colour.
type Tincture struct {
	Name  string        `yaml:"name"`
	Hex   string        `yaml:"hex"`
	Class TinctureClass `yaml:"class"`
}

// LineStyleSpec carries the display metadata and texture parameters for one
// decorative boundary style.
type LineStyleSpec struct {
	Name      string  `yaml:"name"`
	Adjective string  `yaml:"adjective"`
	Unit      float64 `yaml:"unit"`
	Amplitude float64 `yaml:"amplitude"`
}

// Division names a field partition and its blazon phrasing.
type Division struct {
	Name         string `yaml:"name"`
	Phrase       string `yaml:"phrase"`
	Multiplicity bool   `yaml:"multiplicity"`
	Tierced      bool   `yaml:"tierced"`
	Textured     bool   `yaml:"textured"`
}

// OrdinaryType names a band shape and its singular/plural blazon nouns.
type OrdinaryType struct {
	Name     string `yaml:"name"`
	Singular string `yaml:"singular"`
	Plural   string `yaml:"plural"`
}

// ArrangementPoint is a canonical-space placement target.
type ArrangementPoint struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// Arrangement is a named charge placement template. Count must equal
// len(Points) for the arrangement to apply.
type Arrangement struct {
	Name   string             `yaml:"name"`
	Count  int                `yaml:"count"`
	Points []ArrangementPoint `yaml:"points"`
}

// Catalog holds the immutable registries shared read-only by every
// component. Load it once and reuse it; lookups are safe for concurrent use
// because the catalog never changes after construction.
type Catalog struct {
	tinctures    map[string]Tincture
	lineStyles   map[string]LineStyleSpec
	divisions    map[string]Division
	ordinaries   map[string]OrdinaryType
	arrangements map[string]Arrangement
}

type catalogFile struct {
	Tinctures    []Tincture      `yaml:"tinctures"`
	LineStyles   []LineStyleSpec `yaml:"lineStyles"`
	Divisions    []Division      `yaml:"divisions"`
	Ordinaries   []OrdinaryType  `yaml:"ordinaries"`
	Arrangements []Arrangement   `yaml:"arrangements"`
}

// LoadCatalog walks fsys and merges every YAML document into a catalog.
// Duplicate identifiers across files are an error.
func LoadCatalog(fsys fs.FS) (*Catalog, error) {
	cat := &Catalog{
		tinctures:    make(map[string]Tincture),
		lineStyles:   make(map[string]LineStyleSpec),
		divisions:    make(map[string]Division),
		ordinaries:   make(map[string]OrdinaryType),
		arrangements: make(map[string]Arrangement),
	}
	if fsys == nil {
		return cat, nil
	}

	err := fs.WalkDir(fsys, ".", func(path string, entry fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if entry.IsDir() || !strings.HasSuffix(path, ".yaml") {
			return nil
		}
		data, err := fs.ReadFile(fsys, path)
		if err != nil {
			return fmt.Errorf("heraldry: read catalog %s: %w", path, err)
		}
		var doc catalogFile
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return fmt.Errorf("heraldry: parse catalog %s: %w", path, err)
		}
		if err := cat.merge(doc, path); err != nil {
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return cat, nil
}

func (c *Catalog) merge(doc catalogFile, path string) error {
	for _, t := range doc.Tinctures {
		if _, exists := c.tinctures[t.Name]; exists {
			return fmt.Errorf("heraldry: duplicate tincture %q (file %s)", t.Name, path)
		}
		c.tinctures[t.Name] = t
	}
	for _, l := range doc.LineStyles {
		if _, exists := c.lineStyles[l.Name]; exists {
			return fmt.Errorf("heraldry: duplicate line style %q (file %s)", l.Name, path)
		}
		c.lineStyles[l.Name] = l
	}
	for _, d := range doc.Divisions {
		if _, exists := c.divisions[d.Name]; exists {
			return fmt.Errorf("heraldry: duplicate division %q (file %s)", d.Name, path)
		}
		c.divisions[d.Name] = d
	}
	for _, o := range doc.Ordinaries {
		if _, exists := c.ordinaries[o.Name]; exists {
			return fmt.Errorf("heraldry: duplicate ordinary type %q (file %s)", o.Name, path)
		}
		c.ordinaries[o.Name] = o
	}
	for _, a := range doc.Arrangements {
		if _, exists := c.arrangements[a.Name]; exists {
			return fmt.Errorf("heraldry: duplicate arrangement %q (file %s)", a.Name, path)
		}
		if a.Count != len(a.Points) {
			return fmt.Errorf("heraldry: arrangement %q declares count %d but %d points (file %s)",
				a.Name, a.Count, len(a.Points), path)
		}
		c.arrangements[a.Name] = a
	}
	return nil
}

var (
	defaultCatalogOnce sync.Once
	defaultCatalog     *Catalog
	defaultCatalogErr  error
)

// DefaultCatalog returns the catalog built from the embedded data files. The
// embedded bundle is validated at build time by the package tests, so load
// failure here is a programming error and panics.
func DefaultCatalog() *Catalog {
	defaultCatalogOnce.Do(func() {
		sub, err := fs.Sub(catalogData, "data")
		if err != nil {
			defaultCatalogErr = err
			return
		}
		defaultCatalog, defaultCatalogErr = LoadCatalog(sub)
	})
	if defaultCatalogErr != nil {
		panic(fmt.Errorf("heraldry: embedded catalog: %w", defaultCatalogErr))
	}
	return defaultCatalog
}

// Tincture resolves a tincture by name.
func (c *Catalog) Tincture(name string) (Tincture, bool) {
	t, ok := c.tinctures[name]
	return t, ok
}

// LineStyle resolves a line style by name.
func (c *Catalog) LineStyle(name string) (LineStyleSpec, bool) {
	l, ok := c.lineStyles[name]
	return l, ok
}

// Division resolves a division by name.
func (c *Catalog) Division(name string) (Division, bool) {
	d, ok := c.divisions[name]
	return d, ok
}

// OrdinaryType resolves an ordinary shape by name.
func (c *Catalog) OrdinaryType(name string) (OrdinaryType, bool) {
	o, ok := c.ordinaries[name]
	return o, ok
}

// Arrangement resolves a placement template by name.
func (c *Catalog) Arrangement(name string) (Arrangement, bool) {
	a, ok := c.arrangements[name]
	return a, ok
}

// TinctureNames returns the sorted tincture identifiers.
func (c *Catalog) TinctureNames() []string {
	return sortedKeys(c.tinctures)
}

// LineStyleNames returns the sorted line style identifiers.
func (c *Catalog) LineStyleNames() []string {
	return sortedKeys(c.lineStyles)
}

// DivisionNames returns the sorted division identifiers.
func (c *Catalog) DivisionNames() []string {
	return sortedKeys(c.divisions)
}

// OrdinaryTypeNames returns the sorted ordinary shape identifiers.
func (c *Catalog) OrdinaryTypeNames() []string {
	return sortedKeys(c.ordinaries)
}

// ArrangementNames returns the sorted arrangement identifiers.
func (c *Catalog) ArrangementNames() []string {
	return sortedKeys(c.arrangements)
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
