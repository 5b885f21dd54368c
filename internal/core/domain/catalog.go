package domain

import "strings"

// Catalog is the static mapping from material level to the items unlocked
// exactly at that level. Levels start at 0 and need not be dense. Catalogs
// are built once at startup and never mutated afterwards.
type Catalog struct {
	name   string
	levels map[int][]string
	max    int
}

// NewCatalog builds an immutable catalog from a level table. The name is
// normalized (trimmed, lower-cased) so it matches the form discipline tags
// take everywhere else; the input map is copied; negative levels are ignored.
func NewCatalog(name string, levels map[int][]string) *Catalog {
	name = strings.ToLower(strings.TrimSpace(name))
	c := &Catalog{name: name, levels: make(map[int][]string, len(levels))}
	for lvl, items := range levels {
		if lvl < 0 {
			continue
		}
		c.levels[lvl] = append([]string(nil), items...)
		if lvl > c.max {
			c.max = lvl
		}
	}
	return c
}

// Name returns the discipline name the catalog is registered under.
func (c *Catalog) Name() string { return c.name }

// MaxLevel returns the highest level with defined items, or 0 when empty.
func (c *Catalog) MaxLevel() int { return c.max }

// Items returns a copy of the items unlocked exactly at level, in catalog
// order. Undefined levels yield nil.
func (c *Catalog) Items(level int) []string {
	items, ok := c.levels[level]
	if !ok {
		return nil
	}
	return append([]string(nil), items...)
}

// CatalogSet is the process-wide collection of catalogs keyed by discipline
// name. Lookup is case-insensitive via normalized keys set at build time.
type CatalogSet struct {
	catalogs map[string]*Catalog
}

// NewCatalogSet builds a set from the given catalogs.
func NewCatalogSet(catalogs ...*Catalog) *CatalogSet {
	s := &CatalogSet{catalogs: make(map[string]*Catalog, len(catalogs))}
	for _, c := range catalogs {
		s.catalogs[c.Name()] = c
	}
	return s
}

// Get returns the catalog for a discipline name, or ErrCatalogNotFound.
// The name is normalized before lookup, matching the keys NewCatalog set.
func (s *CatalogSet) Get(name string) (*Catalog, error) {
	c, ok := s.catalogs[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, ErrCatalogNotFound
	}
	return c, nil
}

// Names returns the registered discipline names.
func (s *CatalogSet) Names() []string {
	names := make([]string, 0, len(s.catalogs))
	for n := range s.catalogs {
		names = append(names, n)
	}
	return names
}

// MaterialGrant is the resolver output: the cumulative material a principal
// may see in a discipline, up to and including the effective level.
type MaterialGrant struct {
	Discipline string   `json:"discipline"`
	Level      int      `json:"level"`
	Material   []string `json:"material"`
}
