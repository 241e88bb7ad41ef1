package catalog

import "sort"

// Catalog is the canonical reference table. It is built once at startup and
// never mutated afterwards, so it is safe to share across request handlers
// without locking.
type Catalog struct {
	rows   []Archetype
	index  map[[2]string]Archetype
	source Source
}

// New builds a Catalog from canonical rows. When several rows share the same
// (make, model) key the first one in build order wins, matching the order the
// rows were produced by the source.
func New(rows []Archetype, source Source) *Catalog {
	idx := make(map[[2]string]Archetype, len(rows))
	for _, a := range rows {
		key := [2]string{a.Make, a.Model}
		if _, ok := idx[key]; !ok {
			idx[key] = a
		}
	}
	return &Catalog{rows: rows, index: idx, source: source}
}

// Len returns the number of rows in the catalog.
func (c *Catalog) Len() int { return len(c.rows) }

// Source reports which input strategy produced the catalog.
func (c *Catalog) Source() Source { return c.source }

// Makes returns the distinct normalized makes, lexicographically sorted.
func (c *Catalog) Makes() []string {
	seen := make(map[string]struct{}, len(c.rows))
	makes := make([]string, 0, len(c.rows))
	for _, a := range c.rows {
		if _, ok := seen[a.Make]; ok {
			continue
		}
		seen[a.Make] = struct{}{}
		makes = append(makes, a.Make)
	}
	sort.Strings(makes)
	return makes
}

// Models returns the distinct normalized models for the given make,
// lexicographically sorted. Unknown makes yield an empty slice, never nil.
func (c *Catalog) Models(make string) []string {
	make = Normalize(make)
	seen := map[string]struct{}{}
	models := []string{}
	for _, a := range c.rows {
		if a.Make != make {
			continue
		}
		if _, ok := seen[a.Model]; ok {
			continue
		}
		seen[a.Model] = struct{}{}
		models = append(models, a.Model)
	}
	sort.Strings(models)
	return models
}

// Lookup resolves a (make, model) pair after normalization. The second return
// value reports whether an archetype was found.
func (c *Catalog) Lookup(make, model string) (Archetype, bool) {
	a, ok := c.index[[2]string{Normalize(make), Normalize(model)}]
	return a, ok
}
