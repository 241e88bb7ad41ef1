package catalog

import (
	"sort"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/stat"
)

// Source identifies which strategy produced the canonical table. It is kept on
// the built Catalog so fallback decisions stay observable.
type Source int

const (
	// SourceCanonical means the input already carried reference columns.
	SourceCanonical Source = iota
	// SourceTransactional means reference rows were aggregated from
	// per-transaction prices.
	SourceTransactional
	// SourceBuiltin means no input schema was recognized and the fixed
	// built-in table is in use.
	SourceBuiltin
)

func (s Source) String() string {
	switch s {
	case SourceCanonical:
		return "canonical"
	case SourceTransactional:
		return "transactional"
	case SourceBuiltin:
		return "builtin"
	}
	return "unknown"
}

// fallbackYear0 is assumed for aggregated groups when the input carries no
// registration_year column.
const fallbackYear0 = 2020

// detector is one schema-detection strategy: a pure function from a raw table
// to canonical rows. Strategies are tried in priority order, first match wins.
type detector struct {
	source Source
	detect func(Table) ([]Archetype, bool)
}

func detectors() []detector {
	return []detector{
		{SourceCanonical, detectCanonical},
		{SourceTransactional, detectTransactional},
	}
}

// detectCanonical handles inputs that already carry the reference columns.
// Rows whose price or vintage do not parse are skipped; values are otherwise
// passed through unchecked.
func detectCanonical(t Table) ([]Archetype, bool) {
	if !t.HasCols("make", "model", "base_price", "year0") {
		return nil, false
	}
	makeIdx, modelIdx := t.Col("make"), t.Col("model")
	priceIdx, yearIdx := t.Col("base_price"), t.Col("year0")

	rows := make([]Archetype, 0, len(t.Rows))
	for _, r := range t.Rows {
		price, err := parseNumber(t.Cell(r, priceIdx))
		if err != nil {
			continue
		}
		year, err := parseYear(t.Cell(r, yearIdx))
		if err != nil {
			continue
		}
		rows = append(rows, Archetype{
			Make:      Normalize(t.Cell(r, makeIdx)),
			Model:     Normalize(t.Cell(r, modelIdx)),
			BasePrice: price,
			Year0:     year,
		})
	}
	return rows, true
}

// detectTransactional aggregates per-transaction rows: base_price is the
// median price per (make, model) group and year0 the median registration year,
// or a fixed fallback when the column is absent. Group order follows first
// appearance in the input.
func detectTransactional(t Table) ([]Archetype, bool) {
	if !t.HasCols("make", "model", "price") {
		return nil, false
	}
	makeIdx, modelIdx := t.Col("make"), t.Col("model")
	priceIdx, yearIdx := t.Col("price"), t.Col("registration_year")

	type group struct {
		mk     string
		md     string
		prices []float64
		years  []float64
	}
	order := []*group{}
	byKey := map[[2]string]*group{}
	for _, r := range t.Rows {
		price, err := parseNumber(t.Cell(r, priceIdx))
		if err != nil {
			continue
		}
		mk, md := Normalize(t.Cell(r, makeIdx)), Normalize(t.Cell(r, modelIdx))
		key := [2]string{mk, md}
		g, ok := byKey[key]
		if !ok {
			g = &group{mk: mk, md: md}
			byKey[key] = g
			order = append(order, g)
		}
		g.prices = append(g.prices, price)
		if yearIdx >= 0 {
			if y, err := parseNumber(t.Cell(r, yearIdx)); err == nil {
				g.years = append(g.years, y)
			}
		}
	}

	rows := make([]Archetype, 0, len(order))
	for _, g := range order {
		year0 := fallbackYear0
		if yearIdx >= 0 && len(g.years) > 0 {
			// Truncated, not rounded: a 2019.5 median lands on 2019.
			year0 = int(median(g.years))
		}
		rows = append(rows, Archetype{
			Make:      g.mk,
			Model:     g.md,
			BasePrice: median(g.prices),
			Year0:     year0,
		})
	}
	return rows, true
}

// median returns the middle sample, or the mean of the two middle samples for
// even counts.
func median(xs []float64) float64 {
	sorted := append([]float64(nil), xs...)
	sort.Float64s(sorted)
	n := len(sorted)
	if n%2 == 1 {
		return sorted[n/2]
	}
	return stat.Mean(sorted[n/2-1:n/2+1], nil)
}

func parseNumber(s string) (float64, error) {
	return strconv.ParseFloat(strings.TrimSpace(s), 64)
}

func parseYear(s string) (int, error) {
	// Spreadsheet exports often render integer years as floats ("2019.0");
	// fractional vintages are truncated.
	f, err := parseNumber(s)
	if err != nil {
		return 0, err
	}
	return int(f), nil
}
