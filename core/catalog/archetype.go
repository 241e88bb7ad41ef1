package catalog

import "strings"

// Archetype is one row of the canonical reference table: a (make, model) pair
// with the reference price it was worth at the reference vintage.
type Archetype struct {
	Make      string  `json:"make"`
	Model     string  `json:"model"`
	BasePrice float64 `json:"base_price"`
	Year0     int     `json:"year0"`
}

// Normalize reduces a make or model to its canonical form. Lookups and the
// builder must agree on this, so it lives in one place.
func Normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// builtin is the last-resort reference table used when no input source yields a
// recognizable schema. Prices and vintages are fixed so the service always has
// a non-empty catalog to answer from.
func builtin() []Archetype {
	return []Archetype{
		{Make: "tesla", Model: "model 3", BasePrice: 28000, Year0: 2019},
		{Make: "tesla", Model: "model y", BasePrice: 35000, Year0: 2021},
		{Make: "nissan", Model: "leaf", BasePrice: 12000, Year0: 2018},
		{Make: "volkswagen", Model: "id.3", BasePrice: 20000, Year0: 2020},
		{Make: "volkswagen", Model: "id.4", BasePrice: 26000, Year0: 2021},
	}
}
