// Package catalog builds the canonical vehicle reference table from raw
// tabular input and serves read-only queries over it.
//
// Input sources are resolved in a fixed order: a user-supplied spreadsheet, a
// user-supplied CSV, then the bundled sample CSV. The chosen file is reduced
// through an ordered chain of schema-detection strategies:
//   - canonical: the input already carries make, model, base_price and year0
//   - transactional: per-transaction prices are aggregated by median into
//     reference rows
//   - builtin: a small fixed table used when nothing else is recognizable
//
// Build never fails. Unreadable files fall through to the next source and an
// unrecognized schema degrades to the builtin table; each degradation is
// logged. The resulting Catalog is immutable, so it can be shared across
// request handlers without locking.
package catalog
