// Package valuation computes resale estimates for electric vehicles using a
// deterministic depreciation model: compounding yearly depreciation combined
// with per-10000km mileage depreciation, clamped between a retention floor and
// a small premium over the base price, plus a confidence heuristic. The engine
// always answers; unknown vehicles get a fixed safe default.
package valuation
