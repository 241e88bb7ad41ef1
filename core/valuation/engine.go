package valuation

import (
	"math"
	"time"

	"github.com/kagankarabayir/EV-Price-Estimator/core/catalog"
	"github.com/kagankarabayir/EV-Price-Estimator/core/logger"
)

// Depreciation model parameters.
const (
	AnnualDepreciation = 0.07
	Per10KDepreciation = 0.015
	MileageBucket      = 10000
	MinRetention       = 0.35
)

// Defaults returned when the requested vehicle is not in the catalog. The
// engine always answers; an unknown vehicle is reported as low confidence, not
// as an error.
const (
	DefaultEstimate   = 10000.0
	DefaultConfidence = 0.5
)

// Currency is the fixed label attached to every estimate.
const Currency = "EUR"

// Request describes one valuation call. Make and model are matched
// case-insensitively; FirstRegistration is an ISO-8601 date string of which
// only the date portion is significant.
type Request struct {
	Make              string `json:"make"`
	Model             string `json:"model"`
	MileageKm         int    `json:"mileageKm"`
	FirstRegistration string `json:"firstRegistration"`
}

// Result is the outcome of a valuation. Matched tags whether an archetype was
// found or the safe default was used, so callers can observe the fallback.
type Result struct {
	Estimate   float64
	Confidence float64
	Matched    bool
}

// Engine computes resale estimates against an immutable catalog. The clock is
// injectable so results are reproducible in tests; production uses UTC now.
type Engine struct {
	catalog *catalog.Catalog
	now     func() time.Time
	log     logger.Logger
}

// New returns an Engine evaluating against the current UTC time.
func New(c *catalog.Catalog, log logger.Logger) *Engine {
	return NewWithClock(c, log, func() time.Time { return time.Now().UTC() })
}

// NewWithClock returns an Engine with a fixed clock function.
func NewWithClock(c *catalog.Catalog, log logger.Logger, now func() time.Time) *Engine {
	return &Engine{catalog: c, now: now, log: log}
}

// Valuate prices a vehicle. It never returns an error: unknown vehicles get
// the safe default and an unparseable registration date is treated as zero
// elapsed time.
func (e *Engine) Valuate(req Request) Result {
	arch, ok := e.catalog.Lookup(req.Make, req.Model)
	if !ok {
		e.log.Infow("no catalog match, using default estimate", map[string]any{
			"make":  catalog.Normalize(req.Make),
			"model": catalog.Normalize(req.Model),
		})
		return Result{Estimate: DefaultEstimate, Confidence: DefaultConfidence}
	}

	now := e.now()
	reg, regOK := parseDate(req.FirstRegistration)
	years := 0.0
	if regOK {
		months := (now.Year()-reg.Year())*12 + int(now.Month()) - int(reg.Month())
		years = math.Max(0, float64(months)/12)
	}

	yearFactor := math.Pow(1-AnnualDepreciation, years)
	mileageBlocks := float64(req.MileageKm) / MileageBucket
	// No lower bound here: the clamp below absorbs extreme mileages.
	mileageFactor := 1 - Per10KDepreciation*mileageBlocks

	raw := arch.BasePrice * yearFactor * mileageFactor
	minValue := arch.BasePrice * MinRetention
	estimate := clamp(raw, minValue*0.8, arch.BasePrice*1.05)

	yearGap := 0
	if regOK {
		yearGap = abs(reg.Year() - arch.Year0)
	}
	confidence := clamp(0.9-float64(yearGap)*0.06-math.Min(0.5, float64(req.MileageKm)/200000), 0.5, 0.9)

	return Result{Estimate: round2(estimate), Confidence: round2(confidence), Matched: true}
}

// parseDate accepts ISO-8601 strings, ignoring anything past the date portion.
func parseDate(s string) (time.Time, bool) {
	if len(s) > 10 {
		s = s[:10]
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
