package metrics

import "time"

// ValuationEvent represents one answered valuation request to be recorded.
type ValuationEvent struct {
	Outcome  Outcome
	Duration time.Duration
	Time     time.Time
}

// Outcome tags which path answered the request.
type Outcome string

const (
	// OutcomeMatched means an archetype was found in the catalog.
	OutcomeMatched Outcome = "matched"
	// OutcomeDefault means the safe-default estimate was returned.
	OutcomeDefault Outcome = "default"
)

// Sink records valuation events and catalog state for observability purposes.
type Sink interface {
	RecordValuation(ev ValuationEvent)
	RecordCatalog(source string, rows int)
}

// NopSink discards all events.
type NopSink struct{}

func (NopSink) RecordValuation(ValuationEvent) {}
func (NopSink) RecordCatalog(string, int)      {}
