package metrics

import (
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"

	coremetrics "github.com/kagankarabayir/EV-Price-Estimator/core/metrics"
)

func TestPromSink_RecordValuation(t *testing.T) {
	reg := prometheus.NewRegistry()
	sinkIf, err := NewPromSinkWithRegistry(coremetrics.Config{}, reg)
	if err != nil {
		t.Fatalf("create sink: %v", err)
	}
	sink, ok := sinkIf.(*PromSink)
	if !ok {
		t.Fatalf("expected PromSink")
	}
	sink.RecordValuation(coremetrics.ValuationEvent{
		Outcome:  coremetrics.OutcomeMatched,
		Duration: 150 * time.Microsecond,
		Time:     time.Now(),
	})
	sink.RecordValuation(coremetrics.ValuationEvent{
		Outcome:  coremetrics.OutcomeDefault,
		Duration: 90 * time.Microsecond,
		Time:     time.Now(),
	})

	expected := `
# HELP valuations_total Total number of answered valuation requests
# TYPE valuations_total counter
valuations_total{outcome="default"} 1
valuations_total{outcome="matched"} 1
`
	if err := testutil.CollectAndCompare(sink.valuations, strings.NewReader(expected)); err != nil {
		t.Errorf("unexpected metrics: %v", err)
	}
}

func TestPromSink_RecordCatalog(t *testing.T) {
	reg := prometheus.NewRegistry()
	sinkIf, err := NewPromSinkWithRegistry(coremetrics.Config{}, reg)
	if err != nil {
		t.Fatalf("create sink: %v", err)
	}
	sink := sinkIf.(*PromSink)
	sink.RecordCatalog("builtin", 5)

	expected := `
# HELP catalog_rows Number of reference catalog rows, labelled by the source that produced them
# TYPE catalog_rows gauge
catalog_rows{source="builtin"} 5
`
	if err := testutil.CollectAndCompare(sink.rows, strings.NewReader(expected)); err != nil {
		t.Errorf("unexpected metrics: %v", err)
	}
}

func TestPromSink_AlreadyRegistered(t *testing.T) {
	reg := prometheus.NewRegistry()
	if _, err := NewPromSinkWithRegistry(coremetrics.Config{}, reg); err != nil {
		t.Fatalf("first registration: %v", err)
	}
	if _, err := NewPromSinkWithRegistry(coremetrics.Config{}, reg); err != nil {
		t.Fatalf("second registration: %v", err)
	}
}
