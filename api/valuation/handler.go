package valuation

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	corelogger "github.com/kagankarabayir/EV-Price-Estimator/core/logger"
	coremetrics "github.com/kagankarabayir/EV-Price-Estimator/core/metrics"
	corevaluation "github.com/kagankarabayir/EV-Price-Estimator/core/valuation"
)

type response struct {
	Estimate   float64  `json:"estimate"`
	Currency   string   `json:"currency"`
	Confidence *float64 `json:"confidence,omitempty"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// NewHandler returns an HTTP handler computing valuations via POST /valuation.
// The handler owns payload validation; the engine receives pre-validated
// values and always answers.
func NewHandler(engine *corevaluation.Engine, sink coremetrics.Sink, log corelogger.Logger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		var req corevaluation.Request
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		if strings.TrimSpace(req.Make) == "" {
			writeError(w, http.StatusBadRequest, "make is required")
			return
		}
		if strings.TrimSpace(req.Model) == "" {
			writeError(w, http.StatusBadRequest, "model is required")
			return
		}
		if req.MileageKm < 0 {
			writeError(w, http.StatusBadRequest, "mileageKm must not be negative")
			return
		}

		start := time.Now()
		res := engine.Valuate(req)
		outcome := coremetrics.OutcomeDefault
		if res.Matched {
			outcome = coremetrics.OutcomeMatched
		}
		sink.RecordValuation(coremetrics.ValuationEvent{
			Outcome:  outcome,
			Duration: time.Since(start),
			Time:     start,
		})
		log.Debugw("valuation answered", map[string]any{
			"valuation_id": uuid.NewString(),
			"outcome":      string(outcome),
			"estimate":     res.Estimate,
			"confidence":   res.Confidence,
		})

		w.Header().Set("Content-Type", "application/json")
		confidence := res.Confidence
		if err := json.NewEncoder(w).Encode(response{
			Estimate:   res.Estimate,
			Currency:   corevaluation.Currency,
			Confidence: &confidence,
		}); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
	})
}

func writeError(w http.ResponseWriter, code int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(errorResponse{Error: msg})
}
