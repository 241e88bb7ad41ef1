package health

import (
	"encoding/json"
	"net/http"

	"github.com/kagankarabayir/EV-Price-Estimator/core/catalog"
)

type status struct {
	Status  string `json:"status"`
	Records int    `json:"records"`
}

// NewHandler returns an HTTP handler reporting service health and the number
// of loaded catalog rows via GET /health.
func NewHandler(cat *catalog.Catalog) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(status{Status: "ok", Records: cat.Len()}); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
	})
}
