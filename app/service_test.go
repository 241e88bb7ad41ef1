package app

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kagankarabayir/EV-Price-Estimator/config"
	"github.com/kagankarabayir/EV-Price-Estimator/core/catalog"
)

// newTestService wires a Service whose data paths point at an empty directory,
// so the builtin catalog is in use.
func newTestService(t *testing.T) *Service {
	t.Helper()
	dir := t.TempDir()
	cfg := config.Default()
	cfg.Data.XLSXPath = filepath.Join(dir, "ev_data.xlsx")
	cfg.Data.CSVPath = filepath.Join(dir, "ev_data.csv")
	cfg.Data.SamplePath = filepath.Join(dir, "sample.csv")
	svc, err := New(cfg)
	require.NoError(t, err)
	return svc
}

func TestServiceRoutes(t *testing.T) {
	svc := newTestService(t)
	assert.Equal(t, catalog.SourceBuiltin, svc.Catalog.Source())

	rr := httptest.NewRecorder()
	svc.Handler().ServeHTTP(rr, httptest.NewRequest("GET", "/health", nil))
	require.Equal(t, http.StatusOK, rr.Code)
	var health struct {
		Status  string `json:"status"`
		Records int    `json:"records"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &health))
	assert.Equal(t, "ok", health.Status)
	assert.Equal(t, 5, health.Records)

	rr = httptest.NewRecorder()
	svc.Handler().ServeHTTP(rr, httptest.NewRequest("GET", "/models/tesla", nil))
	require.Equal(t, http.StatusOK, rr.Code)
	var models map[string][]string
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &models))
	assert.Equal(t, []string{"model 3", "model y"}, models["models"])

	rr = httptest.NewRecorder()
	body := `{"make":"Tesla","model":"Model 3","mileageKm":45000,"firstRegistration":"2020-06-01"}`
	svc.Handler().ServeHTTP(rr, httptest.NewRequest("POST", "/valuation", strings.NewReader(body)))
	require.Equal(t, http.StatusOK, rr.Code)
	var val struct {
		Estimate float64 `json:"estimate"`
		Currency string  `json:"currency"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &val))
	assert.Equal(t, "EUR", val.Currency)
	assert.Greater(t, val.Estimate, 0.0)
}

func TestServiceCORSPreflight(t *testing.T) {
	svc := newTestService(t)
	rr := httptest.NewRecorder()
	req := httptest.NewRequest("OPTIONS", "/valuation", nil)
	req.Header.Set("Origin", "https://example.com")
	req.Header.Set("Access-Control-Request-Method", "POST")
	svc.Handler().ServeHTTP(rr, req)
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.NotEmpty(t, rr.Header().Get("Access-Control-Allow-Origin"))
}
