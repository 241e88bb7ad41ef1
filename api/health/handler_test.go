package health

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/kagankarabayir/EV-Price-Estimator/core/catalog"
)

func TestHealthHandler(t *testing.T) {
	cat := catalog.New([]catalog.Archetype{
		{Make: "tesla", Model: "model 3", BasePrice: 28000, Year0: 2019},
		{Make: "nissan", Model: "leaf", BasePrice: 12000, Year0: 2018},
	}, catalog.SourceCanonical)
	h := NewHandler(cat)
	rr := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/health", nil)
	h.ServeHTTP(rr, req)
	if rr.Code != http.StatusOK {
		t.Fatalf("status %d", rr.Code)
	}
	var out struct {
		Status  string `json:"status"`
		Records int    `json:"records"`
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if out.Status != "ok" || out.Records != 2 {
		t.Fatalf("unexpected body %#v", out)
	}
}

func TestHealthHandler_MethodNotAllowed(t *testing.T) {
	cat := catalog.New(nil, catalog.SourceBuiltin)
	h := NewHandler(cat)
	rr := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/health", nil)
	h.ServeHTTP(rr, req)
	if rr.Code != http.StatusMethodNotAllowed {
		t.Fatalf("status %d", rr.Code)
	}
}
