package vehicles

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/kagankarabayir/EV-Price-Estimator/core/catalog"
)

func testCatalog() *catalog.Catalog {
	return catalog.New([]catalog.Archetype{
		{Make: "volkswagen", Model: "id.4", BasePrice: 26000, Year0: 2021},
		{Make: "tesla", Model: "model y", BasePrice: 35000, Year0: 2021},
		{Make: "tesla", Model: "model 3", BasePrice: 28000, Year0: 2019},
	}, catalog.SourceCanonical)
}

func TestMakesHandler(t *testing.T) {
	h := NewMakesHandler(testCatalog())
	rr := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/makes", nil)
	h.ServeHTTP(rr, req)
	if rr.Code != http.StatusOK {
		t.Fatalf("status %d", rr.Code)
	}
	var out map[string][]string
	if err := json.Unmarshal(rr.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(out["makes"]) != 2 || out["makes"][0] != "tesla" || out["makes"][1] != "volkswagen" {
		t.Fatalf("unexpected makes %#v", out)
	}
}

func TestModelsHandler(t *testing.T) {
	r := chi.NewRouter()
	r.Method(http.MethodGet, "/models/{make}", NewModelsHandler(testCatalog()))
	rr := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/models/Tesla", nil)
	r.ServeHTTP(rr, req)
	if rr.Code != http.StatusOK {
		t.Fatalf("status %d", rr.Code)
	}
	var out map[string][]string
	if err := json.Unmarshal(rr.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(out["models"]) != 2 || out["models"][0] != "model 3" || out["models"][1] != "model y" {
		t.Fatalf("unexpected models %#v", out)
	}
}

func TestModelsHandler_UnknownMakeEmptyList(t *testing.T) {
	r := chi.NewRouter()
	r.Method(http.MethodGet, "/models/{make}", NewModelsHandler(testCatalog()))
	rr := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/models/rivian", nil)
	r.ServeHTTP(rr, req)
	if rr.Code != http.StatusOK {
		t.Fatalf("status %d", rr.Code)
	}
	if rr.Body.String() != "{\"models\":[]}\n" {
		t.Fatalf("expected empty list got %s", rr.Body.String())
	}
}
