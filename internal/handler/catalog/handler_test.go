package catalog

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/quickserve/crew-assistant/backend/internal/model/catalog"
)

func newTestRouter() chi.Router {
	r := chi.NewRouter()
	New(catalog.NewSeededStore()).RegisterRoutes(r)
	return r
}

func get(t *testing.T, r chi.Router, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("GET %s status = %d, want 200", path, rec.Code)
	}
	return rec
}

func TestHandleMenu(t *testing.T) {
	rec := get(t, newTestRouter(), "/menu")

	var payload struct {
		Categories []catalog.MenuCategory `json:"categories"`
		Combos     []catalog.Combo        `json:"combos"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&payload); err != nil {
		t.Fatalf("decode menu: %v", err)
	}
	if len(payload.Categories) == 0 {
		t.Error("expected menu categories")
	}
	if len(payload.Combos) == 0 {
		t.Error("expected combos")
	}
}

func TestHandleOffers(t *testing.T) {
	rec := get(t, newTestRouter(), "/offers")

	var offers []catalog.Offer
	if err := json.NewDecoder(rec.Body).Decode(&offers); err != nil {
		t.Fatalf("decode offers: %v", err)
	}
	if len(offers) != 5 {
		t.Fatalf("got %d offers, want 5", len(offers))
	}
}

func TestHandleStores(t *testing.T) {
	rec := get(t, newTestRouter(), "/stores")

	var stores []catalog.StoreLocation
	if err := json.NewDecoder(rec.Body).Decode(&stores); err != nil {
		t.Fatalf("decode stores: %v", err)
	}
	if len(stores) != 4 {
		t.Fatalf("got %d stores, want 4", len(stores))
	}
}
