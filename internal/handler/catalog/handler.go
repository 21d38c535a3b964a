package catalog

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/quickserve/crew-assistant/backend/internal/model/catalog"
	"github.com/quickserve/crew-assistant/backend/pkg/utils"
)

// Handler serves the read-only catalogs to the frontend.
type Handler struct {
	store catalog.Store
}

// New creates the catalog handler.
func New(store catalog.Store) *Handler {
	return &Handler{store: store}
}

// RegisterRoutes mounts the catalog routes.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/menu", h.handleMenu)
	r.Get("/offers", h.handleOffers)
	r.Get("/stores", h.handleStores)
}

func (h *Handler) handleMenu(w http.ResponseWriter, r *http.Request) {
	utils.RespondJSON(w, http.StatusOK, map[string]interface{}{
		"categories": h.store.Categories(),
		"combos":     h.store.Combos(),
	})
}

func (h *Handler) handleOffers(w http.ResponseWriter, r *http.Request) {
	utils.RespondJSON(w, http.StatusOK, h.store.Offers())
}

func (h *Handler) handleStores(w http.ResponseWriter, r *http.Request) {
	utils.RespondJSON(w, http.StatusOK, h.store.Stores())
}
