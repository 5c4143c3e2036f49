package venuetype

import (
	"fmt"
	"net/http"

	"github.com/georgemunganga/venuehub-backend/internal/platform/apperr"
	"github.com/georgemunganga/venuehub-backend/internal/platform/httpx"
	"github.com/go-chi/chi/v5"
)

type Handler struct {
	registry *Registry
}

func NewHandler(registry *Registry) *Handler {
	return &Handler{registry: registry}
}

func (h *Handler) RegisterRoutes(router chi.Router) {
	router.Get("/api/venue-types", h.listTypes)
	router.Get("/api/venue-types/{type}", h.getType)
}

func (h *Handler) listTypes(w http.ResponseWriter, r *http.Request) {
	httpx.OK(w, http.StatusOK, h.registry.Types(), "")
}

func (h *Handler) getType(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "type")
	cfg, ok := h.registry.Lookup(name)
	if !ok {
		httpx.Error(w, r, fmt.Errorf("venue type %q: %w", name, apperr.ErrNotFound))
		return
	}
	httpx.OK(w, http.StatusOK, cfg, "")
}
