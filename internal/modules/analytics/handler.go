package analytics

import (
	"net/http"

	"github.com/georgemunganga/venuehub-backend/internal/platform/httpx"
	"github.com/georgemunganga/venuehub-backend/internal/platform/identity"
	"github.com/go-chi/chi/v5"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(router chi.Router) {
	router.With(identity.RequireRole(identity.RoleAdmin)).Get("/analytics", h.adminSummary)
	router.With(identity.RequireRole(identity.RolePartner)).Get("/analytics/partner", h.partnerSummary)
}

func (h *Handler) adminSummary(w http.ResponseWriter, r *http.Request) {
	s, err := h.service.AdminSummary(r.Context())
	if err != nil {
		httpx.Error(w, r, err)
		return
	}
	httpx.OK(w, http.StatusOK, s, "")
}

func (h *Handler) partnerSummary(w http.ResponseWriter, r *http.Request) {
	p, _ := identity.FromContext(r.Context())
	s, err := h.service.PartnerSummary(r.Context(), p.UserID)
	if err != nil {
		httpx.Error(w, r, err)
		return
	}
	httpx.OK(w, http.StatusOK, s, "")
}
