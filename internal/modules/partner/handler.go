package partner

import (
	"net/http"
	"strings"

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
	router.Route("/api/partner/profile", func(r chi.Router) {
		r.Use(identity.RequireRole(identity.RolePartner))
		r.Get("/", h.getProfile)
		r.Put("/", h.saveProfile)
	})
	router.Route("/api/businesses", func(r chi.Router) {
		r.Use(identity.RequireRole(identity.RoleAdmin))
		r.Get("/", h.listBusinesses)
		r.Patch("/{id}/status", h.updateStatus)
	})
}

func (h *Handler) getProfile(w http.ResponseWriter, r *http.Request) {
	p, _ := identity.FromContext(r.Context())
	b, err := h.service.GetProfile(r.Context(), p.UserID)
	if err != nil {
		httpx.Error(w, r, err)
		return
	}
	httpx.OK(w, http.StatusOK, b, "")
}

func (h *Handler) saveProfile(w http.ResponseWriter, r *http.Request) {
	var req ProfileRequest
	if err := httpx.Decode(w, r, &req); err != nil {
		httpx.Error(w, r, err)
		return
	}
	p, _ := identity.FromContext(r.Context())
	b, created, err := h.service.SaveProfile(r.Context(), p.UserID, req)
	if err != nil {
		httpx.Error(w, r, err)
		return
	}
	if created {
		httpx.OK(w, http.StatusCreated, b, "Profile created")
		return
	}
	httpx.OK(w, http.StatusOK, b, "Profile updated")
}

func (h *Handler) listBusinesses(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	page := httpx.Pagination(r)
	list, total, err := h.service.ListBusinesses(r.Context(), ListFilter{
		Status: Status(strings.ToUpper(q.Get("status"))),
		Type:   strings.ToLower(q.Get("type")),
		Search: q.Get("search"),
		Limit:  page.Limit,
		Offset: page.Offset(),
	})
	if err != nil {
		httpx.Error(w, r, err)
		return
	}
	httpx.List(w, list, total, page)
}

func (h *Handler) updateStatus(w http.ResponseWriter, r *http.Request) {
	id, err := httpx.IDParam(r, "id")
	if err != nil {
		httpx.Error(w, r, err)
		return
	}
	var req StatusRequest
	if err := httpx.Decode(w, r, &req); err != nil {
		httpx.Error(w, r, err)
		return
	}
	req.Status = Status(strings.ToUpper(string(req.Status)))
	b, err := h.service.UpdateStatus(r.Context(), id, req)
	if err != nil {
		httpx.Error(w, r, err)
		return
	}
	httpx.OK(w, http.StatusOK, b, "Business status updated")
}
