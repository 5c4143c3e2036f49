package venue

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
	router.Route("/api/venues", func(r chi.Router) {
		r.Get("/", h.listVenues)
		r.Get("/{id}", h.getVenue)

		r.Group(func(r chi.Router) {
			r.Use(identity.RequireRole(identity.RolePartner, identity.RoleAdmin))
			r.Post("/", h.createVenue)
			r.Put("/{id}", h.updateVenue)
			r.Delete("/{id}", h.deleteVenue)
		})

		r.With(identity.RequireRole(identity.RoleAdmin)).Patch("/{id}/status", h.updateStatus)
	})

	router.With(identity.RequireRole(identity.RolePartner)).Get("/api/partner/venues", h.listOwnVenues)
}

func filterFromQuery(r *http.Request, page httpx.Page) ListFilter {
	q := r.URL.Query()
	return ListFilter{
		Type:   strings.ToLower(q.Get("type")),
		Status: Status(strings.ToUpper(q.Get("status"))),
		City:   q.Get("city"),
		Search: q.Get("search"),
		Limit:  page.Limit,
		Offset: page.Offset(),
	}
}

func (h *Handler) listVenues(w http.ResponseWriter, r *http.Request) {
	caller, _ := identity.FromContext(r.Context())
	page := httpx.Pagination(r)
	venues, total, err := h.service.ListVenues(r.Context(), caller, filterFromQuery(r, page))
	if err != nil {
		httpx.Error(w, r, err)
		return
	}
	httpx.List(w, venues, total, page)
}

func (h *Handler) listOwnVenues(w http.ResponseWriter, r *http.Request) {
	caller, _ := identity.FromContext(r.Context())
	page := httpx.Pagination(r)
	venues, total, err := h.service.ListOwnVenues(r.Context(), caller, filterFromQuery(r, page))
	if err != nil {
		httpx.Error(w, r, err)
		return
	}
	httpx.List(w, venues, total, page)
}

func (h *Handler) getVenue(w http.ResponseWriter, r *http.Request) {
	id, err := httpx.IDParam(r, "id")
	if err != nil {
		httpx.Error(w, r, err)
		return
	}
	caller, _ := identity.FromContext(r.Context())
	v, err := h.service.GetVenue(r.Context(), caller, id)
	if err != nil {
		httpx.Error(w, r, err)
		return
	}
	httpx.OK(w, http.StatusOK, v, "")
}

func (h *Handler) createVenue(w http.ResponseWriter, r *http.Request) {
	var req VenueRequest
	if err := httpx.Decode(w, r, &req); err != nil {
		httpx.Error(w, r, err)
		return
	}
	caller, _ := identity.FromContext(r.Context())
	v, err := h.service.CreateVenue(r.Context(), caller, req)
	if err != nil {
		httpx.Error(w, r, err)
		return
	}
	httpx.OK(w, http.StatusCreated, v, "Venue submitted for review")
}

func (h *Handler) updateVenue(w http.ResponseWriter, r *http.Request) {
	id, err := httpx.IDParam(r, "id")
	if err != nil {
		httpx.Error(w, r, err)
		return
	}
	var req VenueRequest
	if err := httpx.Decode(w, r, &req); err != nil {
		httpx.Error(w, r, err)
		return
	}
	caller, _ := identity.FromContext(r.Context())
	v, err := h.service.UpdateVenue(r.Context(), caller, id, req)
	if err != nil {
		httpx.Error(w, r, err)
		return
	}
	httpx.OK(w, http.StatusOK, v, "Venue updated")
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
	v, err := h.service.UpdateStatus(r.Context(), id, req)
	if err != nil {
		httpx.Error(w, r, err)
		return
	}
	httpx.OK(w, http.StatusOK, v, "Venue status updated")
}

func (h *Handler) deleteVenue(w http.ResponseWriter, r *http.Request) {
	id, err := httpx.IDParam(r, "id")
	if err != nil {
		httpx.Error(w, r, err)
		return
	}
	caller, _ := identity.FromContext(r.Context())
	if err := h.service.DeleteVenue(r.Context(), caller, id); err != nil {
		httpx.Error(w, r, err)
		return
	}
	httpx.OK(w, http.StatusOK, nil, "Venue deleted")
}
