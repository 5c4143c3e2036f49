package donation

import (
	"net/http"
	"strings"

	"github.com/georgemunganga/venuehub-backend/internal/platform/httpx"
	"github.com/georgemunganga/venuehub-backend/internal/platform/identity"
	"github.com/go-chi/chi/v5"
)

// Handler exposes donation HTTP endpoints.
type Handler struct{ service Service }

func NewHandler(service Service) *Handler { return &Handler{service: service} }

func (h *Handler) RegisterRoutes(router chi.Router) {
	router.Route("/api/donations", func(r chi.Router) {
		r.Use(identity.RequireAuth)
		r.Post("/", h.createDonation)
		r.Get("/", h.listDonations)
		r.Get("/{id}", h.getDonation)
		r.With(identity.RequireRole(identity.RoleAdmin)).Patch("/{id}/status", h.updateStatus)
		r.Post("/{id}/cancel", h.cancelDonation)
	})
}

func (h *Handler) createDonation(w http.ResponseWriter, r *http.Request) {
	var req CreateDonationRequest
	if err := httpx.Decode(w, r, &req); err != nil {
		httpx.Error(w, r, err)
		return
	}
	caller, _ := identity.FromContext(r.Context())
	d, err := h.service.CreateDonation(r.Context(), caller, req)
	if err != nil {
		httpx.Error(w, r, err)
		return
	}
	httpx.OK(w, http.StatusCreated, d, "Donation submitted")
}

func (h *Handler) listDonations(w http.ResponseWriter, r *http.Request) {
	caller, _ := identity.FromContext(r.Context())
	page := httpx.Pagination(r)
	list, total, err := h.service.ListDonations(r.Context(), caller, ListFilter{
		Status: Status(strings.ToUpper(r.URL.Query().Get("status"))),
		City:   r.URL.Query().Get("city"),
		Limit:  page.Limit,
		Offset: page.Offset(),
	})
	if err != nil {
		httpx.Error(w, r, err)
		return
	}
	httpx.List(w, list, total, page)
}

func (h *Handler) getDonation(w http.ResponseWriter, r *http.Request) {
	id, err := httpx.IDParam(r, "id")
	if err != nil {
		httpx.Error(w, r, err)
		return
	}
	caller, _ := identity.FromContext(r.Context())
	d, err := h.service.GetDonation(r.Context(), caller, id)
	if err != nil {
		httpx.Error(w, r, err)
		return
	}
	httpx.OK(w, http.StatusOK, d, "")
}

func (h *Handler) updateStatus(w http.ResponseWriter, r *http.Request) {
	id, err := httpx.IDParam(r, "id")
	if err != nil {
		httpx.Error(w, r, err)
		return
	}
	var req UpdateStatusRequest
	if err := httpx.Decode(w, r, &req); err != nil {
		httpx.Error(w, r, err)
		return
	}
	req.Status = Status(strings.ToUpper(string(req.Status)))
	d, err := h.service.UpdateStatus(r.Context(), id, req)
	if err != nil {
		httpx.Error(w, r, err)
		return
	}
	httpx.OK(w, http.StatusOK, d, "Donation status updated")
}

func (h *Handler) cancelDonation(w http.ResponseWriter, r *http.Request) {
	id, err := httpx.IDParam(r, "id")
	if err != nil {
		httpx.Error(w, r, err)
		return
	}
	caller, _ := identity.FromContext(r.Context())
	d, err := h.service.CancelDonation(r.Context(), caller, id)
	if err != nil {
		httpx.Error(w, r, err)
		return
	}
	httpx.OK(w, http.StatusOK, d, "Donation cancelled")
}
