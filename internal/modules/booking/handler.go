package booking

import (
	"net/http"
	"strings"

	"github.com/georgemunganga/venuehub-backend/internal/platform/httpx"
	"github.com/georgemunganga/venuehub-backend/internal/platform/identity"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// Handler exposes booking HTTP endpoints.
type Handler struct{ service Service }

func NewHandler(service Service) *Handler { return &Handler{service: service} }

func (h *Handler) RegisterRoutes(router chi.Router) {
	router.Route("/api/bookings", func(r chi.Router) {
		r.Use(identity.RequireAuth)
		r.Post("/", h.createBooking)
		r.Get("/", h.listBookings)
		r.Get("/{id}", h.getBooking)
		r.Patch("/{id}/status", h.updateStatus)
		r.Post("/{id}/cancel", h.cancelBooking)
	})
}

func (h *Handler) createBooking(w http.ResponseWriter, r *http.Request) {
	var req CreateBookingRequest
	if err := httpx.Decode(w, r, &req); err != nil {
		httpx.Error(w, r, err)
		return
	}
	caller, _ := identity.FromContext(r.Context())
	b, err := h.service.CreateBooking(r.Context(), caller, req)
	if err != nil {
		httpx.Error(w, r, err)
		return
	}
	httpx.OK(w, http.StatusCreated, b, "Booking request submitted")
}

func (h *Handler) listBookings(w http.ResponseWriter, r *http.Request) {
	caller, _ := identity.FromContext(r.Context())
	page := httpx.Pagination(r)
	f := ListFilter{
		Status: Status(strings.ToUpper(r.URL.Query().Get("status"))),
		Limit:  page.Limit,
		Offset: page.Offset(),
	}
	if raw := r.URL.Query().Get("venue_id"); raw != "" {
		if id, err := uuid.Parse(raw); err == nil {
			f.VenueID = &id
		}
	}
	bookings, total, err := h.service.ListBookings(r.Context(), caller, f)
	if err != nil {
		httpx.Error(w, r, err)
		return
	}
	httpx.List(w, bookings, total, page)
}

func (h *Handler) getBooking(w http.ResponseWriter, r *http.Request) {
	id, err := httpx.IDParam(r, "id")
	if err != nil {
		httpx.Error(w, r, err)
		return
	}
	caller, _ := identity.FromContext(r.Context())
	b, err := h.service.GetBooking(r.Context(), caller, id)
	if err != nil {
		httpx.Error(w, r, err)
		return
	}
	httpx.OK(w, http.StatusOK, b, "")
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
	caller, _ := identity.FromContext(r.Context())
	b, err := h.service.UpdateStatus(r.Context(), caller, id, req)
	if err != nil {
		httpx.Error(w, r, err)
		return
	}
	httpx.OK(w, http.StatusOK, b, "Booking status updated")
}

func (h *Handler) cancelBooking(w http.ResponseWriter, r *http.Request) {
	id, err := httpx.IDParam(r, "id")
	if err != nil {
		httpx.Error(w, r, err)
		return
	}
	caller, _ := identity.FromContext(r.Context())
	b, err := h.service.CancelBooking(r.Context(), caller, id)
	if err != nil {
		httpx.Error(w, r, err)
		return
	}
	httpx.OK(w, http.StatusOK, b, "Booking cancelled")
}
