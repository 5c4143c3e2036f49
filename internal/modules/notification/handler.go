package notification

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
	router.Route("/notifications", func(r chi.Router) {
		r.Use(identity.RequireAuth)
		r.Get("/", h.list)
		r.Get("/unread-count", h.unreadCount)
		r.Patch("/read-all", h.markAllRead)
		r.Patch("/{id}/read", h.markRead)
		r.Delete("/{id}", h.delete)
	})
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	p, _ := identity.FromContext(r.Context())
	page := httpx.Pagination(r)
	list, total, err := h.service.List(r.Context(), ListFilter{
		UserID:     p.UserID,
		UnreadOnly: r.URL.Query().Get("unread") == "true",
		Limit:      page.Limit,
		Offset:     page.Offset(),
	})
	if err != nil {
		httpx.Error(w, r, err)
		return
	}
	httpx.List(w, list, total, page)
}

func (h *Handler) unreadCount(w http.ResponseWriter, r *http.Request) {
	p, _ := identity.FromContext(r.Context())
	n, err := h.service.UnreadCount(r.Context(), p.UserID)
	if err != nil {
		httpx.Error(w, r, err)
		return
	}
	httpx.OK(w, http.StatusOK, map[string]int64{"count": n}, "")
}

func (h *Handler) markRead(w http.ResponseWriter, r *http.Request) {
	id, err := httpx.IDParam(r, "id")
	if err != nil {
		httpx.Error(w, r, err)
		return
	}
	p, _ := identity.FromContext(r.Context())
	if err := h.service.MarkRead(r.Context(), id, p.UserID); err != nil {
		httpx.Error(w, r, err)
		return
	}
	httpx.OK(w, http.StatusOK, nil, "Notification marked as read")
}

func (h *Handler) markAllRead(w http.ResponseWriter, r *http.Request) {
	p, _ := identity.FromContext(r.Context())
	n, err := h.service.MarkAllRead(r.Context(), p.UserID)
	if err != nil {
		httpx.Error(w, r, err)
		return
	}
	httpx.OK(w, http.StatusOK, map[string]int64{"updated": n}, "All notifications marked as read")
}

func (h *Handler) delete(w http.ResponseWriter, r *http.Request) {
	id, err := httpx.IDParam(r, "id")
	if err != nil {
		httpx.Error(w, r, err)
		return
	}
	p, _ := identity.FromContext(r.Context())
	if err := h.service.Delete(r.Context(), id, p.UserID); err != nil {
		httpx.Error(w, r, err)
		return
	}
	httpx.OK(w, http.StatusOK, nil, "Notification deleted")
}
