package auth

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
	router.Post("/auth/login", h.login)
	router.With(identity.RequireAuth).Get("/auth/me", h.me)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := httpx.Decode(w, r, &req); err != nil {
		httpx.Error(w, r, err)
		return
	}

	session, err := h.service.Login(r.Context(), req)
	if err != nil {
		httpx.Error(w, r, err)
		return
	}
	httpx.OK(w, http.StatusOK, session, "Login successful")
}

func (h *Handler) me(w http.ResponseWriter, r *http.Request) {
	p, _ := identity.FromContext(r.Context())
	u, err := h.service.Me(r.Context(), p.UserID)
	if err != nil {
		httpx.Error(w, r, err)
		return
	}
	httpx.OK(w, http.StatusOK, u, "")
}
