// Heftly | 2026
// handler.go

package auth

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/heftly/backend/internal/core"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/login", h.Login)
}

// Login authenticates the credentials carried in the username and
// password request headers (the portal's login form sends them
// there). A bad username and a bad password get the identical
// 404 INVALID_DATA answer.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	username := r.Header.Get("username")
	password := r.Header.Get("password")

	if username == "" || password == "" {
		core.WriteJSON(w, http.StatusNotFound, loginErrorResponse{
			Error: "INVALID_DATA",
		})
		return
	}

	token, err := h.service.Login(r.Context(), username, password)
	if err != nil {
		if errors.Is(err, ErrInvalidCredentials) {
			core.WriteJSON(w, http.StatusNotFound, loginErrorResponse{
				Error: "INVALID_DATA",
			})
			return
		}
		core.InternalServerError(w, r, err)
		return
	}

	core.OK(w, LoginResponse{
		Message: "Erfolgreich eingeloggt",
		Token:   token,
	})
}
