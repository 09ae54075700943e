// Heftly | 2026
// handler.go

package user

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/heftly/backend/internal/core"
)

type Handler struct {
	service   *Service
	validator *validator.Validate
}

func NewHandler(service *Service) *Handler {
	return &Handler{
		service:   service,
		validator: validator.New(validator.WithRequiredStructEnabled()),
	}
}

// RegisterRoutes mounts the directory endpoints. Reading the list
// needs any valid token (trainer dashboards resolve names through
// it); mutations are an admin capability.
func (h *Handler) RegisterRoutes(
	r chi.Router,
	authenticator, adminOnly func(http.Handler) http.Handler,
) {
	r.Route("/user", func(r chi.Router) {
		r.Use(authenticator)

		r.Get("/", h.ListUsers)

		r.Group(func(r chi.Router) {
			r.Use(adminOnly)

			r.Post("/create", h.CreateUser)
			r.Put("/{userID}", h.UpdateUser)
			r.Delete("/delete/{userID}", h.DeleteUser)
		})
	})
}

func (h *Handler) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.service.List(r.Context())
	if err != nil {
		core.InternalServerError(w, r, err)
		return
	}

	core.OK(w, ToUserResponseList(users))
}

// CreateUser reads the candidate from the userdata request header,
// where the management screen has always sent it.
func (h *Handler) CreateUser(w http.ResponseWriter, r *http.Request) {
	userdata := r.Header.Get("userdata")
	if userdata == "" {
		core.BadRequest(w, "missing userdata header")
		return
	}

	var req CreateUserRequest
	if err := json.Unmarshal([]byte(userdata), &req); err != nil {
		core.BadRequest(w, "invalid userdata payload")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		core.BadRequest(w, core.FormatValidationError(err))
		return
	}

	created, err := h.service.Create(r.Context(), req)
	if err != nil {
		if errors.Is(err, core.ErrDuplicateKey) {
			core.OK(w, ExistsResponse{Exists: true})
			return
		}
		if errors.Is(err, core.ErrInvalidInput) {
			core.BadRequest(w, err.Error())
			return
		}
		core.InternalServerError(w, r, err)
		return
	}

	core.Created(w, CreateUserResponse{
		Message: "Benutzer erstellt",
		NewUser: ToUserResponse(created),
	})
}

func (h *Handler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")

	var req UpdateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		core.BadRequest(w, "invalid request body")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		core.BadRequest(w, core.FormatValidationError(err))
		return
	}

	if _, err := h.service.Update(r.Context(), userID, req); err != nil {
		if errors.Is(err, core.ErrNotFound) {
			core.NotFound(w, "user")
			return
		}
		if errors.Is(err, core.ErrDuplicateKey) {
			core.JSONError(w, core.DuplicateError("name"))
			return
		}
		if errors.Is(err, core.ErrInvalidInput) {
			core.BadRequest(w, err.Error())
			return
		}
		core.InternalServerError(w, r, err)
		return
	}

	core.OK(w, MessageResponse{Message: "Benutzer aktualisiert"})
}

func (h *Handler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")

	if err := h.service.Delete(r.Context(), userID); err != nil {
		if errors.Is(err, core.ErrNotFound) {
			core.NotFound(w, "user")
			return
		}
		core.InternalServerError(w, r, err)
		return
	}

	core.OK(w, MessageResponse{Message: "Benutzer gelöscht"})
}
