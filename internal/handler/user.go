package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/cardbox/cardbox-go/internal/apperr"
	"github.com/cardbox/cardbox-go/internal/middleware"
	"github.com/cardbox/cardbox-go/internal/model"
	"github.com/cardbox/cardbox-go/internal/service"
)

// UserHandler handles HTTP requests for user listing and profile
// management.
type UserHandler struct {
	service *service.UserService
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(svc *service.UserService) *UserHandler {
	return &UserHandler{service: svc}
}

// subjectID extracts the authenticated user id placed in the context by
// the auth middleware.
func subjectID(r *http.Request) (string, error) {
	id, ok := middleware.SubjectIDFromContext(r.Context())
	if !ok {
		return "", apperr.Auth("authorization required")
	}
	return id, nil
}

// HandleList handles GET /users requests.
func (h *UserHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	users, err := h.service.List(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, users)
}

// HandleGet handles GET /users/{id} requests.
func (h *UserHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	user, err := h.service.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, user)
}

// HandleMe handles GET /users/me requests.
func (h *UserHandler) HandleMe(w http.ResponseWriter, r *http.Request) {
	id, err := subjectID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	user, err := h.service.Get(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, user)
}

// HandleUpdateProfile handles PATCH /users/me requests.
func (h *UserHandler) HandleUpdateProfile(w http.ResponseWriter, r *http.Request) {
	id, err := subjectID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	var req model.UpdateProfileRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, err)
		return
	}

	user, err := h.service.UpdateProfile(r.Context(), id, req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, user)
}

// HandleUpdateAvatar handles PATCH /users/me/avatar requests.
func (h *UserHandler) HandleUpdateAvatar(w http.ResponseWriter, r *http.Request) {
	id, err := subjectID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	var req model.UpdateAvatarRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, err)
		return
	}

	user, err := h.service.UpdateAvatar(r.Context(), id, req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, user)
}
