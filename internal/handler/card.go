package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/cardbox/cardbox-go/internal/model"
	"github.com/cardbox/cardbox-go/internal/service"
)

// CardHandler handles HTTP requests for card operations.
type CardHandler struct {
	service *service.CardService
}

// NewCardHandler creates a new CardHandler.
func NewCardHandler(svc *service.CardService) *CardHandler {
	return &CardHandler{service: svc}
}

// HandleList handles GET /cards requests.
func (h *CardHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	cards, err := h.service.List(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, cards)
}

// HandleCreate handles POST /cards requests.
func (h *CardHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	id, err := subjectID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	var req model.CreateCardRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, err)
		return
	}

	card, err := h.service.Create(r.Context(), id, req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, card)
}

// HandleDelete handles DELETE /cards/{id} requests. The response echoes
// the deleted card's final state.
func (h *CardHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, err := subjectID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	card, err := h.service.Delete(r.Context(), id, chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, card)
}

// HandleAddLike handles PUT /cards/{id}/likes requests.
func (h *CardHandler) HandleAddLike(w http.ResponseWriter, r *http.Request) {
	id, err := subjectID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	card, err := h.service.AddLike(r.Context(), id, chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, card)
}

// HandleRemoveLike handles DELETE /cards/{id}/likes requests.
func (h *CardHandler) HandleRemoveLike(w http.ResponseWriter, r *http.Request) {
	id, err := subjectID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	card, err := h.service.RemoveLike(r.Context(), id, chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, card)
}
