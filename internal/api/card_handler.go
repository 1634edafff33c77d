package api

import (
	"net/http"

	"github.com/mesto-project/mesto-api/internal/api/shared"
	"github.com/mesto-project/mesto-api/internal/domain"
	"github.com/mesto-project/mesto-api/internal/store"
)

// CardHandler handles the protected card endpoints.
type CardHandler struct {
	cardStore store.CardStore
}

// NewCardHandler creates a new CardHandler with the given dependencies.
func NewCardHandler(cardStore store.CardStore) *CardHandler {
	return &CardHandler{cardStore: cardStore}
}

// List handles GET /cards.
func (h *CardHandler) List(w http.ResponseWriter, r *http.Request) {
	cards, err := h.cardStore.List(r.Context())
	if err != nil {
		HandleServiceError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, cards)
}

// Create handles POST /cards. The owner is always the caller.
func (h *CardHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireCaller(w, r)
	if !ok {
		return
	}

	var req CreateCardRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		HandleValidationError(w, r, err, "creating card")
		return
	}
	if err := shared.ValidateRequest(req); err != nil {
		HandleValidationError(w, r, err, "creating card")
		return
	}

	card, err := domain.NewCard(userID, req.Name, req.Link)
	if err != nil {
		HandleValidationError(w, r, err, "creating card")
		return
	}

	if err := h.cardStore.Create(r.Context(), card); err != nil {
		HandleServiceError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, card)
}

// Delete handles DELETE /cards/{cardId}: lookup, ownership check, delete.
// Only the card's owner may delete it; anyone else gets 403 and the card
// stays in place.
func (h *CardHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireCaller(w, r)
	if !ok {
		return
	}

	cardID, err := getPathUUID(r, "cardId")
	if err != nil {
		HandleServiceError(w, r, err)
		return
	}

	card, err := h.cardStore.GetByID(r.Context(), cardID)
	if err != nil {
		HandleServiceError(w, r, err)
		return
	}

	if card.Owner != userID {
		HandleServiceError(w, r, ErrCardNotOwned)
		return
	}

	if err := h.cardStore.Delete(r.Context(), cardID); err != nil {
		HandleServiceError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, card)
}

// Like handles PUT /cards/{cardId}/likes. Adding the caller to the likers
// set is idempotent; liking twice leaves the set unchanged.
func (h *CardHandler) Like(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireCaller(w, r)
	if !ok {
		return
	}

	cardID, err := getPathUUID(r, "cardId")
	if err != nil {
		HandleServiceError(w, r, err)
		return
	}

	card, err := h.cardStore.AddLike(r.Context(), cardID, userID)
	if err != nil {
		HandleServiceError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, card)
}

// Unlike handles DELETE /cards/{cardId}/likes. Removing an absent like is a
// no-op and still answers with the card.
func (h *CardHandler) Unlike(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireCaller(w, r)
	if !ok {
		return
	}

	cardID, err := getPathUUID(r, "cardId")
	if err != nil {
		HandleServiceError(w, r, err)
		return
	}

	card, err := h.cardStore.RemoveLike(r.Context(), cardID, userID)
	if err != nil {
		HandleServiceError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, card)
}
