package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/sports-academy/backend/internal/middleware"
	"github.com/sports-academy/backend/internal/models"
	"github.com/sports-academy/backend/internal/store"
	"github.com/sports-academy/backend/internal/utils"
)

type CartHandler struct {
	store store.Store
}

func NewCartHandler(s store.Store) *CartHandler {
	return &CartHandler{store: s}
}

// SelectedClass returns the caller's cart. The email query parameter must
// match the token identity.
func (h *CartHandler) SelectedClass(w http.ResponseWriter, r *http.Request) {
	email := r.URL.Query().Get("email")
	if email == "" {
		utils.WriteJSON(w, http.StatusOK, []models.CartSelection{})
		return
	}

	claims := middleware.ClaimsFromContext(r.Context())
	if claims == nil || claims.Email != email {
		utils.WriteError(w, http.StatusForbidden, "forbidden access")
		return
	}

	selections, err := h.store.ListCart(r.Context(), email)
	if err != nil {
		utils.WriteError(w, http.StatusInternalServerError, "failed to fetch cart")
		return
	}
	utils.WriteJSON(w, http.StatusOK, selections)
}

func (h *CartHandler) AddToCart(w http.ResponseWriter, r *http.Request) {
	var selection models.CartSelection
	if err := json.NewDecoder(r.Body).Decode(&selection); err != nil {
		utils.WriteError(w, http.StatusBadRequest, "invalid request payload")
		return
	}

	result, err := h.store.AddToCart(r.Context(), selection)
	if err != nil {
		utils.WriteError(w, http.StatusInternalServerError, "failed to add to cart")
		return
	}
	utils.WriteJSON(w, http.StatusOK, result)
}

func (h *CartHandler) RemoveClass(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(mux.Vars(r)["id"])
	if err != nil {
		utils.WriteError(w, http.StatusBadRequest, "invalid class ID")
		return
	}

	result, err := h.store.RemoveFromCart(r.Context(), id)
	if err != nil {
		utils.WriteError(w, http.StatusInternalServerError, "failed to remove class")
		return
	}
	utils.WriteJSON(w, http.StatusOK, result)
}
