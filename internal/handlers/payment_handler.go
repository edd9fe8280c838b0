package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/sports-academy/backend/internal/utils"
)

// IntentCreator requests a payment intent for a price in major currency
// units and returns its client secret.
type IntentCreator interface {
	CreateIntent(ctx context.Context, price float64) (string, error)
}

type PaymentHandler struct {
	intents IntentCreator
}

func NewPaymentHandler(intents IntentCreator) *PaymentHandler {
	return &PaymentHandler{intents: intents}
}

func (h *PaymentHandler) CreatePaymentIntent(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Price float64 `json:"price"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		utils.WriteError(w, http.StatusBadRequest, "invalid request payload")
		return
	}

	clientSecret, err := h.intents.CreateIntent(r.Context(), body.Price)
	if err != nil {
		utils.WriteError(w, http.StatusInternalServerError, "failed to create payment intent")
		return
	}

	utils.WriteJSON(w, http.StatusOK, map[string]string{"clientSecret": clientSecret})
}
