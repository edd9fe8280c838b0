package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/sports-academy/backend/internal/auth"
	"github.com/sports-academy/backend/internal/utils"
)

type TokenHandler struct {
	secret []byte
}

func NewTokenHandler(secret []byte) *TokenHandler {
	return &TokenHandler{secret: secret}
}

// IssueToken signs whatever identity payload the client sent and returns the
// raw token string, the shape the frontend has always consumed.
func (h *TokenHandler) IssueToken(w http.ResponseWriter, r *http.Request) {
	var payload map[string]interface{}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		utils.WriteError(w, http.StatusBadRequest, "invalid request payload")
		return
	}

	token, err := auth.GenerateToken(h.secret, payload)
	if err != nil {
		utils.WriteError(w, http.StatusInternalServerError, "failed to sign token")
		return
	}

	w.WriteHeader(http.StatusOK)
	w.Write([]byte(token))
}
