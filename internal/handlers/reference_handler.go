package handlers

import (
	"net/http"

	"github.com/sports-academy/backend/internal/store"
	"github.com/sports-academy/backend/internal/utils"
)

// ReferenceHandler serves the read-only reference collections.
type ReferenceHandler struct {
	store store.Store
}

func NewReferenceHandler(s store.Store) *ReferenceHandler {
	return &ReferenceHandler{store: s}
}

// Instructors returns the directory sorted by number of courses taught.
func (h *ReferenceHandler) Instructors(w http.ResponseWriter, r *http.Request) {
	instructors, err := h.store.ListInstructors(r.Context())
	if err != nil {
		utils.WriteError(w, http.StatusInternalServerError, "failed to fetch instructors")
		return
	}
	utils.WriteJSON(w, http.StatusOK, instructors)
}

// Categories lists categories, filtered by exact name when ?name= is set.
func (h *ReferenceHandler) Categories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.store.ListCategories(r.Context(), r.URL.Query().Get("name"))
	if err != nil {
		utils.WriteError(w, http.StatusInternalServerError, "failed to fetch categories")
		return
	}
	utils.WriteJSON(w, http.StatusOK, categories)
}

func (h *ReferenceHandler) Reviews(w http.ResponseWriter, r *http.Request) {
	reviews, err := h.store.ListReviews(r.Context())
	if err != nil {
		utils.WriteError(w, http.StatusInternalServerError, "failed to fetch reviews")
		return
	}
	utils.WriteJSON(w, http.StatusOK, reviews)
}
