package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/sports-academy/backend/internal/middleware"
	"github.com/sports-academy/backend/internal/models"
	"github.com/sports-academy/backend/internal/store"
	"github.com/sports-academy/backend/internal/utils"
)

type ClassHandler struct {
	store    store.Store
	validate *validator.Validate
}

func NewClassHandler(s store.Store) *ClassHandler {
	return &ClassHandler{store: s, validate: validator.New()}
}

// PopularClasses returns the showcase classes sorted by student count.
func (h *ClassHandler) PopularClasses(w http.ResponseWriter, r *http.Request) {
	classes, err := h.store.ListPopularClasses(r.Context())
	if err != nil {
		utils.WriteError(w, http.StatusInternalServerError, "failed to fetch classes")
		return
	}
	utils.WriteJSON(w, http.StatusOK, classes)
}

// ApprovedOfferings is the public catalog: approved class offerings only.
func (h *ClassHandler) ApprovedOfferings(w http.ResponseWriter, r *http.Request) {
	offerings, err := h.store.ListApprovedOfferings(r.Context())
	if err != nil {
		utils.WriteError(w, http.StatusInternalServerError, "failed to fetch classes")
		return
	}
	utils.WriteJSON(w, http.StatusOK, offerings)
}

// AllOfferings returns every class offering regardless of status.
func (h *ClassHandler) AllOfferings(w http.ResponseWriter, r *http.Request) {
	offerings, err := h.store.ListOfferings(r.Context())
	if err != nil {
		utils.WriteError(w, http.StatusInternalServerError, "failed to fetch classes")
		return
	}
	utils.WriteJSON(w, http.StatusOK, offerings)
}

// OfferingsByInstructor lists the calling instructor's own offerings.
func (h *ClassHandler) OfferingsByInstructor(w http.ResponseWriter, r *http.Request) {
	email := mux.Vars(r)["email"]
	claims := middleware.ClaimsFromContext(r.Context())
	if claims == nil || claims.Email != email {
		utils.WriteError(w, http.StatusForbidden, "forbidden access")
		return
	}

	offerings, err := h.store.ListOfferingsByInstructor(r.Context(), email)
	if err != nil {
		utils.WriteError(w, http.StatusInternalServerError, "failed to fetch classes")
		return
	}
	utils.WriteJSON(w, http.StatusOK, offerings)
}

// CreateOffering inserts a new class offering, pending until approved.
func (h *ClassHandler) CreateOffering(w http.ResponseWriter, r *http.Request) {
	var offering models.ClassOffering
	if err := json.NewDecoder(r.Body).Decode(&offering); err != nil {
		utils.WriteError(w, http.StatusBadRequest, "invalid request payload")
		return
	}

	if err := h.validate.Struct(offering); err != nil {
		utils.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	if offering.Status == "" {
		offering.Status = models.StatusPending
	}

	result, err := h.store.InsertOffering(r.Context(), offering)
	if err != nil {
		utils.WriteError(w, http.StatusInternalServerError, "failed to create class")
		return
	}
	utils.WriteJSON(w, http.StatusOK, result)
}

// UpdateOffering upserts the instructor-editable fields of an offering.
func (h *ClassHandler) UpdateOffering(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(mux.Vars(r)["id"])
	if err != nil {
		utils.WriteError(w, http.StatusBadRequest, "invalid class ID")
		return
	}

	var body struct {
		Name         string  `json:"name"`
		Price        float64 `json:"price"`
		AvailableSet int     `json:"available_set"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		utils.WriteError(w, http.StatusBadRequest, "invalid request payload")
		return
	}

	result, err := h.store.UpdateOfferingDetails(r.Context(), id, body.Name, body.Price, body.AvailableSet)
	if err != nil {
		utils.WriteError(w, http.StatusInternalServerError, "failed to update class")
		return
	}
	utils.WriteJSON(w, http.StatusOK, result)
}

// SendFeedback upserts the admin feedback text on an offering.
func (h *ClassHandler) SendFeedback(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(mux.Vars(r)["id"])
	if err != nil {
		utils.WriteError(w, http.StatusBadRequest, "invalid class ID")
		return
	}

	var body struct {
		Feedback string `json:"feedback"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		utils.WriteError(w, http.StatusBadRequest, "invalid request payload")
		return
	}

	result, err := h.store.SetOfferingFeedback(r.Context(), id, body.Feedback)
	if err != nil {
		utils.WriteError(w, http.StatusInternalServerError, "failed to send feedback")
		return
	}
	utils.WriteJSON(w, http.StatusOK, result)
}

// ApproveClass sets the offering status; an empty body approves.
func (h *ClassHandler) ApproveClass(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(mux.Vars(r)["id"])
	if err != nil {
		utils.WriteError(w, http.StatusBadRequest, "invalid class ID")
		return
	}

	var body struct {
		Status models.ClassStatus `json:"status"`
	}
	// body is optional
	json.NewDecoder(r.Body).Decode(&body)
	if body.Status == "" {
		body.Status = models.StatusApproved
	}

	result, err := h.store.SetOfferingStatus(r.Context(), id, body.Status)
	if err != nil {
		utils.WriteError(w, http.StatusInternalServerError, "failed to update class status")
		return
	}
	utils.WriteJSON(w, http.StatusOK, result)
}

// DeleteOffering removes one of the calling instructor's own offerings.
func (h *ClassHandler) DeleteOffering(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(mux.Vars(r)["id"])
	if err != nil {
		utils.WriteError(w, http.StatusBadRequest, "invalid class ID")
		return
	}

	claims := middleware.ClaimsFromContext(r.Context())
	result, err := h.store.DeleteOffering(r.Context(), id, claims.Email)
	if err != nil {
		utils.WriteError(w, http.StatusInternalServerError, "failed to delete class")
		return
	}
	utils.WriteJSON(w, http.StatusOK, result)
}
