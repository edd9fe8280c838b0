package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/sports-academy/backend/internal/middleware"
	"github.com/sports-academy/backend/internal/models"
	"github.com/sports-academy/backend/internal/store"
	"github.com/sports-academy/backend/internal/utils"
)

type EnrollmentHandler struct {
	store  store.Store
	mailer *utils.Mailer
}

func NewEnrollmentHandler(s store.Store, mailer *utils.Mailer) *EnrollmentHandler {
	return &EnrollmentHandler{store: s, mailer: mailer}
}

// Enroll runs the enrollment sequence: write the payment snapshot, remove the
// originating cart row, adjust the class counters. The response is the insert
// result, as it always has been.
func (h *EnrollmentHandler) Enroll(w http.ResponseWriter, r *http.Request) {
	var payment models.Enrollment
	if err := json.NewDecoder(r.Body).Decode(&payment); err != nil {
		utils.WriteError(w, http.StatusBadRequest, "invalid request payload")
		return
	}

	cartID, err := primitive.ObjectIDFromHex(payment.SelectedClassID)
	if err != nil {
		utils.WriteError(w, http.StatusBadRequest, "invalid selected class ID")
		return
	}

	if payment.Date.IsZero() {
		payment.Date = time.Now()
	}

	result, err := h.store.Enroll(r.Context(), payment, cartID)
	if err != nil {
		utils.WriteError(w, http.StatusInternalServerError, "failed to enroll")
		return
	}

	if h.mailer.Enabled() && payment.Email != "" {
		body := fmt.Sprintf(
			"<p>Hi,</p><p>Your enrollment in <b>%s</b> is confirmed. See you in class!</p>",
			payment.ClassName,
		)
		go h.mailer.Send(payment.Email, "Enrollment Confirmation", body)
	}

	utils.WriteJSON(w, http.StatusOK, result)
}

// EnrolledClasses lists the caller's enrollments, newest first. The email
// query parameter must match the token identity.
func (h *EnrollmentHandler) EnrolledClasses(w http.ResponseWriter, r *http.Request) {
	email := r.URL.Query().Get("email")
	if email == "" {
		utils.WriteJSON(w, http.StatusOK, []models.Enrollment{})
		return
	}

	claims := middleware.ClaimsFromContext(r.Context())
	if claims == nil || claims.Email != email {
		utils.WriteError(w, http.StatusForbidden, "forbidden access")
		return
	}

	enrollments, err := h.store.ListEnrollments(r.Context(), email)
	if err != nil {
		utils.WriteError(w, http.StatusInternalServerError, "failed to fetch enrollments")
		return
	}
	utils.WriteJSON(w, http.StatusOK, enrollments)
}
