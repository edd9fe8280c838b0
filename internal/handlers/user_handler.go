package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/sports-academy/backend/internal/models"
	"github.com/sports-academy/backend/internal/store"
	"github.com/sports-academy/backend/internal/utils"
)

type UserHandler struct {
	store    store.Store
	validate *validator.Validate
}

func NewUserHandler(s store.Store) *UserHandler {
	return &UserHandler{store: s, validate: validator.New()}
}

func (h *UserHandler) FindUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.store.FindUsers(r.Context())
	if err != nil {
		utils.WriteError(w, http.StatusInternalServerError, "failed to fetch users")
		return
	}
	utils.WriteJSON(w, http.StatusOK, users)
}

// UserRole returns the stored role for an email; absent users and users
// without a role both come back as "".
func (h *UserHandler) UserRole(w http.ResponseWriter, r *http.Request) {
	email := mux.Vars(r)["email"]

	user, err := h.store.FindUserByEmail(r.Context(), email)
	if err != nil {
		utils.WriteError(w, http.StatusInternalServerError, "failed to fetch user")
		return
	}

	var role models.Role
	if user != nil {
		role = user.Role
	}
	utils.WriteJSON(w, http.StatusOK, map[string]models.Role{"role": role})
}

// AddUser inserts the user unless one with the same email already exists.
func (h *UserHandler) AddUser(w http.ResponseWriter, r *http.Request) {
	var user models.User
	if err := json.NewDecoder(r.Body).Decode(&user); err != nil {
		utils.WriteError(w, http.StatusBadRequest, "invalid request payload")
		return
	}

	if err := h.validate.Struct(user); err != nil {
		utils.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	existing, err := h.store.FindUserByEmail(r.Context(), user.Email)
	if err != nil {
		utils.WriteError(w, http.StatusInternalServerError, "failed to check user")
		return
	}
	if existing != nil {
		utils.WriteJSON(w, http.StatusOK, map[string]string{"message": "user already exist"})
		return
	}

	result, err := h.store.InsertUser(r.Context(), user)
	if err != nil {
		utils.WriteError(w, http.StatusInternalServerError, "failed to create user")
		return
	}
	utils.WriteJSON(w, http.StatusOK, result)
}

func (h *UserHandler) MakeAdmin(w http.ResponseWriter, r *http.Request) {
	h.promote(w, r, models.RoleAdmin)
}

func (h *UserHandler) MakeInstructor(w http.ResponseWriter, r *http.Request) {
	h.promote(w, r, models.RoleInstructor)
}

func (h *UserHandler) promote(w http.ResponseWriter, r *http.Request, role models.Role) {
	id, err := primitive.ObjectIDFromHex(mux.Vars(r)["id"])
	if err != nil {
		utils.WriteError(w, http.StatusBadRequest, "invalid user ID")
		return
	}

	result, err := h.store.SetUserRole(r.Context(), id, role)
	if err != nil {
		utils.WriteError(w, http.StatusInternalServerError, "failed to update user role")
		return
	}
	utils.WriteJSON(w, http.StatusOK, result)
}
