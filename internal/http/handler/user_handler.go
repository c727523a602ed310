package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/stayloop/hotel-backoffice/internal/domain"
	"github.com/stayloop/hotel-backoffice/internal/http/response"
	"github.com/stayloop/hotel-backoffice/internal/observability"
	"github.com/stayloop/hotel-backoffice/internal/repository"
	"github.com/stayloop/hotel-backoffice/internal/security"
)

// UserHandler is the admin-facing account management surface. Passwords are
// set at create time only; after that credentials and verification state are
// mutable solely through the auth flow.
type UserHandler struct {
	users repository.UserRepository
}

func NewUserHandler(users repository.UserRepository) *UserHandler {
	return &UserHandler{users: users}
}

func (h *UserHandler) Create(w http.ResponseWriter, r *http.Request) {
	var body struct {
		FirstName    string `json:"first_name"`
		LastName     string `json:"last_name"`
		Email        string `json:"email"`
		Password     string `json:"password"`
		ContactPhone string `json:"contact_phone"`
		Address      string `json:"address"`
		Role         string `json:"role"`
		IsVerified   bool   `json:"is_verified"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		response.Error(w, r, http.StatusBadRequest, "BAD_REQUEST", "invalid payload", nil)
		return
	}
	if body.Email == "" || body.Password == "" {
		response.Error(w, r, http.StatusBadRequest, "BAD_REQUEST", "email and password are required", nil)
		return
	}
	if _, err := h.users.FindByEmail(body.Email); err == nil {
		response.Error(w, r, http.StatusConflict, "CONFLICT", "email already in use", nil)
		return
	} else if !errors.Is(err, repository.ErrUserNotFound) {
		response.Error(w, r, http.StatusInternalServerError, "INTERNAL", "failed to create user", nil)
		return
	}

	hash, err := security.HashPassword(body.Password)
	if err != nil {
		response.Error(w, r, http.StatusInternalServerError, "INTERNAL", "failed to create user", nil)
		return
	}
	role := body.Role
	if role == "" {
		role = domain.RoleUser
	}
	user := &domain.User{
		FirstName:    body.FirstName,
		LastName:     body.LastName,
		Email:        body.Email,
		PasswordHash: hash,
		ContactPhone: body.ContactPhone,
		Address:      body.Address,
		Role:         role,
		IsVerified:   body.IsVerified,
	}
	if err := h.users.Create(user); err != nil {
		response.Error(w, r, http.StatusInternalServerError, "INTERNAL", "failed to create user", nil)
		return
	}
	observability.Audit(r, "users.create", "user_id", user.ID)
	response.JSON(w, r, http.StatusCreated, user)
}

func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	users, err := h.users.List()
	if err != nil {
		response.Error(w, r, http.StatusInternalServerError, "INTERNAL", "failed to list users", nil)
		return
	}
	response.JSON(w, r, http.StatusOK, users)
}

func (h *UserHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := parsePathID(chi.URLParam(r, "id"))
	if err != nil {
		response.Error(w, r, http.StatusBadRequest, "BAD_REQUEST", "invalid user id", nil)
		return
	}
	user, err := h.users.FindByID(id)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			response.Error(w, r, http.StatusNotFound, "NOT_FOUND", "user not found", nil)
			return
		}
		response.Error(w, r, http.StatusInternalServerError, "INTERNAL", "failed to load user", nil)
		return
	}
	response.JSON(w, r, http.StatusOK, user)
}

func (h *UserHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := parsePathID(chi.URLParam(r, "id"))
	if err != nil {
		response.Error(w, r, http.StatusBadRequest, "BAD_REQUEST", "invalid user id", nil)
		return
	}
	var body struct {
		FirstName    *string `json:"first_name"`
		LastName     *string `json:"last_name"`
		ContactPhone *string `json:"contact_phone"`
		Address      *string `json:"address"`
		Role         *string `json:"role"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		response.Error(w, r, http.StatusBadRequest, "BAD_REQUEST", "invalid payload", nil)
		return
	}

	fields := map[string]any{}
	if body.FirstName != nil {
		fields["first_name"] = *body.FirstName
	}
	if body.LastName != nil {
		fields["last_name"] = *body.LastName
	}
	if body.ContactPhone != nil {
		fields["contact_phone"] = *body.ContactPhone
	}
	if body.Address != nil {
		fields["address"] = *body.Address
	}
	if body.Role != nil {
		fields["role"] = *body.Role
	}
	if len(fields) == 0 {
		response.Error(w, r, http.StatusBadRequest, "BAD_REQUEST", "no fields to update", nil)
		return
	}

	if err := h.users.Update(id, fields); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			response.Error(w, r, http.StatusNotFound, "NOT_FOUND", "user not found", nil)
			return
		}
		response.Error(w, r, http.StatusInternalServerError, "INTERNAL", "failed to update user", nil)
		return
	}
	user, err := h.users.FindByID(id)
	if err != nil {
		response.Error(w, r, http.StatusInternalServerError, "INTERNAL", "failed to load user", nil)
		return
	}
	observability.Audit(r, "users.update", "user_id", id)
	response.JSON(w, r, http.StatusOK, user)
}

func (h *UserHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := parsePathID(chi.URLParam(r, "id"))
	if err != nil {
		response.Error(w, r, http.StatusBadRequest, "BAD_REQUEST", "invalid user id", nil)
		return
	}
	if err := h.users.DeleteByID(id); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			response.Error(w, r, http.StatusNotFound, "NOT_FOUND", "user not found", nil)
			return
		}
		response.Error(w, r, http.StatusInternalServerError, "INTERNAL", "failed to delete user", nil)
		return
	}
	observability.Audit(r, "users.delete", "user_id", id)
	w.WriteHeader(http.StatusNoContent)
}
