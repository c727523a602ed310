package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/stayloop/hotel-backoffice/internal/domain"
	"github.com/stayloop/hotel-backoffice/internal/http/response"
	"github.com/stayloop/hotel-backoffice/internal/observability"
	"github.com/stayloop/hotel-backoffice/internal/service"
)

type AuthHandler struct {
	authSvc service.AuthServiceInterface
}

func NewAuthHandler(authSvc service.AuthServiceInterface) *AuthHandler {
	return &AuthHandler{authSvc: authSvc}
}

type userView struct {
	UserID    uint   `json:"user_id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Role      string `json:"role"`
}

func newUserView(u *domain.User) userView {
	return userView{
		UserID:    u.ID,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Email:     u.Email,
		Role:      u.Role,
	}
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var body struct {
		FirstName    string `json:"first_name"`
		LastName     string `json:"last_name"`
		Email        string `json:"email"`
		Password     string `json:"password"`
		ContactPhone string `json:"contact_phone"`
		Address      string `json:"address"`
		Role         string `json:"role"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		response.Error(w, r, http.StatusBadRequest, "BAD_REQUEST", "invalid payload", nil)
		return
	}
	if strings.TrimSpace(body.Email) == "" || body.Password == "" {
		response.Error(w, r, http.StatusBadRequest, "BAD_REQUEST", "email and password are required", nil)
		return
	}

	user, err := h.authSvc.Register(r.Context(), service.RegisterInput{
		FirstName:    body.FirstName,
		LastName:     body.LastName,
		Email:        body.Email,
		Password:     body.Password,
		ContactPhone: body.ContactPhone,
		Address:      body.Address,
		Role:         body.Role,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEmailAlreadyRegistered):
			observability.Audit(r, "auth.register.conflict", "email", body.Email)
			response.Error(w, r, http.StatusConflict, "CONFLICT", "email already in use", nil)
		case errors.Is(err, service.ErrUserNotCreated):
			observability.Audit(r, "auth.register.failed", "reason", "not_created")
			response.Error(w, r, http.StatusBadRequest, "BAD_REQUEST", "user not created", nil)
		default:
			response.Error(w, r, http.StatusInternalServerError, "INTERNAL", err.Error(), nil)
		}
		return
	}

	observability.Audit(r, "auth.register.success", "user_id", user.ID)
	// The confirmation deliberately omits the code and the new account id.
	response.JSON(w, r, http.StatusCreated, map[string]string{
		"message": "User created. Verification code sent to email.",
	})
}

func (h *AuthHandler) Verify(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Email string `json:"email"`
		Code  string `json:"code"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		response.Error(w, r, http.StatusBadRequest, "BAD_REQUEST", "invalid payload", nil)
		return
	}

	if err := h.authSvc.Verify(r.Context(), body.Email, body.Code); err != nil {
		switch {
		case errors.Is(err, service.ErrMissingVerificationInput):
			response.Error(w, r, http.StatusBadRequest, "BAD_REQUEST", "email and code are required", nil)
		case errors.Is(err, service.ErrUserNotFound):
			response.Error(w, r, http.StatusNotFound, "NOT_FOUND", "user not found", nil)
		case errors.Is(err, service.ErrInvalidVerificationCode):
			observability.Audit(r, "auth.verify.failed", "email", body.Email, "reason", "code_mismatch")
			response.Error(w, r, http.StatusBadRequest, "BAD_REQUEST", "invalid verification code", nil)
		default:
			response.Error(w, r, http.StatusInternalServerError, "INTERNAL", err.Error(), nil)
		}
		return
	}

	observability.Audit(r, "auth.verify.success", "email", body.Email)
	response.JSON(w, r, http.StatusOK, map[string]string{"message": "User verified successfully"})
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		response.Error(w, r, http.StatusBadRequest, "BAD_REQUEST", "invalid payload", nil)
		return
	}

	result, err := h.authSvc.Login(r.Context(), body.Email, body.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrMissingCredentials):
			response.Error(w, r, http.StatusBadRequest, "BAD_REQUEST", "email and password are required", nil)
		case errors.Is(err, service.ErrUserNotFound):
			response.Error(w, r, http.StatusNotFound, "NOT_FOUND", "user not found", nil)
		case errors.Is(err, service.ErrAccountNotVerified):
			observability.Audit(r, "auth.login.rejected", "email", body.Email, "reason", "unverified")
			response.Error(w, r, http.StatusForbidden, "FORBIDDEN", "account not verified", nil)
		case errors.Is(err, service.ErrInvalidCredentials):
			observability.Audit(r, "auth.login.rejected", "email", body.Email, "reason", "bad_password")
			response.Error(w, r, http.StatusUnauthorized, "UNAUTHORIZED", "invalid credentials", nil)
		default:
			response.Error(w, r, http.StatusInternalServerError, "INTERNAL", err.Error(), nil)
		}
		return
	}

	observability.Audit(r, "auth.login.success", "user_id", result.User.ID)
	response.JSON(w, r, http.StatusOK, map[string]any{
		"message": "Login successful",
		"token":   result.Token,
		"user":    newUserView(result.User),
	})
}
