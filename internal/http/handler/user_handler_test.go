package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stayloop/hotel-backoffice/internal/domain"
	"github.com/stayloop/hotel-backoffice/internal/repository"
	"github.com/stayloop/hotel-backoffice/internal/security"
)

type stubUserRepo struct {
	createFn      func(*domain.User) error
	findByIDFn    func(uint) (*domain.User, error)
	findByEmailFn func(string) (*domain.User, error)
	listFn        func() ([]domain.User, error)
	updateFn      func(uint, map[string]any) error
	deleteFn      func(uint) error
}

func (s *stubUserRepo) Create(u *domain.User) error {
	if s.createFn != nil {
		return s.createFn(u)
	}
	u.ID = 1
	return nil
}

func (s *stubUserRepo) FindByID(id uint) (*domain.User, error) {
	if s.findByIDFn != nil {
		return s.findByIDFn(id)
	}
	return nil, repository.ErrUserNotFound
}

func (s *stubUserRepo) FindByEmail(email string) (*domain.User, error) {
	if s.findByEmailFn != nil {
		return s.findByEmailFn(email)
	}
	return nil, repository.ErrUserNotFound
}

func (s *stubUserRepo) List() ([]domain.User, error) {
	if s.listFn != nil {
		return s.listFn()
	}
	return nil, nil
}

func (s *stubUserRepo) Update(id uint, fields map[string]any) error {
	if s.updateFn != nil {
		return s.updateFn(id, fields)
	}
	return repository.ErrUserNotFound
}

func (s *stubUserRepo) MarkVerified(string) error { return nil }

func (s *stubUserRepo) DeleteByID(id uint) error {
	if s.deleteFn != nil {
		return s.deleteFn(id)
	}
	return repository.ErrUserNotFound
}

func TestUserCreateHandlerHashesPasswordAndReturns201(t *testing.T) {
	var created *domain.User
	h := NewUserHandler(&stubUserRepo{
		createFn: func(u *domain.User) error {
			u.ID = 12
			created = u
			return nil
		},
	})

	body := `{"first_name":"Ana","last_name":"Silva","email":"ana@example.com","password":"pass1234","role":"admin","is_verified":true}`
	req := httptest.NewRequest(http.MethodPost, "/api/users", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.Create(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	if created == nil {
		t.Fatal("expected repository create to be called")
	}
	if created.PasswordHash == "pass1234" {
		t.Fatal("password must be hashed before storage")
	}
	if ok, err := security.VerifyPassword(created.PasswordHash, "pass1234"); err != nil || !ok {
		t.Fatalf("stored hash does not verify: ok=%v err=%v", ok, err)
	}
	if created.Role != domain.RoleAdmin || !created.IsVerified {
		t.Fatalf("unexpected created user: %+v", created)
	}

	if strings.Contains(rec.Body.String(), created.PasswordHash) {
		t.Fatal("response leaked the password hash")
	}
	var env testEnvelope
	if err := json.NewDecoder(rec.Body).Decode(&env); err != nil {
		t.Fatalf("decode envelope: %v", err)
	}
	var data struct {
		UserID uint   `json:"user_id"`
		Email  string `json:"email"`
	}
	if err := json.Unmarshal(env.Data, &data); err != nil {
		t.Fatalf("decode data: %v", err)
	}
	if data.UserID != 12 || data.Email != "ana@example.com" {
		t.Fatalf("unexpected response row: %+v", data)
	}
}

func TestUserCreateHandlerDefaultsRole(t *testing.T) {
	var created *domain.User
	h := NewUserHandler(&stubUserRepo{
		createFn: func(u *domain.User) error {
			u.ID = 3
			created = u
			return nil
		},
	})

	req := httptest.NewRequest(http.MethodPost, "/api/users", strings.NewReader(`{"email":"b@example.com","password":"x"}`))
	rec := httptest.NewRecorder()
	h.Create(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
	if created.Role != domain.RoleUser {
		t.Fatalf("expected default role %q, got %q", domain.RoleUser, created.Role)
	}
	if created.IsVerified {
		t.Fatal("verified flag must default to false")
	}
}

func TestUserCreateHandlerRejectsMissingFieldsAndDuplicates(t *testing.T) {
	h := NewUserHandler(&stubUserRepo{})
	req := httptest.NewRequest(http.MethodPost, "/api/users", strings.NewReader(`{"email":"a@example.com"}`))
	rec := httptest.NewRecorder()
	h.Create(rec, req)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("missing password: expected 400, got %d", rec.Code)
	}

	h = NewUserHandler(&stubUserRepo{
		findByEmailFn: func(email string) (*domain.User, error) {
			return &domain.User{ID: 1, Email: email}, nil
		},
	})
	req = httptest.NewRequest(http.MethodPost, "/api/users", strings.NewReader(`{"email":"dup@example.com","password":"x"}`))
	rec = httptest.NewRecorder()
	h.Create(rec, req)
	if rec.Code != http.StatusConflict {
		t.Fatalf("duplicate email: expected 409, got %d", rec.Code)
	}
	var env testEnvelope
	if err := json.NewDecoder(rec.Body).Decode(&env); err != nil {
		t.Fatalf("decode envelope: %v", err)
	}
	if env.Error == nil || env.Error.Code != "CONFLICT" {
		t.Fatalf("unexpected envelope: %s", rec.Body.String())
	}
}
