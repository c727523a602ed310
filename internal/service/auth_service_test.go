package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"
	"testing"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/stayloop/hotel-backoffice/internal/domain"
	"github.com/stayloop/hotel-backoffice/internal/repository"
	"github.com/stayloop/hotel-backoffice/internal/security"
)

type captureNotifier struct {
	sent []capturedMail
	fail bool
}

type capturedMail struct {
	to      string
	subject string
	text    string
}

func (n *captureNotifier) Send(_ context.Context, to, subject, text, _ string) error {
	if n.fail {
		return errors.New("smtp unreachable")
	}
	n.sent = append(n.sent, capturedMail{to: to, subject: subject, text: text})
	return nil
}

func newAuthServiceForTest(t *testing.T) (*AuthService, repository.UserRepository, *captureNotifier) {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&domain.User{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	jwtMgr, err := security.NewJWTManager("0123456789abcdef0123456789abcdef", 24*time.Hour)
	if err != nil {
		t.Fatalf("new jwt manager: %v", err)
	}
	notifier := &captureNotifier{}
	repo := repository.NewUserRepository(db)
	svc := NewAuthService(repo, jwtMgr, notifier, slog.New(slog.NewTextHandler(io.Discard, nil)))
	return svc, repo, notifier
}

func TestRegisterCreatesUnverifiedAccountWithCode(t *testing.T) {
	svc, repo, notifier := newAuthServiceForTest(t)
	ctx := context.Background()

	user, err := svc.Register(ctx, RegisterInput{
		FirstName: "Ana",
		LastName:  "Silva",
		Email:     "ana@example.com",
		Password:  "pass1234",
	})
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if user.ID == 0 {
		t.Fatal("expected persisted user id")
	}
	if user.IsVerified {
		t.Fatal("new accounts must start unverified")
	}
	if user.Role != domain.RoleUser {
		t.Fatalf("expected default role %q, got %q", domain.RoleUser, user.Role)
	}
	if user.PasswordHash == "pass1234" {
		t.Fatal("password must be hashed")
	}

	if user.VerificationCode == nil {
		t.Fatal("expected a verification code")
	}
	code, err := strconv.Atoi(*user.VerificationCode)
	if err != nil {
		t.Fatalf("code is not numeric: %q", *user.VerificationCode)
	}
	if code < 3800 || code >= 3800+8888 {
		t.Fatalf("code %d outside expected range", code)
	}

	if len(notifier.sent) != 1 {
		t.Fatalf("expected one verification mail, got %d", len(notifier.sent))
	}
	if notifier.sent[0].to != "ana@example.com" || !strings.Contains(notifier.sent[0].text, *user.VerificationCode) {
		t.Fatalf("unexpected mail: %+v", notifier.sent[0])
	}

	stored, err := repo.FindByEmail("ana@example.com")
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if stored.VerificationCode == nil || *stored.VerificationCode != *user.VerificationCode {
		t.Fatal("stored code mismatch")
	}
}

func TestRegisterRejectsDuplicateEmailBeforeWriting(t *testing.T) {
	svc, repo, _ := newAuthServiceForTest(t)
	ctx := context.Background()

	if _, err := svc.Register(ctx, RegisterInput{FirstName: "A", LastName: "B", Email: "dup@example.com", Password: "x"}); err != nil {
		t.Fatalf("first register: %v", err)
	}
	if _, err := svc.Register(ctx, RegisterInput{FirstName: "C", LastName: "D", Email: "dup@example.com", Password: "y"}); !errors.Is(err, ErrEmailAlreadyRegistered) {
		t.Fatalf("expected ErrEmailAlreadyRegistered, got %v", err)
	}

	users, err := repo.List()
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(users) != 1 {
		t.Fatalf("duplicate attempt must not write, have %d users", len(users))
	}
}

type failingCreateRepo struct {
	repository.UserRepository
	createErr error
}

func (r failingCreateRepo) Create(*domain.User) error { return r.createErr }

func TestRegisterSurfacesStorageErrors(t *testing.T) {
	_, repo, _ := newAuthServiceForTest(t)
	jwtMgr, err := security.NewJWTManager("0123456789abcdef0123456789abcdef", 24*time.Hour)
	if err != nil {
		t.Fatalf("new jwt manager: %v", err)
	}
	storageErr := errors.New("value too long for column")
	svc := NewAuthService(
		failingCreateRepo{UserRepository: repo, createErr: storageErr},
		jwtMgr,
		&captureNotifier{},
		slog.New(slog.NewTextHandler(io.Discard, nil)),
	)

	_, err = svc.Register(context.Background(), RegisterInput{FirstName: "A", LastName: "B", Email: "a@example.com", Password: "x"})
	if err == nil {
		t.Fatal("expected error")
	}
	// A driver failure is not the client's fault and must not map to the
	// bad-request sentinel.
	if errors.Is(err, ErrUserNotCreated) {
		t.Fatalf("storage error must not be ErrUserNotCreated, got %v", err)
	}
	if !errors.Is(err, storageErr) {
		t.Fatalf("expected wrapped storage error, got %v", err)
	}
}

func TestRegisterSucceedsWhenMailFails(t *testing.T) {
	svc, _, notifier := newAuthServiceForTest(t)
	notifier.fail = true

	user, err := svc.Register(context.Background(), RegisterInput{FirstName: "A", LastName: "B", Email: "a@example.com", Password: "x"})
	if err != nil {
		t.Fatalf("register should tolerate mail failure, got %v", err)
	}
	if user.ID == 0 {
		t.Fatal("expected persisted user despite mail failure")
	}
}

func TestVerifyTransitions(t *testing.T) {
	svc, repo, _ := newAuthServiceForTest(t)
	ctx := context.Background()

	user, err := svc.Register(ctx, RegisterInput{FirstName: "A", LastName: "B", Email: "v@example.com", Password: "x"})
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	code := *user.VerificationCode

	if err := svc.Verify(ctx, "", code); !errors.Is(err, ErrMissingVerificationInput) {
		t.Fatalf("expected ErrMissingVerificationInput, got %v", err)
	}
	if err := svc.Verify(ctx, "missing@example.com", code); !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
	if err := svc.Verify(ctx, "v@example.com", "0000"); !errors.Is(err, ErrInvalidVerificationCode) {
		t.Fatalf("expected ErrInvalidVerificationCode, got %v", err)
	}

	if err := svc.Verify(ctx, "v@example.com", code); err != nil {
		t.Fatalf("verify: %v", err)
	}
	stored, err := repo.FindByEmail("v@example.com")
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if !stored.IsVerified || stored.VerificationCode != nil {
		t.Fatalf("expected verified with cleared code, got %+v", stored)
	}

	// The code is single-use.
	if err := svc.Verify(ctx, "v@example.com", code); !errors.Is(err, ErrInvalidVerificationCode) {
		t.Fatalf("expected reuse to fail, got %v", err)
	}
}

func TestLoginMatrix(t *testing.T) {
	svc, _, _ := newAuthServiceForTest(t)
	ctx := context.Background()

	user, err := svc.Register(ctx, RegisterInput{FirstName: "Ana", LastName: "Silva", Email: "login@example.com", Password: "pass1234", Role: domain.RoleAdmin})
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	if _, err := svc.Login(ctx, "", "pass1234"); !errors.Is(err, ErrMissingCredentials) {
		t.Fatalf("expected ErrMissingCredentials, got %v", err)
	}
	if _, err := svc.Login(ctx, "missing@example.com", "pass1234"); !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
	if _, err := svc.Login(ctx, "login@example.com", "pass1234"); !errors.Is(err, ErrAccountNotVerified) {
		t.Fatalf("expected ErrAccountNotVerified, got %v", err)
	}

	if err := svc.Verify(ctx, "login@example.com", *user.VerificationCode); err != nil {
		t.Fatalf("verify: %v", err)
	}

	if _, err := svc.Login(ctx, "login@example.com", "wrong"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}

	result, err := svc.Login(ctx, "login@example.com", "pass1234")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if result.Token == "" {
		t.Fatal("expected a token")
	}
	if result.User == nil || result.User.Email != "login@example.com" {
		t.Fatalf("unexpected login user: %+v", result.User)
	}

	jwtMgr, _ := security.NewJWTManager("0123456789abcdef0123456789abcdef", 24*time.Hour)
	claims, err := jwtMgr.Parse(result.Token)
	if err != nil {
		t.Fatalf("parse issued token: %v", err)
	}
	if claims.UserID != user.ID || claims.FirstName != "Ana" || claims.LastName != "Silva" || claims.Role != domain.RoleAdmin {
		t.Fatalf("unexpected claims: %+v", claims)
	}
}

func TestRegisterVerifyLoginLifecycle(t *testing.T) {
	svc, _, notifier := newAuthServiceForTest(t)
	ctx := context.Background()

	user, err := svc.Register(ctx, RegisterInput{
		FirstName:    "Leo",
		LastName:     "Mbeki",
		Email:        "leo@example.com",
		Password:     "hunter22",
		ContactPhone: "+27 21 555 0100",
		Address:      "12 Long St",
	})
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if err := svc.Verify(ctx, "leo@example.com", *user.VerificationCode); err != nil {
		t.Fatalf("verify: %v", err)
	}
	result, err := svc.Login(ctx, "leo@example.com", "hunter22")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if result.User.ContactPhone != "+27 21 555 0100" {
		t.Fatalf("unexpected contact phone: %q", result.User.ContactPhone)
	}

	// Registration and the verified confirmation each mail the account.
	if len(notifier.sent) != 2 {
		t.Fatalf("expected 2 mails, got %d", len(notifier.sent))
	}
}
