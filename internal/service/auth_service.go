package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand"
	"strconv"

	"github.com/stayloop/hotel-backoffice/internal/domain"
	"github.com/stayloop/hotel-backoffice/internal/repository"
	"github.com/stayloop/hotel-backoffice/internal/security"
)

var (
	ErrEmailAlreadyRegistered   = errors.New("email already in use")
	ErrUserNotCreated           = errors.New("user not created")
	ErrUserNotFound             = errors.New("user not found")
	ErrInvalidVerificationCode  = errors.New("invalid verification code")
	ErrAccountNotVerified       = errors.New("account not verified")
	ErrInvalidCredentials       = errors.New("invalid credentials")
	ErrMissingVerificationInput = errors.New("email and code are required")
	ErrMissingCredentials       = errors.New("email and password are required")
)

const (
	verificationCodeOffset = 3800
	verificationCodeSpan   = 8888
)

type AuthService struct {
	userRepo repository.UserRepository
	jwtMgr   *security.JWTManager
	notifier Notifier
	logger   *slog.Logger
}

type RegisterInput struct {
	FirstName    string
	LastName     string
	Email        string
	Password     string
	ContactPhone string
	Address      string
	Role         string
}

type LoginResult struct {
	Token string       `json:"token"`
	User  *domain.User `json:"user"`
}

func NewAuthService(userRepo repository.UserRepository, jwtMgr *security.JWTManager, notifier Notifier, logger *slog.Logger) *AuthService {
	return &AuthService{userRepo: userRepo, jwtMgr: jwtMgr, notifier: notifier, logger: logger}
}

// Register creates an unverified account and mails it a verification code.
// The duplicate-email check runs before any write.
func (s *AuthService) Register(ctx context.Context, in RegisterInput) (*domain.User, error) {
	if _, err := s.userRepo.FindByEmail(in.Email); err == nil {
		return nil, ErrEmailAlreadyRegistered
	} else if !errors.Is(err, repository.ErrUserNotFound) {
		return nil, err
	}

	hash, err := security.HashPassword(in.Password)
	if err != nil {
		return nil, err
	}

	code := newVerificationCode()
	role := in.Role
	if role == "" {
		role = domain.RoleUser
	}

	user := &domain.User{
		FirstName:        in.FirstName,
		LastName:         in.LastName,
		Email:            in.Email,
		PasswordHash:     hash,
		ContactPhone:     in.ContactPhone,
		Address:          in.Address,
		Role:             role,
		IsVerified:       false,
		VerificationCode: &code,
	}
	if err := s.userRepo.Create(user); err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}
	if user.ID == 0 {
		return nil, ErrUserNotCreated
	}

	s.sendBestEffort(ctx, user.Email,
		"Verify your account",
		fmt.Sprintf("Hi %s, your code is: %s", user.LastName, code),
		fmt.Sprintf("<div><h2>Hello %s,</h2><p>Your code is: <strong>%s</strong></p></div>", user.LastName, code),
	)
	return user, nil
}

// Verify transitions an account from unverified to verified when the supplied
// code matches exactly. Every failure branch returns immediately.
func (s *AuthService) Verify(ctx context.Context, email, code string) error {
	if email == "" || code == "" {
		return ErrMissingVerificationInput
	}
	user, err := s.userRepo.FindByEmail(email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return ErrUserNotFound
		}
		return err
	}
	if user.VerificationCode == nil || *user.VerificationCode != code {
		return ErrInvalidVerificationCode
	}
	if err := s.userRepo.MarkVerified(email); err != nil {
		return err
	}

	s.sendBestEffort(ctx, email,
		"Account Verified",
		fmt.Sprintf("Hi %s, your account is now verified.", user.LastName),
		"<p>You're now verified. You may log in.</p>",
	)
	return nil
}

// Login authenticates a verified account and issues the 24h token.
func (s *AuthService) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	if email == "" || password == "" {
		return nil, ErrMissingCredentials
	}
	user, err := s.userRepo.FindByEmail(email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	if !user.IsVerified {
		return nil, ErrAccountNotVerified
	}
	ok, err := security.VerifyPassword(user.PasswordHash, password)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrInvalidCredentials
	}

	token, err := s.jwtMgr.Sign(user.ID, user.FirstName, user.LastName, user.Role)
	if err != nil {
		return nil, err
	}
	return &LoginResult{Token: token, User: user}, nil
}

func (s *AuthService) sendBestEffort(ctx context.Context, to, subject, text, html string) {
	if err := s.notifier.Send(ctx, to, subject, text, html); err != nil {
		s.logger.WarnContext(ctx, "notification email failed", "to", to, "subject", subject, "error", err)
	}
}

// newVerificationCode draws from [3800, 12688), the range the production data
// was generated with. Not cryptographically secure; the short verification
// window and rate-limited auth routes bound guessing.
func newVerificationCode() string {
	return strconv.Itoa(verificationCodeOffset + rand.Intn(verificationCodeSpan))
}
