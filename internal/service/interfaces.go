package service

import (
	"context"

	"github.com/stayloop/hotel-backoffice/internal/domain"
)

type AuthServiceInterface interface {
	Register(ctx context.Context, in RegisterInput) (*domain.User, error)
	Verify(ctx context.Context, email, code string) error
	Login(ctx context.Context, email, password string) (*LoginResult, error)
}
