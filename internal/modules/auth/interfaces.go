package auth

import (
	"context"

	"loonbedrijf/internal/domain"
)

// UserRepositoryInterface covers only the methods the auth service uses.
type UserRepositoryInterface interface {
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetByID(ctx context.Context, id string) (*domain.User, error)
}
