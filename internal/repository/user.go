package repository

import (
	"context"

	"github.com/ErlanBelekov/wanderstore/internal/domain"
)

type UserRepository interface {
	// Create returns domain.ErrEmailTaken when the email is already registered.
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id int64) (*domain.User, error)
}
