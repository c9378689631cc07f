package repository

import (
	"context"

	"beaticafe/internal/domain/model"
)

// UserRepository stores mock-auth users.
type UserRepository interface {
	Create(ctx context.Context, user *model.User) error
	// FindByID and FindByEmail return ErrNotFound when nobody matches.
	FindByID(ctx context.Context, userID string) (*model.User, error)
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	// Update saves last login and name changes.
	Update(ctx context.Context, user *model.User) error
	// IncrementTokenVersion invalidates every token issued so far.
	IncrementTokenVersion(ctx context.Context, userID string) error
}
