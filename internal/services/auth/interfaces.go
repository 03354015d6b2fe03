package authservice

import (
	"context"
	"distro/internal/models"
)

type UserProvider interface {
	UserByCredentials(ctx context.Context, email string, password string) (*models.UserWithRole, error)
	UserByEmail(ctx context.Context, email string) (*models.UserWithRole, error)
}

type PasswordSetter interface {
	SetPassword(ctx context.Context, email string, password string) error
}

type CacheInvalidator interface {
	InvalidateUsersList(ctx context.Context) error
}
