package userservice

import (
	"context"
	"distro/internal/models"
)

type UserRepository interface {
	ListUsersWithRoles(ctx context.Context) ([]*models.UserWithRole, error)
	CreateUser(ctx context.Context, user models.User) error
	UpdateUser(ctx context.Context, id int, user models.User) error
	DeleteUser(ctx context.Context, id int) error
}

// UsersCache hands out a generation with every lookup; a list is only
// stored under the generation read before the store was queried.
type UsersCache interface {
	UsersList(ctx context.Context) ([]*models.UserWithRole, int64, bool, error)
	SetUsersList(ctx context.Context, gen int64, users []*models.UserWithRole) error
	InvalidateUsersList(ctx context.Context) error
}
