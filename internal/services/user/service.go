package userservice

import (
	"context"
	"distro/internal/metrics"
	"distro/internal/models"
	"fmt"
	"log/slog"
	"time"
)

const pkg = "userService/"

type UserService struct {
	log       *slog.Logger
	repo      UserRepository
	cache     UsersCache
	opTimeout time.Duration
}

func New(
	log *slog.Logger,
	repo UserRepository,
	cache UsersCache,
	opTimeout time.Duration,
) *UserService {
	return &UserService{
		log:       log,
		repo:      repo,
		cache:     cache,
		opTimeout: opTimeout,
	}
}

func (u *UserService) ListUsers(ctx context.Context) ([]*models.UserWithRole, error) {
	op := pkg + "ListUsers"

	log := u.log.With(slog.String("op", op))

	log.Debug("attempting to list users")

	ctx, cancel := context.WithTimeout(ctx, u.opTimeout)
	defer cancel()

	users, gen, ok, err := u.cache.UsersList(ctx)
	cacheable := err == nil
	if err != nil {
		log.Warn("failed to get users from cache", slog.String("error", err.Error()))
	}
	if ok {
		metrics.UsersCacheTotal.WithLabelValues("hit").Inc()
		log.Debug("users listed from cache", slog.Int("count", len(users)))
		return users, nil
	}
	metrics.UsersCacheTotal.WithLabelValues("miss").Inc()

	users, err = u.repo.ListUsersWithRoles(ctx)
	if err != nil {
		log.Error("failed to list users", slog.String("error", err.Error()))
		return nil, fmt.Errorf("%s: %w", op, models.ErrInternal)
	}

	if cacheable {
		if err := u.cache.SetUsersList(ctx, gen, users); err != nil {
			log.Warn("failed to set users in cache", slog.String("error", err.Error()))
		}
	}

	log.Debug("users listed successfully", slog.Int("count", len(users)))

	return users, nil
}

func (u *UserService) CreateUser(ctx context.Context, user models.User) error {
	op := pkg + "CreateUser"

	log := u.log.With(slog.String("op", op))

	log.Debug("attempting to create user")

	ctx, cancel := context.WithTimeout(ctx, u.opTimeout)
	defer cancel()

	if err := u.repo.CreateUser(ctx, user); err != nil {
		log.Error("failed to create user", slog.String("error", err.Error()))
		return fmt.Errorf("%s: %w", op, models.ErrInternal)
	}

	u.invalidate(ctx, log)

	log.Debug("user created successfully")

	return nil
}

func (u *UserService) UpdateUser(ctx context.Context, id int, user models.User) error {
	op := pkg + "UpdateUser"

	log := u.log.With(slog.String("op", op), slog.Int("user_id", id))

	log.Debug("attempting to update user")

	ctx, cancel := context.WithTimeout(ctx, u.opTimeout)
	defer cancel()

	if err := u.repo.UpdateUser(ctx, id, user); err != nil {
		log.Error("failed to update user", slog.String("error", err.Error()))
		return fmt.Errorf("%s: %w", op, models.ErrInternal)
	}

	u.invalidate(ctx, log)

	log.Debug("user updated successfully")

	return nil
}

func (u *UserService) DeleteUser(ctx context.Context, id int) error {
	op := pkg + "DeleteUser"

	log := u.log.With(slog.String("op", op), slog.Int("user_id", id))

	log.Debug("attempting to delete user")

	ctx, cancel := context.WithTimeout(ctx, u.opTimeout)
	defer cancel()

	if err := u.repo.DeleteUser(ctx, id); err != nil {
		log.Error("failed to delete user", slog.String("error", err.Error()))
		return fmt.Errorf("%s: %w", op, models.ErrInternal)
	}

	u.invalidate(ctx, log)

	log.Debug("user deleted successfully")

	return nil
}

func (u *UserService) invalidate(ctx context.Context, log *slog.Logger) {
	if err := u.cache.InvalidateUsersList(ctx); err != nil {
		log.Error("failed to invalidate users cache", slog.String("error", err.Error()))
	}
}
