package cacheusersrepo

import (
	"context"
	"distro/internal/models"
	cacherepo "distro/internal/repositories/cache"
	"encoding/json"
	"fmt"
	"strconv"
	"time"
)

const pkg = "cacheUsersRepo/"

const (
	genKey        = "usuarios:gen"
	listKeyPrefix = "usuarios:all:"
)

// repository caches the user list under a key versioned by a generation
// counter. Invalidation bumps the counter, so a list read before a write
// can only be stored under a generation nobody reads any more.
type repository struct {
	cache    cacherepo.Cache
	usersTTL time.Duration
}

func New(cache cacherepo.Cache, usersTTL time.Duration) *repository {
	return &repository{
		cache:    cache,
		usersTTL: usersTTL,
	}
}

func listKey(gen int64) string {
	return listKeyPrefix + strconv.FormatInt(gen, 10)
}

// UsersList returns the cached list and the generation it was looked up
// under; pass that generation to SetUsersList. ok is false on a miss.
func (r *repository) UsersList(ctx context.Context) ([]*models.UserWithRole, int64, bool, error) {
	op := pkg + "UsersList"

	gen, err := r.generation(ctx)
	if err != nil {
		return nil, 0, false, fmt.Errorf("%s: %w", op, err)
	}

	raw, err := r.cache.Get(ctx, listKey(gen)).Result()
	if err != nil {
		return nil, gen, false, fmt.Errorf("%s: %w", op, err)
	}

	if raw == "" {
		return nil, gen, false, nil
	}

	var users []*models.UserWithRole
	if err := json.Unmarshal([]byte(raw), &users); err != nil {
		return nil, gen, false, fmt.Errorf("%s: %w", op, err)
	}

	return users, gen, true, nil
}

func (r *repository) SetUsersList(ctx context.Context, gen int64, users []*models.UserWithRole) error {
	op := pkg + "SetUsersList"

	raw, err := json.Marshal(users)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if err := r.cache.Set(ctx, listKey(gen), string(raw), r.usersTTL).Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (r *repository) InvalidateUsersList(ctx context.Context) error {
	op := pkg + "InvalidateUsersList"

	if err := r.cache.Incr(ctx, genKey).Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (r *repository) generation(ctx context.Context) (int64, error) {
	raw, err := r.cache.Get(ctx, genKey).Result()
	if err != nil {
		return 0, err
	}

	if raw == "" {
		return 0, nil
	}

	return strconv.ParseInt(raw, 10, 64)
}
