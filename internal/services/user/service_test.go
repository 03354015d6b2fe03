package userservice

import (
	"context"
	"distro/internal/hasher"
	"distro/internal/models"
	cacherepo "distro/internal/repositories/cache"
	cacheusersrepo "distro/internal/repositories/cache/users"
	"errors"
	"io"
	"log/slog"
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) ListUsersWithRoles(ctx context.Context) ([]*models.UserWithRole, error) {
	args := m.Called(ctx)
	return args.Get(0).([]*models.UserWithRole), args.Error(1)
}

func (m *MockUserRepository) CreateUser(ctx context.Context, user models.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) UpdateUser(ctx context.Context, id int, user models.User) error {
	args := m.Called(ctx, id, user)
	return args.Error(0)
}

func (m *MockUserRepository) DeleteUser(ctx context.Context, id int) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockUsersCache struct {
	mock.Mock
}

func (m *MockUsersCache) UsersList(ctx context.Context) ([]*models.UserWithRole, int64, bool, error) {
	args := m.Called(ctx)
	return args.Get(0).([]*models.UserWithRole), args.Get(1).(int64), args.Bool(2), args.Error(3)
}

func (m *MockUsersCache) SetUsersList(ctx context.Context, gen int64, users []*models.UserWithRole) error {
	args := m.Called(ctx, gen, users)
	return args.Error(0)
}

func (m *MockUsersCache) InvalidateUsersList(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestListUsers_CacheHit(t *testing.T) {
	t.Parallel()

	repo := new(MockUserRepository)
	cache := new(MockUsersCache)
	cached := []*models.UserWithRole{{ID: 1, Nombre: "Ana"}}
	cache.On("UsersList", mock.Anything).Return(cached, int64(0), true, nil)

	service := New(discardLogger(), repo, cache, time.Second)

	users, err := service.ListUsers(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, cached, users)
	repo.AssertNotCalled(t, "ListUsersWithRoles", mock.Anything)
}

func TestListUsers_CacheMissFillsCache(t *testing.T) {
	t.Parallel()

	repo := new(MockUserRepository)
	cache := new(MockUsersCache)
	fromDB := []*models.UserWithRole{{ID: 2, Nombre: "Luis"}}
	cache.On("UsersList", mock.Anything).Return(([]*models.UserWithRole)(nil), int64(4), false, nil)
	repo.On("ListUsersWithRoles", mock.Anything).Return(fromDB, nil)
	cache.On("SetUsersList", mock.Anything, int64(4), fromDB).Return(nil)

	service := New(discardLogger(), repo, cache, time.Second)

	users, err := service.ListUsers(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, fromDB, users)
	cache.AssertExpectations(t)
}

func TestListUsers_CacheErrorFallsBackToStore(t *testing.T) {
	t.Parallel()

	repo := new(MockUserRepository)
	cache := new(MockUsersCache)
	fromDB := []*models.UserWithRole{}
	cache.On("UsersList", mock.Anything).Return(([]*models.UserWithRole)(nil), int64(0), false, errors.New("redis down"))
	repo.On("ListUsersWithRoles", mock.Anything).Return(fromDB, nil)

	service := New(discardLogger(), repo, cache, time.Second)

	users, err := service.ListUsers(context.Background())
	assert.NoError(t, err)
	assert.Empty(t, users)
	cache.AssertNotCalled(t, "SetUsersList", mock.Anything, mock.Anything, mock.Anything)
}

func TestListUsers_StoreError(t *testing.T) {
	t.Parallel()

	repo := new(MockUserRepository)
	cache := new(MockUsersCache)
	cache.On("UsersList", mock.Anything).Return(([]*models.UserWithRole)(nil), int64(0), false, nil)
	repo.On("ListUsersWithRoles", mock.Anything).Return(([]*models.UserWithRole)(nil), errors.New("db down"))

	service := New(discardLogger(), repo, cache, time.Second)

	users, err := service.ListUsers(context.Background())
	assert.Nil(t, users)
	assert.ErrorIs(t, err, models.ErrInternal)
}

func TestCreateUser_InvalidatesCache(t *testing.T) {
	t.Parallel()

	repo := new(MockUserRepository)
	cache := new(MockUsersCache)
	user := models.User{Nombre: "Ana", Contrasena: "secret", RolID: 1}
	repo.On("CreateUser", mock.Anything, user).Return(nil)
	cache.On("InvalidateUsersList", mock.Anything).Return(nil)

	service := New(discardLogger(), repo, cache, time.Second)

	assert.NoError(t, service.CreateUser(context.Background(), user))
	cache.AssertExpectations(t)
}

func TestCreateUser_StoreError(t *testing.T) {
	t.Parallel()

	repo := new(MockUserRepository)
	cache := new(MockUsersCache)
	repo.On("CreateUser", mock.Anything, mock.Anything).Return(errors.New("db down"))

	service := New(discardLogger(), repo, cache, time.Second)

	err := service.CreateUser(context.Background(), models.User{})
	assert.ErrorIs(t, err, models.ErrInternal)
	cache.AssertNotCalled(t, "InvalidateUsersList", mock.Anything)
}

func TestUpdateUser(t *testing.T) {
	t.Parallel()

	repo := new(MockUserRepository)
	cache := new(MockUsersCache)
	user := models.User{Nombre: "Ana", Contrasena: "secret", RolID: 1}
	repo.On("UpdateUser", mock.Anything, 3, user).Return(nil)
	cache.On("InvalidateUsersList", mock.Anything).Return(nil)

	service := New(discardLogger(), repo, cache, time.Second)

	assert.NoError(t, service.UpdateUser(context.Background(), 3, user))
	repo.AssertExpectations(t)
}

func TestUpdateUser_StoreError(t *testing.T) {
	t.Parallel()

	repo := new(MockUserRepository)
	repo.On("UpdateUser", mock.Anything, 3, mock.Anything).Return(errors.New("db down"))

	service := New(discardLogger(), repo, new(MockUsersCache), time.Second)

	assert.ErrorIs(t, service.UpdateUser(context.Background(), 3, models.User{}), models.ErrInternal)
}

func TestDeleteUser_Twice(t *testing.T) {
	t.Parallel()

	repo := new(MockUserRepository)
	cache := new(MockUsersCache)
	repo.On("DeleteUser", mock.Anything, 9).Return(nil).Twice()
	cache.On("InvalidateUsersList", mock.Anything).Return(nil)

	service := New(discardLogger(), repo, cache, time.Second)

	assert.NoError(t, service.DeleteUser(context.Background(), 9))
	assert.NoError(t, service.DeleteUser(context.Background(), 9))
	repo.AssertExpectations(t)
}

func TestDeleteUser_StoreError(t *testing.T) {
	t.Parallel()

	repo := new(MockUserRepository)
	repo.On("DeleteUser", mock.Anything, 9).Return(errors.New("db down"))

	service := New(discardLogger(), repo, new(MockUsersCache), time.Second)

	assert.ErrorIs(t, service.DeleteUser(context.Background(), 9), models.ErrInternal)
}

func TestOperationsRespectTimeout(t *testing.T) {
	t.Parallel()

	repo := new(MockUserRepository)
	repo.On("DeleteUser", mock.Anything, 1).Return(nil).Run(func(args mock.Arguments) {
		ctx := args.Get(0).(context.Context)
		_, ok := ctx.Deadline()
		assert.True(t, ok)
	})
	cache := new(MockUsersCache)
	cache.On("InvalidateUsersList", mock.Anything).Return(nil)

	service := New(discardLogger(), repo, cache, 50*time.Millisecond)

	assert.NoError(t, service.DeleteUser(context.Background(), 1))
}

// memoryRepo stores users the way the SQL repository does: hashed.
type memoryRepo struct {
	mu     sync.Mutex
	hasher hasher.Hasher
	nextID int
	users  []*models.UserWithRole
}

func (r *memoryRepo) ListUsersWithRoles(context.Context) ([]*models.UserWithRole, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]*models.UserWithRole, 0, len(r.users))
	for _, u := range r.users {
		cp := *u
		out = append(out, &cp)
	}
	return out, nil
}

func (r *memoryRepo) CreateUser(_ context.Context, user models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	hash, err := r.hasher.Hash(user.Contrasena)
	if err != nil {
		return err
	}
	r.nextID++
	r.users = append(r.users, &models.UserWithRole{
		ID:            r.nextID,
		Nombre:        user.Nombre,
		Apellidos:     user.Apellidos,
		Correo:        user.Correo,
		Contrasena:    hash,
		RolID:         user.RolID,
		Activo:        user.Activo,
		FechaCreacion: time.Now(),
		IdRol:         user.RolID,
	})
	return nil
}

func (r *memoryRepo) UpdateUser(context.Context, int, models.User) error { return nil }

func (r *memoryRepo) DeleteUser(context.Context, int) error { return nil }

func TestCreateThenList_StoresHashNotPlaintext(t *testing.T) {
	t.Parallel()

	h := hasher.MD5{}
	repo := &memoryRepo{hasher: h}
	cache := cacheusersrepo.New(cacherepo.Nop{}, time.Minute)
	service := New(discardLogger(), repo, cache, time.Second)
	ctx := context.Background()

	input := models.User{
		Nombre:     "Ana",
		Apellidos:  "López",
		Correo:     "ana@example.com",
		Contrasena: "plain",
		RolID:      2,
		Activo:     false,
	}
	require.NoError(t, service.CreateUser(ctx, input))

	users, err := service.ListUsers(ctx)
	require.NoError(t, err)
	require.Len(t, users, 1)

	got := users[0]
	want, _ := h.Hash("plain")
	assert.Equal(t, input.Nombre, got.Nombre)
	assert.Equal(t, input.Apellidos, got.Apellidos)
	assert.Equal(t, input.Correo, got.Correo)
	assert.Equal(t, input.RolID, got.RolID)
	assert.Equal(t, input.Activo, got.Activo)
	assert.Equal(t, want, got.Contrasena)
	assert.NotEqual(t, "plain", got.Contrasena)
}

// memoryCache is an in-process stand-in for Redis.
type memoryCache struct {
	mu     sync.Mutex
	values map[string]string
}

type memoryResponse[T any] struct {
	val T
}

func (r memoryResponse[T]) Err() error { return nil }

func (r memoryResponse[T]) Result() (T, error) { return r.val, nil }

func newMemoryCache() *memoryCache {
	return &memoryCache{values: make(map[string]string)}
}

func (c *memoryCache) Get(_ context.Context, key string) cacherepo.CacheResponse[string] {
	c.mu.Lock()
	defer c.mu.Unlock()
	return memoryResponse[string]{val: c.values[key]}
}

func (c *memoryCache) Set(_ context.Context, key string, value any, _ time.Duration) cacherepo.CacheResponse[string] {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.values[key] = value.(string)
	return memoryResponse[string]{val: "OK"}
}

func (c *memoryCache) Del(_ context.Context, keys ...string) cacherepo.CacheResponse[int64] {
	c.mu.Lock()
	defer c.mu.Unlock()
	var n int64
	for _, k := range keys {
		if _, ok := c.values[k]; ok {
			delete(c.values, k)
			n++
		}
	}
	return memoryResponse[int64]{val: n}
}

func (c *memoryCache) Incr(_ context.Context, key string) cacherepo.CacheResponse[int64] {
	c.mu.Lock()
	defer c.mu.Unlock()
	n, _ := strconv.ParseInt(c.values[key], 10, 64)
	n++
	c.values[key] = strconv.FormatInt(n, 10)
	return memoryResponse[int64]{val: n}
}

// gatedRepo parks the first list call until release is closed, after
// taking its snapshot.
type gatedRepo struct {
	*memoryRepo
	once    sync.Once
	entered chan struct{}
	release chan struct{}
}

func (r *gatedRepo) ListUsersWithRoles(ctx context.Context) ([]*models.UserWithRole, error) {
	users, err := r.memoryRepo.ListUsersWithRoles(ctx)
	r.once.Do(func() {
		close(r.entered)
		<-r.release
	})
	return users, err
}

func TestListUsers_WriteDuringListIsNotHiddenByCache(t *testing.T) {
	t.Parallel()

	repo := &gatedRepo{
		memoryRepo: &memoryRepo{hasher: hasher.MD5{}},
		entered:    make(chan struct{}),
		release:    make(chan struct{}),
	}
	cache := cacheusersrepo.New(newMemoryCache(), time.Minute)
	service := New(discardLogger(), repo, cache, 5*time.Second)
	ctx := context.Background()

	done := make(chan []*models.UserWithRole)
	go func() {
		users, err := service.ListUsers(ctx)
		assert.NoError(t, err)
		done <- users
	}()

	<-repo.entered
	require.NoError(t, service.CreateUser(ctx, models.User{
		Nombre: "Ana", Apellidos: "López", Correo: "ana@example.com", Contrasena: "plain", RolID: 2,
	}))
	close(repo.release)

	assert.Empty(t, <-done)

	users, err := service.ListUsers(ctx)
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, "ana@example.com", users[0].Correo)

	users, err = service.ListUsers(ctx)
	require.NoError(t, err)
	assert.Len(t, users, 1)
}

func TestListUsers_PasswordChangeInvalidatesCachedHash(t *testing.T) {
	t.Parallel()

	repo := &memoryRepo{hasher: hasher.MD5{}}
	cache := cacheusersrepo.New(newMemoryCache(), time.Minute)
	service := New(discardLogger(), repo, cache, time.Second)
	ctx := context.Background()

	require.NoError(t, service.CreateUser(ctx, models.User{Nombre: "Ana", Correo: "ana@example.com", Contrasena: "vieja", RolID: 1}))

	before, err := service.ListUsers(ctx)
	require.NoError(t, err)
	require.Len(t, before, 1)

	newHash, _ := hasher.MD5{}.Hash("nueva")
	repo.mu.Lock()
	repo.users[0].Contrasena = newHash
	repo.mu.Unlock()
	require.NoError(t, cache.InvalidateUsersList(ctx))

	after, err := service.ListUsers(ctx)
	require.NoError(t, err)
	require.Len(t, after, 1)
	assert.Equal(t, newHash, after[0].Contrasena)
}
