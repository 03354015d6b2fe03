package app

import (
	"context"
	"distro/internal/cache/redis"
	"distro/internal/config"
	"distro/internal/dbs/postgres"
	"distro/internal/hasher"
	cacherepo "distro/internal/repositories/cache"
	cacheusersrepo "distro/internal/repositories/cache/users"
	userrepo "distro/internal/repositories/db/user"
	filerepo "distro/internal/repositories/storage/file"
	authservice "distro/internal/services/auth"
	fileservice "distro/internal/services/file"
	userservice "distro/internal/services/user"
	"errors"
	"fmt"
	"io"
	"log/slog"
)

type App struct {
	AuthService *authservice.AuthService
	UserService *userservice.UserService
	FileService *fileservice.FileService

	closers []io.Closer
}

func NewApp(ctx context.Context, log *slog.Logger, cfg *config.Config) (*App, error) {
	h, err := hasher.New(cfg.Auth.Hasher, cfg.Auth.BcryptCost)
	if err != nil {
		return nil, fmt.Errorf("failed to init hasher: %w", err)
	}

	db, err := postgres.New(ctx, postgres.Config{
		Addr:     cfg.DB.Addr,
		Port:     cfg.DB.Port,
		User:     cfg.DB.User,
		Password: cfg.DB.Password,
		DB:       cfg.DB.DB,
		SSLMode:  cfg.DB.SSLMode,
	})
	if err != nil {
		log.Error("failed connect to db", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed connect to db: %w", err)
	}

	a := &App{closers: []io.Closer{db}}

	var cache cacherepo.Cache = cacherepo.Nop{}

	if cfg.Cache.Addr != "" {
		client, err := redis.New(ctx, redis.Config{Addr: cfg.Cache.Addr, Password: cfg.Cache.Password, DB: cfg.Cache.DB})
		if err != nil {
			log.Error("failed connect to cache", slog.String("error", err.Error()))
			_ = a.Close()
			return nil, fmt.Errorf("failed connect to cache: %w", err)
		}
		a.closers = append(a.closers, client)
		cache = client
	} else {
		log.Info("cache address not set, users list caching disabled")
	}

	fileStorage, err := filerepo.NewRepository(cfg.FileStorage.Path)
	if err != nil {
		_ = a.Close()
		return nil, fmt.Errorf("failed to init file storage: %w", err)
	}

	if err := fileStorage.EnsureRoot(); err != nil {
		_ = a.Close()
		return nil, fmt.Errorf("failed to create upload root: %w", err)
	}

	userRepo := userrepo.NewRepository(db, h)

	usersCacheRepo := cacheusersrepo.New(cache, cfg.Cache.UsersTTL)

	a.UserService = userservice.New(log, userRepo, usersCacheRepo, cfg.OperationTimeout)

	a.AuthService = authservice.New(log, userRepo, userRepo, usersCacheRepo, authservice.Config{
		Secret:    cfg.Auth.JWTSecret,
		TokenTTL:  cfg.Auth.TokenTTL,
		OpTimeout: cfg.OperationTimeout,
	})

	a.FileService = fileservice.New(log, fileStorage, cfg.OperationTimeout)

	log.Info("upload root ready", slog.String("path", fileStorage.Root()))

	return a, nil
}

// Close releases the database and cache connections.
func (a *App) Close() error {
	var errs []error
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i].Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
