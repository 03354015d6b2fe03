package authservice

import (
	"context"
	"distro/internal/metrics"
	"distro/internal/models"
	"errors"
	"fmt"
	"log/slog"
	"time"
)

const pkg = "authService/"

type Config struct {
	Secret    string
	TokenTTL  time.Duration
	OpTimeout time.Duration
}

type AuthService struct {
	log            *slog.Logger
	userProvider   UserProvider
	passwordSetter PasswordSetter
	cache          CacheInvalidator
	cfg            Config
	now            func() time.Time
}

func New(
	log *slog.Logger,
	userProvider UserProvider,
	passwordSetter PasswordSetter,
	cache CacheInvalidator,
	cfg Config,
) *AuthService {
	return &AuthService{
		log:            log,
		userProvider:   userProvider,
		passwordSetter: passwordSetter,
		cache:          cache,
		cfg:            cfg,
		now:            time.Now,
	}
}

func (a *AuthService) Login(ctx context.Context, email string, password string) (*models.Token, error) {
	op := pkg + "Login"

	log := a.log.With(slog.String("op", op))

	log.Debug("attempting to login user")

	if email == "" || password == "" {
		log.Warn("missing email or password")
		metrics.LoginAttemptsTotal.WithLabelValues("invalid_params").Inc()
		return nil, models.ErrInvalidParams
	}

	ctx, cancel := context.WithTimeout(ctx, a.cfg.OpTimeout)
	defer cancel()

	user, err := a.userProvider.UserByCredentials(ctx, email, password)
	if err != nil {
		if errors.Is(err, models.ErrUserNotFound) {
			log.Info("invalid credentials")
			metrics.LoginAttemptsTotal.WithLabelValues("invalid_credentials").Inc()
			return nil, fmt.Errorf("%s: %w", op, models.ErrInvalidCredentials)
		}

		log.Error("failed to get user by credentials", slog.String("error", err.Error()))
		metrics.LoginAttemptsTotal.WithLabelValues("error").Inc()
		return nil, fmt.Errorf("%s: %w", op, models.ErrInternal)
	}

	// exp and the returned expiry derive from the same instant.
	expiresAt := a.now().Add(a.cfg.TokenTTL)

	token, err := signToken(newClaims(user, expiresAt), []byte(a.cfg.Secret))
	if err != nil {
		log.Error("failed to sign token", slog.String("error", err.Error()))
		metrics.LoginAttemptsTotal.WithLabelValues("error").Inc()
		return nil, fmt.Errorf("%s: %w", op, models.ErrInternal)
	}

	metrics.LoginAttemptsTotal.WithLabelValues("success").Inc()
	log.Debug("user logged in successfully", slog.Int("user_id", user.ID))

	return &models.Token{Token: token, ExpiresAt: expiresAt}, nil
}

func (a *AuthService) ChangePassword(ctx context.Context, email string, newPassword string) error {
	op := pkg + "ChangePassword"

	log := a.log.With(slog.String("op", op))

	log.Debug("attempting to change password")

	if email == "" || newPassword == "" {
		log.Warn("missing email or new password")
		return models.ErrInvalidParams
	}

	ctx, cancel := context.WithTimeout(ctx, a.cfg.OpTimeout)
	defer cancel()

	if _, err := a.userProvider.UserByEmail(ctx, email); err != nil {
		if errors.Is(err, models.ErrUserNotFound) {
			log.Info("user not found")
			return fmt.Errorf("%s: %w", op, models.ErrUserNotFound)
		}

		log.Error("failed to get user by email", slog.String("error", err.Error()))
		return fmt.Errorf("%s: %w", op, models.ErrInternal)
	}

	if err := a.passwordSetter.SetPassword(ctx, email, newPassword); err != nil {
		log.Error("failed to set password", slog.String("error", err.Error()))
		return fmt.Errorf("%s: %w", op, models.ErrInternal)
	}

	if err := a.cache.InvalidateUsersList(ctx); err != nil {
		log.Error("failed to invalidate users cache", slog.String("error", err.Error()))
	}

	log.Debug("password changed successfully")

	return nil
}
