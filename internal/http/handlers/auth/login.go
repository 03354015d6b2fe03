package auth

import (
	"context"
	"distro/internal/dto"
	"distro/internal/models"
	utils "distro/internal/utils/http_errors"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
)

func Login(ctx context.Context, log *slog.Logger, w http.ResponseWriter, r *http.Request, a Authenticator) {
	op := pkg + "Login"

	log = log.With(slog.String("op", op))

	body, err := io.ReadAll(r.Body)
	if err != nil {
		log.Error("failed to read body", slog.String("error", err.Error()))
		utils.WriteJSONError(w, http.StatusInternalServerError, msgLoginFailed)
		return
	}
	defer r.Body.Close()

	var req dto.LoginRequest

	if err := json.Unmarshal(body, &req); err != nil {
		log.Warn("unmarshal body", slog.String("error", err.Error()))
		utils.WriteJSONError(w, http.StatusBadRequest, msgMissingCredentials)
		return
	}

	token, err := a.Login(ctx, req.Correo, req.Contrasena)
	if err != nil {
		switch {
		case errors.Is(err, models.ErrInvalidParams):
			log.Warn("failed to login", slog.String("error", err.Error()))
			utils.WriteJSONError(w, http.StatusBadRequest, msgMissingCredentials)
		case errors.Is(err, models.ErrInvalidCredentials):
			log.Info("failed to login", slog.String("error", err.Error()))
			utils.WriteJSONMessage(w, http.StatusUnauthorized, msgInvalidCredentials)
		default:
			log.Error("failed to login", slog.String("error", err.Error()))
			utils.WriteJSONError(w, http.StatusInternalServerError, msgLoginFailed)
		}
		return
	}

	response := dto.LoginResponse{
		Token:      token.Token,
		Expiracion: token.ExpiresAt.UTC().Format(expiryLayout),
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(response); err != nil {
		log.Error("failed to write response", slog.String("error", err.Error()))
	}
}
