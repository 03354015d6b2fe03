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

func ChangePassword(ctx context.Context, log *slog.Logger, w http.ResponseWriter, r *http.Request, pc PasswordChanger) {
	op := pkg + "ChangePassword"

	log = log.With(slog.String("op", op))

	body, err := io.ReadAll(r.Body)
	if err != nil {
		log.Error("failed to read body", slog.String("error", err.Error()))
		utils.WriteJSONError(w, http.StatusInternalServerError, msgChangeFailed)
		return
	}
	defer r.Body.Close()

	var req dto.ChangePasswordRequest

	if err := json.Unmarshal(body, &req); err != nil {
		log.Warn("unmarshal body", slog.String("error", err.Error()))
		utils.WriteJSONError(w, http.StatusBadRequest, msgMissingNewPassword)
		return
	}

	if err := pc.ChangePassword(ctx, req.Correo, req.NuevaContrasena); err != nil {
		switch {
		case errors.Is(err, models.ErrInvalidParams):
			log.Warn("failed to change password", slog.String("error", err.Error()))
			utils.WriteJSONError(w, http.StatusBadRequest, msgMissingNewPassword)
		case errors.Is(err, models.ErrUserNotFound):
			log.Info("failed to change password", slog.String("error", err.Error()))
			utils.WriteJSONMessage(w, http.StatusNotFound, msgUserNotFound)
		default:
			log.Error("failed to change password", slog.String("error", err.Error()))
			utils.WriteJSONError(w, http.StatusInternalServerError, msgChangeFailed)
		}
		return
	}

	utils.WriteJSONMessage(w, http.StatusOK, msgPasswordChanged)
}
