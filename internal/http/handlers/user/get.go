package user

import (
	"context"
	"distro/internal/models"
	utils "distro/internal/utils/http_errors"
	"encoding/json"
	"log/slog"
	"net/http"
)

func Get(ctx context.Context, log *slog.Logger, w http.ResponseWriter, r *http.Request, ul UserLister) {
	op := pkg + "Get"

	log = log.With(slog.String("op", op))

	users, err := ul.ListUsers(ctx)
	if err != nil {
		log.Error("failed to list users", slog.String("error", err.Error()))
		utils.WriteJSONError(w, http.StatusInternalServerError, msgListFailed)
		return
	}

	if users == nil {
		users = make([]*models.UserWithRole, 0)
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(users); err != nil {
		log.Error("failed to write response", slog.String("error", err.Error()))
	}
}
