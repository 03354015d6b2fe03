package user

import (
	"context"
	utils "distro/internal/utils/http_errors"
	"log/slog"
	"net/http"
)

func Post(ctx context.Context, log *slog.Logger, w http.ResponseWriter, r *http.Request, uc UserCreator) {
	op := pkg + "Post"

	log = log.With(slog.String("op", op))

	user, err := decodeUser(r)
	if err != nil {
		log.Warn("invalid user body", slog.String("error", err.Error()))
		utils.WriteJSONError(w, http.StatusBadRequest, msgMissingFields)
		return
	}

	if err := uc.CreateUser(ctx, user); err != nil {
		log.Error("failed to create user", slog.String("error", err.Error()))
		utils.WriteJSONError(w, http.StatusInternalServerError, msgCreateFailed)
		return
	}

	utils.WriteJSONMessage(w, http.StatusCreated, msgCreated)
}
