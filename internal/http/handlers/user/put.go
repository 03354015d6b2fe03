package user

import (
	"context"
	utils "distro/internal/utils/http_errors"
	parseutil "distro/internal/utils/parseID"
	"log/slog"
	"net/http"
)

func Put(ctx context.Context, log *slog.Logger, w http.ResponseWriter, r *http.Request, rawID string, uu UserUpdater) {
	op := pkg + "Put"

	log = log.With(slog.String("op", op), slog.String("id", rawID))

	id, err := parseutil.ParseID(rawID)
	if err != nil {
		log.Warn("invalid user id")
		utils.WriteJSONError(w, http.StatusBadRequest, msgInvalidID)
		return
	}

	user, err := decodeUser(r)
	if err != nil {
		log.Warn("invalid user body", slog.String("error", err.Error()))
		utils.WriteJSONError(w, http.StatusBadRequest, msgMissingFields)
		return
	}

	if err := uu.UpdateUser(ctx, id, user); err != nil {
		log.Error("failed to update user", slog.String("error", err.Error()))
		utils.WriteJSONError(w, http.StatusInternalServerError, msgUpdateFailed)
		return
	}

	utils.WriteJSONMessage(w, http.StatusOK, msgUpdated)
}
