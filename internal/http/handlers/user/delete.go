package user

import (
	"context"
	utils "distro/internal/utils/http_errors"
	parseutil "distro/internal/utils/parseID"
	"log/slog"
	"net/http"
)

// Delete reports success whether or not the id existed.
func Delete(ctx context.Context, log *slog.Logger, w http.ResponseWriter, r *http.Request, rawID string, ud UserDeleter) {
	op := pkg + "Delete"

	log = log.With(slog.String("op", op), slog.String("id", rawID))

	id, err := parseutil.ParseID(rawID)
	if err != nil {
		log.Warn("invalid user id")
		utils.WriteJSONError(w, http.StatusBadRequest, msgInvalidID)
		return
	}

	if err := ud.DeleteUser(ctx, id); err != nil {
		log.Error("failed to delete user", slog.String("error", err.Error()))
		utils.WriteJSONError(w, http.StatusInternalServerError, msgDeleteFailed)
		return
	}

	utils.WriteJSONMessage(w, http.StatusOK, msgDeleted)
}
