package files

import (
	"context"
	"distro/internal/models"
	utils "distro/internal/utils/http_errors"
	"errors"
	"log/slog"
	"net/http"
)

func Delete(ctx context.Context, log *slog.Logger, w http.ResponseWriter, r *http.Request, name string, fd FileDeleter) {
	op := pkg + "Delete"

	log = log.With(slog.String("op", op), slog.String("name", name))

	if err := fd.Delete(ctx, name); err != nil {
		switch {
		case errors.Is(err, models.ErrInvalidFileName):
			log.Warn("rejected file name")
			utils.WriteJSONError(w, http.StatusBadRequest, msgInvalidName)
		case errors.Is(err, models.ErrFileNotFound):
			utils.WriteJSONError(w, http.StatusNotFound, msgNotFound)
		default:
			log.Error("failed to delete file", slog.String("error", err.Error()))
			utils.WriteJSONError(w, http.StatusInternalServerError, msgDeleteFailed)
		}
		return
	}

	utils.WriteJSONMessage(w, http.StatusOK, msgDeleted)
}
