package files

import (
	"context"
	"distro/internal/models"
	utils "distro/internal/utils/http_errors"
	"errors"
	"log/slog"
	"net/http"
)

// Download streams the stored file; content type comes from the extension
// and range requests are honoured.
func Download(ctx context.Context, log *slog.Logger, w http.ResponseWriter, r *http.Request, name string, fo FileOpener) {
	op := pkg + "Download"

	log = log.With(slog.String("op", op), slog.String("name", name))

	fc, err := fo.Open(ctx, name)
	if err != nil {
		switch {
		case errors.Is(err, models.ErrInvalidFileName):
			log.Warn("rejected file name")
			utils.WriteJSONError(w, http.StatusBadRequest, msgInvalidName)
		case errors.Is(err, models.ErrFileNotFound):
			utils.WriteJSONError(w, http.StatusNotFound, msgNotFound)
		default:
			log.Error("failed to open file", slog.String("error", err.Error()))
			utils.WriteJSONError(w, http.StatusInternalServerError, msgFindFailed)
		}
		return
	}
	defer fc.Content.Close()

	http.ServeContent(w, r, fc.Name, fc.ModTime, fc.Content)
}
