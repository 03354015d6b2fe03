package files

import (
	"context"
	"distro/internal/dto"
	"distro/internal/models"
	utils "distro/internal/utils/http_errors"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
)

const (
	defaultEncoding = "7bit"
	defaultMimeType = "application/octet-stream"
)

// Limits bounds a multipart upload: MaxMemory bytes are buffered in memory
// and the rest spills to temporary files, MaxBody caps the whole request.
type Limits struct {
	MaxMemory int64
	MaxBody   int64
}

func Upload(ctx context.Context, log *slog.Logger, w http.ResponseWriter, r *http.Request, limits Limits, fu FileUploader) {
	op := pkg + "Upload"

	log = log.With(slog.String("op", op))

	if err := fu.PrepareUpload(); err != nil {
		log.Error("upload directory unavailable", slog.String("error", err.Error()))
		utils.WriteJSONError(w, http.StatusInternalServerError, msgUploadFailed)
		return
	}

	if limits.MaxBody > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, limits.MaxBody)
	}

	if err := r.ParseMultipartForm(limits.MaxMemory); err != nil {
		if errors.Is(err, http.ErrNotMultipart) {
			log.Warn("request is not multipart")
			utils.WriteJSONError(w, http.StatusBadRequest, msgMissingFile)
			return
		}
		log.Warn("failed to parse multipart form", slog.String("error", err.Error()))
		utils.WriteJSONError(w, http.StatusBadRequest, msgInvalidForm)
		return
	}
	defer r.MultipartForm.RemoveAll()

	file, header, err := r.FormFile(FormField)
	if err != nil {
		log.Warn("no file part", slog.String("error", err.Error()))
		utils.WriteJSONError(w, http.StatusBadRequest, msgMissingFile)
		return
	}
	defer file.Close()

	upload := models.Upload{
		FieldName:    FormField,
		OriginalName: header.Filename,
		Encoding:     headerOr(header.Header.Get("Content-Transfer-Encoding"), defaultEncoding),
		MimeType:     headerOr(header.Header.Get("Content-Type"), defaultMimeType),
	}

	stored, err := fu.Upload(ctx, upload, file)
	if err != nil {
		log.Error("failed to upload file", slog.String("error", err.Error()))
		utils.WriteJSONError(w, http.StatusInternalServerError, msgUploadFailed)
		return
	}

	response := dto.UploadResponse{
		Message: msgUploaded,
		File: dto.FileResponse{
			FieldName:    stored.FieldName,
			OriginalName: stored.OriginalName,
			Encoding:     stored.Encoding,
			MimeType:     stored.MimeType,
			Destination:  stored.Destination,
			FileName:     stored.FileName,
			Path:         stored.Path,
			Size:         stored.Size,
		},
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(response); err != nil {
		log.Error("failed to write response", slog.String("error", err.Error()))
	}
}

func headerOr(v, def string) string {
	if v == "" {
		return def
	}
	return v
}
