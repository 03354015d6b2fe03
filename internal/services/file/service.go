package fileservice

import (
	"context"
	"distro/internal/metrics"
	"distro/internal/models"
	"distro/internal/repositories/storage"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	uuid "github.com/satori/go.uuid"
)

const pkg = "fileService/"

type FileService struct {
	log       *slog.Logger
	storage   storage.FileRepository
	opTimeout time.Duration
	now       func() time.Time
	newID     func() string
}

func New(log *slog.Logger, files storage.FileRepository, opTimeout time.Duration) *FileService {
	return &FileService{
		log:       log,
		storage:   files,
		opTimeout: opTimeout,
		now:       time.Now,
		newID:     func() string { return uuid.NewV4().String() },
	}
}

// PrepareUpload makes sure the upload root exists. Callers run it before
// accepting an upload stream.
func (fs *FileService) PrepareUpload() error {
	op := pkg + "PrepareUpload"

	if err := fs.storage.EnsureRoot(); err != nil {
		fs.log.Error("failed to prepare upload directory", slog.String("op", op), slog.String("error", err.Error()))
		return fmt.Errorf("%s: %w", op, models.ErrInternal)
	}

	return nil
}

// Upload stores content as <unix-millis><ext>. If that name is already taken
// a uuid is appended to the timestamp so an existing file is never replaced.
func (fs *FileService) Upload(ctx context.Context, upload models.Upload, content io.Reader) (*models.StoredFile, error) {
	op := pkg + "Upload"

	log := fs.log.With(slog.String("op", op))

	log.Debug("attempting to upload file", slog.String("original_name", upload.OriginalName))

	if err := fs.PrepareUpload(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	ctx, cancel := context.WithTimeout(ctx, fs.opTimeout)
	defer cancel()

	stamp := strconv.FormatInt(fs.now().UnixMilli(), 10)
	ext := extension(upload.OriginalName)

	name := stamp + ext
	path, size, err := fs.storage.SaveFile(ctx, name, content)
	if errors.Is(err, models.ErrFileExists) {
		log.Warn("upload name collision", slog.String("name", name))
		name = stamp + "-" + fs.newID() + ext
		path, size, err = fs.storage.SaveFile(ctx, name, content)
	}
	if err != nil {
		log.Error("failed to save file", slog.String("error", err.Error()))
		return nil, fmt.Errorf("%s: %w", op, models.ErrInternal)
	}

	metrics.UploadedBytesTotal.Add(float64(size))
	log.Debug("file uploaded successfully", slog.String("name", name), slog.Int64("size", size))

	return &models.StoredFile{
		Upload:      upload,
		Destination: fs.storage.Root(),
		FileName:    name,
		Path:        path,
		Size:        size,
	}, nil
}

// Open returns the stored file; the caller closes its Content.
func (fs *FileService) Open(ctx context.Context, name string) (*models.FileContent, error) {
	op := pkg + "Open"

	log := fs.log.With(slog.String("op", op), slog.String("name", name))

	log.Debug("attempting to open file")

	ctx, cancel := context.WithTimeout(ctx, fs.opTimeout)
	defer cancel()

	fc, err := fs.storage.LoadFile(ctx, name)
	if err != nil {
		switch {
		case errors.Is(err, models.ErrInvalidFileName):
			log.Warn("rejected file name")
			return nil, models.ErrInvalidFileName
		case errors.Is(err, models.ErrFileNotFound):
			log.Info("file not found")
			return nil, models.ErrFileNotFound
		default:
			log.Error("failed to open file", slog.String("error", err.Error()))
			return nil, fmt.Errorf("%s: %w", op, models.ErrInternal)
		}
	}

	return fc, nil
}

func (fs *FileService) Delete(ctx context.Context, name string) error {
	op := pkg + "Delete"

	log := fs.log.With(slog.String("op", op), slog.String("name", name))

	log.Debug("attempting to delete file")

	ctx, cancel := context.WithTimeout(ctx, fs.opTimeout)
	defer cancel()

	if err := fs.storage.DeleteFile(ctx, name); err != nil {
		switch {
		case errors.Is(err, models.ErrInvalidFileName):
			log.Warn("rejected file name")
			return models.ErrInvalidFileName
		case errors.Is(err, models.ErrFileNotFound):
			log.Info("file not found")
			return models.ErrFileNotFound
		default:
			log.Error("failed to delete file", slog.String("error", err.Error()))
			return fmt.Errorf("%s: %w", op, models.ErrInternal)
		}
	}

	log.Debug("file deleted successfully")

	return nil
}

// extension returns the suffix from the last dot of the base name; dotfiles
// such as ".env" have none.
func extension(originalName string) string {
	base := filepath.Base(strings.ReplaceAll(originalName, `\`, "/"))
	ext := filepath.Ext(base)
	if ext == base || strings.ContainsRune(ext, 0) {
		return ""
	}
	return ext
}
