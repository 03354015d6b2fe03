package storage

import (
	"context"
	"distro/internal/models"
	"io"
)

type FileRepository interface {
	Root() string
	EnsureRoot() error
	SaveFile(ctx context.Context, name string, reader io.Reader) (path string, size int64, err error)
	LoadFile(ctx context.Context, name string) (*models.FileContent, error)
	DeleteFile(ctx context.Context, name string) error
}
