package filerepo

import (
	"context"
	"distro/internal/models"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

const pkg = "fileRepo/"

const (
	dirPerm  = 0o755
	filePerm = 0o644
)

type repository struct {
	root string
}

func NewRepository(root string) (*repository, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("%s: resolve root %q: %w", pkg+"NewRepository", root, err)
	}

	return &repository{root: abs}, nil
}

func (r *repository) Root() string {
	return r.root
}

func (r *repository) EnsureRoot() error {
	if err := os.MkdirAll(r.root, dirPerm); err != nil {
		return fmt.Errorf("%s: %w", pkg+"EnsureRoot", err)
	}
	return nil
}

// SaveFile creates name exclusively under the root. It returns
// models.ErrFileExists instead of overwriting, and removes the partial
// file if the copy fails.
func (r *repository) SaveFile(ctx context.Context, name string, reader io.Reader) (string, int64, error) {
	op := pkg + "SaveFile"

	path, err := r.resolve(name)
	if err != nil {
		return "", 0, err
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, filePerm)
	if err != nil {
		if errors.Is(err, fs.ErrExist) {
			return "", 0, models.ErrFileExists
		}
		return "", 0, fmt.Errorf("%s: %w", op, err)
	}

	size, err := io.Copy(f, ctxReader{ctx: ctx, r: reader})
	closeErr := f.Close()
	if err == nil {
		err = closeErr
	}
	if err != nil {
		_ = os.Remove(path)
		return "", 0, fmt.Errorf("%s: %w", op, err)
	}

	return path, size, nil
}

func (r *repository) LoadFile(ctx context.Context, name string) (*models.FileContent, error) {
	op := pkg + "LoadFile"

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	path, err := r.resolve(name)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, models.ErrFileNotFound
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if info.IsDir() {
		f.Close()
		return nil, models.ErrFileNotFound
	}

	return &models.FileContent{
		Name:    info.Name(),
		Size:    info.Size(),
		ModTime: info.ModTime(),
		Content: f,
	}, nil
}

func (r *repository) DeleteFile(ctx context.Context, name string) error {
	op := pkg + "DeleteFile"

	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	path, err := r.resolve(name)
	if err != nil {
		return err
	}

	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return models.ErrFileNotFound
		}
		return fmt.Errorf("%s: %w", op, err)
	}

	if info.IsDir() {
		return models.ErrFileNotFound
	}

	if err := os.Remove(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return models.ErrFileNotFound
		}
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// resolve joins name onto the root, rejecting anything that is not a plain
// file name directly inside it.
func (r *repository) resolve(name string) (string, error) {
	if !validName(name) {
		return "", models.ErrInvalidFileName
	}

	path := filepath.Join(r.root, name)

	rel, err := filepath.Rel(r.root, path)
	if err != nil || rel != name {
		return "", models.ErrInvalidFileName
	}

	return path, nil
}

// validName accepts a single path element that cannot climb out of the root.
func validName(name string) bool {
	if name == "" || name == "." || name == ".." {
		return false
	}
	return !strings.ContainsAny(name, "/\\\x00")
}

type ctxReader struct {
	ctx context.Context
	r   io.Reader
}

func (c ctxReader) Read(p []byte) (int, error) {
	if err := c.ctx.Err(); err != nil {
		return 0, err
	}
	return c.r.Read(p)
}
