package filerepo

import (
	"context"
	"distro/internal/models"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRepo(t *testing.T) *repository {
	t.Helper()

	repo, err := NewRepository(filepath.Join(t.TempDir(), "nested", "Archivos"))
	require.NoError(t, err)
	require.NoError(t, repo.EnsureRoot())

	return repo
}

func TestEnsureRoot_CreatesParents(t *testing.T) {
	t.Parallel()

	root := filepath.Join(t.TempDir(), "a", "b", "c")
	repo, err := NewRepository(root)
	require.NoError(t, err)

	require.NoError(t, repo.EnsureRoot())
	require.NoError(t, repo.EnsureRoot())

	info, err := os.Stat(root)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestSaveAndLoadFile(t *testing.T) {
	t.Parallel()

	repo := newRepo(t)
	ctx := context.Background()

	path, size, err := repo.SaveFile(ctx, "1633021373134.png", strings.NewReader("content"))
	require.NoError(t, err)
	assert.Equal(t, int64(7), size)
	assert.Equal(t, filepath.Join(repo.Root(), "1633021373134.png"), path)

	fc, err := repo.LoadFile(ctx, "1633021373134.png")
	require.NoError(t, err)
	defer fc.Content.Close()

	data, err := io.ReadAll(fc.Content)
	require.NoError(t, err)
	assert.Equal(t, "content", string(data))
	assert.Equal(t, int64(7), fc.Size)
}

func TestSaveFile_DoesNotOverwrite(t *testing.T) {
	t.Parallel()

	repo := newRepo(t)
	ctx := context.Background()

	_, _, err := repo.SaveFile(ctx, "1.txt", strings.NewReader("first"))
	require.NoError(t, err)

	_, _, err = repo.SaveFile(ctx, "1.txt", strings.NewReader("second"))
	assert.ErrorIs(t, err, models.ErrFileExists)

	data, err := os.ReadFile(filepath.Join(repo.Root(), "1.txt"))
	require.NoError(t, err)
	assert.Equal(t, "first", string(data))
}

func TestSaveFile_CanceledContextRemovesPartialFile(t *testing.T) {
	t.Parallel()

	repo := newRepo(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, _, err := repo.SaveFile(ctx, "2.txt", strings.NewReader("data"))
	assert.ErrorIs(t, err, context.Canceled)

	_, statErr := os.Stat(filepath.Join(repo.Root(), "2.txt"))
	assert.True(t, os.IsNotExist(statErr))
}

func TestLoadFile_NotFound(t *testing.T) {
	t.Parallel()

	repo := newRepo(t)

	_, err := repo.LoadFile(context.Background(), "missing.txt")
	assert.ErrorIs(t, err, models.ErrFileNotFound)
}

func TestDeleteFile(t *testing.T) {
	t.Parallel()

	repo := newRepo(t)
	ctx := context.Background()

	_, _, err := repo.SaveFile(ctx, "3.txt", strings.NewReader("x"))
	require.NoError(t, err)

	require.NoError(t, repo.DeleteFile(ctx, "3.txt"))

	assert.ErrorIs(t, repo.DeleteFile(ctx, "3.txt"), models.ErrFileNotFound)

	_, err = repo.LoadFile(ctx, "3.txt")
	assert.ErrorIs(t, err, models.ErrFileNotFound)
}

func TestPathTraversalRejected(t *testing.T) {
	t.Parallel()

	repo := newRepo(t)
	ctx := context.Background()

	secret := filepath.Join(filepath.Dir(repo.Root()), "secret")
	require.NoError(t, os.WriteFile(secret, []byte("top secret"), 0o600))

	for _, name := range []string{"../secret", "..", ".", "", "a/b", `..\secret`, "/etc/passwd", "nul\x00byte"} {
		_, err := repo.LoadFile(ctx, name)
		assert.ErrorIs(t, err, models.ErrInvalidFileName, name)

		assert.ErrorIs(t, repo.DeleteFile(ctx, name), models.ErrInvalidFileName, name)

		_, _, err = repo.SaveFile(ctx, name, strings.NewReader("x"))
		assert.ErrorIs(t, err, models.ErrInvalidFileName, name)
	}

	_, err := os.Stat(secret)
	assert.NoError(t, err)
}

func TestLoadFile_DirectoryIsNotAFile(t *testing.T) {
	t.Parallel()

	repo := newRepo(t)
	require.NoError(t, os.Mkdir(filepath.Join(repo.Root(), "sub"), 0o755))

	_, err := repo.LoadFile(context.Background(), "sub")
	assert.ErrorIs(t, err, models.ErrFileNotFound)
	assert.ErrorIs(t, repo.DeleteFile(context.Background(), "sub"), models.ErrFileNotFound)
}
