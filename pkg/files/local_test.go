package files_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/sharedkit/pkg/files"
)

func TestLocalStorage(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	s, err := files.NewLocalStorage(dir, files.WithLocalTimeout(time.Second))
	require.NoError(t, err)

	t.Run("save creates directories", func(t *testing.T) {
		require.NoError(t, s.Save(ctx, "a/b/c.txt", []byte("hello")))

		b, err := os.ReadFile(filepath.Join(dir, "a", "b", "c.txt"))
		require.NoError(t, err)
		assert.Equal(t, "hello", string(b))

		entries, err := os.ReadDir(filepath.Join(dir, "a", "b"))
		require.NoError(t, err)
		assert.Len(t, entries, 1, "temporary files must be cleaned up")
	})

	t.Run("save overwrites", func(t *testing.T) {
		require.NoError(t, s.Save(ctx, "over.txt", []byte("one")))
		require.NoError(t, s.Save(ctx, "over.txt", []byte("two")))
		got, err := s.Read(ctx, "over.txt")
		require.NoError(t, err)
		assert.Equal(t, "two", string(got))
	})

	t.Run("exists", func(t *testing.T) {
		ok, err := s.Exists(ctx, "a/b/c.txt")
		require.NoError(t, err)
		assert.True(t, ok)

		ok, err = s.Exists(ctx, "a/b")
		require.NoError(t, err)
		assert.False(t, ok, "directories are not files")

		ok, err = s.Exists(ctx, "nope.txt")
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("read errors", func(t *testing.T) {
		_, err := s.Read(ctx, "nope.txt")
		assert.ErrorIs(t, err, files.ErrFileNotFound)

		_, err = s.Read(ctx, "a")
		assert.ErrorIs(t, err, files.ErrIsDirectory)

		_, err = s.Read(ctx, "../../etc/passwd")
		assert.ErrorIs(t, err, files.ErrInvalidPath)
	})

	t.Run("delete", func(t *testing.T) {
		require.NoError(t, s.Save(ctx, "gone.txt", []byte("x")))
		require.NoError(t, s.Delete(ctx, "gone.txt"))
		assert.ErrorIs(t, s.Delete(ctx, "gone.txt"), files.ErrFileNotFound)
		assert.ErrorIs(t, s.Delete(ctx, "a"), files.ErrIsDirectory)
	})

	t.Run("canceled context", func(t *testing.T) {
		cctx, cancel := context.WithCancel(ctx)
		cancel()
		assert.ErrorIs(t, s.Save(cctx, "x.txt", nil), files.ErrOperationCanceled)
		_, err := s.Read(cctx, "a/b/c.txt")
		assert.ErrorIs(t, err, files.ErrOperationCanceled)
	})
}

func TestNewLocalStorage(t *testing.T) {
	_, err := files.NewLocalStorage("  ")
	assert.ErrorIs(t, err, files.ErrInvalidConfig)

	nested := filepath.Join(t.TempDir(), "x", "y")
	s, err := files.NewLocalStorage(nested)
	require.NoError(t, err)
	assert.DirExists(t, s.BaseDir())
}
