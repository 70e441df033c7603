package files

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// LocalStorage keeps files under a base directory. Paths cannot escape it.
type LocalStorage struct {
	baseDir string
	timeout time.Duration
}

type LocalOption func(*LocalStorage)

// WithLocalTimeout bounds every operation. Zero relies on the caller's context.
func WithLocalTimeout(d time.Duration) LocalOption {
	return func(s *LocalStorage) {
		s.timeout = d
	}
}

// NewLocalStorage resolves baseDir to an absolute path and creates it.
func NewLocalStorage(baseDir string, opts ...LocalOption) (*LocalStorage, error) {
	if strings.TrimSpace(baseDir) == "" {
		return nil, ErrInvalidConfig
	}
	abs, err := filepath.Abs(baseDir)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if err := os.MkdirAll(abs, 0o755); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFailedToCreateDirectory, err)
	}

	s := &LocalStorage{baseDir: abs}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// BaseDir returns the absolute directory all paths are resolved against.
func (s *LocalStorage) BaseDir() string { return s.baseDir }

// Save writes data to a temporary file and renames it into place, so readers
// never observe a partial file.
func (s *LocalStorage) Save(ctx context.Context, path string, data []byte) error {
	ctx, cancel := withTimeout(ctx, s.timeout)
	defer cancel()

	abs, err := s.resolve(path)
	if err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return contextError(err, "save")
	}
	if err := os.MkdirAll(filepath.Dir(abs), 0o755); err != nil {
		return fmt.Errorf("%w: %v", ErrFailedToCreateDirectory, err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(abs), ".tmp-*")
	if err != nil {
		return fmt.Errorf("%w: %v", ErrFailedToWriteFile, err)
	}
	defer func() { _ = os.Remove(tmp.Name()) }()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("%w: %v", ErrFailedToWriteFile, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("%w: %v", ErrFailedToWriteFile, err)
	}
	if err := ctx.Err(); err != nil {
		return contextError(err, "save")
	}
	if err := os.Rename(tmp.Name(), abs); err != nil {
		return fmt.Errorf("%w: %v", ErrFailedToWriteFile, err)
	}
	return nil
}

// Read returns the content of path.
func (s *LocalStorage) Read(ctx context.Context, path string) ([]byte, error) {
	ctx, cancel := withTimeout(ctx, s.timeout)
	defer cancel()

	abs, err := s.resolve(path)
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, contextError(err, "read")
	}

	info, err := os.Stat(abs)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
	case err != nil:
		return nil, fmt.Errorf("%w: %v", ErrFailedToStatPath, err)
	case info.IsDir():
		return nil, fmt.Errorf("%w: %s", ErrIsDirectory, path)
	}

	data, err := os.ReadFile(abs)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFailedToReadFile, err)
	}
	return data, nil
}

// Exists reports whether path is a regular file.
func (s *LocalStorage) Exists(ctx context.Context, path string) (bool, error) {
	abs, err := s.resolve(path)
	if err != nil {
		return false, err
	}
	if err := ctx.Err(); err != nil {
		return false, contextError(err, "stat")
	}

	info, err := os.Stat(abs)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return false, nil
	case err != nil:
		return false, fmt.Errorf("%w: %v", ErrFailedToStatPath, err)
	}
	return !info.IsDir(), nil
}

// Delete removes path.
func (s *LocalStorage) Delete(ctx context.Context, path string) error {
	abs, err := s.resolve(path)
	if err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return contextError(err, "delete")
	}

	info, err := os.Stat(abs)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return fmt.Errorf("%w: %s", ErrFileNotFound, path)
	case err != nil:
		return fmt.Errorf("%w: %v", ErrFailedToStatPath, err)
	case info.IsDir():
		return fmt.Errorf("%w: %s", ErrIsDirectory, path)
	}
	if err := os.Remove(abs); err != nil {
		return fmt.Errorf("%w: %v", ErrFailedToDeleteFile, err)
	}
	return nil
}

// resolve maps a storage path to an absolute path inside baseDir.
func (s *LocalStorage) resolve(path string) (string, error) {
	clean, err := CleanPath(path)
	if err != nil {
		return "", err
	}
	abs := filepath.Join(s.baseDir, filepath.FromSlash(clean))
	if !strings.HasPrefix(abs, s.baseDir+string(filepath.Separator)) {
		return "", fmt.Errorf("%w: %s", ErrInvalidPath, path)
	}
	return abs, nil
}

func contextError(err error, operation string) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%w: %s operation", ErrOperationTimeout, operation)
	}
	return fmt.Errorf("%w: %s operation", ErrOperationCanceled, operation)
}
