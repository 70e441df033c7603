package files

import (
	"context"
	"fmt"
	"path"
	"strings"
	"time"

	"github.com/dmitrymomot/sharedkit/pkg/async"
	"github.com/dmitrymomot/sharedkit/pkg/config"
)

// Storage reads and writes whole files addressed by slash-separated relative paths.
type Storage interface {
	Save(ctx context.Context, path string, data []byte) error
	Read(ctx context.Context, path string) ([]byte, error)
	Exists(ctx context.Context, path string) (bool, error)
	Delete(ctx context.Context, path string) error
}

// SaveAsync writes data in the background. The future resolves to the cleaned path.
func SaveAsync(ctx context.Context, s Storage, p string, data []byte) *async.Future[string] {
	return async.Async(ctx, p, func(ctx context.Context, p string) (string, error) {
		clean, err := CleanPath(p)
		if err != nil {
			return "", err
		}
		if err := s.Save(ctx, clean, data); err != nil {
			return "", err
		}
		return clean, nil
	})
}

// ReadAsync reads p in the background.
func ReadAsync(ctx context.Context, s Storage, p string) *async.Future[[]byte] {
	return async.Async(ctx, p, s.Read)
}

// Join builds a storage path from a directory and a file name.
func Join(dir, name string) (string, error) {
	return CleanPath(path.Join(dir, name))
}

// CleanPath normalizes p to a relative slash path and rejects traversal
// outside the storage root and empty names.
func CleanPath(p string) (string, error) {
	p = strings.ReplaceAll(strings.TrimSpace(p), "\\", "/")
	for _, seg := range strings.Split(p, "/") {
		if seg == ".." {
			return "", fmt.Errorf("%w: %s", ErrInvalidPath, p)
		}
	}
	clean := strings.TrimPrefix(path.Clean("/"+p), "/")
	if clean == "" {
		return "", fmt.Errorf("%w: empty path", ErrInvalidPath)
	}
	return clean, nil
}

// FromSettings returns S3 storage when a bucket and region are configured,
// local storage under FilesBaseDir otherwise.
func FromSettings(ctx context.Context, s config.Settings) (Storage, error) {
	if s.UseS3() {
		return NewS3Storage(ctx, S3Config{
			Bucket:         s.S3Bucket,
			Region:         s.S3Region,
			Endpoint:       s.S3Endpoint,
			AccessKeyID:    s.S3AccessKeyID,
			SecretKey:      s.S3SecretKey,
			ForcePathStyle: s.S3ForcePathStyle,
		}, WithS3Timeout(s.FilesTimeout))
	}
	return NewLocalStorage(s.FilesBaseDir, WithLocalTimeout(s.FilesTimeout))
}

func withTimeout(ctx context.Context, d time.Duration) (context.Context, context.CancelFunc) {
	if d > 0 {
		return context.WithTimeout(ctx, d)
	}
	return ctx, func() {}
}
