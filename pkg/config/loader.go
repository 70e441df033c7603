package config

import (
	"errors"
	"fmt"
	"reflect"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// typeCache keeps one parsed copy per configuration type.
type typeCache struct {
	mu     sync.Mutex
	values map[reflect.Type]any
}

var (
	cached = &typeCache{values: make(map[reflect.Type]any)}

	dotenvOnce sync.Once
)

// Load parses environment variables into v using `env` struct tags.
// The default .env file is read once if present. Each configuration type is
// parsed once per process; later calls get a copy of the cached value.
//
//	type StorageConfig struct {
//		BaseDir string `env:"FILES_BASE_DIR" envDefault:"./data"`
//	}
//
//	var cfg StorageConfig
//	if err := config.Load(&cfg); err != nil {
//		return err
//	}
func Load[T any](v *T) error {
	if v == nil {
		return ErrNilPointer
	}
	dotenvOnce.Do(func() {
		// A missing .env file is not an error.
		_ = godotenv.Load()
	})

	key := reflect.TypeFor[T]()

	cached.mu.Lock()
	defer cached.mu.Unlock()

	if c, ok := cached.values[key]; ok {
		*v = c.(T)
		return nil
	}

	if err := env.Parse(v); err != nil {
		return errors.Join(ErrParsingConfig, err)
	}
	cached.values[key] = *v
	return nil
}

// LoadFrom parses the given variables into v without touching the process
// environment or the cache.
func LoadFrom[T any](v *T, vars map[string]string) error {
	if v == nil {
		return ErrNilPointer
	}
	if err := env.ParseWithOptions(v, env.Options{Environment: vars}); err != nil {
		return errors.Join(ErrParsingConfig, err)
	}
	return nil
}

// MustLoad is Load that panics on failure.
func MustLoad[T any](v *T) {
	if err := Load(v); err != nil {
		panic(fmt.Sprintf("failed to load required configuration: %v", err))
	}
}

// Reset drops every cached configuration so the next Load parses again.
func Reset() {
	cached.mu.Lock()
	defer cached.mu.Unlock()
	cached.values = make(map[reflect.Type]any)
}
