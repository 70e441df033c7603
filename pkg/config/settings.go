package config

import (
	"fmt"
	"time"
)

// Settings holds the tunables shared by the sharedkit packages.
type Settings struct {
	// Optional YAML file overriding guard messages and patterns.
	GuardCatalogPath string `env:"GUARD_CATALOG_PATH"`

	LogFormat string `env:"LOG_FORMAT" envDefault:"json"`
	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	Env       string `env:"APP_ENV" envDefault:"development"`

	PBKDF2Iterations int `env:"PBKDF2_ITERATIONS" envDefault:"600000"`
	BcryptCost       int `env:"BCRYPT_COST" envDefault:"12"`

	FilesBaseDir     string        `env:"FILES_BASE_DIR" envDefault:"./data"`
	FilesTimeout     time.Duration `env:"FILES_TIMEOUT" envDefault:"30s"`
	S3Bucket         string        `env:"S3_BUCKET"`
	S3Region         string        `env:"S3_REGION"`
	S3Endpoint       string        `env:"S3_ENDPOINT"`
	S3AccessKeyID    string        `env:"S3_ACCESS_KEY_ID"`
	S3SecretKey      string        `env:"S3_SECRET_KEY"`
	S3ForcePathStyle bool          `env:"S3_FORCE_PATH_STYLE" envDefault:"false"`
}

// Validate checks value ranges that env tags cannot express.
func (s Settings) Validate() error {
	switch {
	case s.PBKDF2Iterations < 1:
		return fmt.Errorf("%w: PBKDF2_ITERATIONS must be positive, got %d", ErrInvalidSettings, s.PBKDF2Iterations)
	case s.LogFormat != "json" && s.LogFormat != "text":
		return fmt.Errorf("%w: LOG_FORMAT must be json or text, got %q", ErrInvalidSettings, s.LogFormat)
	}
	return nil
}

// UseS3 reports whether file storage should go to S3 instead of the local disk.
func (s Settings) UseS3() bool {
	return s.S3Bucket != "" && s.S3Region != ""
}

// LoadSettings loads and validates Settings from the environment.
func LoadSettings() (Settings, error) {
	var s Settings
	if err := Load(&s); err != nil {
		return Settings{}, err
	}
	if err := s.Validate(); err != nil {
		return Settings{}, err
	}
	return s, nil
}
