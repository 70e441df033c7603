// Package config loads configuration from environment variables into typed structs.
//
// It wraps github.com/joho/godotenv (the default .env file is read once) and
// github.com/caarlos0/env/v11 (struct tag parsing). Every configuration type is
// parsed once and cached; Reset clears the cache, which is mostly useful in tests.
//
// Settings collects the knobs used across sharedkit: guard catalog path,
// logging, hashing cost and file storage:
//
//	s, err := config.LoadSettings()
//	if err != nil {
//		log.Fatal(err)
//	}
//	store, err := files.FromSettings(ctx, s)
//
// LoadFrom parses an explicit map and skips both the process environment and
// the cache.
package config
