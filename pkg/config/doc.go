// Package config loads typed configuration from environment variables.
//
// It wraps `github.com/joho/godotenv` and `github.com/caarlos0/env/v11`:
//
//   - Optional `.env` files are loaded into the process environment first
//     (the default `.env` once per process, or explicit files via
//     WithEnvFiles). Variables that are already set are never overridden.
//   - The environment is parsed into any Go struct using `env` field tags,
//     optionally under a common prefix (WithPrefix).
//   - WithEnvironment swaps the process environment for a map, which keeps
//     tests hermetic.
//
// # Usage
//
//	type Config struct {
//	    LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
//	    LogFormat string `env:"LOG_FORMAT" envDefault:"text"`
//	    S3Region  string `env:"S3_REGION"`
//	}
//
//	var cfg Config
//	if err := config.Load(&cfg, config.WithPrefix("ORDUTILS_")); err != nil {
//	    log.Fatal(err)
//	}
//
// MustLoad panics instead of returning an error, for configuration the
// program cannot start without.
//
// # Error Handling
//
// Errors are joined with package sentinels (ErrParsingConfig,
// ErrLoadingEnvFile, ErrNilPointer) so callers can use errors.Is while the
// underlying library error stays in the message.
package config
