package config

import (
	"errors"
	"fmt"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

var defaultEnvLoaded sync.Once

// Option configures a single Load call.
type Option func(*options)

type options struct {
	prefix      string
	files       []string
	environment map[string]string
}

// WithPrefix prepends prefix to every env tag, e.g. "ORDUTILS_".
func WithPrefix(prefix string) Option {
	return func(o *options) {
		o.prefix = prefix
	}
}

// WithEnvFiles loads the given .env files instead of the default one.
// Missing files are an error. Variables already set in the process win.
func WithEnvFiles(files ...string) Option {
	return func(o *options) {
		o.files = append(o.files, files...)
	}
}

// WithEnvironment parses from env instead of the process environment.
// No .env file is read. Handy in tests.
func WithEnvironment(env map[string]string) Option {
	return func(o *options) {
		if env != nil {
			o.environment = env
		}
	}
}

// Load parses environment variables into v based on its `env` struct tags.
//
// Unless WithEnvFiles or WithEnvironment is given, the default .env file in
// the working directory is loaded once per process, if it exists.
//
// Example:
//
//	type Config struct {
//		LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
//		Separator string `env:"LIST_SEPARATOR" envDefault:","`
//	}
//
//	var cfg Config
//	if err := config.Load(&cfg, config.WithPrefix("ORDUTILS_")); err != nil {
//		// Handle error
//	}
func Load[T any](v *T, opts ...Option) error {
	if v == nil {
		return ErrNilPointer
	}

	o := &options{}
	for _, opt := range opts {
		opt(o)
	}

	switch {
	case o.environment != nil:
	case len(o.files) > 0:
		if err := godotenv.Load(o.files...); err != nil {
			return errors.Join(ErrLoadingEnvFile, err)
		}
	default:
		defaultEnvLoaded.Do(func() {
			// Ignore errors - the .env file might not exist and that's ok
			_ = godotenv.Load()
		})
	}

	envOpts := env.Options{Prefix: o.prefix}
	if o.environment != nil {
		envOpts.Environment = o.environment
	}

	if err := env.ParseWithOptions(v, envOpts); err != nil {
		return errors.Join(ErrParsingConfig, err)
	}
	return nil
}

// MustLoad works like Load but panics if configuration loading fails.
func MustLoad[T any](v *T, opts ...Option) {
	if err := Load(v, opts...); err != nil {
		panic(fmt.Sprintf("Failed to load required configuration: %v", err))
	}
}
