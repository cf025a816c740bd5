package main

import (
	"time"

	"github.com/dmitrymomot/ordutils/pkg/config"
)

const envPrefix = "ORDUTILS_"

// Config is read from ORDUTILS_* environment variables and an optional .env file.
type Config struct {
	LogLevel      string        `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat     string        `env:"LOG_FORMAT" envDefault:"text"`
	LogSource     bool          `env:"LOG_SOURCE"`
	ListSeparator string        `env:"LIST_SEPARATOR" envDefault:","`
	ProbeTimeout  time.Duration `env:"PROBE_TIMEOUT" envDefault:"10s"`

	// MessagesFile is an optional YAML or JSON catalog used to localize errors.
	MessagesFile string `env:"MESSAGES_FILE"`
	Lang         string `env:"LANG" envDefault:"en"`

	S3Region         string `env:"S3_REGION"`
	S3Endpoint       string `env:"S3_ENDPOINT"`
	S3AccessKeyID    string `env:"S3_ACCESS_KEY_ID"`
	S3SecretKey      string `env:"S3_SECRET_KEY"`
	S3ForcePathStyle bool   `env:"S3_FORCE_PATH_STYLE"`
}

func loadConfig(opts ...config.Option) (Config, error) {
	var cfg Config
	err := config.Load(&cfg, append([]config.Option{config.WithPrefix(envPrefix)}, opts...)...)
	return cfg, err
}
