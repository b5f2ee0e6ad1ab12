package cli

import (
	"go.llib.dev/frameless/pkg/env"
)

// Config is the environment configuration of catalogsort.
// Command line flags take precedence over it.
type Config struct {
	LogLevel string   `env:"CATALOGSORT_LOG_LEVEL" default:"info" enum:"debug;info;warn;error;"`
	Sort     []string `env:"CATALOGSORT_SORT" default:"category,name"`
	Mode     string   `env:"CATALOGSORT_MODE" default:"all" enum:"all;any;"`
	Format   string   `env:"CATALOGSORT_FORMAT" default:"text" enum:"text;yaml;json;"`
}

func LoadConfig() (Config, error) {
	var c Config
	if err := env.Load(&c); err != nil {
		return Config{}, err
	}
	return c, nil
}
