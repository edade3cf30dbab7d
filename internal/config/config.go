// Package config reads the CLI settings from the environment.
package config

import (
	"fmt"

	"github.com/mstoykov/envconfig"
	"github.com/sirupsen/logrus"
)

const (
	FormatTree       = "tree"
	FormatExpression = "expr"
)

// Config holds settings that flags can override.
type Config struct {
	Grammar  string `envconfig:"MIXFIX_GRAMMAR"`
	LogLevel string `envconfig:"MIXFIX_LOG_LEVEL"`
	Format   string `envconfig:"MIXFIX_FORMAT"`
	NoColor  bool   `envconfig:"MIXFIX_NO_COLOR"`
}

func Default() Config {
	return Config{
		LogLevel: "info",
		Format:   FormatTree,
	}
}

// FromEnv starts from Default and applies whatever env sets.
func FromEnv(env map[string]string) (Config, error) {
	conf := Default()
	err := envconfig.Process("", &conf, func(key string) (string, bool) {
		v, ok := env[key]
		return v, ok
	})
	if err != nil {
		return conf, err
	}
	return conf, conf.Validate()
}

func (c Config) Validate() error {
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return err
	}
	switch c.Format {
	case FormatTree, FormatExpression:
	default:
		return fmt.Errorf("unknown output format '%s', expected '%s' or '%s'", c.Format, FormatTree, FormatExpression)
	}
	return nil
}

// Level is the parsed LogLevel. Call Validate first.
func (c Config) Level() logrus.Level {
	level, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		return logrus.InfoLevel
	}
	return level
}
