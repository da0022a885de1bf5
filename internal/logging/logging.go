package logging

import (
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/nordkitchen/foodtruck-manager/internal/config"
)

// New constructs the application logger. Defaults to info level,
// console output when the format is unrecognized.
func New(cfg *config.Config) zerolog.Logger {
	level := zerolog.InfoLevel
	if parsed, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(cfg.LogLevel))); err == nil {
		level = parsed
	}

	zerolog.TimeFieldFormat = time.RFC3339Nano

	if strings.ToLower(strings.TrimSpace(cfg.LogFormat)) == "json" {
		return zerolog.New(os.Stdout).Level(level).With().Timestamp().Logger()
	}

	output := zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}
	return zerolog.New(output).Level(level).With().Timestamp().Logger()
}
