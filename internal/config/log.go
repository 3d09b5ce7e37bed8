package config

import (
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// SetLogLevel configures the global zerolog logger from the LOG_LEVEL
// environment variable. Without it, only warnings and errors are shown.
func SetLogLevel() {
	level := zerolog.WarnLevel

	if envLevel := os.Getenv("LOG_LEVEL"); envLevel != "" {
		parsed, err := zerolog.ParseLevel(strings.ToLower(envLevel))
		if err != nil {
			log.Error().Str("level", envLevel).Msg("Invalid log level")
			os.Exit(1)
		}
		level = parsed
	}

	zerolog.SetGlobalLevel(level)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
}
