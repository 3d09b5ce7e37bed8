package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"reversi/internal/reversi"
)

// ShellConfig holds the startup settings of the interactive shell, all
// loaded from environment variables. Every variable is optional.
type ShellConfig struct {
	// Level is the machine's initial search level.
	Level int

	// FirstPlayer opens the first game.
	FirstPlayer reversi.Player
}

// LoadShellConfig loads the shell configuration from the environment.
func LoadShellConfig() (*ShellConfig, error) {
	cfg := &ShellConfig{
		Level:       reversi.DefaultLevel,
		FirstPlayer: reversi.Human,
	}

	if value := os.Getenv("REVERSI_LEVEL"); value != "" {
		level, err := strconv.Atoi(value)
		if err != nil {
			return nil, fmt.Errorf("invalid REVERSI_LEVEL: %w", err)
		}
		if level < reversi.MinLevel || level > reversi.MaxLevel {
			return nil, fmt.Errorf("invalid REVERSI_LEVEL: must be %d..%d, got %d",
				reversi.MinLevel, reversi.MaxLevel, level)
		}
		cfg.Level = level
	}

	if value := os.Getenv("REVERSI_FIRST_PLAYER"); value != "" {
		switch strings.ToLower(value) {
		case "human":
			cfg.FirstPlayer = reversi.Human
		case "machine":
			cfg.FirstPlayer = reversi.Machine
		default:
			return nil, fmt.Errorf("invalid REVERSI_FIRST_PLAYER: must be \"human\" or \"machine\", got %q", value)
		}
	}

	return cfg, nil
}
