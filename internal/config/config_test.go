package config

import (
	"testing"

	"github.com/stretchr/testify/require"

	"reversi/internal/reversi"
)

func TestLoadShellConfig_Defaults(t *testing.T) {
	cfg, err := LoadShellConfig()
	require.NoError(t, err)

	require.Equal(t, reversi.DefaultLevel, cfg.Level)
	require.Equal(t, reversi.Human, cfg.FirstPlayer)
}

func TestLoadShellConfig_Level(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		t.Setenv("REVERSI_LEVEL", "5")

		cfg, err := LoadShellConfig()
		require.NoError(t, err)
		require.Equal(t, 5, cfg.Level)
	})

	t.Run("not a number", func(t *testing.T) {
		t.Setenv("REVERSI_LEVEL", "high")

		_, err := LoadShellConfig()
		require.ErrorContains(t, err, "invalid REVERSI_LEVEL")
	})

	t.Run("out of range", func(t *testing.T) {
		t.Setenv("REVERSI_LEVEL", "6")

		_, err := LoadShellConfig()
		require.ErrorContains(t, err, "must be 1..5")
	})
}

func TestLoadShellConfig_FirstPlayer(t *testing.T) {
	t.Run("machine", func(t *testing.T) {
		t.Setenv("REVERSI_FIRST_PLAYER", "Machine")

		cfg, err := LoadShellConfig()
		require.NoError(t, err)
		require.Equal(t, reversi.Machine, cfg.FirstPlayer)
	})

	t.Run("unknown", func(t *testing.T) {
		t.Setenv("REVERSI_FIRST_PLAYER", "alien")

		_, err := LoadShellConfig()
		require.ErrorContains(t, err, "invalid REVERSI_FIRST_PLAYER")
	})
}
