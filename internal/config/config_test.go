package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	return path
}

func TestLoad(t *testing.T) {
	t.Run("Defaults fill missing keys", func(t *testing.T) {
		// Given: a config file with only the log level
		path := writeConfig(t, "log-level: debug\n")

		// When: loading it
		conf, err := Load(path)

		// Then: the rest comes from defaults
		require.NoError(t, err)
		assert.Equal(t, "debug", conf.LogLevel)
		assert.Equal(t, entity.PlayerX, conf.Human())
		assert.Equal(t, entity.PlayerO, conf.Computer())
		assert.False(t, conf.ComputerFirst)
		assert.Equal(t, ModePlay, conf.Mode)
		assert.Equal(t, 500*time.Millisecond, conf.DemoDelay)
	})

	t.Run("Reads every key", func(t *testing.T) {
		path := writeConfig(t, "log-level: info\nhuman-mark: O\ncomputer-first: true\nmode: demo\ndemo-delay: 1s\n")

		conf, err := Load(path)

		require.NoError(t, err)
		assert.Equal(t, entity.PlayerO, conf.Human())
		assert.Equal(t, entity.PlayerX, conf.Computer())
		assert.True(t, conf.ComputerFirst)
		assert.Equal(t, ModeDemo, conf.Mode)
		assert.Equal(t, time.Second, conf.DemoDelay)
	})

	t.Run("Environment overrides the file", func(t *testing.T) {
		t.Setenv("HUMAN_MARK", "O")
		path := writeConfig(t, "human-mark: X\n")

		conf, err := Load(path)

		require.NoError(t, err)
		assert.Equal(t, entity.PlayerO, conf.Human())
	})

	t.Run("Rejects an unknown mark", func(t *testing.T) {
		path := writeConfig(t, "human-mark: Z\n")

		_, err := Load(path)

		require.ErrorIs(t, err, ErrInvalidMark)
	})

	t.Run("Rejects an unknown mode", func(t *testing.T) {
		path := writeConfig(t, "mode: online\n")

		_, err := Load(path)

		require.ErrorIs(t, err, ErrInvalidMode)
	})

	t.Run("Rejects an unknown log level", func(t *testing.T) {
		path := writeConfig(t, "log-level: trace\n")

		_, err := Load(path)

		require.ErrorIs(t, err, ErrInvalidLogLevel)
	})

	t.Run("MustLoad panics on a missing file", func(t *testing.T) {
		assert.Panics(t, func() {
			MustLoad(filepath.Join(t.TempDir(), "missing.yml"))
		})
	})
}
