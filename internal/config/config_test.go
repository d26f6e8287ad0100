package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-arena/internal/entity"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestLoad(t *testing.T) {
	t.Run("Defaults are applied to missing keys", func(t *testing.T) {
		// Given: a config file that only sets the port
		path := writeConfig(t, "http-port: \"8080\"\n")

		// When: loading it
		conf, err := Load(path)
		require.NoError(t, err)

		// Then: the rest falls back to defaults
		assert.Equal(t, "8080", conf.HTTPPort)
		assert.Equal(t, "info", conf.LogLevel)
		assert.Equal(t, "localhost:6379", conf.Redis.GetRedisAddr())
		assert.Equal(t, 30*time.Minute, conf.Game.SessionTTL)
		assert.Equal(t, 60*time.Second, conf.Game.ChallengeTimeout)
		assert.Equal(t, 10, conf.Game.LeaderboardSize)
		assert.Equal(t, 10*time.Second, conf.Game.ArchiveTimeout)
		assert.Equal(t, Points{Win: 25, Loss: 5, Draw: 10}, conf.Game.Points)
	})

	t.Run("Values from the file win over defaults", func(t *testing.T) {
		path := writeConfig(t, `
log-level: debug
redis:
  host: cache
  port: "6380"
game:
  challenge-timeout: 2m
  points:
    win: 3
    loss: 2
    draw: 1
`)

		conf, err := Load(path)
		require.NoError(t, err)

		assert.Equal(t, "debug", conf.LogLevel)
		assert.Equal(t, "cache:6380", conf.Redis.GetRedisAddr())
		assert.Equal(t, 2*time.Minute, conf.Game.ChallengeTimeout)
		assert.Equal(t, Points{Win: 3, Loss: 2, Draw: 1}, conf.Game.Points)
	})

	t.Run("Missing file returns an error", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "absent.yml"))
		assert.Error(t, err)
	})

	t.Run("MustLoad panics on a missing file", func(t *testing.T) {
		assert.Panics(t, func() {
			MustLoad(filepath.Join(t.TempDir(), "absent.yml"))
		})
	})
}

func TestPoints_For(t *testing.T) {
	points := Points{Win: 25, Loss: 5, Draw: 10}

	assert.Equal(t, 25, points.For(entity.ResultWin))
	assert.Equal(t, 5, points.For(entity.ResultLoss))
	assert.Equal(t, 10, points.For(entity.ResultDraw))
	assert.Zero(t, points.For(entity.Result("forfeit")))
}
