package cli

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-api/internal/config"
	"github.com/rocketscienceinc/tictactoe-api/internal/scoreboard"
)

func TestWriteScoreboard(t *testing.T) {
	var out bytes.Buffer

	err := writeScoreboard(&out, []scoreboard.Entry{
		{Username: "alice", Wins: 2, Losses: 1, Draws: 0},
		{Username: "bob", Wins: 0, Losses: 0, Draws: 0},
	})

	require.NoError(t, err)
	assert.Equal(t,
		"USERNAME  WINS  LOSSES  DRAWS\n"+
			"alice     2     1       0\n"+
			"bob       0     0       0\n",
		out.String())
}

func TestInitLogger(t *testing.T) {
	ctx := context.Background()

	debugLogger := initLogger(&config.Config{LogLevel: "debug"})
	assert.True(t, debugLogger.Enabled(ctx, slog.LevelDebug))

	infoLogger := initLogger(&config.Config{LogLevel: "info"})
	assert.False(t, infoLogger.Enabled(ctx, slog.LevelDebug))
	assert.True(t, infoLogger.Enabled(ctx, slog.LevelInfo))

	fallbackLogger := initLogger(&config.Config{LogLevel: "verbose"})
	assert.True(t, fallbackLogger.Enabled(ctx, slog.LevelInfo))
}

func TestInitConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte("http-port: \"8000\"\n"), 0o600))

	configPath = path
	t.Cleanup(func() { configPath = "" })

	conf, err := initConfig()

	require.NoError(t, err)
	assert.Equal(t, "8000", conf.HTTPPort)
}

func TestUsersAddRequiresUsername(t *testing.T) {
	rootCmd.SetArgs([]string{"users", "add"})
	rootCmd.SetOut(&bytes.Buffer{})
	rootCmd.SetErr(&bytes.Buffer{})
	t.Cleanup(func() { rootCmd.SetArgs(nil) })

	err := rootCmd.Execute()

	assert.Error(t, err)
}
