package main

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mitchelldurbincs/rpsls/internal/config"
	"github.com/mitchelldurbincs/rpsls/internal/game/core"
)

func testConfig() *config.Config {
	return &config.Config{
		Game:    config.GameConfig{Seed: 42, QuitKeyword: "quit"},
		Console: config.ConsoleConfig{Prompt: "> "},
		Logging: config.LoggingConfig{Level: "warn", Format: "console"},
	}
}

func TestRun(t *testing.T) {
	var out bytes.Buffer
	in := strings.NewReader("rock\nnot-a-move\nspock\nLIZARD\nquit\n")

	summary, err := run(testConfig(), in, &out, zerolog.Nop())
	require.NoError(t, err)

	assert.Equal(t, 3, summary.RoundsPlayed)
	s := summary.Scores
	assert.Equal(t, 3, s.PlayerOne+s.PlayerTwo+s.Ties)
	assert.Equal(t, s.Leader(), summary.Winner)

	console := out.String()
	assert.True(t, strings.HasPrefix(console, "Game start!\nRound 1:\n> "))
	assert.Contains(t, console, "Round 4:\n")
	assert.True(t, strings.HasSuffix(console, "Game over!\n"))
	// One extra prompt for the rejected line
	assert.Equal(t, 5, strings.Count(console, "> "))
}

func TestRun_ComputerCyclesThroughMoves(t *testing.T) {
	var out bytes.Buffer
	in := strings.NewReader(strings.Repeat("paper\n", 5) + "quit\n")

	_, err := run(testConfig(), in, &out, zerolog.Nop())
	require.NoError(t, err)

	seen := make(map[string]bool)
	for _, line := range strings.Split(out.String(), "\n") {
		idx := strings.Index(line, "Player 2: ")
		if idx >= 0 && strings.Contains(line, "Player 1: paper") {
			seen[line[idx+len("Player 2: "):]] = true
		}
	}
	assert.Len(t, seen, core.NumMoves)
}

func TestRun_EventLoggingDevMode(t *testing.T) {
	var out, logs bytes.Buffer
	cfg := testConfig()
	cfg.Logging.Events = true

	_, err := run(cfg, strings.NewReader("quit\n"), &out, zerolog.New(&logs))
	require.NoError(t, err)

	assert.Contains(t, logs.String(), `"event_type":"game.started"`)
	assert.Contains(t, logs.String(), `"event_type":"game.ended"`)
	assert.Contains(t, logs.String(), `"event_data"`)
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, zerolog.DebugLevel, parseLevel("debug"))
	assert.Equal(t, zerolog.InfoLevel, parseLevel("INFO"))
	assert.Equal(t, zerolog.WarnLevel, parseLevel("warn"))
	assert.Equal(t, zerolog.ErrorLevel, parseLevel("error"))
	assert.Equal(t, zerolog.WarnLevel, parseLevel(""))
}

func TestSetupLogging(t *testing.T) {
	prevLogger, prevLevel := log.Logger, zerolog.GlobalLevel()
	t.Cleanup(func() {
		log.Logger = prevLogger
		zerolog.SetGlobalLevel(prevLevel)
	})

	var buf bytes.Buffer
	setupLogging(config.LoggingConfig{Level: "info", Format: "json"}, &buf)
	assert.Equal(t, zerolog.InfoLevel, zerolog.GlobalLevel())

	log.Info().Msg("hello")
	log.Debug().Msg("hidden")
	assert.Contains(t, buf.String(), `"message":"hello"`)
	assert.NotContains(t, buf.String(), "hidden")
}

// failOnWriter fails any write containing marker
type failOnWriter struct {
	marker string
	buf    bytes.Buffer
}

func (w *failOnWriter) Write(p []byte) (int, error) {
	if strings.Contains(string(p), w.marker) {
		return 0, errors.New("stdout closed")
	}
	return w.buf.Write(p)
}

func TestRun_ReportsConsoleWriteError(t *testing.T) {
	out := &failOnWriter{marker: "Scores:-"}

	summary, err := run(testConfig(), strings.NewReader("rock\nquit\n"), out, zerolog.Nop())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "write console")
	assert.Contains(t, err.Error(), "stdout closed")
	assert.Equal(t, 1, summary.RoundsPlayed)
	assert.NotContains(t, out.buf.String(), "Game over!")
}

func TestRun_PromptNamesConfiguredQuitKeyword(t *testing.T) {
	var out bytes.Buffer
	cfg := testConfig()
	cfg.Console.Prompt = ""
	cfg.Game.QuitKeyword = "exit"

	_, err := run(cfg, strings.NewReader("exit\n"), &out, zerolog.Nop())
	require.NoError(t, err)
	assert.Contains(t, out.String(), "(Type 'exit' to quit the game)")
}
