package subscribers_test

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mitchelldurbincs/rpsls/internal/game/core"
	"github.com/mitchelldurbincs/rpsls/internal/game/events"
	"github.com/mitchelldurbincs/rpsls/internal/game/events/subscribers"
)

func decodeLines(t *testing.T, buf *bytes.Buffer) []map[string]interface{} {
	t.Helper()
	var lines []map[string]interface{}
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		var entry map[string]interface{}
		require.NoError(t, json.Unmarshal([]byte(line), &entry))
		lines = append(lines, entry)
	}
	return lines
}

func TestLoggerSubscriber(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf).With().Timestamp().Logger()

	logSub := subscribers.NewLoggerSubscriber("test-logger", logger, zerolog.InfoLevel)

	assert.Equal(t, "test-logger", logSub.ID())
	assert.True(t, logSub.InterestedIn(events.TypeGameStarted))
	assert.True(t, logSub.InterestedIn(events.TypeRoundPlayed))
	assert.True(t, logSub.InterestedIn("any.event.type"))
}

func TestLoggerSubscriberEventLogging(t *testing.T) {
	testCases := []struct {
		name  string
		event events.Event
		check func(t *testing.T, logLine map[string]interface{})
	}{
		{
			name:  "GameStartedEvent",
			event: events.NewGameStartedEvent("game-1", "human", "cycle"),
			check: func(t *testing.T, logLine map[string]interface{}) {
				assert.Equal(t, events.TypeGameStarted, logLine["event_type"])
				assert.Equal(t, "human", logLine["player_one"])
				assert.Equal(t, "cycle", logLine["player_two"])
			},
		},
		{
			name:  "RoundStartedEvent",
			event: events.NewRoundStartedEvent("game-1", 4),
			check: func(t *testing.T, logLine map[string]interface{}) {
				assert.Equal(t, float64(4), logLine["round"])
			},
		},
		{
			name: "RoundPlayedEvent",
			event: events.NewRoundPlayedEvent("game-1", 2, core.Lizard, core.Spock, core.OutcomePlayerOne,
				core.Scores{PlayerOne: 2, PlayerTwo: 0, Ties: 0}),
			check: func(t *testing.T, logLine map[string]interface{}) {
				assert.Equal(t, float64(2), logLine["round"])
				assert.Equal(t, "lizard", logLine["move_one"])
				assert.Equal(t, "spock", logLine["move_two"])
				assert.Equal(t, "player_one", logLine["outcome"])
				assert.Equal(t, float64(2), logLine["score_one"])
			},
		},
		{
			name: "GameEndedEvent",
			event: events.NewGameEndedEvent("game-1", 3, core.Scores{PlayerOne: 1, PlayerTwo: 1, Ties: 1},
				core.OutcomeTie, time.Second, "player quit"),
			check: func(t *testing.T, logLine map[string]interface{}) {
				assert.Equal(t, float64(3), logLine["rounds_played"])
				assert.Equal(t, "tie", logLine["winner"])
				assert.Equal(t, "player quit", logLine["reason"])
			},
		},
		{
			name:  "StateTransitionEvent",
			event: events.NewStateTransitionEvent("game-1", "Playing", "Finished", "player quit"),
			check: func(t *testing.T, logLine map[string]interface{}) {
				assert.Equal(t, "Playing", logLine["from_phase"])
				assert.Equal(t, "Finished", logLine["to_phase"])
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var buf bytes.Buffer
			logSub := subscribers.NewLoggerSubscriber("event-logger", zerolog.New(&buf), zerolog.InfoLevel)
			logSub.HandleEvent(tc.event)

			lines := decodeLines(t, &buf)
			require.Len(t, lines, 1)
			assert.Equal(t, "Game event", lines[0]["message"])
			assert.Equal(t, "info", lines[0]["level"])
			assert.Equal(t, "game-1", lines[0]["game_id"])
			assert.Equal(t, "event_logger", lines[0]["subscriber"])
			tc.check(t, lines[0])
		})
	}
}

func TestLoggerSubscriberFilterAndDevMode(t *testing.T) {
	var buf bytes.Buffer
	logSub := subscribers.NewLoggerSubscriber("filtered", zerolog.New(&buf), zerolog.DebugLevel)

	logSub.SetEventFilter([]string{events.TypeGameEnded})
	assert.True(t, logSub.InterestedIn(events.TypeGameEnded))
	assert.False(t, logSub.InterestedIn(events.TypeRoundPlayed))

	logSub.SetEventFilter(nil)
	assert.True(t, logSub.InterestedIn(events.TypeRoundPlayed))

	logSub.SetDevMode(true)
	logSub.HandleEvent(events.NewRoundPlayedEvent("g", 1, core.Rock, core.Paper, core.OutcomePlayerTwo,
		core.Scores{PlayerTwo: 1}))

	lines := decodeLines(t, &buf)
	require.Len(t, lines, 1)
	assert.Equal(t, "debug", lines[0]["level"])

	data, ok := lines[0]["event_data"].(map[string]interface{})
	require.True(t, ok, "dev mode should attach the raw event")
	assert.Equal(t, "rock", data["move_one"])
	assert.Equal(t, "player_two", data["outcome"])
}

func TestLoggerSubscriberUnknownLevelFallsBackToInfo(t *testing.T) {
	var buf bytes.Buffer
	logSub := subscribers.NewLoggerSubscriber("odd", zerolog.New(&buf), zerolog.TraceLevel)
	logSub.HandleEvent(events.NewRoundStartedEvent("g", 1))

	lines := decodeLines(t, &buf)
	require.Len(t, lines, 1)
	assert.Equal(t, "info", lines[0]["level"])
}
