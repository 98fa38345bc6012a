package subscribers

import (
	"encoding/json"

	"github.com/rs/zerolog"

	"github.com/mitchelldurbincs/rpsls/internal/game/events"
)

// LoggerSubscriber logs events to structured logs
type LoggerSubscriber struct {
	id              string
	logger          zerolog.Logger
	logLevel        zerolog.Level
	eventTypeFilter map[string]bool // If non-nil, only log these event types
	devMode         bool            // If true, log full event details
}

// NewLoggerSubscriber creates a new logger subscriber
func NewLoggerSubscriber(id string, logger zerolog.Logger, logLevel zerolog.Level) *LoggerSubscriber {
	return &LoggerSubscriber{
		id:       id,
		logger:   logger.With().Str("subscriber", "event_logger").Logger(),
		logLevel: logLevel,
	}
}

// ID returns the subscriber's unique identifier
func (ls *LoggerSubscriber) ID() string {
	return ls.id
}

// SetEventFilter sets which event types to log (nil means log all)
func (ls *LoggerSubscriber) SetEventFilter(eventTypes []string) {
	if len(eventTypes) == 0 {
		ls.eventTypeFilter = nil
		return
	}

	ls.eventTypeFilter = make(map[string]bool)
	for _, eventType := range eventTypes {
		ls.eventTypeFilter[eventType] = true
	}
}

// SetDevMode enables or disables development mode logging
func (ls *LoggerSubscriber) SetDevMode(enabled bool) {
	ls.devMode = enabled
}

// InterestedIn returns true if the subscriber wants to receive this event type
func (ls *LoggerSubscriber) InterestedIn(eventType string) bool {
	if ls.eventTypeFilter == nil {
		return true
	}
	return ls.eventTypeFilter[eventType]
}

// HandleEvent processes an event by logging it
func (ls *LoggerSubscriber) HandleEvent(event events.Event) {
	logEvent := ls.logger.WithLevel(ls.level()).
		Str("event_type", event.Type()).
		Str("game_id", event.GameID()).
		Time("timestamp", event.Timestamp())

	switch e := event.(type) {
	case *events.GameStartedEvent:
		logEvent.
			Str("player_one", e.PlayerOne).
			Str("player_two", e.PlayerTwo)

	case *events.RoundStartedEvent:
		logEvent.Int("round", e.Round)

	case *events.RoundPlayedEvent:
		logEvent.
			Int("round", e.Round).
			Stringer("move_one", e.MoveOne).
			Stringer("move_two", e.MoveTwo).
			Stringer("outcome", e.Outcome).
			Int("score_one", e.Scores.PlayerOne).
			Int("score_two", e.Scores.PlayerTwo).
			Int("ties", e.Scores.Ties)

	case *events.GameEndedEvent:
		logEvent.
			Int("rounds_played", e.RoundsPlayed).
			Int("score_one", e.Scores.PlayerOne).
			Int("score_two", e.Scores.PlayerTwo).
			Stringer("winner", e.Winner).
			Dur("duration", e.Duration).
			Str("reason", e.Reason)

	case *events.StateTransitionEvent:
		logEvent.
			Str("from_phase", e.FromPhase).
			Str("to_phase", e.ToPhase).
			Str("reason", e.Reason)
	}

	if ls.devMode {
		if jsonData, err := json.Marshal(event); err == nil {
			logEvent.RawJSON("event_data", jsonData)
		}
	}

	logEvent.Msg("Game event")
}

func (ls *LoggerSubscriber) level() zerolog.Level {
	switch ls.logLevel {
	case zerolog.DebugLevel, zerolog.InfoLevel, zerolog.WarnLevel, zerolog.ErrorLevel:
		return ls.logLevel
	default:
		return zerolog.InfoLevel
	}
}
