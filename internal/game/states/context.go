package states

import (
	"time"

	"github.com/rs/zerolog"
)

// GameContext provides game-specific information to states
type GameContext struct {
	// GameID uniquely identifies this game instance
	GameID string

	// Logger for state-specific logging
	Logger zerolog.Logger

	// Round is the number of the round in progress
	Round int

	// StartTime is when PhasePlaying was entered
	StartTime time.Time

	// EndTime is when PhaseFinished was entered
	EndTime time.Time

	// EndReason explains why the game finished
	EndReason string

	// Error holds the strategy error that ended the game, if any
	Error error
}

// NewGameContext creates a new game context
func NewGameContext(gameID string, logger zerolog.Logger) *GameContext {
	return &GameContext{
		GameID: gameID,
		Logger: logger.With().Str("game_id", gameID).Logger(),
		Round:  1,
	}
}

// GetElapsedTime returns the time spent playing
func (gc *GameContext) GetElapsedTime() time.Duration {
	if gc.StartTime.IsZero() {
		return 0
	}
	if gc.EndTime.IsZero() {
		return time.Since(gc.StartTime)
	}
	return gc.EndTime.Sub(gc.StartTime)
}
