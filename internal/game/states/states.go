package states

import (
	"fmt"
	"time"
)

// PlayingState represents active rounds
type PlayingState struct{}

func NewPlayingState() State {
	return &PlayingState{}
}

func (s *PlayingState) Phase() GamePhase {
	return PhasePlaying
}

func (s *PlayingState) Enter(ctx *GameContext) error {
	ctx.StartTime = time.Now()
	ctx.Logger.Info().
		Time("start_time", ctx.StartTime).
		Msg("Game started")
	return nil
}

func (s *PlayingState) Exit(ctx *GameContext) error {
	ctx.Logger.Debug().
		Int("round", ctx.Round).
		Msg("Leaving playing state")
	return nil
}

func (s *PlayingState) Validate(ctx *GameContext) error {
	if ctx.Round < 1 {
		return fmt.Errorf("round counter must start at 1, got %d", ctx.Round)
	}
	return nil
}

// FinishedState represents a completed game
type FinishedState struct{}

func NewFinishedState() State {
	return &FinishedState{}
}

func (s *FinishedState) Phase() GamePhase {
	return PhaseFinished
}

func (s *FinishedState) Enter(ctx *GameContext) error {
	ctx.EndTime = time.Now()
	logEvent := ctx.Logger.Info()
	if ctx.Error != nil {
		logEvent = ctx.Logger.Error().Err(ctx.Error)
	}
	logEvent.
		Str("reason", ctx.EndReason).
		Dur("game_duration", ctx.GetElapsedTime()).
		Msg("Game finished")
	return nil
}

func (s *FinishedState) Exit(ctx *GameContext) error {
	return fmt.Errorf("finished state is terminal")
}

func (s *FinishedState) Validate(ctx *GameContext) error {
	if ctx.EndReason == "" {
		return fmt.Errorf("finished state requires an end reason")
	}
	return nil
}
