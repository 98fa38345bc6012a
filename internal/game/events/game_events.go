package events

import (
	"time"

	"github.com/mitchelldurbincs/rpsls/internal/game/core"
)

// Event type constants
const (
	TypeGameStarted     = "game.started"
	TypeRoundStarted    = "round.started"
	TypeRoundPlayed     = "round.played"
	TypeGameEnded       = "game.ended"
	TypeStateTransition = "state.transition"
)

// GameStartedEvent is published before the first round
type GameStartedEvent struct {
	BaseEvent
	PlayerOne string `json:"player_one"`
	PlayerTwo string `json:"player_two"`
}

func NewGameStartedEvent(gameID, playerOne, playerTwo string) *GameStartedEvent {
	return &GameStartedEvent{
		BaseEvent: newBaseEvent(TypeGameStarted, gameID),
		PlayerOne: playerOne,
		PlayerTwo: playerTwo,
	}
}

// RoundStartedEvent is published before the players are asked for moves
type RoundStartedEvent struct {
	BaseEvent
	Round int `json:"round"`
}

func NewRoundStartedEvent(gameID string, round int) *RoundStartedEvent {
	return &RoundStartedEvent{
		BaseEvent: newBaseEvent(TypeRoundStarted, gameID),
		Round:     round,
	}
}

// RoundPlayedEvent is published after each scored round
type RoundPlayedEvent struct {
	BaseEvent
	Round   int          `json:"round"`
	MoveOne core.Move    `json:"move_one"`
	MoveTwo core.Move    `json:"move_two"`
	Outcome core.Outcome `json:"outcome"`
	Scores  core.Scores  `json:"scores"`
}

func NewRoundPlayedEvent(gameID string, round int, moveOne, moveTwo core.Move, outcome core.Outcome, scores core.Scores) *RoundPlayedEvent {
	return &RoundPlayedEvent{
		BaseEvent: newBaseEvent(TypeRoundPlayed, gameID),
		Round:     round,
		MoveOne:   moveOne,
		MoveTwo:   moveTwo,
		Outcome:   outcome,
		Scores:    scores,
	}
}

// GameEndedEvent is published once the game reaches Finished
type GameEndedEvent struct {
	BaseEvent
	RoundsPlayed int           `json:"rounds_played"`
	Scores       core.Scores   `json:"scores"`
	Winner       core.Outcome  `json:"winner"`
	Duration     time.Duration `json:"duration"`
	Reason       string        `json:"reason"`
}

func NewGameEndedEvent(gameID string, rounds int, scores core.Scores, winner core.Outcome, duration time.Duration, reason string) *GameEndedEvent {
	return &GameEndedEvent{
		BaseEvent:    newBaseEvent(TypeGameEnded, gameID),
		RoundsPlayed: rounds,
		Scores:       scores,
		Winner:       winner,
		Duration:     duration,
		Reason:       reason,
	}
}

// StateTransitionEvent is published when the game changes phase
type StateTransitionEvent struct {
	BaseEvent
	FromPhase string `json:"from_phase"`
	ToPhase   string `json:"to_phase"`
	Reason    string `json:"reason"`
}

func NewStateTransitionEvent(gameID, fromPhase, toPhase, reason string) *StateTransitionEvent {
	return &StateTransitionEvent{
		BaseEvent: newBaseEvent(TypeStateTransition, gameID),
		FromPhase: fromPhase,
		ToPhase:   toPhase,
		Reason:    reason,
	}
}
