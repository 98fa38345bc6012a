package states

import "fmt"

// GamePhase represents the current phase of a game
type GamePhase int

const (
	// PhasePlaying - rounds are being played
	PhasePlaying GamePhase = iota

	// PhaseFinished - a player quit and the final score is settled
	PhaseFinished
)

// String returns the string representation of a GamePhase
func (p GamePhase) String() string {
	switch p {
	case PhasePlaying:
		return "Playing"
	case PhaseFinished:
		return "Finished"
	default:
		return fmt.Sprintf("Unknown(%d)", int(p))
	}
}

// IsTerminal returns true if the phase represents a terminal state
func (p GamePhase) IsTerminal() bool {
	return p == PhaseFinished
}

// CanPlayRounds returns true if rounds may be played in this phase
func (p GamePhase) CanPlayRounds() bool {
	return p == PhasePlaying
}

// AllowedTransitions returns the valid phases this phase can transition to
func (p GamePhase) AllowedTransitions() []GamePhase {
	switch p {
	case PhasePlaying:
		return []GamePhase{PhaseFinished}
	default:
		return []GamePhase{}
	}
}

// CanTransitionTo checks if a transition from this phase to the target phase is allowed
func (p GamePhase) CanTransitionTo(target GamePhase) bool {
	for _, phase := range p.AllowedTransitions() {
		if phase == target {
			return true
		}
	}
	return false
}
