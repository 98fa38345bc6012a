package testutil

import (
	"github.com/mitchelldurbincs/rpsls/internal/game/core"
)

// Observation is one call to Observe recorded by ScriptedStrategy
type Observation struct {
	Own      core.Move
	Opponent core.Move
}

// ScriptedStrategy replays a fixed list of moves and then quits. A non-nil
// Err is returned instead of quitting once the script runs out.
type ScriptedStrategy struct {
	Moves        []core.Move
	Err          error
	Calls        int
	Observations []Observation
}

func NewScriptedStrategy(moves ...core.Move) *ScriptedStrategy {
	return &ScriptedStrategy{Moves: moves}
}

func (s *ScriptedStrategy) Name() string {
	return "scripted"
}

func (s *ScriptedStrategy) SelectMove() (core.Move, error) {
	s.Calls++
	if s.Calls > len(s.Moves) {
		if s.Err != nil {
			return core.MoveNone, s.Err
		}
		return core.MoveNone, core.ErrQuit
	}
	return s.Moves[s.Calls-1], nil
}

func (s *ScriptedStrategy) Observe(own, opponent core.Move) {
	s.Observations = append(s.Observations, Observation{Own: own, Opponent: opponent})
}
