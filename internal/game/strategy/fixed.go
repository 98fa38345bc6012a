package strategy

import "github.com/mitchelldurbincs/rpsls/internal/game/core"

// Fixed always plays the same move
type Fixed struct {
	move core.Move
}

func NewFixed(move core.Move) *Fixed {
	return &Fixed{move: move}
}

// NewDefault returns the reference strategy, which always plays rock
func NewDefault() *Fixed {
	return NewFixed(core.Rock)
}

func (f *Fixed) Name() string {
	return string(KindFixed)
}

func (f *Fixed) SelectMove() (core.Move, error) {
	return f.move, nil
}

func (f *Fixed) Observe(own, opponent core.Move) {}
