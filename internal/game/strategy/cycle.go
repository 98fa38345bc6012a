package strategy

import (
	"math/rand"

	"github.com/mitchelldurbincs/rpsls/internal/game/core"
)

// Cycle walks the move set in canonical order from a random starting point
type Cycle struct {
	idx int
}

func NewCycle(rng *rand.Rand) *Cycle {
	return &Cycle{idx: rng.Intn(core.NumMoves)}
}

func (c *Cycle) Name() string {
	return string(KindCycle)
}

func (c *Cycle) SelectMove() (core.Move, error) {
	m := core.MoveAt(c.idx)
	c.idx = (c.idx + 1) % core.NumMoves
	return m, nil
}

// Observe is ignored; the sequence does not depend on the opponent.
func (c *Cycle) Observe(own, opponent core.Move) {}
