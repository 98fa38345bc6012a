package strategy

import (
	"math/rand"

	"github.com/mitchelldurbincs/rpsls/internal/game/core"
)

// Random samples a move uniformly on every call
type Random struct {
	rng *rand.Rand
}

func NewRandom(rng *rand.Rand) *Random {
	return &Random{rng: rng}
}

func (r *Random) Name() string {
	return string(KindRandom)
}

func (r *Random) SelectMove() (core.Move, error) {
	return randomMove(r.rng), nil
}

func (r *Random) Observe(own, opponent core.Move) {}

func randomMove(rng *rand.Rand) core.Move {
	return core.MoveAt(rng.Intn(core.NumMoves))
}
