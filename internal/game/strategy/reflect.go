package strategy

import (
	"math/rand"

	"github.com/mitchelldurbincs/rpsls/internal/game/core"
)

// Reflect opens with a random move, then replays whatever the opponent
// played in the previous round.
type Reflect struct {
	next core.Move
}

func NewReflect(rng *rand.Rand) *Reflect {
	return &Reflect{next: randomMove(rng)}
}

func (r *Reflect) Name() string {
	return string(KindReflect)
}

func (r *Reflect) SelectMove() (core.Move, error) {
	return r.next, nil
}

func (r *Reflect) Observe(own, opponent core.Move) {
	if opponent.IsValid() {
		r.next = opponent
	}
}
