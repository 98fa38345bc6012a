package strategy

import (
	"errors"
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/rs/zerolog"

	"github.com/mitchelldurbincs/rpsls/internal/game/core"
)

var ErrUnknownStrategy = errors.New("unknown strategy")

// Strategy is a move-selection policy. Each player owns one instance.
type Strategy interface {
	// Name identifies the strategy in logs and events
	Name() string

	// SelectMove produces the next move, or core.ErrQuit to end the game
	SelectMove() (core.Move, error)

	// Observe is called after every scored round with this player's move
	// and the opponent's move
	Observe(own, opponent core.Move)
}

// Kind names a built-in strategy
type Kind string

const (
	KindFixed   Kind = "fixed"
	KindRandom  Kind = "random"
	KindHuman   Kind = "human"
	KindReflect Kind = "reflect"
	KindCycle   Kind = "cycle"
)

// Deps carries what the built-in strategies may need at construction
type Deps struct {
	RNG    *rand.Rand
	In     io.Reader
	Out    io.Writer
	Logger zerolog.Logger

	// Prompt and QuitKeyword override the interactive defaults when set
	Prompt      string
	QuitKeyword string
}

// New builds a strategy by kind
func New(kind Kind, deps Deps) (Strategy, error) {
	rng := deps.RNG
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	switch kind {
	case KindFixed:
		return NewDefault(), nil
	case KindRandom:
		return NewRandom(rng), nil
	case KindReflect:
		return NewReflect(rng), nil
	case KindCycle:
		return NewCycle(rng), nil
	case KindHuman:
		if deps.In == nil || deps.Out == nil {
			return nil, fmt.Errorf("human strategy needs console input and output")
		}
		opts := []InteractiveOption{WithLogger(deps.Logger)}
		if deps.Prompt != "" {
			opts = append(opts, WithPrompt(deps.Prompt))
		}
		if deps.QuitKeyword != "" {
			opts = append(opts, WithQuitKeyword(deps.QuitKeyword))
		}
		return NewInteractive(deps.In, deps.Out, opts...), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownStrategy, kind)
	}
}
