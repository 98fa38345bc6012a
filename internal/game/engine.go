package game

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/mitchelldurbincs/rpsls/internal/game/core"
	"github.com/mitchelldurbincs/rpsls/internal/game/events"
	"github.com/mitchelldurbincs/rpsls/internal/game/states"
	"github.com/mitchelldurbincs/rpsls/internal/game/strategy"
)

const (
	reasonPlayerQuit    = "player quit"
	reasonStrategyError = "strategy error"
)

// RoundResult describes one scored round
type RoundResult struct {
	Round   int
	MoveOne core.Move
	MoveTwo core.Move
	Outcome core.Outcome
	Scores  core.Scores
}

// Summary is the final report of a game
type Summary struct {
	GameID       string
	RoundsPlayed int
	Scores       core.Scores
	Winner       core.Outcome
}

// Game plays rounds between two strategies and keeps the score
type Game struct {
	id      string
	p1      strategy.Strategy
	p2      strategy.Strategy
	scores  core.Scores
	started bool

	ctx     *states.GameContext
	machine *states.StateMachine
	bus     events.Publisher
	logger  zerolog.Logger
}

// Option configures a Game
type Option func(*Game)

func WithLogger(logger zerolog.Logger) Option {
	return func(g *Game) {
		g.logger = logger
	}
}

// WithEventBus sets where game events are published
func WithEventBus(bus events.Publisher) Option {
	return func(g *Game) {
		g.bus = bus
	}
}

func WithGameID(id string) Option {
	return func(g *Game) {
		g.id = id
	}
}

// NewGame creates a game between p1 and p2. The strategies are owned by
// the game from here on.
func NewGame(p1, p2 strategy.Strategy, opts ...Option) *Game {
	g := &Game{
		id:     uuid.NewString(),
		p1:     p1,
		p2:     p2,
		logger: zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(g)
	}

	g.ctx = states.NewGameContext(g.id, g.logger)
	g.logger = g.ctx.Logger
	g.machine = states.NewStateMachine(g.ctx, g.bus)
	return g
}

func (g *Game) ID() string {
	return g.id
}

// Round returns the number of the next round to be played
func (g *Game) Round() int {
	return g.ctx.Round
}

func (g *Game) Scores() core.Scores {
	return g.scores
}

func (g *Game) Phase() states.GamePhase {
	return g.machine.CurrentPhase()
}

// Winner returns the side with the highest score so far
func (g *Game) Winner() core.Outcome {
	return g.scores.Leader()
}

func (g *Game) Summary() Summary {
	return Summary{
		GameID:       g.id,
		RoundsPlayed: g.scores.Rounds(),
		Scores:       g.scores,
		Winner:       g.Winner(),
	}
}

// History returns the phase transitions of this game
func (g *Game) History() []states.Transition {
	return g.machine.GetHistory()
}

// Play runs rounds until a player quits. Quitting is a normal end and
// returns a nil error.
func (g *Game) Play() (Summary, error) {
	for {
		_, err := g.PlayRound()
		if err == nil {
			continue
		}
		if errors.Is(err, core.ErrQuit) {
			return g.Summary(), nil
		}
		return g.Summary(), err
	}
}

// PlayRound plays a single round. It returns core.ErrQuit when a player
// quits, in which case the round is not scored and the game is finished.
func (g *Game) PlayRound() (RoundResult, error) {
	if !g.machine.CurrentPhase().CanPlayRounds() {
		return RoundResult{}, core.ErrGameOver
	}
	if err := g.start(); err != nil {
		return RoundResult{}, err
	}

	round := g.ctx.Round
	g.publish(events.NewRoundStartedEvent(g.id, round))

	m1, err := g.selectMove(1, g.p1)
	if err != nil {
		return RoundResult{}, g.finish(err)
	}
	m2, err := g.selectMove(2, g.p2)
	if err != nil {
		return RoundResult{}, g.finish(err)
	}

	g.p1.Observe(m1, m2)
	g.p2.Observe(m2, m1)

	outcome := core.Resolve(m1, m2)
	g.scores.Record(outcome)

	result := RoundResult{
		Round:   round,
		MoveOne: m1,
		MoveTwo: m2,
		Outcome: outcome,
		Scores:  g.scores,
	}

	g.logger.Debug().
		Int("round", round).
		Stringer("move_one", m1).
		Stringer("move_two", m2).
		Stringer("outcome", outcome).
		Msg("Round resolved")
	g.publish(events.NewRoundPlayedEvent(g.id, round, m1, m2, outcome, g.scores))

	g.ctx.Round++
	return result, nil
}

func (g *Game) start() error {
	if g.started {
		return nil
	}
	if err := g.machine.Start(); err != nil {
		return fmt.Errorf("start game: %w", err)
	}
	g.started = true
	g.publish(events.NewGameStartedEvent(g.id, g.p1.Name(), g.p2.Name()))
	return nil
}

func (g *Game) selectMove(player int, s strategy.Strategy) (core.Move, error) {
	m, err := s.SelectMove()
	if err != nil {
		if errors.Is(err, core.ErrQuit) {
			g.logger.Info().Int("player", player).Int("round", g.ctx.Round).Msg("Player quit")
			return core.MoveNone, err
		}
		return core.MoveNone, fmt.Errorf("player %d (%s): %w", player, s.Name(), err)
	}
	if !m.IsValid() {
		return core.MoveNone, fmt.Errorf("player %d (%s): %w: %s", player, s.Name(), core.ErrUnknownMove, m)
	}
	return m, nil
}

// finish moves the game to Finished and returns the error the caller
// should see.
func (g *Game) finish(cause error) error {
	reason := reasonPlayerQuit
	if !errors.Is(cause, core.ErrQuit) {
		reason = reasonStrategyError
		g.ctx.Error = cause
	}

	if err := g.machine.TransitionTo(states.PhaseFinished, reason); err != nil {
		return fmt.Errorf("finish game: %w", errors.Join(cause, err))
	}

	g.publish(events.NewGameEndedEvent(
		g.id,
		g.scores.Rounds(),
		g.scores,
		g.Winner(),
		g.ctx.GetElapsedTime(),
		reason,
	))
	return cause
}

func (g *Game) publish(event events.Event) {
	if g.bus != nil {
		g.bus.Publish(event)
	}
}
