package subscribers

import (
	"fmt"
	"io"

	"github.com/mitchelldurbincs/rpsls/internal/game/core"
	"github.com/mitchelldurbincs/rpsls/internal/game/events"
)

// ConsoleReporter prints the game as it happens for the human at the console
type ConsoleReporter struct {
	id  string
	out io.Writer
	err error
}

func NewConsoleReporter(id string, out io.Writer) *ConsoleReporter {
	return &ConsoleReporter{id: id, out: out}
}

func (c *ConsoleReporter) ID() string {
	return c.id
}

func (c *ConsoleReporter) InterestedIn(eventType string) bool {
	switch eventType {
	case events.TypeGameStarted, events.TypeRoundStarted, events.TypeRoundPlayed, events.TypeGameEnded:
		return true
	}
	return false
}

// Err returns the first write error, if any
func (c *ConsoleReporter) Err() error {
	return c.err
}

func (c *ConsoleReporter) HandleEvent(event events.Event) {
	switch e := event.(type) {
	case *events.GameStartedEvent:
		c.printf("Game start!\n")

	case *events.RoundStartedEvent:
		c.printf("Round %d:\n", e.Round)

	case *events.RoundPlayedEvent:
		c.printf("Player 1: %s  Player 2: %s\n", e.MoveOne, e.MoveTwo)
		c.printf("%s\n", roundVerdict(e.Outcome))
		c.printf("Score: Player 1: %d  Player 2: %d\n", e.Scores.PlayerOne, e.Scores.PlayerTwo)

	case *events.GameEndedEvent:
		c.printf("Scores:-\n")
		c.printf("Player 1: %d Player 2: %d\n", e.Scores.PlayerOne, e.Scores.PlayerTwo)
		c.printf("%s\n", gameVerdict(e.Winner))
		c.printf("Game over!\n")
	}
}

func (c *ConsoleReporter) printf(format string, args ...interface{}) {
	if c.err != nil {
		return
	}
	if _, err := fmt.Fprintf(c.out, format, args...); err != nil {
		c.err = err
	}
}

func roundVerdict(o core.Outcome) string {
	switch o {
	case core.OutcomePlayerOne:
		return "** PLAYER ONE WINS THIS ROUND. **"
	case core.OutcomePlayerTwo:
		return "** PLAYER TWO WINS THIS ROUND. **"
	default:
		return "** ROUND TIE **"
	}
}

func gameVerdict(o core.Outcome) string {
	switch o {
	case core.OutcomePlayerOne:
		return "*** PLAYER ONE WINS THE GAME ***"
	case core.OutcomePlayerTwo:
		return "*** PLAYER TWO WINS THE GAME ***"
	default:
		return "*** GAME TIE ***"
	}
}
