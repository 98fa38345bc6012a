package core

import "fmt"

// beatsTable maps each move to the two moves it defeats
var beatsTable = map[Move][2]Move{
	Rock:     {Scissors, Lizard},
	Paper:    {Rock, Spock},
	Scissors: {Paper, Lizard},
	Lizard:   {Spock, Paper},
	Spock:    {Rock, Scissors},
}

// Beats reports whether a defeats b
func Beats(a, b Move) bool {
	victims, ok := beatsTable[a]
	if !ok {
		return false
	}
	return victims[0] == b || victims[1] == b
}

// Outcome is the result of a round or a game from the table's point of view
type Outcome int

const (
	OutcomeTie Outcome = iota
	OutcomePlayerOne
	OutcomePlayerTwo
)

func (o Outcome) String() string {
	switch o {
	case OutcomeTie:
		return "tie"
	case OutcomePlayerOne:
		return "player_one"
	case OutcomePlayerTwo:
		return "player_two"
	default:
		return fmt.Sprintf("Unknown(%d)", int(o))
	}
}

// Resolve decides a single round between player one's and player two's moves
func Resolve(p1, p2 Move) Outcome {
	switch {
	case p1 == p2:
		return OutcomeTie
	case Beats(p1, p2):
		return OutcomePlayerOne
	default:
		return OutcomePlayerTwo
	}
}

// MarshalText encodes an outcome by name
func (o Outcome) MarshalText() ([]byte, error) {
	return []byte(o.String()), nil
}
