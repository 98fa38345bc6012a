package core

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
)

// Move is one of the five game symbols
type Move int

const (
	MoveNone Move = iota
	Rock
	Paper
	Scissors
	Lizard
	Spock
)

// NumMoves is the size of the move set
const NumMoves = 5

var allMoves = [NumMoves]Move{Rock, Paper, Scissors, Lizard, Spock}

var moveNames = map[Move]string{
	Rock:     "rock",
	Paper:    "paper",
	Scissors: "scissors",
	Lizard:   "lizard",
	Spock:    "spock",
}

// AllMoves returns every move in canonical order
func AllMoves() []Move {
	moves := make([]Move, NumMoves)
	copy(moves, allMoves[:])
	return moves
}

// MoveAt returns the move at index i of the canonical order, wrapping around
func MoveAt(i int) Move {
	i %= NumMoves
	if i < 0 {
		i += NumMoves
	}
	return allMoves[i]
}

// IsValid reports whether m is one of the five symbols
func (m Move) IsValid() bool {
	return m >= Rock && m <= Spock
}

func (m Move) String() string {
	if name, ok := moveNames[m]; ok {
		return name
	}
	return fmt.Sprintf("Unknown(%d)", int(m))
}

// Fold normalizes console input for case-insensitive matching
func Fold(s string) string {
	return cases.Fold().String(strings.TrimSpace(s))
}

// ParseMove converts a move name to a Move, ignoring case and surrounding space
func ParseMove(s string) (Move, error) {
	token := Fold(s)
	for _, m := range allMoves {
		if moveNames[m] == token {
			return m, nil
		}
	}
	return MoveNone, fmt.Errorf("%w: %q", ErrUnknownMove, s)
}

// MarshalText encodes a move by name
func (m Move) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}
