package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBeats_Table(t *testing.T) {
	wins := map[Move][]Move{
		Rock:     {Scissors, Lizard},
		Paper:    {Rock, Spock},
		Scissors: {Paper, Lizard},
		Lizard:   {Spock, Paper},
		Spock:    {Rock, Scissors},
	}

	count := 0
	for _, a := range AllMoves() {
		for _, b := range AllMoves() {
			expected := false
			for _, v := range wins[a] {
				if v == b {
					expected = true
				}
			}
			assert.Equal(t, expected, Beats(a, b), "%s vs %s", a, b)
			if Beats(a, b) {
				count++
			}
		}
	}
	assert.Equal(t, 10, count)
}

func TestBeats_ExactlyOneRelationHolds(t *testing.T) {
	for _, a := range AllMoves() {
		for _, b := range AllMoves() {
			relations := 0
			if Beats(a, b) {
				relations++
			}
			if Beats(b, a) {
				relations++
			}
			if a == b {
				relations++
			}
			assert.Equal(t, 1, relations, "%s vs %s", a, b)
		}
	}
}

func TestBeats_InvalidMoves(t *testing.T) {
	assert.False(t, Beats(MoveNone, Rock))
	assert.False(t, Beats(Rock, MoveNone))
	assert.False(t, Beats(Move(99), Spock))
}

func TestResolve(t *testing.T) {
	tests := []struct {
		p1, p2   Move
		expected Outcome
	}{
		{Rock, Scissors, OutcomePlayerOne},
		{Paper, Paper, OutcomeTie},
		{Lizard, Spock, OutcomePlayerOne},
		{Spock, Rock, OutcomePlayerOne},
		{Scissors, Rock, OutcomePlayerTwo},
		{Spock, Lizard, OutcomePlayerTwo},
	}

	for _, tt := range tests {
		t.Run(tt.p1.String()+"_vs_"+tt.p2.String(), func(t *testing.T) {
			assert.Equal(t, tt.expected, Resolve(tt.p1, tt.p2))
		})
	}
}

func TestOutcome_String(t *testing.T) {
	assert.Equal(t, "tie", OutcomeTie.String())
	assert.Equal(t, "player_one", OutcomePlayerOne.String())
	assert.Equal(t, "player_two", OutcomePlayerTwo.String())
	assert.Equal(t, "Unknown(7)", Outcome(7).String())
}
