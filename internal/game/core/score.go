package core

// Scores is the cumulative score line of a game
type Scores struct {
	PlayerOne int `json:"player_one"`
	PlayerTwo int `json:"player_two"`
	Ties      int `json:"ties"`
}

// Record adds one round's outcome
func (s *Scores) Record(o Outcome) {
	switch o {
	case OutcomePlayerOne:
		s.PlayerOne++
	case OutcomePlayerTwo:
		s.PlayerTwo++
	default:
		s.Ties++
	}
}

// Rounds is the number of scored rounds
func (s Scores) Rounds() int {
	return s.PlayerOne + s.PlayerTwo + s.Ties
}

// Leader returns the side with the higher score, or OutcomeTie when level
func (s Scores) Leader() Outcome {
	switch {
	case s.PlayerOne > s.PlayerTwo:
		return OutcomePlayerOne
	case s.PlayerTwo > s.PlayerOne:
		return OutcomePlayerTwo
	default:
		return OutcomeTie
	}
}
