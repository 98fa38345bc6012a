package core

import "errors"

var (
	ErrQuit        = errors.New("player quit")
	ErrGameOver    = errors.New("game is over")
	ErrUnknownMove = errors.New("unknown move")
)
