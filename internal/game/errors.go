package game

import "errors"

var (
	ErrInvalidConfig   = errors.New("invalid configuration")
	ErrOutOfTurn       = errors.New("not your turn or player invalid")
	ErrGameOver        = errors.New("game already finished")
	ErrIllegalMove     = errors.New("illegal move")
	ErrNoWallsLeft     = errors.New("no walls left")
	ErrNoLegalAction   = errors.New("no legal action available")
	ErrCorruptSnapshot = errors.New("corrupt snapshot")
	ErrUnknownAction   = errors.New("unknown action")
)
