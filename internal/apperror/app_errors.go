package apperror

import "errors"

var (
	ErrInvalidMove  = errors.New("invalid move")
	ErrNoLegalMove  = errors.New("no legal move")
	ErrGameFinished = errors.New("game is already finished")
	ErrNotYourTurn  = errors.New("it's not your turn")
)
