package apperror

import "errors"

var (
	ErrIllegalMove      = errors.New("illegal move")
	ErrInvalidInput     = errors.New("input is not a number")
	ErrInvalidBoardSize = errors.New("invalid board size")
	ErrInputClosed      = errors.New("input closed before the game finished")
	ErrGameFinished     = errors.New("game is already finished")
)
