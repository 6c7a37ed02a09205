package apperror

import "errors"

var (
	ErrGameFinished     = errors.New("game is already finished")
	ErrCellOccupied     = errors.New("cell is already occupied")
	ErrInvalidCell      = errors.New("invalid cell coordinates")
	ErrNoAvailableMoves = errors.New("no available moves")
	ErrBadParameters    = errors.New("bad parameters")
	ErrUnknownPlayer    = errors.New("unknown player")
)
