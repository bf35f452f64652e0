package apperror

import "errors"

// turn discipline
var (
	ErrGameAlreadyOver = errors.New("game is already over")
	ErrNotYourTurn     = errors.New("it's not your turn")
	ErrUnknownPlayer   = errors.New("unknown player")
)

// rule rejections
var (
	ErrIllegalDestination = errors.New("destination is not a legal move")
	ErrOutOfRange         = errors.New("wall anchor is out of range")
	ErrOverlap            = errors.New("wall overlaps an existing wall")
	ErrCrossing           = errors.New("wall crosses an existing wall")
	ErrNoWallsLeft        = errors.New("no walls left")
	ErrBlocksPath         = errors.New("wall blocks the last path to a goal row")
)

// caller bugs and storage
var (
	ErrOutOfBounds     = errors.New("coordinate is outside the grid")
	ErrNotAdjacent     = errors.New("cells are not adjacent")
	ErrInvalidState    = errors.New("invalid game state")
	ErrSessionNotFound = errors.New("session not found")
)
