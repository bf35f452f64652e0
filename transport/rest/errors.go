package rest

import (
	"errors"
	"net/http"

	"github.com/rocketscienceinc/quoridor-backend/internal/apperror"
)

var statusByError = []struct {
	err    error
	status int
}{
	{apperror.ErrSessionNotFound, http.StatusNotFound},

	// a broken stored record also wraps the rule error that exposed it
	{apperror.ErrInvalidState, http.StatusInternalServerError},

	{apperror.ErrGameAlreadyOver, http.StatusConflict},
	{apperror.ErrNotYourTurn, http.StatusConflict},

	{apperror.ErrIllegalDestination, http.StatusUnprocessableEntity},
	{apperror.ErrOutOfRange, http.StatusUnprocessableEntity},
	{apperror.ErrOverlap, http.StatusUnprocessableEntity},
	{apperror.ErrCrossing, http.StatusUnprocessableEntity},
	{apperror.ErrNoWallsLeft, http.StatusUnprocessableEntity},
	{apperror.ErrBlocksPath, http.StatusUnprocessableEntity},

	{apperror.ErrUnknownPlayer, http.StatusBadRequest},
	{apperror.ErrOutOfBounds, http.StatusBadRequest},
	{apperror.ErrNotAdjacent, http.StatusBadRequest},
}

// statusFor maps a use case error to a response status; anything unknown is a 500.
func statusFor(err error) int {
	for _, entry := range statusByError {
		if errors.Is(err, entry.err) {
			return entry.status
		}
	}

	return http.StatusInternalServerError
}
