package rest

import (
	"time"

	"github.com/rocketscienceinc/quoridor-backend/internal/entity"
	"github.com/rocketscienceinc/quoridor-backend/internal/quoridor"
)

type moveRequest struct {
	Player quoridor.PlayerID `json:"player" binding:"required"`
	To     *quoridor.Cell    `json:"to" binding:"required"`
}

type wallRequest struct {
	Player      quoridor.PlayerID    `json:"player" binding:"required"`
	Orientation quoridor.Orientation `json:"orientation" binding:"required,oneof=h v"`
	Anchor      *quoridor.Cell       `json:"anchor" binding:"required"`
}

type sessionResponse struct {
	ID        string            `json:"id"`
	CreatedAt time.Time         `json:"created_at"`
	UpdatedAt time.Time         `json:"updated_at"`
	Board     quoridor.Snapshot `json:"board"`
}

func newSessionResponse(session *entity.Session) sessionResponse {
	return sessionResponse{
		ID:        session.ID,
		CreatedAt: session.CreatedAt,
		UpdatedAt: session.UpdatedAt,
		Board:     session.Game.Snapshot(),
	}
}

type movesResponse struct {
	Player quoridor.PlayerID `json:"player"`
	Moves  []quoridor.Cell   `json:"moves"`
}

type errorResponse struct {
	Error string `json:"error"`
}
