package entity

import (
	"time"

	"github.com/rocketscienceinc/quoridor-backend/internal/quoridor"
)

// Session is one hosted game and its bookkeeping.
type Session struct {
	ID        string         `json:"id"`
	Game      *quoridor.Game `json:"game"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
}

func NewSession(id string, now time.Time) *Session {
	return &Session{
		ID:        id,
		Game:      quoridor.NewGame(),
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func (that *Session) Touch(now time.Time) {
	that.UpdatedAt = now
}

func (that *Session) IsFinished() bool {
	return that.Game.IsOver()
}
