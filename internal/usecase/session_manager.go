package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/rocketscienceinc/quoridor-backend/internal/entity"
	"github.com/rocketscienceinc/quoridor-backend/internal/quoridor"
)

type sessionRepo interface {
	CreateOrUpdate(ctx context.Context, session *entity.Session) error
	GetByID(ctx context.Context, id string) (*entity.Session, error)
	DeleteByID(ctx context.Context, id string) error
}

type sessionLocker interface {
	Lock(ctx context.Context, sessionID string) (func(context.Context) error, error)
}

// SessionManager hosts games: it loads a session, applies one action to its
// game under the session lock and stores the result.
type SessionManager struct {
	logger *slog.Logger
	repo   sessionRepo
	locker sessionLocker

	now   func() time.Time
	newID func() string
}

func NewSessionManager(logger *slog.Logger, repo sessionRepo, locker sessionLocker) *SessionManager {
	return &SessionManager{
		logger: logger.With("component", "session_manager"),
		repo:   repo,
		locker: locker,

		now:   time.Now,
		newID: uuid.NewString,
	}
}

func (that *SessionManager) NewSession(ctx context.Context) (*entity.Session, error) {
	session := entity.NewSession(that.newID(), that.now())

	if err := that.repo.CreateOrUpdate(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	that.logger.Info("session created", "sessionID", session.ID)

	return session, nil
}

func (that *SessionManager) GetSession(ctx context.Context, id string) (*entity.Session, error) {
	session, err := that.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get session: %w", err)
	}

	return session, nil
}

// LegalMoves is read-only and does not take the lock.
func (that *SessionManager) LegalMoves(ctx context.Context, id string, player quoridor.PlayerID) ([]quoridor.Cell, error) {
	session, err := that.GetSession(ctx, id)
	if err != nil {
		return nil, err
	}

	moves, err := session.Game.LegalMoves(player)
	if err != nil {
		return nil, fmt.Errorf("failed to list moves: %w", err)
	}

	return moves, nil
}

func (that *SessionManager) MoveToken(ctx context.Context, id string, player quoridor.PlayerID, dest quoridor.Cell) (*entity.Session, error) {
	return that.apply(ctx, id, "move", func(game *quoridor.Game) error {
		return game.MoveToken(player, dest)
	})
}

func (that *SessionManager) PlaceWall(
	ctx context.Context, id string, player quoridor.PlayerID, orientation quoridor.Orientation, anchor quoridor.Cell,
) (*entity.Session, error) {
	return that.apply(ctx, id, "wall", func(game *quoridor.Game) error {
		return game.PlaceWall(player, orientation, anchor)
	})
}

func (that *SessionManager) DeleteSession(ctx context.Context, id string) error {
	if err := that.repo.DeleteByID(ctx, id); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}

	that.logger.Info("session deleted", "sessionID", id)

	return nil
}

// apply runs action against the stored game. A rejected action stores nothing.
func (that *SessionManager) apply(ctx context.Context, id, action string, fn func(*quoridor.Game) error) (*entity.Session, error) {
	log := that.logger.With("method", "apply", "sessionID", id, "action", action)

	unlock, err := that.locker.Lock(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to lock session: %w", err)
	}
	defer func() {
		if err := unlock(ctx); err != nil {
			log.Error("failed to unlock session", "error", err)
		}
	}()

	session, err := that.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get session: %w", err)
	}

	if err = fn(session.Game); err != nil {
		log.Debug("action rejected", "error", err)
		return nil, fmt.Errorf("failed to %s: %w", action, err)
	}

	session.Touch(that.now())
	if err = that.repo.CreateOrUpdate(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to update session: %w", err)
	}

	if winner, won := session.Game.Winner(); won {
		log.Info("game won", "winner", int(winner))
	}

	return session, nil
}
