package quoridor

import (
	"fmt"

	"github.com/rocketscienceinc/quoridor-backend/internal/apperror"
)

// WallsPerPlayer is the starting wall budget.
const WallsPerPlayer = 10

type PlayerID int

const (
	NoPlayer PlayerID = 0
	Player1  PlayerID = 1
	Player2  PlayerID = 2
)

func (p PlayerID) Valid() bool {
	return p == Player1 || p == Player2
}

// Opponent returns the other player.
func (p PlayerID) Opponent() PlayerID {
	if p == Player1 {
		return Player2
	}
	return Player1
}

// GoalRow is the row the player must reach to win.
func (p PlayerID) GoalRow() int {
	if p == Player1 {
		return Size - 1
	}
	return 0
}

func (p PlayerID) String() string {
	return fmt.Sprintf("player %d", int(p))
}

func checkPlayer(p PlayerID) error {
	if !p.Valid() {
		return fmt.Errorf("%w: %d", apperror.ErrUnknownPlayer, int(p))
	}
	return nil
}

// Token is a player's pawn and remaining wall budget.
type Token struct {
	Player    PlayerID `json:"player"`
	Position  Cell     `json:"position"`
	WallsLeft int      `json:"walls_left"`
}

func newToken(p PlayerID, start Cell) Token {
	return Token{
		Player:    p,
		Position:  start,
		WallsLeft: WallsPerPlayer,
	}
}

func (that *Token) spendWall() error {
	if that.WallsLeft <= 0 {
		return apperror.ErrNoWallsLeft
	}
	that.WallsLeft--
	return nil
}

func (that *Token) atGoal() bool {
	return that.Position.Row == that.Player.GoalRow()
}
