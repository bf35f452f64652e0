package quoridor

import (
	"fmt"

	"github.com/rocketscienceinc/quoridor-backend/internal/apperror"
)

type Status string

const (
	StatusInProgress Status = "in_progress"
	StatusWon        Status = "won"
)

var (
	player1Start = Cell{Col: 4, Row: 0}
	player2Start = Cell{Col: 4, Row: Size - 1}
)

// Game is one session: the grid, both tokens, whose turn it is and the winner.
// It is not safe for concurrent use.
type Game struct {
	grid   Grid
	tokens [2]Token
	walls  []Wall
	turn   PlayerID
	winner PlayerID
}

// NewGame starts a session with both tokens on their baselines and player 1 to move.
func NewGame() *Game {
	game := &Game{
		grid: newGrid(),
		tokens: [2]Token{
			newToken(Player1, player1Start),
			newToken(Player2, player2Start),
		},
		turn: Player1,
	}

	for _, t := range game.tokens {
		game.grid.lattice[t.Position.Row][t.Position.Col].occupied = true
	}

	return game
}

func (that *Game) Turn() PlayerID {
	return that.turn
}

// Winner returns the winning player, if any.
func (that *Game) Winner() (PlayerID, bool) {
	return that.winner, that.winner != NoPlayer
}

func (that *Game) Status() Status {
	if that.winner != NoPlayer {
		return StatusWon
	}
	return StatusInProgress
}

func (that *Game) IsOver() bool {
	return that.Status() == StatusWon
}

func (that *Game) token(p PlayerID) *Token {
	return &that.tokens[p-1]
}

// Position returns the cell the player's token stands on.
func (that *Game) Position(p PlayerID) (Cell, error) {
	if err := checkPlayer(p); err != nil {
		return Cell{}, err
	}
	return that.token(p).Position, nil
}

func (that *Game) WallsLeft(p PlayerID) (int, error) {
	if err := checkPlayer(p); err != nil {
		return 0, err
	}
	return that.token(p).WallsLeft, nil
}

// Walls returns the placed walls in placement order.
func (that *Game) Walls() []Wall {
	walls := make([]Wall, len(that.walls))
	copy(walls, that.walls)
	return walls
}

// LegalMoves lists the destinations the player's token may move to, ignoring
// whose turn it is.
func (that *Game) LegalMoves(p PlayerID) ([]Cell, error) {
	if err := checkPlayer(p); err != nil {
		return nil, err
	}
	return legalDestinations(&that.grid, that.token(p).Position), nil
}

// DistanceToGoal is the number of single steps, ignoring tokens, between the
// player's token and the nearest cell of its goal row.
func (that *Game) DistanceToGoal(p PlayerID) (int, error) {
	if err := checkPlayer(p); err != nil {
		return 0, err
	}
	t := that.token(p)
	return distanceToRow(&that.grid, t.Position, p.GoalRow()), nil
}

// confirmTurn rejects actions on a finished game or from the idle player.
func (that *Game) confirmTurn(p PlayerID) error {
	if that.IsOver() {
		return apperror.ErrGameAlreadyOver
	}

	if err := checkPlayer(p); err != nil {
		return err
	}

	if that.turn != p {
		return apperror.ErrNotYourTurn
	}

	return nil
}

// MoveToken moves the player's token to dest. Landing on the goal row wins
// the game and the turn no longer changes.
func (that *Game) MoveToken(p PlayerID, dest Cell) error {
	if err := that.confirmTurn(p); err != nil {
		return err
	}

	if err := checkCell(dest); err != nil {
		return err
	}

	t := that.token(p)
	if !containsCell(legalDestinations(&that.grid, t.Position), dest) {
		return fmt.Errorf("%w: %s to %s", apperror.ErrIllegalDestination, t.Position, dest)
	}

	that.grid.lattice[t.Position.Row][t.Position.Col].occupied = false
	that.grid.lattice[dest.Row][dest.Col].occupied = true
	t.Position = dest

	if t.atGoal() {
		that.winner = p
		return nil
	}

	that.turn = p.Opponent()

	return nil
}

// PlaceWall validates and commits a wall for the player.
func (that *Game) PlaceWall(p PlayerID, o Orientation, anchor Cell) error {
	if err := that.confirmTurn(p); err != nil {
		return err
	}

	t := that.token(p)
	if err := validateWall(&that.grid, o, anchor, *t, that.tokens); err != nil {
		return err
	}

	if err := that.grid.PlaceWall(o, anchor, p); err != nil {
		return fmt.Errorf("could not commit wall: %w", err)
	}
	if err := t.spendWall(); err != nil {
		return fmt.Errorf("could not commit wall: %w", err)
	}

	that.walls = append(that.walls, Wall{Orientation: o, Anchor: anchor, Owner: p})
	that.turn = p.Opponent()

	return nil
}
