package quoridor

import (
	"encoding/json"
	"fmt"

	"github.com/rocketscienceinc/quoridor-backend/internal/apperror"
)

// gameRecord is what a stored session looks like. The grid is not stored:
// it is rebuilt from the wall list.
type gameRecord struct {
	Tokens [2]Token `json:"tokens"`
	Walls  []Wall   `json:"walls"`
	Turn   PlayerID `json:"turn"`
	Winner PlayerID `json:"winner"`
}

func (that *Game) MarshalJSON() ([]byte, error) {
	record := gameRecord{
		Tokens: that.tokens,
		Walls:  that.Walls(),
		Turn:   that.turn,
		Winner: that.winner,
	}

	data, err := json.Marshal(record)
	if err != nil {
		return nil, fmt.Errorf("could not marshal game: %w", err)
	}

	return data, nil
}

// UnmarshalJSON restores a stored game. Records that could not come out of a
// sequence of legal actions are rejected with ErrInvalidState.
func (that *Game) UnmarshalJSON(data []byte) error {
	var record gameRecord
	if err := json.Unmarshal(data, &record); err != nil {
		return fmt.Errorf("could not unmarshal game: %w", err)
	}

	restored, err := restore(record)
	if err != nil {
		return fmt.Errorf("%w: %w", apperror.ErrInvalidState, err)
	}

	*that = *restored

	return nil
}

func restore(record gameRecord) (*Game, error) {
	game := &Game{
		grid:   newGrid(),
		tokens: record.Tokens,
		turn:   record.Turn,
		winner: record.Winner,
	}

	if !record.Turn.Valid() {
		return nil, fmt.Errorf("turn %d", int(record.Turn))
	}
	if record.Winner != NoPlayer && !record.Winner.Valid() {
		return nil, fmt.Errorf("winner %d", int(record.Winner))
	}

	spent := [2]int{}
	for _, w := range record.Walls {
		if !w.Owner.Valid() || !inPlacementRange(w.Orientation, w.Anchor) {
			return nil, fmt.Errorf("wall %+v", w)
		}
		if err := game.grid.PlaceWall(w.Orientation, w.Anchor, w.Owner); err != nil {
			return nil, err
		}
		spent[w.Owner-1]++
	}
	game.walls = append([]Wall(nil), record.Walls...)

	for i, t := range record.Tokens {
		if t.Player != PlayerID(i+1) {
			return nil, fmt.Errorf("token %d belongs to %s", i, t.Player)
		}
		if err := checkCell(t.Position); err != nil {
			return nil, err
		}
		if t.WallsLeft < 0 || t.WallsLeft+spent[i] != WallsPerPlayer {
			return nil, fmt.Errorf("%s has %d walls left after placing %d", t.Player, t.WallsLeft, spent[i])
		}
		if t.atGoal() != (record.Winner == t.Player) {
			return nil, fmt.Errorf("%s at %s disagrees with winner %d", t.Player, t.Position, int(record.Winner))
		}
		game.grid.lattice[t.Position.Row][t.Position.Col].occupied = true
	}

	if record.Tokens[0].Position == record.Tokens[1].Position {
		return nil, fmt.Errorf("both tokens on %s", record.Tokens[0].Position)
	}

	return game, nil
}
