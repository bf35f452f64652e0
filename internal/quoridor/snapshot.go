package quoridor

import (
	"fmt"
	"strings"
)

// CellView is the read-only state of one cell as seen by a renderer.
type CellView struct {
	Cell       Cell     `json:"cell"`
	South      Edge     `json:"south"`
	SouthOwner PlayerID `json:"south_owner,omitempty"`
	East       Edge     `json:"east"`
	EastOwner  PlayerID `json:"east_owner,omitempty"`
	Occupant   PlayerID `json:"occupant,omitempty"`
}

func (c CellView) Occupied() bool {
	return c.Occupant != NoPlayer
}

// Snapshot is a detached copy of the board. Changing it never affects the game.
type Snapshot struct {
	Cells     [Size][Size]CellView `json:"cells"`
	Tokens    [2]Token             `json:"tokens"`
	Walls     []Wall               `json:"walls"`
	Distances [2]int               `json:"distances"`
	Turn      PlayerID             `json:"turn"`
	Winner    PlayerID             `json:"winner,omitempty"`
	Status    Status               `json:"status"`
}

// At returns the view of a cell; the cell must be in bounds.
func (s Snapshot) At(c Cell) CellView {
	return s.Cells[c.Row][c.Col]
}

func (that *Game) Snapshot() Snapshot {
	snapshot := Snapshot{
		Tokens: that.tokens,
		Walls:  that.Walls(),
		Turn:   that.turn,
		Winner: that.winner,
		Status: that.Status(),
	}

	for row := 0; row < Size; row++ {
		for col := 0; col < Size; col++ {
			south := that.grid.lattice[row+1][col].north
			east := that.grid.lattice[row][col+1].west
			snapshot.Cells[row][col] = CellView{
				Cell:       Cell{Col: col, Row: row},
				South:      south,
				SouthOwner: south.Owner(),
				East:       east,
				EastOwner:  east.Owner(),
			}
		}
	}

	for i, t := range that.tokens {
		snapshot.Cells[t.Position.Row][t.Position.Col].Occupant = t.Player
		snapshot.Distances[i] = distanceToRow(&that.grid, t.Position, t.Player.GoalRow())
	}

	return snapshot
}

// String draws the lattice: "+==" for a wall above a cell, "|" for one on its left.
func (that *Game) String() string {
	var sb strings.Builder

	for row := 0; row <= Size; row++ {
		var horizontal, vertical strings.Builder
		for col := 0; col <= Size; col++ {
			p := that.grid.lattice[row][col]

			if p.north.Blocked() {
				horizontal.WriteString("+==")
			} else {
				horizontal.WriteString("+  ")
			}

			if p.west.Blocked() {
				vertical.WriteString("|")
			} else {
				vertical.WriteString(" ")
			}

			occupant := "  "
			for _, t := range that.tokens {
				if t.Position == (Cell{Col: col, Row: row}) {
					occupant = fmt.Sprintf("P%d", int(t.Player))
				}
			}
			vertical.WriteString(occupant)
		}

		sb.WriteString(horizontal.String())
		sb.WriteString("\n")
		if row < Size {
			sb.WriteString(vertical.String())
			sb.WriteString("\n")
		}
	}

	return sb.String()
}

func (e Edge) MarshalText() ([]byte, error) {
	return []byte(e.String()), nil
}

func (e *Edge) UnmarshalText(text []byte) error {
	switch string(text) {
	case "open":
		*e = EdgeOpen
	case "border":
		*e = EdgeBorder
	case "player1":
		*e = EdgePlayer1
	case "player2":
		*e = EdgePlayer2
	default:
		return fmt.Errorf("unknown edge %q", text)
	}
	return nil
}
