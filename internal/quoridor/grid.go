package quoridor

import (
	"fmt"

	"github.com/rocketscienceinc/quoridor-backend/internal/apperror"
)

// Size is the number of playable rows and columns.
const Size = 9

// Cell is a playable coordinate, 0 <= Col, Row < Size.
type Cell struct {
	Col int `json:"col"`
	Row int `json:"row"`
}

func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.Col, c.Row)
}

// InBounds reports whether the cell lies on the 9x9 board.
func (c Cell) InBounds() bool {
	return c.Col >= 0 && c.Col < Size && c.Row >= 0 && c.Row < Size
}

func (c Cell) step(d direction) Cell {
	return Cell{Col: c.Col + d.dCol, Row: c.Row + d.dRow}
}

// Edge is the state of one cell edge.
type Edge uint8

const (
	EdgeOpen Edge = iota
	EdgeBorder
	EdgePlayer1
	EdgePlayer2
)

func (e Edge) Blocked() bool {
	return e != EdgeOpen
}

// Owner returns the player who placed the wall, or NoPlayer for open and border edges.
func (e Edge) Owner() PlayerID {
	switch e {
	case EdgePlayer1:
		return Player1
	case EdgePlayer2:
		return Player2
	default:
		return NoPlayer
	}
}

func (e Edge) String() string {
	switch e {
	case EdgeOpen:
		return "open"
	case EdgeBorder:
		return "border"
	case EdgePlayer1:
		return "player1"
	case EdgePlayer2:
		return "player2"
	default:
		return "unknown"
	}
}

func edgeFor(owner PlayerID) Edge {
	if owner == Player2 {
		return EdgePlayer2
	}
	return EdgePlayer1
}

// Orientation of a wall segment.
type Orientation string

const (
	Horizontal Orientation = "h"
	Vertical   Orientation = "v"
)

func (o Orientation) valid() bool {
	return o == Horizontal || o == Vertical
}

// point is one node of the 10x10 lattice. north and west are the edges above
// and left of cell (col, row); joint is the wall orientation passing through
// the corner at its top-left.
type point struct {
	north    Edge
	west     Edge
	joint    Orientation
	occupied bool
}

// Grid is the board lattice. Row and column Size hold only the far boundary edges.
type Grid struct {
	lattice [Size + 1][Size + 1]point
}

func newGrid() Grid {
	var g Grid
	for i := 0; i < Size; i++ {
		g.lattice[0][i].north = EdgeBorder
		g.lattice[Size][i].north = EdgeBorder
		g.lattice[i][0].west = EdgeBorder
		g.lattice[i][Size].west = EdgeBorder
	}
	return g
}

func checkCell(c Cell) error {
	if !c.InBounds() {
		return fmt.Errorf("%w: %s", apperror.ErrOutOfBounds, c)
	}
	return nil
}

// South returns the edge below the cell.
func (that *Grid) South(c Cell) (Edge, error) {
	if err := checkCell(c); err != nil {
		return EdgeOpen, err
	}
	return that.lattice[c.Row+1][c.Col].north, nil
}

// East returns the edge right of the cell.
func (that *Grid) East(c Cell) (Edge, error) {
	if err := checkCell(c); err != nil {
		return EdgeOpen, err
	}
	return that.lattice[c.Row][c.Col+1].west, nil
}

// WallBetween reports whether movement between two orthogonally adjacent cells is blocked.
func (that *Grid) WallBetween(a, b Cell) (bool, error) {
	if err := checkCell(a); err != nil {
		return false, err
	}
	if err := checkCell(b); err != nil {
		return false, err
	}

	switch {
	case a.Col == b.Col && b.Row == a.Row+1:
		return that.lattice[b.Row][b.Col].north.Blocked(), nil
	case a.Col == b.Col && b.Row == a.Row-1:
		return that.lattice[a.Row][a.Col].north.Blocked(), nil
	case a.Row == b.Row && b.Col == a.Col+1:
		return that.lattice[b.Row][b.Col].west.Blocked(), nil
	case a.Row == b.Row && b.Col == a.Col-1:
		return that.lattice[a.Row][a.Col].west.Blocked(), nil
	default:
		return false, fmt.Errorf("%w: %s and %s", apperror.ErrNotAdjacent, a, b)
	}
}

// blocked is the in-bounds fast path: the edge leaving c in direction d.
// Outward edges of border cells are always blocked.
func (that *Grid) blocked(c Cell, d direction) bool {
	switch d {
	case up:
		return that.lattice[c.Row][c.Col].north.Blocked()
	case down:
		return that.lattice[c.Row+1][c.Col].north.Blocked()
	case left:
		return that.lattice[c.Row][c.Col].west.Blocked()
	default:
		return that.lattice[c.Row][c.Col+1].west.Blocked()
	}
}

// Occupied reports whether a token stands on the cell.
func (that *Grid) Occupied(c Cell) (bool, error) {
	if err := checkCell(c); err != nil {
		return false, err
	}
	return that.lattice[c.Row][c.Col].occupied, nil
}

func (that *Grid) SetOccupied(c Cell, occupied bool) error {
	if err := checkCell(c); err != nil {
		return err
	}
	that.lattice[c.Row][c.Col].occupied = occupied
	return nil
}

// PlaceWall writes both edges of a wall anchored at the top-left cell of its
// 2x2 block, or nothing at all.
func (that *Grid) PlaceWall(o Orientation, anchor Cell, owner PlayerID) error {
	if err := that.checkWall(o, anchor); err != nil {
		return err
	}

	e := edgeFor(owner)
	if o == Horizontal {
		that.lattice[anchor.Row+1][anchor.Col].north = e
		that.lattice[anchor.Row+1][anchor.Col+1].north = e
	} else {
		that.lattice[anchor.Row][anchor.Col+1].west = e
		that.lattice[anchor.Row+1][anchor.Col+1].west = e
	}
	that.lattice[anchor.Row+1][anchor.Col+1].joint = o

	return nil
}

// checkWall reports why a wall could not be placed, without writing anything.
func (that *Grid) checkWall(o Orientation, anchor Cell) error {
	first, second, err := that.wallEdges(o, anchor)
	if err != nil {
		return err
	}

	if first.Blocked() || second.Blocked() {
		return fmt.Errorf("%w: %s wall at %s", apperror.ErrOverlap, o, anchor)
	}

	if that.lattice[anchor.Row+1][anchor.Col+1].joint != "" {
		return fmt.Errorf("%w: %s wall at %s", apperror.ErrCrossing, o, anchor)
	}

	return nil
}

// wallEdges returns the current state of the two edges a wall would occupy.
// Anchors whose edges fall outside the lattice are a caller bug.
func (that *Grid) wallEdges(o Orientation, anchor Cell) (Edge, Edge, error) {
	if !o.valid() {
		return EdgeOpen, EdgeOpen, fmt.Errorf("%w: orientation %q", apperror.ErrOutOfBounds, o)
	}

	maxCol, maxRow := Size-2, Size-1
	if o == Vertical {
		maxCol, maxRow = Size-1, Size-2
	}
	if anchor.Col < 0 || anchor.Col > maxCol || anchor.Row < 0 || anchor.Row > maxRow {
		return EdgeOpen, EdgeOpen, fmt.Errorf("%w: %s wall at %s", apperror.ErrOutOfBounds, o, anchor)
	}

	if o == Horizontal {
		return that.lattice[anchor.Row+1][anchor.Col].north, that.lattice[anchor.Row+1][anchor.Col+1].north, nil
	}
	return that.lattice[anchor.Row][anchor.Col+1].west, that.lattice[anchor.Row+1][anchor.Col+1].west, nil
}
