package quoridor

import (
	"fmt"

	"github.com/rocketscienceinc/quoridor-backend/internal/apperror"
)

// Wall is a placed two-cell wall segment.
type Wall struct {
	Orientation Orientation `json:"orientation"`
	Anchor      Cell        `json:"anchor"`
	Owner       PlayerID    `json:"owner"`
}

// inPlacementRange checks the anchor ranges players may name: horizontal
// anchors take columns 0-7 and rows 0-8, vertical ones columns 0-8 and rows 0-7.
func inPlacementRange(o Orientation, anchor Cell) bool {
	switch o {
	case Horizontal:
		return anchor.Col >= 0 && anchor.Col <= Size-2 && anchor.Row >= 0 && anchor.Row <= Size-1
	case Vertical:
		return anchor.Col >= 0 && anchor.Col <= Size-1 && anchor.Row >= 0 && anchor.Row <= Size-2
	default:
		return false
	}
}

// validateWall runs the placement checks in order without mutating anything.
func validateWall(g *Grid, o Orientation, anchor Cell, mover Token, tokens [2]Token) error {
	if !inPlacementRange(o, anchor) {
		return fmt.Errorf("%w: %s wall at %s", apperror.ErrOutOfRange, o, anchor)
	}

	if err := g.checkWall(o, anchor); err != nil {
		return err
	}

	if mover.WallsLeft <= 0 {
		return fmt.Errorf("%w: %s", apperror.ErrNoWallsLeft, mover.Player)
	}

	ok, err := wallKeepsPaths(g, o, anchor, mover.Player, tokens)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("%w: %s wall at %s", apperror.ErrBlocksPath, o, anchor)
	}

	return nil
}
