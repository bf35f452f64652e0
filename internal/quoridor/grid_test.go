package quoridor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/quoridor-backend/internal/apperror"
)

func TestGrid_Borders(t *testing.T) {
	// Given: a fresh grid
	grid := newGrid()

	for i := 0; i < Size; i++ {
		// Then: every outward edge is a permanent border wall
		south, err := grid.South(Cell{Col: i, Row: Size - 1})
		require.NoError(t, err)
		assert.Equal(t, EdgeBorder, south)

		east, err := grid.East(Cell{Col: Size - 1, Row: i})
		require.NoError(t, err)
		assert.Equal(t, EdgeBorder, east)

		assert.True(t, grid.blocked(Cell{Col: i, Row: 0}, up))
		assert.True(t, grid.blocked(Cell{Col: 0, Row: i}, left))
	}

	// Then: inner edges are open
	south, err := grid.South(Cell{Col: 4, Row: 4})
	require.NoError(t, err)
	assert.Equal(t, EdgeOpen, south)
}

func TestGrid_WallBetween(t *testing.T) {
	t.Run("Horizontal wall blocks both columns it spans", func(t *testing.T) {
		// Given: a horizontal wall anchored at (3,4)
		grid := newGrid()
		require.NoError(t, grid.PlaceWall(Horizontal, Cell{Col: 3, Row: 4}, Player1))

		// Then: movement between rows 4 and 5 is blocked in columns 3 and 4 only
		for _, tc := range []struct {
			a, b    Cell
			blocked bool
		}{
			{Cell{3, 4}, Cell{3, 5}, true},
			{Cell{4, 5}, Cell{4, 4}, true},
			{Cell{5, 4}, Cell{5, 5}, false},
			{Cell{2, 4}, Cell{2, 5}, false},
			{Cell{3, 4}, Cell{4, 4}, false},
		} {
			blocked, err := grid.WallBetween(tc.a, tc.b)
			require.NoError(t, err)
			assert.Equal(t, tc.blocked, blocked, "%s-%s", tc.a, tc.b)
		}
	})

	t.Run("Vertical wall blocks both rows it spans", func(t *testing.T) {
		// Given: a vertical wall anchored at (2,6)
		grid := newGrid()
		require.NoError(t, grid.PlaceWall(Vertical, Cell{Col: 2, Row: 6}, Player2))

		// Then: movement between columns 2 and 3 is blocked in rows 6 and 7
		blocked, err := grid.WallBetween(Cell{2, 6}, Cell{3, 6})
		require.NoError(t, err)
		assert.True(t, blocked)

		blocked, err = grid.WallBetween(Cell{3, 7}, Cell{2, 7})
		require.NoError(t, err)
		assert.True(t, blocked)

		blocked, err = grid.WallBetween(Cell{2, 8}, Cell{3, 8})
		require.NoError(t, err)
		assert.False(t, blocked)

		// Then: the edge records its owner
		east, err := grid.East(Cell{2, 7})
		require.NoError(t, err)
		assert.Equal(t, Player2, east.Owner())
	})

	t.Run("Error on cells that are not adjacent", func(t *testing.T) {
		grid := newGrid()

		_, err := grid.WallBetween(Cell{0, 0}, Cell{1, 1})
		require.ErrorIs(t, err, apperror.ErrNotAdjacent)

		_, err = grid.WallBetween(Cell{0, 0}, Cell{0, 0})
		require.ErrorIs(t, err, apperror.ErrNotAdjacent)
	})

	t.Run("Error on cells outside the grid", func(t *testing.T) {
		grid := newGrid()

		_, err := grid.WallBetween(Cell{0, 0}, Cell{0, -1})
		require.ErrorIs(t, err, apperror.ErrOutOfBounds)

		_, err = grid.WallBetween(Cell{8, 8}, Cell{9, 8})
		require.ErrorIs(t, err, apperror.ErrOutOfBounds)
	})
}

func TestGrid_PlaceWall(t *testing.T) {
	t.Run("Overlap on the same anchor", func(t *testing.T) {
		grid := newGrid()
		require.NoError(t, grid.PlaceWall(Horizontal, Cell{3, 4}, Player1))

		err := grid.PlaceWall(Horizontal, Cell{3, 4}, Player2)
		require.ErrorIs(t, err, apperror.ErrOverlap)
	})

	t.Run("Overlap on a shared edge", func(t *testing.T) {
		grid := newGrid()
		require.NoError(t, grid.PlaceWall(Vertical, Cell{5, 2}, Player1))

		err := grid.PlaceWall(Vertical, Cell{5, 3}, Player1)
		require.ErrorIs(t, err, apperror.ErrOverlap)

		err = grid.PlaceWall(Vertical, Cell{5, 1}, Player1)
		require.ErrorIs(t, err, apperror.ErrOverlap)

		// Then: a wall directly after the first one is fine
		require.NoError(t, grid.PlaceWall(Vertical, Cell{5, 4}, Player1))
	})

	t.Run("Overlap on the border", func(t *testing.T) {
		grid := newGrid()

		err := grid.PlaceWall(Horizontal, Cell{0, Size - 1}, Player1)
		require.ErrorIs(t, err, apperror.ErrOverlap)

		err = grid.PlaceWall(Vertical, Cell{Size - 1, 0}, Player1)
		require.ErrorIs(t, err, apperror.ErrOverlap)
	})

	t.Run("Crossing through the same midpoint", func(t *testing.T) {
		grid := newGrid()
		require.NoError(t, grid.PlaceWall(Horizontal, Cell{3, 4}, Player1))

		err := grid.PlaceWall(Vertical, Cell{3, 4}, Player2)
		require.ErrorIs(t, err, apperror.ErrCrossing)

		// Then: perpendicular walls touching at an end are allowed
		require.NoError(t, grid.PlaceWall(Vertical, Cell{3, 2}, Player2))
		require.NoError(t, grid.PlaceWall(Vertical, Cell{4, 4}, Player2))
	})

	t.Run("Failed placement writes nothing", func(t *testing.T) {
		grid := newGrid()
		require.NoError(t, grid.PlaceWall(Horizontal, Cell{3, 4}, Player1))
		before := grid

		err := grid.PlaceWall(Horizontal, Cell{2, 4}, Player2)
		require.ErrorIs(t, err, apperror.ErrOverlap)

		require.Equal(t, before, grid)
	})

	t.Run("Out of bounds anchors", func(t *testing.T) {
		grid := newGrid()

		for _, tc := range []struct {
			o      Orientation
			anchor Cell
		}{
			{Horizontal, Cell{Size - 1, 0}},
			{Horizontal, Cell{-1, 3}},
			{Vertical, Cell{0, Size - 1}},
			{Vertical, Cell{Size, 0}},
			{Orientation("x"), Cell{3, 3}},
		} {
			err := grid.PlaceWall(tc.o, tc.anchor, Player1)
			require.ErrorIs(t, err, apperror.ErrOutOfBounds, "%s %s", tc.o, tc.anchor)
		}
	})
}

func TestGrid_Occupied(t *testing.T) {
	grid := newGrid()

	// When: a cell is marked occupied
	require.NoError(t, grid.SetOccupied(Cell{2, 2}, true))

	// Then: only that cell reports a token
	occupied, err := grid.Occupied(Cell{2, 2})
	require.NoError(t, err)
	assert.True(t, occupied)

	occupied, err = grid.Occupied(Cell{2, 3})
	require.NoError(t, err)
	assert.False(t, occupied)

	// Then: the far boundary row of the lattice is not a cell
	require.ErrorIs(t, grid.SetOccupied(Cell{0, Size}, true), apperror.ErrOutOfBounds)

	_, err = grid.Occupied(Cell{-1, 0})
	require.ErrorIs(t, err, apperror.ErrOutOfBounds)
}
