package quoridor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// sealedRowThree walls off rows 0-3 except for one last gap at (8,4)-(8,5).
func sealedRowThree(t *testing.T) *Game {
	t.Helper()

	game := NewGame()
	mustWall(t, game, Horizontal, Cell{0, 3}, Player2)
	mustWall(t, game, Horizontal, Cell{2, 3}, Player2)
	mustWall(t, game, Horizontal, Cell{4, 3}, Player2)
	mustWall(t, game, Horizontal, Cell{6, 3}, Player2)
	mustWall(t, game, Vertical, Cell{7, 3}, Player2)

	return game
}

func TestDistanceToRow(t *testing.T) {
	t.Run("Open board", func(t *testing.T) {
		game := NewGame()

		assert.Equal(t, 8, distanceToRow(&game.grid, player1Start, Player1.GoalRow()))
		assert.Equal(t, 8, distanceToRow(&game.grid, player2Start, Player2.GoalRow()))
		assert.Equal(t, 0, distanceToRow(&game.grid, Cell{3, 8}, Player1.GoalRow()))
	})

	t.Run("Tokens are not obstacles", func(t *testing.T) {
		game := gameWith(t, Cell{4, 0}, Cell{4, 1}, Player1)

		distance, err := game.DistanceToGoal(Player1)
		require.NoError(t, err)
		assert.Equal(t, 8, distance)
	})

	t.Run("Walls force a detour", func(t *testing.T) {
		// Given: a wall across columns 4 and 5 right below player 1
		game := NewGame()
		mustWall(t, game, Horizontal, Cell{4, 0}, Player2)

		// Then: player 1 has to step sideways first
		distance, err := game.DistanceToGoal(Player1)
		require.NoError(t, err)
		assert.Equal(t, 9, distance)
	})

	t.Run("Sealed region", func(t *testing.T) {
		game := sealedRowThree(t)
		mustWall(t, game, Horizontal, Cell{7, 4}, Player2)

		assert.Equal(t, unreachable, distanceToRow(&game.grid, player1Start, Player1.GoalRow()))
		assert.Equal(t, unreachable, distanceToRow(&game.grid, player2Start, Player2.GoalRow()))
	})
}

func TestWallKeepsPaths(t *testing.T) {
	t.Run("Closing the last gap is refused", func(t *testing.T) {
		// Given: a board with one gap left between the two halves
		game := sealedRowThree(t)
		before := game.grid

		// When: checking the wall that closes the gap
		ok, err := wallKeepsPaths(&game.grid, Horizontal, Cell{7, 4}, Player1, game.tokens)

		// Then: it isolates the players and the live grid is untouched
		require.NoError(t, err)
		assert.False(t, ok)
		assert.Equal(t, before, game.grid)
	})

	t.Run("Narrowing without closing is accepted", func(t *testing.T) {
		game := sealedRowThree(t)
		before := game.grid

		ok, err := wallKeepsPaths(&game.grid, Horizontal, Cell{0, 6}, Player1, game.tokens)

		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, before, game.grid)
	})

	t.Run("Only the blocked player matters", func(t *testing.T) {
		// Given: player 2 in a 2x2 corner pocket that is open only at the top
		game := gameWith(t, Cell{4, 0}, Cell{0, 8}, Player1)
		mustWall(t, game, Vertical, Cell{1, 7}, Player2)

		// When: closing the top of the pocket
		ok, err := wallKeepsPaths(&game.grid, Horizontal, Cell{0, 6}, Player1, game.tokens)

		// Then: the placement is refused although player 1 is unaffected
		require.NoError(t, err)
		assert.False(t, ok)
	})
}
