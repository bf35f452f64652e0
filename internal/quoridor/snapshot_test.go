package quoridor

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/quoridor-backend/internal/apperror"
)

func TestGame_Snapshot(t *testing.T) {
	t.Run("Fresh game", func(t *testing.T) {
		snapshot := NewGame().Snapshot()

		assert.Equal(t, StatusInProgress, snapshot.Status)
		assert.Equal(t, Player1, snapshot.Turn)
		assert.Equal(t, NoPlayer, snapshot.Winner)
		assert.Equal(t, [2]int{8, 8}, snapshot.Distances)

		assert.Equal(t, Player1, snapshot.At(Cell{4, 0}).Occupant)
		assert.Equal(t, Player2, snapshot.At(Cell{4, 8}).Occupant)
		assert.False(t, snapshot.At(Cell{4, 4}).Occupied())

		assert.Equal(t, EdgeBorder, snapshot.At(Cell{3, 8}).South)
		assert.Equal(t, EdgeBorder, snapshot.At(Cell{8, 3}).East)
		assert.Equal(t, NoPlayer, snapshot.At(Cell{8, 3}).EastOwner)
		assert.Equal(t, EdgeOpen, snapshot.At(Cell{3, 3}).South)
	})

	t.Run("Walls carry their owner", func(t *testing.T) {
		// Given: one wall from each player
		game := NewGame()
		require.NoError(t, game.PlaceWall(Player1, Horizontal, Cell{3, 4}))
		require.NoError(t, game.PlaceWall(Player2, Vertical, Cell{6, 1}))

		// When: taking a snapshot
		snapshot := game.Snapshot()

		// Then: both edges of each wall show who placed it
		assert.Equal(t, EdgePlayer1, snapshot.At(Cell{3, 4}).South)
		assert.Equal(t, Player1, snapshot.At(Cell{4, 4}).SouthOwner)
		assert.Equal(t, EdgePlayer2, snapshot.At(Cell{6, 1}).East)
		assert.Equal(t, Player2, snapshot.At(Cell{6, 2}).EastOwner)
		assert.Len(t, snapshot.Walls, 2)
	})

	t.Run("Snapshot is detached from the game", func(t *testing.T) {
		game := NewGame()
		require.NoError(t, game.PlaceWall(Player1, Horizontal, Cell{3, 4}))

		snapshot := game.Snapshot()
		snapshot.Walls[0].Owner = Player2
		snapshot.Tokens[0].WallsLeft = 0

		assert.Equal(t, Player1, game.Walls()[0].Owner)
		walls, err := game.WallsLeft(Player1)
		require.NoError(t, err)
		assert.Equal(t, WallsPerPlayer-1, walls)
	})

	t.Run("Edges encode as names", func(t *testing.T) {
		data, err := json.Marshal(NewGame().Snapshot().At(Cell{8, 8}))
		require.NoError(t, err)

		assert.Contains(t, string(data), `"south":"border"`)
		assert.Contains(t, string(data), `"east":"border"`)
	})
}

func TestGame_String(t *testing.T) {
	game := NewGame()
	require.NoError(t, game.PlaceWall(Player1, Horizontal, Cell{0, 0}))

	lines := strings.Split(strings.TrimRight(game.String(), "\n"), "\n")

	// Then: ten edge lines and nine cell lines
	require.Len(t, lines, 19)
	assert.True(t, strings.HasPrefix(lines[0], strings.Repeat("+==", Size)))
	assert.Contains(t, lines[1], "P1")
	assert.True(t, strings.HasPrefix(lines[2], "+==+==+  "))
	assert.Contains(t, lines[17], "P2")
	assert.True(t, strings.HasPrefix(lines[18], strings.Repeat("+==", Size)))
}

func TestGame_JSON(t *testing.T) {
	t.Run("Stored game comes back identical", func(t *testing.T) {
		// Given: a game with some history
		game := NewGame()
		require.NoError(t, game.MoveToken(Player1, Cell{4, 1}))
		require.NoError(t, game.PlaceWall(Player2, Horizontal, Cell{3, 4}))
		require.NoError(t, game.PlaceWall(Player1, Vertical, Cell{5, 6}))

		// When: marshalling and unmarshalling it
		data, err := json.Marshal(game)
		require.NoError(t, err)

		var restored Game
		require.NoError(t, json.Unmarshal(data, &restored))

		// Then: the grid is rebuilt exactly
		require.Equal(t, *game, restored)
	})

	t.Run("Inconsistent records are rejected", func(t *testing.T) {
		for name, record := range map[string]string{
			"budget does not match walls": `{"tokens":[{"player":1,"position":{"col":4,"row":0},"walls_left":10},{"player":2,"position":{"col":4,"row":8},"walls_left":10}],"walls":[{"orientation":"h","anchor":{"col":3,"row":4},"owner":1}],"turn":2,"winner":0}`,
			"overlapping walls":           `{"tokens":[{"player":1,"position":{"col":4,"row":0},"walls_left":8},{"player":2,"position":{"col":4,"row":8},"walls_left":10}],"walls":[{"orientation":"h","anchor":{"col":3,"row":4},"owner":1},{"orientation":"h","anchor":{"col":3,"row":4},"owner":1}],"turn":1,"winner":0}`,
			"stacked tokens":              `{"tokens":[{"player":1,"position":{"col":4,"row":4},"walls_left":10},{"player":2,"position":{"col":4,"row":4},"walls_left":10}],"walls":[],"turn":1,"winner":0}`,
			"bad turn":                    `{"tokens":[{"player":1,"position":{"col":4,"row":0},"walls_left":10},{"player":2,"position":{"col":4,"row":8},"walls_left":10}],"walls":[],"turn":3,"winner":0}`,
			"winner not on goal row":      `{"tokens":[{"player":1,"position":{"col":4,"row":0},"walls_left":10},{"player":2,"position":{"col":4,"row":8},"walls_left":10}],"walls":[],"turn":1,"winner":1}`,
			"token off the board":         `{"tokens":[{"player":1,"position":{"col":9,"row":0},"walls_left":10},{"player":2,"position":{"col":4,"row":8},"walls_left":10}],"walls":[],"turn":1,"winner":0}`,
		} {
			var game Game
			err := json.Unmarshal([]byte(record), &game)
			require.ErrorIs(t, err, apperror.ErrInvalidState, name)
		}
	})
}
