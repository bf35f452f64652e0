package quoridor

import "testing"

// gameWith builds an in-progress game with the tokens on arbitrary cells.
func gameWith(t *testing.T, p1, p2 Cell, turn PlayerID) *Game {
	t.Helper()

	game := NewGame()
	for _, tok := range game.tokens {
		game.grid.lattice[tok.Position.Row][tok.Position.Col].occupied = false
	}

	game.tokens[0].Position = p1
	game.tokens[1].Position = p2
	for _, tok := range game.tokens {
		game.grid.lattice[tok.Position.Row][tok.Position.Col].occupied = true
	}
	game.turn = turn

	return game
}

// mustWall places a wall directly on the grid, bypassing turn and budget rules.
func mustWall(t *testing.T, game *Game, o Orientation, anchor Cell, owner PlayerID) {
	t.Helper()

	if err := game.grid.PlaceWall(o, anchor, owner); err != nil {
		t.Fatalf("could not place %s wall at %s: %v", o, anchor, err)
	}
	game.walls = append(game.walls, Wall{Orientation: o, Anchor: anchor, Owner: owner})
}

func cells(pairs ...[2]int) []Cell {
	result := make([]Cell, 0, len(pairs))
	for _, p := range pairs {
		result = append(result, Cell{Col: p[0], Row: p[1]})
	}
	sortCells(result)
	return result
}
