package quoridor

import "sort"

type direction struct {
	dCol, dRow int
}

var (
	up    = direction{dCol: 0, dRow: -1}
	down  = direction{dCol: 0, dRow: 1}
	left  = direction{dCol: -1, dRow: 0}
	right = direction{dCol: 1, dRow: 0}

	directions = [4]direction{up, down, left, right}
)

// sides returns the two directions orthogonal to d.
func (d direction) sides() [2]direction {
	if d.dCol == 0 {
		return [2]direction{left, right}
	}
	return [2]direction{up, down}
}

// legalDestinations computes every cell the token at from may move to.
// Border cells need no special casing: their outward edges are walls.
func legalDestinations(g *Grid, from Cell) []Cell {
	seen := make(map[Cell]struct{}, 8)
	for _, d := range directions {
		for _, c := range destinationsToward(g, from, d) {
			seen[c] = struct{}{}
		}
	}

	result := make([]Cell, 0, len(seen))
	for c := range seen {
		result = append(result, c)
	}
	sortCells(result)

	return result
}

func destinationsToward(g *Grid, from Cell, d direction) []Cell {
	if g.blocked(from, d) {
		return nil
	}

	next := from.step(d)
	if !g.lattice[next.Row][next.Col].occupied {
		return []Cell{next}
	}

	// opponent on next: jump straight over when nothing stands behind it
	if !g.blocked(next, d) {
		return []Cell{next.step(d)}
	}

	var diagonals []Cell
	for _, side := range d.sides() {
		if !g.blocked(next, side) {
			diagonals = append(diagonals, next.step(side))
		}
	}

	return diagonals
}

func sortCells(cells []Cell) {
	sort.Slice(cells, func(i, j int) bool {
		if cells[i].Row != cells[j].Row {
			return cells[i].Row < cells[j].Row
		}
		return cells[i].Col < cells[j].Col
	})
}

func containsCell(cells []Cell, c Cell) bool {
	for _, candidate := range cells {
		if candidate == c {
			return true
		}
	}
	return false
}
