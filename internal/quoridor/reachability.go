package quoridor

// unreachable is returned by distanceToRow when no path exists.
const unreachable = -1

// distanceToRow runs a breadth-first search over open edges and returns the
// number of steps from start to the nearest cell of goalRow. Tokens are not
// obstacles here; only walls are permanent.
func distanceToRow(g *Grid, start Cell, goalRow int) int {
	var dist [Size][Size]int
	for r := range dist {
		for c := range dist[r] {
			dist[r][c] = unreachable
		}
	}

	queue := make([]Cell, 0, Size*Size)
	queue = append(queue, start)
	dist[start.Row][start.Col] = 0

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		if current.Row == goalRow {
			return dist[current.Row][current.Col]
		}

		for _, d := range directions {
			if g.blocked(current, d) {
				continue
			}
			next := current.step(d)
			if dist[next.Row][next.Col] != unreachable {
				continue
			}
			dist[next.Row][next.Col] = dist[current.Row][current.Col] + 1
			queue = append(queue, next)
		}
	}

	return unreachable
}

func canReach(g *Grid, t Token) bool {
	return distanceToRow(g, t.Position, t.Player.GoalRow()) != unreachable
}

// wallKeepsPaths places the wall on a scratch copy of g and reports whether
// both tokens still reach their goal rows. g itself is never written.
func wallKeepsPaths(g *Grid, o Orientation, anchor Cell, owner PlayerID, tokens [2]Token) (bool, error) {
	scratch := *g
	if err := scratch.PlaceWall(o, anchor, owner); err != nil {
		return false, err
	}

	for _, t := range tokens {
		if !canReach(&scratch, t) {
			return false, nil
		}
	}

	return true, nil
}
