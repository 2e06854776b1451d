package game

import "snake-arcade/game/types"

// reachable runs a breadth-first search over the 4-connected grid and
// reports whether to can be reached from from without crossing a blocked
// cell. from itself is never treated as blocked.
func reachable(grid types.Grid, from, to types.Point, blocked map[types.Point]bool) bool {
	if from == to {
		return true
	}

	visited := map[types.Point]bool{from: true}
	queue := []types.Point{from}

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		for _, next := range grid.Neighbors(current) {
			if visited[next] || blocked[next] {
				continue
			}
			if next == to {
				return true
			}
			visited[next] = true
			queue = append(queue, next)
		}
	}
	return false
}

// foodReachable checks that placing an obstacle at candidate would still
// leave a path from the snake head to the primary food. Snake segments and
// existing obstacles block the path. With no food active there is nothing
// to protect and the check passes.
func (s *Session) foodReachable(candidate types.Point) bool {
	if s.food == nil {
		return true
	}

	blocked := make(map[types.Point]bool, len(s.obstacles)+len(s.snake)+1)
	for p := range s.obstacles {
		blocked[p] = true
	}
	for _, seg := range s.snake {
		blocked[seg] = true
	}
	blocked[candidate] = true

	return reachable(s.grid, s.snake[0], s.food.Pos, blocked)
}
