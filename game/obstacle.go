package game

import "snake-arcade/game/types"

// trySpawnObstacle places one obstacle at a random free cell, rejecting
// candidates that would cut the snake off from the food. Attempts are
// bounded; running out of them is a normal no-op, not an error. Obstacles
// are never removed for the rest of the session.
func (s *Session) trySpawnObstacle() {
	if len(s.obstacles) >= s.cfg.Tuning.MaxObstacles {
		return
	}

	for i := 0; i < s.cfg.Tuning.ObstacleAttempts; i++ {
		p := types.Point{
			X: s.rng.Intn(s.grid.Width),
			Y: s.rng.Intn(s.grid.Height),
		}
		if s.occupied(p) {
			continue
		}
		if s.foodReachable(p) {
			s.obstacles[p] = true
			return
		}
	}
}
