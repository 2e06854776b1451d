package game

import (
	"errors"

	"snake-arcade/game/types"
)

// FoodKind identifies the food variant. The kind determines score and
// length changes on consumption, see eatEffect.
type FoodKind int

const (
	FoodNormal FoodKind = iota
	FoodGolden
	FoodRotten
)

func (k FoodKind) String() string {
	switch k {
	case FoodGolden:
		return "golden"
	case FoodRotten:
		return "rotten"
	default:
		return "normal"
	}
}

// Food is a single food item on the board. Moving food drifts to an
// adjacent free cell every few ticks.
type Food struct {
	Pos    types.Point
	Kind   FoodKind
	Moving bool
}

// ErrGridFull is returned when no free cell remains for a spawn.
var ErrGridFull = errors.New("no free cell on the grid")

// occupied reports whether p is covered by the snake, an obstacle, or the
// primary food.
func (s *Session) occupied(p types.Point) bool {
	for _, seg := range s.snake {
		if seg == p {
			return true
		}
	}
	if s.obstacles[p] {
		return true
	}
	if s.food != nil && s.food.Pos == p {
		return true
	}
	return false
}

// randomFreeCell draws uniform random cells until it finds a free one. The
// draw count is bounded; when the grid is nearly full it falls back to
// scanning every cell so the call always terminates.
func (s *Session) randomFreeCell() (types.Point, error) {
	for i := 0; i < s.cfg.Tuning.SpawnAttempts; i++ {
		p := types.Point{
			X: s.rng.Intn(s.grid.Width),
			Y: s.rng.Intn(s.grid.Height),
		}
		if !s.occupied(p) {
			return p, nil
		}
	}
	free := make([]types.Point, 0, 16)
	for y := 0; y < s.grid.Height; y++ {
		for x := 0; x < s.grid.Width; x++ {
			p := types.Point{X: x, Y: y}
			if !s.occupied(p) {
				free = append(free, p)
			}
		}
	}
	if len(free) == 0 {
		return types.Point{}, ErrGridFull
	}
	return free[s.rng.Intn(len(free))], nil
}

func (s *Session) rollMobility() bool {
	return s.cfg.Features.MovingFood && s.rng.Float64() < s.cfg.Tuning.MovingFoodChance
}

// spawnFood places a new primary food. Kind selection: with the special
// food feature on, SpecialSpawnChance of the draws are special, and of
// those RottenRatioWithinSpecial are rotten, the rest golden. A rotten
// primary always comes with a concurrent normal food so a recovery bite
// already exists on the board.
func (s *Session) spawnFood() error {
	kind := FoodNormal
	if s.cfg.Features.SpecialFood && s.rng.Float64() < s.cfg.Tuning.SpecialSpawnChance {
		if s.rng.Float64() < s.cfg.Tuning.RottenRatioWithinSpecial {
			kind = FoodRotten
		} else {
			kind = FoodGolden
		}
	}

	pos, err := s.randomFreeCell()
	if err != nil {
		return err
	}
	s.food = &Food{Pos: pos, Kind: kind, Moving: s.rollMobility()}

	if kind == FoodRotten {
		return s.spawnConcurrent(FoodNormal)
	}
	return nil
}

// spawnConcurrent adds a bonus food alongside the primary one.
func (s *Session) spawnConcurrent(kind FoodKind) error {
	pos, err := s.randomFreeCell()
	if err != nil {
		return err
	}
	s.concurrent = append(s.concurrent, Food{Pos: pos, Kind: kind, Moving: s.rollMobility()})
	return nil
}

// driftFood moves a mobile primary food to a random free adjacent cell on
// its movement cadence. Blocked food simply stays put.
func (s *Session) driftFood() {
	if s.food == nil || !s.food.Moving {
		return
	}
	if s.tickCount%s.cfg.Tuning.FoodMoveEveryNTicks != 0 {
		return
	}

	dirs := []types.Direction{types.Up, types.Down, types.Left, types.Right}
	s.rng.Shuffle(len(dirs), func(i, j int) {
		dirs[i], dirs[j] = dirs[j], dirs[i]
	})
	for _, d := range dirs {
		next := s.food.Pos.Add(d.ToPoint())
		if !s.grid.InBounds(next) || s.obstacles[next] {
			continue
		}
		onSnake := false
		for _, seg := range s.snake {
			if seg == next {
				onSnake = true
				break
			}
		}
		if onSnake {
			continue
		}
		s.food.Pos = next
		return
	}
}
