package game

// Features toggles individual game mechanics. The zero value disables
// everything; DefaultConfig enables the full game.
type Features struct {
	ScoreTierColors      bool
	MovingFood           bool
	SpecialFood          bool
	ProgressiveObstacles bool
	SpeedScalesWithEats  bool
	SoundEffects         bool
	Leaderboard          bool
}

// Tuning holds the balance constants. A Config is built once at startup and
// never mutated afterwards; the session only reads it.
type Tuning struct {
	GridSize        int // grid is GridSize x GridSize cells
	LeaderboardSize int

	FoodMoveEveryNTicks      int
	SpecialSpawnChance       float64
	RottenRatioWithinSpecial float64
	MovingFoodChance         float64

	MinSnakeLen int

	ObstacleEveryNFoods int
	MaxObstacles        int
	ObstacleAttempts    int

	// Food placement draws random cells up to SpawnAttempts times before
	// falling back to a full scan of the grid.
	SpawnAttempts int

	SpeedBase        float64
	SpeedStepPerFood float64
	SpeedMax         float64

	// Score thresholds at which the snake changes color tier.
	ScoreTiers []int
}

type Config struct {
	Features Features
	Tuning   Tuning
}

func DefaultConfig() Config {
	return Config{
		Features: Features{
			ScoreTierColors:      true,
			MovingFood:           true,
			SpecialFood:          true,
			ProgressiveObstacles: true,
			SpeedScalesWithEats:  true,
			SoundEffects:         true,
			Leaderboard:          true,
		},
		Tuning: Tuning{
			GridSize:        30,
			LeaderboardSize: 5,

			FoodMoveEveryNTicks:      6,
			SpecialSpawnChance:       0.22,
			RottenRatioWithinSpecial: 0.35,
			MovingFoodChance:         0.3,

			MinSnakeLen: 1,

			ObstacleEveryNFoods: 3,
			MaxObstacles:        40,
			ObstacleAttempts:    50,

			SpawnAttempts: 200,

			SpeedBase:        4,
			SpeedStepPerFood: 0.3,
			SpeedMax:         15,

			ScoreTiers: []int{0, 5, 10, 20, 35, 50},
		},
	}
}

// TierIndex returns the index of the highest score tier reached. The
// renderer maps the index to its palette.
func (c Config) TierIndex(score int) int {
	if !c.Features.ScoreTierColors {
		return 0
	}
	for i := len(c.Tuning.ScoreTiers) - 1; i >= 0; i-- {
		if score >= c.Tuning.ScoreTiers[i] {
			return i
		}
	}
	return 0
}
