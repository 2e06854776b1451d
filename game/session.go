package game

import (
	"sync"
	"time"
	"unicode"

	"golang.org/x/exp/rand"

	"snake-arcade/game/types"
)

// Phase is the session state machine state.
type Phase int

const (
	Running Phase = iota
	Paused
	GameOver
	AwaitingInitials
)

func (p Phase) String() string {
	switch p {
	case Running:
		return "running"
	case Paused:
		return "paused"
	case GameOver:
		return "game over"
	default:
		return "awaiting initials"
	}
}

// Sound tags the audio events emitted by the session.
type Sound int

const (
	SoundEat Sound = iota
	SoundGolden
	SoundRotten
	SoundGameOver
)

// SoundPlayer receives fire-and-forget audio events.
type SoundPlayer interface {
	Play(Sound)
}

// ScoreStore is the leaderboard seen from the session.
type ScoreStore interface {
	Qualifies(score int) bool
	Add(initials string, score int)
	Reset()
}

// RunRecorder receives the final score of every finished run.
type RunRecorder interface {
	Record(score int, started time.Time)
}

// Session owns the whole world state of one game and advances it one tick
// at a time. All mutation happens on the tick path; the queued direction is
// the only field written from the input side and is guarded by a mutex.
type Session struct {
	cfg  Config
	grid types.Grid
	rng  *rand.Rand

	// Optional collaborators, safe to leave nil.
	Sounds   SoundPlayer
	Store    ScoreStore
	Recorder RunRecorder

	mu     sync.Mutex
	queued types.Direction

	snake      []types.Point // head first
	dir        types.Direction
	food       *Food
	concurrent []Food
	obstacles  map[types.Point]bool

	score     int
	foodEaten int
	speed     float64
	tickCount int
	phase     Phase

	initials  string
	recorded  bool
	startTime time.Time
}

func NewSession(cfg Config, rng *rand.Rand) *Session {
	s := &Session{
		cfg:  cfg,
		grid: types.Grid{Width: cfg.Tuning.GridSize, Height: cfg.Tuning.GridSize},
		rng:  rng,
	}
	s.reset()
	return s
}

// reset brings the session back to a fresh Running state with a one-segment
// snake at the grid center and a primary food already on the board.
func (s *Session) reset() {
	s.snake = []types.Point{{X: s.grid.Width / 2, Y: s.grid.Height / 2}}
	s.dir = types.Right
	s.mu.Lock()
	s.queued = types.Right
	s.mu.Unlock()

	s.score = 0
	s.foodEaten = 0
	s.tickCount = 0
	s.speed = s.cfg.Tuning.SpeedBase
	s.food = nil
	s.concurrent = nil
	s.obstacles = make(map[types.Point]bool)
	s.initials = ""
	s.recorded = false
	s.startTime = time.Now()
	s.phase = Running

	if err := s.spawnFood(); err != nil {
		s.endRun()
	}
}

// Advance runs one simulation tick. Outside the Running phase it is a no-op.
func (s *Session) Advance() {
	if s.phase != Running {
		return
	}
	s.tickCount++

	s.mu.Lock()
	s.dir = s.queued
	s.mu.Unlock()

	newHead := s.snake[0].Add(s.dir.ToPoint())

	// Terminal checks, in order: wall, self, obstacle.
	if !s.grid.InBounds(newHead) || s.onSnake(newHead) || s.obstacles[newHead] {
		s.endRun()
		return
	}

	s.snake = append(s.snake, types.Point{})
	copy(s.snake[1:], s.snake)
	s.snake[0] = newHead

	ate := false
	if s.food != nil && s.food.Pos == newHead {
		s.eatPrimary()
		ate = true
	} else if i := s.hitConcurrent(newHead); i >= 0 {
		f := s.concurrent[i]
		s.concurrent = append(s.concurrent[:i], s.concurrent[i+1:]...)
		s.eatBonus(f)
		ate = true
	}
	if !ate {
		s.snake = s.snake[:len(s.snake)-1]
	}

	if s.phase == Running {
		s.driftFood()
	}
}

func (s *Session) onSnake(p types.Point) bool {
	for _, seg := range s.snake {
		if seg == p {
			return true
		}
	}
	return false
}

// hitConcurrent returns the index of the first concurrent food at p, or -1.
// Only one item is consumed per tick even if several overlap.
func (s *Session) hitConcurrent(p types.Point) int {
	for i := range s.concurrent {
		if s.concurrent[i].Pos == p {
			return i
		}
	}
	return -1
}

// eatPrimary consumes the primary food. Rotten food costs a point and a
// tail segment, then puts a replacement primary plus a bonus golden food on
// the board; it does not count as eaten for the progression.
func (s *Session) eatPrimary() {
	kind := s.food.Kind
	s.food = nil

	if kind == FoodRotten {
		s.score = max(0, s.score-1)
		s.play(SoundRotten)
		if len(s.snake) > s.cfg.Tuning.MinSnakeLen {
			s.snake = s.snake[:len(s.snake)-1]
		}
		if err := s.spawnFood(); err != nil {
			s.endRun()
			return
		}
		if err := s.spawnConcurrent(FoodGolden); err != nil {
			s.endRun()
		}
		return
	}

	if kind == FoodGolden {
		s.score += 3
		s.play(SoundGolden)
	} else {
		s.score++
		s.play(SoundEat)
	}

	s.foodEaten++
	s.recomputeSpeed()

	if err := s.spawnFood(); err != nil {
		s.endRun()
		return
	}
	s.maybeSpawnObstacle()
}

// eatBonus consumes a concurrent food. It feeds the same progression as a
// primary eat but never respawns the primary.
func (s *Session) eatBonus(f Food) {
	switch f.Kind {
	case FoodGolden:
		s.score += 3
		s.play(SoundGolden)
	case FoodNormal:
		s.score++
		s.play(SoundEat)
	}

	s.foodEaten++
	s.recomputeSpeed()
	s.maybeSpawnObstacle()
}

// recomputeSpeed applies the speed curve: past ten foods each further food
// contributes an extra 0.1 on top of the per-food step.
func (s *Session) recomputeSpeed() {
	if !s.cfg.Features.SpeedScalesWithEats {
		return
	}
	t := s.cfg.Tuning
	increase := float64(s.foodEaten) * t.SpeedStepPerFood
	if s.foodEaten > 10 {
		increase += float64(s.foodEaten-10) * 0.1
	}
	s.speed = min(t.SpeedMax, t.SpeedBase+increase)
}

func (s *Session) maybeSpawnObstacle() {
	if !s.cfg.Features.ProgressiveObstacles {
		return
	}
	if s.foodEaten%s.cfg.Tuning.ObstacleEveryNFoods == 0 {
		s.trySpawnObstacle()
	}
}

// endRun finishes the current run. Qualification for the leaderboard is
// evaluated once, here: a qualifying score moves the session to initials
// entry, anything else stays at the game-over screen.
func (s *Session) endRun() {
	s.phase = GameOver
	s.play(SoundGameOver)

	if s.Recorder != nil {
		s.Recorder.Record(s.score, s.startTime)
	}
	if s.cfg.Features.Leaderboard && s.Store != nil && s.Store.Qualifies(s.score) {
		s.phase = AwaitingInitials
	}
}

func (s *Session) play(snd Sound) {
	if s.cfg.Features.SoundEffects && s.Sounds != nil {
		s.Sounds.Play(snd)
	}
}

// QueueDirection stores a direction intent for the next tick. An exact
// reversal of the current direction is ignored.
func (s *Session) QueueDirection(d types.Direction) {
	if s.phase != Running {
		return
	}
	if d == s.dir.Opposite() {
		return
	}
	s.mu.Lock()
	s.queued = d
	s.mu.Unlock()
}

// TogglePause flips between Running and Paused.
func (s *Session) TogglePause() {
	switch s.phase {
	case Running:
		s.phase = Paused
	case Paused:
		s.phase = Running
	}
}

// Restart begins a fresh run after a game over.
func (s *Session) Restart() {
	if s.phase != GameOver {
		return
	}
	s.reset()
}

// TypeInitial appends one letter to the initials buffer (up to three,
// uppercased). Non-letters are ignored.
func (s *Session) TypeInitial(r rune) {
	if s.phase != AwaitingInitials {
		return
	}
	if len(s.initials) < 3 && unicode.IsLetter(r) {
		s.initials += string(unicode.ToUpper(r))
	}
}

// EraseInitial removes the last typed letter.
func (s *Session) EraseInitial() {
	if s.phase != AwaitingInitials {
		return
	}
	if len(s.initials) > 0 {
		s.initials = s.initials[:len(s.initials)-1]
	}
}

// SubmitInitials records the qualifying score under the typed initials
// (possibly empty) and starts a fresh run.
func (s *Session) SubmitInitials() {
	if s.phase != AwaitingInitials {
		return
	}
	s.commitScore()
	s.reset()
}

// FinalizeScore records the current score on shutdown. While initials entry
// is open the score is left to SubmitInitials instead.
func (s *Session) FinalizeScore() {
	if s.phase == AwaitingInitials {
		return
	}
	s.commitScore()
}

func (s *Session) commitScore() {
	if s.recorded {
		return
	}
	if s.cfg.Features.Leaderboard && s.Store != nil {
		s.Store.Add(s.initials, s.score)
	}
	s.recorded = true
}

// ResetLeaderboard clears the score store. Only allowed mid-play, matching
// the key binding.
func (s *Session) ResetLeaderboard() {
	if s.phase != Running {
		return
	}
	if s.Store != nil {
		s.Store.Reset()
	}
}

func (s *Session) Phase() Phase { return s.phase }

func (s *Session) Score() int { return s.score }

func (s *Session) Speed() float64 { return s.speed }

func (s *Session) FoodEaten() int { return s.foodEaten }

func (s *Session) TickCount() int { return s.tickCount }

func (s *Session) Initials() string { return s.initials }

// Snapshot is the read-only view handed to the renderer once per frame.
type Snapshot struct {
	Grid       types.Grid
	Snake      []types.Point
	Dir        types.Direction
	HasFood    bool
	Food       Food
	Concurrent []Food
	Obstacles  []types.Point
	Score      int
	FoodEaten  int
	Speed      float64
	Tick       int
	Phase      Phase
	Initials   string
	TierIndex  int
}

// Snapshot copies the current world state. The renderer never sees live
// session internals.
func (s *Session) Snapshot() Snapshot {
	snap := Snapshot{
		Grid:      s.grid,
		Snake:     make([]types.Point, len(s.snake)),
		Dir:       s.dir,
		Score:     s.score,
		FoodEaten: s.foodEaten,
		Speed:     s.speed,
		Tick:      s.tickCount,
		Phase:     s.phase,
		Initials:  s.initials,
		TierIndex: s.cfg.TierIndex(s.score),
	}
	copy(snap.Snake, s.snake)
	if s.food != nil {
		snap.HasFood = true
		snap.Food = *s.food
	}
	snap.Concurrent = make([]Food, len(s.concurrent))
	copy(snap.Concurrent, s.concurrent)
	snap.Obstacles = make([]types.Point, 0, len(s.obstacles))
	for p := range s.obstacles {
		snap.Obstacles = append(snap.Obstacles, p)
	}
	return snap
}
