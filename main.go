package main

import (
	"flag"
	"log"
	"runtime/debug"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"
	"golang.org/x/exp/rand"

	"snake-arcade/audio"
	"snake-arcade/game"
	"snake-arcade/game/types"
	"snake-arcade/leaderboard"
	"snake-arcade/ui"
)

const (
	leaderboardFile = "leaderboard.json"
	historyFile     = "data/stats.json"
)

func main() {
	size := flag.Int("size", 600, "window size in pixels (square)")
	mute := flag.Bool("mute", false, "disable sound effects")
	flag.Parse()

	cfg := game.DefaultConfig()
	if *mute {
		cfg.Features.SoundEffects = false
	}

	rng := rand.New(rand.NewSource(uint64(time.Now().UnixNano())))

	rl.InitWindow(int32(*size), int32(*size), "Snake Arcade")
	defer rl.CloseWindow()
	rl.SetTargetFPS(60)

	// Log and fall through to the deferred window teardown on any panic in
	// the loop below.
	defer func() {
		if r := recover(); r != nil {
			log.Printf("fatal: %v\n%s", r, debug.Stack())
		}
	}()

	player := audio.NewPlayer()
	if cfg.Features.SoundEffects {
		if err := player.Init(); err != nil {
			log.Printf("warning: sound disabled: %v", err)
		}
		defer player.Close()
	}

	board := leaderboard.Load(leaderboardFile, cfg.Tuning.LeaderboardSize)
	history := game.NewHistory(historyFile)

	session := game.NewSession(cfg, rng)
	session.Sounds = player
	session.Store = board
	session.Recorder = history

	renderer := ui.NewRenderer()
	lastTick := time.Now()

	for !rl.WindowShouldClose() {
		handleInput(session)

		// The tick rate follows the current speed, so the game gets faster
		// as the score grows.
		interval := time.Duration(float64(time.Second) / session.Speed())
		if time.Since(lastTick) >= interval {
			session.Advance()
			lastTick = time.Now()
		}

		renderer.Draw(session.Snapshot(), board.Entries())
	}

	session.FinalizeScore()
}

func handleInput(s *game.Session) {
	switch s.Phase() {
	case game.Running:
		if rl.IsKeyPressed(rl.KeyUp) || rl.IsKeyPressed(rl.KeyW) {
			s.QueueDirection(types.Up)
		} else if rl.IsKeyPressed(rl.KeyDown) || rl.IsKeyPressed(rl.KeyS) {
			s.QueueDirection(types.Down)
		} else if rl.IsKeyPressed(rl.KeyLeft) || rl.IsKeyPressed(rl.KeyA) {
			s.QueueDirection(types.Left)
		} else if rl.IsKeyPressed(rl.KeyRight) || rl.IsKeyPressed(rl.KeyD) {
			s.QueueDirection(types.Right)
		}
		if rl.IsKeyPressed(rl.KeySpace) || rl.IsKeyPressed(rl.KeyP) {
			s.TogglePause()
		}
		if rl.IsKeyPressed(rl.KeyL) {
			s.ResetLeaderboard()
		}

	case game.Paused:
		if rl.IsKeyPressed(rl.KeySpace) || rl.IsKeyPressed(rl.KeyP) {
			s.TogglePause()
		}

	case game.GameOver:
		if rl.IsKeyPressed(rl.KeyR) {
			s.Restart()
		}

	case game.AwaitingInitials:
		for r := rl.GetCharPressed(); r != 0; r = rl.GetCharPressed() {
			s.TypeInitial(r)
		}
		if rl.IsKeyPressed(rl.KeyBackspace) {
			s.EraseInitial()
		}
		if rl.IsKeyPressed(rl.KeyEnter) {
			s.SubmitInitials()
		}
	}
}
