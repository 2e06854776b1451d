// Package ui draws session snapshots with raylib. It never mutates game
// state.
package ui

import (
	"fmt"
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"

	"snake-arcade/game"
	"snake-arcade/game/types"
	"snake-arcade/leaderboard"
)

const borderPadding = 10 // padding around the game area

// tierPalette maps score tier index to snake color.
var tierPalette = []rl.Color{
	{R: 0x22, G: 0xc5, B: 0x5e, A: 255}, // green
	{R: 0x3b, G: 0x82, B: 0xf6, A: 255}, // blue
	{R: 0xa8, G: 0x55, B: 0xf7, A: 255}, // purple
	{R: 0xf5, G: 0x9e, B: 0x0b, A: 255}, // orange
	{R: 0xef, G: 0x44, B: 0x44, A: 255}, // red
	{R: 0xea, G: 0xb3, B: 0x08, A: 255}, // yellow
}

var (
	foodGreen = rl.Color{R: 34, G: 197, B: 94, A: 255}
	foodGold  = rl.Color{R: 255, G: 215, B: 0, A: 255}
	foodBrown = rl.Color{R: 139, G: 69, B: 19, A: 255}
)

type Renderer struct {
	cellSize     int32
	screenWidth  int32
	screenHeight int32
	offsetX      int32
	offsetY      int32
}

func NewRenderer() *Renderer {
	r := &Renderer{}
	r.UpdateDimensions()
	return r
}

func (r *Renderer) UpdateDimensions() {
	r.screenWidth = int32(rl.GetScreenWidth())
	r.screenHeight = int32(rl.GetScreenHeight())
}

// Draw renders one frame from the snapshot and the current leaderboard.
func (r *Renderer) Draw(snap game.Snapshot, board []leaderboard.Entry) {
	r.UpdateDimensions()
	rl.BeginDrawing()
	rl.ClearBackground(rl.Black)

	availableWidth := r.screenWidth - borderPadding*2
	availableHeight := r.screenHeight - borderPadding*2
	cellW := availableWidth / int32(snap.Grid.Width)
	cellH := availableHeight / int32(snap.Grid.Height)
	r.cellSize = min(cellW, cellH)
	r.offsetX = (r.screenWidth - r.cellSize*int32(snap.Grid.Width)) / 2
	r.offsetY = (r.screenHeight - r.cellSize*int32(snap.Grid.Height)) / 2

	// Grid background
	rl.DrawRectangle(r.offsetX-1, r.offsetY-1,
		r.cellSize*int32(snap.Grid.Width)+2, r.cellSize*int32(snap.Grid.Height)+2,
		rl.DarkGray)
	rl.DrawRectangle(r.offsetX, r.offsetY,
		r.cellSize*int32(snap.Grid.Width), r.cellSize*int32(snap.Grid.Height),
		rl.Black)

	for _, p := range snap.Obstacles {
		r.drawCell(p, rl.Color{R: 64, G: 64, B: 64, A: 255})
	}

	snakeColor := tierPalette[snap.TierIndex%len(tierPalette)]
	for i := len(snap.Snake) - 1; i >= 1; i-- {
		r.drawCell(snap.Snake[i], snakeColor)
	}
	if len(snap.Snake) > 0 {
		r.drawHead(snap.Snake[0], snap.Dir, snakeColor)
	}

	if snap.HasFood {
		r.drawFood(snap.Food, snap.Tick)
	}
	for _, f := range snap.Concurrent {
		r.drawFood(f, snap.Tick)
	}

	r.drawHUD(snap)

	switch snap.Phase {
	case game.Paused:
		r.drawCentered("PAUSED", 0, 36, rl.White)
		r.drawCentered("Press P or SPACE to unpause", 40, 20, rl.White)
	case game.GameOver, game.AwaitingInitials:
		r.drawGameOver(snap, board)
	}

	rl.EndDrawing()
}

func (r *Renderer) drawCell(p types.Point, color rl.Color) {
	rl.DrawRectangle(
		r.offsetX+int32(p.X)*r.cellSize,
		r.offsetY+int32(p.Y)*r.cellSize,
		r.cellSize, r.cellSize, color)
}

// drawHead draws the head slightly brighter with a direction indicator
// triangle, the same marker the body follows on screen.
func (r *Renderer) drawHead(p types.Point, dir types.Direction, color rl.Color) {
	head := rl.Color{
		R: uint8(min(int32(float32(color.R)*1.3), 255)),
		G: uint8(min(int32(float32(color.G)*1.3), 255)),
		B: uint8(min(int32(float32(color.B)*1.3), 255)),
		A: 255,
	}
	r.drawCell(p, head)

	x := r.offsetX + int32(p.X)*r.cellSize
	y := r.offsetY + int32(p.Y)*r.cellSize
	half := r.cellSize / 2
	switch dir {
	case types.Right:
		rl.DrawTriangle(
			rl.Vector2{X: float32(x + r.cellSize), Y: float32(y + half)},
			rl.Vector2{X: float32(x + half), Y: float32(y)},
			rl.Vector2{X: float32(x + half), Y: float32(y + r.cellSize)},
			rl.Yellow)
	case types.Left:
		rl.DrawTriangle(
			rl.Vector2{X: float32(x), Y: float32(y + half)},
			rl.Vector2{X: float32(x + half), Y: float32(y)},
			rl.Vector2{X: float32(x + half), Y: float32(y + r.cellSize)},
			rl.Yellow)
	case types.Down:
		rl.DrawTriangle(
			rl.Vector2{X: float32(x + half), Y: float32(y + r.cellSize)},
			rl.Vector2{X: float32(x), Y: float32(y + half)},
			rl.Vector2{X: float32(x + r.cellSize), Y: float32(y + half)},
			rl.Yellow)
	case types.Up:
		rl.DrawTriangle(
			rl.Vector2{X: float32(x + half), Y: float32(y)},
			rl.Vector2{X: float32(x), Y: float32(y + half)},
			rl.Vector2{X: float32(x + r.cellSize), Y: float32(y + half)},
			rl.Yellow)
	}
}

func (r *Renderer) drawFood(f game.Food, tick int) {
	var color rl.Color
	switch f.Kind {
	case game.FoodGolden:
		color = foodGold
	case game.FoodRotten:
		color = foodBrown
	default:
		color = foodGreen
	}

	// Pulsing glow behind the food cell
	glow := 0.5 + 0.5*math.Sin(float64(tick)*0.4)
	cx := r.offsetX + int32(f.Pos.X)*r.cellSize + r.cellSize/2
	cy := r.offsetY + int32(f.Pos.Y)*r.cellSize + r.cellSize/2
	radius := float32(r.cellSize) * float32(0.6+0.3*glow)
	rl.DrawCircle(cx, cy, radius, rl.Color{R: color.R, G: color.G, B: color.B, A: 60})

	rl.DrawRectangle(
		r.offsetX+int32(f.Pos.X)*r.cellSize+2,
		r.offsetY+int32(f.Pos.Y)*r.cellSize+2,
		r.cellSize-4, r.cellSize-4, color)
}

func (r *Renderer) drawHUD(snap game.Snapshot) {
	fontSize := int32(20)
	rl.DrawText(fmt.Sprintf("Score: %d", snap.Score), borderPadding, borderPadding, fontSize, rl.White)
	rl.DrawText(fmt.Sprintf("Speed: %.1f", snap.Speed), borderPadding, borderPadding+25, fontSize, rl.White)
	if n := len(snap.Concurrent); n > 0 {
		rl.DrawText(fmt.Sprintf("Bonus foods: %d", n), borderPadding, borderPadding+50, fontSize, rl.White)
	}
}

func (r *Renderer) drawGameOver(snap game.Snapshot, board []leaderboard.Entry) {
	rl.DrawRectangle(0, 0, r.screenWidth, r.screenHeight, rl.Color{A: 128})

	r.drawCentered("GAME OVER", -100, 36, rl.White)
	r.drawCentered(fmt.Sprintf("Final Score: %d", snap.Score), -60, 28, rl.White)

	if snap.Phase == game.AwaitingInitials {
		r.drawCentered("Enter your initials (3 letters):", -10, 20, rl.White)
		shown := snap.Initials
		for len(shown) < 3 {
			shown += "_"
		}
		r.drawCentered(shown, 20, 48, rl.White)
		r.drawCentered("Press ENTER to save", 70, 20, rl.White)
	} else {
		r.drawCentered("Press R to restart, ESC to quit", 0, 20, rl.White)
		r.drawCentered("Press L during gameplay to reset leaderboard", 30, 20, rl.White)
	}

	if len(board) > 0 {
		r.drawCentered("LEADERBOARD", 110, 20, rl.White)
		for i, e := range board {
			initials := e.Initials
			if initials == "" {
				initials = "---"
			}
			line := fmt.Sprintf("%d. %s - %d", i+1, initials, e.Score)
			r.drawCentered(line, int32(140+i*25), 20, rl.White)
		}
	}
}

// drawCentered draws text horizontally centered, offset vertically from the
// screen center.
func (r *Renderer) drawCentered(text string, yOffset, fontSize int32, color rl.Color) {
	width := rl.MeasureText(text, fontSize)
	rl.DrawText(text, (r.screenWidth-width)/2, r.screenHeight/2+yOffset, fontSize, color)
}
