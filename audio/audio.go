// Package audio synthesizes the game's tone effects through the system
// speaker.
package audio

import (
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"snake-arcade/game"
)

const sampleRate = beep.SampleRate(44100)

// Player plays short sine tones for game events. A failed device init
// leaves the player in silent mode; Play then does nothing.
type Player struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
}

func NewPlayer() *Player {
	return &Player{mixer: &beep.Mixer{}}
}

// Init opens the speaker. The device error is returned so the caller can
// log it; the player itself just stays silent on failure.
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*100)); err != nil {
		return err
	}
	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

// Play implements game.SoundPlayer.
func (p *Player) Play(snd game.Sound) {
	switch snd {
	case game.SoundEat:
		p.tone(440, 100*time.Millisecond)
	case game.SoundGolden:
		p.tone(660, 150*time.Millisecond)
	case game.SoundRotten:
		p.tone(220, 200*time.Millisecond)
	case game.SoundGameOver:
		p.tone(440, 500*time.Millisecond)
	}
}

func (p *Player) tone(freq float64, d time.Duration) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	streamer := beep.Take(sampleRate.N(d), newToneGenerator(freq))

	// The mixer is live on the speaker goroutine once Play was called.
	speaker.Lock()
	p.mixer.Add(streamer)
	speaker.Unlock()
}

// Close silences everything. beep has no speaker teardown; clearing the
// mixer stops all output.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
	p.initialized = false
}

// toneGenerator streams a fixed-frequency sine wave.
type toneGenerator struct {
	freq float64
	pos  int
}

func newToneGenerator(freq float64) *toneGenerator {
	return &toneGenerator{freq: freq}
}

func (g *toneGenerator) Stream(samples [][2]float64) (int, bool) {
	for i := range samples {
		v := 0.5 * math.Sin(2*math.Pi*g.freq*float64(g.pos)/float64(sampleRate))
		samples[i][0] = v
		samples[i][1] = v
		g.pos++
	}
	return len(samples), true
}

func (g *toneGenerator) Err() error { return nil }
