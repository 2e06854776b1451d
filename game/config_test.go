package game

import "testing"

func TestTierIndex(t *testing.T) {
	cfg := DefaultConfig()

	tests := []struct {
		score int
		want  int
	}{
		{0, 0},
		{4, 0},
		{5, 1},
		{10, 2},
		{19, 2},
		{20, 3},
		{35, 4},
		{50, 5},
		{999, 5},
	}
	for _, tt := range tests {
		if got := cfg.TierIndex(tt.score); got != tt.want {
			t.Errorf("TierIndex(%d) = %d, want %d", tt.score, got, tt.want)
		}
	}
}

func TestTierIndexDisabledFeature(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Features.ScoreTierColors = false

	if got := cfg.TierIndex(100); got != 0 {
		t.Errorf("TierIndex(100) = %d, want 0 with tier colors off", got)
	}
}

func TestSpeedCurveWithExtraRamp(t *testing.T) {
	s := newTestSession(1)

	// Past ten foods each further food adds 0.1 on top of the step.
	s.foodEaten = 12
	s.recomputeSpeed()
	want := 4 + 12*0.3 + 2*0.1
	if got := s.Speed(); got < want-1e-9 || got > want+1e-9 {
		t.Errorf("speed = %v, want %v", got, want)
	}

	// The curve caps at the maximum.
	s.foodEaten = 100
	s.recomputeSpeed()
	if got := s.Speed(); got != s.cfg.Tuning.SpeedMax {
		t.Errorf("speed = %v, want cap %v", got, s.cfg.Tuning.SpeedMax)
	}
}

func TestSpeedFrozenWhenFeatureOff(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Features.SpeedScalesWithEats = false
	s := sessionWithConfig(cfg, 1)

	s.foodEaten = 5
	s.recomputeSpeed()

	if got := s.Speed(); got != cfg.Tuning.SpeedBase {
		t.Errorf("speed = %v, want base %v with scaling off", got, cfg.Tuning.SpeedBase)
	}
}
