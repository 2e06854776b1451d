package leaderboard

import (
	"os"
	"path/filepath"
	"testing"
)

func boardPath(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "leaderboard.json")
}

func TestRoundTrip(t *testing.T) {
	path := boardPath(t)

	b := Load(path, 5)
	b.Add("ABC", 10)
	b.Add("DEF", 30)
	b.Add("GHI", 20)

	reloaded := Load(path, 5)
	got := reloaded.Entries()
	want := []Entry{{30, "DEF"}, {20, "GHI"}, {10, "ABC"}}

	if len(got) != len(want) {
		t.Fatalf("entries = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("entry %d = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestTruncatesToCapacity(t *testing.T) {
	b := Load(boardPath(t), 3)
	for i, score := range []int{5, 9, 1, 7, 3} {
		b.Add(string(rune('A'+i)), score)
	}

	got := b.Entries()
	if len(got) != 3 {
		t.Fatalf("entries = %d, want 3", len(got))
	}
	if got[0].Score != 9 || got[1].Score != 7 || got[2].Score != 5 {
		t.Errorf("top scores = %+v, want 9/7/5 descending", got)
	}
}

func TestTiesKeepInsertionOrder(t *testing.T) {
	b := Load(boardPath(t), 5)
	b.Add("FST", 10)
	b.Add("SND", 10)

	got := b.Entries()
	if got[0].Initials != "FST" || got[1].Initials != "SND" {
		t.Errorf("tied entries = %+v, want insertion order preserved", got)
	}
}

func TestQualifies(t *testing.T) {
	b := Load(boardPath(t), 5)

	if !b.Qualifies(0) {
		t.Error("any score must qualify while the board is short")
	}

	for _, score := range []int{10, 12, 14, 16, 18} {
		b.Add("AAA", score)
	}

	tests := []struct {
		score int
		want  bool
	}{
		{9, false},
		{10, false}, // equal to the minimum does not qualify
		{11, true},
	}
	for _, tt := range tests {
		if got := b.Qualifies(tt.score); got != tt.want {
			t.Errorf("Qualifies(%d) = %v, want %v", tt.score, got, tt.want)
		}
	}
}

func TestLegacyBareIntegerEntries(t *testing.T) {
	path := boardPath(t)
	data := `{"scores": [12, {"score": 5, "initials": "XY"}]}`
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}

	got := Load(path, 5).Entries()
	want := []Entry{{12, "AAA"}, {5, "XY"}}

	if len(got) != len(want) {
		t.Fatalf("entries = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("entry %d = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestMissingFileIsEmptyBoard(t *testing.T) {
	b := Load(filepath.Join(t.TempDir(), "nope.json"), 5)

	if len(b.Entries()) != 0 {
		t.Error("a missing file must load as an empty board")
	}
	if !b.Qualifies(0) {
		t.Error("an empty board must accept any score")
	}
}

func TestCorruptFileIsEmptyBoard(t *testing.T) {
	path := boardPath(t)
	if err := os.WriteFile(path, []byte("{not json"), 0644); err != nil {
		t.Fatal(err)
	}

	if got := Load(path, 5).Entries(); len(got) != 0 {
		t.Errorf("entries = %+v, want none for a corrupt file", got)
	}
}

func TestResetClearsAndPersists(t *testing.T) {
	path := boardPath(t)
	b := Load(path, 5)
	b.Add("ABC", 10)

	b.Reset()

	if len(b.Entries()) != 0 {
		t.Error("reset must clear the board")
	}
	if got := Load(path, 5).Entries(); len(got) != 0 {
		t.Errorf("reloaded entries = %+v, want none after reset", got)
	}
}

func TestEntriesReturnsCopy(t *testing.T) {
	b := Load(boardPath(t), 5)
	b.Add("ABC", 10)

	got := b.Entries()
	got[0].Score = 99

	if b.Entries()[0].Score != 10 {
		t.Error("mutating the returned slice must not touch the board")
	}
}
