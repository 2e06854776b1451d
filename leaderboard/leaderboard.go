// Package leaderboard persists the top final scores as a small JSON file.
package leaderboard

import (
	"encoding/json"
	"log"
	"os"
	"sort"
	"sync"
)

// Entry is one leaderboard row.
type Entry struct {
	Score    int    `json:"score"`
	Initials string `json:"initials"`
}

// UnmarshalJSON accepts both the current object form and the legacy bare
// integer form, which is normalized to initials "AAA".
func (e *Entry) UnmarshalJSON(data []byte) error {
	var score int
	if err := json.Unmarshal(data, &score); err == nil {
		e.Score = score
		e.Initials = "AAA"
		return nil
	}

	type entry Entry // avoid recursing into this method
	var full entry
	if err := json.Unmarshal(data, &full); err != nil {
		return err
	}
	*e = Entry(full)
	return nil
}

type file struct {
	Scores []Entry `json:"scores"`
}

// Board is the persistent top-N score list, ordered by score descending
// with ties kept in insertion order.
type Board struct {
	mu      sync.Mutex
	path    string
	size    int
	entries []Entry
}

// Load reads the board from path. A missing or unreadable file is treated
// as an empty board; the problem is logged, never fatal.
func Load(path string, size int) *Board {
	b := &Board{path: path, size: size}

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Printf("warning: could not load leaderboard %s: %v", path, err)
		}
		return b
	}

	var f file
	if err := json.Unmarshal(data, &f); err != nil {
		log.Printf("warning: could not parse leaderboard %s: %v", path, err)
		return b
	}
	b.entries = f.Scores
	return b
}

// Qualifies reports whether score earns a spot: always while the board is
// short of capacity, otherwise only by strictly beating the lowest entry.
func (b *Board) Qualifies(score int) bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	if len(b.entries) < b.size {
		return true
	}
	lowest := b.entries[0].Score
	for _, e := range b.entries[1:] {
		if e.Score < lowest {
			lowest = e.Score
		}
	}
	return score > lowest
}

// Add inserts a score, re-sorts descending (stable, so equal scores keep
// insertion order), truncates to capacity and saves.
func (b *Board) Add(initials string, score int) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.entries = append(b.entries, Entry{Score: score, Initials: initials})
	sort.SliceStable(b.entries, func(i, j int) bool {
		return b.entries[i].Score > b.entries[j].Score
	})
	if len(b.entries) > b.size {
		b.entries = b.entries[:b.size]
	}
	b.save()
}

// Reset clears the board and saves the empty state.
func (b *Board) Reset() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.entries = nil
	b.save()
}

// Entries returns a copy of the current rows, best first.
func (b *Board) Entries() []Entry {
	b.mu.Lock()
	defer b.mu.Unlock()

	out := make([]Entry, len(b.entries))
	copy(out, b.entries)
	return out
}

// save writes the board out. A failed write leaves the in-memory board
// intact and is only logged.
func (b *Board) save() {
	data, err := json.Marshal(file{Scores: b.entries})
	if err != nil {
		log.Printf("warning: could not encode leaderboard: %v", err)
		return
	}
	if err := os.WriteFile(b.path, data, 0644); err != nil {
		log.Printf("warning: could not save leaderboard %s: %v", b.path, err)
	}
}
