package game

import (
	"encoding/json"
	"log"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"
)

// RunRecord is one finished run in the history file.
type RunRecord struct {
	ID        string    `json:"id"`
	Score     int       `json:"score"`
	StartTime time.Time `json:"startTime"`
	EndTime   time.Time `json:"endTime"`
	Duration  float64   `json:"duration"`
}

// History accumulates per-run records and persists them as JSON. Load and
// save failures are logged and otherwise ignored; the in-memory history
// keeps working either way.
type History struct {
	mu   sync.Mutex
	path string
	Runs []RunRecord
}

func NewHistory(path string) *History {
	h := &History{path: path}
	h.load()
	return h
}

// Record implements RunRecorder.
func (h *History) Record(score int, started time.Time) {
	h.mu.Lock()
	defer h.mu.Unlock()

	now := time.Now()
	h.Runs = append(h.Runs, RunRecord{
		ID:        uuid.New().String(),
		Score:     score,
		StartTime: started,
		EndTime:   now,
		Duration:  now.Sub(started).Seconds(),
	})
	h.save()
}

func (h *History) load() {
	data, err := os.ReadFile(h.path)
	if err != nil {
		return // nothing saved yet
	}
	if err := json.Unmarshal(data, &h.Runs); err != nil {
		log.Printf("warning: could not parse run history %s: %v", h.path, err)
	}
}

func (h *History) save() {
	data, err := json.MarshalIndent(h.Runs, "", "  ")
	if err != nil {
		log.Printf("warning: could not encode run history: %v", err)
		return
	}
	if dir := filepath.Dir(h.path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			log.Printf("warning: could not create data directory: %v", err)
			return
		}
	}
	if err := os.WriteFile(h.path, data, 0644); err != nil {
		log.Printf("warning: could not save run history: %v", err)
	}
}
