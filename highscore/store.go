// Package highscore persists the top-N score board as a flat JSON file.
// All IO failures degrade silently: an unreadable file yields an empty
// board, an unwritable one loses nothing but persistence. Gameplay never
// depends on this package succeeding.
package highscore

import (
	"encoding/json"
	"os"
	"sort"
)

// MaxEntries is the board size; a score qualifies while the board has
// room or beats its lowest entry.
const MaxEntries = 10

// Entry is one persisted score.
type Entry struct {
	Name  string `json:"name"`
	Score int    `json:"score"`
}

// Store holds the board in memory and mirrors it to a file.
type Store struct {
	path    string
	entries []Entry
}

// Open loads the board from path. A missing or malformed file starts an
// empty board.
func Open(path string) *Store {
	s := &Store{path: path}
	data, err := os.ReadFile(path)
	if err != nil {
		return s
	}
	if err := json.Unmarshal(data, &s.entries); err != nil {
		s.entries = nil
		return s
	}
	s.sortAndTrim()
	return s
}

// Add records a score, keeps the board sorted and trimmed, and saves.
func (s *Store) Add(name string, score int) {
	s.entries = append(s.entries, Entry{Name: name, Score: score})
	s.sortAndTrim()
	s.save()
}

// Qualifies reports whether score would make the board.
func (s *Store) Qualifies(score int) bool {
	if len(s.entries) < MaxEntries {
		return true
	}
	return score > s.entries[len(s.entries)-1].Score
}

// Top returns up to n leading entries.
func (s *Store) Top(n int) []Entry {
	if n > len(s.entries) {
		n = len(s.entries)
	}
	out := make([]Entry, n)
	copy(out, s.entries[:n])
	return out
}

func (s *Store) sortAndTrim() {
	sort.SliceStable(s.entries, func(i, j int) bool {
		return s.entries[i].Score > s.entries[j].Score
	})
	if len(s.entries) > MaxEntries {
		s.entries = s.entries[:MaxEntries]
	}
}

func (s *Store) save() {
	data, err := json.Marshal(s.entries)
	if err != nil {
		return
	}
	_ = os.WriteFile(s.path, data, 0o644)
}
