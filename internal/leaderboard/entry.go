// Package leaderboard persists the top scores to a JSON file.
package leaderboard

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"

	"github.com/tomz197/termpong/internal/config"
)

// Entry is one leaderboard record.
type Entry struct {
	Name  string `json:"name"`
	Score int    `json:"points"`
	Mode  string `json:"mode,omitempty"`
	Date  string `json:"date,omitempty"`
}

// UnmarshalJSON accepts either an object or a bare [name, score] pair.
func (e *Entry) UnmarshalJSON(data []byte) error {
	var pair []json.RawMessage
	if err := json.Unmarshal(data, &pair); err == nil {
		if len(pair) != 2 {
			return fmt.Errorf("entry pair has %d elements", len(pair))
		}
		var name string
		var score float64
		if err := json.Unmarshal(pair[0], &name); err != nil {
			return fmt.Errorf("entry name: %w", err)
		}
		if err := json.Unmarshal(pair[1], &score); err != nil {
			return fmt.Errorf("entry score: %w", err)
		}
		*e = Entry{Name: name, Score: int(score)}
		return nil
	}

	var obj struct {
		Name   string   `json:"name"`
		Points *float64 `json:"points"`
		Score  *float64 `json:"score"`
		Mode   string   `json:"mode"`
		Date   string   `json:"date"`
	}
	if err := json.Unmarshal(data, &obj); err != nil {
		return err
	}
	e.Name, e.Mode, e.Date = obj.Name, obj.Mode, obj.Date
	switch {
	case obj.Points != nil:
		e.Score = int(*obj.Points)
	case obj.Score != nil:
		e.Score = int(*obj.Score)
	default:
		return errors.New("entry has no score")
	}
	return nil
}

// Insert adds e to entries, keeps them sorted by descending score and
// truncates the result to the leaderboard size. Equal scores keep their
// insertion order. The input slice is not modified.
func Insert(entries []Entry, e Entry) []Entry {
	out := make([]Entry, 0, len(entries)+1)
	out = append(out, entries...)
	out = append(out, e)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Score > out[j].Score
	})
	if len(out) > config.LeaderboardSize {
		out = out[:config.LeaderboardSize]
	}
	return out
}

// Qualifies reports whether score would earn a place on a board holding
// entries.
func Qualifies(entries []Entry, score int) bool {
	if len(entries) < config.LeaderboardSize {
		return true
	}
	lowest := entries[0].Score
	for _, e := range entries[1:] {
		if e.Score < lowest {
			lowest = e.Score
		}
	}
	return score > lowest
}
