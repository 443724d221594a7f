package leaderboard

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/tomz197/termpong/internal/config"
)

// Store reads and rewrites a leaderboard file. It is safe for concurrent
// use by several game sessions sharing one file.
type Store struct {
	path   string
	logger *log.Logger
	now    func() time.Time

	mu sync.Mutex
}

// NewStore creates a store backed by the file at path. A nil logger
// discards log output.
func NewStore(path string, logger *log.Logger) *Store {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Store{
		path:   path,
		logger: logger,
		now:    time.Now,
	}
}

// Load returns the stored entries, best first. A missing, unreadable or
// malformed file yields an empty board.
func (s *Store) Load() []Entry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load()
}

func (s *Store) load() []Entry {
	entries, err := s.read()
	if err != nil {
		s.logger.Debug("leaderboard unavailable", "path", s.path, "err", err)
		return []Entry{}
	}
	return entries
}

func (s *Store) read() ([]Entry, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return []Entry{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read leaderboard: %w", err)
	}

	var entries []Entry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("decode leaderboard: %w", err)
	}

	// Normalise order and size for files written by hand or by older builds.
	sorted := make([]Entry, 0, len(entries))
	for _, e := range entries {
		sorted = Insert(sorted, e)
	}
	return sorted, nil
}

// Qualifies reports whether score would earn a place on the current board.
func (s *Store) Qualifies(score int) bool {
	return Qualifies(s.Load(), score)
}

// Add records a score and rewrites the whole file. Names are trimmed to the
// maximum name length.
func (s *Store) Add(name string, score int, mode string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry := Entry{
		Name:  TruncateName(name),
		Score: score,
		Mode:  mode,
		Date:  s.now().Format(config.LeaderboardDate),
	}
	entries := Insert(s.load(), entry)

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return fmt.Errorf("encode leaderboard: %w", err)
	}
	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create leaderboard dir: %w", err)
		}
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("write leaderboard: %w", err)
	}

	s.logger.Info("leaderboard updated", "name", entry.Name, "score", score, "mode", mode)
	return nil
}

// TruncateName cuts name to the maximum name length in runes.
func TruncateName(name string) string {
	r := []rune(name)
	if len(r) > config.MaxNameLength {
		r = r[:config.MaxNameLength]
	}
	return string(r)
}
