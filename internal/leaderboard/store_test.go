package leaderboard

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s := NewStore(filepath.Join(t.TempDir(), "leaderboard.json"), nil)
	s.now = func() time.Time {
		return time.Date(2024, 3, 9, 14, 5, 30, 0, time.UTC)
	}
	return s
}

func scores(entries []Entry) []int {
	out := make([]int, len(entries))
	for i, e := range entries {
		out[i] = e.Score
	}
	return out
}

func fullBoard() []Entry {
	var entries []Entry
	for i := 0; i < 10; i++ {
		entries = append(entries, Entry{Name: "P", Score: 100 - i*10})
	}
	return entries
}

func TestInsertOrdering(t *testing.T) {
	var entries []Entry
	for _, s := range []int{50, 80, 30} {
		entries = Insert(entries, Entry{Score: s})
	}
	assert.Equal(t, []int{80, 50, 30}, scores(entries))
}

func TestInsertStableTies(t *testing.T) {
	entries := Insert(nil, Entry{Name: "first", Score: 5})
	entries = Insert(entries, Entry{Name: "second", Score: 5})
	entries = Insert(entries, Entry{Name: "top", Score: 9})

	names := []string{entries[0].Name, entries[1].Name, entries[2].Name}
	assert.Equal(t, []string{"top", "first", "second"}, names)
}

func TestInsertFullBoard(t *testing.T) {
	board := fullBoard()

	t.Run("low score unchanged", func(t *testing.T) {
		out := Insert(board, Entry{Name: "low", Score: 5})
		assert.Equal(t, board, out)
		assert.False(t, Qualifies(board, 5))
		assert.False(t, Qualifies(board, 10))
	})

	t.Run("qualifying score drops lowest", func(t *testing.T) {
		out := Insert(board, Entry{Name: "new", Score: 55})
		require.Len(t, out, 10)
		assert.Equal(t, []int{100, 90, 80, 70, 60, 55, 50, 40, 30, 20}, scores(out))
		assert.True(t, Qualifies(board, 55))
	})

	t.Run("input untouched", func(t *testing.T) {
		Insert(board, Entry{Score: 1000})
		assert.Equal(t, 100, board[0].Score)
	})
}

func TestQualifiesShortBoard(t *testing.T) {
	assert.True(t, Qualifies(nil, 0))
	assert.True(t, Qualifies([]Entry{{Score: 50}}, 1))
}

func TestLoadMissingFile(t *testing.T) {
	s := newTestStore(t)
	entries := s.Load()
	assert.NotNil(t, entries)
	assert.Empty(t, entries)
	assert.True(t, s.Qualifies(0))
}

func TestLoadCorruptFile(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"garbage", "not json"},
		{"object root", `{"name":"x"}`},
		{"bad pair", `[["x"]]`},
		{"no score", `[{"name":"x"}]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestStore(t)
			require.NoError(t, os.WriteFile(s.path, []byte(tt.data), 0o644))
			assert.Empty(t, s.Load())
		})
	}
}

func TestLoadMixedFormats(t *testing.T) {
	s := newTestStore(t)
	data := `[["ann", 30], {"name": "bob", "score": 70}, {"name": "cy", "points": 50, "mode": "2P", "date": "2024-01-01 00:00:00"}]`
	require.NoError(t, os.WriteFile(s.path, []byte(data), 0o644))

	entries := s.Load()
	require.Len(t, entries, 3)
	assert.Equal(t, Entry{Name: "bob", Score: 70}, entries[0])
	assert.Equal(t, Entry{Name: "cy", Score: 50, Mode: "2P", Date: "2024-01-01 00:00:00"}, entries[1])
	assert.Equal(t, Entry{Name: "ann", Score: 30}, entries[2])
}

func TestAddWritesObjects(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, s.Add("ALICE", 5, "1P"))
	require.NoError(t, s.Add("A VERY LONG PLAYER NAME", 7, "2P"))

	entries := s.Load()
	require.Len(t, entries, 2)
	assert.Equal(t, Entry{Name: "A VERY LONG ", Score: 7, Mode: "2P", Date: "2024-03-09 14:05:30"}, entries[0])
	assert.Equal(t, "ALICE", entries[1].Name)

	data, err := os.ReadFile(s.path)
	require.NoError(t, err)
	var raw []map[string]any
	require.NoError(t, json.Unmarshal(data, &raw))
	assert.Contains(t, raw[0], "points")
	assert.NotContains(t, raw[0], "score")
}

func TestAddKeepsTopTen(t *testing.T) {
	s := newTestStore(t)
	for i := 1; i <= 12; i++ {
		require.NoError(t, s.Add("P", i, "1P"))
	}
	entries := s.Load()
	assert.Equal(t, []int{12, 11, 10, 9, 8, 7, 6, 5, 4, 3}, scores(entries))
	assert.False(t, s.Qualifies(3))
	assert.True(t, s.Qualifies(4))
}

func TestAddOverCorruptFile(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, os.WriteFile(s.path, []byte("{{"), 0o644))
	require.NoError(t, s.Add("NEW", 3, "1P"))
	assert.Len(t, s.Load(), 1)
}

func TestAddWriteFailure(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "file")
	require.NoError(t, os.WriteFile(blocker, nil, 0o644))

	s := NewStore(filepath.Join(blocker, "leaderboard.json"), nil)
	err := s.Add("X", 1, "1P")
	require.Error(t, err)
	assert.True(t, strings.HasPrefix(err.Error(), "create leaderboard dir"))
}

func TestConcurrentAdds(t *testing.T) {
	s := newTestStore(t)
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(score int) {
			defer wg.Done()
			assert.NoError(t, s.Add("P", score, "2P"))
		}(i)
	}
	wg.Wait()
	assert.Len(t, s.Load(), 8)
}

func TestTruncateName(t *testing.T) {
	assert.Equal(t, "BOB", TruncateName("BOB"))
	assert.Equal(t, "ÅÅÅÅÅÅÅÅÅÅÅÅ", TruncateName("ÅÅÅÅÅÅÅÅÅÅÅÅÅÅ"))
}
