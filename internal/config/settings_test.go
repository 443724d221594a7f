package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "pong.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadSettings_MissingFileUsesDefaults(t *testing.T) {
	s, err := LoadSettings(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultSettings(), s)
}

func TestLoadSettings_EmptyPathUsesDefaults(t *testing.T) {
	s, err := LoadSettings("")
	require.NoError(t, err)
	assert.Equal(t, DefaultSettings(), s)
}

func TestLoadSettings_PartialOverride(t *testing.T) {
	path := writeFile(t, `
leaderboard_path: /var/lib/pong/board.json
features:
  power_ups: false
defaults:
  difficulty: a
  target_score: 11
`)
	s, err := LoadSettings(path)
	require.NoError(t, err)

	assert.Equal(t, "/var/lib/pong/board.json", s.LeaderboardPath)
	assert.False(t, s.Features.PowerUps)
	assert.True(t, s.Features.Resize)
	assert.True(t, s.Features.Leaderboard)
	assert.Equal(t, "A", s.Defaults.Difficulty)
	assert.Equal(t, 11, s.Defaults.Target)
	assert.True(t, s.Defaults.TwoPlayer)
}

func TestLoadSettings_NormalizesInvalidValues(t *testing.T) {
	path := writeFile(t, `
leaderboard_path: "  "
defaults:
  difficulty: Z
  target_score: 99
`)
	s, err := LoadSettings(path)
	require.NoError(t, err)

	assert.Equal(t, "leaderboard.json", s.LeaderboardPath)
	assert.Equal(t, "E", s.Defaults.Difficulty)
	assert.Equal(t, DefaultTarget, s.Defaults.Target)
}

func TestLoadSettings_EmptyFile(t *testing.T) {
	s, err := LoadSettings(writeFile(t, ""))
	require.NoError(t, err)
	assert.Equal(t, DefaultSettings(), s)
}

func TestLoadSettings_Malformed(t *testing.T) {
	_, err := LoadSettings(writeFile(t, "features: [not, a, map"))
	assert.Error(t, err)
}

func TestNewLogger_UnknownLevelFallsBack(t *testing.T) {
	logger := NewLogger(os.Stderr, "loud", "pong")
	require.NotNil(t, logger)
	assert.Equal(t, "info", logger.GetLevel().String())
}
