package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"gopkg.in/yaml.v3"
)

// Features toggles the optional parts of the game.
type Features struct {
	PowerUps    bool `yaml:"power_ups"`
	Resize      bool `yaml:"resize"`
	Leaderboard bool `yaml:"leaderboard"`
}

// MenuDefaults seeds the menu selections when the game starts.
type MenuDefaults struct {
	Difficulty string `yaml:"difficulty"`
	Target     int    `yaml:"target_score"`
	TwoPlayer  bool   `yaml:"two_player"`
}

// Settings is the contents of the optional settings file.
type Settings struct {
	LeaderboardPath string       `yaml:"leaderboard_path"`
	Features        Features     `yaml:"features"`
	Defaults        MenuDefaults `yaml:"defaults"`
}

// DefaultSettings returns the settings used when no file is present.
func DefaultSettings() Settings {
	return Settings{
		LeaderboardPath: "leaderboard.json",
		Features: Features{
			PowerUps:    true,
			Resize:      true,
			Leaderboard: true,
		},
		Defaults: MenuDefaults{
			Difficulty: "E",
			Target:     DefaultTarget,
			TwoPlayer:  true,
		},
	}
}

// LoadSettings reads settings from path. A missing file yields the defaults;
// keys absent from the file keep their default values.
func LoadSettings(path string) (Settings, error) {
	s := DefaultSettings()
	if path == "" {
		return s, nil
	}

	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return s, nil
	}
	if err != nil {
		return s, fmt.Errorf("open settings: %w", err)
	}
	defer f.Close()

	if err := yaml.NewDecoder(f).Decode(&s); err != nil && !errors.Is(err, io.EOF) {
		return DefaultSettings(), fmt.Errorf("parse settings %s: %w", path, err)
	}
	s.normalize()
	return s, nil
}

// normalize replaces out-of-range values with defaults.
func (s *Settings) normalize() {
	def := DefaultSettings()
	if strings.TrimSpace(s.LeaderboardPath) == "" {
		s.LeaderboardPath = def.LeaderboardPath
	}
	switch d := strings.ToUpper(strings.TrimSpace(s.Defaults.Difficulty)); d {
	case "E", "C", "A":
		s.Defaults.Difficulty = d
	default:
		s.Defaults.Difficulty = def.Defaults.Difficulty
	}
	if s.Defaults.Target < MinTarget || s.Defaults.Target > MaxTarget {
		s.Defaults.Target = def.Defaults.Target
	}
}

// NewLogger builds the structured logger shared by the commands.
// Unknown levels fall back to info.
func NewLogger(w io.Writer, level, prefix string) *log.Logger {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		lvl = log.InfoLevel
	}
	return log.NewWithOptions(w, log.Options{
		Level:           lvl,
		Prefix:          prefix,
		ReportTimestamp: true,
	})
}
