package loop

import (
	"io"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/tomz197/termpong/internal/config"
	"github.com/tomz197/termpong/internal/leaderboard"
	"github.com/tomz197/termpong/internal/match"
	"github.com/tomz197/termpong/internal/object"
)

// Phase is the screen the game is showing. Modal screens are phases of one
// state machine rather than nested loops.
type Phase int

const (
	PhaseMenu        Phase = iota // Title and match options
	PhaseCountdown                // Ball centered, waiting to serve
	PhasePlaying                  // Ball in play
	PhasePaused                   // Frozen until P
	PhaseResized                  // Terminal changed size, waiting for a key
	PhaseGameOver                 // Winner announcement
	PhaseNameEntry                // Typing a name for the leaderboard
	PhaseLeaderboard              // Top scores
)

var phaseNames = map[Phase]string{
	PhaseMenu:        "menu",
	PhaseCountdown:   "countdown",
	PhasePlaying:     "playing",
	PhasePaused:      "paused",
	PhaseResized:     "resized",
	PhaseGameOver:    "game-over",
	PhaseNameEntry:   "name-entry",
	PhaseLeaderboard: "leaderboard",
}

func (p Phase) String() string {
	if name, ok := phaseNames[p]; ok {
		return name
	}
	return "unknown"
}

// inMatch reports whether a match is being played in this phase.
func (p Phase) inMatch() bool {
	switch p {
	case PhaseCountdown, PhasePlaying, PhasePaused, PhaseResized:
		return true
	}
	return false
}

// MenuState holds the selections shown on the menu.
type MenuState struct {
	Difficulty match.Difficulty
	Target     int
	TwoPlayer  bool
}

// State is the application context for one game: everything the loop
// reads and mutates lives here.
type State struct {
	Phase   Phase
	Running bool

	Menu  MenuState
	Match *match.Match
	Field object.Field // Current playfield size

	Settings config.Settings
	Store    *leaderboard.Store
	Logger   *log.Logger

	// Phases to return to after the pause and resize screens.
	resumePhase  Phase
	resizeReturn Phase
	// Field waiting to be applied when the resize prompt is dismissed.
	pendingField object.Field

	gameOverFrames int
	name           []rune
	pendingScore   int
	board          []leaderboard.Entry // Snapshot shown by the leaderboard view

	rng *rand.Rand
}

// NewState creates a state sitting on the menu with selections taken from
// the settings defaults.
func NewState(settings config.Settings, store *leaderboard.Store, logger *log.Logger, rng *rand.Rand) *State {
	difficulty, ok := match.ParseDifficulty(settings.Defaults.Difficulty)
	if !ok {
		difficulty = match.Easy
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	target := settings.Defaults.Target
	if target < config.MinTarget || target > config.MaxTarget {
		target = config.DefaultTarget
	}

	return &State{
		Phase:   PhaseMenu,
		Running: true,
		Menu: MenuState{
			Difficulty: difficulty,
			Target:     target,
			TwoPlayer:  settings.Defaults.TwoPlayer,
		},
		Field:    object.Field{Width: config.DefaultWidth, Height: config.DefaultHeight},
		Settings: settings,
		Store:    store,
		Logger:   logger,
		rng:      rng,
	}
}

// setPhase switches phase and logs the transition.
func (s *State) setPhase(p Phase) {
	if s.Phase == p {
		return
	}
	s.Logger.Debug("phase", "from", s.Phase, "to", p)
	s.Phase = p
}

// leaderboardEnabled reports whether scores are recorded and viewable.
func (s *State) leaderboardEnabled() bool {
	return s.Settings.Features.Leaderboard && s.Store != nil
}

// FieldForTerminal returns the playfield for a terminal of cols x rows
// cells. The top row is reserved for the score line.
func FieldForTerminal(cols, rows int) object.Field {
	cols = max(config.MinCols, min(cols, config.MaxCols))
	rows = max(config.MinRows, min(rows-1, config.MaxRows))
	return object.Field{
		Width:  cols * config.CellWidth,
		Height: rows * config.CellHeight,
	}
}
