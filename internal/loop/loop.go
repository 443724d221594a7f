// Package loop runs the fixed-step game loop: Input → Update → Draw, with
// every screen expressed as a phase of one state machine.
package loop

import (
	"context"
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/tomz197/termpong/internal/config"
	"github.com/tomz197/termpong/internal/draw"
	"github.com/tomz197/termpong/internal/input"
	"github.com/tomz197/termpong/internal/leaderboard"
	"github.com/tomz197/termpong/internal/object"
)

// Options configures a game.
type Options struct {
	TermSizeFunc draw.TermSizeFunc
	Logger       *log.Logger
	// Renderer styles overlay text for the output writer. Defaults to a
	// renderer detected from the writer.
	Renderer *lipgloss.Renderer
	Settings config.Settings
	Store    *leaderboard.Store
	Rand     *rand.Rand
}

// Game owns one game's state, canvas and output.
type Game struct {
	state    *State
	canvas   *draw.Canvas
	out      *draw.ChunkWriter
	writer   io.Writer
	styles   styles
	termSize draw.TermSizeFunc

	cols, rows int   // Last seen terminal size
	drawnPhase Phase // Phase of the last drawn frame
	fullRedraw bool
	frame      int
	stars      []star
}

// star is a background dot placed as a fraction of the playfield, so it
// keeps its relative position across resizes.
type star struct {
	x, y float64
}

func newStars(rng *rand.Rand, n int) []star {
	stars := make([]star, n)
	for i := range stars {
		stars[i] = star{x: rng.Float64(), y: rng.Float64()}
	}
	return stars
}

// NewGame creates a game writing frames to w.
func NewGame(w io.Writer, opts Options) *Game {
	termSize := opts.TermSizeFunc
	if termSize == nil {
		termSize = draw.DefaultTermSizeFunc
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	renderer := opts.Renderer
	if renderer == nil {
		renderer = lipgloss.NewRenderer(w)
	}
	rng := opts.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	state := NewState(opts.Settings, opts.Store, logger, rng)

	g := &Game{
		state:      state,
		out:        draw.NewChunkWriter(w, 0, 0),
		writer:     w,
		styles:     newStyles(renderer),
		termSize:   termSize,
		fullRedraw: true,
		stars:      newStars(rng, config.StarCount),
	}

	cols, rows, err := termSize()
	if err != nil || cols <= 0 || rows <= 0 {
		cols, rows = config.DefaultWidth/config.CellWidth, config.DefaultHeight/config.CellHeight+1
	}
	g.cols, g.rows = cols, rows
	state.Field = FieldForTerminal(cols, rows)
	g.canvas = draw.NewScaledCanvas(cols, rows-1, float64(state.Field.Width), float64(state.Field.Height))
	g.canvas.SetOffset(0, 1)
	return g
}

// State returns the game's state.
func (g *Game) State() *State {
	return g.state
}

// Run plays a game reading keys from r and drawing to w until the player
// quits, the input ends or ctx is cancelled.
func Run(ctx context.Context, r io.Reader, w io.Writer, opts Options) error {
	g := NewGame(w, opts)
	stream := input.StartStream(r)

	draw.HideCursor(w)
	defer draw.ShowCursor(w)
	draw.ClearScreen(w)

	g.state.Logger.Info("game started", "field", g.state.Field)

	for g.state.Running {
		frameStart := time.Now()

		select {
		case <-ctx.Done():
			g.state.Running = false
			continue
		default:
		}

		// ===== INPUT PHASE =====
		in := stream.Read()

		// ===== UPDATE PHASE =====
		prev := g.state.Phase
		g.Tick(in)
		if g.state.Phase != prev {
			// Keys held on one screen must not leak into the next.
			stream.Reset()
		}

		// ===== DRAW PHASE =====
		if err := g.Draw(); err != nil {
			return err
		}

		// ===== FRAME TIMING =====
		elapsed := time.Since(frameStart)
		if elapsed < config.TargetFrameTime {
			time.Sleep(config.TargetFrameTime - elapsed)
		}
	}

	g.state.Logger.Info("game ended")
	draw.ClearScreen(w)
	return nil
}

// Tick advances the game by one frame.
func (g *Game) Tick(in input.Input) {
	s := g.state
	g.frame++

	if in.Interrupt || in.Closed {
		s.Running = false
		return
	}

	if g.updateScreen() {
		// Keys from this frame do not dismiss the resize prompt.
		return
	}

	switch s.Phase {
	case PhaseMenu:
		g.updateMenu(in)
	case PhaseCountdown, PhasePlaying:
		g.updatePlaying(in)
	case PhasePaused:
		g.updatePaused(in)
	case PhaseResized:
		g.updateResized(in)
	case PhaseGameOver:
		g.updateGameOver()
	case PhaseNameEntry:
		g.updateNameEntry(in)
	case PhaseLeaderboard:
		g.updateLeaderboard(in)
	}
}

// updateScreen polls the terminal size. A change rescales the canvas; a
// playfield change during a match waits behind the resize prompt. Returns
// true when the prompt was entered this frame.
func (g *Game) updateScreen() bool {
	cols, rows, err := g.termSize()
	if err != nil || cols <= 0 || rows <= 0 {
		return false
	}
	if cols == g.cols && rows == g.rows {
		return false
	}
	g.cols, g.rows = cols, rows
	g.canvas.Resize(cols, rows-1)
	g.fullRedraw = true

	s := g.state
	if !s.Settings.Features.Resize {
		return false
	}

	field := FieldForTerminal(cols, rows)
	s.Logger.Debug("terminal resized", "cols", cols, "rows", rows, "field", field)

	if s.Phase == PhaseResized {
		s.pendingField = field
		return false
	}
	if field == s.Field {
		return false
	}
	if s.Phase.inMatch() {
		s.resizeReturn = s.Phase
		s.pendingField = field
		s.setPhase(PhaseResized)
		return true
	}
	g.applyField(field)
	return false
}

// applyField switches the playfield size, rescaling the match entities.
func (g *Game) applyField(field object.Field) {
	s := g.state
	s.Field = field
	g.canvas.SetLogicalSize(float64(field.Width), float64(field.Height))
	if s.Match != nil {
		s.Match.Rescale(field)
	}
}
