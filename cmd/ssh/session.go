package main

import (
	"context"
	"fmt"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/google/uuid"
	"github.com/muesli/termenv"

	"github.com/tomz197/termpong/internal/config"
	"github.com/tomz197/termpong/internal/draw"
	"github.com/tomz197/termpong/internal/leaderboard"
	"github.com/tomz197/termpong/internal/loop"
)

// gameHandler runs one independent game per SSH session.
type gameHandler struct {
	settings config.Settings
	store    *leaderboard.Store
	logger   *log.Logger

	once   sync.Once
	ctx    context.Context
	cancel context.CancelFunc

	// mu orders wg.Add against shutdown's wg.Wait.
	mu      sync.Mutex
	closing bool
	wg      sync.WaitGroup
}

func (h *gameHandler) baseContext() context.Context {
	h.once.Do(func() {
		h.ctx, h.cancel = context.WithCancel(context.Background())
	})
	return h.ctx
}

// shutdown stops every running game and waits for them to return. Sessions
// arriving afterwards are turned away.
func (h *gameHandler) shutdown() {
	h.baseContext()
	h.mu.Lock()
	h.closing = true
	h.mu.Unlock()
	h.cancel()
	h.wg.Wait()
}

// track registers a running game. It fails once shutdown has begun.
func (h *gameHandler) track() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closing {
		return false
	}
	h.wg.Add(1)
	return true
}

// middleware handles SSH sessions and runs a game for each.
func (h *gameHandler) middleware(next ssh.Handler) ssh.Handler {
	return func(sess ssh.Session) {
		pty, winCh, ok := sess.Pty()
		if !ok {
			fmt.Fprintln(sess, "Error: PTY required. Please connect with: ssh -t user@host")
			return
		}

		id := uuid.NewString()
		logger := h.logger.With("session", id, "user", sess.User())
		logger.Info("New game session", "terminal", pty.Term,
			"size", fmt.Sprintf("%dx%d", pty.Window.Width, pty.Window.Height))

		// Create a terminal size tracker that updates on window changes
		sizeTracker := newSizeTracker(pty.Window.Width, pty.Window.Height)

		// Listen for window size changes in a goroutine
		go func() {
			for win := range winCh {
				sizeTracker.update(win.Width, win.Height)
			}
		}()

		ctx, cancel := context.WithCancel(h.baseContext())
		defer cancel()
		stop := context.AfterFunc(sess.Context(), cancel)
		defer stop()

		// Sessions are not local TTYs, so pick the color profile explicitly.
		renderer := lipgloss.NewRenderer(sess)
		renderer.SetColorProfile(termenv.ANSI256)

		if !h.track() {
			fmt.Fprintln(sess, "Server is shutting down. Please try again later.")
			return
		}
		err := loop.Run(ctx, sess, sess, loop.Options{
			TermSizeFunc: sizeTracker.getSize,
			Logger:       logger,
			Renderer:     renderer,
			Settings:     h.settings,
			Store:        h.store,
		})
		h.wg.Done()
		if err != nil {
			logger.Error("Game error", "err", err)
		}

		logger.Info("Session ended")
		next(sess)
	}
}

// sizeTracker tracks terminal size from SSH window change events.
type sizeTracker struct {
	mu     sync.RWMutex
	width  int
	height int
}

func newSizeTracker(width, height int) *sizeTracker {
	return &sizeTracker{width: width, height: height}
}

func (s *sizeTracker) update(width, height int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.width = width
	s.height = height
}

func (s *sizeTracker) getSize() (int, int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.width, s.height, nil
}

// Ensure sizeTracker.getSize satisfies draw.TermSizeFunc
var _ draw.TermSizeFunc = (*sizeTracker)(nil).getSize
