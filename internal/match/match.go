// Package match implements the fixed-step Pong simulation: paddle and ball
// movement, collisions, scoring, the computer opponent and power-ups.
package match

import (
	"math"
	"math/rand"
	"time"

	"github.com/tomz197/termpong/internal/config"
	"github.com/tomz197/termpong/internal/object"
	"github.com/tomz197/termpong/internal/physics"
)

// Match is one game between two paddles, advanced one frame at a time by Step.
type Match struct {
	opts  Options
	field object.Field
	rng   *rand.Rand

	// Paddles and Scores are indexed by Side. PowerUp is nil while none is
	// on the field.
	Paddles [2]*object.Paddle
	Ball    *object.Ball
	Scores  [2]int
	PowerUp *object.PowerUp

	effects  [2][len(effectKinds)]int // Remaining frames per side and kind
	lastHit  Side                     // Paddle that last touched the ball
	getReady int                      // Frames until the next serve
	spawnIn  int                      // Frames until the next power-up spawn

	savedVX, savedVY float64
	hasSaved         bool

	paused bool
	over   bool
	winner Side
	events []Event
}

var effectKinds = [...]object.PowerUpKind{
	object.PowerUpSpeed,
	object.PowerUpGrow,
	object.PowerUpSlow,
	object.PowerUpShield,
}

// New creates a match with the ball centered and the get-ready countdown
// running. Zero-valued options fall back to defaults.
func New(opts Options) *Match {
	if _, ok := ParseDifficulty(string(opts.Difficulty)); !ok {
		opts.Difficulty = Easy
	}
	if opts.Target < config.MinTarget {
		opts.Target = config.DefaultTarget
	}
	if opts.Field.Width <= 0 || opts.Field.Height <= 0 {
		opts.Field = object.Field{Width: config.DefaultWidth, Height: config.DefaultHeight}
	}
	rng := opts.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	m := &Match{
		opts:     opts,
		field:    opts.Field,
		rng:      rng,
		lastHit:  NoSide,
		winner:   NoSide,
		getReady: config.GetReadyFrames,
	}
	m.Paddles[Left] = object.NewPaddle(config.PaddleInset, m.field.Height)
	m.Paddles[Right] = object.NewPaddle(m.field.Width-config.PaddleInsetRear, m.field.Height)
	m.Ball = object.NewBall(m.field, opts.Difficulty.BaseSpeed(), opts.Difficulty.Accelerates())
	m.scheduleSpawn()
	return m
}

// Options returns the options the match was created with.
func (m *Match) Options() Options {
	return m.opts
}

// Field returns the current playfield size.
func (m *Match) Field() object.Field {
	return m.field
}

// GetReady returns the frames left before the next serve.
func (m *Match) GetReady() int {
	return m.getReady
}

// Paused reports whether the match is paused.
func (m *Match) Paused() bool {
	return m.paused
}

// Over reports whether a side has reached the target score.
func (m *Match) Over() bool {
	return m.over
}

// Winner returns the winning side, or NoSide while the match is running.
func (m *Match) Winner() Side {
	return m.winner
}

// WinnerText returns the end-of-match announcement.
func (m *Match) WinnerText() string {
	switch m.winner {
	case Left:
		return "PLAYER 1 WINS!"
	case Right:
		if m.opts.TwoPlayer {
			return "PLAYER 2 WINS!"
		}
		return "AI WINS!"
	default:
		return ""
	}
}

// EffectRemaining returns the frames left on a power-up effect for a side.
func (m *Match) EffectRemaining(side Side, kind object.PowerUpKind) int {
	if side != Left && side != Right {
		return 0
	}
	return m.effects[side][kind]
}

// ShieldActive reports whether points against side are currently cancelled.
func (m *Match) ShieldActive(side Side) bool {
	return m.EffectRemaining(side, object.PowerUpShield) > 0
}

// Objects returns the drawable entities in draw order.
func (m *Match) Objects() []object.Object {
	objs := []object.Object{m.Paddles[Left], m.Paddles[Right], m.Ball}
	if m.PowerUp != nil && m.PowerUp.Active {
		objs = append(objs, m.PowerUp)
	}
	return objs
}

// Step advances the match by one frame and returns what happened. The
// returned slice is reused by the next call. Paused or finished matches do
// not change.
func (m *Match) Step(ctl Controls) []Event {
	m.events = m.events[:0]
	if m.paused || m.over {
		return m.events
	}

	m.tickEffects()
	m.movePaddles(ctl)

	if m.getReady > 0 {
		m.getReady--
		if m.getReady == 0 {
			m.Ball.Serve(m.rng)
			m.emit(EventServe, NoSide)
		}
		return m.events
	}

	scale := 1.0
	if m.slowActive() {
		scale = 0.5
	}
	m.Ball.Move(scale)

	m.bounceWalls()
	m.bouncePaddles()
	if m.opts.PowerUps {
		m.updatePowerUp()
	}
	m.checkScore()
	return m.events
}

func (m *Match) emit(kind EventKind, side Side) {
	m.events = append(m.events, Event{Kind: kind, Side: side})
}

// movePaddles applies held keys, or the tracking rule for a computer paddle.
func (m *Match) movePaddles(ctl Controls) {
	h := m.field.Height
	left := m.Paddles[Left]
	if ctl.LeftUp {
		left.Move(true, h)
	}
	if ctl.LeftDown {
		left.Move(false, h)
	}

	right := m.Paddles[Right]
	if !m.opts.TwoPlayer {
		m.trackBall(right)
		return
	}
	if ctl.RightUp {
		right.Move(true, h)
	}
	if ctl.RightDown {
		right.Move(false, h)
	}
}

// trackBall moves the paddle one step toward the ball's vertical center.
func (m *Match) trackBall(p *object.Paddle) {
	switch target := m.Ball.CenterY(); {
	case p.CenterY() < target:
		p.Move(false, m.field.Height)
	case p.CenterY() > target:
		p.Move(true, m.field.Height)
	}
}

// Pause freezes the match, saving the ball's velocity.
func (m *Match) Pause() {
	if m.paused {
		return
	}
	m.paused = true
	if !m.Ball.Stationary() {
		m.savedVX, m.savedVY = m.Ball.VX, m.Ball.VY
		m.hasSaved = true
	}
	m.Ball.VX, m.Ball.VY = 0, 0
}

// Resume unfreezes the match. The saved velocity is restored; without one
// the ball is served afresh unless a get-ready countdown will serve it.
func (m *Match) Resume() {
	if !m.paused {
		return
	}
	m.paused = false
	switch {
	case m.hasSaved:
		m.Ball.VX, m.Ball.VY = m.savedVX, m.savedVY
	case m.getReady == 0 && !m.over:
		m.Ball.Serve(m.rng)
	}
	m.hasSaved = false
}

// Rescale maps every entity proportionally onto a new playfield size.
// Entity sizes and speeds are unchanged.
func (m *Match) Rescale(field object.Field) {
	if field.Width <= 0 || field.Height <= 0 || field == m.field {
		return
	}
	fromW, fromH := float64(m.field.Width), float64(m.field.Height)
	toW, toH := float64(field.Width), float64(field.Height)

	for _, p := range m.Paddles {
		b := p.Bounds()
		cx := physics.Rescale(b.CenterX(), fromW, toW)
		cy := physics.Rescale(b.CenterY(), fromH, toH)
		p.X = int(math.Round(cx - b.W/2))
		p.Y = int(math.Round(cy - b.H/2))
		p.Clamp(field.Height)
	}

	bb := m.Ball.Bounds()
	m.Ball.X = physics.Rescale(bb.CenterX(), fromW, toW) - bb.W/2
	m.Ball.Y = physics.Clamp(physics.Rescale(bb.CenterY(), fromH, toH)-bb.H/2, 0, toH-bb.H)

	if m.PowerUp != nil {
		pb := m.PowerUp.Bounds()
		m.PowerUp.X = physics.Rescale(pb.CenterX(), fromW, toW) - pb.W/2
		m.PowerUp.Y = physics.Rescale(pb.CenterY(), fromH, toH) - pb.H/2
	}

	m.field = field
}
