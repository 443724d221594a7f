package object

import (
	"github.com/tomz197/termpong/internal/config"
	"github.com/tomz197/termpong/internal/physics"
)

// PowerUpKind identifies a power-up effect.
type PowerUpKind int

const (
	PowerUpSpeed  PowerUpKind = iota // Faster paddle
	PowerUpGrow                      // Taller paddle
	PowerUpSlow                      // Ball moves at half speed
	PowerUpShield                    // Points against the owner are cancelled
)

// PowerUpKinds lists every kind, in spawn-table order.
var PowerUpKinds = []PowerUpKind{PowerUpSpeed, PowerUpGrow, PowerUpSlow, PowerUpShield}

// String returns the HUD label for the kind.
func (k PowerUpKind) String() string {
	switch k {
	case PowerUpSpeed:
		return "SPEED"
	case PowerUpGrow:
		return "GROW"
	case PowerUpSlow:
		return "SLOW"
	case PowerUpShield:
		return "SHIELD"
	default:
		return "?"
	}
}

// PowerUp is a collectible square on the field.
type PowerUp struct {
	X, Y      float64 // Top-left corner
	Size      float64
	Kind      PowerUpKind
	Active    bool
	Remaining int // Frames until it disappears
}

// NewPowerUp creates a visible power-up at x, y.
func NewPowerUp(kind PowerUpKind, x, y float64) *PowerUp {
	return &PowerUp{
		X:         x,
		Y:         y,
		Size:      config.PowerUpSize,
		Kind:      kind,
		Active:    true,
		Remaining: config.PowerUpVisibleFrames,
	}
}

// Tick counts down the visibility timer. Returns true once the power-up has
// expired.
func (p *PowerUp) Tick() bool {
	if !p.Active {
		return true
	}
	p.Remaining--
	if p.Remaining <= 0 {
		p.Active = false
	}
	return !p.Active
}

// Bounds returns the power-up rectangle.
func (p *PowerUp) Bounds() physics.Rect {
	return physics.Rect{X: p.X, Y: p.Y, W: p.Size, H: p.Size}
}

// Draw renders a hollow square so power-ups are distinguishable from the
// ball. Blinks during the last second of visibility.
func (p *PowerUp) Draw(ctx DrawContext) error {
	if !p.Active || !ShouldRenderBlink(p.Remaining, config.TargetFPS, 8) {
		return nil
	}
	t := p.Size / 4
	c := ctx.Canvas
	c.FillRect(p.X, p.Y, p.Size, t)
	c.FillRect(p.X, p.Y+p.Size-t, p.Size, t)
	c.FillRect(p.X, p.Y, t, p.Size)
	c.FillRect(p.X+p.Size-t, p.Y, t, p.Size)
	return nil
}
