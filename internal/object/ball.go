package object

import (
	"math"
	"math/rand"

	"github.com/tomz197/termpong/internal/config"
	"github.com/tomz197/termpong/internal/physics"
)

// Ball is the square ball. Position and velocity are floats so accelerating
// play can grow speed in small increments.
type Ball struct {
	X, Y   float64 // Top-left corner
	VX, VY float64 // Units per frame
	Size   float64

	BaseSpeed    int  // Minimum horizontal serve speed
	Accelerating bool // Grow velocity every frame
}

// NewBall creates a stationary ball centered in the field.
func NewBall(field Field, baseSpeed int, accelerating bool) *Ball {
	b := &Ball{
		Size:         config.BallSize,
		BaseSpeed:    baseSpeed,
		Accelerating: accelerating,
	}
	b.Center(field)
	return b
}

// Center places the ball in the middle of the field and stops it.
func (b *Ball) Center(field Field) {
	b.X = field.CenterX() - b.Size/2
	b.Y = field.CenterY() - b.Size/2
	b.VX = 0
	b.VY = 0
}

// Serve picks a fresh random velocity: horizontal speed in
// [base, base+spread], vertical speed in [min, max], random signs.
func (b *Ball) Serve(rng *rand.Rand) {
	vx := b.BaseSpeed + rng.Intn(config.BallSpeedSpread+1)
	vy := config.BallMinVertical + rng.Intn(config.BallMaxVertical-config.BallMinVertical+1)
	b.VX = float64(vx * randomSign(rng))
	b.VY = float64(vy * randomSign(rng))
}

func randomSign(rng *rand.Rand) int {
	if rng.Intn(2) == 0 {
		return -1
	}
	return 1
}

// Stationary reports whether the ball has no velocity.
func (b *Ball) Stationary() bool {
	return b.VX == 0 && b.VY == 0
}

// Move advances the ball by its velocity times scale, then applies
// acceleration when enabled.
func (b *Ball) Move(scale float64) {
	b.X += b.VX * scale
	b.Y += b.VY * scale
	if b.Accelerating {
		b.VX = accelerate(b.VX)
		b.VY = accelerate(b.VY)
	}
}

// accelerate grows a velocity component by the acceleration factor while it
// is below the cap, and never lets it exceed the cap.
func accelerate(v float64) float64 {
	if math.Abs(v) < config.BallMaxSpeed {
		v *= config.BallAcceleration
	}
	return physics.Clamp(v, -config.BallMaxSpeed, config.BallMaxSpeed)
}

// CenterY returns the vertical center.
func (b *Ball) CenterY() float64 {
	return b.Y + b.Size/2
}

// Bounds returns the ball rectangle.
func (b *Ball) Bounds() physics.Rect {
	return physics.Rect{X: b.X, Y: b.Y, W: b.Size, H: b.Size}
}

// Draw fills the ball square.
func (b *Ball) Draw(ctx DrawContext) error {
	ctx.Canvas.FillRect(b.X, b.Y, b.Size, b.Size)
	return nil
}
