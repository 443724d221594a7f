// Package object defines the entities on the playfield: paddles, the ball and
// power-ups.
package object

import (
	"github.com/tomz197/termpong/internal/draw"
	"github.com/tomz197/termpong/internal/physics"
)

// DrawContext provides drawing resources for objects.
type DrawContext struct {
	Canvas *draw.Canvas // Playfield canvas in logical units
}

// Object is a drawable playfield entity.
type Object interface {
	// Bounds returns the entity's collision rectangle in playfield units.
	Bounds() physics.Rect

	// Draw draws the object onto the canvas.
	Draw(ctx DrawContext) error
}

// Field is the playfield size in logical units.
type Field struct {
	Width  int
	Height int
}

// CenterX returns the horizontal center of the field.
func (f Field) CenterX() float64 {
	return float64(f.Width) / 2
}

// CenterY returns the vertical center of the field.
func (f Field) CenterY() float64 {
	return float64(f.Height) / 2
}

// ShouldRenderBlink returns true if an object with a remaining timer should be
// rendered this frame (for a blinking effect). Always true for timers above
// the threshold.
func ShouldRenderBlink(remainingFrames, threshold, period int) bool {
	if remainingFrames > threshold || period <= 0 {
		return true
	}
	return (remainingFrames/period)%2 == 0
}
