package object

import (
	"github.com/tomz197/termpong/internal/config"
	"github.com/tomz197/termpong/internal/physics"
)

// Paddle is a vertical bat. X, Y is the top-left corner in integer playfield
// units.
type Paddle struct {
	X, Y   int
	Width  int
	Height int
	Speed  int // Units per frame per held key
}

// NewPaddle creates a paddle at x, vertically centered in a field of the
// given height.
func NewPaddle(x, fieldHeight int) *Paddle {
	p := &Paddle{
		X:      x,
		Width:  config.PaddleWidth,
		Height: config.PaddleHeight,
		Speed:  config.PaddleSpeed,
	}
	p.Y = fieldHeight/2 - p.Height/2
	p.Clamp(fieldHeight)
	return p
}

// Move steps the paddle up or down by its speed and clamps it to the field.
func (p *Paddle) Move(up bool, fieldHeight int) {
	if up {
		p.Y -= p.Speed
	} else {
		p.Y += p.Speed
	}
	p.Clamp(fieldHeight)
}

// Clamp keeps the paddle's vertical extent inside [0, fieldHeight].
func (p *Paddle) Clamp(fieldHeight int) {
	p.Y = physics.ClampInt(p.Y, 0, fieldHeight-p.Height)
}

// SetHeight resizes the paddle around its current center and re-clamps it.
func (p *Paddle) SetHeight(height, fieldHeight int) {
	center := p.Y + p.Height/2
	p.Height = height
	p.Y = center - height/2
	p.Clamp(fieldHeight)
}

// CenterY returns the vertical center.
func (p *Paddle) CenterY() float64 {
	return float64(p.Y) + float64(p.Height)/2
}

// Bounds returns the paddle rectangle.
func (p *Paddle) Bounds() physics.Rect {
	return physics.Rect{
		X: float64(p.X),
		Y: float64(p.Y),
		W: float64(p.Width),
		H: float64(p.Height),
	}
}

// Draw fills the paddle rectangle.
func (p *Paddle) Draw(ctx DrawContext) error {
	ctx.Canvas.FillRect(float64(p.X), float64(p.Y), float64(p.Width), float64(p.Height))
	return nil
}
