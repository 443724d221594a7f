package object

import "github.com/tomz197/termpong/internal/draw"

// Text is an overlay string drawn on top of the rendered canvas.
type Text struct {
	X     int // 1-based column
	Y     int // 1-based row
	Value string
}

// CenteredText positions value so its visible width is centered on centerX.
// width is passed separately because styled strings carry escape codes.
func CenteredText(centerX, y int, value string, width int) Text {
	return Text{X: centerX - width/2, Y: y, Value: value}
}

// Draw queues the text in the frame buffer. Positions off the top-left edge
// are clamped onto the screen.
func (t Text) Draw(cw *draw.ChunkWriter) {
	if t.Value == "" {
		return
	}
	cw.WriteAt(t.X, t.Y, t.Value)
}
