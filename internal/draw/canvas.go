// Package draw renders the playfield into a terminal using half-block
// characters, scaling logical playfield units to terminal cells.
package draw

import (
	"io"
	"math"
	"strconv"
	"strings"
)

// Block characters for drawing.
const (
	BlockFull      = '█'
	BlockEmpty     = ' '
	BlockUpperHalf = '▀'
	BlockLowerHalf = '▄'
)

// maxChunkSize is the maximum bytes to write at once for optimal network flow.
// Slightly under a typical 1500 byte MTU for smooth SSH transmission.
const maxChunkSize = 1400

// Canvas is a drawing buffer with 2x vertical resolution using half-block characters.
// Game code draws in logical units; the canvas scales them to terminal pixels.
type Canvas struct {
	termWidth      int    // Terminal columns covered by the canvas
	termHeight     int    // Terminal rows covered by the canvas
	subPixelHeight int    // termHeight * 2
	pixels         []bool // Flat slice: [y * termWidth + x]

	logicalWidth  float64
	logicalHeight float64

	// 0-based terminal offsets (columns/rows to skip before the canvas starts)
	offsetCol int
	offsetRow int

	renderBuf strings.Builder
	numBuf    [20]byte
}

// NewScaledCanvas creates a canvas covering termWidth x termHeight cells that
// maps a logicalWidth x logicalHeight playfield onto them.
func NewScaledCanvas(termWidth, termHeight int, logicalWidth, logicalHeight float64) *Canvas {
	c := &Canvas{
		logicalWidth:  logicalWidth,
		logicalHeight: logicalHeight,
	}
	c.Resize(termWidth, termHeight)
	return c
}

// Resize updates the canvas for new terminal dimensions while keeping logical size.
func (c *Canvas) Resize(termWidth, termHeight int) {
	if termWidth < 1 {
		termWidth = 1
	}
	if termHeight < 1 {
		termHeight = 1
	}
	if termWidth != c.termWidth || termHeight != c.termHeight {
		c.termWidth = termWidth
		c.termHeight = termHeight
		c.subPixelHeight = termHeight * 2
		c.pixels = make([]bool, c.subPixelHeight*termWidth)
	}
}

// SetLogicalSize changes the playfield dimensions the canvas maps from.
func (c *Canvas) SetLogicalSize(width, height float64) {
	c.logicalWidth = width
	c.logicalHeight = height
}

// toPixel scales logical coordinates to sub-pixel space. Multiplying before
// dividing keeps whole-cell boundaries exact.
func (c *Canvas) toPixel(x, y float64) (float64, float64) {
	var px, py float64
	if c.logicalWidth > 0 {
		px = x * float64(c.termWidth) / c.logicalWidth
	}
	if c.logicalHeight > 0 {
		py = y * float64(c.subPixelHeight) / c.logicalHeight
	}
	return px, py
}

// SetOffset sets the column and row offset of the canvas inside the terminal.
func (c *Canvas) SetOffset(col, row int) {
	c.offsetCol = col
	c.offsetRow = row
}

// OffsetCol returns the column offset.
func (c *Canvas) OffsetCol() int {
	return c.offsetCol
}

// OffsetRow returns the row offset.
func (c *Canvas) OffsetRow() int {
	return c.offsetRow
}

// Clear resets all pixels in the canvas.
func (c *Canvas) Clear() {
	clear(c.pixels)
}

// setPixel sets a pixel at actual terminal coordinates (no scaling).
func (c *Canvas) setPixel(x, y int) {
	if x >= 0 && x < c.termWidth && y >= 0 && y < c.subPixelHeight {
		c.pixels[y*c.termWidth+x] = true
	}
}

// pixel reports whether a pixel is set. Out of range pixels are unset.
func (c *Canvas) pixel(x, y int) bool {
	if x < 0 || x >= c.termWidth || y < 0 || y >= c.subPixelHeight {
		return false
	}
	return c.pixels[y*c.termWidth+x]
}

// FillRect fills a rectangle given in logical coordinates. Anything with a
// positive area covers at least one pixel so small entities never vanish.
func (c *Canvas) FillRect(x, y, w, h float64) {
	if w <= 0 || h <= 0 {
		return
	}
	fx0, fy0 := c.toPixel(x, y)
	fx1, fy1 := c.toPixel(x+w, y+h)
	x0 := int(math.Floor(fx0))
	y0 := int(math.Floor(fy0))
	x1 := int(math.Ceil(fx1)) - 1
	y1 := int(math.Ceil(fy1)) - 1
	if x1 < x0 {
		x1 = x0
	}
	if y1 < y0 {
		y1 = y0
	}
	for py := y0; py <= y1; py++ {
		for px := x0; px <= x1; px++ {
			c.setPixel(px, py)
		}
	}
}

// DashedVLine draws a dashed vertical line at logical x: dash units on,
// gap units off, top to bottom.
func (c *Canvas) DashedVLine(x, dash, gap float64) {
	if dash <= 0 {
		return
	}
	for y := 0.0; y < c.logicalHeight; y += dash + gap {
		c.FillRect(x, y, 1, math.Min(dash, c.logicalHeight-y))
	}
}

// Render writes every canvas cell to w, blank cells included, so the previous
// frame never needs a full screen clear.
func (c *Canvas) Render(w io.Writer) {
	c.renderBuf.Reset()
	c.renderBuf.Grow(c.termHeight * (c.termWidth*3 + 12))

	for row := 0; row < c.termHeight; row++ {
		c.renderBuf.WriteString("\033[")
		c.renderBuf.Write(strconv.AppendInt(c.numBuf[:0], int64(row+1+c.offsetRow), 10))
		c.renderBuf.WriteByte(';')
		c.renderBuf.Write(strconv.AppendInt(c.numBuf[:0], int64(1+c.offsetCol), 10))
		c.renderBuf.WriteByte('H')

		for col := 0; col < c.termWidth; col++ {
			c.renderBuf.WriteRune(c.Cell(col, row))
		}
	}

	// Write output in chunks for optimal network flow
	data := c.renderBuf.String()
	for len(data) > 0 {
		chunk := data
		if len(chunk) > maxChunkSize {
			chunk = data[:maxChunkSize]
		}
		io.WriteString(w, chunk)
		data = data[len(chunk):]
	}
}

// Cell returns the character for a terminal cell (0-based, canvas-relative).
func (c *Canvas) Cell(col, row int) rune {
	top := c.pixel(col, row*2)
	bottom := c.pixel(col, row*2+1)
	switch {
	case top && bottom:
		return BlockFull
	case top:
		return BlockUpperHalf
	case bottom:
		return BlockLowerHalf
	default:
		return BlockEmpty
	}
}

// LogicalWidth returns the logical playfield width.
func (c *Canvas) LogicalWidth() float64 {
	return c.logicalWidth
}

// LogicalHeight returns the logical playfield height.
func (c *Canvas) LogicalHeight() float64 {
	return c.logicalHeight
}

// TerminalWidth returns the canvas column count.
func (c *Canvas) TerminalWidth() int {
	return c.termWidth
}

// TerminalHeight returns the canvas row count.
func (c *Canvas) TerminalHeight() int {
	return c.termHeight
}

// LogicalToTerminal returns the 1-based, canvas-relative cell (col, row)
// containing the logical point.
func (c *Canvas) LogicalToTerminal(x, y float64) (col, row int) {
	fx, fy := c.toPixel(x, y)
	px := int(math.Floor(fx))
	py := int(math.Floor(fy))
	return px + 1, py/2 + 1
}
