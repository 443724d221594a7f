package draw

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanvas_ScalesLogicalToCells(t *testing.T) {
	// 80x20 cells over an 800x400 field: 10 units per column, 10 per sub-pixel.
	c := NewScaledCanvas(80, 20, 800, 400)

	c.FillRect(20, 0, 10, 10) // exactly one column, top half of row 0
	assert.Equal(t, BlockUpperHalf, c.Cell(2, 0))
	assert.Equal(t, BlockEmpty, c.Cell(3, 0))

	c.FillRect(20, 30, 10, 10) // bottom half of row 1
	assert.Equal(t, BlockLowerHalf, c.Cell(2, 1))

	c.FillRect(50, 40, 10, 20) // both halves of row 2
	assert.Equal(t, BlockFull, c.Cell(5, 2))
}

func TestCanvas_TinyRectStillVisible(t *testing.T) {
	c := NewScaledCanvas(40, 10, 800, 400)
	c.FillRect(401, 201, 1, 1)
	col, row := c.LogicalToTerminal(401, 201)
	assert.NotEqual(t, BlockEmpty, c.Cell(col-1, row-1))
}

func TestCanvas_LogicalToTerminalPicksContainingCell(t *testing.T) {
	c := NewScaledCanvas(80, 20, 800, 400)
	tests := []struct {
		x, y     float64
		col, row int
	}{
		{0, 0, 1, 1},
		{9.9, 19.9, 1, 1},
		{10, 20, 2, 2},
		{799, 399, 80, 20},
		{400, 200, 41, 11},
	}
	for _, tt := range tests {
		col, row := c.LogicalToTerminal(tt.x, tt.y)
		assert.Equal(t, tt.col, col, "col for %v,%v", tt.x, tt.y)
		assert.Equal(t, tt.row, row, "row for %v,%v", tt.x, tt.y)
	}
}

func TestCanvas_OutOfRangeIgnored(t *testing.T) {
	c := NewScaledCanvas(10, 5, 100, 100)
	assert.NotPanics(t, func() {
		c.FillRect(-50, -50, 20, 20)
		c.FillRect(95, 95, 50, 50)
	})
	assert.Equal(t, BlockEmpty, c.Cell(-1, 0))
}

func TestCanvas_ClearAndResize(t *testing.T) {
	c := NewScaledCanvas(10, 5, 100, 100)
	c.FillRect(0, 0, 100, 100)
	assert.Equal(t, BlockFull, c.Cell(9, 4))

	c.Clear()
	assert.Equal(t, BlockEmpty, c.Cell(9, 4))

	c.Resize(20, 10)
	assert.Equal(t, 20, c.TerminalWidth())
	assert.Equal(t, 10, c.TerminalHeight())
	c.FillRect(0, 0, 100, 100)
	assert.Equal(t, BlockFull, c.Cell(19, 9))
}

func TestCanvas_SetLogicalSize(t *testing.T) {
	c := NewScaledCanvas(80, 20, 800, 400)
	c.SetLogicalSize(400, 200)
	assert.Equal(t, 400.0, c.LogicalWidth())
	c.FillRect(390, 195, 10, 5)
	assert.Equal(t, BlockLowerHalf, c.Cell(78, 19))
}

func TestCanvas_RenderWritesEveryRow(t *testing.T) {
	c := NewScaledCanvas(4, 3, 40, 60)
	c.SetOffset(2, 1)
	c.FillRect(0, 0, 10, 20)

	var buf bytes.Buffer
	c.Render(&buf)
	out := buf.String()

	assert.Contains(t, out, "\033[2;3H█   ")
	assert.Contains(t, out, "\033[3;3H    ")
	assert.Contains(t, out, "\033[4;3H    ")
}

func TestCanvas_DashedVLine(t *testing.T) {
	c := NewScaledCanvas(80, 20, 800, 400)
	c.DashedVLine(400, 10, 10)
	assert.Equal(t, BlockUpperHalf, c.Cell(40, 0))
	assert.Equal(t, BlockUpperHalf, c.Cell(40, 19))
}

func TestChunkWriter_FlushAppliesOffsetAndChunks(t *testing.T) {
	var out bytes.Buffer
	cw := NewChunkWriter(&out, 3, 2)

	cw.WriteAt(1, 1, "hi")
	long := strings.Repeat("x", maxChunkSize*2+10)
	cw.WriteString(long)
	require.NoError(t, cw.Flush())

	assert.True(t, strings.HasPrefix(out.String(), "\033[3;4Hhi"))
	assert.Equal(t, len("\033[3;4Hhi")+len(long), out.Len())

	out.Reset()
	require.NoError(t, cw.Flush())
	assert.Zero(t, out.Len(), "flush must reset the buffer")
}
