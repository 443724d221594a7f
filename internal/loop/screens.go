package loop

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/tomz197/termpong/internal/config"
	"github.com/tomz197/termpong/internal/draw"
	"github.com/tomz197/termpong/internal/match"
	"github.com/tomz197/termpong/internal/object"
)

// Title art (figlet "small" font). Narrow terminals get titleText instead.
var titleArt = []string{
	` ___  ___  _  _  ___ `,
	`| _ \/ _ \| \| |/ __|`,
	"|  _/ (_) | .` | (_ |",
	`|_|  \___/|_|\_|\___|`,
}

const titleText = "PIXEL PING PONG"

// minArtRows is the terminal height needed for the title art and the menu.
const minArtRows = 21

const starGlyph = "·"

// Center line dash pattern in playfield units.
const (
	centerDash = 20
	centerGap  = 20
)

type styles struct {
	title    lipgloss.Style
	text     lipgloss.Style
	hint     lipgloss.Style
	accent   lipgloss.Style
	box      lipgloss.Style
	border   lipgloss.Style
	selected lipgloss.Style
	star     lipgloss.Style
}

func newStyles(r *lipgloss.Renderer) styles {
	green := lipgloss.Color("10")
	return styles{
		title:    r.NewStyle().Bold(true).Foreground(green),
		text:     r.NewStyle().Foreground(lipgloss.Color("15")),
		hint:     r.NewStyle().Faint(true),
		accent:   r.NewStyle().Foreground(green),
		box:      r.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(green).Padding(0, 2).Align(lipgloss.Center),
		border:   r.NewStyle().Foreground(green),
		selected: r.NewStyle().Bold(true).Reverse(true),
		star:     r.NewStyle().Foreground(lipgloss.Color("189")),
	}
}

// Draw renders the current frame and flushes it to the output.
func (g *Game) Draw() error {
	s := g.state

	// Phase changes swap whole screens; clear so nothing lingers.
	if g.fullRedraw || s.Phase != g.drawnPhase {
		g.out.ClearScreen()
		g.fullRedraw = false
		g.drawnPhase = s.Phase
	}

	g.canvas.Clear()
	if s.Match != nil {
		if err := g.drawMatch(); err != nil {
			return err
		}
	}
	g.canvas.Render(g.out)
	if s.Match != nil {
		g.drawStars()
	}

	g.drawUI()
	return g.out.Flush()
}

// drawMatch draws the center line and every match entity onto the canvas.
func (g *Game) drawMatch() error {
	field := g.state.Match.Field()
	g.canvas.DashedVLine(float64(field.Width)/2, centerDash, centerGap)

	ctx := object.DrawContext{Canvas: g.canvas}
	for _, obj := range g.state.Match.Objects() {
		if err := obj.Draw(ctx); err != nil {
			return err
		}
	}
	return nil
}

// drawStars writes the background stars into empty playfield cells.
func (g *Game) drawStars() {
	c := g.canvas
	w, h := c.LogicalWidth(), c.LogicalHeight()
	glyph := g.styles.star.Render(starGlyph)
	for _, st := range g.stars {
		col, row := c.LogicalToTerminal(st.x*w, st.y*h)
		if col > c.TerminalWidth() || row > c.TerminalHeight() {
			continue
		}
		if c.Cell(col-1, row-1) != draw.BlockEmpty {
			continue
		}
		g.out.WriteAt(col+c.OffsetCol(), row+c.OffsetRow(), glyph)
	}
}

// drawUI draws text on top of the rendered canvas.
func (g *Game) drawUI() {
	s := g.state

	// Row 1 is the score line; clear it every frame.
	g.out.WriteAt(1, 1, "\033[2K")
	if s.Match != nil {
		g.drawHUD()
	}

	switch s.Phase {
	case PhaseMenu:
		g.drawMenu()
	case PhaseCountdown:
		g.drawCountdown()
	case PhasePaused:
		g.drawBox(g.midRow(), "PAUSED", "", g.styles.hint.Render("P resume   Q quit"))
	case PhaseResized:
		g.drawBox(g.midRow(), "RESIZED", "", g.styles.hint.Render("Press any key to resume"))
	case PhaseGameOver:
		g.drawGameOver()
	case PhaseNameEntry:
		g.drawNameEntry()
	case PhaseLeaderboard:
		g.drawLeaderboard()
	}
}

// midRow is the terminal row at the middle of the playfield.
func (g *Game) midRow() int {
	_, row := g.canvas.LogicalToTerminal(0, g.canvas.LogicalHeight()/2)
	return row + g.canvas.OffsetRow()
}

// drawCentered writes a single line horizontally centered on row.
func (g *Game) drawCentered(row int, text string) {
	object.CenteredText(g.cols/2+1, row, text, lipgloss.Width(text)).Draw(g.out)
}

// drawBlock writes a multi-line block centered horizontally and vertically
// around row.
func (g *Game) drawBlock(row int, block string) {
	lines := strings.Split(block, "\n")
	width := lipgloss.Width(block)
	col := (g.cols-width)/2 + 1
	top := row - len(lines)/2
	for i, line := range lines {
		g.out.WriteAt(col, top+i, line)
	}
}

// drawBox renders lines inside a bordered box centered on row.
func (g *Game) drawBox(row int, title string, lines ...string) {
	body := append([]string{g.styles.title.Render(title)}, lines...)
	g.drawBlock(row, g.styles.box.Render(strings.Join(body, "\n")))
}

// drawHUD writes the score line: player labels with active effects at the
// edges and the score in the middle.
func (g *Game) drawHUD() {
	m := g.state.Match

	score := fmt.Sprintf("%d  |  %d", m.Scores[match.Left], m.Scores[match.Right])
	g.drawCentered(1, g.styles.title.Render(score))

	left := g.sideLabel(match.Left)
	g.out.WriteAt(2, 1, left)

	right := g.sideLabel(match.Right)
	g.out.WriteAt(g.cols-lipgloss.Width(right), 1, right)
}

// sideLabel names a side and lists its active power-up effects.
func (g *Game) sideLabel(side match.Side) string {
	m := g.state.Match
	name := "PLAYER 1"
	if side == match.Right {
		name = "PLAYER 2"
		if !m.Options().TwoPlayer {
			name = "AI"
		}
	}

	parts := []string{g.styles.text.Render(name)}
	for _, kind := range object.PowerUpKinds {
		if rem := m.EffectRemaining(side, kind); rem > 0 {
			secs := (rem + config.TargetFPS - 1) / config.TargetFPS
			parts = append(parts, g.styles.accent.Render(fmt.Sprintf("%s %d", kind, secs)))
		}
	}
	return strings.Join(parts, " ")
}

func (g *Game) drawCountdown() {
	secs := (g.state.Match.GetReady() + config.TargetFPS - 1) / config.TargetFPS
	g.drawCentered(g.midRow()-3, g.styles.title.Render("GET READY"))
	g.drawCentered(g.midRow()-2, g.styles.text.Render(strconv.Itoa(secs)))
}

func (g *Game) drawGameOver() {
	m := g.state.Match
	score := fmt.Sprintf("%d - %d", m.Scores[match.Left], m.Scores[match.Right])
	g.drawBox(g.midRow(), m.WinnerText(), "", g.styles.text.Render(score))
}

func (g *Game) drawNameEntry() {
	s := g.state
	name := string(s.name)
	if len(s.name) < config.MaxNameLength && g.frame/20%2 == 0 {
		name += "_"
	}
	g.drawBox(g.midRow(),
		fmt.Sprintf("NEW HIGH SCORE: %d", s.pendingScore),
		"",
		g.styles.text.Render("Name: "+name),
		"",
		g.styles.hint.Render("ENTER to save"),
	)
}

// drawMenu draws the title and the match options.
func (g *Game) drawMenu() {
	s := g.state
	row := 3

	if g.cols >= lipgloss.Width(titleArt[0])+2 && g.rows >= minArtRows {
		for _, line := range titleArt {
			g.drawCentered(row, g.styles.title.Render(line))
			row++
		}
		row++
		g.drawCentered(row, g.styles.accent.Render(titleText))
		row++
	} else {
		g.drawCentered(row, g.styles.title.Render(titleText))
		row++
	}
	row += 2

	mode := "2 Player"
	if !s.Menu.TwoPlayer {
		mode = "Single Player"
	}
	lines := []string{
		g.styles.text.Render(fmt.Sprintf("Difficulty: %s (E/C/A)", s.Menu.Difficulty.Name())),
		g.styles.text.Render(fmt.Sprintf("Max Points: %d (UP/DOWN)", s.Menu.Target)),
		g.styles.text.Render(fmt.Sprintf("Mode: %s (M to toggle)", mode)),
		"",
		g.styles.selected.Render(" Press ENTER to Start "),
		"",
	}
	keys := "W/S paddle 1   UP/DOWN paddle 2   P pause"
	if s.leaderboardEnabled() {
		lines = append(lines, g.styles.hint.Render("L leaderboard   Q quit"))
	} else {
		lines = append(lines, g.styles.hint.Render("Q quit"))
	}
	lines = append(lines, g.styles.hint.Render(keys))

	for _, line := range lines {
		g.drawCentered(row, line)
		row++
	}
}

// drawLeaderboard draws the stored top scores as a table.
func (g *Game) drawLeaderboard() {
	s := g.state
	if len(s.board) == 0 {
		g.drawBox(g.midRow(), "LEADERBOARD", "", g.styles.text.Render("No scores yet"), "",
			g.styles.hint.Render("ESC/ENTER to close"))
		return
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(g.styles.border).
		Headers("#", "NAME", "SCORE", "MODE", "DATE")
	for i, e := range s.board {
		t.Row(strconv.Itoa(i+1), e.Name, strconv.Itoa(e.Score), e.Mode, e.Date)
	}

	block := lipgloss.JoinVertical(lipgloss.Center,
		g.styles.title.Render("LEADERBOARD"),
		"",
		t.String(),
		"",
		g.styles.hint.Render("ESC/ENTER to close"),
	)
	g.drawBlock(g.midRow(), block)
}
