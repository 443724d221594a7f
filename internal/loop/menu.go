package loop

import (
	"github.com/tomz197/termpong/internal/config"
	"github.com/tomz197/termpong/internal/input"
	"github.com/tomz197/termpong/internal/match"
)

// updateMenu applies menu keys: difficulty, mode, target score, start,
// leaderboard and quit.
func (g *Game) updateMenu(in input.Input) {
	s := g.state
	for _, e := range in.Events {
		switch e.Key {
		case input.KeyUp:
			s.Menu.Target = min(s.Menu.Target+1, config.MaxTarget)
		case input.KeyDown:
			s.Menu.Target = max(s.Menu.Target-1, config.MinTarget)
		case input.KeyEnter:
			g.startMatch()
			return
		case input.KeyRune:
			if d, ok := match.ParseDifficulty(string(e.Rune)); ok {
				s.Menu.Difficulty = d
				continue
			}
			switch e.Rune {
			case 'm', 'M':
				s.Menu.TwoPlayer = !s.Menu.TwoPlayer
			case 'l', 'L':
				if s.leaderboardEnabled() {
					s.board = s.Store.Load()
					s.setPhase(PhaseLeaderboard)
					return
				}
			case 'q', 'Q':
				s.Running = false
				return
			}
		}
	}
}

// updateLeaderboard closes the leaderboard view on ESC or ENTER.
func (g *Game) updateLeaderboard(in input.Input) {
	if in.Has(input.KeyEscape) || in.Has(input.KeyEnter) {
		g.state.setPhase(PhaseMenu)
	}
}
