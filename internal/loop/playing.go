package loop

import (
	"github.com/tomz197/termpong/internal/config"
	"github.com/tomz197/termpong/internal/input"
	"github.com/tomz197/termpong/internal/match"
)

// startMatch creates a match from the menu selections.
func (g *Game) startMatch() {
	s := g.state
	s.Match = match.New(match.Options{
		Difficulty: s.Menu.Difficulty,
		Target:     s.Menu.Target,
		TwoPlayer:  s.Menu.TwoPlayer,
		PowerUps:   s.Settings.Features.PowerUps,
		Field:      s.Field,
		Rand:       s.rng,
	})
	s.Logger.Info("match started",
		"difficulty", s.Menu.Difficulty.Name(),
		"target", s.Menu.Target,
		"mode", s.Match.Options().Mode(),
		"field", s.Field,
	)
	s.setPhase(PhaseCountdown)
}

// updatePlaying steps the simulation with the held paddle keys.
func (g *Game) updatePlaying(in input.Input) {
	s := g.state
	if in.Pressed('p') {
		s.Match.Pause()
		s.resumePhase = s.Phase
		s.setPhase(PhasePaused)
		return
	}

	ctl := match.Controls{
		LeftUp:    in.P1Up,
		LeftDown:  in.P1Down,
		RightUp:   in.P2Up,
		RightDown: in.P2Down,
	}
	for _, e := range s.Match.Step(ctl) {
		g.logEvent(e)
	}

	switch {
	case s.Match.Over():
		s.gameOverFrames = config.GameOverFrames
		s.setPhase(PhaseGameOver)
	case s.Match.GetReady() > 0:
		s.setPhase(PhaseCountdown)
	default:
		s.setPhase(PhasePlaying)
	}
}

func (g *Game) logEvent(e match.Event) {
	s := g.state
	switch e.Kind {
	case match.EventScore, match.EventScoreBlocked:
		s.Logger.Debug(e.Kind.String(), "side", e.Side, "left", s.Match.Scores[match.Left], "right", s.Match.Scores[match.Right])
	case match.EventMatchOver:
		s.Logger.Info("match over", "winner", s.Match.WinnerText(),
			"left", s.Match.Scores[match.Left], "right", s.Match.Scores[match.Right])
	case match.EventPowerUpSpawned, match.EventPowerUpExpired, match.EventPowerUpCollected, match.EventEffectEnded:
		s.Logger.Debug(e.Kind.String(), "side", e.Side, "power_up", e.PowerUp)
	}
}

// updatePaused honours only P (resume) and Q (quit).
func (g *Game) updatePaused(in input.Input) {
	s := g.state
	switch {
	case in.Pressed('q'):
		s.Running = false
	case in.Pressed('p'):
		s.Match.Resume()
		s.setPhase(s.resumePhase)
	}
}

// updateResized waits for any key, then rescales the match to the new
// playfield and resumes the interrupted phase.
func (g *Game) updateResized(in input.Input) {
	s := g.state
	if !in.Any() {
		return
	}
	g.applyField(s.pendingField)
	g.fullRedraw = true
	s.setPhase(s.resizeReturn)
}

// updateGameOver shows the winner, then moves on to name entry when the
// winning score earns a leaderboard place.
func (g *Game) updateGameOver() {
	s := g.state
	s.gameOverFrames--
	if s.gameOverFrames > 0 {
		return
	}

	if score, ok := g.qualifyingScore(); ok {
		s.pendingScore = score
		s.name = s.name[:0]
		s.setPhase(PhaseNameEntry)
		return
	}
	g.returnToMenu()
}

// qualifyingScore returns the winner's score if it can be recorded. Only a
// human winner is recorded.
func (g *Game) qualifyingScore() (int, bool) {
	s := g.state
	if !s.leaderboardEnabled() || s.Match == nil {
		return 0, false
	}
	winner := s.Match.Winner()
	if winner == match.NoSide {
		return 0, false
	}
	if winner == match.Right && !s.Match.Options().TwoPlayer {
		return 0, false
	}
	score := s.Match.Scores[winner]
	return score, s.Store.Qualifies(score)
}

// defaultName is used when the winner confirms an empty name.
func (g *Game) defaultName() string {
	if g.state.Match != nil && g.state.Match.Winner() == match.Right {
		return "PLAYER 2"
	}
	return "PLAYER 1"
}

// updateNameEntry edits the name buffer and records the score on ENTER.
func (g *Game) updateNameEntry(in input.Input) {
	s := g.state
	for _, e := range in.Events {
		switch e.Key {
		case input.KeyRune:
			if len(s.name) < config.MaxNameLength {
				s.name = append(s.name, e.Rune)
			}
		case input.KeyBackspace:
			if len(s.name) > 0 {
				s.name = s.name[:len(s.name)-1]
			}
		case input.KeyEnter:
			g.recordScore()
			return
		}
	}
}

func (g *Game) recordScore() {
	s := g.state
	name := string(s.name)
	if name == "" {
		name = g.defaultName()
	}
	mode := s.Match.Options().Mode()
	if err := s.Store.Add(name, s.pendingScore, mode); err != nil {
		s.Logger.Error("failed to save leaderboard", "err", err)
	}
	g.returnToMenu()
}

func (g *Game) returnToMenu() {
	s := g.state
	s.Match = nil
	s.name = s.name[:0]
	s.setPhase(PhaseMenu)
}
