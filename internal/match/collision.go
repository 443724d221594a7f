package match

import "github.com/tomz197/termpong/internal/config"

// bounceWalls reflects the ball off the top and bottom walls. Only a ball
// moving into a wall is reflected, so a ball still overlapping the wall on
// the next frame is not flipped back.
func (m *Match) bounceWalls() {
	b := m.Ball.Bounds()
	switch {
	case b.Y <= 0 && m.Ball.VY < 0:
		m.Ball.VY = -m.Ball.VY
		m.emit(EventWallBounce, NoSide)
	case b.Bottom() >= float64(m.field.Height) && m.Ball.VY > 0:
		m.Ball.VY = -m.Ball.VY
		m.emit(EventWallBounce, NoSide)
	}
}

// bouncePaddles reflects the ball off a paddle it is moving toward and snaps
// the ball's leading edge to the paddle face.
func (m *Match) bouncePaddles() {
	b := m.Ball.Bounds()

	if left := m.Paddles[Left].Bounds(); m.Ball.VX < 0 && b.Overlaps(left) {
		m.Ball.VX = -m.Ball.VX
		m.Ball.X = left.Right()
		m.lastHit = Left
		m.emit(EventPaddleHit, Left)
		return
	}

	if right := m.Paddles[Right].Bounds(); m.Ball.VX > 0 && b.Overlaps(right) {
		m.Ball.VX = -m.Ball.VX
		m.Ball.X = right.X - b.W
		m.lastHit = Right
		m.emit(EventPaddleHit, Right)
	}
}

// checkScore awards a point once the ball has fully left the field on either
// side, then re-centers the ball and starts the get-ready countdown.
func (m *Match) checkScore() {
	b := m.Ball.Bounds()

	scorer := NoSide
	switch {
	case b.Right() <= 0:
		scorer = Right
	case b.X >= float64(m.field.Width):
		scorer = Left
	}
	if scorer == NoSide {
		return
	}

	// The shield belongs to the side the ball left through.
	if m.ShieldActive(scorer.Opponent()) {
		m.emit(EventScoreBlocked, scorer)
	} else {
		m.Scores[scorer]++
		m.emit(EventScore, scorer)
	}

	m.Ball.Center(m.field)
	m.lastHit = NoSide
	m.getReady = config.GetReadyFrames

	if m.Scores[scorer] >= m.opts.Target {
		m.over = true
		m.winner = scorer
		m.getReady = 0
		m.emit(EventMatchOver, scorer)
	}
}
