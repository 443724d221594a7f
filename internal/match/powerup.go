package match

import (
	"github.com/tomz197/termpong/internal/config"
	"github.com/tomz197/termpong/internal/object"
)

// scheduleSpawn picks the delay before the next power-up appears.
func (m *Match) scheduleSpawn() {
	spread := config.PowerUpMaxSpawnFrames - config.PowerUpMinSpawnFrames
	m.spawnIn = config.PowerUpMinSpawnFrames + m.rng.Intn(spread+1)
}

// updatePowerUp spawns, expires or collects the field's power-up.
func (m *Match) updatePowerUp() {
	if m.PowerUp == nil {
		m.spawnIn--
		if m.spawnIn <= 0 {
			m.spawnPowerUp()
		}
		return
	}

	if m.Ball.Bounds().Overlaps(m.PowerUp.Bounds()) {
		m.collect(m.PowerUp.Kind)
		m.PowerUp = nil
		m.scheduleSpawn()
		return
	}

	if m.PowerUp.Tick() {
		m.events = append(m.events, Event{Kind: EventPowerUpExpired, Side: NoSide, PowerUp: m.PowerUp.Kind})
		m.PowerUp = nil
		m.scheduleSpawn()
	}
}

// spawnPowerUp places a random power-up in the middle half of the field.
func (m *Match) spawnPowerUp() {
	kind := object.PowerUpKinds[m.rng.Intn(len(object.PowerUpKinds))]
	size := config.PowerUpSize

	minX := m.field.Width / 4
	spanX := m.field.Width/2 - size
	spanY := m.field.Height - size
	x, y := minX, 0
	if spanX > 0 {
		x += m.rng.Intn(spanX + 1)
	}
	if spanY > 0 {
		y = m.rng.Intn(spanY + 1)
	}

	m.PowerUp = object.NewPowerUp(kind, float64(x), float64(y))
	m.events = append(m.events, Event{Kind: EventPowerUpSpawned, Side: NoSide, PowerUp: kind})
}

// collect grants the power-up to the paddle that last touched the ball.
func (m *Match) collect(kind object.PowerUpKind) {
	side := m.lastHit
	m.events = append(m.events, Event{Kind: EventPowerUpCollected, Side: side, PowerUp: kind})
	if side == NoSide {
		return
	}

	m.effects[side][kind] = config.PowerUpEffectFrames
	p := m.Paddles[side]
	switch kind {
	case object.PowerUpSpeed:
		p.Speed = config.BoostedPaddleSpeed
	case object.PowerUpGrow:
		p.SetHeight(config.GrownPaddleHeight, m.field.Height)
	}
}

// tickEffects counts down active effects and reverts the ones that end.
func (m *Match) tickEffects() {
	for _, side := range []Side{Left, Right} {
		for _, kind := range effectKinds {
			if m.effects[side][kind] <= 0 {
				continue
			}
			m.effects[side][kind]--
			if m.effects[side][kind] > 0 {
				continue
			}
			m.revert(side, kind)
			m.events = append(m.events, Event{Kind: EventEffectEnded, Side: side, PowerUp: kind})
		}
	}
}

func (m *Match) revert(side Side, kind object.PowerUpKind) {
	p := m.Paddles[side]
	switch kind {
	case object.PowerUpSpeed:
		p.Speed = config.PaddleSpeed
	case object.PowerUpGrow:
		p.SetHeight(config.PaddleHeight, m.field.Height)
	}
}

// slowActive reports whether either side has the ball-slow effect.
func (m *Match) slowActive() bool {
	return m.effects[Left][object.PowerUpSlow] > 0 || m.effects[Right][object.PowerUpSlow] > 0
}
