package match

import "github.com/tomz197/termpong/internal/object"

// EventKind identifies something that happened during a step.
type EventKind int

const (
	EventServe            EventKind = iota // Ball launched after the get-ready pause
	EventWallBounce                        // Ball reflected off the top or bottom wall
	EventPaddleHit                         // Ball reflected off a paddle
	EventScore                             // Side scored a point
	EventScoreBlocked                      // Side would have scored but a shield cancelled it
	EventPowerUpSpawned                    // A power-up appeared
	EventPowerUpExpired                    // A power-up vanished uncollected
	EventPowerUpCollected                  // Side collected a power-up (NoSide: nobody had touched the ball)
	EventEffectEnded                       // A power-up effect on Side wore off
	EventMatchOver                         // Side won the match
)

func (k EventKind) String() string {
	switch k {
	case EventServe:
		return "serve"
	case EventWallBounce:
		return "wall_bounce"
	case EventPaddleHit:
		return "paddle_hit"
	case EventScore:
		return "score"
	case EventScoreBlocked:
		return "score_blocked"
	case EventPowerUpSpawned:
		return "powerup_spawned"
	case EventPowerUpExpired:
		return "powerup_expired"
	case EventPowerUpCollected:
		return "powerup_collected"
	case EventEffectEnded:
		return "effect_ended"
	case EventMatchOver:
		return "match_over"
	default:
		return "unknown"
	}
}

// Event is emitted by Step.
type Event struct {
	Kind    EventKind
	Side    Side
	PowerUp object.PowerUpKind // Set for power-up events
}
