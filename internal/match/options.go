package match

import (
	"math/rand"
	"strings"

	"github.com/tomz197/termpong/internal/config"
	"github.com/tomz197/termpong/internal/object"
)

// Difficulty selects the ball's base speed and whether it accelerates.
type Difficulty string

const (
	Easy         Difficulty = "E"
	Challenging  Difficulty = "C"
	Accelerating Difficulty = "A"
)

// ParseDifficulty accepts a difficulty tag in either case.
func ParseDifficulty(s string) (Difficulty, bool) {
	switch d := Difficulty(strings.ToUpper(strings.TrimSpace(s))); d {
	case Easy, Challenging, Accelerating:
		return d, true
	}
	return Easy, false
}

// BaseSpeed returns the minimum horizontal serve speed.
func (d Difficulty) BaseSpeed() int {
	if d == Easy {
		return config.EasyBaseSpeed
	}
	return config.ChallengeBaseSpeed
}

// Accelerates reports whether the ball speeds up during a rally.
func (d Difficulty) Accelerates() bool {
	return d == Accelerating
}

// Name returns a human readable label.
func (d Difficulty) Name() string {
	switch d {
	case Challenging:
		return "Challenging"
	case Accelerating:
		return "Accelerating"
	default:
		return "Easy"
	}
}

// Side identifies a paddle.
type Side int

const (
	NoSide Side = iota - 1
	Left
	Right
)

// Opponent returns the other side.
func (s Side) Opponent() Side {
	if s == Left {
		return Right
	}
	return Left
}

func (s Side) String() string {
	switch s {
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return "none"
	}
}

// Options configure a new match.
type Options struct {
	Difficulty Difficulty
	Target     int  // Points needed to win
	TwoPlayer  bool // false: the right paddle is computer controlled
	PowerUps   bool
	Field      object.Field
	Rand       *rand.Rand // nil: seeded from the clock
}

// Mode returns the leaderboard mode tag.
func (o Options) Mode() string {
	if o.TwoPlayer {
		return "2P"
	}
	return "1P"
}

// Controls is the per-frame snapshot of held movement keys.
type Controls struct {
	LeftUp    bool
	LeftDown  bool
	RightUp   bool
	RightDown bool
}
