package config

import "time"

// Frame timing. The simulation is fixed-step: every velocity and duration
// below is expressed per frame at this rate.
const (
	TargetFPS       = 60
	TargetFrameTime = time.Second / TargetFPS
)

// Playfield geometry. One terminal column is CellWidth logical units wide and
// one terminal row is CellHeight units tall (two half-block sub-pixels).
const (
	CellWidth  = 10
	CellHeight = 20

	MinCols = 40
	MaxCols = 200
	MinRows = 12
	MaxRows = 60

	DefaultWidth  = 800
	DefaultHeight = 400
)

// Paddle
const (
	PaddleWidth     = 10
	PaddleHeight    = 60
	PaddleSpeed     = 7
	PaddleInset     = 20 // Gap between the left wall and the left paddle
	PaddleInsetRear = 30 // Right paddle sits at width - PaddleInsetRear
)

// Ball
const (
	BallSize           = 10
	BallMaxSpeed       = 15.0  // Per axis, units per frame
	BallAcceleration   = 1.001 // Per-frame growth factor on accelerating difficulty
	BallSpeedSpread    = 2     // Horizontal serve speed is base + [0, spread]
	BallMinVertical    = 2
	BallMaxVertical    = 4
	EasyBaseSpeed      = 4
	ChallengeBaseSpeed = 6
)

// Match flow, in frames
const (
	GetReadyFrames = 60  // Freeze after every point and before the first serve
	GameOverFrames = 180 // Winner announcement
	DefaultTarget  = 5
	MinTarget      = 1
	MaxTarget      = 20
)

// Background stars scattered over the playfield during a match
const StarCount = 40

// Power-ups, in frames
const (
	PowerUpSize           = 16
	PowerUpMinSpawnFrames = 300
	PowerUpMaxSpawnFrames = 600
	PowerUpVisibleFrames  = 480
	PowerUpEffectFrames   = 300
	BoostedPaddleSpeed    = 11
	GrownPaddleHeight     = 90
)

// Leaderboard
const (
	LeaderboardSize = 10
	MaxNameLength   = 12
	LeaderboardDate = "2006-01-02 15:04:05"
)
