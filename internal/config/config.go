// internal/config/config.go
package config

import "image/color"

const (
	ScreenWidth  = 706
	ScreenHeight = 652

	// MaxSlice: максимальный шаг симуляции в секундах (5 мс).
	MaxSlice = 0.005
	// MaxFrameTime caps the wall time handed to the stepper in one frame.
	MaxFrameTime = 0.25

	PlayerHitPoints    = 120
	PlayerSpeed        = 300.0 // pixels per second
	PlayerBottomOffset = 120   // player row, measured from the bottom of the play area

	MissileSpeed          = 200.0 // pixels per second
	MissileHitPoints      = 20
	EnemyMissileHitPoints = 20

	FormationWidth        = 400
	FormationTop          = 50
	FormationStartSpeed   = 50.0   // pixels per second
	FormationSpeedStep    = 10.0   // added on every wall reversal
	FormationDropSpeed    = 4000.0 // 20 px per full 5 ms slice; a reversal on a shorter remainder slice drops less
	ShotProbability       = 0.1    // shots per second per ship
	ShotProbabilityStep   = 0.05
	BunkerCount           = 3
	BunkerBottomOffset    = 240
	FormationOutlineWidth = 2.0

	// Терминальные задержки в тиках симуляции.
	WinStatsDelay    = 120
	WinRestartDelay  = 300
	LostRestartDelay = 240

	HealthBarX         = 95
	HealthBarOffsetY   = 46
	HealthBarThickness = 16
	HealthLabelX       = 40
	HealthLabelOffsetY = 59

	StarCount       = 3
	StarOriginX     = 280.0
	StarOriginY     = 320.0
	StarSpacing     = 70.0
	StarOuterRadius = 25.0
	StarInnerRadius = 12.5
)

// StarRule is one row of the victory rating table.
type StarRule struct {
	Stars        int
	UnderSeconds float64
	MinHitPoints int
}

// StarRules are checked in order; the first match wins.
var StarRules = []StarRule{
	{Stars: 3, UnderSeconds: 42, MinHitPoints: 96},
	{Stars: 2, UnderSeconds: 50, MinHitPoints: 72},
	{Stars: 1, UnderSeconds: 60, MinHitPoints: 48},
}

var (
	BackgroundColor   = color.RGBA{12, 12, 28, 255}
	TextColor         = color.RGBA{240, 240, 240, 250}
	PlayerColor       = color.RGBA{90, 220, 120, 255}
	BunkerColor       = color.RGBA{60, 200, 60, 255}
	AllyMissileColor  = color.RGBA{250, 250, 250, 255}
	EnemyMissileColor = color.RGBA{255, 90, 60, 255}
	FormationBoxColor = color.RGBA{255, 0, 0, 255}
	HealthHighColor   = color.RGBA{144, 238, 144, 255} // LightGreen
	HealthMediumColor = color.RGBA{255, 255, 0, 255}
	HealthLowColor    = color.RGBA{255, 0, 0, 255}
	StarFilledColor   = color.RGBA{255, 255, 0, 255}
	StarEmptyColor    = color.RGBA{250, 250, 210, 255} // LightGoldenrodYellow
	StarStrokeColor   = color.RGBA{20, 20, 20, 255}
	PauseOverlayColor = color.RGBA{0, 0, 0, 128}
)

// EnemyRowColors tint formation rows from the top down.
var EnemyRowColors = []color.RGBA{
	{230, 80, 200, 255},
	{90, 180, 255, 255},
	{255, 200, 60, 255},
}
