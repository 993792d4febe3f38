package config

import "image/color"

const (
	ScreenWidth  = 1280
	ScreenHeight = 720
	MaxDeltaTime = 0.06

	// Мир центрирован в нуле: x в [-ScreenWidth/2, ScreenWidth/2], y аналогично.
	BoundsMargin = 64.0 // Снаряды за пределами экрана плюс отступ уничтожаются

	PlayerRadius = 32.0
	EnemyRadius  = 24.0
	PickupRadius = 8.0

	RegularBulletSpeed  = 700.0 // pixels per second
	RegularBulletRadius = 4.0
	RocketBulletSpeed   = 450.0
	RocketBulletRadius  = 8.0
	SawBladeSpeed       = 380.0
	SawBladeRadius      = 11.0

	DamageFlashDuration = 0.08

	StrokeWidth      = 2.0
	IndicatorOffsetX = 30
	IndicatorRadius  = 12
	FontSize         = 14
	TitleFontSize    = 18

	DebugListenAddr = "localhost:6060"
)

var (
	BackgroundColor  = color.RGBA{20, 20, 30, 255}
	PlayerColor      = color.RGBA{50, 205, 50, 255}
	EnemyColor       = color.RGBA{220, 60, 60, 255}
	FrozenEnemyColor = color.RGBA{51, 255, 25, 255}
	FlashColor       = color.RGBA{255, 255, 255, 255}
	PickupColor      = color.RGBA{255, 215, 0, 255}
	TextLightColor   = color.RGBA{240, 240, 240, 255}
	TextDarkColor    = color.RGBA{20, 20, 30, 255}
	OverlayColor     = color.RGBA{0, 0, 0, 160}
	HealthBarColor   = color.RGBA{220, 60, 60, 220}
	GridColor        = color.RGBA{35, 35, 50, 255}
	AimColor         = color.RGBA{50, 205, 50, 120}

	PlayingStateColor   = color.RGBA{50, 205, 50, 255}
	SkillTreeStateColor = color.RGBA{70, 130, 180, 255}
	PausedStateColor    = color.RGBA{255, 215, 0, 255}
	NodeColors       = map[string]color.RGBA{
		"available": {200, 200, 200, 255},
		"locked":    {90, 90, 90, 255},
		"purchased": {255, 215, 0, 255},
	}
	BulletColors = []color.RGBA{
		{255, 255, 120, 255}, // Regular
		{255, 140, 40, 255},  // Rocket
		{150, 220, 255, 255}, // SawBlade
	}
)
