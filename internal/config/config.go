// internal/config/config.go
package config

import (
	"image/color"

	"golang.org/x/image/colornames"
)

const (
	ScreenWidth  = 800
	ScreenHeight = 600
	WindowTitle  = "Survivor"

	// TargetTPS is the number of simulation steps per second the loop
	// scheduler lets through, independent of the display refresh rate.
	TargetTPS = 120

	GridSize        = 50 // background grid cell, pixels
	HUDHeight       = 24
	HealthBarHeight = 5
	HealthBarOffset = 10
	AimIndicator    = 1.2 // aim line length as a multiple of player size

	// Cosmetic effects, in ticks and world units.
	BurstTicks       = 24
	BurstRadius      = 30
	DamageFlashTicks = 18
	LevelUpTicks     = 60
	LevelUpRadius    = 90

	MenuOptionStart    = 0
	MenuOptionSettings = 1
	PauseOptionResume  = 0
	PauseOptionMenu    = 1
)

var (
	BackgroundColor = color.RGBA{0, 0, 0, 255}
	GridColor       = color.RGBA{0x33, 0x33, 0x33, 255}
	TreeColor       = color.RGBA{0, 128, 0, 255}
	JewelColor      = colornames.Cyan
	EnemyColor      = colornames.Red
	BulletColor     = colornames.Yellow
	HealthBarBack   = color.RGBA{0, 0, 0, 255}
	HealthBarFill   = color.RGBA{0, 128, 0, 255}
	AimColor        = colornames.Cyan
	TitleColor      = color.RGBA{0x55, 0xAA, 0xFF, 255}
	HighlightColor  = color.RGBA{0xFF, 0xFF, 0x00, 255}
	TextColor       = color.RGBA{0xFF, 0xFF, 0xFF, 255}
	HintColor       = color.RGBA{0xAA, 0xAA, 0xAA, 255}
	PauseTitleColor = color.RGBA{0x66, 0xFC, 0xF1, 255}
	GameOverColor   = color.RGBA{0xFF, 0x55, 0x55, 255}
	OverlayColor    = color.RGBA{0, 0, 0, 178}
	HUDColor        = color.RGBA{20, 20, 30, 220}
	BurstColor      = colornames.Orange
	DamageColor     = colornames.Crimson
	LevelUpColor    = colornames.Gold
)

// PlayerColor is one entry of the cosmetic palette offered in Settings.
type PlayerColor struct {
	Name  string
	Color color.RGBA
}

// PlayerPalette lists the selectable player colors, in menu order.
var PlayerPalette = []PlayerColor{
	{Name: "white", Color: colornames.White},
	{Name: "cyan", Color: colornames.Cyan},
	{Name: "lime", Color: colornames.Lime},
	{Name: "yellow", Color: colornames.Yellow},
	{Name: "orange", Color: colornames.Orange},
	{Name: "pink", Color: colornames.Pink},
}

// PaletteColor returns the palette entry for idx, wrapping out-of-range values.
func PaletteColor(idx int) PlayerColor {
	n := len(PlayerPalette)
	return PlayerPalette[((idx%n)+n)%n]
}
