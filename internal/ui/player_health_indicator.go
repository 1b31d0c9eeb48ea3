// internal/ui/player_health_indicator.go
package ui

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"go-survivor/pkg/render"
)

const (
	healthBarWidth  = 140
	healthBarHeight = 12
)

var (
	healthHighColor = color.RGBA{0, 200, 0, 255}
	healthLowColor  = color.RGBA{220, 40, 40, 255}
)

// PlayerHealthIndicator shows the player's health as a bar with numbers.
type PlayerHealthIndicator struct {
	X, Y float32
}

func NewPlayerHealthIndicator(x, y float32) *PlayerHealthIndicator {
	return &PlayerHealthIndicator{X: x, Y: y}
}

// Draw renders the bar. It turns red below half health.
func (i *PlayerHealthIndicator) Draw(screen *ebiten.Image, health, maxHealth int) {
	ratio := 0.0
	if maxHealth > 0 {
		ratio = float64(health) / float64(maxHealth)
	}
	if ratio < 0 {
		ratio = 0
	}
	fill := healthHighColor
	if ratio <= 0.5 {
		fill = healthLowColor
	}

	vector.DrawFilledRect(screen, i.X, i.Y, healthBarWidth, healthBarHeight, render.DarkenColor(fill), true)
	vector.DrawFilledRect(screen, i.X, i.Y, float32(healthBarWidth*ratio), healthBarHeight, fill, true)
	vector.StrokeRect(screen, i.X, i.Y, healthBarWidth, healthBarHeight, borderWidth, borderColor, true)

	drawText(screen, fmt.Sprintf("%d/%d", health, maxHealth), float64(i.X+healthBarWidth+8), float64(i.Y), 1, borderColor)
}
