// internal/ui/player_level_indicator.go
package ui

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// PlayerLevelIndicator shows the level and progress toward the next one.
type PlayerLevelIndicator struct {
	X, Y float32
}

const (
	xpBarWidth  = 160
	xpBarHeight = 12
	borderWidth = 1
)

var (
	xpBarColorFill = color.RGBA{70, 100, 220, 230}
	borderColor    = color.White
)

func NewPlayerLevelIndicator(x, y float32) *PlayerLevelIndicator {
	return &PlayerLevelIndicator{X: x, Y: y}
}

// Draw renders "Lv N" followed by the experience bar. prev is the threshold
// of the current level, so the bar starts empty after every level up.
func (i *PlayerLevelIndicator) Draw(screen *ebiten.Image, level, exp, prev, next int) {
	label := fmt.Sprintf("Lv %d", level)
	drawText(screen, label, float64(i.X), float64(i.Y), 1, borderColor)
	barX := i.X + float32(textWidth(label)) + 8

	vector.StrokeRect(screen, barX, i.Y, xpBarWidth, xpBarHeight, borderWidth, borderColor, true)

	fillRatio := 0.0
	if span := next - prev; span > 0 {
		fillRatio = float64(exp-prev) / float64(span)
	}
	if fillRatio > 1 {
		fillRatio = 1
	}
	fillWidth := float32(float64(xpBarWidth-borderWidth*2) * fillRatio)
	if fillWidth > 0 {
		vector.DrawFilledRect(screen, barX+borderWidth, i.Y+borderWidth, fillWidth, xpBarHeight-borderWidth*2, xpBarColorFill, true)
	}
}
