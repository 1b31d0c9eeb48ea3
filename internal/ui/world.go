// internal/ui/world.go
package ui

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"go-survivor/internal/app"
	"go-survivor/internal/component"
	"go-survivor/internal/config"
)

// onScreen reports whether a circle at screen position (x, y) is visible.
func onScreen(x, y, r float64) bool {
	return x+r >= 0 && x-r <= config.ScreenWidth && y+r >= 0 && y-r <= config.ScreenHeight
}

func fillCircle(dst *ebiten.Image, x, y, r float64, clr color.Color) {
	if !onScreen(x, y, r) {
		return
	}
	vector.DrawFilledCircle(dst, float32(x), float32(y), float32(r), clr, true)
}

// drawGrid draws the background grid scrolled with the camera.
func drawGrid(dst *ebiten.Image, camX, camY float64) {
	startX := math.Mod(camX, config.GridSize)
	startY := math.Mod(camY, config.GridSize)
	for x := startX; x <= config.ScreenWidth; x += config.GridSize {
		vector.StrokeLine(dst, float32(x), 0, float32(x), config.ScreenHeight, 1, config.GridColor, false)
	}
	for y := startY; y <= config.ScreenHeight; y += config.GridSize {
		vector.StrokeLine(dst, 0, float32(y), config.ScreenWidth, float32(y), 1, config.GridColor, false)
	}
}

// faded scales a premultiplied color by f.
func faded(c color.RGBA, f float64) color.RGBA {
	return color.RGBA{uint8(float64(c.R) * f), uint8(float64(c.G) * f), uint8(float64(c.B) * f), uint8(float64(c.A) * f)}
}

func effectColor(kind component.EffectKind) color.RGBA {
	switch kind {
	case component.EffectDamageFlash:
		return config.DamageColor
	case component.EffectLevelUp:
		return config.LevelUpColor
	default:
		return config.BurstColor
	}
}

func drawEffects(dst *ebiten.Image, effects []*component.Effect, camX, camY float64) {
	for _, e := range effects {
		x, y := e.X+camX, e.Y+camY
		if e.Radius <= 0 || !onScreen(x, y, e.Radius) {
			continue
		}
		vector.StrokeCircle(dst, float32(x), float32(y), float32(e.Radius), 2, faded(effectColor(e.Kind), e.Fade()), true)
	}
}

// drawWorld draws one frame of play: grid, terrain, pickups, enemies with
// their health bars, bullets, effects, then the player with its aim line on top.
func drawWorld(dst *ebiten.Image, f app.Frame) {
	camX, camY := f.CameraX, f.CameraY
	dst.Fill(config.BackgroundColor)
	drawGrid(dst, camX, camY)

	for _, t := range f.Trees {
		fillCircle(dst, t.X+camX, t.Y+camY, t.Size, config.TreeColor)
	}
	for _, j := range f.Jewels {
		fillCircle(dst, j.X+camX, j.Y+camY, j.Size, config.JewelColor)
	}
	for _, e := range f.Enemies {
		x, y := e.X+camX, e.Y+camY
		if !onScreen(x, y, e.Size+config.HealthBarOffset) {
			continue
		}
		fillCircle(dst, x, y, e.Size, config.EnemyColor)
		w := float32(e.Size * 2)
		bx := float32(x - e.Size)
		by := float32(y - e.Size - config.HealthBarOffset)
		vector.DrawFilledRect(dst, bx, by, w, config.HealthBarHeight, config.HealthBarBack, false)
		vector.DrawFilledRect(dst, bx, by, w*float32(e.HealthFraction()), config.HealthBarHeight, config.HealthBarFill, false)
	}
	for _, b := range f.Bullets {
		fillCircle(dst, b.X+camX, b.Y+camY, b.Size, config.BulletColor)
	}
	drawEffects(dst, f.Effects, camX, camY)

	p := f.Player
	px, py := p.X+camX, p.Y+camY
	fillCircle(dst, px, py, p.Size, config.PaletteColor(p.ColorIndex).Color)
	reach := p.Size * config.AimIndicator
	vector.StrokeLine(dst, float32(px), float32(py),
		float32(px+math.Cos(p.AimAngle)*reach), float32(py+math.Sin(p.AimAngle)*reach),
		2, config.AimColor, true)
}
