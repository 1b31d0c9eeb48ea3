// internal/ui/hud.go
package ui

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"go-survivor/internal/config"
	"go-survivor/internal/system"
)

var _ system.HUD = (*HUD)(nil)

// HUD is the status strip along the top of the screen. Values are pushed
// in by the simulation and drawn every frame while visible.
type HUD struct {
	visible           bool
	health, maxHealth int
	level             int
	score             int
	exp, next, prev   int

	healthIndicator *PlayerHealthIndicator
	levelIndicator  *PlayerLevelIndicator
}

func NewHUD() *HUD {
	return &HUD{
		healthIndicator: NewPlayerHealthIndicator(8, 6),
		levelIndicator:  NewPlayerLevelIndicator(260, 6),
	}
}

func (h *HUD) SetVisible(visible bool) { h.visible = visible }

func (h *HUD) SetHealth(health, maxHealth int) {
	h.health, h.maxHealth = health, maxHealth
}

func (h *HUD) SetLevel(level int) { h.level = level }

func (h *HUD) SetScore(score int) { h.score = score }

// SetExp also tracks the previous threshold so the bar shows progress
// within the current level. A lower threshold means the run was reset.
func (h *HUD) SetExp(exp, next int) {
	switch {
	case next > h.next && h.next > 0:
		h.prev = h.next
	case next < h.next:
		h.prev = 0
	}
	h.exp, h.next = exp, next
}

func (h *HUD) Visible() bool { return h.visible }

func (h *HUD) Draw(screen *ebiten.Image) {
	if !h.visible {
		return
	}
	vector.DrawFilledRect(screen, 0, 0, config.ScreenWidth, config.HUDHeight, config.HUDColor, false)
	h.healthIndicator.Draw(screen, h.health, h.maxHealth)
	h.levelIndicator.Draw(screen, h.level, h.exp, h.prev, h.next)

	score := fmt.Sprintf("Score %d", h.score)
	drawText(screen, score, config.ScreenWidth-8-textWidth(score), 6, 1, config.TextColor)
}
