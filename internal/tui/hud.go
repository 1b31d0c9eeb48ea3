// internal/tui/hud.go
package tui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"go-survivor/internal/config"
	"go-survivor/internal/system"
)

var _ system.HUD = (*HUD)(nil)

// HUD is a single status line on the top row of the terminal.
type HUD struct {
	visible           bool
	health, maxHealth int
	level             int
	score             int
	exp, next         int
}

func (h *HUD) SetVisible(visible bool)         { h.visible = visible }
func (h *HUD) SetHealth(health, maxHealth int) { h.health, h.maxHealth = health, maxHealth }
func (h *HUD) SetLevel(level int)              { h.level = level }
func (h *HUD) SetScore(score int)              { h.score = score }
func (h *HUD) SetExp(exp, next int)            { h.exp, h.next = exp, next }

// Line returns the status text.
func (h *HUD) Line() string {
	return fmt.Sprintf(" HP %d/%d  Lv %d  Exp %d/%d  Score %d ", h.health, h.maxHealth, h.level, h.exp, h.next, h.score)
}

func (h *HUD) Draw(screen tcell.Screen) {
	if !h.visible {
		return
	}
	w, _ := screen.Size()
	style := styleFor(config.TextColor).Reverse(true)
	line := []rune(h.Line())
	for x := 0; x < w; x++ {
		ch := ' '
		if x < len(line) {
			ch = line[x]
		}
		screen.SetContent(x, 0, ch, nil, style)
	}
}
