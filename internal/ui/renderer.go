// internal/ui/renderer.go
package ui

import (
	"fmt"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"go-survivor/internal/app"
	"go-survivor/internal/config"
	"go-survivor/internal/state"
	"go-survivor/internal/system"
)

var _ state.Renderer = (*Renderer)(nil)

// Renderer draws screens onto an offscreen canvas during the simulation
// step; ebiten's Draw then copies the canvas to the window.
type Renderer struct {
	canvas  *ebiten.Image
	hud     *HUD
	start   []*MenuButton
	pause   []*MenuButton
	confirm []*MenuButton
}

func NewRenderer(hud *HUD) *Renderer {
	return &Renderer{
		canvas:  ebiten.NewImage(config.ScreenWidth, config.ScreenHeight),
		hud:     hud,
		start:   menuColumn(280, "Start", "Settings"),
		pause:   menuColumn(260, "Resume", "Main Menu"),
		confirm: menuRow(330, "Yes", "No"),
	}
}

// Draw presents the last rendered canvas plus the HUD.
func (r *Renderer) Draw(screen *ebiten.Image) {
	screen.DrawImage(r.canvas, nil)
	if r.hud != nil {
		r.hud.Draw(screen)
	}
}

func (r *Renderer) clear() {
	r.canvas.Fill(config.BackgroundColor)
}

func (r *Renderer) overlay() {
	vector.DrawFilledRect(r.canvas, 0, 0, config.ScreenWidth, config.ScreenHeight, config.OverlayColor, false)
}

func (r *Renderer) DrawStartScreen(selected int) {
	r.clear()
	drawCentered(r.canvas, "SURVIVOR", config.ScreenWidth/2, 140, 5, config.TitleColor)
	for i, b := range r.start {
		b.Draw(r.canvas, i == selected)
	}
	drawCentered(r.canvas, "Arrow keys to choose, Enter to confirm", config.ScreenWidth/2, 520, 1, config.HintColor)
}

func (r *Renderer) DrawSettings(colorIndex int) {
	r.clear()
	drawCentered(r.canvas, "SETTINGS", config.ScreenWidth/2, 120, 4, config.TitleColor)
	drawCentered(r.canvas, "Player color", config.ScreenWidth/2, 220, 2, config.TextColor)

	c := config.PaletteColor(colorIndex)
	vector.DrawFilledCircle(r.canvas, config.ScreenWidth/2, 300, 30, c.Color, true)
	drawCentered(r.canvas, fmt.Sprintf("<  %s  >", c.Name), config.ScreenWidth/2, 350, 2, config.HighlightColor)
	drawCentered(r.canvas, "Left/Right to change, Enter or Escape to go back", config.ScreenWidth/2, 520, 1, config.HintColor)
}

func (r *Renderer) DrawLoading(progress float64) {
	r.clear()
	drawCentered(r.canvas, "Generating world...", config.ScreenWidth/2, 250, 2, config.TextColor)
	const w, h = 400, 20
	x := float32(config.ScreenWidth-w) / 2
	vector.StrokeRect(r.canvas, x, 300, w, h, 2, config.TextColor, false)
	vector.DrawFilledRect(r.canvas, x+2, 302, float32(float64(w-4)*progress), h-4, config.TitleColor, false)
}

func (r *Renderer) DrawWorld(frame app.Frame) {
	drawWorld(r.canvas, frame)
}

func (r *Renderer) DrawPause(selected int) {
	r.overlay()
	drawCentered(r.canvas, "PAUSED", config.ScreenWidth/2, 160, 5, config.PauseTitleColor)
	for i, b := range r.pause {
		b.Draw(r.canvas, i == selected)
	}
}

func (r *Renderer) DrawConfirm(yes bool) {
	r.overlay()
	drawCentered(r.canvas, "Return to the main menu?", config.ScreenWidth/2, 220, 2, config.TextColor)
	drawCentered(r.canvas, "Your progress will be lost.", config.ScreenWidth/2, 260, 1, config.HintColor)
	r.confirm[0].Draw(r.canvas, yes)
	r.confirm[1].Draw(r.canvas, !yes)
}

func (r *Renderer) DrawGameOver(summary system.Summary) {
	r.clear()
	drawCentered(r.canvas, "GAME OVER", config.ScreenWidth/2, 120, 5, config.GameOverColor)
	lines := []string{
		fmt.Sprintf("Survived %s", summary.Survived.Truncate(time.Second)),
		fmt.Sprintf("Level %d", summary.Level),
		fmt.Sprintf("Score %d", summary.Score),
		fmt.Sprintf("Enemies defeated %d", summary.Kills),
		fmt.Sprintf("Jewels collected %d", summary.Jewels),
	}
	for i, line := range lines {
		drawCentered(r.canvas, line, config.ScreenWidth/2, 240+float64(i)*34, 2, config.TextColor)
	}
	drawCentered(r.canvas, "Enter: main menu    C: copy summary", config.ScreenWidth/2, 520, 1, config.HintColor)
}
