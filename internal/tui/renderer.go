// internal/tui/renderer.go
package tui

import (
	"fmt"
	"image/color"
	"math"
	"time"

	"github.com/gdamore/tcell/v2"

	"go-survivor/internal/app"
	"go-survivor/internal/component"
	"go-survivor/internal/config"
	"go-survivor/internal/state"
	"go-survivor/internal/system"
	"go-survivor/pkg/render"
)

// World units covered by one terminal cell. Cells are about twice as tall
// as they are wide.
const (
	CellWidth  = 10.0
	CellHeight = 20.0
)

var _ state.Renderer = (*Renderer)(nil)

// Renderer draws screens as text cells.
type Renderer struct {
	screen tcell.Screen
}

func NewRenderer(screen tcell.Screen) *Renderer {
	return &Renderer{screen: screen}
}

func styleFor(c color.Color) tcell.Style {
	r, g, b := render.RGB(c)
	return tcell.StyleDefault.Foreground(tcell.NewRGBColor(r, g, b))
}

func (r *Renderer) put(x, y int, ch rune, style tcell.Style) {
	w, h := r.screen.Size()
	if x < 0 || y < 0 || x >= w || y >= h {
		return
	}
	r.screen.SetContent(x, y, ch, nil, style)
}

func (r *Renderer) text(x, y int, s string, style tcell.Style) {
	for i, ch := range []rune(s) {
		r.put(x+i, y, ch, style)
	}
}

func (r *Renderer) centered(y int, s string, style tcell.Style) {
	w, _ := r.screen.Size()
	r.text((w-len([]rune(s)))/2, y, s, style)
}

func (r *Renderer) menu(top int, selected int, labels ...string) {
	for i, label := range labels {
		style := styleFor(config.TextColor)
		if i == selected {
			label = "> " + label + " <"
			style = styleFor(config.HighlightColor).Bold(true)
		}
		r.centered(top+i*2, label, style)
	}
}

// toCell maps a world position to a cell, with the player in the middle
// of the terminal.
func (r *Renderer) toCell(f app.Frame, x, y float64) (int, int) {
	w, h := r.screen.Size()
	cx := float64(w)/2 + (x-f.Player.X)/CellWidth
	cy := float64(h)/2 + (y-f.Player.Y)/CellHeight
	return int(math.Floor(cx)), int(math.Floor(cy))
}

func (r *Renderer) DrawStartScreen(selected int) {
	r.screen.Clear()
	_, h := r.screen.Size()
	r.centered(h/4, "S U R V I V O R", styleFor(config.TitleColor).Bold(true))
	r.menu(h/2, selected, "Start", "Settings")
	r.centered(h-2, "arrows: choose  enter: confirm  ctrl-c: quit", styleFor(config.HintColor))
}

func (r *Renderer) DrawSettings(colorIndex int) {
	r.screen.Clear()
	_, h := r.screen.Size()
	c := config.PaletteColor(colorIndex)
	r.centered(h/4, "SETTINGS", styleFor(config.TitleColor).Bold(true))
	r.centered(h/2-1, "Player color", styleFor(config.TextColor))
	r.centered(h/2+1, fmt.Sprintf("<  @ %s  >", c.Name), styleFor(c.Color).Bold(true))
	r.centered(h-2, "left/right: change  enter/esc: back", styleFor(config.HintColor))
}

func (r *Renderer) DrawLoading(progress float64) {
	r.screen.Clear()
	w, h := r.screen.Size()
	r.centered(h/2-2, "Generating world...", styleFor(config.TextColor))
	barW := w / 2
	filled := int(float64(barW) * progress)
	left := (w - barW) / 2
	for i := 0; i < barW; i++ {
		ch := '░'
		if i < filled {
			ch = '█'
		}
		r.put(left+i, h/2, ch, styleFor(config.TitleColor))
	}
}

func (r *Renderer) DrawWorld(f app.Frame) {
	r.screen.Clear()
	for _, t := range f.Trees {
		x, y := r.toCell(f, t.X, t.Y)
		r.put(x, y, '♣', styleFor(config.TreeColor))
	}
	for _, j := range f.Jewels {
		x, y := r.toCell(f, j.X, j.Y)
		r.put(x, y, '◆', styleFor(config.JewelColor))
	}
	for _, e := range f.Enemies {
		x, y := r.toCell(f, e.X, e.Y)
		ch := 'e'
		if e.HealthFraction() > 0.5 {
			ch = 'E'
		}
		r.put(x, y, ch, styleFor(config.EnemyColor).Bold(true))
	}
	for _, b := range f.Bullets {
		x, y := r.toCell(f, b.X, b.Y)
		r.put(x, y, '•', styleFor(config.BulletColor))
	}
	for _, e := range f.Effects {
		if e.Kind != component.EffectBurst || e.Fade() < 0.5 {
			continue
		}
		x, y := r.toCell(f, e.X, e.Y)
		r.put(x, y, '*', styleFor(config.BurstColor))
	}

	p := f.Player
	px, py := r.toCell(f, p.X, p.Y)
	r.put(px, py, '@', styleFor(config.PaletteColor(p.ColorIndex).Color).Bold(true))
	ax, ay := r.toCell(f, p.X+math.Cos(p.AimAngle)*CellWidth*1.5, p.Y+math.Sin(p.AimAngle)*CellHeight*1.5)
	if ax != px || ay != py {
		r.put(ax, ay, '+', styleFor(config.AimColor))
	}
}

func (r *Renderer) DrawPause(selected int) {
	_, h := r.screen.Size()
	r.centered(h/3, " PAUSED ", styleFor(config.PauseTitleColor).Bold(true).Reverse(true))
	r.menu(h/2, selected, "Resume", "Main Menu")
}

func (r *Renderer) DrawConfirm(yes bool) {
	_, h := r.screen.Size()
	r.centered(h/3, " Return to the main menu? Progress will be lost. ", styleFor(config.TextColor).Reverse(true))
	yesLabel, noLabel := "  Yes  ", "[ No ]"
	if yes {
		yesLabel, noLabel = "[ Yes ]", "  No  "
	}
	r.centered(h/2, yesLabel+"    "+noLabel, styleFor(config.HighlightColor).Bold(true))
}

func (r *Renderer) DrawGameOver(s system.Summary) {
	r.screen.Clear()
	_, h := r.screen.Size()
	r.centered(h/4, "GAME OVER", styleFor(config.GameOverColor).Bold(true))
	lines := []string{
		fmt.Sprintf("Survived %s", s.Survived.Truncate(time.Second)),
		fmt.Sprintf("Level %d   Score %d", s.Level, s.Score),
		fmt.Sprintf("Enemies %d   Jewels %d", s.Kills, s.Jewels),
	}
	for i, line := range lines {
		r.centered(h/2+i, line, styleFor(config.TextColor))
	}
	r.centered(h-2, "enter: main menu  c: copy summary", styleFor(config.HintColor))
}
