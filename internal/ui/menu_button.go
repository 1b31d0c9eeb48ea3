// internal/ui/menu_button.go
package ui

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"go-survivor/internal/config"
)

// MenuButton is one keyboard-selectable entry of a menu.
type MenuButton struct {
	Rect    image.Rectangle
	Text    string
	bgColor color.RGBA
	fgColor color.RGBA
}

func NewMenuButton(rect image.Rectangle, label string) *MenuButton {
	return &MenuButton{
		Rect:    rect,
		Text:    label,
		bgColor: color.RGBA{40, 40, 50, 230},
		fgColor: config.TextColor,
	}
}

// Draw renders the button, highlighted when selected.
func (b *MenuButton) Draw(screen *ebiten.Image, selected bool) {
	x, y := float32(b.Rect.Min.X), float32(b.Rect.Min.Y)
	w, h := float32(b.Rect.Dx()), float32(b.Rect.Dy())
	vector.DrawFilledRect(screen, x, y, w, h, b.bgColor, true)

	border, fg := color.Color(config.HintColor), color.Color(b.fgColor)
	if selected {
		border, fg = config.HighlightColor, config.HighlightColor
	}
	vector.StrokeRect(screen, x, y, w, h, 2, border, true)

	const scale = 2
	cx := float64(b.Rect.Min.X) + float64(b.Rect.Dx())/2
	ty := float64(b.Rect.Min.Y) + (float64(b.Rect.Dy())-textHeight(b.Text)*scale)/2
	drawCentered(screen, b.Text, cx, ty, scale, fg)
}

// menuColumn lays out labels as a vertical stack of buttons centered on
// the screen, starting at top.
func menuColumn(top int, labels ...string) []*MenuButton {
	const w, h, gap = 240, 44, 16
	left := (config.ScreenWidth - w) / 2
	buttons := make([]*MenuButton, 0, len(labels))
	for i, label := range labels {
		y := top + i*(h+gap)
		buttons = append(buttons, NewMenuButton(image.Rect(left, y, left+w, y+h), label))
	}
	return buttons
}

// menuRow lays out labels side by side, centered on the screen.
func menuRow(top int, labels ...string) []*MenuButton {
	const w, h, gap = 120, 40, 24
	total := len(labels)*w + (len(labels)-1)*gap
	left := (config.ScreenWidth - total) / 2
	buttons := make([]*MenuButton, 0, len(labels))
	for i, label := range labels {
		x := left + i*(w+gap)
		buttons = append(buttons, NewMenuButton(image.Rect(x, top, x+w, top+h), label))
	}
	return buttons
}
