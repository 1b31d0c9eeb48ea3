// internal/ui/text.go
package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

var fontFace font.Face = basicfont.Face7x13

// drawText draws s with its top-left corner at (x, y), scaled by scale.
func drawText(dst *ebiten.Image, s string, x, y, scale float64, clr color.Color) {
	bounds := text.BoundString(fontFace, s)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(0, float64(-bounds.Min.Y))
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	text.DrawWithOptions(dst, s, fontFace, op)
}

// drawCentered draws s horizontally centered on cx with its top at y.
func drawCentered(dst *ebiten.Image, s string, cx, y, scale float64, clr color.Color) {
	w := textWidth(s) * scale
	drawText(dst, s, cx-w/2, y, scale, clr)
}

func textWidth(s string) float64 {
	return float64(text.BoundString(fontFace, s).Dx())
}

func textHeight(s string) float64 {
	return float64(text.BoundString(fontFace, s).Dy())
}
