package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

const (
	rowPad   = 4.0
	iconSize = 14.0
	minMenuW = 110.0
)

var defaultFace font.Face = basicfont.Face7x13

func textWidth(face font.Face, s string) float64 {
	return float64(font.MeasureString(face, s).Ceil())
}

func lineHeight(face font.Face) float64 {
	return float64(face.Metrics().Height.Ceil())
}

func rowHeight(face font.Face) float64 {
	return max(iconSize, lineHeight(face)) + 2*rowPad
}

// drawText draws s with its top-left corner at (x, y).
func drawText(dst *ebiten.Image, s string, face font.Face, x, y float64, clr color.Color) {
	text.Draw(dst, s, face, int(x), int(y)+face.Metrics().Ascent.Ceil(), clr)
}
