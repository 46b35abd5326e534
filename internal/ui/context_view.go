package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"

	"github.com/devin-hart/nox-verbs/internal/contextmenu"
)

var (
	menuBg     = color.RGBA{24, 26, 32, 235}
	menuBorder = color.RGBA{90, 110, 140, 255}
	menuHover  = color.RGBA{60, 80, 120, 255}
	menuText   = color.RGBA{230, 230, 230, 255}
	menuDim    = color.RGBA{150, 150, 150, 255}
)

// ContextView draws a contextmenu.Popup and maps clicks back to entries.
type ContextView struct {
	Popup *contextmenu.Popup
	face  font.Face
	rows  []contextmenu.Box
	hover int
}

func NewContextView(p *contextmenu.Popup, face font.Face) *ContextView {
	return &ContextView{Popup: p, face: face, hover: -1}
}

// Relayout recomputes row boxes from the popup's current entries.
func (v *ContextView) Relayout(screenW, screenH float64) {
	entries := v.Popup.Entries()
	labels := make([]string, len(entries))
	for i, e := range entries {
		labels[i] = e.Label
	}
	at := v.Popup.Position()
	rows := layoutRows(at, labels, v.face, true)
	if len(rows) > 0 {
		b := clampBox(union(rows), screenW, screenH)
		rows = layoutRows(b.Pos, labels, v.face, true)
	}
	v.rows = rows
}

func (v *ContextView) Rows() []contextmenu.Box {
	return v.rows
}

func (v *ContextView) Bounds() contextmenu.Box {
	return union(v.rows)
}

func (v *ContextView) HitTest(x, y float64) (int, bool) {
	if !v.Popup.IsOpen() {
		return -1, false
	}
	return hitRow(v.rows, x, y)
}

func (v *ContextView) SetHover(x, y float64) {
	v.hover, _ = v.HitTest(x, y)
}

// Activate opens the verb submenu for row i.
func (v *ContextView) Activate(i int) (contextmenu.Entry, bool) {
	entries := v.Popup.Entries()
	if i < 0 || i >= len(entries) || i >= len(v.rows) {
		return contextmenu.Entry{}, false
	}
	v.Popup.SetActiveItem(entries[i], v.rows[i])
	return entries[i], true
}

func (v *ContextView) Draw(screen *ebiten.Image) {
	if !v.Popup.IsOpen() || len(v.rows) == 0 {
		return
	}
	b := v.Bounds()
	vector.DrawFilledRect(screen, float32(b.Pos.X), float32(b.Pos.Y), float32(b.Size.X), float32(b.Size.Y), menuBg, false)
	vector.StrokeRect(screen, float32(b.Pos.X), float32(b.Pos.Y), float32(b.Size.X), float32(b.Size.Y), 1, menuBorder, false)

	for i, e := range v.Popup.Entries() {
		if i >= len(v.rows) {
			break
		}
		r := v.rows[i]
		if i == v.hover {
			vector.DrawFilledRect(screen, float32(r.Pos.X)+1, float32(r.Pos.Y), float32(r.Size.X)-2, float32(r.Size.Y), menuHover, false)
		}
		drawIcon(screen, e.Icon, r.Pos.X+rowPad, r.Pos.Y+(r.Size.Y-iconSize)/2, iconSize)
		drawText(screen, e.Label, v.face, r.Pos.X+2*rowPad+iconSize, r.Pos.Y+rowPad, menuText)
	}
}

// drawIcon draws the appearance swatch used in place of a real icon sheet.
func drawIcon(screen *ebiten.Image, icon *contextmenu.Icon, x, y, size float64) {
	clr := color.RGBA{128, 128, 128, 255}
	if icon != nil && icon.Appearance != nil {
		clr = icon.Appearance.Color
		if clr.A == 0 {
			clr.A = 255
		}
	}
	vector.DrawFilledRect(screen, float32(x), float32(y), float32(size), float32(size), clr, false)
	vector.StrokeRect(screen, float32(x), float32(y), float32(size), float32(size), 1, color.RGBA{0, 0, 0, 200}, false)
}
