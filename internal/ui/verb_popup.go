package ui

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"

	"github.com/devin-hart/nox-verbs/internal/contextmenu"
	"github.com/devin-hart/nox-verbs/internal/verbs"
)

const noVerbsText = "(no verbs)"

// VerbPopup shows a verbs.Menu. It is the submenu handed to the
// context menu's controller.
type VerbPopup struct {
	Menu    *verbs.Menu
	OnError func(error)

	face  font.Face
	box   contextmenu.Box
	rows  []contextmenu.Box
	open  bool
	hover int
}

func NewVerbPopup(m *verbs.Menu, face font.Face) *VerbPopup {
	return &VerbPopup{Menu: m, face: face, hover: -1}
}

func (p *VerbPopup) labels() []string {
	if len(p.Menu.Verbs) == 0 {
		return []string{noVerbsText}
	}
	return p.Menu.Names()
}

func (p *VerbPopup) DesiredSize() contextmenu.Vec2 {
	return union(layoutRows(contextmenu.Vec2{}, p.labels(), p.face, false)).Size
}

func (p *VerbPopup) Open(box contextmenu.Box) {
	p.box = box
	p.rows = layoutRows(box.Pos, p.labels(), p.face, false)
	p.open = true
}

func (p *VerbPopup) Close() {
	p.open = false
	p.hover = -1
}

func (p *VerbPopup) OnSelected(fn func()) {
	p.Menu.OnSelected(fn)
}

func (p *VerbPopup) IsOpen() bool {
	return p.open
}

func (p *VerbPopup) Box() contextmenu.Box {
	return p.box
}

func (p *VerbPopup) SetHover(x, y float64) {
	p.hover = -1
	if p.open && len(p.Menu.Verbs) > 0 {
		p.hover, _ = hitRow(p.rows, x, y)
	}
}

// Click chooses the verb under (x, y). It reports whether the click
// landed on the popup at all.
func (p *VerbPopup) Click(x, y float64) bool {
	if !p.open || !p.box.Contains(x, y) {
		return false
	}
	if len(p.Menu.Verbs) == 0 {
		return true
	}
	if i, ok := hitRow(p.rows, x, y); ok {
		if err := p.Menu.Choose(i); err != nil && p.OnError != nil {
			p.OnError(err)
		}
	}
	return true
}

func (p *VerbPopup) Draw(screen *ebiten.Image) {
	if !p.open {
		return
	}
	b := p.box
	vector.DrawFilledRect(screen, float32(b.Pos.X), float32(b.Pos.Y), float32(b.Size.X), float32(b.Size.Y), menuBg, false)
	vector.StrokeRect(screen, float32(b.Pos.X), float32(b.Pos.Y), float32(b.Size.X), float32(b.Size.Y), 1, menuBorder, false)

	if len(p.Menu.Verbs) == 0 {
		drawText(screen, noVerbsText, p.face, b.Pos.X+rowPad, b.Pos.Y+rowPad, menuDim)
		return
	}
	for i, name := range p.Menu.Names() {
		r := p.rows[i]
		if i == p.hover {
			vector.DrawFilledRect(screen, float32(r.Pos.X)+1, float32(r.Pos.Y), float32(r.Size.X)-2, float32(r.Size.Y), menuHover, false)
		}
		drawText(screen, name, p.face, r.Pos.X+rowPad, r.Pos.Y+rowPad, menuText)
	}
}
