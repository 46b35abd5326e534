package ui

import (
	"slices"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/devin-hart/nox-verbs/internal/contextmenu"
)

type drawable interface {
	Draw(screen *ebiten.Image)
}

type clickable interface {
	Click(x, y float64) bool
}

type hoverable interface {
	SetHover(x, y float64)
}

// ModalRoot is the layer drawn above everything else. Children added
// last are drawn last and receive clicks first.
type ModalRoot struct {
	children []contextmenu.Submenu
}

func (m *ModalRoot) AddChild(s contextmenu.Submenu) {
	m.children = append(m.children, s)
}

func (m *ModalRoot) RemoveChild(s contextmenu.Submenu) {
	if i := slices.Index(m.children, s); i >= 0 {
		m.children = slices.Delete(m.children, i, i+1)
	}
}

func (m *ModalRoot) ChildCount() int {
	return len(m.children)
}

func (m *ModalRoot) Children() []contextmenu.Submenu {
	return slices.Clone(m.children)
}

// Click offers the click to children from the top down. Handlers may
// remove children, so it walks a copy.
func (m *ModalRoot) Click(x, y float64) bool {
	kids := m.Children()
	for i := len(kids) - 1; i >= 0; i-- {
		if c, ok := kids[i].(clickable); ok && c.Click(x, y) {
			return true
		}
	}
	return false
}

func (m *ModalRoot) SetHover(x, y float64) {
	for _, c := range m.children {
		if h, ok := c.(hoverable); ok {
			h.SetHover(x, y)
		}
	}
}

func (m *ModalRoot) Draw(screen *ebiten.Image) {
	for _, c := range m.children {
		if d, ok := c.(drawable); ok {
			d.Draw(screen)
		}
	}
}
