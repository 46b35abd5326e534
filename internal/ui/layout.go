package ui

import (
	"golang.org/x/image/font"

	"github.com/devin-hart/nox-verbs/internal/contextmenu"
)

// layoutRows stacks one row per label below at. Every row is as wide as
// the widest label plus leading space for an icon when withIcon is set.
func layoutRows(at contextmenu.Vec2, labels []string, face font.Face, withIcon bool) []contextmenu.Box {
	lead := rowPad
	if withIcon {
		lead += iconSize + rowPad
	}
	w := minMenuW
	for _, l := range labels {
		w = max(w, lead+textWidth(face, l)+rowPad)
	}
	h := rowHeight(face)

	rows := make([]contextmenu.Box, len(labels))
	for i := range labels {
		rows[i] = contextmenu.Box{
			Pos:  contextmenu.Vec2{X: at.X, Y: at.Y + float64(i)*h},
			Size: contextmenu.Vec2{X: w, Y: h},
		}
	}
	return rows
}

func hitRow(rows []contextmenu.Box, x, y float64) (int, bool) {
	for i, r := range rows {
		if r.Contains(x, y) {
			return i, true
		}
	}
	return -1, false
}

func union(rows []contextmenu.Box) contextmenu.Box {
	if len(rows) == 0 {
		return contextmenu.Box{}
	}
	first, last := rows[0], rows[len(rows)-1]
	return contextmenu.Box{
		Pos:  first.Pos,
		Size: contextmenu.Vec2{X: first.Size.X, Y: last.Bottom() - first.Pos.Y},
	}
}

// clampBox keeps a box inside a screen of the given size where it fits.
func clampBox(b contextmenu.Box, screenW, screenH float64) contextmenu.Box {
	if b.Right() > screenW {
		b.Pos.X = max(0, screenW-b.Size.X)
	}
	if b.Bottom() > screenH {
		b.Pos.Y = max(0, screenH-b.Size.Y)
	}
	return b
}
