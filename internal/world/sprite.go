package world

import "github.com/devin-hart/nox-verbs/internal/contextmenu"

// Sprite is the drawable component of an entity.
type Sprite struct {
	icon  contextmenu.Icon
	Layer int
}

func NewSprite(a *contextmenu.Appearance, layer int) *Sprite {
	return &Sprite{icon: contextmenu.Icon{Appearance: a}, Layer: layer}
}

func (s *Sprite) Icon() *contextmenu.Icon {
	return &s.icon
}

func (s *Sprite) Appearance() *contextmenu.Appearance {
	return s.icon.Appearance
}

// IsVisible reports whether the sprite would be drawn for an observer
// with the given see_invisible.
func (s *Sprite) IsVisible(xform *contextmenu.Transform, seeInvisible contextmenu.SightLevel) bool {
	a := s.icon.Appearance
	if a == nil {
		return false
	}
	if a.Invisibility > seeInvisible {
		return false
	}
	if a.Alpha == 0 {
		return false
	}
	if xform != nil && xform.MapID == NullSpace {
		return false
	}
	return true
}
