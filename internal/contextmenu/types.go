package contextmenu

import (
	"image/color"
	"math"
)

// SightLevel is an observer's see_invisible value. Higher sees more.
type SightLevel int8

const MaxSightLevel SightLevel = math.MaxInt8

type MouseOpacity uint8

const (
	MouseOpacityPixel MouseOpacity = iota
	MouseOpacityTransparent
	MouseOpacityOpaque
)

// Appearance is a read-only snapshot owned by the rendering side.
type Appearance struct {
	Name         string
	IconState    string
	MouseOpacity MouseOpacity
	Invisibility SightLevel
	Alpha        uint8
	Color        color.RGBA
}

// Icon is the handle carried by menu entries for drawing.
type Icon struct {
	Appearance *Appearance
}

// Entry is one display-ready row of the context menu.
type Entry struct {
	Reference ObjectReference
	Label     string
	Icon      *Icon
	Target    ObjectReference
}

type Vec2 struct {
	X, Y float64
}

// Box is a screen rectangle given by its top-left corner and size.
type Box struct {
	Pos  Vec2
	Size Vec2
}

func (b Box) Right() float64  { return b.Pos.X + b.Size.X }
func (b Box) Bottom() float64 { return b.Pos.Y + b.Size.Y }

func (b Box) Contains(x, y float64) bool {
	return x >= b.Pos.X && x < b.Right() && y >= b.Pos.Y && y < b.Bottom()
}
