package contextmenu

// Submenu is the verb popup opened for a selected entry.
type Submenu interface {
	DesiredSize() Vec2
	Open(box Box)
	Close()
	OnSelected(fn func())
}

// Overlay is the top-level layer submenus are attached to.
type Overlay interface {
	AddChild(s Submenu)
	RemoveChild(s Submenu)
}

type SubmenuFactory func(target ObjectReference, sight SightLevel) Submenu

// SubmenuController owns at most one open submenu. The slot is always
// emptied before a new submenu is stored.
type SubmenuController struct {
	overlay   Overlay
	factory   SubmenuFactory
	closeHost func()

	current Submenu
	gen     uint64
}

func NewSubmenuController(overlay Overlay, factory SubmenuFactory, closeHost func()) *SubmenuController {
	return &SubmenuController{
		overlay:   overlay,
		factory:   factory,
		closeHost: closeHost,
	}
}

// Activate replaces any open submenu with a new one for entry.Target,
// anchored at the right edge of bounds. Re-selecting the same entry
// still closes and reopens.
func (c *SubmenuController) Activate(entry Entry, bounds Box, sight SightLevel) {
	c.Dismiss()
	if c.factory == nil {
		return
	}

	sub := c.factory(entry.Target, sight)
	if sub == nil {
		return
	}

	c.gen++
	gen := c.gen
	sub.OnSelected(func() { c.selected(gen) })

	size := sub.DesiredSize()
	pos := Vec2{X: bounds.Right(), Y: bounds.Pos.Y}
	if c.overlay != nil {
		c.overlay.AddChild(sub)
	}
	sub.Open(Box{Pos: pos, Size: size})
	c.current = sub
}

// Dismiss closes and detaches the open submenu, if any.
func (c *SubmenuController) Dismiss() {
	if c.current == nil {
		return
	}
	old := c.current
	c.current = nil
	old.Close()
	if c.overlay != nil {
		c.overlay.RemoveChild(old)
	}
}

func (c *SubmenuController) Current() (Submenu, bool) {
	return c.current, c.current != nil
}

func (c *SubmenuController) IsOpen() bool {
	return c.current != nil
}

// selected ends the whole interaction. Events from a replaced submenu are ignored.
func (c *SubmenuController) selected(gen uint64) {
	if c.current == nil || gen != c.gen {
		return
	}
	c.Dismiss()
	if c.closeHost != nil {
		c.closeHost()
	}
}
