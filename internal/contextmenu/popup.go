package contextmenu

// Popup is the context menu itself: the entry list, the builder that
// fills it and the controller for its verb submenu.
type Popup struct {
	builder *Builder
	verbs   *SubmenuController

	entries []Entry
	open    bool
	at      Vec2

	OnClose func()
}

func NewPopup(b *Builder, overlay Overlay, factory SubmenuFactory) *Popup {
	p := &Popup{builder: b}
	p.verbs = NewSubmenuController(overlay, factory, p.Close)
	return p
}

// RepopulateEntities discards the previous entries and rebuilds them.
func (p *Popup) RepopulateEntities(candidates []ObjectReference, tile *TurfID) {
	p.entries = p.builder.Build(candidates, tile)
}

// SetActiveItem opens the verb submenu for entry, replacing any open one.
func (p *Popup) SetActiveItem(entry Entry, bounds Box) {
	p.verbs.Activate(entry, bounds, p.SeeInvisible())
}

func (p *Popup) SeeInvisible() SightLevel {
	return p.builder.Visibility.SeeInvisible()
}

func (p *Popup) Open(at Vec2) {
	p.open = true
	p.at = at
}

// Close closes the verb submenu and the popup. Closing twice is a no-op.
func (p *Popup) Close() {
	p.verbs.Dismiss()
	if !p.open {
		return
	}
	p.open = false
	if p.OnClose != nil {
		p.OnClose()
	}
}

func (p *Popup) IsOpen() bool     { return p.open }
func (p *Popup) Position() Vec2   { return p.at }
func (p *Popup) Entries() []Entry { return p.entries }
func (p *Popup) EntityCount() int { return len(p.entries) }

func (p *Popup) Submenus() *SubmenuController {
	return p.verbs
}
