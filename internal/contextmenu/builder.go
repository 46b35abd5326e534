package contextmenu

// Reason records why a candidate did or did not become an entry.
type Reason int

const (
	Accepted Reason = iota
	RejectNoTransformSystem
	RejectNested
	RejectNoSprite
	RejectMouseTransparent
	RejectInvisible
	RejectUnnamed
	RejectTurfUnavailable
	RejectNoTurfAppearance
	RejectUnknownKind
)

var reasonNames = map[Reason]string{
	Accepted:                "accepted",
	RejectNoTransformSystem: "no transform system",
	RejectNested:            "nested inside another entity",
	RejectNoSprite:          "no sprite",
	RejectMouseTransparent:  "transparent to mouse",
	RejectInvisible:         "invisible",
	RejectUnnamed:           "no name",
	RejectTurfUnavailable:   "no tile for this click",
	RejectNoTurfAppearance:  "tile has no appearance",
	RejectUnknownKind:       "unknown reference kind",
}

func (r Reason) String() string {
	if s, ok := reasonNames[r]; ok {
		return s
	}
	return "unknown"
}

// Builder filters candidate references into menu entries.
// Hierarchy is required; without it Build yields nothing. Without Grids no
// parent counts as a grid, so every entity with a transform is nested.
type Builder struct {
	Transforms Query[Transform]
	Hierarchy  TransformSystem
	Grids      GridChecker
	Sprites    Query[Sprite]
	Metadata   Query[MetaData]
	Turfs      TurfAppearances
	Visibility *VisibilityEvaluator
}

// Build returns a fresh entry list in candidate order.
func (b *Builder) Build(candidates []ObjectReference, tile *TurfID) []Entry {
	entries := make([]Entry, 0, len(candidates))
	if b.Hierarchy == nil {
		return entries
	}

	sight := b.Visibility.SeeInvisible()
	for _, ref := range candidates {
		if entry, reason := b.evaluate(ref, tile, sight); reason == Accepted {
			entries = append(entries, entry)
		}
	}
	return entries
}

// Explain runs the same checks as Build for a single candidate.
func (b *Builder) Explain(ref ObjectReference, tile *TurfID) (Entry, Reason) {
	if b.Hierarchy == nil {
		return Entry{}, RejectNoTransformSystem
	}
	return b.evaluate(ref, tile, b.Visibility.SeeInvisible())
}

func (b *Builder) evaluate(ref ObjectReference, tile *TurfID, sight SightLevel) (Entry, Reason) {
	switch r := ref.(type) {
	case EntityRef:
		return b.entity(r, sight)
	case TurfRef:
		return b.turf(r, tile)
	default:
		return Entry{}, RejectUnknownKind
	}
}

func (b *Builder) entity(ref EntityRef, sight SightLevel) (Entry, Reason) {
	xform, hasXform := tryGet(b.Transforms, ref.Entity)
	if hasXform && !b.onGrid(ref.Entity) {
		return Entry{}, RejectNested
	}

	sprite, ok := tryGet(b.Sprites, ref.Entity)
	if !ok || sprite == nil {
		return Entry{}, RejectNoSprite
	}

	icon := sprite.Icon()
	if icon != nil && icon.Appearance != nil && icon.Appearance.MouseOpacity == MouseOpacityTransparent {
		return Entry{}, RejectMouseTransparent
	}

	var xp *Transform
	if hasXform {
		xp = &xform
	}
	if !b.Visibility.IsVisible(sprite, xp, sight) {
		return Entry{}, RejectInvisible
	}

	meta, ok := tryGet(b.Metadata, ref.Entity)
	if !ok || meta.EntityName == "" {
		return Entry{}, RejectUnnamed
	}

	return Entry{Reference: ref, Label: meta.EntityName, Icon: icon, Target: ref}, Accepted
}

func (b *Builder) onGrid(e EntityID) bool {
	if b.Grids == nil {
		return false
	}
	return b.Grids.IsGrid(b.Hierarchy.ParentOf(e))
}

// turf entries always use the clicked tile's appearance.
func (b *Builder) turf(ref TurfRef, tile *TurfID) (Entry, Reason) {
	if tile == nil || b.Turfs == nil {
		return Entry{}, RejectTurfUnavailable
	}
	icon := b.Turfs.TurfIcon(*tile)
	if icon == nil || icon.Appearance == nil {
		return Entry{}, RejectNoTurfAppearance
	}
	return Entry{Reference: ref, Label: icon.Appearance.Name, Icon: icon, Target: ref}, Accepted
}
