package world

import (
	"fmt"

	"github.com/devin-hart/nox-verbs/internal/contextmenu"
	"github.com/devin-hart/nox-verbs/internal/events"
)

// Apply mutates the world for one feed event.
func (w *World) Apply(ev events.Event) error {
	switch e := ev.(type) {
	case events.Moved:
		xf, ok := w.Transforms.TryGet(e.Entity)
		if !ok {
			return fmt.Errorf("move: unknown entity %d", e.Entity)
		}
		xf.X, xf.Y = e.X, e.Y
		w.Transforms.Set(e.Entity, xf)
	case events.InvisibilityChanged:
		s, ok := w.Sprites.TryGet(e.Entity)
		if !ok || s.Appearance() == nil {
			return fmt.Errorf("invisibility: entity %d has no sprite", e.Entity)
		}
		a := *s.Appearance()
		a.Invisibility = e.Level
		s.icon.Appearance = &a
	case events.Possessed:
		if !w.Exists(e.Entity) {
			return fmt.Errorf("possess: unknown entity %d", e.Entity)
		}
		w.Possess(e.Entity)
	case events.Renamed:
		if !w.Exists(e.Entity) {
			return fmt.Errorf("rename: unknown entity %d", e.Entity)
		}
		w.Metadata.Set(e.Entity, contextmenu.MetaData{EntityName: e.Name})
	case events.Reparented:
		return w.Reparent(e.Entity, e.Parent)
	default:
		return fmt.Errorf("unsupported event %T", ev)
	}
	return nil
}

// Reparent moves e under parent, which must be a grid or another entity
// that is not e's own descendant.
func (w *World) Reparent(e, parent contextmenu.EntityID) error {
	xf, ok := w.Transforms.TryGet(e)
	if !ok {
		return fmt.Errorf("reparent: unknown entity %d", e)
	}
	if !w.grids[parent] && !w.Exists(parent) {
		return fmt.Errorf("reparent: unknown parent %d", parent)
	}
	for cur, i := parent, 0; !w.grids[cur] && i < maxDepth; i++ {
		if cur == e {
			return fmt.Errorf("reparent: %d would contain itself", e)
		}
		cur = w.ParentOf(cur)
	}

	// Placing on a grid keeps the entity where it was seen.
	if w.grids[parent] {
		if x, y, ok := w.Position(e); ok {
			xf.X, xf.Y = x, y
		}
	}
	xf.Parent = parent
	w.Transforms.Set(e, xf)
	return nil
}
