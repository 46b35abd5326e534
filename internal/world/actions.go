package world

import (
	"fmt"
	"strings"

	"github.com/devin-hart/nox-verbs/internal/contextmenu"
)

var defaultEntityVerbs = []string{"Examine", "Copy Name"}

func (w *World) SetVerbs(e contextmenu.EntityID, names []string) {
	w.Verbs.Set(e, names)
}

func (w *World) SetDescription(e contextmenu.EntityID, desc string) {
	w.Descs.Set(e, desc)
}

// VerbsOf lists the verb names a reference offers.
func (w *World) VerbsOf(ref contextmenu.ObjectReference) []string {
	switch r := ref.(type) {
	case contextmenu.EntityRef:
		out := append([]string(nil), defaultEntityVerbs...)
		if extra, ok := w.Verbs.TryGet(r.Entity); ok {
			out = append(out, extra...)
		}
		return out
	case contextmenu.TurfRef:
		return []string{"Examine"}
	default:
		return nil
	}
}

func (w *World) NameOf(ref contextmenu.ObjectReference) (string, bool) {
	switch r := ref.(type) {
	case contextmenu.EntityRef:
		m, ok := w.Metadata.TryGet(r.Entity)
		return m.EntityName, ok && m.EntityName != ""
	case contextmenu.TurfRef:
		icon := w.TurfIcon(r.Turf)
		if icon == nil || icon.Appearance == nil {
			return "", false
		}
		return icon.Appearance.Name, true
	default:
		return "", false
	}
}

func (w *World) Describe(ref contextmenu.ObjectReference) string {
	name, ok := w.NameOf(ref)
	if !ok {
		name = "something"
	}
	var b strings.Builder
	fmt.Fprintf(&b, "That's %s.", name)
	if r, ok := ref.(contextmenu.EntityRef); ok {
		if desc, ok := w.Descs.TryGet(r.Entity); ok && desc != "" {
			b.WriteString(" ")
			b.WriteString(desc)
		}
	}
	return b.String()
}

// PickUp moves an entity into the local body.
func (w *World) PickUp(ref contextmenu.ObjectReference) error {
	r, ok := ref.(contextmenu.EntityRef)
	if !ok {
		return fmt.Errorf("can't pick up %v", ref)
	}
	body, ok := w.Body()
	if !ok {
		return fmt.Errorf("no body to hold %v", ref)
	}
	if body == r.Entity {
		return fmt.Errorf("can't pick yourself up")
	}
	return w.Reparent(r.Entity, body)
}

// Drop places an entity on the grid under its holder.
func (w *World) Drop(ref contextmenu.ObjectReference) error {
	r, ok := ref.(contextmenu.EntityRef)
	if !ok {
		return fmt.Errorf("can't drop %v", ref)
	}
	cur := r.Entity
	for i := 0; i < maxDepth; i++ {
		parent := w.ParentOf(cur)
		if w.grids[parent] {
			if cur == r.Entity {
				return fmt.Errorf("%v is not held", ref)
			}
			return w.Reparent(r.Entity, parent)
		}
		if !w.Exists(parent) {
			break
		}
		cur = parent
	}
	return fmt.Errorf("%v has no grid to drop onto", ref)
}
