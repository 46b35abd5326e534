package world

import (
	"fmt"

	"github.com/devin-hart/nox-verbs/internal/contextmenu"
)

const (
	NullSpace = 0
	MainMap   = 1
)

type Turf struct {
	ID   contextmenu.TurfID
	X, Y int
	icon contextmenu.Icon
}

func (t *Turf) Icon() *contextmenu.Icon {
	return &t.icon
}

// Session is the local player's session.
type Session struct {
	Player   string
	attached contextmenu.EntityID
	hasBody  bool
}

func (s *Session) AttachedEntity() (contextmenu.EntityID, bool) {
	return s.attached, s.hasBody
}

// World is a single-map entity store. It is not safe for concurrent use;
// the UI thread owns it.
type World struct {
	grids      map[contextmenu.EntityID]bool
	Transforms *Store[contextmenu.Transform]
	Sprites    *Store[*Sprite]
	Metadata   *Store[contextmenu.MetaData]
	Sights     *Store[contextmenu.MobSight]
	Verbs      *Store[[]string]
	Descs      *Store[string]

	turfs  map[contextmenu.TurfID]*Turf
	turfAt map[[2]int]contextmenu.TurfID

	local *Session
}

func New() *World {
	return &World{
		grids:      make(map[contextmenu.EntityID]bool),
		Transforms: NewStore[contextmenu.Transform](),
		Sprites:    NewStore[*Sprite](),
		Metadata:   NewStore[contextmenu.MetaData](),
		Sights:     NewStore[contextmenu.MobSight](),
		Verbs:      NewStore[[]string](),
		Descs:      NewStore[string](),
		turfs:      make(map[contextmenu.TurfID]*Turf),
		turfAt:     make(map[[2]int]contextmenu.TurfID),
	}
}

func (w *World) AddGrid(id contextmenu.EntityID) {
	w.grids[id] = true
}

func (w *World) AddTurf(id contextmenu.TurfID, x, y int, a *contextmenu.Appearance) {
	w.turfs[id] = &Turf{ID: id, X: x, Y: y, icon: contextmenu.Icon{Appearance: a}}
	w.turfAt[[2]int{x, y}] = id
}

type EntitySpec struct {
	ID         contextmenu.EntityID
	Parent     contextmenu.EntityID
	X, Y       float64
	Appearance *contextmenu.Appearance
	Layer      int
}

func (w *World) AddEntity(spec EntitySpec) error {
	if w.grids[spec.ID] {
		return fmt.Errorf("entity %d is already a grid", spec.ID)
	}
	if w.Transforms.Has(spec.ID) {
		return fmt.Errorf("duplicate entity %d", spec.ID)
	}
	w.Transforms.Set(spec.ID, contextmenu.Transform{Parent: spec.Parent, MapID: MainMap, X: spec.X, Y: spec.Y})
	if spec.Appearance != nil {
		w.Sprites.Set(spec.ID, NewSprite(spec.Appearance, spec.Layer))
		w.Metadata.Set(spec.ID, contextmenu.MetaData{EntityName: spec.Appearance.Name})
	}
	return nil
}

func (w *World) Exists(id contextmenu.EntityID) bool {
	return w.Transforms.Has(id)
}

func (w *World) SetSight(id contextmenu.EntityID, level contextmenu.SightLevel) {
	w.Sights.Set(id, contextmenu.MobSight{SeeInvisibility: level})
}

// Possess attaches the local session to id, creating the session if needed.
func (w *World) Possess(id contextmenu.EntityID) {
	if w.local == nil {
		w.local = &Session{Player: "local"}
	}
	w.local.attached = id
	w.local.hasBody = true
}

func (w *World) Body() (contextmenu.EntityID, bool) {
	if w.local == nil {
		return 0, false
	}
	return w.local.AttachedEntity()
}

// --- capabilities consumed by the context menu ---

func (w *World) IsGrid(e contextmenu.EntityID) bool {
	return w.grids[e]
}

func (w *World) ParentOf(e contextmenu.EntityID) contextmenu.EntityID {
	xf, ok := w.Transforms.TryGet(e)
	if !ok {
		return 0
	}
	return xf.Parent
}

func (w *World) LocalSession() (contextmenu.Session, bool) {
	if w.local == nil {
		return nil, false
	}
	return w.local, true
}

func (w *World) TurfIcon(id contextmenu.TurfID) *contextmenu.Icon {
	t, ok := w.turfs[id]
	if !ok {
		return nil
	}
	return t.Icon()
}

func (w *World) Turf(id contextmenu.TurfID) (*Turf, bool) {
	t, ok := w.turfs[id]
	return t, ok
}

func (w *World) Turfs() []*Turf {
	out := make([]*Turf, 0, len(w.turfs))
	for _, t := range w.turfs {
		out = append(out, t)
	}
	sortTurfs(out)
	return out
}

func (w *World) spriteQuery() contextmenu.Query[contextmenu.Sprite] {
	return contextmenu.QueryFunc[contextmenu.Sprite](func(e contextmenu.EntityID) (contextmenu.Sprite, bool) {
		s, ok := w.Sprites.TryGet(e)
		if !ok || s == nil {
			return nil, false
		}
		return s, true
	})
}

func (w *World) Evaluator() *contextmenu.VisibilityEvaluator {
	return &contextmenu.VisibilityEvaluator{
		Players: w,
		Sights:  w.Sights,
	}
}

// Builder wires a context menu builder to this world.
func (w *World) Builder() *contextmenu.Builder {
	return &contextmenu.Builder{
		Transforms: w.Transforms,
		Hierarchy:  w,
		Grids:      w,
		Sprites:    w.spriteQuery(),
		Metadata:   w.Metadata,
		Turfs:      w,
		Visibility: w.Evaluator(),
	}
}
