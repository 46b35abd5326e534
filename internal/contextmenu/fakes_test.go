package contextmenu

type mapQuery[T any] map[EntityID]T

func (m mapQuery[T]) TryGet(e EntityID) (T, bool) {
	v, ok := m[e]
	return v, ok
}

type fakeSprite struct {
	icon    *Icon
	visible bool

	gotXform *Transform
	gotSight SightLevel
	calls    int
}

func (s *fakeSprite) Icon() *Icon { return s.icon }

func (s *fakeSprite) IsVisible(xform *Transform, sight SightLevel) bool {
	s.calls++
	s.gotXform = xform
	s.gotSight = sight
	return s.visible
}

type fakeSession struct {
	body    EntityID
	hasBody bool
}

func (s fakeSession) AttachedEntity() (EntityID, bool) { return s.body, s.hasBody }

type fakeSessions struct {
	session Session
}

func (f fakeSessions) LocalSession() (Session, bool) {
	return f.session, f.session != nil
}

type fakeGrids map[EntityID]bool

func (g fakeGrids) IsGrid(e EntityID) bool { return g[e] }

type fakeHierarchy map[EntityID]EntityID

func (h fakeHierarchy) ParentOf(e EntityID) EntityID { return h[e] }

type fakeTurfs map[TurfID]*Icon

func (t fakeTurfs) TurfIcon(id TurfID) *Icon { return t[id] }

const testGrid EntityID = 1

// testScene builds a Builder where every entity added with place() is a
// visible, named, clickable sprite sitting on testGrid.
type testScene struct {
	xforms    mapQuery[Transform]
	hierarchy fakeHierarchy
	sprites   mapQuery[Sprite]
	meta      mapQuery[MetaData]
	turfs     fakeTurfs
	sights    mapQuery[MobSight]
	sessions  *fakeSessions
}

func newTestScene() *testScene {
	return &testScene{
		xforms:    mapQuery[Transform]{},
		hierarchy: fakeHierarchy{},
		sprites:   mapQuery[Sprite]{},
		meta:      mapQuery[MetaData]{},
		turfs:     fakeTurfs{},
		sights:    mapQuery[MobSight]{},
		sessions:  &fakeSessions{},
	}
}

func (s *testScene) place(e EntityID, name string) *fakeSprite {
	return s.placeUnder(e, testGrid, name)
}

func (s *testScene) placeUnder(e, parent EntityID, name string) *fakeSprite {
	s.xforms[e] = Transform{Parent: parent, MapID: 1}
	s.hierarchy[e] = parent
	sp := &fakeSprite{
		icon:    &Icon{Appearance: &Appearance{Name: name, Alpha: 255}},
		visible: true,
	}
	s.sprites[e] = sp
	s.meta[e] = MetaData{EntityName: name}
	return sp
}

func (s *testScene) builder() *Builder {
	return &Builder{
		Transforms: s.xforms,
		Hierarchy:  s.hierarchy,
		Grids:      fakeGrids{testGrid: true},
		Sprites:    s.sprites,
		Metadata:   s.meta,
		Turfs:      s.turfs,
		Visibility: &VisibilityEvaluator{Players: s.sessions, Sights: s.sights},
	}
}

func labels(entries []Entry) []string {
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.Label)
	}
	return out
}

func sameStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

type fakeSubmenu struct {
	target   ObjectReference
	sight    SightLevel
	size     Vec2
	box      Box
	opened   bool
	closed   bool
	selected func()
}

func (f *fakeSubmenu) DesiredSize() Vec2    { return f.size }
func (f *fakeSubmenu) Close()               { f.closed = true }
func (f *fakeSubmenu) OnSelected(fn func()) { f.selected = fn }

func (f *fakeSubmenu) Open(box Box) {
	f.box = box
	f.opened = true
}

func (f *fakeSubmenu) choose() {
	if f.selected != nil {
		f.selected()
	}
}

type fakeOverlay struct {
	children []Submenu
	removed  []Submenu
}

func (o *fakeOverlay) AddChild(s Submenu) { o.children = append(o.children, s) }

func (o *fakeOverlay) RemoveChild(s Submenu) {
	for i, c := range o.children {
		if c == s {
			o.children = append(o.children[:i], o.children[i+1:]...)
			o.removed = append(o.removed, s)
			return
		}
	}
}

type submenuRecorder struct {
	made []*fakeSubmenu
}

func (r *submenuRecorder) factory(target ObjectReference, sight SightLevel) Submenu {
	f := &fakeSubmenu{target: target, sight: sight, size: Vec2{X: 80, Y: 40}}
	r.made = append(r.made, f)
	return f
}
