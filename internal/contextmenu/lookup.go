package contextmenu

// Query is the "get component if present" lookup the menu consumes.
type Query[T any] interface {
	TryGet(e EntityID) (T, bool)
}

// QueryFunc adapts a plain function to Query.
type QueryFunc[T any] func(e EntityID) (T, bool)

func (f QueryFunc[T]) TryGet(e EntityID) (T, bool) {
	return f(e)
}

// Transform is the spatial component of an entity. MapID 0 is nullspace.
type Transform struct {
	Parent EntityID
	MapID  int
	X, Y   float64
}

// Sprite is the visual component. IsVisible is the renderer's own gate.
type Sprite interface {
	Icon() *Icon
	IsVisible(xform *Transform, seeInvisible SightLevel) bool
}

type MetaData struct {
	EntityName string
}

type MobSight struct {
	SeeInvisibility SightLevel
}

type GridChecker interface {
	IsGrid(e EntityID) bool
}

type TransformSystem interface {
	ParentOf(e EntityID) EntityID
}

type Session interface {
	AttachedEntity() (EntityID, bool)
}

type Sessions interface {
	LocalSession() (Session, bool)
}

// TurfAppearances returns nil when the tile has no resolvable icon.
type TurfAppearances interface {
	TurfIcon(id TurfID) *Icon
}

func tryGet[T any](q Query[T], e EntityID) (T, bool) {
	if q == nil {
		var zero T
		return zero, false
	}
	return q.TryGet(e)
}
