package contextmenu

import "fmt"

type EntityID uint32

type TurfID int32

// ObjectReference identifies a candidate without owning its data.
// The set of implementations is closed: EntityRef and TurfRef.
type ObjectReference interface {
	isObjectReference()
	fmt.Stringer
}

type EntityRef struct {
	Entity EntityID
}

type TurfRef struct {
	Turf TurfID
}

func (EntityRef) isObjectReference() {}
func (TurfRef) isObjectReference()   {}

func (r EntityRef) String() string { return fmt.Sprintf("Entity(%d)", r.Entity) }
func (r TurfRef) String() string   { return fmt.Sprintf("Turf(%d)", r.Turf) }

// Tile returns a pointer suitable for the optional tile argument of Build.
func Tile(id TurfID) *TurfID {
	return &id
}
