package world

import (
	"testing"

	"github.com/devin-hart/nox-verbs/internal/contextmenu"
	"github.com/devin-hart/nox-verbs/internal/events"
)

const grid contextmenu.EntityID = 1

func appearance(name string) *contextmenu.Appearance {
	return &contextmenu.Appearance{Name: name, Alpha: 255}
}

func testWorld(t *testing.T) *World {
	t.Helper()
	w := New()
	w.AddGrid(grid)
	w.AddTurf(42, 3, 4, appearance("Floor"))
	w.AddTurf(43, 4, 4, appearance("Wall"))
	mustAdd(t, w, EntitySpec{ID: 5, Parent: grid, X: 3, Y: 4, Appearance: appearance("Backpack"), Layer: 2})
	mustAdd(t, w, EntitySpec{ID: 6, Parent: 5, Appearance: appearance("Wrench"), Layer: 3})
	mustAdd(t, w, EntitySpec{ID: 7, Parent: grid, X: 3.5, Y: 4.2, Appearance: appearance("Assistant"), Layer: 4})
	mustAdd(t, w, EntitySpec{ID: 8, Parent: grid, X: 4, Y: 4, Appearance: appearance("Lamp")})
	return w
}

func mustAdd(t *testing.T, w *World, spec EntitySpec) {
	t.Helper()
	if err := w.AddEntity(spec); err != nil {
		t.Fatal(err)
	}
}

func names(entries []contextmenu.Entry) []string {
	var out []string
	for _, e := range entries {
		out = append(out, e.Label)
	}
	return out
}

func TestPick_OrdersByLayerThenTurf(t *testing.T) {
	w := testWorld(t)
	refs, tile := w.Pick(3.9, 4.1)

	want := []contextmenu.ObjectReference{
		contextmenu.EntityRef{Entity: 7},
		contextmenu.EntityRef{Entity: 6},
		contextmenu.EntityRef{Entity: 5},
		contextmenu.TurfRef{Turf: 42},
	}
	if len(refs) != len(want) {
		t.Fatalf("got %v", refs)
	}
	for i := range want {
		if refs[i] != want[i] {
			t.Fatalf("ref %d = %v, want %v", i, refs[i], want[i])
		}
	}
	if tile == nil || *tile != 42 {
		t.Fatalf("tile = %v", tile)
	}
}

func TestPick_EmptySpace(t *testing.T) {
	w := testWorld(t)
	refs, tile := w.Pick(-10, -10)
	if len(refs) != 0 || tile != nil {
		t.Fatalf("expected nothing, got %v %v", refs, tile)
	}
}

func TestBuilder_NestedItemNotOffered(t *testing.T) {
	w := testWorld(t)
	refs, tile := w.Pick(3, 4)

	got := names(w.Builder().Build(refs, tile))
	want := []string{"Assistant", "Backpack", "Floor"}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
}

func TestBuilder_InvisibilityUsesBodySight(t *testing.T) {
	w := testWorld(t)
	if err := w.Apply(events.InvisibilityChanged{Entity: 8, Level: 30}); err != nil {
		t.Fatal(err)
	}
	refs, tile := w.Pick(4, 4)

	// No session yet: sees everything.
	if got := names(w.Builder().Build(refs, tile)); len(got) != 2 {
		t.Fatalf("without a body both should show, got %v", got)
	}

	w.Possess(7)
	w.SetSight(7, 10)
	if got := names(w.Builder().Build(refs, tile)); len(got) != 1 || got[0] != "Wall" {
		t.Fatalf("lamp should be hidden from sight 10, got %v", got)
	}

	w.SetSight(7, 30)
	if got := names(w.Builder().Build(refs, tile)); len(got) != 2 {
		t.Fatalf("sight 30 should see the lamp, got %v", got)
	}
}

func TestSprite_IsVisible(t *testing.T) {
	s := NewSprite(&contextmenu.Appearance{Alpha: 255, Invisibility: 5}, 0)
	if s.IsVisible(nil, 4) {
		t.Fatal("invisibility above sight should hide")
	}
	if !s.IsVisible(nil, 5) {
		t.Fatal("equal sight should see")
	}
	if s.IsVisible(&contextmenu.Transform{MapID: NullSpace}, 127) {
		t.Fatal("nullspace entities are not drawn")
	}
	if NewSprite(&contextmenu.Appearance{}, 0).IsVisible(nil, 127) {
		t.Fatal("zero alpha should hide")
	}
	if NewSprite(nil, 0).IsVisible(nil, 127) {
		t.Fatal("missing appearance should hide")
	}
}

func TestPickUpAndDrop(t *testing.T) {
	w := testWorld(t)
	w.Possess(7)

	if err := w.PickUp(contextmenu.EntityRef{Entity: 8}); err != nil {
		t.Fatal(err)
	}
	if w.ParentOf(8) != 7 {
		t.Fatalf("lamp parent = %d", w.ParentOf(8))
	}
	if _, reason := w.Builder().Explain(contextmenu.EntityRef{Entity: 8}, nil); reason != contextmenu.RejectNested {
		t.Fatalf("held lamp should be nested, got %v", reason)
	}

	if err := w.Drop(contextmenu.EntityRef{Entity: 8}); err != nil {
		t.Fatal(err)
	}
	x, y, ok := w.Position(8)
	if !ok || x != 3.5 || y != 4.2 || w.ParentOf(8) != grid {
		t.Fatalf("dropped lamp at %v,%v parent %d", x, y, w.ParentOf(8))
	}
	if err := w.Drop(contextmenu.EntityRef{Entity: 8}); err == nil {
		t.Fatal("dropping an item on the floor should fail")
	}
}

func TestPickUp_Errors(t *testing.T) {
	w := testWorld(t)
	if err := w.PickUp(contextmenu.EntityRef{Entity: 8}); err == nil {
		t.Fatal("pick up without a body should fail")
	}
	w.Possess(7)
	if err := w.PickUp(contextmenu.EntityRef{Entity: 7}); err == nil {
		t.Fatal("picking yourself up should fail")
	}
	if err := w.PickUp(contextmenu.TurfRef{Turf: 42}); err == nil {
		t.Fatal("turfs can't be picked up")
	}
}

func TestReparent_RejectsCycles(t *testing.T) {
	w := testWorld(t)
	if err := w.Reparent(5, 6); err == nil {
		t.Fatal("backpack inside its own wrench should fail")
	}
	if err := w.Reparent(5, 999); err == nil {
		t.Fatal("unknown parent should fail")
	}
}

func TestApply_Events(t *testing.T) {
	w := testWorld(t)
	for _, ev := range []events.Event{
		events.Moved{Entity: 8, X: 3, Y: 4},
		events.Renamed{Entity: 8, Name: "Desk lamp"},
		events.Reparented{Entity: 6, Parent: grid},
		events.Possessed{Entity: 7},
	} {
		if err := w.Apply(ev); err != nil {
			t.Fatalf("%s: %v", events.Describe(ev), err)
		}
	}
	if name, _ := w.NameOf(contextmenu.EntityRef{Entity: 8}); name != "Desk lamp" {
		t.Fatalf("rename not applied: %q", name)
	}
	if body, ok := w.Body(); !ok || body != 7 {
		t.Fatal("possess not applied")
	}
	refs, _ := w.Pick(3, 4)
	if len(refs) != 5 {
		t.Fatalf("expected 4 entities and a turf at 3,4, got %v", refs)
	}
	if err := w.Apply(events.Moved{Entity: 999}); err == nil {
		t.Fatal("unknown entity should fail")
	}
}

func TestVerbsOfAndDescribe(t *testing.T) {
	w := testWorld(t)
	w.SetVerbs(8, []string{"Pick Up"})
	w.SetDescription(8, "It hums.")

	verbs := w.VerbsOf(contextmenu.EntityRef{Entity: 8})
	if len(verbs) != 3 || verbs[2] != "Pick Up" {
		t.Fatalf("got %v", verbs)
	}
	if got := w.VerbsOf(contextmenu.TurfRef{Turf: 42}); len(got) != 1 {
		t.Fatalf("got %v", got)
	}
	if got := w.Describe(contextmenu.EntityRef{Entity: 8}); got != "That's Lamp. It hums." {
		t.Fatalf("got %q", got)
	}
	if got := w.Describe(contextmenu.TurfRef{Turf: 42}); got != "That's Floor." {
		t.Fatalf("got %q", got)
	}
}
