package contextmenu

import "testing"

func TestPopup_RepopulateReplacesEntries(t *testing.T) {
	s := newTestScene()
	s.place(10, "Crate")
	s.place(11, "Lamp")
	p := NewPopup(s.builder(), &fakeOverlay{}, (&submenuRecorder{}).factory)

	p.RepopulateEntities([]ObjectReference{EntityRef{10}, EntityRef{11}}, nil)
	if p.EntityCount() != 2 {
		t.Fatalf("expected 2 entries, got %d", p.EntityCount())
	}
	p.RepopulateEntities([]ObjectReference{EntityRef{11}}, nil)
	if got := labels(p.Entries()); !sameStrings(got, []string{"Lamp"}) {
		t.Fatalf("previous entries survived: %v", got)
	}
}

func TestPopup_ActiveItemUsesObserverSight(t *testing.T) {
	s := newTestScene()
	s.place(10, "Crate")
	s.sessions.session = fakeSession{body: 40, hasBody: true}
	s.sights[40] = MobSight{SeeInvisibility: 30}
	rec := &submenuRecorder{}
	p := NewPopup(s.builder(), &fakeOverlay{}, rec.factory)

	p.RepopulateEntities([]ObjectReference{EntityRef{10}}, nil)
	p.SetActiveItem(p.Entries()[0], Box{})

	if len(rec.made) != 1 || rec.made[0].sight != 30 {
		t.Fatalf("submenu should get the observer's sight level")
	}
}

func TestPopup_VerbSelectedClosesEverything(t *testing.T) {
	s := newTestScene()
	s.place(10, "Crate")
	rec := &submenuRecorder{}
	ov := &fakeOverlay{}
	p := NewPopup(s.builder(), ov, rec.factory)
	closed := 0
	p.OnClose = func() { closed++ }

	p.Open(Vec2{X: 5, Y: 5})
	p.RepopulateEntities([]ObjectReference{EntityRef{10}}, nil)
	p.SetActiveItem(p.Entries()[0], Box{})
	rec.made[0].choose()

	if p.IsOpen() {
		t.Fatal("popup should close after a verb is selected")
	}
	if closed != 1 {
		t.Fatalf("OnClose fired %d times", closed)
	}
	if len(ov.children) != 0 || p.Submenus().IsOpen() {
		t.Fatal("verb submenu should be gone")
	}
}

func TestPopup_CloseDismissesSubmenu(t *testing.T) {
	s := newTestScene()
	s.place(10, "Crate")
	rec := &submenuRecorder{}
	p := NewPopup(s.builder(), &fakeOverlay{}, rec.factory)

	p.Open(Vec2{})
	p.RepopulateEntities([]ObjectReference{EntityRef{10}}, nil)
	p.SetActiveItem(p.Entries()[0], Box{})
	p.Close()
	p.Close()

	if !rec.made[0].closed {
		t.Fatal("closing the popup should close its submenu")
	}
}
