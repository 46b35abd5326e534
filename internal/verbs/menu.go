package verbs

import (
	"errors"
	"fmt"

	"github.com/devin-hart/nox-verbs/internal/contextmenu"
)

var ErrAlreadyChosen = errors.New("verb already chosen")

// Menu is the verb list shown for one target.
type Menu struct {
	Target contextmenu.ObjectReference
	Verbs  []Verb

	selected []func()
	chosen   bool
}

func NewMenu(r *Registry, target contextmenu.ObjectReference, sight contextmenu.SightLevel) *Menu {
	return &Menu{
		Target: target,
		Verbs:  r.For(target, sight),
	}
}

func (m *Menu) OnSelected(fn func()) {
	m.selected = append(m.selected, fn)
}

// Choose runs verb i and then reports the selection. The interaction ends
// even when the verb fails.
func (m *Menu) Choose(i int) error {
	if m.chosen {
		return ErrAlreadyChosen
	}
	if i < 0 || i >= len(m.Verbs) {
		return fmt.Errorf("no verb %d for %v", i, m.Target)
	}
	m.chosen = true

	var err error
	if v := m.Verbs[i]; v.Action != nil {
		err = v.Action(m.Target)
	}
	for _, fn := range m.selected {
		fn()
	}
	return err
}

func (m *Menu) Names() []string {
	out := make([]string, len(m.Verbs))
	for i, v := range m.Verbs {
		out[i] = v.Name
	}
	return out
}
