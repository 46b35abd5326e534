package verbs

import (
	"fmt"

	"github.com/atotto/clipboard"

	"github.com/devin-hart/nox-verbs/internal/contextmenu"
)

// Actor is the world side of the built-in verbs.
type Actor interface {
	Describe(ref contextmenu.ObjectReference) string
	NameOf(ref contextmenu.ObjectReference) (string, bool)
	PickUp(ref contextmenu.ObjectReference) error
	Drop(ref contextmenu.ObjectReference) error
}

type Clipboard func(text string) error

func SystemClipboard(text string) error {
	return clipboard.WriteAll(text)
}

// Builtins returns Examine, Copy Name, Pick Up and Drop. say receives the
// text a verb shows the player.
func Builtins(a Actor, say func(string), clip Clipboard) []Verb {
	if clip == nil {
		clip = SystemClipboard
	}
	return []Verb{
		{
			Name:     "Examine",
			Category: "IC",
			Aliases:  []string{"look at", "inspect", "x"},
			Action: func(target contextmenu.ObjectReference) error {
				say(a.Describe(target))
				return nil
			},
		},
		{
			Name:     "Copy Name",
			Category: "OOC",
			Aliases:  []string{"copy"},
			Action: func(target contextmenu.ObjectReference) error {
				name, ok := a.NameOf(target)
				if !ok {
					return fmt.Errorf("%v has no name", target)
				}
				if err := clip(name); err != nil {
					return fmt.Errorf("copy name: %w", err)
				}
				say(fmt.Sprintf("Copied %q.", name))
				return nil
			},
		},
		{
			Name:     "Pick Up",
			Category: "IC",
			Aliases:  []string{"take", "get", "grab"},
			Action: func(target contextmenu.ObjectReference) error {
				if err := a.PickUp(target); err != nil {
					return err
				}
				if name, ok := a.NameOf(target); ok {
					say(fmt.Sprintf("You pick up the %s.", name))
				}
				return nil
			},
		},
		{
			Name:     "Drop",
			Category: "IC",
			Aliases:  []string{"put down"},
			Action: func(target contextmenu.ObjectReference) error {
				if err := a.Drop(target); err != nil {
					return err
				}
				if name, ok := a.NameOf(target); ok {
					say(fmt.Sprintf("You drop the %s.", name))
				}
				return nil
			},
		},
	}
}

// NewDefaultRegistry registers the built-ins for a world.
func NewDefaultRegistry(source Source, a Actor, say func(string), clip Clipboard) *Registry {
	r := NewRegistry(source)
	for _, v := range Builtins(a, say, clip) {
		r.Register(v)
	}
	return r
}
