package events

import "github.com/devin-hart/nox-verbs/internal/contextmenu"

// Event is a single world change read from the feed.
type Event interface {
	isEvent()
}

type Moved struct {
	Entity contextmenu.EntityID
	X, Y   float64
}

type InvisibilityChanged struct {
	Entity contextmenu.EntityID
	Level  contextmenu.SightLevel
}

type Possessed struct {
	Entity contextmenu.EntityID
}

type Renamed struct {
	Entity contextmenu.EntityID
	Name   string
}

type Reparented struct {
	Entity contextmenu.EntityID
	Parent contextmenu.EntityID
}

func (Moved) isEvent()               {}
func (InvisibilityChanged) isEvent() {}
func (Possessed) isEvent()           {}
func (Renamed) isEvent()             {}
func (Reparented) isEvent()          {}
