package events

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/devin-hart/nox-verbs/internal/contextmenu"
	"github.com/devin-hart/nox-verbs/internal/feed"
)

var (
	moveRegex    = regexp.MustCompile(`(?i)^move (\d+) to ([0-9.-]+)\s*,\s*([0-9.-]+)$`)
	invisRegex   = regexp.MustCompile(`(?i)^invisibility (\d+) (-?\d+)$`)
	possessRegex = regexp.MustCompile(`(?i)^possess (\d+)$`)
	renameRegex  = regexp.MustCompile(`(?i)^rename (\d+) (.+)$`)
	parentRegex  = regexp.MustCompile(`(?i)^parent (\d+) (\d+)$`)
)

// Engine turns feed lines into events. Events is read by the UI thread.
type Engine struct {
	Events  chan Event
	Skipped int
}

func NewEngine() *Engine {
	return &Engine{
		Events: make(chan Event, 256),
	}
}

// ProcessLines runs until lines is closed, then closes Events.
func (e *Engine) ProcessLines(lines <-chan feed.Line) {
	defer close(e.Events)
	for l := range lines {
		ev, ok := Parse(l.Text)
		if !ok {
			e.Skipped++
			continue
		}
		e.Events <- ev
	}
}

// Parse recognises one feed line.
func Parse(line string) (Event, bool) {
	line = strings.TrimSpace(line)

	// 1. MOVE
	if m := moveRegex.FindStringSubmatch(line); len(m) == 4 {
		id, ok := parseEntity(m[1])
		if !ok {
			return nil, false
		}
		x, errX := strconv.ParseFloat(m[2], 64)
		y, errY := strconv.ParseFloat(m[3], 64)
		if errX != nil || errY != nil {
			return nil, false
		}
		return Moved{Entity: id, X: x, Y: y}, true
	}

	// 2. INVISIBILITY
	if m := invisRegex.FindStringSubmatch(line); len(m) == 3 {
		id, ok := parseEntity(m[1])
		if !ok {
			return nil, false
		}
		level, err := strconv.Atoi(m[2])
		if err != nil {
			return nil, false
		}
		return InvisibilityChanged{Entity: id, Level: clampSight(level)}, true
	}

	// 3. POSSESS
	if m := possessRegex.FindStringSubmatch(line); len(m) == 2 {
		id, ok := parseEntity(m[1])
		if !ok {
			return nil, false
		}
		return Possessed{Entity: id}, true
	}

	// 4. RENAME
	if m := renameRegex.FindStringSubmatch(line); len(m) == 3 {
		id, ok := parseEntity(m[1])
		if !ok {
			return nil, false
		}
		return Renamed{Entity: id, Name: strings.TrimSpace(m[2])}, true
	}

	// 5. PARENT
	if m := parentRegex.FindStringSubmatch(line); len(m) == 3 {
		id, okID := parseEntity(m[1])
		parent, okParent := parseEntity(m[2])
		if !okID || !okParent {
			return nil, false
		}
		return Reparented{Entity: id, Parent: parent}, true
	}

	return nil, false
}

func parseEntity(s string) (contextmenu.EntityID, bool) {
	v, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return 0, false
	}
	return contextmenu.EntityID(v), true
}

func clampSight(v int) contextmenu.SightLevel {
	if v > math.MaxInt8 {
		return math.MaxInt8
	}
	if v < math.MinInt8 {
		return math.MinInt8
	}
	return contextmenu.SightLevel(v)
}

func Describe(ev Event) string {
	switch e := ev.(type) {
	case Moved:
		return fmt.Sprintf("entity %d moved to %.0f,%.0f", e.Entity, e.X, e.Y)
	case InvisibilityChanged:
		return fmt.Sprintf("entity %d invisibility %d", e.Entity, e.Level)
	case Possessed:
		return fmt.Sprintf("now controlling entity %d", e.Entity)
	case Renamed:
		return fmt.Sprintf("entity %d renamed to %q", e.Entity, e.Name)
	case Reparented:
		return fmt.Sprintf("entity %d moved into %d", e.Entity, e.Parent)
	default:
		return "unknown event"
	}
}
