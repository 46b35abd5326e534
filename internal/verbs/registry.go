package verbs

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"

	"github.com/devin-hart/nox-verbs/internal/contextmenu"
)

// ErrNotOffered is returned when a target does not offer the typed verb to
// the current observer.
var ErrNotOffered = errors.New("not offered by target")

type Action func(target contextmenu.ObjectReference) error

type Verb struct {
	Name         string
	Category     string
	Aliases      []string
	Invisibility contextmenu.SightLevel
	Hidden       bool
	Action       Action
}

// Source lists the verb names a target offers.
type Source interface {
	VerbsOf(ref contextmenu.ObjectReference) []string
}

type phrase struct {
	canonical string
	alias     string
}

type Registry struct {
	verbs   map[string]Verb
	phrases []phrase
	source  Source
}

func NewRegistry(source Source) *Registry {
	return &Registry{
		verbs:  make(map[string]Verb),
		source: source,
	}
}

func (r *Registry) Register(v Verb) {
	key := normalise(v.Name)
	if key == "" {
		return
	}
	r.verbs[key] = v
	r.phrases = append(r.phrases, phrase{canonical: key, alias: key})
	for _, a := range v.Aliases {
		if n := normalise(a); n != "" {
			r.phrases = append(r.phrases, phrase{canonical: key, alias: n})
		}
	}
}

func (r *Registry) Lookup(name string) (Verb, bool) {
	v, ok := r.verbs[normalise(name)]
	return v, ok
}

// For returns the target's verbs an observer with the given sight may use,
// sorted by category then name.
func (r *Registry) For(target contextmenu.ObjectReference, sight contextmenu.SightLevel) []Verb {
	if r.source == nil || target == nil {
		return nil
	}
	seen := make(map[string]bool)
	var out []Verb
	for _, name := range r.source.VerbsOf(target) {
		key := normalise(name)
		v, ok := r.verbs[key]
		if !ok || seen[key] || v.Hidden || v.Invisibility > sight {
			continue
		}
		seen[key] = true
		out = append(out, v)
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Category != out[j].Category {
			return out[i].Category < out[j].Category
		}
		return out[i].Name < out[j].Name
	})
	return out
}

// Resolve maps typed input to a registered verb: exact name or alias first,
// then a unique prefix, then the closest name by edit distance.
func (r *Registry) Resolve(input string) (Verb, bool) {
	return r.resolve(input, nil)
}

// ResolveFor is Resolve restricted to the verbs For would list.
func (r *Registry) ResolveFor(input string, target contextmenu.ObjectReference, sight contextmenu.SightLevel) (Verb, bool) {
	allowed := make(map[string]bool)
	for _, v := range r.For(target, sight) {
		allowed[normalise(v.Name)] = true
	}
	return r.resolve(input, allowed)
}

// resolve matches against every phrase when allowed is nil.
func (r *Registry) resolve(input string, allowed map[string]bool) (Verb, bool) {
	in := normalise(input)
	if in == "" {
		return Verb{}, false
	}

	var phrases []phrase
	for _, p := range r.phrases {
		if allowed == nil || allowed[p.canonical] {
			phrases = append(phrases, p)
		}
	}

	for _, p := range phrases {
		if p.alias == in {
			return r.verbs[p.canonical], true
		}
	}

	var prefixed []string
	for _, p := range phrases {
		if len(in) >= 2 && strings.HasPrefix(p.alias, in) && !contains(prefixed, p.canonical) {
			prefixed = append(prefixed, p.canonical)
		}
	}
	if len(prefixed) == 1 {
		return r.verbs[prefixed[0]], true
	}

	if len(in) < 3 {
		return Verb{}, false
	}
	best, bestDist := "", -1
	for _, p := range phrases {
		dist := levenshtein.ComputeDistance(in, p.alias)
		if dist > levenshteinLimit(len(p.alias)) {
			continue
		}
		if bestDist < 0 || dist < bestDist || (dist == bestDist && p.canonical < best) {
			best, bestDist = p.canonical, dist
		}
	}
	if bestDist < 0 {
		return Verb{}, false
	}
	return r.verbs[best], true
}

// Execute runs a verb by name against target.
func (r *Registry) Execute(name string, target contextmenu.ObjectReference) error {
	v, ok := r.Lookup(name)
	if !ok {
		return fmt.Errorf("unknown verb %q", name)
	}
	if v.Action == nil {
		return fmt.Errorf("verb %q does nothing", v.Name)
	}
	return v.Action(target)
}

// ExecuteFor resolves typed input among the verbs target offers at sight
// and runs the match. Hidden verbs and verbs above sight never run.
func (r *Registry) ExecuteFor(input string, target contextmenu.ObjectReference, sight contextmenu.SightLevel) error {
	v, ok := r.ResolveFor(input, target, sight)
	if !ok {
		return fmt.Errorf("%q: %w", strings.TrimSpace(input), ErrNotOffered)
	}
	return r.Execute(v.Name, target)
}

func levenshteinLimit(length int) int {
	switch {
	case length <= 4:
		return 1
	case length <= 8:
		return 2
	default:
		return 3
	}
}

func normalise(raw string) string {
	return strings.Join(strings.Fields(strings.ToLower(raw)), " ")
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
