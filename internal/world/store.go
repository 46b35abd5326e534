package world

import (
	"sort"

	"github.com/devin-hart/nox-verbs/internal/contextmenu"
)

// Store holds one component type keyed by entity.
type Store[T any] struct {
	items map[contextmenu.EntityID]T
}

func NewStore[T any]() *Store[T] {
	return &Store[T]{items: make(map[contextmenu.EntityID]T)}
}

func (s *Store[T]) Set(e contextmenu.EntityID, v T) {
	s.items[e] = v
}

func (s *Store[T]) TryGet(e contextmenu.EntityID) (T, bool) {
	v, ok := s.items[e]
	return v, ok
}

func (s *Store[T]) Has(e contextmenu.EntityID) bool {
	_, ok := s.items[e]
	return ok
}

func (s *Store[T]) Remove(e contextmenu.EntityID) {
	delete(s.items, e)
}

func (s *Store[T]) Count() int {
	return len(s.items)
}

// All returns the entities holding this component in ascending id order.
func (s *Store[T]) All() []contextmenu.EntityID {
	ids := make([]contextmenu.EntityID, 0, len(s.items))
	for id := range s.items {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}
