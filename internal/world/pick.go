package world

import (
	"math"
	"sort"

	"github.com/devin-hart/nox-verbs/internal/contextmenu"
)

const maxDepth = 32

// Position resolves an entity's tile position by walking up to its grid.
func (w *World) Position(e contextmenu.EntityID) (float64, float64, bool) {
	cur := e
	for i := 0; i < maxDepth; i++ {
		xf, ok := w.Transforms.TryGet(cur)
		if !ok {
			return 0, 0, false
		}
		if w.grids[xf.Parent] {
			return xf.X, xf.Y, true
		}
		cur = xf.Parent
	}
	return 0, 0, false
}

// Pick returns every candidate under the tile at (x, y): entities from the
// top layer down, then the turf. Nested entities are included; the menu
// decides what to offer.
func (w *World) Pick(x, y float64) ([]contextmenu.ObjectReference, *contextmenu.TurfID) {
	tx, ty := int(math.Floor(x)), int(math.Floor(y))

	type hit struct {
		id    contextmenu.EntityID
		layer int
	}
	var hits []hit
	for _, id := range w.Transforms.All() {
		px, py, ok := w.Position(id)
		if !ok || int(math.Floor(px)) != tx || int(math.Floor(py)) != ty {
			continue
		}
		layer := 0
		if s, ok := w.Sprites.TryGet(id); ok && s != nil {
			layer = s.Layer
		}
		hits = append(hits, hit{id, layer})
	}
	sort.SliceStable(hits, func(i, j int) bool { return hits[i].layer > hits[j].layer })

	refs := make([]contextmenu.ObjectReference, 0, len(hits)+1)
	for _, h := range hits {
		refs = append(refs, contextmenu.EntityRef{Entity: h.id})
	}

	turf, ok := w.turfAt[[2]int{tx, ty}]
	if !ok {
		return refs, nil
	}
	refs = append(refs, contextmenu.TurfRef{Turf: turf})
	return refs, contextmenu.Tile(turf)
}

func sortTurfs(ts []*Turf) {
	sort.Slice(ts, func(i, j int) bool {
		if ts[i].Y != ts[j].Y {
			return ts[i].Y < ts[j].Y
		}
		return ts[i].X < ts[j].X
	})
}

// Bounds returns the tile extent covered by turfs.
func (w *World) Bounds() (minX, minY, maxX, maxY int) {
	first := true
	for _, t := range w.turfs {
		if first {
			minX, minY, maxX, maxY = t.X, t.Y, t.X, t.Y
			first = false
			continue
		}
		minX = min(minX, t.X)
		minY = min(minY, t.Y)
		maxX = max(maxX, t.X)
		maxY = max(maxY, t.Y)
	}
	return
}
