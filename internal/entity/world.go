// internal/entity/world.go
package entity

// World owns the live entities and the ones staged during the current tick.
// Live entities are kept in ID order so every pass over them is repeatable.
type World struct {
	NextID  EntityID
	live    []Entity
	pending []Entity
}

func NewWorld() *World {
	return &World{NextID: 1}
}

func (w *World) NewEntity() EntityID {
	id := w.NextID
	w.NextID++
	return id
}

// Spawn assigns an ID and stages e; it joins the live set on Merge.
func (w *World) Spawn(e Entity) EntityID {
	id := w.NewEntity()
	e.assign(id)
	w.pending = append(w.pending, e)
	return id
}

// Merge moves staged entities into the live set and returns how many moved.
func (w *World) Merge() int {
	n := len(w.pending)
	// ID растут монотонно, порядок сохраняется
	w.live = append(w.live, w.pending...)
	clear(w.pending)
	w.pending = w.pending[:0]
	return n
}

// Prune drops every dead entity and returns how many were removed.
func (w *World) Prune() int {
	alive := w.live[:0]
	for _, e := range w.live {
		if e.IsAlive() {
			alive = append(alive, e)
		}
	}
	removed := len(w.live) - len(alive)
	clear(w.live[len(alive):])
	w.live = alive
	return removed
}

// Live returns the live entities; callers must not keep the slice past a tick.
func (w *World) Live() []Entity { return w.live }

func (w *World) Pending() int { return len(w.pending) }

// Reset empties both sets. IDs keep growing across rounds.
func (w *World) Reset() {
	clear(w.live)
	clear(w.pending)
	w.live = w.live[:0]
	w.pending = w.pending[:0]
}
