// Package scene is an in-memory scene graph that instantiates entities for a
// spawner. It plays the role a game engine would: it owns entity storage,
// moves entities, and destroys them when their lifetime ends, independently
// of whoever spawned them.
package scene

import (
	"math"

	"github.com/vovakirdan/tui-spawner/internal/core"
	"github.com/vovakirdan/tui-spawner/internal/spawner"
)

// Prototype is the template an entity is instantiated from.
type Prototype struct {
	Glyph rune
	Color core.Color
	TTL   float64 // Seconds before the entity destroys itself; 0 = never
	Speed float64 // Cells per second along the forward axis
}

// Entity is a snapshot of one live entity.
type Entity struct {
	Handle   spawner.Handle
	Template spawner.Template
	Position core.Vec3
	Rotation core.Quat
	Age      float64
	Proto    Prototype
	Parent   *Node
}

type slot struct {
	gen    uint32
	alive  bool
	entity Entity
}

// World stores entities and implements spawner.Factory.
// It is not safe for concurrent use.
type World struct {
	slots     []slot
	free      []uint32
	live      int
	templates map[spawner.Template]Prototype
	bounds    core.Rect
}

// NewWorld creates an empty world with no bounds.
func NewWorld() *World {
	return &World{
		templates: make(map[spawner.Template]Prototype),
	}
}

// DefineTemplate registers or replaces a prototype.
func (w *World) DefineTemplate(id spawner.Template, p Prototype) {
	w.templates[id] = p
}

// HasTemplate implements spawner.TemplateChecker.
func (w *World) HasTemplate(id spawner.Template) bool {
	_, ok := w.templates[id]
	return ok
}

// SetBounds sets the playable area. Entities that leave it are destroyed
// by Advance. An empty rect disables the check.
func (w *World) SetBounds(r core.Rect) {
	w.bounds = r
}

// Instantiate implements spawner.Factory.
func (w *World) Instantiate(t spawner.Template, pos core.Vec3, rot core.Quat) spawner.Handle {
	var index uint32
	if n := len(w.free); n > 0 {
		index = w.free[n-1]
		w.free = w.free[:n-1]
	} else {
		index = uint32(len(w.slots))
		w.slots = append(w.slots, slot{})
	}

	s := &w.slots[index]
	h := makeHandle(index, s.gen)
	proto, ok := w.templates[t]
	if !ok {
		proto = Prototype{Glyph: '?'}
	}
	s.alive = true
	s.entity = Entity{
		Handle:   h,
		Template: t,
		Position: pos,
		Rotation: rot,
		Proto:    proto,
	}
	w.live++
	return h
}

// Destroy implements spawner.Factory. Stale handles are ignored.
func (w *World) Destroy(h spawner.Handle) {
	s := w.lookup(h)
	if s == nil {
		return
	}
	index, _, _ := splitHandle(h)
	s.alive = false
	s.gen++
	s.entity = Entity{}
	w.free = append(w.free, index)
	w.live--
}

// IsAlive implements spawner.Factory.
func (w *World) IsAlive(h spawner.Handle) bool {
	return w.lookup(h) != nil
}

// Get returns a snapshot of a live entity.
func (w *World) Get(h spawner.Handle) (Entity, bool) {
	s := w.lookup(h)
	if s == nil {
		return Entity{}, false
	}
	return s.entity, true
}

// Len returns the number of live entities.
func (w *World) Len() int {
	return w.live
}

// Each calls fn for every live entity in slot order.
func (w *World) Each(fn func(e Entity)) {
	for i := range w.slots {
		if w.slots[i].alive {
			fn(w.slots[i].entity)
		}
	}
}

// Advance ages and moves every entity by dt seconds, destroying those whose
// lifetime ran out or that left the bounds.
func (w *World) Advance(dt float64) {
	bounded := w.bounds.W > 0 && w.bounds.H > 0
	for i := range w.slots {
		s := &w.slots[i]
		if !s.alive {
			continue
		}
		e := &s.entity
		e.Age += dt
		if e.Proto.TTL > 0 && e.Age >= e.Proto.TTL {
			w.Destroy(e.Handle)
			continue
		}
		if e.Proto.Speed != 0 {
			e.Position = e.Position.Add(e.Rotation.Forward().Scale(e.Proto.Speed * dt))
		}
		if bounded && !w.bounds.ContainsF(e.Position.X, e.Position.Y) {
			w.Destroy(e.Handle)
		}
	}
}

// Clear destroys every entity. Prototypes and bounds are kept.
func (w *World) Clear() {
	for i := range w.slots {
		if w.slots[i].alive {
			w.Destroy(w.slots[i].entity.Handle)
		}
	}
}

// Render draws every entity onto dst. X maps to columns and Y to rows.
func (w *World) Render(dst *core.Screen) {
	w.Each(func(e Entity) {
		x := int(math.Floor(e.Position.X))
		y := int(math.Floor(e.Position.Y))
		dst.SetColor(x, y, e.Proto.Glyph, e.Proto.Color)
	})
}

func (w *World) lookup(h spawner.Handle) *slot {
	index, gen, ok := splitHandle(h)
	if !ok || int(index) >= len(w.slots) {
		return nil
	}
	s := &w.slots[index]
	if !s.alive || s.gen != gen {
		return nil
	}
	return s
}

// Ensure World satisfies the spawner collaborator interfaces
var (
	_ spawner.Factory         = (*World)(nil)
	_ spawner.TemplateChecker = (*World)(nil)
)
