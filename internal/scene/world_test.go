package scene

import (
	"math/rand"
	"testing"

	"github.com/vovakirdan/tui-spawner/internal/config"
	"github.com/vovakirdan/tui-spawner/internal/core"
	"github.com/vovakirdan/tui-spawner/internal/spawner"
)

func TestWorldEntityLifecycle(t *testing.T) {
	cases := []struct {
		name         string
		create       int
		destroyIndex int // -1 = none
	}{
		{"single", 1, 0},
		{"three_destroy_middle", 3, 1},
		{"none_destroy", 2, -1},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w := NewWorld()
			hs := make([]spawner.Handle, 0, c.create)
			for i := 0; i < c.create; i++ {
				hs = append(hs, w.Instantiate("dot", core.V3(float64(i), 0, 0), core.Identity()))
			}
			if w.Len() != c.create {
				t.Fatalf("Len() = %d, expected %d", w.Len(), c.create)
			}
			if c.destroyIndex >= 0 {
				w.Destroy(hs[c.destroyIndex])
				if w.IsAlive(hs[c.destroyIndex]) {
					t.Fatal("entity should not be alive after destruction")
				}
				if w.Len() != c.create-1 {
					t.Errorf("Len() = %d, expected %d", w.Len(), c.create-1)
				}
			}
		})
	}
}

func TestWorldDestroyIdempotent(t *testing.T) {
	w := NewWorld()
	h := w.Instantiate("dot", core.Vec3{}, core.Identity())

	w.Destroy(h)
	w.Destroy(h)
	w.Destroy(0)
	w.Destroy(spawner.Handle(12345))

	if w.Len() != 0 {
		t.Errorf("Len() = %d, expected 0", w.Len())
	}
}

func TestWorldSlotReuseKeepsOldHandlesDead(t *testing.T) {
	w := NewWorld()
	old := w.Instantiate("dot", core.Vec3{}, core.Identity())
	w.Destroy(old)

	fresh := w.Instantiate("dot", core.V3(1, 1, 0), core.Identity())
	if fresh == old {
		t.Fatal("reused slot must produce a different handle")
	}
	if w.IsAlive(old) {
		t.Error("stale handle should stay dead after its slot is reused")
	}
	if !w.IsAlive(fresh) {
		t.Error("new handle should be alive")
	}

	// Destroying through the stale handle must not touch the new entity
	w.Destroy(old)
	if !w.IsAlive(fresh) {
		t.Error("stale destroy killed the new occupant")
	}
}

func TestWorldTemplates(t *testing.T) {
	w := NewWorld()
	w.DefineTemplate("spark", Prototype{Glyph: '+', Color: core.ColorYellow})

	if !w.HasTemplate("spark") || w.HasTemplate("smoke") {
		t.Error("HasTemplate mismatch")
	}

	e, ok := w.Get(w.Instantiate("spark", core.Vec3{}, core.Identity()))
	if !ok || e.Proto.Glyph != '+' || e.Template != "spark" {
		t.Errorf("Get() = %+v, %v", e, ok)
	}

	e, _ = w.Get(w.Instantiate("smoke", core.Vec3{}, core.Identity()))
	if e.Proto.Glyph != '?' {
		t.Errorf("unknown template glyph = %q, expected '?'", e.Proto.Glyph)
	}
}

func TestWorldAdvanceTTL(t *testing.T) {
	w := NewWorld()
	w.DefineTemplate("short", Prototype{Glyph: '.', TTL: 0.5})
	w.DefineTemplate("forever", Prototype{Glyph: 'o'})

	short := w.Instantiate("short", core.Vec3{}, core.Identity())
	forever := w.Instantiate("forever", core.Vec3{}, core.Identity())

	w.Advance(0.25)
	if !w.IsAlive(short) {
		t.Fatal("entity died before its TTL")
	}
	w.Advance(0.25)
	if w.IsAlive(short) {
		t.Error("entity should die once its TTL is reached")
	}
	if !w.IsAlive(forever) {
		t.Error("TTL 0 entity should live forever")
	}
}

func TestWorldAdvanceMovesAlongForward(t *testing.T) {
	w := NewWorld()
	w.DefineTemplate("bolt", Prototype{Glyph: 'o', Speed: 4})

	// Forward is +X; a 90 degree turn around Z points it along +Y
	h := w.Instantiate("bolt", core.V3(1, 1, 0), core.Euler(core.V3(0, 0, 90)))
	w.Advance(0.5)

	e, _ := w.Get(h)
	if !e.Position.ApproxEqual(core.V3(1, 3, 0), 1e-9) {
		t.Errorf("Position = %v, expected (1, 3, 0)", e.Position)
	}
	if e.Age != 0.5 {
		t.Errorf("Age = %v, expected 0.5", e.Age)
	}
}

func TestWorldBoundsCull(t *testing.T) {
	w := NewWorld()
	w.SetBounds(core.NewRect(0, 0, 10, 10))
	w.DefineTemplate("bolt", Prototype{Speed: 10})

	inside := w.Instantiate("bolt", core.V3(1, 5, 0), core.Euler(core.V3(0, 0, 180)))
	w.Advance(0.05) // x = 0.5
	if !w.IsAlive(inside) {
		t.Fatal("entity still inside bounds was destroyed")
	}
	w.Advance(0.1) // x = -0.5
	if w.IsAlive(inside) {
		t.Error("entity outside bounds should be destroyed")
	}
}

func TestWorldRender(t *testing.T) {
	w := NewWorld()
	w.DefineTemplate("spark", Prototype{Glyph: '+', Color: core.ColorRed})
	w.Instantiate("spark", core.V3(2.7, 1.2, 0), core.Identity())
	w.Instantiate("spark", core.V3(-3, 0, 0), core.Identity()) // clipped

	screen := core.NewScreen(5, 3)
	w.Render(screen)

	cell := screen.GetCell(2, 1)
	if cell.Rune != '+' || cell.Color != core.ColorRed {
		t.Errorf("GetCell(2, 1) = %+v, expected red '+'", cell)
	}
}

func TestWorldClear(t *testing.T) {
	w := NewWorld()
	w.DefineTemplate("dot", Prototype{})
	for i := 0; i < 5; i++ {
		w.Instantiate("dot", core.Vec3{}, core.Identity())
	}
	w.Clear()

	if w.Len() != 0 {
		t.Errorf("Len() = %d after Clear, expected 0", w.Len())
	}
	if !w.HasTemplate("dot") {
		t.Error("Clear should keep templates")
	}
}

func TestManagerWithWorld(t *testing.T) {
	w := NewWorld()
	w.DefineTemplate("drop", Prototype{Glyph: '|', TTL: 1})
	node := w.NewNode(core.V3(5, 5, 0), core.Identity())

	m := spawner.New(config.SpawnerConfig{
		Interval:            0.25,
		MaxLive:             3,
		AutoSpawn:           true,
		UseSpawnerTransform: true,
		ParentToSpawner:     true,
	}, "drop", w,
		spawner.WithTransform(node),
		spawner.WithParent(node),
		spawner.WithRand(rand.New(rand.NewSource(1))))

	clock := NewSimClock(0.25)
	for i := 0; i < 40; i++ {
		m.Update(clock)
		w.Advance(clock.Step())
		if c := m.Count(); c > 3 {
			t.Fatalf("step %d: Count() = %d exceeds capacity", i, c)
		}
	}

	// Entities expire on their own; the manager only notices on purge
	if m.Count() != w.Len() {
		t.Errorf("Count() = %d, world has %d live entities", m.Count(), w.Len())
	}
	if len(node.Children()) != w.Len() {
		t.Errorf("node has %d children, world has %d entities", len(node.Children()), w.Len())
	}
}

func TestManagerRejectsUnknownWorldTemplate(t *testing.T) {
	w := NewWorld()
	m := spawner.New(config.SpawnerConfig{AutoSpawn: true}, "ghost", w)

	if !m.Disabled() {
		t.Error("template missing from the world should disable the manager")
	}
	m.Tick(0)
	if w.Len() != 0 {
		t.Errorf("disabled manager created %d entities", w.Len())
	}
}
