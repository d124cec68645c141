// Package playground turns spawner presets into runnable scenarios.
// Each preset wires a spawn manager to an in-memory scene and animates the
// spawner's own transform so the randomization policy is visible.
package playground

import (
	"fmt"
	"io"
	"math"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-spawner/internal/config"
	"github.com/vovakirdan/tui-spawner/internal/core"
	"github.com/vovakirdan/tui-spawner/internal/registry"
	"github.com/vovakirdan/tui-spawner/internal/scene"
	"github.com/vovakirdan/tui-spawner/internal/spawner"
)

// Visual characters for rendering
const (
	EmitterChar = '◆'
	HUDRow      = 0
)

var (
	configPath string
	logger     = log.New(io.Discard)
)

// SetConfigPath sets a custom preset config path for new scenarios.
func SetConfigPath(path string) {
	configPath = path
}

// SetLogger sets the logger handed to every spawn manager.
func SetLogger(l *log.Logger) {
	if l != nil {
		logger = l
	}
}

// Scenario runs one spawner preset.
type Scenario struct {
	id      string
	cfg     config.PresetConfig
	path    string
	runtime core.RuntimeConfig

	world   *scene.World
	node    *scene.Node
	clock   *scene.SimClock
	manager *spawner.Manager

	origin  core.Vec3
	baseRot core.Quat
	paused  bool
}

// New creates a scenario for the given preset using the package config path.
func New(id string) *Scenario {
	s := &Scenario{id: id, path: configPath}
	cfg, err := config.Load(id, s.path)
	if err != nil {
		logger.Warn("could not load preset, using defaults", "preset", id, "error", err)
		cfg = config.DefaultPresetConfig()
	}
	s.cfg = cfg
	return s
}

// ID returns the preset identifier.
func (s *Scenario) ID() string {
	return s.id
}

// Title returns the preset's display name.
func (s *Scenario) Title() string {
	if s.cfg.Title == "" {
		return s.id
	}
	return s.cfg.Title
}

// Config returns the preset configuration in use.
func (s *Scenario) Config() config.PresetConfig {
	return s.cfg
}

// Manager exposes the spawn manager, mainly for tests and the headless runner.
func (s *Scenario) Manager() *spawner.Manager {
	return s.manager
}

// World exposes the scene the scenario spawns into.
func (s *Scenario) World() *scene.World {
	return s.world
}

// Reset rebuilds the scene and spawner from scratch.
func (s *Scenario) Reset(rc core.RuntimeConfig) {
	if rc.TickRate <= 0 {
		rc.TickRate = 60
	}
	s.runtime = rc
	s.paused = false

	s.world = scene.NewWorld()
	s.world.SetBounds(core.NewRect(0, 0, rc.ScreenW, rc.ScreenH))

	tpl := s.cfg.Template
	if tpl.ID != "" {
		s.world.DefineTemplate(spawner.Template(tpl.ID), scene.Prototype{
			Glyph: tpl.GlyphRune(),
			Color: core.ParseColor(tpl.Color),
			TTL:   tpl.TTL,
			Speed: tpl.Speed,
		})
	}

	em := s.cfg.Emitter
	s.origin = core.V3(em.Anchor.X*float64(rc.ScreenW), em.Anchor.Y*float64(rc.ScreenH), 0)
	s.baseRot = core.Euler(em.Rotation)
	s.node = s.world.NewNode(s.origin, s.baseRot)
	s.clock = scene.NewSimClock(1 / float64(rc.TickRate))

	s.manager = spawner.New(s.cfg.Spawner, spawner.Template(tpl.ID), s.world,
		spawner.WithTransform(s.node),
		spawner.WithParent(s.node),
		spawner.WithRand(rand.New(rand.NewSource(rc.Seed))),
		spawner.WithLogger(logger.With("preset", s.id)),
	)
	s.manager.Start(s.clock.Now())
}

// Reload re-reads the preset config and restarts the scenario with it.
func (s *Scenario) Reload() error {
	cfg, err := config.Load(s.id, s.path)
	if err != nil {
		return err
	}
	s.cfg = cfg
	s.Reset(s.runtime)
	return nil
}

// Step advances the simulation by one tick.
func (s *Scenario) Step(in core.InputFrame) core.StepResult {
	if in.Has(core.ActionPause) {
		s.paused = !s.paused
	}
	if s.paused {
		return core.StepResult{State: s.State()}
	}

	if in.Has(core.ActionSpawn) {
		if _, err := s.manager.Spawn(); err != nil {
			logger.Debug("manual spawn refused", "preset", s.id, "error", err)
		}
	}
	if in.Has(core.ActionTrySpawn) {
		s.manager.TrySpawn()
	}
	if in.Has(core.ActionRemoveOldest) {
		s.manager.RemoveOldest()
	}
	if in.Has(core.ActionClear) {
		s.manager.ClearAll()
	}

	s.animateEmitter(s.clock.Now())
	s.manager.Update(s.clock)
	s.world.Advance(s.clock.Step())

	return core.StepResult{State: s.State()}
}

// animateEmitter moves the spawner node according to the preset's spin and sweep.
func (s *Scenario) animateEmitter(now float64) {
	em := s.cfg.Emitter
	if em.Spin != 0 {
		s.node.SetRotation(core.AxisAngle(core.V3(0, 0, 1), em.Spin*now).Mul(s.baseRot))
	}
	if em.Sweep != 0 && em.SweepPeriod > 0 {
		offset := em.Sweep * math.Sin(2*math.Pi*now/em.SweepPeriod)
		s.node.SetPosition(s.origin.Add(core.V3(offset, 0, 0)))
	}
}

// State returns the current counters. It does not purge the manager, so it
// is safe to call while rendering.
func (s *Scenario) State() core.SimState {
	if s.manager == nil {
		return core.SimState{}
	}
	st := s.manager.Stats()
	return core.SimState{
		Live:     s.manager.Alive(),
		Spawned:  st.Spawned,
		Blocked:  st.Blocked,
		Removed:  st.Removed,
		Cleared:  st.Cleared,
		Peak:     st.Peak,
		Elapsed:  s.clock.Now(),
		Paused:   s.paused,
		Disabled: s.manager.Disabled(),
	}
}

// Render draws entities, the emitter and a HUD line.
func (s *Scenario) Render(dst *core.Screen) {
	dst.Clear()
	if s.world == nil {
		return
	}

	s.world.Render(dst)

	p := s.node.Position()
	dst.SetColor(int(math.Floor(p.X)), int(math.Floor(p.Y)), EmitterChar, core.ColorBrightWhite)

	st := s.State()
	capacity := "∞"
	if limit := s.cfg.Spawner.MaxLive; limit > 0 {
		capacity = fmt.Sprint(limit)
	}
	hud := fmt.Sprintf(" %s  live %d/%s  spawned %d  blocked %d  t=%.1fs ",
		s.Title(), st.Live, capacity, st.Spawned, st.Blocked, st.Elapsed)
	dst.DrawTextColor(1, HUDRow, hud, core.ColorBrightYellow)

	if st.Disabled {
		drawCenteredMessage(dst, "SPAWNER DISABLED", "No entity template configured")
	} else if st.Paused {
		drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}
}

// drawCenteredMessage draws a message box in the center of the screen.
func drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len([]rune(title)), len([]rune(subtitle))) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	dst.DrawText(boxX+(boxW-len([]rune(title)))/2, boxY+1, title)
	dst.DrawText(boxX+(boxW-len([]rune(subtitle)))/2, boxY+3, subtitle)
}

// Register every embedded preset with the registry
func init() {
	for _, id := range config.PresetIDs() {
		registry.Register(id, func() registry.Scenario {
			return New(id)
		})
	}
}

var (
	_ registry.Scenario = (*Scenario)(nil)
	_ registry.Reloader = (*Scenario)(nil)
)
