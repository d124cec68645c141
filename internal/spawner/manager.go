package spawner

import (
	"io"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-spawner/internal/config"
	"github.com/vovakirdan/tui-spawner/internal/core"
)

// Manager gates and performs entity creation under a capacity limit, on a
// timer or on demand, and tracks what it created for later removal.
//
// A Manager is driven by a single caller (typically once per simulation
// step) and is not safe for concurrent use. Dropping a Manager does not
// destroy the entities it tracks.
type Manager struct {
	cfg      config.SpawnerConfig
	template Template
	factory  Factory

	transform Transform
	parent    Parent
	rng       *rand.Rand
	logger    *log.Logger

	nextSpawnTime float64
	live          []Handle // Oldest first
	disabled      bool
	stats         Stats
}

// Option configures optional Manager collaborators.
type Option func(*Manager)

// WithTransform sets the spawner's own placement, used when
// UseSpawnerTransform is enabled.
func WithTransform(t Transform) Option {
	return func(m *Manager) { m.transform = t }
}

// WithParent sets the scene-graph node new entities are attached to when
// ParentToSpawner is enabled.
func WithParent(p Parent) Option {
	return func(m *Manager) { m.parent = p }
}

// WithRand sets the jitter source. Defaults to a generator seeded with 1.
func WithRand(r *rand.Rand) Option {
	return func(m *Manager) { m.rng = r }
}

// WithLogger sets the log sink. Defaults to a logger that discards output.
func WithLogger(l *log.Logger) Option {
	return func(m *Manager) { m.logger = l }
}

// New creates a Manager. A missing or unknown template is a configuration
// error: it is logged once and the Manager stays inert for its lifetime.
func New(cfg config.SpawnerConfig, template Template, factory Factory, opts ...Option) *Manager {
	m := &Manager{
		cfg:      cfg,
		template: template,
		factory:  factory,
		live:     make([]Handle, 0, max(cfg.MaxLive, 4)),
	}
	for _, opt := range opts {
		opt(m)
	}
	if m.rng == nil {
		m.rng = rand.New(rand.NewSource(1))
	}
	if m.logger == nil {
		m.logger = log.New(io.Discard)
	}

	if !m.templateUsable() {
		m.disabled = true
		m.logger.Error("spawner disabled", "template", string(template), "error", ErrNoTemplate)
	}
	return m
}

func (m *Manager) templateUsable() bool {
	if m.template == "" || m.factory == nil {
		return false
	}
	if tc, ok := m.factory.(TemplateChecker); ok {
		return tc.HasTemplate(m.template)
	}
	return true
}

// Start schedules the first auto-spawn. With DelayFirstSpawn the first spawn
// waits one interval after now; otherwise the next Tick at or after now fires.
func (m *Manager) Start(now float64) {
	if m.disabled || !m.cfg.AutoSpawn {
		return
	}
	if m.cfg.DelayFirstSpawn {
		m.nextSpawnTime = now + m.cfg.Interval
	} else {
		m.nextSpawnTime = now
	}
}

// Tick runs the auto-spawn timer. Call once per simulation step.
// At most one spawn attempt happens per call, and the timer is rescheduled
// whether or not the attempt succeeded.
func (m *Manager) Tick(now float64) {
	if m.disabled || !m.cfg.AutoSpawn {
		return
	}
	if now >= m.nextSpawnTime {
		m.TrySpawn()
		m.nextSpawnTime = now + m.cfg.Interval
	}
}

// Update is Tick driven by a Clock.
func (m *Manager) Update(clock Clock) {
	m.Tick(clock.Now())
}

// TrySpawn spawns unless the capacity limit is reached.
// The count it compares against may include entities destroyed elsewhere
// since the last purge.
func (m *Manager) TrySpawn() (Handle, bool) {
	if m.cfg.MaxLive > 0 && len(m.live) >= m.cfg.MaxLive {
		m.stats.Blocked++
		if m.cfg.Debug {
			m.logger.Debug("max objects reached, not spawning", "max", m.cfg.MaxLive)
		}
		return 0, false
	}
	h, err := m.Spawn()
	if err != nil {
		return 0, false
	}
	return h, true
}

// Spawn creates an entity immediately, bypassing the capacity limit.
func (m *Manager) Spawn() (Handle, error) {
	if m.disabled {
		return 0, ErrNoTemplate
	}

	var (
		pos core.Vec3
		rot core.Quat
	)
	if m.cfg.UseSpawnerTransform && m.transform != nil {
		pos = m.transform.Position()
		rot = m.transform.Rotation()
	} else {
		pos = m.cfg.Position
		rot = core.Euler(m.cfg.Rotation)
	}

	pos = pos.Add(m.jitter(m.cfg.PositionJitter))
	if spin := m.jitter(m.cfg.RotationJitter); !spin.IsZero() {
		// Local-space: the random turn is applied after the base orientation.
		rot = rot.Mul(core.Euler(spin))
	}

	h := m.factory.Instantiate(m.template, pos, rot)

	if m.cfg.ParentToSpawner && m.parent != nil {
		m.parent.Adopt(h)
	}

	if !m.tracks(h) {
		m.live = append(m.live, h)
	}
	m.purge()

	m.stats.Spawned++
	if len(m.live) > m.stats.Peak {
		m.stats.Peak = len(m.live)
	}
	if m.cfg.Debug {
		m.logger.Debug("spawned new object", "position", pos, "total", len(m.live))
	}
	return h, nil
}

// ClearAll destroys every tracked entity that is still alive and forgets
// all handles.
func (m *Manager) ClearAll() {
	for _, h := range m.live {
		if m.factory.IsAlive(h) {
			m.factory.Destroy(h)
			m.stats.Cleared++
		}
	}
	clear(m.live)
	m.live = m.live[:0]

	if m.cfg.Debug {
		m.logger.Debug("cleared all spawned objects")
	}
}

// RemoveOldest destroys the oldest tracked entity, if any. The entry is
// dropped even when the entity was already gone.
func (m *Manager) RemoveOldest() {
	if len(m.live) == 0 {
		return
	}

	oldest := m.live[0]
	if m.factory.IsAlive(oldest) {
		m.factory.Destroy(oldest)
	}
	m.live = append(m.live[:0], m.live[1:]...)
	m.stats.Removed++

	if m.cfg.Debug {
		m.logger.Debug("removed oldest object", "handle", uint64(oldest))
	}
}

// Count forgets dead handles and returns how many entities are tracked.
func (m *Manager) Count() int {
	m.purge()
	return len(m.live)
}

// Alive reports how many tracked entities still exist without forgetting
// dead handles. Use it from read-only paths such as rendering.
func (m *Manager) Alive() int {
	n := 0
	for _, h := range m.live {
		if m.factory.IsAlive(h) {
			n++
		}
	}
	return n
}

// Entities returns a copy of the tracked handles, oldest first.
// Entities destroyed since the last purge may still be listed.
func (m *Manager) Entities() []Handle {
	out := make([]Handle, len(m.live))
	copy(out, m.live)
	return out
}

// NextSpawnTime returns the clock time of the next scheduled auto-spawn.
func (m *Manager) NextSpawnTime() float64 {
	return m.nextSpawnTime
}

// Disabled reports whether the Manager rejected its template.
func (m *Manager) Disabled() bool {
	return m.disabled
}

// Config returns the configuration the Manager was built with.
func (m *Manager) Config() config.SpawnerConfig {
	return m.cfg
}

// Stats returns cumulative counters.
func (m *Manager) Stats() Stats {
	return m.stats
}

func (m *Manager) tracks(h Handle) bool {
	for _, t := range m.live {
		if t == h {
			return true
		}
	}
	return false
}

// purge drops handles whose entities no longer exist, preserving order.
func (m *Manager) purge() {
	kept := m.live[:0]
	for _, h := range m.live {
		if m.factory.IsAlive(h) {
			kept = append(kept, h)
		}
	}
	clear(m.live[len(kept):])
	m.live = kept
}

// jitter draws each axis uniformly from [-r, +r]. A zero range yields
// exactly zero without consuming randomness.
func (m *Manager) jitter(r core.Vec3) core.Vec3 {
	return core.Vec3{
		X: m.uniform(r.X),
		Y: m.uniform(r.Y),
		Z: m.uniform(r.Z),
	}
}

func (m *Manager) uniform(r float64) float64 {
	if r == 0 {
		return 0
	}
	return -r + m.rng.Float64()*2*r
}
