// Package config provides YAML-based preset configuration loading for the
// spawner playground.
package config

import (
	"github.com/vovakirdan/tui-spawner/internal/core"
)

// PresetConfig contains everything needed to build one playground scenario.
type PresetConfig struct {
	Title    string         `yaml:"title"`
	Spawner  SpawnerConfig  `yaml:"spawner"`
	Template TemplateConfig `yaml:"template"`
	Emitter  EmitterConfig  `yaml:"emitter"`
}

// SpawnerConfig is captured by a spawn manager at construction and never
// changes afterwards. Angles are in degrees.
type SpawnerConfig struct {
	Interval            float64   `yaml:"interval"` // Seconds between auto-spawns
	MaxLive             int       `yaml:"max_live"` // 0 = unlimited
	AutoSpawn           bool      `yaml:"auto_spawn"`
	DelayFirstSpawn     bool      `yaml:"delay_first_spawn"` // First auto-spawn waits one interval after Start
	UseSpawnerTransform bool      `yaml:"use_spawner_transform"`
	Position            core.Vec3 `yaml:"position"`
	PositionJitter      core.Vec3 `yaml:"position_jitter"` // Per-axis symmetric half-width
	Rotation            core.Vec3 `yaml:"rotation"`
	RotationJitter      core.Vec3 `yaml:"rotation_jitter"`
	ParentToSpawner     bool      `yaml:"parent_to_spawner"`
	Debug               bool      `yaml:"debug"`
}

// TemplateConfig describes the entity prototype a preset spawns.
type TemplateConfig struct {
	ID    string  `yaml:"id"`
	Glyph string  `yaml:"glyph"`
	Color string  `yaml:"color"`
	TTL   float64 `yaml:"ttl"`   // Seconds; 0 = lives until destroyed or out of bounds
	Speed float64 `yaml:"speed"` // Cells per second along the entity's forward axis
}

// EmitterConfig places and animates the spawner's own transform.
type EmitterConfig struct {
	Anchor      core.Vec3 `yaml:"anchor"`   // Fraction of the screen size (0..1)
	Rotation    core.Vec3 `yaml:"rotation"` // Starting orientation
	Spin        float64   `yaml:"spin"`     // Degrees per second around Z
	Sweep       float64   `yaml:"sweep"`    // Horizontal oscillation amplitude in cells
	SweepPeriod float64   `yaml:"sweep_period"`
}

// Validate normalizes values that would otherwise produce nonsense.
// An empty template ID is left alone: the spawner treats it as a
// configuration error and disables itself.
func (c *PresetConfig) Validate() {
	if c.Spawner.Interval < 0 {
		c.Spawner.Interval = 0
	}
	if c.Spawner.MaxLive < 0 {
		c.Spawner.MaxLive = 0
	}
	if c.Template.TTL < 0 {
		c.Template.TTL = 0
	}
	if c.Template.Glyph == "" {
		c.Template.Glyph = "*"
	}
	if c.Emitter.SweepPeriod < 0 {
		c.Emitter.SweepPeriod = 0
	}
	c.Emitter.Anchor.X = core.ClampF(c.Emitter.Anchor.X, 0, 1)
	c.Emitter.Anchor.Y = core.ClampF(c.Emitter.Anchor.Y, 0, 1)
}

// GlyphRune returns the first rune of the template glyph.
func (t TemplateConfig) GlyphRune() rune {
	for _, r := range t.Glyph {
		return r
	}
	return '*'
}
