package config

import (
	"embed"
	"path"
	"sort"
	"strings"

	"github.com/vovakirdan/tui-spawner/internal/core"
)

//go:embed defaults/*.yaml
var defaultPresets embed.FS

// DefaultPresetConfig returns the hardcoded fallback used when no YAML
// source can be read.
func DefaultPresetConfig() PresetConfig {
	return PresetConfig{
		Title: "Spawner",
		Spawner: SpawnerConfig{
			Interval:            0.5,
			MaxLive:             10,
			AutoSpawn:           true,
			UseSpawnerTransform: true,
		},
		Template: TemplateConfig{
			ID:    "dot",
			Glyph: "*",
			Color: "white",
			TTL:   5,
			Speed: 6,
		},
		Emitter: EmitterConfig{
			Anchor: core.V3(0.5, 0.5, 0),
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a preset, or nil.
func GetDefaultYAML(presetID string) []byte {
	data, err := defaultPresets.ReadFile(path.Join("defaults", presetID+".yaml"))
	if err != nil {
		return nil
	}
	return data
}

// PresetIDs lists the embedded presets, sorted.
func PresetIDs() []string {
	entries, err := defaultPresets.ReadDir("defaults")
	if err != nil {
		return nil
	}
	ids := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".yaml") {
			continue
		}
		ids = append(ids, strings.TrimSuffix(e.Name(), ".yaml"))
	}
	sort.Strings(ids)
	return ids
}
