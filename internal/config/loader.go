package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Load loads the configuration for a preset.
// Search order: customPath -> ~/.spawner/presets/<id>.yaml -> ./presets/<id>.yaml -> embedded default
func Load(presetID, customPath string) (PresetConfig, error) {
	var cfg PresetConfig

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		cfg.Validate()
		return cfg, nil
	}

	filename := presetID + ".yaml"

	// Try user config directory
	if userCfgPath := UserPresetPath(filename); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err == nil {
				cfg.Validate()
				return cfg, nil
			}
		}
	}

	// Try local presets directory
	if data, err := os.ReadFile(filepath.Join("presets", filename)); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			cfg.Validate()
			return cfg, nil
		}
	}

	// Use embedded default YAML
	data := GetDefaultYAML(presetID)
	if data == nil {
		return cfg, fmt.Errorf("config: unknown preset %q", presetID)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		cfg = DefaultPresetConfig() // Fallback to hardcoded if embed fails
	}
	cfg.Validate()
	return cfg, nil
}

// UserPresetPath returns the path to a user preset file, or empty if home is unavailable.
func UserPresetPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".spawner", "presets", filename)
}

// Marshal renders a preset back to YAML, e.g. for `spawner presets show`.
func Marshal(cfg PresetConfig) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("config: failed to encode preset: %w", err)
	}
	return data, nil
}
