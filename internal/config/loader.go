package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// configDirName is the per-user directory under $HOME.
const configDirName = ".escapezone"

// LoadEscapeZone loads the game configuration.
// Search order: customPath -> ~/.escapezone/configs/escapezone.yaml ->
// ./configs/escapezone.yaml -> embedded default.
// Files are decoded on top of the defaults, so a partial file only
// overrides the keys it names.
func LoadEscapeZone(customPath string) (EscapeZoneConfig, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return DefaultEscapeZoneConfig(), fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err := parseEscapeZone(data)
		if err != nil {
			return DefaultEscapeZoneConfig(), fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return cfg, nil
	}

	if userCfgPath := userConfigPath("escapezone.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := parseEscapeZone(data); err == nil {
				return cfg, nil
			}
		}
	}

	if data, err := os.ReadFile(filepath.Join("configs", "escapezone.yaml")); err == nil {
		if cfg, err := parseEscapeZone(data); err == nil {
			return cfg, nil
		}
	}

	cfg, err := parseEscapeZone(defaultEscapeZoneYAML)
	if err != nil {
		return DefaultEscapeZoneConfig(), nil
	}
	return cfg, nil
}

// parseEscapeZone decodes YAML over the defaults and validates the result.
func parseEscapeZone(data []byte) (EscapeZoneConfig, error) {
	cfg := DefaultEscapeZoneConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, configDirName, "configs", filename)
}

// ApplyEscapeZonePreset modifies the config based on a difficulty preset.
func ApplyEscapeZonePreset(cfg *EscapeZoneConfig, preset DifficultyPreset) {
	if preset == "" {
		return
	}
	if IsFixedPreset(preset) {
		cfg.Difficulty.Enabled = false
		return
	}
	cfg.Difficulty.Enabled = true
	cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
}

// Marshal renders cfg as YAML, used by the `config` command.
func Marshal(cfg EscapeZoneConfig) ([]byte, error) {
	out, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("config: cannot encode: %w", err)
	}
	return out, nil
}
