package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadFighter loads fighter configuration.
// Search order: customPath -> ~/.fighter/configs/fighter.yaml -> ./configs/fighter.yaml -> embedded default
//
// Files are decoded over the defaults, so a partial file only overrides the
// keys it sets.
func LoadFighter(customPath string) (FighterConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return FighterConfig{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := decodeFighter(data)
		if err != nil {
			return FighterConfig{}, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("fighter.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := decodeFighter(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", "fighter.yaml")); err == nil {
		if cfg, err := decodeFighter(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := decodeFighter(defaultFighterYAML)
	if err != nil {
		return DefaultFighterConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

func decodeFighter(data []byte) (FighterConfig, error) {
	cfg := DefaultFighterConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return FighterConfig{}, err
	}
	if err := cfg.Validate(); err != nil {
		return FighterConfig{}, err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".fighter", "configs", filename)
}
