package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadBattleship loads the battleship configuration.
// Search order: customPath -> ~/.battleship/configs/battleship.yaml ->
// ./configs/battleship.yaml -> embedded default.
// Files are decoded over the defaults, so a partial file only overrides
// the keys it sets.
func LoadBattleship(customPath string) (BattleshipConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return BattleshipConfig{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := parseBattleship(data)
		if err != nil {
			return BattleshipConfig{}, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory, then local configs directory
	for _, path := range []string{userConfigPath("battleship.yaml"), filepath.Join("configs", "battleship.yaml")} {
		if path == "" {
			continue
		}
		if data, err := os.ReadFile(path); err == nil {
			if cfg, err := parseBattleship(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Use embedded default YAML
	cfg, err := parseBattleship(defaultBattleshipYAML)
	if err != nil {
		return DefaultBattleshipConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

func parseBattleship(data []byte) (BattleshipConfig, error) {
	cfg := DefaultBattleshipConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return BattleshipConfig{}, err
	}
	if err := cfg.Validate(); err != nil {
		return BattleshipConfig{}, err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".battleship", "configs", filename)
}
