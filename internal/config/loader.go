package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// ConfigFile is the file name searched for in the config directories.
const ConfigFile = "highscore.yaml"

// LoadHighScore loads High Score configuration.
// Search order: customPath -> ~/.highscore/configs/highscore.yaml -> ./configs/highscore.yaml -> embedded default
//
// Fields missing from a file keep their default values. A custom path that
// cannot be read, parsed or validated is an error; the other locations are
// skipped when they are unusable.
func LoadHighScore(customPath string) (HighScoreConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return HighScoreConfig{}, fmt.Errorf("config: reading %s: %w", customPath, err)
		}
		cfg, err := parseHighScore(data)
		if err != nil {
			return HighScoreConfig{}, fmt.Errorf("config: %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory, then local configs directory
	for _, path := range []string{userConfigPath(ConfigFile), filepath.Join("configs", ConfigFile)} {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		if cfg, err := parseHighScore(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := parseHighScore(defaultHighScoreYAML)
	if err != nil {
		return DefaultHighScoreConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// parseHighScore decodes YAML over the hardcoded defaults and validates
// the result.
func parseHighScore(data []byte) (HighScoreConfig, error) {
	cfg := DefaultHighScoreConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return HighScoreConfig{}, fmt.Errorf("parsing: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return HighScoreConfig{}, fmt.Errorf("validating: %w", err)
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".highscore", "configs", filename)
}

// ExpandHome replaces a leading "~" in path with the user's home directory.
func ExpandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}

// ApplyHighScorePreset modifies the config based on a difficulty preset.
func ApplyHighScorePreset(cfg *HighScoreConfig, preset DifficultyPreset) {
	if preset == "" {
		return
	}

	if IsFixedPreset(preset) {
		cfg.Difficulty.Enabled = false
	} else {
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}

	// Adjust round length and drill strength based on difficulty
	switch preset {
	case DifficultyEasy:
		cfg.Round.Seconds = 180
		cfg.Drill.Amount = 0.15
	case DifficultyHard:
		cfg.Round.Seconds = 90
		cfg.Drill.Amount = 0.05
	}
}
