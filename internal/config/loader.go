package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// validator is implemented by every game configuration.
type validator interface {
	Validate() error
}

// LoadFlappy loads obstacle-flight configuration.
// Search order: customPath -> ~/.arcade/configs/flappy.yaml -> ./configs/flappy.yaml -> embedded default
func LoadFlappy(customPath string) (FlappyConfig, error) {
	return load("flappy.yaml", customPath, defaultFlappyYAML, DefaultFlappyConfig)
}

// LoadSnake loads grid-snake configuration.
// Search order: customPath -> ~/.arcade/configs/snake.yaml -> ./configs/snake.yaml -> embedded default
func LoadSnake(customPath string) (SnakeConfig, error) {
	return load("snake.yaml", customPath, defaultSnakeYAML, DefaultSnakeConfig)
}

// load resolves a config file along the search path. An explicit path must
// exist and parse; the implicit locations are skipped when unreadable or
// invalid. Files are decoded over the hard-coded defaults so partial files,
// down to single preset fields, only override what they name.
func load[T validator](filename, customPath string, embedded []byte, defaults func() T) (T, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			var zero T
			return zero, fmt.Errorf("config: read %s: %w", customPath, err)
		}
		return decode(data, customPath, defaults)
	}

	candidates := []string{filepath.Join("configs", filename)}
	if p := userConfigPath(filename); p != "" {
		candidates = append([]string{p}, candidates...)
	}
	for _, path := range candidates {
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		if cfg, err := decode(data, path, defaults); err == nil {
			return cfg, nil
		}
	}

	if cfg, err := decode(embedded, "embedded "+filename, defaults); err == nil {
		return cfg, nil
	}
	return defaults(), nil // Fallback to hardcoded if embed fails
}

func decode[T validator](data []byte, source string, defaults func() T) (T, error) {
	cfg := defaults()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		var zero T
		return zero, fmt.Errorf("config: parse %s: %w", source, err)
	}
	if err := cfg.Validate(); err != nil {
		var zero T
		return zero, fmt.Errorf("config: %s: %w", source, err)
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}
