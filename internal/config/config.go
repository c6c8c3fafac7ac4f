// Package config provides YAML-based game configuration loading and the
// difficulty presets shared by the arcade games.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var (
	// ErrInvalidConfig is wrapped by every validation failure.
	ErrInvalidConfig = errors.New("config: invalid configuration")
	// ErrUnknownPreset is returned when a difficulty name is not recognised.
	ErrUnknownPreset = errors.New("config: unknown difficulty preset")
)

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// Presets lists the difficulty presets in menu order.
func Presets() []DifficultyPreset {
	return []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard}
}

// ParsePreset converts a user-supplied name into a preset. An empty name
// selects DifficultyNormal.
func ParsePreset(name string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(strings.ToLower(strings.TrimSpace(name))); p {
	case "":
		return DifficultyNormal, nil
	case DifficultyEasy, DifficultyNormal, DifficultyHard:
		return p, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownPreset, name)
	}
}

// FlappyConfig contains all configuration for the obstacle-flight game.
// Distances are canvas pixels, rates are per tick.
type FlappyConfig struct {
	Canvas    Canvas                    `yaml:"canvas"`
	Physics   FlappyPhysics             `yaml:"physics"`
	Player    FlappyPlayer              `yaml:"player"`
	Obstacles FlappyObstacles           `yaml:"obstacles"`
	Speed     SpeedRamp                 `yaml:"speed"`
	Presets   PresetTable[FlappyPreset] `yaml:"presets"`
}

// Canvas is the logical play field size.
type Canvas struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// FlappyPhysics defines the vertical motion of the bird.
type FlappyPhysics struct {
	Gravity     float64 `yaml:"gravity"`
	FlapImpulse float64 `yaml:"flap_impulse"`
	// MaxFallSpeed caps downward velocity; zero disables the cap.
	MaxFallSpeed float64 `yaml:"max_fall_speed"`
}

// FlappyPlayer defines the fixed player hitbox.
type FlappyPlayer struct {
	X      float64 `yaml:"x"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// FlappyObstacles defines pipe geometry.
type FlappyObstacles struct {
	PipeWidth       float64 `yaml:"pipe_width"`
	MinPipeHeight   float64 `yaml:"min_pipe_height"`
	BackgroundWidth float64 `yaml:"background_width"`
}

// FlappyPreset holds the per-difficulty pipe parameters.
type FlappyPreset struct {
	PipeGap         float64 `yaml:"pipe_gap"`
	SpawnIntervalMS int     `yaml:"spawn_interval_ms"`
	PipesCount      int     `yaml:"pipes_count"`
}

// SpawnInterval returns the spawn cadence as a duration.
func (p FlappyPreset) SpawnInterval() time.Duration {
	return time.Duration(p.SpawnIntervalMS) * time.Millisecond
}

// Preset returns the parameters for the given difficulty, falling back to
// normal when the preset is missing.
func (c FlappyConfig) Preset(d DifficultyPreset) FlappyPreset {
	if p, ok := c.Presets[d]; ok {
		return p
	}
	return c.Presets[DifficultyNormal]
}

// Validate checks that the configuration describes a playable field.
func (c FlappyConfig) Validate() error {
	if c.Canvas.Width <= 0 || c.Canvas.Height <= 0 {
		return fmt.Errorf("%w: canvas must be positive, got %vx%v", ErrInvalidConfig, c.Canvas.Width, c.Canvas.Height)
	}
	if c.Player.Width <= 0 || c.Player.Height <= 0 {
		return fmt.Errorf("%w: player hitbox must be positive", ErrInvalidConfig)
	}
	if c.Physics.FlapImpulse >= 0 {
		return fmt.Errorf("%w: flap_impulse must be negative (upward), got %v", ErrInvalidConfig, c.Physics.FlapImpulse)
	}
	if c.Obstacles.PipeWidth <= 0 {
		return fmt.Errorf("%w: pipe_width must be positive", ErrInvalidConfig)
	}
	if err := c.Speed.validate(); err != nil {
		return err
	}
	for _, d := range Presets() {
		p, ok := c.Presets[d]
		if !ok {
			return fmt.Errorf("%w: missing %s preset", ErrInvalidConfig, d)
		}
		if p.PipeGap <= 0 || p.PipeGap+2*c.Obstacles.MinPipeHeight > c.Canvas.Height {
			return fmt.Errorf("%w: %s pipe_gap %v does not fit the canvas", ErrInvalidConfig, d, p.PipeGap)
		}
		if p.SpawnIntervalMS <= 0 {
			return fmt.Errorf("%w: %s spawn_interval_ms must be positive", ErrInvalidConfig, d)
		}
	}
	return nil
}

// SnakeConfig contains all configuration for the grid-snake game.
type SnakeConfig struct {
	GridSize int                      `yaml:"grid_size"`
	Start    GridPoint                `yaml:"start"`
	Presets  PresetTable[SnakePreset] `yaml:"presets"`
}

// GridPoint is a cell coordinate in the snake grid.
type GridPoint struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
}

// SnakePreset holds the per-difficulty movement cadence.
type SnakePreset struct {
	TickMS int `yaml:"tick_ms"`
}

// TickInterval returns the time between snake moves.
func (p SnakePreset) TickInterval() time.Duration {
	return time.Duration(p.TickMS) * time.Millisecond
}

// Preset returns the parameters for the given difficulty, falling back to
// normal when the preset is missing.
func (c SnakeConfig) Preset(d DifficultyPreset) SnakePreset {
	if p, ok := c.Presets[d]; ok {
		return p
	}
	return c.Presets[DifficultyNormal]
}

// Validate checks that the configuration describes a playable grid.
func (c SnakeConfig) Validate() error {
	if c.GridSize < 2 {
		return fmt.Errorf("%w: grid_size must be at least 2, got %d", ErrInvalidConfig, c.GridSize)
	}
	if c.Start.X < 0 || c.Start.X >= c.GridSize || c.Start.Y < 0 || c.Start.Y >= c.GridSize {
		return fmt.Errorf("%w: start (%d,%d) is outside the grid", ErrInvalidConfig, c.Start.X, c.Start.Y)
	}
	for _, d := range Presets() {
		p, ok := c.Presets[d]
		if !ok {
			return fmt.Errorf("%w: missing %s preset", ErrInvalidConfig, d)
		}
		if p.TickMS <= 0 {
			return fmt.Errorf("%w: %s tick_ms must be positive", ErrInvalidConfig, d)
		}
	}
	return nil
}
