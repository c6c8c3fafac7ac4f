package config

import (
	_ "embed"
)

//go:embed defaults/flappy.yaml
var defaultFlappyYAML []byte

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

// DefaultFlappyConfig returns the default obstacle-flight configuration.
func DefaultFlappyConfig() FlappyConfig {
	return FlappyConfig{
		Canvas: Canvas{Width: 400, Height: 600},
		Physics: FlappyPhysics{
			Gravity:     0.5,
			FlapImpulse: -8,
		},
		Player: FlappyPlayer{
			X:      50,
			Width:  34,
			Height: 24,
		},
		Obstacles: FlappyObstacles{
			PipeWidth:       52,
			MinPipeHeight:   50,
			BackgroundWidth: 288,
		},
		Speed: SpeedRamp{
			Initial:   3,
			Increment: 0.1,
			Max:       8,
		},
		Presets: map[DifficultyPreset]FlappyPreset{
			DifficultyEasy:   {PipeGap: 180, SpawnIntervalMS: 1800, PipesCount: 3},
			DifficultyNormal: {PipeGap: 160, SpawnIntervalMS: 1600, PipesCount: 4},
			DifficultyHard:   {PipeGap: 140, SpawnIntervalMS: 1400, PipesCount: 5},
		},
	}
}

// DefaultSnakeConfig returns the default grid-snake configuration.
func DefaultSnakeConfig() SnakeConfig {
	return SnakeConfig{
		GridSize: 20,
		Start:    GridPoint{X: 10, Y: 10},
		Presets: map[DifficultyPreset]SnakePreset{
			DifficultyEasy:   {TickMS: 150},
			DifficultyNormal: {TickMS: 100},
			DifficultyHard:   {TickMS: 70},
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "flappy":
		return defaultFlappyYAML
	case "snake":
		return defaultSnakeYAML
	default:
		return nil
	}
}
