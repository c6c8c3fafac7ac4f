package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestParsePreset(t *testing.T) {
	tests := []struct {
		in      string
		want    DifficultyPreset
		wantErr bool
	}{
		{"", DifficultyNormal, false},
		{"easy", DifficultyEasy, false},
		{" Hard ", DifficultyHard, false},
		{"NORMAL", DifficultyNormal, false},
		{"fixed", "", true},
		{"insane", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParsePreset(tt.in)
			if tt.wantErr {
				if !errors.Is(err, ErrUnknownPreset) {
					t.Fatalf("ParsePreset(%q) error = %v, expected ErrUnknownPreset", tt.in, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParsePreset(%q) unexpected error: %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("ParsePreset(%q) = %q, expected %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestSpeedRamp(t *testing.T) {
	r := SpeedRamp{Initial: 3, Increment: 0.1, Max: 8}

	tests := []struct {
		score int
		want  float64
	}{
		{-4, 3},
		{0, 3},
		{10, 4},
		{50, 8},
		{1000, 8},
	}
	for _, tt := range tests {
		if got := r.Speed(tt.score); got < tt.want-1e-9 || got > tt.want+1e-9 {
			t.Errorf("Speed(%d) = %v, expected %v", tt.score, got, tt.want)
		}
	}

	prev := r.Speed(0)
	for score := 1; score < 200; score++ {
		s := r.Speed(score)
		if s < prev {
			t.Fatalf("speed decreased at score %d: %v < %v", score, s, prev)
		}
		if s > r.Max {
			t.Fatalf("speed %v above max at score %d", s, score)
		}
		prev = s
	}
}

func TestDefaultsValidate(t *testing.T) {
	if err := DefaultFlappyConfig().Validate(); err != nil {
		t.Errorf("default flappy config invalid: %v", err)
	}
	if err := DefaultSnakeConfig().Validate(); err != nil {
		t.Errorf("default snake config invalid: %v", err)
	}
}

func TestPresetTables(t *testing.T) {
	f := DefaultFlappyConfig()
	flappy := map[DifficultyPreset]struct {
		gap      float64
		interval time.Duration
	}{
		DifficultyEasy:   {180, 1800 * time.Millisecond},
		DifficultyNormal: {160, 1600 * time.Millisecond},
		DifficultyHard:   {140, 1400 * time.Millisecond},
	}
	for d, want := range flappy {
		p := f.Preset(d)
		if p.PipeGap != want.gap || p.SpawnInterval() != want.interval {
			t.Errorf("flappy %s preset = %+v, expected gap %v interval %v", d, p, want.gap, want.interval)
		}
	}

	s := DefaultSnakeConfig()
	snake := map[DifficultyPreset]time.Duration{
		DifficultyEasy:   150 * time.Millisecond,
		DifficultyNormal: 100 * time.Millisecond,
		DifficultyHard:   70 * time.Millisecond,
	}
	for d, want := range snake {
		if got := s.Preset(d).TickInterval(); got != want {
			t.Errorf("snake %s tick = %v, expected %v", d, got, want)
		}
	}

	// Unknown presets fall back to normal
	if got := s.Preset("bogus").TickMS; got != 100 {
		t.Errorf("fallback tick = %d, expected 100", got)
	}
}

func TestValidateRejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*FlappyConfig)
	}{
		{"zero canvas", func(c *FlappyConfig) { c.Canvas.Width = 0 }},
		{"downward flap", func(c *FlappyConfig) { c.Physics.FlapImpulse = 2 }},
		{"gap too large", func(c *FlappyConfig) {
			c.Presets[DifficultyHard] = FlappyPreset{PipeGap: 590, SpawnIntervalMS: 1000}
		}},
		{"missing preset", func(c *FlappyConfig) { delete(c.Presets, DifficultyEasy) }},
		{"max below initial", func(c *FlappyConfig) { c.Speed.Max = 1 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultFlappyConfig()
			tt.mutate(&cfg)
			if err := cfg.Validate(); !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("Validate() = %v, expected ErrInvalidConfig", err)
			}
		})
	}

	snake := DefaultSnakeConfig()
	snake.Start = GridPoint{X: 25, Y: 0}
	if err := snake.Validate(); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("snake start outside grid: Validate() = %v", err)
	}
}

func TestLoadEmbedded(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	f, err := LoadFlappy("")
	if err != nil {
		t.Fatalf("LoadFlappy: %v", err)
	}
	if f.Canvas.Height != 600 || f.Physics.Gravity != 0.5 || f.Preset(DifficultyHard).PipeGap != 140 {
		t.Errorf("embedded flappy config not loaded: %+v", f)
	}

	s, err := LoadSnake("")
	if err != nil {
		t.Fatalf("LoadSnake: %v", err)
	}
	if s.GridSize != 20 || s.Start != (GridPoint{X: 10, Y: 10}) {
		t.Errorf("embedded snake config not loaded: %+v", s)
	}
}

func TestLoadCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "snake.yaml")
	if err := os.WriteFile(path, []byte("grid_size: 12\nstart:\n  x: 3\n  y: 4\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadSnake(path)
	if err != nil {
		t.Fatalf("LoadSnake(%s): %v", path, err)
	}
	if cfg.GridSize != 12 || cfg.Start.X != 3 {
		t.Errorf("custom values not applied: %+v", cfg)
	}
	// Unnamed fields keep their defaults
	if cfg.Preset(DifficultyHard).TickMS != 70 {
		t.Errorf("presets should default, got %+v", cfg.Presets)
	}
}

func TestLoadPartialPreset(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		game string
	}{
		{"flappy", "presets:\n  easy:\n    pipe_gap: 170\n", "flappy"},
		{"snake", "presets:\n  hard:\n    tick_ms: 55\n", "snake"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), tt.game+".yaml")
			if err := os.WriteFile(path, []byte(tt.yaml), 0o644); err != nil {
				t.Fatal(err)
			}

			switch tt.game {
			case "flappy":
				cfg, err := LoadFlappy(path)
				if err != nil {
					t.Fatalf("LoadFlappy: %v", err)
				}
				want := FlappyPreset{PipeGap: 170, SpawnIntervalMS: 1800, PipesCount: 3}
				if got := cfg.Preset(DifficultyEasy); got != want {
					t.Errorf("easy = %+v, want %+v", got, want)
				}
				if got := cfg.Preset(DifficultyHard).PipeGap; got != 140 {
					t.Errorf("hard pipe_gap = %v, want default 140", got)
				}
			case "snake":
				cfg, err := LoadSnake(path)
				if err != nil {
					t.Fatalf("LoadSnake: %v", err)
				}
				if got := cfg.Preset(DifficultyHard).TickMS; got != 55 {
					t.Errorf("hard tick_ms = %d, want 55", got)
				}
				if got := cfg.Preset(DifficultyEasy).TickMS; got != 150 {
					t.Errorf("easy tick_ms = %d, want default 150", got)
				}
			}
		})
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := LoadFlappy(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("missing explicit config should fail")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("grid_size: 1\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadSnake(bad); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("invalid explicit config: err = %v, expected ErrInvalidConfig", err)
	}

	garbage := filepath.Join(dir, "garbage.yaml")
	if err := os.WriteFile(garbage, []byte("canvas: [1, 2\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadFlappy(garbage); err == nil {
		t.Error("unparsable config should fail")
	}
}

func TestUserConfigOverridesEmbedded(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	dir := filepath.Join(home, ".arcade", "configs")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "flappy.yaml"), []byte("physics:\n  gravity: 0.7\n  flap_impulse: -9\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFlappy("")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Physics.Gravity != 0.7 || cfg.Physics.FlapImpulse != -9 {
		t.Errorf("user config not applied: %+v", cfg.Physics)
	}
}

func TestGetDefaultYAML(t *testing.T) {
	for _, id := range []string{"flappy", "snake"} {
		if len(GetDefaultYAML(id)) == 0 {
			t.Errorf("no embedded YAML for %s", id)
		}
	}
	if GetDefaultYAML("pong") != nil {
		t.Error("unknown game should have no default YAML")
	}
}
