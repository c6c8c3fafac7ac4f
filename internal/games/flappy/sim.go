// Package flappy implements an obstacle-flight game: a bird falls under
// gravity, flaps upward on input and must pass through gaps between pipes
// that scroll in from the right.
//
// The simulation lives in Advance, a pure function of the previous state,
// the intent for the tick and the parameters. Game wraps it for the
// platform frontends.
package flappy

import (
	"math"
	"slices"
	"time"

	"github.com/vovakirdan/twin-arcade/internal/config"
	"github.com/vovakirdan/twin-arcade/internal/core"
)

// Bird is the player's vertical kinematic state. X is fixed by Params.
type Bird struct {
	Y        float64 // Top of the hitbox, canvas pixels
	Velocity float64 // Positive is downward
	Rotation float64 // Cosmetic tilt in degrees, derived from velocity
}

// State is one frame of the flight simulation.
type State struct {
	Bird        Bird
	Pipes       []Pipe // Spawn order: X increases along the slice
	Score       int
	HighScore   int
	Over        bool
	Paused      bool
	Difficulty  config.DifficultyPreset
	Speed       float64 // Current scroll speed, pixels per tick
	BackgroundX float64 // Parallax offset in (-BackgroundWidth, 0]

	// SinceSpawn accumulates elapsed time towards the next pipe.
	SinceSpawn time.Duration
}

// Intent is the player input applied to a single tick.
type Intent struct {
	Flap    bool
	Elapsed time.Duration
}

// Params is the resolved, immutable tuning for one round.
type Params struct {
	Width, Height float64

	Gravity      float64
	FlapImpulse  float64
	MaxFallSpeed float64 // Zero disables the cap

	PlayerX      float64
	PlayerWidth  float64
	PlayerHeight float64

	PipeWidth     float64
	MinPipeHeight float64
	PipeGap       float64
	SpawnInterval time.Duration

	BackgroundWidth float64
	Speed           config.SpeedRamp
}

// ParamsFrom resolves the configuration for a difficulty preset.
func ParamsFrom(cfg config.FlappyConfig, d config.DifficultyPreset) Params {
	preset := cfg.Preset(d)
	return Params{
		Width:           cfg.Canvas.Width,
		Height:          cfg.Canvas.Height,
		Gravity:         cfg.Physics.Gravity,
		FlapImpulse:     cfg.Physics.FlapImpulse,
		MaxFallSpeed:    cfg.Physics.MaxFallSpeed,
		PlayerX:         cfg.Player.X,
		PlayerWidth:     cfg.Player.Width,
		PlayerHeight:    cfg.Player.Height,
		PipeWidth:       cfg.Obstacles.PipeWidth,
		MinPipeHeight:   cfg.Obstacles.MinPipeHeight,
		PipeGap:         preset.PipeGap,
		SpawnInterval:   preset.SpawnInterval(),
		BackgroundWidth: cfg.Obstacles.BackgroundWidth,
		Speed:           cfg.Speed,
	}
}

// NewState returns the opening frame of a round. The spawn accumulator
// starts full so the first pipe appears on the first tick.
func NewState(p Params, d config.DifficultyPreset, highScore int) State {
	return State{
		Bird:       Bird{Y: p.Height / 2},
		Pipes:      make([]Pipe, 0, 8),
		HighScore:  highScore,
		Difficulty: d,
		Speed:      p.Speed.Speed(0),
		SinceSpawn: p.SpawnInterval,
	}
}

// PlayerBox returns the bird's hitbox.
func (s State) PlayerBox(p Params) core.Box {
	return core.Box{X: p.PlayerX, Y: s.Bird.Y, W: p.PlayerWidth, H: p.PlayerHeight}
}

// Advance runs one tick. The returned state never aliases s.Pipes, so the
// caller may keep s as history.
func Advance(s State, in Intent, p Params, rng core.Rand) (State, []core.Event) {
	if s.Paused || s.Over {
		return s, nil
	}

	var events []core.Event
	next := s
	next.Pipes = slices.Clone(s.Pipes)

	// Flap overrides velocity rather than adding to it.
	v := s.Bird.Velocity + p.Gravity
	if in.Flap {
		v = p.FlapImpulse
		events = append(events, core.EventFlap)
	}
	if p.MaxFallSpeed > 0 {
		v = min(v, p.MaxFallSpeed)
	}
	next.Bird = Bird{
		Y:        s.Bird.Y + v,
		Velocity: v,
		Rotation: s.Bird.Velocity * 2,
	}

	next.Pipes = scrollPipes(next.Pipes, s.Speed)
	if p.BackgroundWidth > 0 {
		next.BackgroundX = math.Mod(s.BackgroundX-s.Speed, p.BackgroundWidth)
	}

	if collides(next.PlayerBox(p), next.Pipes, p) {
		frozen := s
		frozen.Over = true
		return frozen, append(events, core.EventCollision)
	}

	for i := range next.Pipes {
		pipe := &next.Pipes[i]
		if !pipe.Passed && pipe.X+pipe.Width < p.PlayerX {
			pipe.Passed = true
			next.Score++
			events = append(events, core.EventScore)
		}
	}
	next.HighScore = max(next.HighScore, next.Score)
	next.Speed = p.Speed.Speed(next.Score)

	next.SinceSpawn += in.Elapsed
	if next.SinceSpawn >= p.SpawnInterval {
		next.Pipes = append(next.Pipes, spawnPipe(p, rng))
		next.SinceSpawn = 0
	}

	return next, events
}
