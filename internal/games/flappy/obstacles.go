package flappy

import (
	"github.com/vovakirdan/twin-arcade/internal/core"
)

// Pipe is a pair of solid columns sharing an x-span with a gap between.
type Pipe struct {
	X            float64 // Left edge
	TopHeight    float64 // Top solid covers [0, TopHeight)
	BottomHeight float64 // Bottom solid covers [Height-BottomHeight, Height)
	Width        float64
	Passed       bool // Scored; a pipe scores at most once
}

// TopBox returns the collision box for the upper column.
func (p Pipe) TopBox() core.Box {
	return core.Box{X: p.X, Y: 0, W: p.Width, H: p.TopHeight}
}

// BottomBox returns the collision box for the lower column.
func (p Pipe) BottomBox(canvasH float64) core.Box {
	return core.Box{X: p.X, Y: canvasH - p.BottomHeight, W: p.Width, H: p.BottomHeight}
}

// GapTop returns the y coordinate where the passable gap begins.
func (p Pipe) GapTop() float64 {
	return p.TopHeight
}

// GapBottom returns the y coordinate where the passable gap ends.
func (p Pipe) GapBottom(canvasH float64) float64 {
	return canvasH - p.BottomHeight
}

// spawnPipe creates a pipe at the right edge with a random gap position.
// The gap height is fixed by difficulty; only its offset varies.
func spawnPipe(p Params, rng core.Rand) Pipe {
	maxTop := p.Height - p.PipeGap - p.MinPipeHeight
	top := p.MinPipeHeight
	if maxTop > p.MinPipeHeight {
		top += rng.Float64() * (maxTop - p.MinPipeHeight)
	}
	return Pipe{
		X:            p.Width,
		TopHeight:    top,
		BottomHeight: p.Height - top - p.PipeGap,
		Width:        p.PipeWidth,
	}
}

// scrollPipes moves pipes left and drops those fully off-screen.
// Operates in place on the given slice.
func scrollPipes(pipes []Pipe, speed float64) []Pipe {
	kept := pipes[:0]
	for _, pipe := range pipes {
		pipe.X -= speed
		if pipe.X+pipe.Width > 0 {
			kept = append(kept, pipe)
		}
	}
	return kept
}

// collides reports whether the player box leaves the canvas vertically or
// overlaps either column of any pipe.
func collides(player core.Box, pipes []Pipe, p Params) bool {
	if player.Y < 0 || player.Bottom() > p.Height {
		return true
	}
	for _, pipe := range pipes {
		if player.Overlaps(pipe.TopBox()) || player.Overlaps(pipe.BottomBox(p.Height)) {
			return true
		}
	}
	return false
}
