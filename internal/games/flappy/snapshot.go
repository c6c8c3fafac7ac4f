package flappy

import (
	"slices"

	"github.com/vovakirdan/twin-arcade/internal/config"
)

// Snapshot captures the complete round for pixel renderers and
// determinism testing. It shares no memory with the running game.
type Snapshot struct {
	Tick    uint64
	State   State
	Params  Params
	Pending config.DifficultyPreset
}

// Snapshot returns a copy of the current round.
func (g *Game) Snapshot() Snapshot {
	st := g.state
	st.Pipes = slices.Clone(g.state.Pipes)
	return Snapshot{
		Tick:    g.tick,
		State:   st,
		Params:  g.params,
		Pending: g.pending,
	}
}
