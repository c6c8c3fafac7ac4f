package snake

import (
	"slices"
	"time"

	"github.com/vovakirdan/twin-arcade/internal/config"
)

// Snapshot captures the complete game state for determinism testing and
// pixel renderers. It shares no memory with the running game.
type Snapshot struct {
	Tick        uint64
	Moves       uint64
	State       State
	Params      Params
	Pending     config.DifficultyPreset
	Accumulated time.Duration
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	st := g.state
	st.Body = slices.Clone(g.state.Body)
	return Snapshot{
		Tick:        g.tick,
		Moves:       g.moves,
		State:       st,
		Params:      g.params,
		Pending:     g.pending,
		Accumulated: g.acc,
	}
}
