// Package tui is the Bubble Tea frontend: the terminal loop driver, input
// mapping, menus, the session scoreboard and the SSH server.
package tui

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/twin-arcade/internal/core"
)

// maxFrameTime caps the elapsed time fed into one step so a stalled
// terminal does not fast-forward the simulation.
const maxFrameTime = 250 * time.Millisecond

// TickMsg is sent to trigger a game simulation tick. Loop identifies the
// tick chain that produced it, so a model ignores ticks left over from a
// previous game.
type TickMsg struct {
	Time time.Time
	Loop int64
}

// loopSeq hands out tick chain identifiers.
var loopSeq atomic.Int64

// nextLoop returns a fresh tick chain identifier.
func nextLoop() int64 {
	return loopSeq.Add(1)
}

// tickInterval returns the nominal frame duration for a tick rate.
func tickInterval(tickRate int) time.Duration {
	if tickRate <= 0 {
		tickRate = core.DefaultTickRate
	}
	return time.Second / time.Duration(tickRate)
}

// tickCmd returns a Bubble Tea command that sends one tick after the
// nominal interval. The loop driver reschedules it while the game runs.
func tickCmd(tickRate int, loop int64) tea.Cmd {
	return tea.Tick(tickInterval(tickRate), func(t time.Time) tea.Msg {
		return TickMsg{Time: t, Loop: loop}
	})
}

// frameTime returns the time since the previous tick, falling back to the
// nominal interval when there is no previous tick or the clock went
// backwards.
func frameTime(prev, now time.Time, tickRate int) time.Duration {
	if prev.IsZero() || !now.After(prev) {
		return tickInterval(tickRate)
	}
	return min(now.Sub(prev), maxFrameTime)
}
