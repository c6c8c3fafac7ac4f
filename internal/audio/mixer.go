// Package audio plays procedural sound effects for simulation events.
// Playback is fire-and-forget: nothing here can block or fail a tick.
package audio

import (
	"sync/atomic"

	"github.com/vovakirdan/twin-arcade/internal/core"
)

// Sound identifies a sound effect.
type Sound int

const (
	SoundFlap Sound = iota
	SoundScore
	SoundHit
	SoundMove
	SoundEat
	SoundGameOver
)

// Sounds lists every sound effect.
func Sounds() []Sound {
	return []Sound{SoundFlap, SoundScore, SoundHit, SoundMove, SoundEat, SoundGameOver}
}

func (s Sound) String() string {
	switch s {
	case SoundFlap:
		return "flap"
	case SoundScore:
		return "score"
	case SoundHit:
		return "hit"
	case SoundMove:
		return "move"
	case SoundEat:
		return "eat"
	case SoundGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// ForEvent maps a simulation event to its sound.
func ForEvent(e core.Event) (Sound, bool) {
	switch e {
	case core.EventFlap:
		return SoundFlap, true
	case core.EventScore:
		return SoundScore, true
	case core.EventCollision:
		return SoundHit, true
	case core.EventMove:
		return SoundMove, true
	case core.EventEat:
		return SoundEat, true
	case core.EventGameOver:
		return SoundGameOver, true
	default:
		return 0, false
	}
}

// Sink starts playback of a sound without waiting for it to finish.
type Sink interface {
	Play(s Sound)
}

// NopSink discards every sound.
type NopSink struct{}

// Play implements Sink.
func (NopSink) Play(Sound) {}

// Mixer routes events to a sink behind a global mute switch. It is safe
// for concurrent use, and a nil *Mixer is silent.
type Mixer struct {
	sink  Sink
	muted atomic.Bool
}

// NewMixer creates a mixer writing to sink. A nil sink is silent.
func NewMixer(sink Sink) *Mixer {
	if sink == nil {
		sink = NopSink{}
	}
	return &Mixer{sink: sink}
}

// Play triggers the sound for each event unless muted.
func (m *Mixer) Play(events ...core.Event) {
	if m == nil || m.muted.Load() {
		return
	}
	for _, e := range events {
		if s, ok := ForEvent(e); ok {
			m.sink.Play(s)
		}
	}
}

// SetMuted sets the mute switch.
func (m *Mixer) SetMuted(muted bool) {
	if m != nil {
		m.muted.Store(muted)
	}
}

// ToggleMute flips the mute switch and returns the new value.
func (m *Mixer) ToggleMute() bool {
	if m == nil {
		return true
	}
	for {
		old := m.muted.Load()
		if m.muted.CompareAndSwap(old, !old) {
			return !old
		}
	}
}

// Muted reports whether the mixer is muted.
func (m *Mixer) Muted() bool {
	return m == nil || m.muted.Load()
}
