package core

import (
	"maps"
	"time"
)

// Action is a semantic user intent, abstracted from physical keys, clicks
// and touches.
type Action int

const (
	ActionNone Action = iota
	ActionUp
	ActionDown
	ActionLeft
	ActionRight
	ActionFlap    // Space, click, tap
	ActionConfirm // Enter in menus
	ActionBack    // Return to menu
	ActionRestart
	ActionQuit
	ActionPause
	ActionMute
	ActionDifficultyEasy
	ActionDifficultyNormal
	ActionDifficultyHard
)

var actionNames = [...]string{
	ActionNone:             "None",
	ActionUp:               "Up",
	ActionDown:             "Down",
	ActionLeft:             "Left",
	ActionRight:            "Right",
	ActionFlap:             "Flap",
	ActionConfirm:          "Confirm",
	ActionBack:             "Back",
	ActionRestart:          "Restart",
	ActionQuit:             "Quit",
	ActionPause:            "Pause",
	ActionMute:             "Mute",
	ActionDifficultyEasy:   "DifficultyEasy",
	ActionDifficultyNormal: "DifficultyNormal",
	ActionDifficultyHard:   "DifficultyHard",
}

func (a Action) String() string {
	if a < 0 || int(a) >= len(actionNames) {
		return "Unknown"
	}
	return actionNames[a]
}

// InputFrame buffers the intents collected between two simulation ticks.
// Input may arrive at any time; games consume the whole frame atomically at
// the start of the next tick.
type InputFrame struct {
	Actions map[Action]bool

	// LastDirection is the most recent of Up, Down, Left and Right set
	// this frame, or ActionNone. The set alone cannot order two arrows
	// pressed within one tick.
	LastDirection Action

	// Elapsed is the wall time since the previous frame. Zero means the
	// game should assume its nominal tick interval.
	Elapsed time.Duration
}

// IsDirection reports whether a is one of the four arrow intents.
func (a Action) IsDirection() bool {
	return a == ActionUp || a == ActionDown || a == ActionLeft || a == ActionRight
}

// NewInputFrame returns a frame with no intents.
func NewInputFrame() InputFrame {
	return InputFrame{Actions: map[Action]bool{}}
}

// Set records intent a for this frame. Repeats collapse into one.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = map[Action]bool{}
	}
	f.Actions[a] = true
	if a.IsDirection() {
		f.LastDirection = a
	}
}

// Has reports whether a was recorded this frame.
func (f InputFrame) Has(a Action) bool {
	return f.Actions[a]
}

// Empty reports whether the frame holds no intents.
func (f InputFrame) Empty() bool {
	return len(f.Actions) == 0
}

// Clear drops all intents and the elapsed time, keeping the map.
func (f *InputFrame) Clear() {
	clear(f.Actions)
	f.LastDirection = ActionNone
	f.Elapsed = 0
}

// Clone returns an independent copy of f.
func (f InputFrame) Clone() InputFrame {
	c := f
	c.Actions = maps.Clone(f.Actions)
	if c.Actions == nil {
		c.Actions = map[Action]bool{}
	}
	return c
}

// ElapsedOr returns the frame's elapsed time, or the nominal interval for
// tickRate ticks per second when none was recorded.
func (f InputFrame) ElapsedOr(tickRate int) time.Duration {
	if f.Elapsed > 0 {
		return f.Elapsed
	}
	if tickRate <= 0 {
		tickRate = DefaultTickRate
	}
	return time.Second / time.Duration(tickRate)
}
