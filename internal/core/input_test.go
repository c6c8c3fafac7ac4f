package core

import (
	"testing"
	"time"
)

func TestInputFrame(t *testing.T) {
	var f InputFrame
	if f.Has(ActionFlap) {
		t.Error("zero frame should have no actions")
	}
	if !f.Empty() {
		t.Error("zero frame should be empty")
	}

	f.Set(ActionFlap)
	f.Set(ActionPause)
	f.Elapsed = 20 * time.Millisecond

	clone := f.Clone()
	f.Clear()

	if f.Has(ActionFlap) || f.Elapsed != 0 {
		t.Error("Clear should drop actions and elapsed time")
	}
	if !clone.Has(ActionFlap) || !clone.Has(ActionPause) {
		t.Error("Clone should be independent of the original")
	}
	if clone.Elapsed != 20*time.Millisecond {
		t.Errorf("Clone elapsed = %v, expected 20ms", clone.Elapsed)
	}
}

func TestInputFrameLastDirection(t *testing.T) {
	f := NewInputFrame()
	if f.LastDirection != ActionNone {
		t.Fatalf("new frame LastDirection = %v", f.LastDirection)
	}

	f.Set(ActionDown)
	f.Set(ActionUp)
	f.Set(ActionFlap) // not a direction
	if f.LastDirection != ActionUp {
		t.Errorf("LastDirection = %v, expected Up", f.LastDirection)
	}
	if c := f.Clone(); c.LastDirection != ActionUp {
		t.Errorf("Clone lost LastDirection: %v", c.LastDirection)
	}

	f.Clear()
	if f.LastDirection != ActionNone {
		t.Errorf("Clear left LastDirection = %v", f.LastDirection)
	}
}

func TestInputFrameElapsedOr(t *testing.T) {
	f := NewInputFrame()
	if got := f.ElapsedOr(50); got != 20*time.Millisecond {
		t.Errorf("ElapsedOr(50) = %v, expected 20ms", got)
	}
	if got := f.ElapsedOr(0); got != time.Second/DefaultTickRate {
		t.Errorf("ElapsedOr(0) = %v, expected default interval", got)
	}

	f.Elapsed = 5 * time.Millisecond
	if got := f.ElapsedOr(60); got != 5*time.Millisecond {
		t.Errorf("recorded elapsed should win, got %v", got)
	}
}

func TestActionString(t *testing.T) {
	if ActionDifficultyHard.String() != "DifficultyHard" {
		t.Errorf("unexpected name %q", ActionDifficultyHard.String())
	}
	if Action(999).String() != "Unknown" {
		t.Error("out-of-range action should be Unknown")
	}
}
