package canvas

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/twin-arcade/internal/core"
)

// keyBinding maps one physical key to the actions it triggers.
type keyBinding struct {
	key     ebiten.Key
	actions []core.Action
}

// keyBindings mirrors the terminal keymap.
var keyBindings = []keyBinding{
	{ebiten.KeySpace, []core.Action{core.ActionFlap}},
	{ebiten.KeyArrowUp, []core.Action{core.ActionUp, core.ActionFlap}},
	{ebiten.KeyW, []core.Action{core.ActionUp, core.ActionFlap}},
	{ebiten.KeyArrowDown, []core.Action{core.ActionDown}},
	{ebiten.KeyS, []core.Action{core.ActionDown}},
	{ebiten.KeyArrowLeft, []core.Action{core.ActionLeft}},
	{ebiten.KeyA, []core.Action{core.ActionLeft}},
	{ebiten.KeyArrowRight, []core.Action{core.ActionRight}},
	{ebiten.KeyD, []core.Action{core.ActionRight}},
	{ebiten.KeyEnter, []core.Action{core.ActionConfirm}},
	{ebiten.KeyP, []core.Action{core.ActionPause}},
	{ebiten.KeyEscape, []core.Action{core.ActionPause}},
	{ebiten.KeyR, []core.Action{core.ActionRestart}},
	{ebiten.KeyM, []core.Action{core.ActionMute}},
	{ebiten.KeyQ, []core.Action{core.ActionQuit}},
	{ebiten.KeyDigit1, []core.Action{core.ActionDifficultyEasy}},
	{ebiten.KeyDigit2, []core.Action{core.ActionDifficultyNormal}},
	{ebiten.KeyDigit3, []core.Action{core.ActionDifficultyHard}},
}

// isPlatformAction reports whether the frontend handles a directly
// instead of forwarding it to the game.
func isPlatformAction(a core.Action) bool {
	switch a {
	case core.ActionQuit, core.ActionMute, core.ActionBack:
		return true
	}
	return false
}

// pointer is a press in logical canvas coordinates.
type pointer struct {
	X, Y int
}

// pressedKeys returns the actions of keys pressed since the last update.
func pressedKeys() []core.Action {
	var out []core.Action
	for _, b := range keyBindings {
		if inpututil.IsKeyJustPressed(b.key) {
			out = append(out, b.actions...)
		}
	}
	return out
}

// pressedPointers returns mouse clicks and new touches since the last update.
func pressedPointers() []pointer {
	var out []pointer
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		out = append(out, pointer{X: x, Y: y})
	}
	for _, id := range inpututil.AppendJustPressedTouchIDs(nil) {
		x, y := ebiten.TouchPosition(id)
		out = append(out, pointer{X: x, Y: y})
	}
	return out
}

// pointerActions translates a press into game actions. The flight game
// flaps anywhere; snake turns towards the side of the board that was hit,
// and a press on a finished board restarts it.
func pointerActions(gameID string, st core.GameState, p pointer, w, h int) []core.Action {
	switch gameID {
	case "flappy":
		return []core.Action{core.ActionFlap}
	case "snake":
		if st.GameOver {
			return []core.Action{core.ActionRestart}
		}
		if a := directionFromPoint(p.X, p.Y, w, h); a != core.ActionNone {
			return []core.Action{a}
		}
	}
	return nil
}

// directionFromPoint picks the direction from the canvas centre to (x, y)
// along the dominant axis. Horizontal wins ties; the exact centre yields
// ActionNone.
func directionFromPoint(x, y, w, h int) core.Action {
	dx, dy := 2*x-w, 2*y-h
	switch {
	case dx == 0 && dy == 0:
		return core.ActionNone
	case abs(dx) >= abs(dy):
		if dx > 0 {
			return core.ActionRight
		}
		return core.ActionLeft
	case dy > 0:
		return core.ActionDown
	default:
		return core.ActionUp
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
