package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/twin-arcade/internal/core"
)

// gameKeys binds key names to game actions. One key can carry several
// intents: up is both a direction and a flap, esc both pauses and leaves.
var gameKeys = map[string][]core.Action{
	"ctrl+c": {core.ActionQuit},
	"q":      {core.ActionQuit},
	" ":      {core.ActionFlap},
	"w":      {core.ActionUp, core.ActionFlap},
	"up":     {core.ActionUp, core.ActionFlap},
	"s":      {core.ActionDown},
	"down":   {core.ActionDown},
	"a":      {core.ActionLeft},
	"left":   {core.ActionLeft},
	"d":      {core.ActionRight},
	"right":  {core.ActionRight},
	"enter":  {core.ActionConfirm},
	"p":      {core.ActionPause},
	"esc":    {core.ActionPause, core.ActionBack},
	"b":      {core.ActionBack},
	"r":      {core.ActionRestart},
	"m":      {core.ActionMute},
	"1":      {core.ActionDifficultyEasy},
	"2":      {core.ActionDifficultyNormal},
	"3":      {core.ActionDifficultyHard},
}

// MenuAction is what a key does on the game picker.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionBack
	MenuActionQuit
	MenuActionScoreboard
	MenuActionDifficulty // Cycle the starting difficulty
)

var menuKeys = map[string]MenuAction{
	"ctrl+c": MenuActionQuit,
	"q":      MenuActionQuit,
	"w":      MenuActionUp,
	"up":     MenuActionUp,
	"k":      MenuActionUp,
	"s":      MenuActionDown,
	"down":   MenuActionDown,
	"j":      MenuActionDown,
	"enter":  MenuActionSelect,
	" ":      MenuActionSelect,
	"b":      MenuActionBack,
	"esc":    MenuActionBack,
	"tab":    MenuActionScoreboard,
	"d":      MenuActionDifficulty,
	"left":   MenuActionDifficulty,
	"right":  MenuActionDifficulty,
}

// KeyMapper translates Bubble Tea key messages into game and menu actions.
type KeyMapper struct {
	game map[string][]core.Action
	menu map[string]MenuAction
}

// NewKeyMapper returns a mapper with the default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{game: gameKeys, menu: menuKeys}
}

// MapKey returns the game actions bound to msg, or nil.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) []core.Action {
	return km.game[msg.String()]
}

// MapKeyToFrame buffers the game intents of msg into frame. Platform
// actions (quit, back, mute) are returned instead so the caller can act on
// them at once.
func (km *KeyMapper) MapKeyToFrame(msg tea.KeyMsg, frame *core.InputFrame) (platform []core.Action) {
	for _, a := range km.MapKey(msg) {
		if isPlatformAction(a) {
			platform = append(platform, a)
			continue
		}
		frame.Set(a)
	}
	return platform
}

func isPlatformAction(a core.Action) bool {
	return a == core.ActionQuit || a == core.ActionBack || a == core.ActionMute
}

// MapKeyToMenuAction returns the menu action bound to msg.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	return km.menu[msg.String()]
}
