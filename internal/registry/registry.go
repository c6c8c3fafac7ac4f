// Package registry maps game IDs to factories. Game packages register
// from init, so a frontend only needs a blank import to offer a game.
package registry

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"sync"

	"github.com/vovakirdan/twin-arcade/internal/core"
)

// ErrUnknownGame is returned by Create for an unregistered ID.
var ErrUnknownGame = errors.New("registry: unknown game")

// Game is the contract between a simulation and the frontends driving it.
// Implementations are single-threaded: the loop driver that owns a Game is
// its only caller.
type Game interface {
	// ID returns a unique identifier ("flappy", "snake").
	// It is the CLI argument and the scoreboard key.
	ID() string

	// Title returns a human-readable name for menus.
	Title() string

	// Reset starts a new round. The session high score survives and any
	// pending difficulty selection takes effect.
	Reset(cfg core.RuntimeConfig)

	// Step consumes the buffered intents of one frame and advances the
	// simulation when it is running. Sound cues come back as events.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current state into dst. The screen is pre-cleared.
	Render(dst *core.Screen)

	// State returns the frontend-facing summary.
	State() core.GameState
}

// GameInfo describes a registered game for menus and listings.
type GameInfo struct {
	ID    string
	Title string
}

// Factory returns a new game that has not been Reset yet.
type Factory func() Game

type entry struct {
	title   string
	newGame Factory
}

var (
	mu    sync.RWMutex
	games = map[string]entry{}
)

// Register makes a game available under id. The factory is called once
// here to read the title. Registering an id twice panics.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, dup := games[id]; dup {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}
	games[id] = entry{title: f().Title(), newGame: f}
}

// List returns every registered game ordered by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	out := make([]GameInfo, 0, len(games))
	for _, id := range slices.Sorted(maps.Keys(games)) {
		out = append(out, GameInfo{ID: id, Title: games[id].title})
	}
	return out
}

// Create returns a new instance of the game registered as id.
func Create(id string) (Game, error) {
	mu.RLock()
	e, ok := games[id]
	mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownGame, id)
	}
	return e.newGame(), nil
}

// Exists reports whether id is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()
	_, ok := games[id]
	return ok
}
