// Package snake implements a wrap-around grid snake. The snake moves one
// cell per tick on a toroidal board, grows when it eats and dies when it
// runs into itself.
package snake

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/vovakirdan/twin-arcade/internal/config"
	"github.com/vovakirdan/twin-arcade/internal/core"
	"github.com/vovakirdan/twin-arcade/internal/registry"
)

// Visual characters for rendering
const (
	HeadChar = '█'
	BodyChar = '▓'
)

// foodGlyphs and foodColors are indexed by State.FoodKind.
var (
	foodGlyphs = [FoodKinds]rune{'●', '◆', '♥', '★', '♣', '♦'}
	foodColors = [FoodKinds]core.Color{
		core.ColorBrightRed, core.ColorYellow, core.ColorMagenta,
		core.ColorOrange, core.ColorCyan, core.ColorRed,
	}
)

// hudHeight is the number of rows above the board border.
const hudHeight = 2

// Game adapts the snake simulation to the registry.Game contract. Moves
// are gated by elapsed time so the board runs at the preset cadence
// regardless of frame rate.
type Game struct {
	cfg     config.SnakeConfig
	params  Params
	state   State
	pending config.DifficultyPreset
	runtime core.RuntimeConfig
	rng     *rand.Rand
	loaded  bool

	acc   time.Duration // Elapsed since the last move
	tick  uint64        // Frames stepped this round
	moves uint64        // Grid moves this round
}

// New creates a new Snake game.
func New() *Game {
	return &Game{}
}

func init() {
	registry.Register("snake", func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "snake"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Snake"
}

// Reset initializes/restarts the game. The config file and the starting
// difficulty are read on the first call; afterwards the pending difficulty
// and the session high score carry over.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	if !g.loaded {
		sc, err := config.LoadSnake(cfg.ConfigPath)
		if err != nil {
			sc = config.DefaultSnakeConfig()
		}
		g.cfg = sc
		g.pending, err = config.ParsePreset(cfg.Difficulty)
		if err != nil {
			g.pending = config.DifficultyNormal
		}
		g.loaded = true
	}
	g.runtime = cfg
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.startRound()
}

func (g *Game) startRound() {
	g.params = ParamsFrom(g.cfg, g.pending)
	g.state = NewState(g.params, g.pending, g.state.HighScore, g.rng)
	g.acc = 0
	g.tick = 0
	g.moves = 0
}

func (g *Game) restart() {
	g.rng = rand.New(rand.NewSource(g.rng.Int63()))
	g.startRound()
}

// Step advances the game by one frame.
func (g *Game) Step(input core.InputFrame) core.StepResult {
	if g.rng == nil {
		g.Reset(core.DefaultConfig())
	}

	if input.Has(core.ActionRestart) {
		g.restart()
		return g.result(nil)
	}

	switch {
	case input.Has(core.ActionDifficultyEasy):
		g.pending = config.DifficultyEasy
	case input.Has(core.ActionDifficultyNormal):
		g.pending = config.DifficultyNormal
	case input.Has(core.ActionDifficultyHard):
		g.pending = config.DifficultyHard
	}

	if input.Has(core.ActionPause) && !g.state.Over {
		g.state.Paused = !g.state.Paused
	}

	if g.state.Over || g.state.Paused {
		return g.result(nil)
	}

	g.tick++
	g.processInput(input)

	g.acc += input.ElapsedOr(g.runtime.TickRate)
	if g.acc <= g.params.TickInterval {
		return g.result(nil)
	}
	g.acc = 0
	g.moves++

	var events []core.Event
	g.state, events = Advance(g.state, g.params, g.rng)
	return g.result(events)
}

// processInput queues a direction change for the next move. When several
// arrows arrive in one frame the last one pressed wins.
func (g *Game) processInput(input core.InputFrame) {
	if d, ok := directionFor(input.LastDirection); ok {
		g.state = g.state.Turn(d)
		return
	}
	// Frames filled without Set carry no order; take any arrow present.
	for _, a := range []core.Action{core.ActionUp, core.ActionDown, core.ActionLeft, core.ActionRight} {
		if input.Has(a) {
			d, _ := directionFor(a)
			g.state = g.state.Turn(d)
			return
		}
	}
}

func directionFor(a core.Action) (Direction, bool) {
	switch a {
	case core.ActionUp:
		return DirUp, true
	case core.ActionDown:
		return DirDown, true
	case core.ActionLeft:
		return DirLeft, true
	case core.ActionRight:
		return DirRight, true
	}
	return 0, false
}

func (g *Game) result(events []core.Event) core.StepResult {
	return core.StepResult{State: g.State(), Events: events}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:      g.state.Score,
		HighScore:  g.state.HighScore,
		GameOver:   g.state.Over,
		Paused:     g.state.Paused,
		Difficulty: string(g.state.Difficulty),
	}
}

// Pending returns the difficulty the next round will use.
func (g *Game) Pending() config.DifficultyPreset {
	return g.pending
}

// Render draws the game to the screen. Each grid cell is two columns wide
// so the board looks square in a terminal.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	g.renderHUD(dst)

	size := g.params.GridSize
	boardW, boardH := size*2+2, size+2
	if dst.Width() < boardW || dst.Height() < boardH+hudHeight {
		dst.DrawOverlay("Window too small", fmt.Sprintf("Need %dx%d", boardW, boardH+hudHeight))
		return
	}

	ox := (dst.Width() - boardW) / 2
	oy := hudHeight
	dst.DrawBox(core.NewRect(ox, oy, boardW, boardH))

	cell := func(p Point, ch rune, c core.Color) {
		x, y := ox+1+p.X*2, oy+1+p.Y
		dst.SetColor(x, y, ch, c)
		dst.SetColor(x+1, y, ch, c)
	}

	if g.state.Food != NoFood {
		kind := g.state.FoodKind % FoodKinds
		x, y := ox+1+g.state.Food.X*2, oy+1+g.state.Food.Y
		dst.SetColor(x, y, foodGlyphs[kind], foodColors[kind])
	}
	for i := len(g.state.Body) - 1; i >= 0; i-- {
		if i == 0 {
			cell(g.state.Body[i], HeadChar, core.ColorBrightGreen)
		} else {
			cell(g.state.Body[i], BodyChar, core.ColorGreen)
		}
	}

	switch {
	case g.state.Over:
		dst.DrawOverlay("Game Over", fmt.Sprintf("Score: %d  |  Press R to restart", g.state.Score))
	case g.state.Paused:
		dst.DrawOverlay("Paused", "Press P to continue")
	}
}

// renderHUD draws the top status bar.
func (g *Game) renderHUD(dst *core.Screen) {
	hud := fmt.Sprintf(" Snake  Score: %d  Best: %d  [%s]", g.state.Score, g.state.HighScore, g.state.Difficulty)
	if g.pending != g.state.Difficulty {
		hud += fmt.Sprintf("  next: %s", g.pending)
	}
	dst.DrawTextColor(0, 0, hud, core.ColorBrightWhite)
	dst.DrawHLine(0, 1, dst.Width(), '─')
}
