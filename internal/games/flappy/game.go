package flappy

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/vovakirdan/twin-arcade/internal/config"
	"github.com/vovakirdan/twin-arcade/internal/core"
	"github.com/vovakirdan/twin-arcade/internal/registry"
)

// Visual characters for rendering
const (
	PlayerChar    = '▶'
	PlayerBody    = '●'
	PipeChar      = '█'
	PipeCapTop    = '▄'
	PipeCapBottom = '▀'
	BackdropChar  = '·'
)

// hudRows is the number of screen rows above the play field.
const hudRows = 1

// Game adapts the flight simulation to the registry.Game contract.
type Game struct {
	cfg     config.FlappyConfig
	params  Params
	state   State
	pending config.DifficultyPreset // Applied at the next round
	runtime core.RuntimeConfig
	rng     *rand.Rand
	loaded  bool
	tick    uint64
}

// New creates a new obstacle-flight game instance.
func New() *Game {
	return &Game{}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "flappy"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Flappy Bird"
}

// Reset starts a new round seeded from cfg.Seed. Configuration and the
// initial difficulty are read on the first call only; later calls keep the
// player's pending difficulty and the session high score.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	if !g.loaded {
		fc, err := config.LoadFlappy(cfg.ConfigPath)
		if err != nil {
			fc = config.DefaultFlappyConfig()
		}
		g.cfg = fc
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

// startRound applies the pending difficulty and rebuilds the state.
func (g *Game) startRound() {
	g.params = ParamsFrom(g.cfg, g.pending)
	g.state = NewState(g.params, g.pending, g.state.HighScore)
	g.tick = 0
}

// restart begins a fresh round on a seed drawn from the current stream,
// so consecutive rounds differ but a whole session stays reproducible.
func (g *Game) restart() {
	g.rng = rand.New(rand.NewSource(g.rng.Int63()))
	g.startRound()
}

// Step advances the game by one frame.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.rng == nil {
		g.Reset(core.DefaultConfig())
	}

	if in.Has(core.ActionRestart) {
		g.restart()
		return g.result(nil)
	}

	switch {
	case in.Has(core.ActionDifficultyEasy):
		g.pending = config.DifficultyEasy
	case in.Has(core.ActionDifficultyNormal):
		g.pending = config.DifficultyNormal
	case in.Has(core.ActionDifficultyHard):
		g.pending = config.DifficultyHard
	}

	if in.Has(core.ActionPause) && !g.state.Over {
		g.state.Paused = !g.state.Paused
	}

	if g.state.Over {
		// Click-to-replay
		if in.Has(core.ActionFlap) {
			g.restart()
		}
		return g.result(nil)
	}
	if g.state.Paused {
		return g.result(nil)
	}

	g.tick++
	intent := Intent{
		Flap:    in.Has(core.ActionFlap),
		Elapsed: in.ElapsedOr(g.runtime.TickRate),
	}
	var events []core.Event
	g.state, events = Advance(g.state, intent, g.params, g.rng)
	return g.result(events)
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

// Render draws the current game state to the screen. The logical canvas
// is scaled to fill everything below the HUD row.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if dst.Width() == 0 || dst.Height() <= hudRows || g.params.Width <= 0 {
		return
	}

	v := newViewport(dst, g.params)

	g.drawBackdrop(dst, v)
	for _, p := range g.state.Pipes {
		g.drawPipe(dst, v, p)
	}
	g.drawBird(dst, v)
	g.drawHUD(dst)

	switch {
	case g.state.Over:
		dst.DrawOverlay("GAME OVER", fmt.Sprintf("Score: %d  |  Space or R to restart", g.state.Score))
	case g.state.Paused:
		dst.DrawOverlay("PAUSED", "Press P to resume")
	}
}

// viewport maps canvas pixels onto screen cells.
type viewport struct {
	sx, sy float64
	rows   int
}

func newViewport(dst *core.Screen, p Params) viewport {
	rows := dst.Height() - hudRows
	return viewport{
		sx:   float64(dst.Width()) / p.Width,
		sy:   float64(rows) / p.Height,
		rows: rows,
	}
}

func (v viewport) col(x float64) int { return int(math.Floor(x * v.sx)) }
func (v viewport) row(y float64) int { return hudRows + int(math.Floor(y*v.sy)) }

// span converts a pixel interval to a half-open cell interval that is at
// least one cell wide.
func span(lo, hi int) (int, int) {
	return lo, max(hi, lo+1)
}

func (g *Game) drawBackdrop(dst *core.Screen, v viewport) {
	offset := v.col(-g.state.BackgroundX)
	y := dst.Height() - 1
	for x := range dst.Width() {
		if core.Wrap(x+offset, 6) == 0 {
			dst.SetColor(x, y, BackdropChar, core.ColorGray)
		}
	}
}

// drawPipe renders a single pipe to the screen.
func (g *Game) drawPipe(dst *core.Screen, v viewport, p Pipe) {
	x0, x1 := span(v.col(p.X), v.col(p.X+p.Width))
	gapTop := v.row(p.GapTop())
	gapBottom := v.row(p.GapBottom(g.params.Height))

	for x := x0; x < x1; x++ {
		for y := hudRows; y < gapTop; y++ {
			dst.SetColor(x, y, PipeChar, core.ColorGreen)
		}
		if gapTop > hudRows {
			dst.SetColor(x, gapTop-1, PipeCapTop, core.ColorBrightGreen)
		}
		for y := gapBottom; y < dst.Height(); y++ {
			dst.SetColor(x, y, PipeChar, core.ColorGreen)
		}
		if gapBottom < dst.Height() {
			dst.SetColor(x, gapBottom, PipeCapBottom, core.ColorBrightGreen)
		}
	}
}

func (g *Game) drawBird(dst *core.Screen, v viewport) {
	b := g.state.PlayerBox(g.params)
	x0, x1 := span(v.col(b.X), v.col(b.Right()))
	y0, y1 := span(v.row(b.Y), v.row(b.Bottom()))

	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			ch := PlayerBody
			if x == x1-1 && y == y0 {
				ch = PlayerChar
			}
			dst.SetColor(x, y, ch, core.ColorBrightYellow)
		}
	}
}

func (g *Game) drawHUD(dst *core.Screen) {
	hud := fmt.Sprintf(" Score: %d  Best: %d  [%s]", g.state.Score, g.state.HighScore, g.state.Difficulty)
	if g.pending != g.state.Difficulty {
		hud += fmt.Sprintf("  next: %s", g.pending)
	}
	dst.DrawTextColor(0, 0, hud, core.ColorBrightWhite)
}

// Register the game with the registry
func init() {
	registry.Register("flappy", func() registry.Game {
		return New()
	})
}
