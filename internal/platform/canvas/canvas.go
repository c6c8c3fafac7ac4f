// Package canvas is the pixel frontend: an ebiten window that paints game
// snapshots with vector primitives and feeds keyboard, mouse and touch
// input into the same action model as the terminal.
package canvas

import (
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/twin-arcade/internal/audio"
	"github.com/vovakirdan/twin-arcade/internal/core"
	"github.com/vovakirdan/twin-arcade/internal/games/flappy"
	"github.com/vovakirdan/twin-arcade/internal/games/snake"
	"github.com/vovakirdan/twin-arcade/internal/registry"
)

// ErrUnsupportedGame is returned for games without a pixel renderer.
var ErrUnsupportedGame = errors.New("canvas: no pixel renderer for game")

// Window implements ebiten.Game for one arcade game. Update runs at a
// fixed TPS and advances the game by 1/TPS of simulated time.
type Window struct {
	game   registry.Game
	mixer  *audio.Mixer
	logger *log.Logger
	frame  core.InputFrame
	state  core.GameState
	tps    int
}

// New resets the game and wraps it in a window. The mixer and logger may
// be nil.
func New(game registry.Game, cfg core.RuntimeConfig, mixer *audio.Mixer, logger *log.Logger) (*Window, error) {
	switch game.(type) {
	case *flappy.Game, *snake.Game:
	default:
		return nil, fmt.Errorf("%w %q", ErrUnsupportedGame, game.ID())
	}
	if logger == nil {
		logger = log.Default()
	}
	tps := cfg.TickRate
	if tps <= 0 {
		tps = core.DefaultTickRate
	}

	game.Reset(cfg)
	return &Window{
		game:   game,
		mixer:  mixer,
		logger: logger,
		frame:  core.NewInputFrame(),
		state:  game.State(),
		tps:    tps,
	}, nil
}

// Update collects input and steps the game once.
func (w *Window) Update() error {
	actions := pressedKeys()
	width, height := w.size()
	for _, p := range pressedPointers() {
		actions = append(actions, pointerActions(w.game.ID(), w.state, p, width, height)...)
	}

	for _, a := range actions {
		if !isPlatformAction(a) {
			w.frame.Set(a)
			continue
		}
		switch a {
		case core.ActionQuit:
			return ebiten.Termination
		case core.ActionMute:
			muted := w.mixer.ToggleMute()
			w.logger.Debug("mute toggled", "muted", muted)
		}
	}

	w.frame.Elapsed = time.Second / time.Duration(w.tps)
	result := w.game.Step(w.frame)
	w.frame.Clear()

	if result.State.GameOver && !w.state.GameOver {
		w.logger.Info("round over", "game", w.game.ID(), "score", result.State.Score, "difficulty", result.State.Difficulty)
	}
	w.state = result.State
	w.mixer.Play(result.Events...)
	return nil
}

// Draw replays the current scene onto the screen.
func (w *Window) Draw(screen *ebiten.Image) {
	sc := w.scene()
	screen.Fill(sc.Background)
	for _, r := range sc.Rects {
		vector.DrawFilledRect(screen, r.X, r.Y, r.W, r.H, r.Color, false)
	}
	for _, l := range sc.Labels {
		ebitenutil.DebugPrintAt(screen, l.Text, l.X, l.Y)
	}
}

// Layout fixes the logical resolution to the game's native canvas; ebiten
// scales it to the window.
func (w *Window) Layout(_, _ int) (int, int) {
	return w.size()
}

func (w *Window) size() (int, int) {
	switch g := w.game.(type) {
	case *flappy.Game:
		p := g.Snapshot().Params
		return int(p.Width), int(p.Height)
	case *snake.Game:
		n := g.Snapshot().Params.GridSize
		return n * cellSize, n*cellSize + hudPixels
	}
	return 320, 240
}

func (w *Window) scene() scene {
	switch g := w.game.(type) {
	case *flappy.Game:
		return flappyScene(g.Snapshot())
	case *snake.Game:
		return snakeScene(g.Snapshot())
	}
	return scene{}
}

// Run opens a window for the game and blocks until it is closed or the
// player quits.
func Run(game registry.Game, cfg core.RuntimeConfig, mixer *audio.Mixer, logger *log.Logger) error {
	w, err := New(game, cfg, mixer, logger)
	if err != nil {
		return err
	}

	width, height := w.size()
	ebiten.SetWindowSize(width, height)
	ebiten.SetWindowTitle("Twin Arcade - " + game.Title())
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(w.tps)

	if err := ebiten.RunGame(w); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("canvas: %w", err)
	}
	return nil
}
