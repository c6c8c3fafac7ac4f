package tui

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/twin-arcade/internal/audio"
	"github.com/vovakirdan/twin-arcade/internal/core"
	"github.com/vovakirdan/twin-arcade/internal/registry"
	"github.com/vovakirdan/twin-arcade/internal/storage"
)

// Options wires optional collaborators into a game model. Every field may
// be left zero.
type Options struct {
	Store  *storage.Store // Session scoreboard
	Mixer  *audio.Mixer   // Sound effects
	Player string         // Name recorded with saved scores
	Logger *log.Logger    // Reports failed score saves

	// Menu enables leaving the game with b/esc while paused or over.
	Menu bool
}

// GameModel is the Bubble Tea model driving one game. It is the loop
// driver: each tick consumes the buffered intents, steps the game and
// forwards events to the mixer. The tick chain stops while the game is
// paused or over and restarts on the next key press.
type GameModel struct {
	game       registry.Game
	screen     *core.Screen
	opts       Options
	config     core.RuntimeConfig
	keyMapper  *KeyMapper
	inputFrame core.InputFrame
	gameState  core.GameState
	lastTick   time.Time
	loop       int64 // Current tick chain
	running    bool  // A tick is scheduled
	embedded   bool  // Owned by a SessionModel; never quits the program itself
	quitting   bool
	backToMenu bool
	scoreSaved bool // Whether score has been saved for current game over
}

// NewGameModel creates a new Bubble Tea model for the given game.
func NewGameModel(game registry.Game, cfg core.RuntimeConfig, opts Options) GameModel {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	return GameModel{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		opts:       opts,
		config:     cfg,
		keyMapper:  NewKeyMapper(),
		inputFrame: core.NewInputFrame(),
		loop:       nextLoop(),
		running:    true,
	}
}

// Init resets the game and starts the tick loop.
func (m GameModel) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tickCmd(m.config.TickRate, m.loop)
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		// Renderers scale to the screen, so a resize never resets the round.
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		if msg.Loop != m.loop {
			return m, nil
		}
		return m.handleTick(msg.Time)
	}

	return m, nil
}

// handleKey buffers game intents and handles platform keys immediately.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	for _, a := range m.keyMapper.MapKeyToFrame(msg, &m.inputFrame) {
		switch a {
		case core.ActionQuit:
			m.quitting = true
			return m, tea.Quit
		case core.ActionMute:
			m.opts.Mixer.ToggleMute()
		case core.ActionBack:
			if m.opts.Menu && (m.gameState.GameOver || m.gameState.Paused) {
				m.backToMenu = true
				m.inputFrame.Clear()
				if m.embedded {
					return m, nil
				}
				return m, tea.Quit
			}
		}
	}

	return m.resume()
}

// resume restarts the tick chain if it was suspended and input is waiting.
func (m GameModel) resume() (tea.Model, tea.Cmd) {
	if m.running || m.inputFrame.Empty() {
		return m, nil
	}
	m.running = true
	m.loop = nextLoop()
	m.lastTick = time.Time{} // First tick after a resume uses the nominal interval
	return m, tickCmd(m.config.TickRate, m.loop)
}

// handleTick processes one simulation tick.
func (m GameModel) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	m.inputFrame.Elapsed = frameTime(m.lastTick, now, m.config.TickRate)
	m.lastTick = now

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	m.opts.Mixer.Play(result.Events...)
	m.inputFrame.Clear()

	m.recordScore()

	if m.gameState.Paused || m.gameState.GameOver {
		m.running = false
		return m, nil
	}
	return m, tickCmd(m.config.TickRate, m.loop)
}

// recordScore saves the score once per game over. Rounds ending on zero
// are not worth a row.
func (m *GameModel) recordScore() {
	switch {
	case !m.gameState.GameOver:
		m.scoreSaved = false
		return
	case m.scoreSaved, m.gameState.Score == 0:
		return
	}
	m.scoreSaved = true
	if m.opts.Store == nil {
		return
	}
	_, err := m.opts.Store.SaveScore(m.game.ID(), m.gameState.Score, m.gameState.Difficulty, m.opts.Player)
	if err != nil && m.opts.Logger != nil {
		m.opts.Logger.Warn("score not saved", "game", m.game.ID(), "error", err)
	}
}

// View renders the current state to a string for display.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	m.drawStatus()
	return RenderScreen(m.screen)
}

// drawStatus right-aligns the sound and menu hints on the top row.
func (m GameModel) drawStatus() {
	var parts []string
	if m.opts.Menu && (m.gameState.GameOver || m.gameState.Paused) {
		parts = append(parts, "[b] menu")
	}
	switch {
	case m.opts.Mixer == nil:
	case m.opts.Mixer.Muted():
		parts = append(parts, "[m] muted")
	default:
		parts = append(parts, "[m] sound")
	}
	if len(parts) == 0 {
		return
	}
	status := strings.Join(parts, "  ") + " "
	m.screen.DrawTextColor(m.screen.Width()-len(status), 0, status, core.ColorGray)
}

// State returns the last observed game state.
func (m GameModel) State() core.GameState {
	return m.gameState
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// Run plays game in its own program until the player quits or, with
// Options.Menu, asks for the menu.
func Run(game registry.Game, cfg core.RuntimeConfig, opts Options) (backToMenu bool, err error) {
	final, err := tea.NewProgram(NewGameModel(game, cfg, opts), tea.WithAltScreen()).Run()
	if err != nil {
		return false, err
	}
	m, ok := final.(GameModel)
	return ok && m.BackToMenu(), nil
}
