package tui

import (
	"math/rand"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"github.com/vovakirdan/twin-arcade/internal/core"
	"github.com/vovakirdan/twin-arcade/internal/registry"
	"github.com/vovakirdan/twin-arcade/internal/storage"
)

// SessionModel drives one SSH connection inside a single program: the menu,
// then a game or the scoreboard, then the menu again. At most one of
// gameModel and board is set; with neither, the menu is showing.
type SessionModel struct {
	store     *storage.Store
	config    core.RuntimeConfig
	username  string
	sessionID string
	seeds     *rand.Rand // One seed per round, drawn from the session seed

	menu      MenuModel
	board     *ScoreboardModel
	gameModel *GameModel
	quitting  bool
}

// NewSessionModel starts a session at the menu. Rounds are recorded under
// username. Each game picked gets its own seed drawn from cfg.Seed, or from
// the clock when it is zero.
func NewSessionModel(store *storage.Store, cfg core.RuntimeConfig, username string) SessionModel {
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return SessionModel{
		store:     store,
		config:    cfg,
		username:  username,
		sessionID: uuid.NewString(),
		seeds:     rand.New(rand.NewSource(seed)),
		menu:      NewMenuModel(store, cfg),
	}
}

// roundSeed returns a non-zero seed for the next game.
func (m SessionModel) roundSeed() int64 {
	for {
		if s := m.seeds.Int63(); s != 0 {
			return s
		}
	}
}

// ID returns the random session identifier used in logs.
func (m SessionModel) ID() string {
	return m.sessionID
}

// Init implements tea.Model.
func (m SessionModel) Init() tea.Cmd {
	return m.menu.Init()
}

// Update implements tea.Model.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if size, ok := msg.(tea.WindowSizeMsg); ok {
		m.config.ScreenW, m.config.ScreenH = size.Width, size.Height
	}

	if m.gameModel != nil {
		return m.updateGame(msg)
	}
	if m.board != nil {
		return m.updateBoard(msg)
	}
	return m.updateMenu(msg)
}

func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.menu.Update(msg)
	if menu, ok := next.(MenuModel); ok {
		m.menu = menu
	}

	switch {
	case m.menu.IsQuitting():
		return m.quit()
	case m.menu.WantsScoreboard():
		m.config = m.menu.Config()
		board := NewScoreboardModel(m.store, m.config.ScreenW, m.config.ScreenH)
		m.board = &board
		return m, board.Init()
	case m.menu.Selected() != nil:
		m.config = m.menu.Config()
		return m.startGame(m.menu.Selected().GameID)
	}
	return m, cmd
}

// startGame swaps the menu for a fresh round of gameID. An unknown game
// reopens the menu.
func (m SessionModel) startGame(gameID string) (tea.Model, tea.Cmd) {
	game, err := registry.Create(gameID)
	if err != nil {
		return m.toMenu()
	}
	cfg := m.config
	cfg.Seed = m.roundSeed()
	gm := NewGameModel(game, cfg, Options{
		Store:  m.store,
		Player: m.username,
		Menu:   true,
	})
	gm.embedded = true
	m.gameModel = &gm
	return m, gm.Init()
}

func (m SessionModel) updateBoard(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.board.Update(msg)
	if board, ok := next.(ScoreboardModel); ok {
		m.board = &board
	}

	switch {
	case m.board.IsQuitting():
		return m.quit()
	case m.board.IsGoingBack():
		return m.toMenu()
	}
	return m, cmd
}

func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.gameModel.Update(msg)
	if gm, ok := next.(GameModel); ok {
		m.gameModel = &gm
	}

	switch {
	case m.gameModel.BackToMenu():
		return m.toMenu()
	case m.gameModel.IsQuitting():
		return m.quit()
	}
	return m, cmd
}

// toMenu drops the game or board and shows a new menu that keeps the
// session's settings.
func (m SessionModel) toMenu() (tea.Model, tea.Cmd) {
	m.gameModel, m.board = nil, nil
	m.menu = NewMenuModel(m.store, m.config)
	return m, m.menu.Init()
}

func (m SessionModel) quit() (tea.Model, tea.Cmd) {
	m.quitting = true
	return m, tea.Quit
}

// View implements tea.Model.
func (m SessionModel) View() string {
	switch {
	case m.quitting:
		return ""
	case m.gameModel != nil:
		return m.gameModel.View()
	case m.board != nil:
		return m.board.View()
	}
	return m.menu.View()
}
