package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/twin-arcade/internal/config"
	"github.com/vovakirdan/twin-arcade/internal/core"
	"github.com/vovakirdan/twin-arcade/internal/registry"
	"github.com/vovakirdan/twin-arcade/internal/storage"
)

const menuHint = "↑/↓ choose · enter play · d difficulty · tab scores · q quit"

var (
	menuTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	menuActive     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11"))
	menuMuted      = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	menuCard       = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).Padding(0, 2).Width(30)
	menuCardActive = menuCard.BorderForeground(lipgloss.Color("11"))
)

// MenuItem is one playable game on the picker.
type MenuItem struct {
	GameID string
	Title  string
	Best   int // Best score this session
	Rounds int // Rounds finished this session
}

// MenuModel is the game picker. It also owns the difficulty the next game
// starts at.
type MenuModel struct {
	items  []MenuItem
	cursor int
	width  int
	height int
	store  *storage.Store
	config core.RuntimeConfig
	keys   *KeyMapper

	// Outcomes; at most one is set.
	quitting  bool
	selected  *MenuItem
	wantBoard bool
}

// NewMenuModel lists every registered game with its session stats from
// store, which may be nil. An unknown difficulty in cfg becomes normal.
func NewMenuModel(store *storage.Store, cfg core.RuntimeConfig) MenuModel {
	preset, err := config.ParsePreset(cfg.Difficulty)
	if err != nil {
		preset = config.DifficultyNormal
	}
	cfg.Difficulty = string(preset)

	return MenuModel{
		items:  menuItems(store),
		width:  cfg.ScreenW,
		height: cfg.ScreenH,
		store:  store,
		config: cfg,
		keys:   NewKeyMapper(),
	}
}

func menuItems(store *storage.Store) []MenuItem {
	games := registry.List()
	items := make([]MenuItem, len(games))
	for i, g := range games {
		items[i] = MenuItem{GameID: g.ID, Title: g.Title}
		if store == nil {
			continue
		}
		if st, err := store.Stats(g.ID); err == nil {
			items[i].Best, items[i].Rounds = st.Best, st.Rounds
		}
	}
	return items
}

// Init implements tea.Model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model. Choosing a game or the scoreboard ends the
// program; callers read the outcome afterwards.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.config.ScreenW, m.config.ScreenH = msg.Width, msg.Height
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keys.MapKeyToMenuAction(msg) {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit
	case MenuActionUp:
		m.cursor = max(m.cursor-1, 0)
	case MenuActionDown:
		m.cursor = min(m.cursor+1, max(len(m.items)-1, 0))
	case MenuActionDifficulty:
		m.config.Difficulty = string(nextPreset(config.DifficultyPreset(m.config.Difficulty)))
	case MenuActionScoreboard:
		m.wantBoard = true
		return m, tea.Quit
	case MenuActionSelect:
		if len(m.items) == 0 {
			break
		}
		item := m.items[m.cursor]
		m.selected = &item
		return m, tea.Quit
	}
	return m, nil
}

// nextPreset cycles easy, normal, hard and back to easy.
func nextPreset(d config.DifficultyPreset) config.DifficultyPreset {
	presets := config.Presets()
	for i, p := range presets {
		if p == d {
			return presets[(i+1)%len(presets)]
		}
	}
	return config.DifficultyNormal
}

// View implements tea.Model.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	cards := make([]string, len(m.items))
	for i, item := range m.items {
		cards[i] = m.card(item, i == m.cursor)
	}

	blocks := []string{
		"",
		centerStyled(menuTitleStyle.Render("T W I N   A R C A D E"), m.width),
		"",
		centerStyled(lipgloss.JoinVertical(lipgloss.Left, cards...), m.width),
		"",
		centerText(fmt.Sprintf("Difficulty: < %s >", m.config.Difficulty), m.width),
		"",
		centerStyled(menuMuted.Render(menuHint), m.width),
		"",
	}
	return strings.Join(blocks, "\n")
}

func (m MenuModel) card(item MenuItem, active bool) string {
	title, style := item.Title, menuCard
	if active {
		title, style = menuActive.Render("▶ "+item.Title), menuCardActive
	}
	stats := menuMuted.Render(fmt.Sprintf("best %d · %d rounds", item.Best, item.Rounds))
	return style.Render(title + "\n" + stats)
}

// Selected returns the chosen game, or nil.
func (m MenuModel) Selected() *MenuItem {
	return m.selected
}

// IsQuitting reports whether the player left the arcade.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// WantsScoreboard reports whether the player opened the scoreboard.
func (m MenuModel) WantsScoreboard() bool {
	return m.wantBoard
}

// Config returns the runtime config with the chosen difficulty and the
// last known window size.
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

func centerText(text string, width int) string {
	return centerStyled(text, width)
}

// centerStyled pads text on the left to centre it by printable width, so
// ANSI styling does not skew it.
func centerStyled(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}

// MenuResult is the outcome of a standalone menu program.
type MenuResult struct {
	GameID          string
	Config          core.RuntimeConfig
	WantsScoreboard bool
	Quit            bool
}

func (m MenuModel) result() MenuResult {
	res := MenuResult{Config: m.Config()}
	switch {
	case m.wantBoard:
		res.WantsScoreboard = true
	case m.selected != nil && !m.quitting:
		res.GameID = m.selected.GameID
	default:
		// Quit, or the program ended without a choice.
		res.Quit = true
	}
	return res
}

// RunMenu shows the menu in its own program and reports the choice.
func RunMenu(store *storage.Store, cfg core.RuntimeConfig) (MenuResult, error) {
	final, err := tea.NewProgram(NewMenuModel(store, cfg), tea.WithAltScreen()).Run()
	if err != nil {
		return MenuResult{Config: cfg}, err
	}
	if m, ok := final.(MenuModel); ok {
		return m.result(), nil
	}
	return MenuResult{Config: cfg, Quit: true}, nil
}
