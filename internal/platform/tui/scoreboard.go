package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/twin-arcade/internal/config"
	"github.com/vovakirdan/twin-arcade/internal/registry"
	"github.com/vovakirdan/twin-arcade/internal/storage"
)

// boardRows is the number of rounds listed per game and filter.
const boardRows = 50

var (
	boardTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	boardTabStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Padding(0, 1)
	boardActiveTab  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229")).
			Background(lipgloss.Color("57")).Padding(0, 1)
	boardFrameStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).Padding(0, 1)
	boardDimStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// scoreboardKeys are the scoreboard bindings, shown in the help bar.
type scoreboardKeys struct {
	NextGame key.Binding
	PrevGame key.Binding
	Filter   key.Binding
	Up       key.Binding
	Down     key.Binding
	Back     key.Binding
	Quit     key.Binding
}

func (k scoreboardKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.NextGame, k.Filter, k.Up, k.Down, k.Back, k.Quit}
}

func (k scoreboardKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.NextGame, k.PrevGame, k.Filter},
		{k.Up, k.Down},
		{k.Back, k.Quit},
	}
}

func newScoreboardKeys() scoreboardKeys {
	return scoreboardKeys{
		NextGame: key.NewBinding(key.WithKeys("tab", "right", "l"), key.WithHelp("tab", "next game")),
		PrevGame: key.NewBinding(key.WithKeys("shift+tab", "left", "h"), key.WithHelp("S-tab", "prev game")),
		Filter:   key.NewBinding(key.WithKeys("d", "f"), key.WithHelp("d", "difficulty")),
		Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Back:     key.NewBinding(key.WithKeys("esc", "b"), key.WithHelp("esc", "menu")),
		Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// boardFilters lists the difficulty filters in cycle order; "" shows all.
func boardFilters() []string {
	filters := []string{""}
	for _, p := range config.Presets() {
		filters = append(filters, string(p))
	}
	return filters
}

// ScoreboardModel shows the rounds finished this session, one game at a
// time, optionally narrowed to a single difficulty.
type ScoreboardModel struct {
	store   *storage.Store
	games   []registry.GameInfo
	filters []string
	game    int // Index into games
	filter  int // Index into filters

	entries []storage.ScoreEntry
	stats   storage.Stats
	table   table.Model
	help    help.Model
	keys    scoreboardKeys

	width, height int
	quitting      bool
	back          bool
}

// NewScoreboardModel creates a scoreboard reading from store, which may be
// nil.
func NewScoreboardModel(store *storage.Store, width, height int) ScoreboardModel {
	m := ScoreboardModel{
		store:   store,
		games:   registry.List(),
		filters: boardFilters(),
		help:    help.New(),
		keys:    newScoreboardKeys(),
		width:   width,
		height:  height,
	}
	m.table = newScoreTable(width, height)
	m.refresh()
	return m
}

// newScoreTable builds an empty table sized for the terminal. The player
// column absorbs any spare width.
func newScoreTable(width, height int) table.Model {
	player := max(10, min(width-52, 24))
	cols := []table.Column{
		{Title: "#", Width: 4},
		{Title: "Score", Width: 7},
		{Title: "Level", Width: 8},
		{Title: "Player", Width: player},
		{Title: "Ended", Width: 9},
	}

	styles := table.DefaultStyles()
	styles.Header = styles.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	styles.Selected = styles.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)

	return table.New(
		table.WithColumns(cols),
		table.WithFocused(true),
		table.WithHeight(max(height-12, 3)), // title, tabs, filter, stats, frame, help
		table.WithStyles(styles),
	)
}

// currentGame returns the selected game ID, or "" without games.
func (m ScoreboardModel) currentGame() string {
	if len(m.games) == 0 {
		return ""
	}
	return m.games[m.game].ID
}

// refresh reloads rows and stats for the current game and filter.
func (m *ScoreboardModel) refresh() {
	m.entries, m.stats = nil, storage.Stats{}
	if id := m.currentGame(); m.store != nil && id != "" {
		if entries, err := m.store.Top(storage.Filter{
			GameID:     id,
			Difficulty: m.filters[m.filter],
			Limit:      boardRows,
		}); err == nil {
			m.entries = entries
		}
		if st, err := m.store.Stats(id); err == nil {
			m.stats = st
		}
	}

	rows := make([]table.Row, 0, len(m.entries))
	for i, e := range m.entries {
		rows = append(rows, table.Row{
			strconv.Itoa(i + 1),
			strconv.Itoa(e.Score),
			e.Difficulty,
			playerName(e.Player),
			e.CreatedAt.Format("15:04:05"),
		})
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// playerName returns the display name for a score row.
func playerName(p string) string {
	if p == "" {
		return "-"
	}
	return p
}

// Init implements tea.Model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.table = newScoreTable(m.width, m.height)
		m.refresh()
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Back):
			m.back = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.NextGame):
			m.cycleGame(1)
			return m, nil
		case key.Matches(msg, m.keys.PrevGame):
			m.cycleGame(-1)
			return m, nil
		case key.Matches(msg, m.keys.Filter):
			m.filter = (m.filter + 1) % len(m.filters)
			m.refresh()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m *ScoreboardModel) cycleGame(step int) {
	if n := len(m.games); n > 0 {
		m.game = (m.game + step + n) % n
		m.refresh()
	}
}

// View implements tea.Model.
func (m ScoreboardModel) View() string {
	if m.quitting || m.back {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerStyled(boardTitleStyle.Render("SESSION SCORES"), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerStyled(m.tabsView(), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerStyled(m.filterView(), m.width))
	b.WriteString("\n")
	b.WriteString(centerStyled(boardDimStyle.Render(m.statsLine()), m.width))
	b.WriteString("\n\n")

	body := boardDimStyle.Italic(true).Padding(1, 4).Render("No rounds finished yet.\nPlay one from the menu!")
	if len(m.entries) > 0 {
		body = m.table.View()
	}
	b.WriteString(centerStyled(boardFrameStyle.Render(body), m.width))
	b.WriteString("\n\n")
	b.WriteString(boardDimStyle.Render(m.help.View(m.keys)))
	return b.String()
}

func (m ScoreboardModel) tabsView() string {
	tabs := make([]string, len(m.games))
	for i, g := range m.games {
		if i == m.game {
			tabs[i] = boardActiveTab.Render(g.Title)
		} else {
			tabs[i] = boardTabStyle.Render(g.Title)
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m ScoreboardModel) filterView() string {
	parts := make([]string, len(m.filters))
	for i, f := range m.filters {
		name := f
		if name == "" {
			name = "all"
		}
		if i == m.filter {
			name = "[" + name + "]"
		}
		parts[i] = name
	}
	return "Difficulty: " + strings.Join(parts, " ")
}

func (m ScoreboardModel) statsLine() string {
	if m.stats.Rounds == 0 {
		return "no rounds"
	}
	return fmt.Sprintf("%d rounds  best %d  avg %.1f", m.stats.Rounds, m.stats.Best, m.stats.Average)
}

// IsGoingBack reports whether the player asked to return to the menu.
func (m ScoreboardModel) IsGoingBack() bool {
	return m.back
}

// IsQuitting reports whether the player asked to leave the arcade.
func (m ScoreboardModel) IsQuitting() bool {
	return m.quitting
}

// RunScoreboard shows the scoreboard in its own program. It returns true
// when the player wants the menu back.
func RunScoreboard(store *storage.Store, width, height int) (bool, error) {
	final, err := tea.NewProgram(NewScoreboardModel(store, width, height), tea.WithAltScreen()).Run()
	if err != nil {
		return false, err
	}
	m, ok := final.(ScoreboardModel)
	return ok && m.IsGoingBack(), nil
}
