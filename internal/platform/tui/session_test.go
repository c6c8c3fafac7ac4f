package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/twin-arcade/internal/core"
	"github.com/vovakirdan/twin-arcade/internal/games/flappy"
)

func sessionUpdate(t *testing.T, m SessionModel, msg tea.Msg) (SessionModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	sm, ok := next.(SessionModel)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return sm, cmd
}

func TestSessionMenuGameMenu(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	cfg := core.DefaultConfig()
	cfg.Seed = 7

	m := NewSessionModel(nil, cfg, "bob")
	if m.ID() == "" {
		t.Fatal("session should have an id")
	}

	m, cmd := sessionUpdate(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.gameModel == nil {
		t.Fatal("enter should start the selected game")
	}
	if cmd == nil {
		t.Error("starting a game should schedule its first tick")
	}
	if m.gameModel.opts.Player != "bob" {
		t.Errorf("player = %q, expected bob", m.gameModel.opts.Player)
	}

	// Pause, let the tick apply it, then go back
	m, _ = sessionUpdate(t, m, keyPress("p"))
	m, _ = sessionUpdate(t, m, TickMsg{Time: time.Now(), Loop: m.gameModel.loop})
	if !m.gameModel.State().Paused {
		t.Fatal("game should be paused")
	}
	m, _ = sessionUpdate(t, m, keyPress("b"))
	if m.gameModel != nil {
		t.Fatal("b on a paused game should return to the menu")
	}
	if m.quitting {
		t.Error("going back must not end the session")
	}
}

// playFirstPipe starts the selected game, runs one tick so flappy spawns
// its first pipe, then pauses and returns to the menu.
func playFirstPipe(t *testing.T, m SessionModel) (SessionModel, flappy.Pipe, int64) {
	t.Helper()
	m, _ = sessionUpdate(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.gameModel == nil {
		t.Fatal("enter should start the selected game")
	}
	m, _ = sessionUpdate(t, m, TickMsg{Time: time.Now(), Loop: m.gameModel.loop})

	g, ok := m.gameModel.game.(*flappy.Game)
	if !ok {
		t.Fatalf("first menu entry is %T, want flappy", m.gameModel.game)
	}
	pipes := g.Snapshot().State.Pipes
	if len(pipes) == 0 {
		t.Fatal("first tick should spawn a pipe")
	}
	seed := m.gameModel.config.Seed

	m, _ = sessionUpdate(t, m, keyPress("p"))
	m, _ = sessionUpdate(t, m, TickMsg{Time: time.Now(), Loop: m.gameModel.loop})
	m, _ = sessionUpdate(t, m, keyPress("b"))
	if m.gameModel != nil {
		t.Fatal("b on a paused game should return to the menu")
	}
	return m, pipes[0], seed
}

func TestSessionReseedsEachRound(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	cfg := core.DefaultConfig()
	cfg.Seed = 7

	m := NewSessionModel(nil, cfg, "bob")
	m, first, seed1 := playFirstPipe(t, m)
	_, second, seed2 := playFirstPipe(t, m)

	if seed1 == seed2 || seed1 == cfg.Seed {
		t.Errorf("round seeds %d, %d should be fresh and distinct", seed1, seed2)
	}
	if first.TopHeight == second.TopHeight {
		t.Errorf("both rounds opened with the same pipe %+v", first)
	}
}

func TestSessionSeedsReproducible(t *testing.T) {
	cfg := core.DefaultConfig()
	cfg.Seed = 42
	a := NewSessionModel(nil, cfg, "a")
	b := NewSessionModel(nil, cfg, "b")
	for range 3 {
		if x, y := a.roundSeed(), b.roundSeed(); x != y || x == 0 {
			t.Fatalf("same session seed gave round seeds %d and %d", x, y)
		}
	}
}

func TestSessionScoreboard(t *testing.T) {
	m := NewSessionModel(nil, core.DefaultConfig(), "bob")

	m, _ = sessionUpdate(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if m.board == nil {
		t.Fatal("tab should open the scoreboard")
	}
	m, _ = sessionUpdate(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.board != nil || m.quitting {
		t.Error("esc should return to the menu")
	}
}

func TestSessionQuit(t *testing.T) {
	m := NewSessionModel(nil, core.DefaultConfig(), "bob")
	m, cmd := sessionUpdate(t, m, runeKey('q'))
	if !m.quitting || cmd == nil {
		t.Error("q in the menu should end the session")
	}
	if m.View() != "" {
		t.Error("finished session should render nothing")
	}
}

func TestDefaultSSHServerConfig(t *testing.T) {
	cfg := DefaultSSHServerConfig()
	if cfg.Address != ":23234" || cfg.IdleTimeout != 30*time.Minute {
		t.Errorf("unexpected defaults %+v", cfg)
	}
	if cfg.Game.TickRate != core.DefaultTickRate {
		t.Errorf("tick rate = %d", cfg.Game.TickRate)
	}
}
