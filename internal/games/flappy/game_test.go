package flappy

import (
	"reflect"
	"strings"
	"testing"

	"github.com/vovakirdan/twin-arcade/internal/config"
	"github.com/vovakirdan/twin-arcade/internal/core"
)

func newTestGame(t *testing.T, difficulty string) *Game {
	t.Helper()
	t.Setenv("HOME", t.TempDir()) // keep user configs out of the test

	g := New()
	g.Reset(core.RuntimeConfig{
		ScreenW:    80,
		ScreenH:    24,
		TickRate:   60,
		Seed:       12345,
		Difficulty: difficulty,
	})
	return g
}

func frameWith(actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return in
}

func TestGameDeterminism(t *testing.T) {
	// Flap every 18 ticks to stay airborne for a while
	inputs := make([]core.InputFrame, 400)
	for i := range inputs {
		inputs[i] = core.NewInputFrame()
		if i%18 == 0 {
			inputs[i].Set(core.ActionFlap)
		}
	}

	run := func() Snapshot {
		g := newTestGame(t, "normal")
		for _, in := range inputs {
			if g.Step(in).State.GameOver {
				break
			}
		}
		return g.Snapshot()
	}

	a, b := run(), run()
	if !reflect.DeepEqual(a, b) {
		t.Errorf("determinism failed:\n run1 %+v\n run2 %+v", a, b)
	}
}

func TestGamePauseToggle(t *testing.T) {
	g := newTestGame(t, "")
	g.Step(frameWith())

	res := g.Step(frameWith(core.ActionPause))
	if !res.State.Paused {
		t.Fatal("pause should toggle on")
	}

	before := g.Snapshot()
	for range 10 {
		g.Step(frameWith(core.ActionFlap))
	}
	if after := g.Snapshot(); !reflect.DeepEqual(before, after) {
		t.Error("paused game should not advance")
	}

	if g.Step(frameWith(core.ActionPause)).State.Paused {
		t.Error("pause should toggle off")
	}
}

func TestGameFlapWhileOverRestarts(t *testing.T) {
	g := newTestGame(t, "normal")
	g.state.Score = 4
	g.state.HighScore = 4
	g.state.Over = true

	res := g.Step(frameWith(core.ActionFlap))
	if res.State.GameOver {
		t.Fatal("flap while over should start a new round")
	}
	if res.State.Score != 0 {
		t.Errorf("new round score = %d, expected 0", res.State.Score)
	}
	if res.State.HighScore != 4 {
		t.Errorf("high score = %d, expected 4 to survive the restart", res.State.HighScore)
	}
	if len(res.Events) != 0 {
		t.Errorf("restart frame should emit no events, got %v", res.Events)
	}
}

func TestGameOverIgnoresOtherInput(t *testing.T) {
	g := newTestGame(t, "normal")
	g.state.Over = true

	res := g.Step(frameWith(core.ActionPause, core.ActionUp))
	if !res.State.GameOver || res.State.Paused {
		t.Errorf("state = %+v, expected over and not paused", res.State)
	}
}

func TestGameRestartKeepsHighScore(t *testing.T) {
	g := newTestGame(t, "easy")
	g.state.HighScore = 11
	g.state.Score = 2

	res := g.Step(frameWith(core.ActionRestart))
	if res.State.Score != 0 || res.State.HighScore != 11 {
		t.Errorf("after restart state = %+v", res.State)
	}
}

func TestGameDifficultyPending(t *testing.T) {
	g := newTestGame(t, "normal")
	g.Step(frameWith())

	res := g.Step(frameWith(core.ActionDifficultyHard))
	if res.State.Difficulty != "normal" {
		t.Errorf("difficulty changed mid-round to %q", res.State.Difficulty)
	}
	if g.Pending() != config.DifficultyHard {
		t.Errorf("pending = %q, expected hard", g.Pending())
	}
	if g.params.PipeGap != 160 {
		t.Errorf("gap rescaled mid-round to %v", g.params.PipeGap)
	}

	res = g.Step(frameWith(core.ActionRestart))
	if res.State.Difficulty != "hard" || g.params.PipeGap != 140 {
		t.Errorf("restart should apply hard, got %q gap %v", res.State.Difficulty, g.params.PipeGap)
	}
}

func TestGameResetDifficulty(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"easy", "easy"},
		{"hard", "hard"},
		{"", "normal"},
		{"bogus", "normal"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			g := newTestGame(t, tt.in)
			if got := g.State().Difficulty; got != tt.want {
				t.Errorf("difficulty = %q, expected %q", got, tt.want)
			}
		})
	}
}

func TestGameLaterResetKeepsChoice(t *testing.T) {
	g := newTestGame(t, "easy")
	g.Step(frameWith(core.ActionDifficultyHard))

	cfg := core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 7}
	for _, d := range []string{"normal", "", "easy"} {
		cfg.Difficulty = d
		g.Reset(cfg)
		if got := g.State().Difficulty; got != "hard" {
			t.Errorf("Reset with %q: difficulty = %q, expected the pending hard", d, got)
		}
	}
}

func TestGameEventsSurface(t *testing.T) {
	g := newTestGame(t, "normal")
	res := g.Step(frameWith(core.ActionFlap))
	if len(res.Events) != 1 || res.Events[0] != core.EventFlap {
		t.Errorf("events = %v, expected [flap]", res.Events)
	}
}

func TestGameRender(t *testing.T) {
	g := newTestGame(t, "normal")
	for range 10 {
		g.Step(frameWith()) // scroll the first pipe onto the screen
	}

	screen := core.NewScreen(80, 24)
	g.Render(screen)
	out := screen.String()

	if !strings.Contains(out, "Score: 0") {
		t.Error("HUD should show the score")
	}
	if !strings.ContainsRune(out, PlayerChar) {
		t.Error("bird should be drawn")
	}
	if !strings.ContainsRune(out, PipeChar) {
		t.Error("first pipe should be drawn at the right edge")
	}

	g.Step(frameWith(core.ActionDifficultyEasy))
	g.Render(screen)
	if !strings.Contains(screen.String(), "next: easy") {
		t.Error("HUD should show the pending difficulty")
	}

	g.Step(frameWith(core.ActionPause))
	g.Render(screen)
	if !strings.Contains(screen.String(), "PAUSED") {
		t.Error("paused overlay missing")
	}

	g.state.Paused = false
	g.state.Over = true
	g.Render(screen)
	if !strings.Contains(screen.String(), "GAME OVER") {
		t.Error("game over overlay missing")
	}
}

func TestGameRenderTinyScreen(t *testing.T) {
	g := newTestGame(t, "normal")
	for _, size := range [][2]int{{0, 0}, {1, 1}, {3, 2}} {
		g.Render(core.NewScreen(size[0], size[1])) // must not panic
	}
}
