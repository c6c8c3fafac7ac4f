package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/twin-arcade/internal/audio"
	"github.com/vovakirdan/twin-arcade/internal/config"
	"github.com/vovakirdan/twin-arcade/internal/platform/tui"
	"github.com/vovakirdan/twin-arcade/internal/registry"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick games from a menu, with a session scoreboard",
	Long: `Start the arcade at a game picker.

B or Esc on a paused or finished game returns to the picker. Scores are
kept until the arcade exits.

Picker keys:
  Up/Down/j/k  - Move
  Enter/Space  - Play
  D/Left/Right - Cycle difficulty
  Tab          - Scoreboard
  Q            - Quit`,
	Args: cobra.NoArgs,
	RunE: runMenu,
}

func init() {
	menuCmd.Flags().BoolVar(&flagMute, "mute", false, "Start with sound effects muted")
}

// runMenu alternates between the picker, the scoreboard and games, each in
// its own program, until the player quits.
func runMenu(_ *cobra.Command, _ []string) error {
	store := openStore()
	defer store.Close()

	opts := tui.Options{
		Store:  store,
		Mixer:  audio.Open(logger, flagMute),
		Logger: logger,
		Menu:   true,
	}
	cfg := terminalConfig()
	cfg.Difficulty = string(config.DifficultyNormal)

	for {
		res, err := tui.RunMenu(store, cfg)
		if err != nil {
			return fmt.Errorf("menu: %w", err)
		}
		cfg = res.Config

		switch {
		case res.Quit:
			return nil
		case res.WantsScoreboard:
			back, err := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH)
			if err != nil || !back {
				return err
			}
			continue
		}

		game, err := registry.Create(res.GameID)
		if err != nil {
			logger.Error("cannot create game", "game", res.GameID, "error", err)
			continue
		}
		if flagSeed == 0 {
			cfg.Seed = time.Now().UnixNano()
		}
		back, err := tui.Run(game, cfg, opts)
		if err != nil {
			return fmt.Errorf("running %s: %w", res.GameID, err)
		}
		if !back {
			return nil
		}
	}
}
