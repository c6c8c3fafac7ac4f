package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/twin-arcade/internal/audio"
	"github.com/vovakirdan/twin-arcade/internal/config"
	"github.com/vovakirdan/twin-arcade/internal/core"
	"github.com/vovakirdan/twin-arcade/internal/platform/tui"
	"github.com/vovakirdan/twin-arcade/internal/registry"
	"github.com/vovakirdan/twin-arcade/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
	flagMute       bool
)

var playCmd = &cobra.Command{
	Use:   "play <game>",
	Short: "Play a game",
	Long: `Start playing the specified game in the terminal.

Controls:
  Space/Up/W    - Flap (flappy)
  Arrows/WASD   - Steer (snake)
  P/Esc         - Pause
  R             - Restart
  1/2/3         - Easy/normal/hard from the next round
  M             - Mute
  Q/Ctrl+C      - Quit

Difficulty options:
  easy, normal, hard

Examples:
  arcade play flappy
  arcade play snake --difficulty easy
  arcade play flappy --difficulty hard --mute
  arcade play flappy --config ./my-flappy.yaml`,
	Args: cobra.ExactArgs(1),
	RunE: runPlay,
}

func init() {
	for _, cmd := range []*cobra.Command{playCmd, windowCmd} {
		cmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
		cmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
		cmd.Flags().BoolVar(&flagMute, "mute", false, "Start with sound effects muted")
	}
}

func runPlay(_ *cobra.Command, args []string) error {
	game, cfg, err := prepareGame(args[0])
	if err != nil {
		return err
	}

	store := openStore()
	defer store.Close()

	_, err = tui.Run(game, cfg, tui.Options{
		Store:  store,
		Mixer:  audio.Open(logger, flagMute),
		Logger: logger,
	})
	if err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}

// prepareGame validates the flags and creates the game so a bad flag fails
// before the screen is taken over.
func prepareGame(gameID string) (registry.Game, core.RuntimeConfig, error) {
	cfg, err := gameConfig(gameID)
	if err != nil {
		return nil, cfg, err
	}
	game, err := registry.Create(gameID)
	return game, cfg, err
}

// gameConfig checks the game id, difficulty and config file.
func gameConfig(gameID string) (core.RuntimeConfig, error) {
	if !registry.Exists(gameID) {
		return core.RuntimeConfig{}, fmt.Errorf("%w %q (run 'arcade list' to see available games)", registry.ErrUnknownGame, gameID)
	}

	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return core.RuntimeConfig{}, err
	}

	switch gameID {
	case "flappy":
		_, err = config.LoadFlappy(flagConfig)
	case "snake":
		_, err = config.LoadSnake(flagConfig)
	}
	if err != nil {
		return core.RuntimeConfig{}, err
	}

	cfg := terminalConfig()
	cfg.Difficulty = string(preset)
	cfg.ConfigPath = flagConfig
	return cfg, nil
}

// terminalConfig builds the runtime config from global flags and the
// current terminal size.
func terminalConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	return cfg
}

// openStore opens the session scoreboard. The game still runs without it.
func openStore() *storage.Store {
	store, err := storage.Open()
	if err != nil {
		logger.Warn("scoreboard unavailable", "error", err)
		return nil
	}
	return store
}

// errHint returns a follow-up line for errors a user can fix from the
// command line, or "".
func errHint(err error) string {
	if errors.Is(err, config.ErrUnknownPreset) {
		return "Valid difficulties: easy, normal, hard"
	}
	return ""
}
