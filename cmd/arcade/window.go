package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/twin-arcade/internal/audio"
	"github.com/vovakirdan/twin-arcade/internal/platform/canvas"
)

var windowCmd = &cobra.Command{
	Use:   "window <game>",
	Short: "Play a game in a desktop window",
	Long: `Open the specified game in a pixel window.

Keyboard controls match the terminal. A mouse click or touch flaps in
flappy; in snake it turns towards the side of the board that was pressed.

Examples:
  arcade window flappy
  arcade window snake --difficulty hard
  arcade window flappy --fps 120`,
	Args: cobra.ExactArgs(1),
	RunE: runWindow,
}

func runWindow(_ *cobra.Command, args []string) error {
	game, cfg, err := prepareGame(args[0])
	if err != nil {
		return err
	}
	if err := canvas.Run(game, cfg, audio.Open(logger, flagMute), logger); err != nil {
		return fmt.Errorf("running window: %w", err)
	}
	return nil
}
