// Command arcade plays Twin Arcade: a flappy-style flyer and a grid snake
// sharing one deterministic core, shown in a terminal, in a pixel window or
// to SSH clients. Run "arcade help" for the commands.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/vovakirdan/twin-arcade/internal/games/flappy"
	_ "github.com/vovakirdan/twin-arcade/internal/games/snake"
)

// Persistent flags shared by every command.
var (
	flagFPS      int
	flagSeed     int64
	flagLogLevel string
)

// logger is configured from --log-level before any command runs.
var logger = log.NewWithOptions(os.Stderr, log.Options{
	Level:  log.WarnLevel,
	Prefix: "arcade",
})

func main() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		if hint := errHint(err); hint != "" {
			fmt.Fprintln(os.Stderr, hint)
		}
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "arcade",
	Short: "Twin Arcade - Flappy Bird and Snake for your terminal",
	Long: `Twin Arcade runs Flappy and Snake in a terminal (play, menu),
in a desktop window (window) or for SSH clients (serve).

  arcade play snake --difficulty hard
  arcade window flappy --seed 42
  arcade serve --ssh :2222`,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		level, err := log.ParseLevel(flagLogLevel)
		if err != nil {
			return fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
		}
		logger.SetLevel(level)
		return nil
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "warn", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(listCmd, playCmd, menuCmd, windowCmd, serveCmd)
}
