package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/twin-arcade/internal/config"
	"github.com/vovakirdan/twin-arcade/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available games",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		out := cmd.OutOrStdout()
		games := registry.List()
		if len(games) == 0 {
			fmt.Fprintln(out, "No games available.")
			return nil
		}
		fmt.Fprintln(out, gamesTable(games))
		fmt.Fprintln(out, "Play one with 'arcade play <id>' or 'arcade window <id>'.")
		return nil
	},
}

// gamesTable renders the registered games with the difficulty presets each
// accepts.
func gamesTable(games []registry.GameInfo) string {
	presets := make([]string, 0, len(config.Presets()))
	for _, p := range config.Presets() {
		presets = append(presets, string(p))
	}
	levels := strings.Join(presets, ", ")

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("240"))).
		Headers("ID", "TITLE", "DIFFICULTY").
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return lipgloss.NewStyle().Bold(true).Padding(0, 1)
			}
			return lipgloss.NewStyle().Padding(0, 1)
		})
	for _, g := range games {
		t.Row(g.ID, g.Title, levels)
	}
	return t.Render()
}
