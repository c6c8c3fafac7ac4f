package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/twin-arcade/internal/core"
)

// palette holds one style per core.Color, indexed by the colour value.
var palette = func() []lipgloss.Style {
	colors := core.Colors()
	styles := make([]lipgloss.Style, len(colors))
	for i, c := range colors {
		styles[i] = lipgloss.NewStyle()
		if code := c.ANSI(); code != "" {
			styles[i] = styles[i].Foreground(lipgloss.Color(code))
		}
	}
	return styles
}()

func styleFor(c core.Color) lipgloss.Style {
	if int(c) < len(palette) {
		return palette[c]
	}
	return palette[core.ColorDefault]
}

// RenderScreen turns a cell buffer into terminal text. Each row is split
// into runs of one colour so a style is applied once per run, not per cell.
func RenderScreen(s *core.Screen) string {
	w, h := s.Width(), s.Height()
	var out strings.Builder
	out.Grow(w*h*2 + h)

	run := make([]rune, 0, w)
	for y := range h {
		if y > 0 {
			out.WriteByte('\n')
		}
		run = run[:0]
		var color core.Color
		for x := range w {
			c := s.GetCell(x, y)
			if len(run) > 0 && c.Color != color {
				out.WriteString(styleFor(color).Render(string(run)))
				run = run[:0]
			}
			color = c.Color
			run = append(run, c.Rune)
		}
		if len(run) > 0 {
			out.WriteString(styleFor(color).Render(string(run)))
		}
	}
	return out.String()
}
