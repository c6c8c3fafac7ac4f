package core

import (
	"strings"
	"testing"
)

// rows joins lines the way Screen.String does.
func rows(lines ...string) string {
	return strings.Join(lines, "\n")
}

func TestScreenDrawing(t *testing.T) {
	tests := []struct {
		name string
		w, h int
		draw func(s *Screen)
		want string
	}{
		{
			name: "blank",
			w:    3, h: 2,
			draw: func(*Screen) {},
			want: rows("   ", "   "),
		},
		{
			name: "text clipped on both sides",
			w:    6, h: 2,
			draw: func(s *Screen) {
				s.DrawText(4, 0, "Hello")
				s.DrawText(-2, 1, "abcd")
			},
			want: rows("    He", "cd    "),
		},
		{
			name: "centered text",
			w:    7, h: 1,
			draw: func(s *Screen) { s.DrawTextCentered(0, "Hi") },
			want: "  Hi   ",
		},
		{
			name: "filled rect",
			w:    5, h: 4,
			draw: func(s *Screen) { s.DrawRect(NewRect(1, 1, 3, 2), '#') },
			want: rows("     ", " ### ", " ### ", "     "),
		},
		{
			name: "box outline",
			w:    5, h: 4,
			draw: func(s *Screen) { s.DrawBox(NewRect(0, 0, 5, 4)) },
			want: rows("┌───┐", "│   │", "│   │", "└───┘"),
		},
		{
			name: "lines",
			w:    4, h: 3,
			draw: func(s *Screen) {
				s.DrawHLine(0, 0, 4, '-')
				s.DrawVLine(3, 0, 3, '|')
			},
			want: rows("---|", "   |", "   |"),
		},
		{
			name: "out of bounds writes dropped",
			w:    2, h: 2,
			draw: func(s *Screen) {
				s.Set(-1, 0, 'x')
				s.Set(2, 0, 'x')
				s.Set(0, -1, 'x')
				s.Set(0, 2, 'x')
				s.Set(1, 1, 'o')
			},
			want: rows("  ", " o"),
		},
		{
			name: "fill then clear",
			w:    2, h: 1,
			draw: func(s *Screen) {
				s.Fill('.')
				s.Clear()
			},
			want: "  ",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewScreen(tt.w, tt.h)
			tt.draw(s)
			if got := s.String(); got != tt.want {
				t.Errorf("got\n%s\nwant\n%s", got, tt.want)
			}
		})
	}
}

func TestScreenOutOfBoundsReads(t *testing.T) {
	s := NewScreen(3, 2)
	s.Fill('#')
	for _, p := range [][2]int{{-1, 0}, {3, 0}, {0, -1}, {0, 2}} {
		if c := s.GetCell(p[0], p[1]); c != blankCell {
			t.Errorf("GetCell%v = %+v, want blank", p, c)
		}
	}
	if got := s.Row(5); got != "   " {
		t.Errorf("Row(5) = %q, want spaces", got)
	}
}

func TestScreenResizeKeepsTopLeft(t *testing.T) {
	s := NewScreen(4, 2)
	s.DrawText(0, 0, "abcd")
	s.DrawText(0, 1, "efgh")

	steps := []struct {
		w, h int
		want string
	}{
		{2, 3, rows("ab", "ef", "  ")},
		{3, 1, "ab "},
		{3, 1, "ab "},
		{0, 0, ""},
	}
	for _, st := range steps {
		s.Resize(st.w, st.h)
		if s.Width() != st.w || s.Height() != st.h {
			t.Fatalf("Resize(%d, %d) gave %dx%d", st.w, st.h, s.Width(), s.Height())
		}
		if got := s.String(); got != st.want {
			t.Errorf("after Resize(%d, %d) got %q, want %q", st.w, st.h, got, st.want)
		}
	}
}

func TestScreenColors(t *testing.T) {
	s := NewScreen(4, 2)
	s.SetColor(2, 1, '@', ColorGreen)
	s.DrawTextColor(0, 0, "ab", ColorRed)
	s.Set(1, 0, 'B')

	tests := []struct {
		x, y int
		want Cell
	}{
		{2, 1, Cell{'@', ColorGreen}},
		{0, 0, Cell{'a', ColorRed}},
		{1, 0, Cell{'B', ColorDefault}},
		{3, 0, blankCell},
	}
	for _, tt := range tests {
		if got := s.GetCell(tt.x, tt.y); got != tt.want {
			t.Errorf("GetCell(%d, %d) = %+v, want %+v", tt.x, tt.y, got, tt.want)
		}
	}

	s.Clear()
	if c := s.GetCell(2, 1); c != blankCell {
		t.Errorf("Clear left %+v", c)
	}
}

func TestScreenDrawOverlay(t *testing.T) {
	s := NewScreen(40, 11)
	s.Fill('.')
	s.DrawOverlay("PAUSED", "Press P to resume")

	// 21x5 box centred at (9, 3).
	want := map[[2]int]rune{
		{9, 3}:  '┌',
		{29, 3}: '┐',
		{9, 7}:  '└',
		{29, 7}: '┘',
		{8, 3}:  '.',
		{0, 0}:  '.',
	}
	for p, r := range want {
		if got := s.Get(p[0], p[1]); got != r {
			t.Errorf("Get%v = %q, want %q", p, got, r)
		}
	}
	if row := s.Row(4); !strings.Contains(row, "PAUSED") {
		t.Errorf("title row = %q", row)
	}
	if row := s.Row(6); !strings.Contains(row, "Press P to resume") {
		t.Errorf("subtitle row = %q", row)
	}
	if c := s.GetCell(17, 4); c.Color != ColorBrightWhite {
		t.Errorf("title colour = %v", c.Color)
	}
}

func TestScreenNegativeSize(t *testing.T) {
	s := NewScreen(-5, -1)
	if s.Width() != 0 || s.Height() != 0 {
		t.Errorf("got %dx%d, want 0x0", s.Width(), s.Height())
	}
	if s.String() != "" {
		t.Error("empty screen should render as empty string")
	}
}

func TestColorANSI(t *testing.T) {
	if ColorDefault.ANSI() != "" {
		t.Error("default colour should have no code")
	}
	if ColorOrange.ANSI() != "208" {
		t.Errorf("orange = %q", ColorOrange.ANSI())
	}
	if Color(200).ANSI() != "" {
		t.Error("unknown colours should fall back to default")
	}
	if n := len(Colors()); n != int(colorCount) {
		t.Errorf("Colors() has %d entries", n)
	}
}
