package core

// Color is the foreground colour of a screen cell.
type Color uint8

// Cell colours. ColorDefault leaves the terminal's own foreground alone.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightBlue
	ColorBrightMagenta
	ColorBrightCyan
	ColorBrightWhite
	ColorOrange
	ColorGray

	colorCount
)

// ansiCodes holds the ANSI 256-colour index of each Color, "" for default.
var ansiCodes = [colorCount]string{
	"", "1", "2", "3", "4", "5", "6", "7",
	"9", "10", "11", "12", "13", "14", "15",
	"208", "245",
}

// ANSI returns the 256-colour palette index for c, or "" when c is the
// default colour or out of range.
func (c Color) ANSI() string {
	if c >= colorCount {
		return ""
	}
	return ansiCodes[c]
}

// Colors returns every defined colour in order.
func Colors() []Color {
	out := make([]Color, colorCount)
	for i := range out {
		out[i] = Color(i)
	}
	return out
}
