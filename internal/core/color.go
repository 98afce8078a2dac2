package core

// Color represents a foreground color for a screen cell.
// Uses ANSI 256-color codes for terminal compatibility.
type Color uint8

// Palette used by the runner scene.
const (
	ColorDefault Color = iota
	ColorCyan
	ColorBrightCyan
	ColorBlue
	ColorMagenta
	ColorWhite
	ColorBrightWhite
	ColorYellow
	ColorGray
	ColorDarkGray
)
