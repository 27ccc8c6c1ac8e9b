package core

// Color is the foreground colour of a screen cell.
// Values map onto ANSI 256-colour codes in the platform renderer.
type Color uint8

// Palette used by the track renderer and HUD.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightCyan
	ColorBrightWhite
	ColorOrange
	ColorGray
	ColorDarkGray
	ColorDarkGreen
)
