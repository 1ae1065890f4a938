package core

// Color is the foreground color of a screen cell. The front end maps each
// value to an ANSI 256-color code.
type Color uint8

// Interface colors.
const (
	ColorDefault Color = iota
	ColorGreen
	ColorBlue
	ColorCyan
	ColorWhite
	ColorBrightGreen
	ColorBrightBlue
	ColorBrightYellow
	ColorBrightWhite
	ColorOrange
	ColorGray
)

// Terrain shades, from lush to spent.
const (
	ColorDarkGreen Color = iota + ColorGray + 1
	ColorOlive
	ColorBrown
	ColorDeepBlue
	ColorSilt
	ColorDarkGray
)
