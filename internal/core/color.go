package core

// Color is the foreground color of a screen cell.
// The platform maps each value to an ANSI 256-color code.
type Color uint8

const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorGray
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightCyan
)

// Roles used when drawing a maze.
const (
	ColorWall   = ColorBlue
	ColorPlayer = ColorBrightYellow
	ColorEnemy  = ColorBrightRed
	ColorFriend = ColorBrightGreen
	ColorHUD    = ColorCyan
	ColorHint   = ColorGray
)
