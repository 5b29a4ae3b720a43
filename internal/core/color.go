package core

// Color represents a foreground color for a screen cell.
// Mapped to ANSI colors by the platform renderer.
type Color uint8

// Palette used by the game. The first seven non-default colors are the
// standard tetromino colors; the rest are UI chrome.
const (
	ColorDefault Color = iota
	ColorCyan          // I piece
	ColorYellow        // O piece
	ColorMagenta       // T piece
	ColorGreen         // S piece
	ColorRed           // Z piece
	ColorBlue          // J piece
	ColorOrange        // L piece
	ColorWhite
	ColorBrightWhite
	ColorGray
)
