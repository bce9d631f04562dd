package core

// Color represents a foreground color for a screen cell.
// The platform maps each value to an ANSI 256-color code.
type Color uint8

// Palette used by the board, HUD and overlays.
const (
	ColorDefault Color = iota
	ColorGray
	ColorWhite
	ColorBrightWhite
	ColorYellow
	ColorBrightYellow
	ColorOrange
	ColorRed
	ColorBrightRed
	ColorMagenta
	ColorBrightMagenta
	ColorCyan
	ColorGreen
	ColorBrightGreen
)

// tileColors follows the tile progression 2, 4, 8, ... 4096.
var tileColors = []Color{
	ColorWhite,         // 2
	ColorBrightWhite,   // 4
	ColorYellow,        // 8
	ColorOrange,        // 16
	ColorRed,           // 32
	ColorBrightRed,     // 64
	ColorBrightYellow,  // 128
	ColorBrightYellow,  // 256
	ColorMagenta,       // 512
	ColorBrightMagenta, // 1024
	ColorBrightGreen,   // 2048
	ColorCyan,          // 4096
}

// TileColor returns the color for a tile value. Values past the palette
// share its last color; non-positive values are gray.
func TileColor(value int) Color {
	if value < 2 {
		return ColorGray
	}
	idx := 0
	for v := value; v > 2; v >>= 1 {
		idx++
	}
	return tileColors[Clamp(idx, 0, len(tileColors)-1)]
}
