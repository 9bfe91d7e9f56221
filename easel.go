package easel

import "image/color"

// Color is an opaque 8-bit RGB color. Every primitive draws fully opaque.
type Color struct {
	R, G, B uint8
}

// RGB returns the Color with the given channels.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b}
}

// Hex returns the Color encoded as 0xRRGGBB. Higher bits are ignored.
func Hex(v uint32) Color {
	return Color{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v)}
}

// Common colors.
var (
	ColorBlack = Color{0, 0, 0}
	ColorWhite = Color{255, 255, 255}

	// ColorBackground is the default canvas and letterbox clear color.
	ColorBackground = Color{239, 239, 239}
)

// RGBA converts c to an opaque color.RGBA.
func (c Color) RGBA() color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 0xff}
}

// Vec2 is a 2D vector used for positions and scale factors.
type Vec2 struct {
	X, Y float64
}

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward. Height may be negative in a blit
// source rectangle, which selects bottom-up row order.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle. The
// left and top edges are inside, the right and bottom edges are not, so a
// W-wide canvas holds x in [0, W).
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x < r.X+r.Width &&
		y >= r.Y && y < r.Y+r.Height
}

// Strategy selects how the virtual canvas reaches the window.
type Strategy uint8

const (
	// StrategyLetterbox draws into an offscreen canvas that is scaled to fit
	// the window and centered. Fullscreen is borderless-windowed.
	StrategyLetterbox Strategy = iota
	// StrategyDirect draws straight into the window at scale 1 and uses the
	// window system's own fullscreen mode.
	StrategyDirect
)

func (s Strategy) String() string {
	switch s {
	case StrategyLetterbox:
		return "letterbox"
	case StrategyDirect:
		return "direct"
	default:
		return "unknown"
	}
}

// ParseStrategy converts the String form of a Strategy back to its value.
func ParseStrategy(s string) (Strategy, bool) {
	switch s {
	case "letterbox":
		return StrategyLetterbox, true
	case "direct":
		return StrategyDirect, true
	}
	return 0, false
}
