package core

import "fmt"

// Color is an 8-bit RGBA color. The zero value means "terminal default".
type Color struct {
	R, G, B, A uint8
}

// RGB builds an opaque color.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b, A: 255}
}

// IsDefault reports whether c is the terminal default color.
func (c Color) IsDefault() bool {
	return c == Color{}
}

// Hex returns the color as "#rrggbb", the form lipgloss accepts.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// Fade scales the color toward black by alpha in [0, 1].
// Terminals have no blending, so fading darkens instead.
func (c Color) Fade(alpha float64) Color {
	a := ClampF(alpha, 0, 1)
	return Color{
		R: uint8(float64(c.R) * a),
		G: uint8(float64(c.G) * a),
		B: uint8(float64(c.B) * a),
		A: c.A,
	}
}

// Palette used across the game and the renderer.
var (
	ColorDefault = Color{}
	ColorWhite   = RGB(245, 245, 245)
	ColorGray    = RGB(160, 160, 160)
	ColorRed     = RGB(230, 41, 55)
	ColorYellow  = RGB(253, 249, 0)
	ColorGold    = RGB(255, 203, 0)
	ColorGround  = RGB(34, 46, 40)
)
