package math

// Color is an RGB color with components in [0, 1].
type Color struct {
	R, G, B float32
}

// RGB builds a Color.
func RGB(r, g, b float32) Color {
	return Color{R: r, G: g, B: b}
}

// Common colors.
var (
	Black = Color{0, 0, 0}
	White = Color{1, 1, 1}
	Red   = Color{1, 0, 0}
)

// Array returns the components as a fixed array, for uniform uploads.
func (c Color) Array() [3]float32 {
	return [3]float32{c.R, c.G, c.B}
}
