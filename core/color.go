package core

// RGBA stores explicit 8-bit color channels, decoupled from tcell and image/color
type RGBA struct {
	R, G, B, A uint8
}

// Predefined colors
var (
	RGBABlack = RGBA{0, 0, 0, 255}
	RGBADirt  = RGBA{139, 98, 64, 255}
	RGBARock  = RGBA{112, 108, 101, 255}
)

// Opaque reports whether the color carries any coverage
func (c RGBA) Opaque() bool {
	return c.A != 0
}

// Scale multiplies each color channel by factor, alpha untouched (shading)
func (c RGBA) Scale(factor float64) RGBA {
	if factor <= 0 {
		return RGBA{0, 0, 0, c.A}
	}
	if factor >= 1 {
		return c
	}
	return RGBA{
		R: uint8(float64(c.R) * factor),
		G: uint8(float64(c.G) * factor),
		B: uint8(float64(c.B) * factor),
		A: c.A,
	}
}

// Blend performs alpha blending: result = src*alpha + dst*(1-alpha)
func (c RGBA) Blend(src RGBA, alpha float64) RGBA {
	if alpha <= 0 {
		return c
	}
	if alpha >= 1 {
		return src
	}
	inv := 1.0 - alpha
	return RGBA{
		R: uint8(float64(src.R)*alpha + float64(c.R)*inv),
		G: uint8(float64(src.G)*alpha + float64(c.G)*inv),
		B: uint8(float64(src.B)*alpha + float64(c.B)*inv),
		A: max(c.A, src.A),
	}
}
