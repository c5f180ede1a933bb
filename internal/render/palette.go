package render

import (
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
)

// NeonPalette is the fixed set of eight retro colors shared by every mode.
var NeonPalette = [8]color.Color{
	hex("#FF00FF"), // magenta
	hex("#00FFFF"), // cyan
	hex("#00FF00"), // lime
	hex("#FFFF00"), // yellow
	hex("#FF0080"), // hot pink
	hex("#8000FF"), // purple
	hex("#FF4000"), // orange red
	hex("#00FF80"), // spring green
}

var (
	Magenta = NeonPalette[0]
	Cyan    = NeonPalette[1]
	Lime    = NeonPalette[2]
	Yellow  = NeonPalette[3]
)

// Neon returns the palette color for slot i, wrapping around.
func Neon(i int) color.Color {
	n := len(NeonPalette)
	return NeonPalette[((i%n)+n)%n]
}

// RGBA builds a color from 8-bit channels and a 0-1 alpha, the way CSS
// rgba() does.
func RGBA(r, g, b uint8, a float64) color.NRGBA {
	return color.NRGBA{R: r, G: g, B: b, A: uint8(clamp01(a)*255 + 0.5)}
}

// Lerp blends a towards b by t in [0,1], interpolating alpha separately.
func Lerp(a, b color.Color, t float64) color.Color {
	t = clamp01(t)
	na := color.NRGBAModel.Convert(a).(color.NRGBA)
	nb := color.NRGBAModel.Convert(b).(color.NRGBA)
	ca := colorful.Color{R: float64(na.R) / 255, G: float64(na.G) / 255, B: float64(na.B) / 255}
	cb := colorful.Color{R: float64(nb.R) / 255, G: float64(nb.G) / 255, B: float64(nb.B) / 255}
	r, g, bl := ca.BlendRgb(cb, t).Clamped().RGB255()
	alpha := float64(na.A) + (float64(nb.A)-float64(na.A))*t
	return color.NRGBA{R: r, G: g, B: bl, A: uint8(alpha + 0.5)}
}

func hex(s string) color.Color {
	c, err := colorful.Hex(s)
	if err != nil {
		panic(err)
	}
	r, g, b := c.RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: 255}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
