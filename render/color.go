package render

import (
	"image/color"
	"math"

	"github.com/chewxy/math32"
	"github.com/fogleman/fauxgl"
)

// ColorMapper maps a sampled distance to a color.
type ColorMapper func(v float64) color.RGBA

var (
	white = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	black = color.RGBA{A: 255}
)

// Grayscale maps distance linearly to gray so that the boundary is 128.
// One unit of distance spans the whole range; values outside it saturate.
func Grayscale(v float64) color.RGBA {
	g := saturate8(math.Floor((v + 0.5) * 256))
	return color.RGBA{R: g, G: g, B: g, A: 255}
}

// RedBlueRepeating colors the inside of a shape with a red gradient and the
// outside with a blue gradient. Both darken towards half intensity and
// repeat every unit of distance.
func RedBlueRepeating(v float64) color.RGBA {
	x := float32(v)
	var r, b float32
	if x < 0 {
		r = lerp(1, 0.5, math32.Mod(math32.Abs(x), 1))
	} else {
		b = lerp(1, 0.5, math32.Mod(x, 1))
	}
	return color.RGBA{R: saturate8(r * 256), B: saturate8(b * 256), A: 255}
}

// Mask draws the inside of a shape white and the outside black.
func Mask(v float64) color.RGBA {
	if v < 0 {
		return white
	}
	return black
}

// TwoTone returns a mapper that draws the inside of a shape with the inside
// color and the rest with the outside color. Colors are hex strings such as
// "#468966" or "FFF8E3".
func TwoTone(inside, outside string) ColorMapper {
	in, out := hexRGBA(inside), hexRGBA(outside)
	return func(v float64) color.RGBA {
		if v < 0 {
			return in
		}
		return out
	}
}

func hexRGBA(hex string) color.RGBA {
	c := fauxgl.HexColor(hex).NRGBA()
	return color.RGBAModel.Convert(c).(color.RGBA)
}

func lerp(a, b, t float32) float32 {
	return a + (b-a)*t
}

// saturate8 converts v to a byte clamping to [0, 255]. NaN maps to 0.
func saturate8[T float32 | float64](v T) uint8 {
	switch {
	case !(v > 0):
		return 0
	case v >= 255:
		return 255
	}
	return uint8(v)
}
