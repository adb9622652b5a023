package render

import (
	"strings"

	"github.com/soypat/sdfield"
)

// TextMapper maps a sampled distance to a character.
type TextMapper func(v float64) rune

// Text renders f over d as text. There is one line per y sample and one
// character per x sample, every line terminated by a newline.
func Text(f sdfield.Field, d sdfield.Domain, mapper TextMapper) string {
	return TextFromMatrix(sdfield.Sample(f, d), mapper)
}

// TextFromMatrix renders an already sampled matrix as Text does.
// An empty matrix renders as the empty string.
func TextFromMatrix(m sdfield.Matrix, mapper TextMapper) string {
	nx, ny := m.Dims()
	var sb strings.Builder
	sb.Grow((nx + 1) * ny)
	for j := 0; j < ny; j++ {
		for i := 0; i < nx; i++ {
			sb.WriteRune(mapper(m[i][j]))
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// DefaultText draws the boundary as '*', a thin band inside the shape as '-'
// and a thin band outside as '+'. Everything else is a space.
func DefaultText(v float64) rune {
	switch {
	case v == 0:
		return '*'
	case v < 0 && v > -0.5:
		return '-'
	case v > 0 && v < 0.5:
		return '+'
	}
	return ' '
}

// FillInside draws the inside of the shape as '#'.
func FillInside(v float64) rune {
	if v < 0 {
		return '#'
	}
	return ' '
}
