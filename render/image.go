package render

import (
	"image"
	"image/draw"

	"github.com/nfnt/resize"
	"github.com/soypat/sdfield"
)

// Image renders f over d as a Steps[0] by Steps[1] image. Pixel (x, y) is
// the mapped value of matrix cell [x][y].
func Image(f sdfield.Field, d sdfield.Domain, mapper ColorMapper) *image.RGBA {
	return ImageFromMatrix(sdfield.Sample(f, d), mapper)
}

// ImageFromMatrix renders an already sampled matrix as Image does.
func ImageFromMatrix(m sdfield.Matrix, mapper ColorMapper) *image.RGBA {
	nx, ny := m.Dims()
	img := image.NewRGBA(image.Rect(0, 0, nx, ny))
	for x, col := range m {
		for y, v := range col {
			img.SetRGBA(x, y, mapper(v))
		}
	}
	return img
}

// ImageSupersampled renders f over d at factor times the domain resolution
// and downsamples the result to Steps[0] by Steps[1] pixels, which
// antialiases hard edges. A factor below 2 is the same as calling Image.
func ImageSupersampled(f sdfield.Field, d sdfield.Domain, mapper ColorMapper, factor int) *image.RGBA {
	if factor < 2 {
		return Image(f, d, mapper)
	}
	hi := d
	hi.Steps[0] *= factor
	hi.Steps[1] *= factor
	return Downsample(Image(f, hi, mapper), max(d.Steps[0], 0), max(d.Steps[1], 0))
}

// Downsample resizes img to width by height pixels with bilinear
// interpolation.
func Downsample(img image.Image, width, height int) *image.RGBA {
	if width <= 0 || height <= 0 {
		// resize preserves aspect ratio on a zero dimension.
		return image.NewRGBA(image.Rect(0, 0, max(width, 0), max(height, 0)))
	}
	out := resize.Resize(uint(width), uint(height), img, resize.Bilinear)
	if rgba, ok := out.(*image.RGBA); ok && rgba.Rect.Min == (image.Point{}) {
		return rgba
	}
	b := out.Bounds()
	rgba := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(rgba, rgba.Rect, out, b.Min, draw.Src)
	return rgba
}
