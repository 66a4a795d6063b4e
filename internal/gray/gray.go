// Package gray moves pixels between image.Image and single channel grids.
package gray

import (
	"image"
	"image/color"
	"math"

	"github.com/yyyoichi/pairmark/internal/block"
)

// https://github.com/opencv/opencv/blob/0e88b49a53842f0f7cdc4c61b98c283be7e5057c/modules/imgproc/src/opencl/color_yuv.cl#L148-L234
const (
	yr = 0.299
	yg = 0.587
	yb = 0.114
)

// FromImage returns the luma of src on a 0-255 scale. Gray images are
// copied exactly.
func FromImage(src image.Image) block.Grid {
	bounds := src.Bounds()
	g := block.NewGrid(bounds.Dx(), bounds.Dy())
	if s, ok := src.(*image.Gray); ok {
		for y := range g.Height {
			row := s.Pix[y*s.Stride:]
			for x := range g.Width {
				g.Pix[y*g.Width+x] = float64(row[x])
			}
		}
		return g
	}
	idx := 0
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r32, g32, b32, _ := src.At(x, y).RGBA()
			r := float64(r32 >> 8)
			gr := float64(g32 >> 8)
			b := float64(b32 >> 8)
			g.Pix[idx] = yr*r + yg*gr + yb*b
			idx++
		}
	}
	return g
}

// ToImage rounds g to 8-bit samples, clipping to [0, 255].
func ToImage(g block.Grid) *image.Gray {
	dist := image.NewGray(image.Rect(0, 0, g.Width, g.Height))
	for y := range g.Height {
		for x := range g.Width {
			dist.SetGray(x, y, color.Gray{Y: Clip8(g.Pix[y*g.Width+x])})
		}
	}
	return dist
}

func Clip8(v float64) uint8 {
	if v < 0 || math.IsNaN(v) {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(math.Round(v))
}

// Scale multiplies every sample by f, in place.
func Scale(g block.Grid, f float64) {
	for i := range g.Pix {
		g.Pix[i] *= f
	}
}
