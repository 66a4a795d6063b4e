// Package logomark turns a logo into a binary payload and back.
package logomark

import (
	"image"
	"image/color"

	"golang.org/x/image/draw"
)

const (
	DefaultWidth     = 32
	DefaultHeight    = 32
	DefaultThreshold = 127
)

type Option func(*config)

type config struct {
	width, height int
	threshold     uint8
}

// WithSize sets the logo resolution. Values below 1 are set to 1.
func WithSize(width, height int) Option {
	return func(c *config) {
		c.width = max(width, 1)
		c.height = max(height, 1)
	}
}

// WithThreshold sets the gray level a pixel must exceed to read as 1.
func WithThreshold(t uint8) Option {
	return func(c *config) {
		c.threshold = t
	}
}

// Encode resizes logo with bilinear interpolation and thresholds it into
// width*height bits in row-major order.
func Encode(logo image.Image, opts ...Option) []bool {
	c := config{width: DefaultWidth, height: DefaultHeight, threshold: DefaultThreshold}
	for _, opt := range opts {
		opt(&c)
	}

	small := image.NewGray(image.Rect(0, 0, c.width, c.height))
	draw.BiLinear.Scale(small, small.Bounds(), logo, logo.Bounds(), draw.Src, nil)

	bits := make([]bool, c.width*c.height)
	for y := range c.height {
		row := small.Pix[y*small.Stride:]
		for x := range c.width {
			bits[y*c.width+x] = row[x] > c.threshold
		}
	}
	return bits
}

// Image draws bits as a black and white width x height image. Missing
// bits are black.
func Image(bits []bool, width, height int) *image.Gray {
	dist := image.NewGray(image.Rect(0, 0, width, height))
	for i, v := range bits {
		if i >= width*height {
			break
		}
		if v {
			dist.SetGray(i%width, i/width, color.Gray{Y: 255})
		}
	}
	return dist
}
