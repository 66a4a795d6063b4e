// Package quality measures how visible a watermark is.
package quality

import (
	"errors"
	"fmt"
	"image"
	"math"

	"github.com/yyyoichi/pairmark/internal/gray"
	"gonum.org/v1/gonum/floats"
)

var ErrSizeMismatch = errors.New("images differ in size")

// MSE is the mean squared luma difference between a and b.
func MSE(a, b image.Image) (float64, error) {
	ga, gb := gray.FromImage(a), gray.FromImage(b)
	if ga.Width != gb.Width || ga.Height != gb.Height {
		return 0, fmt.Errorf("%w: %dx%d and %dx%d", ErrSizeMismatch, ga.Width, ga.Height, gb.Width, gb.Height)
	}
	if len(ga.Pix) == 0 {
		return 0, nil
	}
	d := floats.Distance(ga.Pix, gb.Pix, 2)
	return d * d / float64(len(ga.Pix)), nil
}

// PSNR is the peak signal-to-noise ratio in dB on the 0-255 scale.
// Identical images give +Inf.
func PSNR(a, b image.Image) (float64, error) {
	mse, err := MSE(a, b)
	if err != nil {
		return 0, err
	}
	if mse == 0 {
		return math.Inf(1), nil
	}
	return 10 * math.Log10(255*255/mse), nil
}
