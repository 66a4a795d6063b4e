// Package attack degrades watermarked images the way distribution does:
// lossy recompression, sensor-like noise and rescaling.
package attack

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/jpeg"
	"math/rand/v2"

	"github.com/yyyoichi/pairmark/internal/gray"
	"golang.org/x/image/draw"
	"gonum.org/v1/gonum/stat/distuv"
)

var (
	ErrInvalidQuality = errors.New("jpeg quality must be in [1, 100]")
	ErrInvalidScale   = errors.New("scale must be positive")
)

// Attack transforms an image. It never modifies src.
type Attack interface {
	Name() string
	Apply(src image.Image) (image.Image, error)
}

// JPEG re-encodes at Quality and decodes again.
type JPEG struct {
	Quality int
}

func (a JPEG) Name() string { return fmt.Sprintf("jpeg-q%d", a.Quality) }

func (a JPEG) Apply(src image.Image) (image.Image, error) {
	if a.Quality < 1 || a.Quality > 100 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidQuality, a.Quality)
	}
	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, src, &jpeg.Options{Quality: a.Quality}); err != nil {
		return nil, fmt.Errorf("failed to encode jpeg: %w", err)
	}
	dist, err := jpeg.Decode(&buf)
	if err != nil {
		return nil, fmt.Errorf("failed to decode jpeg: %w", err)
	}
	return dist, nil
}

// Gaussian adds zero-mean noise with standard deviation Sigma, measured on
// the [0, 1] intensity scale, to the luma of src.
type Gaussian struct {
	Sigma float64
	Seed  uint64
}

func (a Gaussian) Name() string { return fmt.Sprintf("gauss-%g", a.Sigma) }

func (a Gaussian) Apply(src image.Image) (image.Image, error) {
	g := gray.FromImage(src)
	if a.Sigma <= 0 {
		return gray.ToImage(g), nil
	}
	noise := distuv.Normal{
		Mu:    0,
		Sigma: a.Sigma * 255,
		Src:   rand.NewPCG(a.Seed, a.Seed^0x9e3779b97f4a7c15),
	}
	for i := range g.Pix {
		g.Pix[i] += noise.Rand()
	}
	return gray.ToImage(g), nil
}

// Resample scales src by Scale and back to its original size, losing the
// detail the smaller image cannot hold.
type Resample struct {
	Scale float64
}

func (a Resample) Name() string { return fmt.Sprintf("resize-%g", a.Scale) }

func (a Resample) Apply(src image.Image) (image.Image, error) {
	if !(a.Scale > 0) {
		return nil, fmt.Errorf("%w: got %v", ErrInvalidScale, a.Scale)
	}
	bounds := src.Bounds()
	w := max(int(float64(bounds.Dx())*a.Scale+0.5), 1)
	h := max(int(float64(bounds.Dy())*a.Scale+0.5), 1)

	small := image.NewGray(image.Rect(0, 0, w, h))
	draw.BiLinear.Scale(small, small.Bounds(), src, bounds, draw.Src, nil)
	dist := image.NewGray(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	draw.CatmullRom.Scale(dist, dist.Bounds(), small, small.Bounds(), draw.Src, nil)
	return dist, nil
}

// None returns a copy of src. It is the baseline row of an attack matrix.
type None struct{}

func (None) Name() string { return "none" }

func (None) Apply(src image.Image) (image.Image, error) {
	return gray.ToImage(gray.FromImage(src)), nil
}
