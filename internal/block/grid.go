package block

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidBlockSize = errors.New("block size must be positive")
)

// Grid is a single channel image stored row-major.
type Grid struct {
	Width, Height int
	Pix           []float64
}

// Shape is the size of an image before padding.
type Shape struct {
	Width, Height int
}

func NewGrid(width, height int) Grid {
	return Grid{
		Width:  width,
		Height: height,
		Pix:    make([]float64, width*height),
	}
}

func (g Grid) At(x, y int) float64 {
	return g.Pix[y*g.Width+x]
}

func (g Grid) Set(x, y int, v float64) {
	g.Pix[y*g.Width+x] = v
}

func (g Grid) Shape() Shape {
	return Shape{Width: g.Width, Height: g.Height}
}

func (g Grid) Copy() Grid {
	pix := make([]float64, len(g.Pix))
	_ = copy(pix, g.Pix)
	g.Pix = pix
	return g
}

// Pad grows g to the next multiple of size in each dimension.
// New samples mirror the image around its last row and column without
// repeating the edge sample, so no artificial edge appears at the border.
func Pad(g Grid, size int) (Grid, Shape, error) {
	if size <= 0 {
		return Grid{}, Shape{}, fmt.Errorf("%w: got %d", ErrInvalidBlockSize, size)
	}
	shape := g.Shape()
	pw := (size - g.Width%size) % size
	ph := (size - g.Height%size) % size
	if pw == 0 && ph == 0 {
		return g.Copy(), shape, nil
	}

	dist := NewGrid(g.Width+pw, g.Height+ph)
	for y := range dist.Height {
		sy := reflect(y, g.Height)
		row := dist.Pix[y*dist.Width : (y+1)*dist.Width]
		_ = copy(row, g.Pix[sy*g.Width:(sy+1)*g.Width])
		for x := g.Width; x < dist.Width; x++ {
			row[x] = g.Pix[sy*g.Width+reflect(x, g.Width)]
		}
	}
	return dist, shape, nil
}

// Unpad crops the top-left region of size s.
func Unpad(g Grid, s Shape) Grid {
	w, h := min(s.Width, g.Width), min(s.Height, g.Height)
	dist := NewGrid(w, h)
	for y := range h {
		_ = copy(dist.Pix[y*w:(y+1)*w], g.Pix[y*g.Width:y*g.Width+w])
	}
	return dist
}

// reflect maps i onto [0, n) by mirroring with period 2(n-1).
func reflect(i, n int) int {
	if n <= 1 {
		return 0
	}
	period := 2 * (n - 1)
	i %= period
	if i >= n {
		i = period - i
	}
	return i
}
