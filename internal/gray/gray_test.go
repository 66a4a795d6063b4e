package gray

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromImage(t *testing.T) {
	t.Run("gray_exact", func(t *testing.T) {
		src := image.NewGray(image.Rect(0, 0, 3, 2))
		for i := range src.Pix {
			src.Pix[i] = uint8(i * 40)
		}
		g := FromImage(src)
		assert.Equal(t, 3, g.Width)
		assert.Equal(t, 2, g.Height)
		assert.Equal(t, []float64{0, 40, 80, 120, 160, 200}, g.Pix)
		assert.Equal(t, src, ToImage(g))
	})

	t.Run("sub_image", func(t *testing.T) {
		src := image.NewGray(image.Rect(0, 0, 4, 4))
		for i := range src.Pix {
			src.Pix[i] = uint8(i)
		}
		sub := src.SubImage(image.Rect(1, 1, 3, 3)).(*image.Gray)
		assert.Equal(t, []float64{5, 6, 9, 10}, FromImage(sub).Pix)
	})

	t.Run("rgba_luma", func(t *testing.T) {
		src := image.NewRGBA(image.Rect(0, 0, 2, 1))
		src.Set(0, 0, color.RGBA{255, 255, 255, 255})
		src.Set(1, 0, color.RGBA{255, 0, 0, 255})
		g := FromImage(src)
		assert.InDelta(t, 255.0, g.Pix[0], 1e-9)
		assert.InDelta(t, 0.299*255, g.Pix[1], 1e-9)
	})
}

func TestToImage(t *testing.T) {
	g := FromImage(image.NewGray(image.Rect(0, 0, 4, 1)))
	copy(g.Pix, []float64{-3, 12.4, 12.6, 300})
	img := ToImage(g)
	require.Equal(t, image.Rect(0, 0, 4, 1), img.Bounds())
	assert.Equal(t, []uint8{0, 12, 13, 255}, img.Pix)
}
