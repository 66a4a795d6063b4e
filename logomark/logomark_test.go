package logomark

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// createLogo draws a white square on black, covering the left half of the
// top half of the image.
func createLogo(w, h int) *image.Gray {
	img := image.NewGray(image.Rect(0, 0, w, h))
	for y := range h / 2 {
		for x := range w / 2 {
			img.SetGray(x, y, color.Gray{Y: 255})
		}
	}
	return img
}

func TestEncode(t *testing.T) {
	bits := Encode(createLogo(128, 128))
	require.Len(t, bits, DefaultWidth*DefaultHeight)

	// away from the square's edges the resized logo keeps its colors
	assert.True(t, bits[4*DefaultWidth+4])
	assert.False(t, bits[4*DefaultWidth+28])
	assert.False(t, bits[28*DefaultWidth+4])
	assert.False(t, bits[28*DefaultWidth+28])
}

func TestEncode_Options(t *testing.T) {
	bits := Encode(createLogo(64, 64), WithSize(16, 8))
	require.Len(t, bits, 16*8)
	assert.True(t, bits[0])
	assert.False(t, bits[7*16+15])

	// nothing exceeds 255
	bits = Encode(createLogo(64, 64), WithThreshold(255))
	for _, v := range bits {
		assert.False(t, v)
	}

	assert.Len(t, Encode(createLogo(8, 8), WithSize(0, -1)), 1)
}

func TestImage(t *testing.T) {
	logo := createLogo(32, 32)
	bits := Encode(logo)
	img := Image(bits, DefaultWidth, DefaultHeight)
	assert.Equal(t, logo.Pix, img.Pix)
	assert.Equal(t, bits, Encode(img))

	short := Image([]bool{true}, 2, 2)
	assert.Equal(t, []uint8{255, 0, 0, 0}, short.Pix)
	long := Image([]bool{true, true, true, true, true}, 2, 2)
	assert.Equal(t, []uint8{255, 255, 255, 255}, long.Pix)
}
