package bench_test

import (
	"image"
	"image/color"
	"testing"

	"github.com/yyyoichi/pairmark"
	"github.com/yyyoichi/pairmark/ecc"
	"github.com/yyyoichi/pairmark/textmark"
)

var fhdCases = []struct {
	name string
	opts []pairmark.Option
}{
	{name: "8x8_R3", opts: []pairmark.Option{
		pairmark.WithBlockSize(8),
		pairmark.WithRepetition(3),
	}},
	{name: "8x8_Golay", opts: []pairmark.Option{
		pairmark.WithBlockSize(8),
		pairmark.WithECC(ecc.Golay(ecc.DefaultShuffleSeed)),
	}},
	{name: "8x8_R3_1worker", opts: []pairmark.Option{
		pairmark.WithBlockSize(8),
		pairmark.WithWorkers(1),
	}},
	{name: "4x4_R3", opts: []pairmark.Option{
		pairmark.WithBlockSize(4),
		pairmark.WithBand(pairmark.WideBand),
	}},
	{name: "16x16_R3", opts: []pairmark.Option{
		pairmark.WithBlockSize(16),
		pairmark.WithThreshold(20),
	}},
}

func BenchmarkEmbed_FHD(b *testing.B) {
	img := createImage(1920, 1080)
	mark := createTestMark()
	ctx := b.Context()

	for _, tt := range fhdCases {
		b.Run(tt.name, func(b *testing.B) {
			p, err := pairmark.New(tt.opts...)
			if err != nil {
				b.Fatalf("Failed to create codec (%s): %v", tt.name, err)
			}
			for b.Loop() {
				dist, _, err := p.Embed(ctx, img, mark)
				if err != nil {
					b.Fatalf("Failed to embed watermark (%s): %v", tt.name, err)
				}
				_ = dist
			}
		})
	}
}

func BenchmarkExtract_FHD(b *testing.B) {
	img := createImage(1920, 1080)
	mark := createTestMark()
	ctx := b.Context()

	for _, tt := range fhdCases {
		b.Run(tt.name, func(b *testing.B) {
			p, err := pairmark.New(tt.opts...)
			if err != nil {
				b.Fatalf("Failed to create codec (%s): %v", tt.name, err)
			}
			marked, _, err := p.Embed(ctx, img, mark)
			if err != nil {
				b.Fatalf("Failed to embed watermark (%s): %v", tt.name, err)
			}
			for b.Loop() {
				got, err := p.Extract(ctx, marked, len(mark))
				if err != nil {
					b.Fatalf("Failed to extract watermark (%s): %v", tt.name, err)
				}
				_ = got
			}
		})
	}
}

// createImage creates a widthxheight test image with gradient pattern
func createImage(width, height int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := range height {
		for x := range width {
			r := uint8(32 + (x*191)/width)
			g := uint8(32 + (y*191)/height)
			b := uint8(32 + ((x+y)*191)/(width+height))
			img.Set(x, y, color.RGBA{r, g, b, 255})
		}
	}
	return img
}

func createTestMark() []bool {
	return textmark.Encode("pairmark benchmark payload, 2025")
}
