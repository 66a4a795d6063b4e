package bench

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/yyyoichi/pairmark/internal/block"
	"github.com/yyyoichi/pairmark/internal/dct"
	"github.com/yyyoichi/pairmark/internal/keyed"
)

func BenchmarkBlockDCT(b *testing.B) {
	for _, size := range [][2]int{{1280, 720}, {1920, 1080}, {3840, 2160}} {
		w, h := size[0], size[1]
		g := block.NewGrid(w, h)
		for i := range g.Pix {
			g.Pix[i] = rand.Float64() * 255
		}
		padded, _, err := block.Pad(g, 8)
		if err != nil {
			b.Fatal(err)
		}
		layout := block.NewLayout(padded.Width, padded.Height, 8)

		b.Run(fmt.Sprintf("new_%dx%d", w, h), func(b *testing.B) {
			data := make([]float64, layout.BlockArea())
			for b.Loop() {
				for id := range layout.Total() {
					layout.Load(padded, id, data)
					_, idct := dct.New(8).Exec(data)
					idct()
					layout.Store(padded, id, data)
				}
			}
		})

		b.Run(fmt.Sprintf("cached_%dx%d", w, h), func(b *testing.B) {
			cache := dct.NewCache()
			data := make([]float64, layout.BlockArea())
			for b.Loop() {
				d := cache.New(8)
				for id := range layout.Total() {
					layout.Load(padded, id, data)
					_, idct := d.Exec(data)
					idct()
					layout.Store(padded, id, data)
				}
			}
		})
	}
}

func BenchmarkKeyed(b *testing.B) {
	layout := block.NewLayout(1920, 1080, 8)
	b.Run("Order", func(b *testing.B) {
		for b.Loop() {
			_ = keyed.Order(layout.Total(), 42)
		}
	})
	b.Run("Pair", func(b *testing.B) {
		for b.Loop() {
			for id := range layout.Total() {
				_, _ = keyed.Pair(id, 42, keyed.DefaultBand)
			}
		}
	})
}
