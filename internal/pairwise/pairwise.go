// Package pairwise hides one bit per block in the sign of the difference
// between two mid-band DCT coefficients of that block.
package pairwise

import (
	"context"
	"fmt"

	"github.com/yyyoichi/pairmark/internal/block"
	"github.com/yyyoichi/pairmark/internal/dct"
	"github.com/yyyoichi/pairmark/internal/keyed"
	"github.com/yyyoichi/pairmark/internal/kmeans"
	"gonum.org/v1/gonum/mat"
)

// Embed writes bits into a copy of src and returns it with the number of
// bits that found a block. Fewer applied bits than len(bits) is a capacity
// shortfall, not an error. src must already be padded to the block size.
// dctCache may be nil.
func Embed(ctx context.Context, src block.Grid, bits []bool, cfg Config, dctCache *dct.Cache) (block.Grid, int, error) {
	layout, err := prepare(ctx, src, cfg)
	if err != nil {
		return block.Grid{}, 0, err
	}
	var (
		dist  = src.Copy()
		sched = NewSchedule(layout.Total(), len(bits), cfg)
		dcos  = newDCT(cfg.BlockSize, dctCache)
	)

	// Blocks outside the schedule keep their copied pixels untouched.
	parallel(sched.Len(), cfg.workers(), func(lo, hi int) {
		data := make([]float64, layout.BlockArea())
		for seq, id := range sched.Range(lo, hi) {
			layout.Load(dist, id, data)
			coef, idct := dcos.Exec(data)
			a, b := keyed.Pair(id, cfg.Key, cfg.Band)
			if !force(coef, a, b, bits[seq], cfg.Threshold) {
				continue
			}
			idct()
			clip(data, cfg.Peak)
			layout.Store(dist, id, data)
		}
	})
	return dist, sched.Len(), nil
}

// Extract reads n bits from src. Bits without a block, because the image is
// smaller than at embed time, are returned as false.
func Extract(ctx context.Context, src block.Grid, n int, cfg Config, dctCache *dct.Cache) ([]bool, error) {
	diffs, err := Differences(ctx, src, n, cfg, dctCache)
	if err != nil {
		return nil, err
	}
	bits := make([]bool, max(n, 0))
	switch cfg.Decision {
	case DecisionAdaptive:
		_ = copy(bits, kmeans.OneDimKmeans(diffs))
	default:
		for i, d := range diffs {
			bits[i] = d > 0
		}
	}
	return bits, nil
}

// Differences returns c1 - c2 for each of the first n scheduled blocks.
// The result is shorter than n when the image has fewer usable blocks.
func Differences(ctx context.Context, src block.Grid, n int, cfg Config, dctCache *dct.Cache) ([]float64, error) {
	layout, err := prepare(ctx, src, cfg)
	if err != nil {
		return nil, err
	}
	var (
		sched = NewSchedule(layout.Total(), n, cfg)
		dcos  = newDCT(cfg.BlockSize, dctCache)
		diffs = make([]float64, sched.Len())
	)
	parallel(sched.Len(), cfg.workers(), func(lo, hi int) {
		data := make([]float64, layout.BlockArea())
		for seq, id := range sched.Range(lo, hi) {
			layout.Load(src, id, data)
			coef, _ := dcos.Exec(data)
			a, b := keyed.Pair(id, cfg.Key, cfg.Band)
			diffs[seq] = coef.At(a.U, a.V) - coef.At(b.U, b.V)
		}
	})
	return diffs, nil
}

func prepare(ctx context.Context, src block.Grid, cfg Config) (block.Layout, error) {
	if err := cfg.Validate(); err != nil {
		return block.Layout{}, err
	}
	layout := block.NewLayout(src.Width, src.Height, cfg.BlockSize)
	if !layout.Aligned() {
		return block.Layout{}, fmt.Errorf("%w: %dx%d with block size %d", ErrNotAligned, src.Width, src.Height, cfg.BlockSize)
	}
	if err := ctx.Err(); err != nil {
		return block.Layout{}, err
	}
	return layout, nil
}

func newDCT(n int, cache *dct.Cache) *dct.DCT {
	if cache == nil {
		return dct.New(n)
	}
	return cache.New(n)
}

// force pushes the coefficients at a and b apart until c1 - c2 >= t for a
// true bit or c1 - c2 <= -t for a false bit. It reports whether anything
// changed.
func force(coef *mat.Dense, a, b keyed.Position, bit bool, t float64) bool {
	c1, c2 := coef.At(a.U, a.V), coef.At(b.U, b.V)
	diff := c1 - c2
	if bit {
		if diff >= t {
			return false
		}
		shift := (t - diff) / 2
		coef.Set(a.U, a.V, c1+shift)
		coef.Set(b.U, b.V, c2-shift)
		return true
	}
	if diff <= -t {
		return false
	}
	shift := (t + diff) / 2
	coef.Set(a.U, a.V, c1-shift)
	coef.Set(b.U, b.V, c2+shift)
	return true
}

func clip(data []float64, peak float64) {
	for i, v := range data {
		data[i] = min(max(v, 0), peak)
	}
}
