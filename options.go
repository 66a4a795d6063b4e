package pairmark

import (
	"fmt"

	"github.com/yyyoichi/pairmark/ecc"
	"github.com/yyyoichi/pairmark/internal/pairwise"
)

type Option func(*Pairmark) error

// WithKey sets the secret that drives block order and pair selection.
// Default is 42.
func WithKey(key int64) Option {
	return func(p *Pairmark) error {
		p.cfg.Key = key
		return nil
	}
}

// WithThreshold sets the minimum |c1 - c2| forced for every embedded bit.
// Larger values increase noise but improve robustness. Default is 10.
func WithThreshold(t float64) Option {
	return func(p *Pairmark) error {
		p.cfg.Threshold = t
		return nil
	}
}

// WithRepetition repeats every payload bit r times. Default is 3.
// It replaces any scheme set by WithECC.
func WithRepetition(r int) Option {
	return func(p *Pairmark) error {
		rep, err := ecc.NewRepetition(r)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
		}
		p.scheme = rep
		return nil
	}
}

// WithECC replaces the error-correcting scheme, e.g. ecc.Golay.
func WithECC(scheme ecc.Scheme) Option {
	return func(p *Pairmark) error {
		if scheme == nil {
			return fmt.Errorf("%w: nil error-correcting scheme", ErrInvalidConfig)
		}
		if err := ecc.Validate(scheme); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
		}
		p.scheme = scheme
		return nil
	}
}

// WithBlockSize sets the side of the square DCT blocks. Default is 8.
// Blocks smaller than 5 need a band that fits, see WithBand.
func WithBlockSize(size int) Option {
	return func(p *Pairmark) error {
		p.cfg.BlockSize = size
		return nil
	}
}

// WithBand sets the mid-band positions pairs are drawn from.
func WithBand(band Band) Option {
	return func(p *Pairmark) error {
		p.cfg.Band = append(Band(nil), band...)
		return nil
	}
}

// WithUsageRatio limits the payload to the first ratio share of the keyed
// block order. Default is 1.
func WithUsageRatio(ratio float64) Option {
	return func(p *Pairmark) error {
		p.cfg.UsageRatio = ratio
		return nil
	}
}

// WithPeak sets the intensity scale the codec works in. Pixels are clipped
// to [0, peak] and the threshold is read on that scale. Default is 255.
func WithPeak(peak float64) Option {
	return func(p *Pairmark) error {
		p.cfg.Peak = peak
		return nil
	}
}

// WithWorkers bounds the goroutines per call. Zero uses GOMAXPROCS.
func WithWorkers(n int) Option {
	return func(p *Pairmark) error {
		p.cfg.Workers = n
		return nil
	}
}

// WithAdaptiveDecision reads bits by splitting the extracted differences
// into two clusters instead of by their sign. It may help after attacks
// that shift every difference the same way.
func WithAdaptiveDecision() Option {
	return func(p *Pairmark) error {
		p.cfg.Decision = pairwise.DecisionAdaptive
		return nil
	}
}
