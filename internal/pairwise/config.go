package pairwise

import (
	"errors"
	"fmt"
	"math"
	"runtime"

	"github.com/yyyoichi/pairmark/internal/block"
	"github.com/yyyoichi/pairmark/internal/keyed"
)

var (
	ErrInvalidConfig = errors.New("invalid configuration")
	ErrNotAligned    = errors.New("image dimensions are not a multiple of the block size")
)

// Decision selects how an extracted coefficient difference becomes a bit.
type Decision int

const (
	// DecisionSign reads 1 when c1 - c2 > 0.
	DecisionSign Decision = iota
	// DecisionAdaptive splits the differences into two clusters and reads
	// the high cluster as 1.
	DecisionAdaptive
)

// Config is the immutable parameter set shared by an embed call and every
// extract call that must read its result.
type Config struct {
	BlockSize int
	Key       int64
	Threshold float64
	Band      keyed.Band
	// UsageRatio is the fraction of visited blocks that may carry a bit.
	UsageRatio float64
	// Peak is the largest intensity; pixels are clipped to [0, Peak].
	Peak     float64
	Decision Decision
	// Workers bounds the goroutines used per call. Zero means GOMAXPROCS.
	Workers int
}

func DefaultConfig() Config {
	return Config{
		BlockSize:  8,
		Key:        42,
		Threshold:  10,
		Band:       keyed.DefaultBand,
		UsageRatio: 1,
		Peak:       255,
	}
}

func (c Config) Validate() error {
	if c.BlockSize <= 0 {
		return fmt.Errorf("%w: %w: got %d", ErrInvalidConfig, block.ErrInvalidBlockSize, c.BlockSize)
	}
	if err := c.Band.Validate(c.BlockSize); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if !(c.Threshold > 0) || math.IsInf(c.Threshold, 0) {
		return fmt.Errorf("%w: threshold must be positive and finite, got %v", ErrInvalidConfig, c.Threshold)
	}
	if !(c.UsageRatio > 0 && c.UsageRatio <= 1) {
		return fmt.Errorf("%w: usage ratio must be in (0, 1], got %v", ErrInvalidConfig, c.UsageRatio)
	}
	if !(c.Peak > 0) || math.IsInf(c.Peak, 0) {
		return fmt.Errorf("%w: peak must be positive and finite, got %v", ErrInvalidConfig, c.Peak)
	}
	if c.Decision != DecisionSign && c.Decision != DecisionAdaptive {
		return fmt.Errorf("%w: unknown decision %d", ErrInvalidConfig, c.Decision)
	}
	if c.Workers < 0 {
		return fmt.Errorf("%w: workers must not be negative, got %d", ErrInvalidConfig, c.Workers)
	}
	return nil
}

// Capacity is the number of bits a width x height image can carry.
func (c Config) Capacity(width, height int) int {
	l := block.NewLayout(width, height, c.BlockSize)
	return int(float64(l.Total()) * c.UsageRatio)
}

func (c Config) workers() int {
	if c.Workers > 0 {
		return c.Workers
	}
	return runtime.GOMAXPROCS(0)
}
