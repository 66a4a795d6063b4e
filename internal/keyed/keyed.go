// Package keyed derives every keyed choice of the codec: the order in which
// blocks are visited and the coefficient pair used inside each block.
// Embedding and extraction both call this package, never their own copy.
package keyed

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidBand = errors.New("mid-band needs at least two distinct positions inside the block")
)

// Position is a (u, v) frequency index; u is vertical, v horizontal.
type Position struct {
	U, V int
}

// Band is the ordered mid-band candidate set.
type Band []Position

var (
	// DefaultBand avoids the DC term and the highest frequencies of an 8x8 block.
	DefaultBand = Band{{1, 2}, {2, 1}, {2, 2}, {1, 3}, {3, 1}, {2, 3}, {3, 2}, {1, 4}, {4, 1}}
	// WideBand reaches one step closer to DC than DefaultBand.
	WideBand = Band{{0, 2}, {0, 3}, {1, 1}, {1, 2}, {1, 3}, {2, 0}, {2, 1}, {2, 2}, {3, 0}, {3, 1}}
)

// Validate checks the band against a block edge length.
func (b Band) Validate(size int) error {
	if len(b) < 2 {
		return fmt.Errorf("%w: %d positions", ErrInvalidBand, len(b))
	}
	seen := make(map[Position]struct{}, len(b))
	for _, p := range b {
		if p.U < 0 || p.V < 0 || p.U >= size || p.V >= size {
			return fmt.Errorf("%w: %v outside %dx%d", ErrInvalidBand, p, size, size)
		}
		if _, ok := seen[p]; ok {
			return fmt.Errorf("%w: %v repeated", ErrInvalidBand, p)
		}
		seen[p] = struct{}{}
	}
	return nil
}

// Order returns the visitation order of total blocks: a permutation of
// [0, total) seeded by key.
func Order(total int, key int64) []int {
	index := make([]int, total)
	for i := range index {
		index[i] = i
	}
	rd := newRand(key)
	rd.Shuffle(total, func(i, j int) {
		index[i], index[j] = index[j], index[i]
	})
	return index
}

// Pair returns the two distinct band positions used by block blockID.
// It depends only on key and blockID, not on the visitation order.
func Pair(blockID int, key int64, band Band) (a, b Position) {
	n := len(band)
	rd := newRand(key + int64(blockID))
	ia := rd.Intn(n)
	ib := (ia + 1 + rd.Intn(n-1)) % n
	return band[ia], band[ib]
}
