package pairwise

import (
	"iter"
	"sync"

	"github.com/yyyoichi/pairmark/internal/keyed"
)

// Schedule assigns bit seq to the seq-th block of the keyed visitation order.
type Schedule struct {
	order []int
	n     int
}

// NewSchedule resolves which blocks carry the first want bits of a payload.
// Only the first UsageRatio share of the order is eligible.
func NewSchedule(total, want int, cfg Config) Schedule {
	order := keyed.Order(total, cfg.Key)
	eligible := int(float64(total) * cfg.UsageRatio)
	return Schedule{order: order, n: max(0, min(eligible, want))}
}

// Len is the number of bits that have a block.
func (s Schedule) Len() int { return s.n }

// Block returns the block id carrying bit seq.
func (s Schedule) Block(seq int) int { return s.order[seq] }

// All yields (seq, blockID) for every scheduled bit.
func (s Schedule) All() iter.Seq2[int, int] {
	return s.Range(0, s.n)
}

// Range yields (seq, blockID) for seq in [lo, hi).
func (s Schedule) Range(lo, hi int) iter.Seq2[int, int] {
	return func(yield func(int, int) bool) {
		for seq := max(lo, 0); seq < min(hi, s.n); seq++ {
			if !yield(seq, s.order[seq]) {
				return
			}
		}
	}
}

// parallel splits [0, n) into contiguous chunks, one goroutine each.
func parallel(n, workers int, fn func(lo, hi int)) {
	if n <= 0 {
		return
	}
	workers = min(max(workers, 1), n)
	chunk := (n + workers - 1) / workers
	var wg sync.WaitGroup
	for lo := 0; lo < n; lo += chunk {
		wg.Add(1)
		go func(lo, hi int) {
			defer wg.Done()
			fn(lo, hi)
		}(lo, min(lo+chunk, n))
	}
	wg.Wait()
}
