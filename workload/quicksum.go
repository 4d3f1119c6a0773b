package workload

import (
	"context"

	"github.com/joeycumines/byol"
)

// QuickSum computes sum_{k=lo}^{hi-1} k, modulo 2^64, by parallel
// divide-and-conquer.
//
// The range is split at its midpoint; the left half is spawned (admitted
// or deferred, per the Scheduler's admission decision) while the right
// half is computed in the current goroutine, then the two halves are
// combined after Finish. A range of at most threshold elements is summed
// sequentially with no Spawn at all.
func QuickSum(ctx context.Context, s *byol.Scheduler, lo, hi, threshold int) (uint64, error) {
	if hi <= lo {
		return 0, nil
	}
	if hi-lo <= threshold {
		var sum uint64
		for i := lo; i < hi; i++ {
			sum += uint64(i)
		}
		return sum, nil
	}

	mid := lo + (hi-lo)/2

	h, err := byol.Spawn(s, ctx, func(ctx context.Context) (uint64, error) {
		return QuickSum(ctx, s, lo, mid, threshold)
	})
	if err != nil {
		return 0, err
	}

	right, rightErr := QuickSum(ctx, s, mid, hi, threshold)

	// h must be finished exactly once regardless of whether the right
	// half failed.
	left, leftErr := byol.Finish(h)
	if leftErr != nil {
		return 0, leftErr
	}
	if rightErr != nil {
		return 0, rightErr
	}
	return left + right, nil
}
