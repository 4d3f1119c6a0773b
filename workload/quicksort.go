package workload

import (
	"context"
	"sort"

	"github.com/joeycumines/byol"
)

// QuickSort sorts data in place by parallel divide-and-conquer,
// partitioning around the last element (Lomuto scheme) and spawning the
// left partition while the right is sorted in the current goroutine.
// At or below threshold elements, it falls back to sort.Ints, the base
// case.
//
// Included here as QuickSum's sibling because an unbalanced partition
// exercises the Scheduler's admission bound under irregular recursion
// depth, which QuickSum's always-balanced midpoint split cannot.
func QuickSort(ctx context.Context, s *byol.Scheduler, data []int, threshold int) error {
	if len(data) <= 1 {
		return nil
	}
	if len(data) <= threshold {
		sort.Ints(data)
		return nil
	}

	p := partition(data)
	left, right := data[:p], data[p+1:]

	h, err := byol.Spawn(s, ctx, func(ctx context.Context) (struct{}, error) {
		return struct{}{}, QuickSort(ctx, s, left, threshold)
	})
	if err != nil {
		return err
	}

	rightErr := QuickSort(ctx, s, right, threshold)

	_, leftErr := byol.Finish(h)
	if leftErr != nil {
		return leftErr
	}
	return rightErr
}

// partition implements the Lomuto partition scheme, pivoting on the last
// element, and returns the pivot's final index.
func partition(data []int) int {
	pivot := data[len(data)-1]
	i := 0
	for j := 0; j < len(data)-1; j++ {
		if data[j] < pivot {
			data[i], data[j] = data[j], data[i]
			i++
		}
	}
	data[i], data[len(data)-1] = data[len(data)-1], data[i]
	return i
}
