package workload

import (
	"context"
	"math/rand"
	"sort"
	"testing"

	"github.com/joeycumines/byol"
	"github.com/stretchr/testify/require"
)

func TestQuickSort_MatchesSortInts(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	for _, maxTasks := range []int{1, 4, 16} {
		data := make([]int, 5000)
		for i := range data {
			data[i] = rng.Intn(1 << 20)
		}
		want := append([]int(nil), data...)
		sort.Ints(want)

		s, err := byol.New(byol.WithMaxTasks(maxTasks))
		require.NoError(t, err)

		require.NoError(t, QuickSort(context.Background(), s, data, 64))
		require.Equal(t, want, data, "max_tasks=%d", maxTasks)

		require.NoError(t, s.Close())
	}
}

func TestQuickSort_SmallInputs(t *testing.T) {
	s, err := byol.New(byol.WithMaxTasks(4))
	require.NoError(t, err)
	defer s.Close()

	for _, data := range [][]int{nil, {1}, {2, 1}, {3, 1, 2}} {
		want := append([]int(nil), data...)
		sort.Ints(want)
		require.NoError(t, QuickSort(context.Background(), s, data, 8))
		require.Equal(t, want, data)
	}
}
