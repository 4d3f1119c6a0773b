package workload

import (
	"context"
	"testing"

	"github.com/joeycumines/byol"
	"github.com/stretchr/testify/require"
)

func TestQuickSum_Scenarios(t *testing.T) {
	for _, maxTasks := range []int{1, 4, 64} {
		s, err := byol.New(byol.WithMaxTasks(maxTasks))
		require.NoError(t, err)

		got, err := QuickSum(context.Background(), s, 0, 10000, 64)
		require.NoError(t, err)
		require.Equal(t, uint64(49995000), got, "max_tasks=%d", maxTasks)

		require.NoError(t, s.Close())
	}
}

func TestQuickSum_BaseCase(t *testing.T) {
	s, err := byol.New(byol.WithMaxTasks(4))
	require.NoError(t, err)
	defer s.Close()

	got, err := QuickSum(context.Background(), s, 0, 50, 100)
	require.NoError(t, err)
	require.Equal(t, uint64(1225), got)
	require.Zero(t, s.ActiveTasks())
}

func TestQuickSum_EmptyRange(t *testing.T) {
	s, err := byol.New(byol.WithMaxTasks(4))
	require.NoError(t, err)
	defer s.Close()

	got, err := QuickSum(context.Background(), s, 10, 10, 4)
	require.NoError(t, err)
	require.Zero(t, got)
}
