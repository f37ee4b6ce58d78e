// Package instance_test — sampling determinism and the insufficiency error.
package instance_test

import (
	"fmt"
	"sort"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/kstsp-dev/kstsp/instance"
)

// mkInstance builds n vertices on a line so every record is distinct.
func mkInstance(t *testing.T, n int) instance.Instance {
	t.Helper()
	var b strings.Builder
	for i := 0; i < n; i++ {
		fmt.Fprintf(&b, "%d 0 0 %d\n", i, i)
	}
	in, err := instance.Load(strings.NewReader(b.String()))
	require.NoError(t, err)

	return in
}

// ids collects the vertex IDs of an instance in position order.
func ids(in instance.Instance) []int {
	out := make([]int, in.Order())
	for i := range out {
		out[i] = in.Vertex(i).ID
	}

	return out
}

func TestSample_DeterministicPerSeed(t *testing.T) {
	in := mkInstance(t, 20)

	a, err := in.Sample(8, 42)
	require.NoError(t, err)
	b, err := in.Sample(8, 42)
	require.NoError(t, err)
	require.Equal(t, ids(a), ids(b), "same seed and input must yield the same sub-instance")

	c, err := in.Sample(8, 43)
	require.NoError(t, err)
	require.NotEqual(t, ids(a), ids(c), "distinct seeds should select distinct samples")
}

func TestSample_PreservesRecords(t *testing.T) {
	in := mkInstance(t, 12)

	sub, err := in.Sample(5, 7)
	require.NoError(t, err)
	require.Equal(t, 5, sub.Order())

	// Every sampled vertex is one of the originals, untouched, and no ID
	// appears twice.
	seen := map[int]bool{}
	for i := 0; i < sub.Order(); i++ {
		v := sub.Vertex(i)
		require.False(t, seen[v.ID], "duplicate vertex %d in sample", v.ID)
		seen[v.ID] = true
		require.Equal(t, in.Vertex(v.ID-1), v, "record must be carried over unchanged")
	}
}

func TestSample_FullCountSelectsEveryVertex(t *testing.T) {
	in := mkInstance(t, 9)

	sub, err := in.Sample(9, 1)
	require.NoError(t, err)

	got := ids(sub)
	sort.Ints(got)
	require.Equal(t, []int{1, 2, 3, 4, 5, 6, 7, 8, 9}, got)
}

func TestSample_NotEnoughVertices(t *testing.T) {
	in := mkInstance(t, 4)

	_, err := in.Sample(5, 1)
	require.ErrorIs(t, err, instance.ErrNotEnoughVertices)
	require.Contains(t, err.Error(), "requesting 5 out of 4")

	_, err = in.Sample(-1, 1)
	require.ErrorIs(t, err, instance.ErrNotEnoughVertices)
}
