// Package instance_test validates the input boundary: record parsing, ID
// assignment, the error taxonomy (empty / malformed / missing), and the
// integer-rounded cost functions.
package instance_test

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/kstsp-dev/kstsp/instance"
)

func TestLoad_AssignsIDsInInputOrder(t *testing.T) {
	in, err := instance.Load(strings.NewReader(
		"0 0 10 10\n" +
			"3 4 0 0\n" +
			"\n" + // blank lines are skipped, not records
			"1.5 -2.5 7 8\n"))
	require.NoError(t, err)
	require.Equal(t, 3, in.Order())

	// IDs are 1..n in input order; positions are 0-based.
	for i := 0; i < in.Order(); i++ {
		require.Equal(t, i+1, in.Vertex(i).ID)
	}
	require.Equal(t, instance.Point{X: 3, Y: 4}, in.Vertex(1).A)
	require.Equal(t, instance.Point{X: 7, Y: 8}, in.Vertex(2).B)
	require.Equal(t, -2.5, in.Vertex(2).A.Y)
}

func TestLoad_ErrorTaxonomy(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  error
	}{
		{name: "empty input", input: "", want: instance.ErrEmptyInstance},
		{name: "only blank lines", input: "\n  \n\t\n", want: instance.ErrEmptyInstance},
		{name: "too few fields", input: "1 2 3\n", want: instance.ErrMalformedRecord},
		{name: "too many fields", input: "1 2 3 4 5\n", want: instance.ErrMalformedRecord},
		{name: "non-numeric field", input: "1 2 three 4\n", want: instance.ErrMalformedRecord},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := instance.Load(strings.NewReader(tc.input))
			require.ErrorIs(t, err, tc.want)
		})
	}
}

func TestLoad_MalformedRecordReportsLineNumber(t *testing.T) {
	_, err := instance.Load(strings.NewReader("0 0 0 0\n\nbad line here x\n"))
	require.ErrorIs(t, err, instance.ErrMalformedRecord)
	require.Contains(t, err.Error(), "line 3")
}

func TestLoadFile_MissingFile(t *testing.T) {
	_, err := instance.LoadFile(filepath.Join(t.TempDir(), "no-such-file.txt"))
	require.ErrorIs(t, err, instance.ErrEmptyInstance)
}

func TestCost_CeilOfEuclideanPerMetric(t *testing.T) {
	// Metric A: 3-4-5 triangle (exact 5); metric B: unit diagonal (⌈√2⌉ = 2).
	in, err := instance.Load(strings.NewReader(
		"0 0 0 0\n" +
			"3 4 1 1\n"))
	require.NoError(t, err)

	require.Equal(t, 5.0, in.Cost(0, 1, instance.MetricA))
	require.Equal(t, 2.0, in.Cost(0, 1, instance.MetricB))

	// Symmetric and zero on the diagonal of the cost relation.
	require.Equal(t, in.Cost(0, 1, instance.MetricA), in.Cost(1, 0, instance.MetricA))
	require.Equal(t, 0.0, in.Cost(1, 1, instance.MetricB))
}

func TestVertices_ReturnsIndependentCopy(t *testing.T) {
	in, err := instance.Load(strings.NewReader("0 0 0 0\n1 1 1 1\n"))
	require.NoError(t, err)

	vs := in.Vertices()
	vs[0].ID = 99
	require.Equal(t, 1, in.Vertex(0).ID, "mutating the copy must not touch the instance")
}
