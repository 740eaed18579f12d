package report

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/ajroetker/go-sortbench/harness"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rec(ds, alg string, ms int, mem int64) harness.Record {
	return harness.Record{
		Algorithm:   alg,
		Dataset:     ds,
		Size:        1000,
		Elapsed:     time.Duration(ms) * time.Millisecond,
		MemoryBytes: mem,
	}
}

func TestSummarize(t *testing.T) {
	records := []harness.Record{
		rec("reverse_sorted_data", "HeapSort", 30, 0),
		rec("reverse_sorted_data", "RadixSort", 10, 4096),
		rec("random_data", "QuickSort", 20, 0),
		rec("reverse_sorted_data", "HeapSort", 50, -100),
		rec("reverse_sorted_data", "Custom", 5, 0),
		rec("reverse_sorted_data", "RadixSort", 14, 4096),
	}

	got := Summarize(records)
	want := []Row{
		{Dataset: "reverse_sorted_data", Algorithm: "RadixSort", Size: 1000, Runs: 2, MeanMs: 12, MinMs: 10, MaxMs: 14, MeanMemoryBytes: 4096},
		{Dataset: "reverse_sorted_data", Algorithm: "HeapSort", Size: 1000, Runs: 2, MeanMs: 40, MinMs: 30, MaxMs: 50, MeanMemoryBytes: -50},
		{Dataset: "reverse_sorted_data", Algorithm: "Custom", Size: 1000, Runs: 1, MeanMs: 5, MinMs: 5, MaxMs: 5},
		{Dataset: "random_data", Algorithm: "QuickSort", Size: 1000, Runs: 1, MeanMs: 20, MinMs: 20, MaxMs: 20},
	}
	if diff := cmp.Diff(want, got, cmpopts.EquateApprox(0, 1e-9)); diff != "" {
		t.Errorf("Summarize mismatch (-want +got):\n%s", diff)
	}

	assert.Equal(t, map[string]string{
		"reverse_sorted_data": "Custom",
		"random_data":         "QuickSort",
	}, Fastest(got))
}

func TestSummarizeEmpty(t *testing.T) {
	assert.Nil(t, Summarize(nil))

	var buf bytes.Buffer
	require.NoError(t, Render(&buf, nil))
	assert.Equal(t, "no measurements\n", buf.String())
}

func TestRender(t *testing.T) {
	rows := Summarize([]harness.Record{
		rec("random_data", "RadixSort", 10, 0),
		rec("random_data", "QuickSort", 8, 0),
		rec("duplicated_data", "MergeSort", 12, 1 << 20),
	})

	var buf bytes.Buffer
	require.NoError(t, Render(&buf, rows))
	out := buf.String()

	assert.Contains(t, out, "random_data (n=1000)")
	assert.Contains(t, out, "duplicated_data (n=1000)")
	assert.Less(t, strings.Index(out, "random_data"), strings.Index(out, "duplicated_data"))

	for _, line := range strings.Split(out, "\n") {
		switch {
		case strings.Contains(line, "QuickSort"):
			assert.True(t, strings.HasSuffix(strings.TrimRight(line, " "), "*"), line)
		case strings.Contains(line, "RadixSort"):
			assert.False(t, strings.HasSuffix(strings.TrimRight(line, " "), "*"), line)
		case strings.Contains(line, "MergeSort"):
			assert.Contains(t, line, "1.000")
		}
	}
}
