package writers

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHistogramIntegerBins(t *testing.T) {
	bins := Histogram([]float64{-2, -2, 1, 3, 3, 3}, true)
	require.Len(t, bins, 6)
	assert.Equal(t, -2.5, bins[0].Lo)
	assert.Equal(t, 3.5, bins[5].Hi)
	counts := make([]int, len(bins))
	for i, b := range bins {
		counts[i] = b.Count
	}
	assert.Equal(t, []int{2, 0, 0, 1, 0, 3}, counts)
}

func TestHistogramContinuousBins(t *testing.T) {
	vals := make([]float64, 100)
	for i := range vals {
		vals[i] = float64(i) * 1e-9
	}
	bins := Histogram(vals, false)
	require.Len(t, bins, 10)
	total := 0
	for _, b := range bins {
		assert.Less(t, b.Lo, b.Hi)
		total += b.Count
	}
	assert.Equal(t, 100, total)
	assert.Equal(t, 10, bins[9].Count, "max value lands in the last bin")
}

func TestHistogramSingleValue(t *testing.T) {
	bins := Histogram([]float64{4e-9}, false)
	require.Len(t, bins, 1)
	assert.Equal(t, 1, bins[0].Count)
	assert.Less(t, bins[0].Lo, bins[0].Hi)
	assert.Nil(t, Histogram(nil, true))
}

func TestWriteHistogramPNG(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteHistogramPNG(&buf, "offsets", "offset", Histogram([]float64{-1, 1, 1, 2}, true)))
	require.Greater(t, buf.Len(), 8)
	assert.Equal(t, []byte("\x89PNG\r\n\x1a\n"), buf.Bytes()[:8])

	require.Error(t, WriteHistogramPNG(&buf, "t", "x", nil))
}
