package container

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize_ScalesPeakToOne(t *testing.T) {
	t.Parallel()

	in := []float32{0.1, -0.5, 0.25}
	out := Normalize(in)

	require.Len(t, out, 3)
	assert.InDelta(t, 0.2, out[0], 1e-6)
	assert.InDelta(t, -1.0, out[1], 1e-6)
	assert.InDelta(t, 0.5, out[2], 1e-6)

	// Input untouched.
	assert.Equal(t, float32(0.1), in[0])
}

func TestNormalize_PeakBound(t *testing.T) {
	t.Parallel()

	in := []float32{0.3, -0.7, 0.05, 0.69}
	out := Normalize(in)

	var peak float32
	for _, s := range out {
		if s < 0 {
			s = -s
		}
		if s > peak {
			peak = s
		}
	}
	assert.InDelta(t, 1.0, peak, 1e-6)
}

func TestNormalize_SilencePassesThrough(t *testing.T) {
	t.Parallel()

	in := []float32{0, 0, 0}
	out := Normalize(in)

	assert.Equal(t, in, out)
}

func TestNormalize_PreservesSign(t *testing.T) {
	t.Parallel()

	out := Normalize([]float32{-0.5, 0.25})
	assert.Negative(t, out[0])
	assert.Positive(t, out[1])
}

func TestNormalize_Empty(t *testing.T) {
	t.Parallel()

	assert.Empty(t, Normalize(nil))
}

func TestTruncate_NoLimit(t *testing.T) {
	t.Parallel()

	in := make([]float32, 100)
	out, truncated := Truncate(in, 44100, 0)

	assert.False(t, truncated)
	assert.Len(t, out, 100)
}

func TestTruncate_CutsToPrefix(t *testing.T) {
	t.Parallel()

	in := make([]float32, 1000)
	for i := range in {
		in[i] = float32(i)
	}

	// 10ms at 8000 Hz = 80 samples.
	out, truncated := Truncate(in, 8000, 10)

	require.True(t, truncated)
	require.Len(t, out, 80)
	assert.Equal(t, float32(0), out[0])
	assert.Equal(t, float32(79), out[79])
}

func TestTruncate_ExactBoundIsNotTruncated(t *testing.T) {
	t.Parallel()

	in := make([]float32, 80)
	out, truncated := Truncate(in, 8000, 10)

	assert.False(t, truncated)
	assert.Len(t, out, 80)
}

func TestTruncate_BoundHolds(t *testing.T) {
	t.Parallel()

	for _, n := range []int{0, 1, 79, 80, 81, 5000} {
		out, truncated := Truncate(make([]float32, n), 8000, 10)
		assert.LessOrEqual(t, len(out), 80, "input length %d", n)
		assert.Equal(t, n > 80, truncated, "input length %d", n)
	}
}

func TestTruncate_FloorsFractionalSampleCount(t *testing.T) {
	t.Parallel()

	// 333ms at 44100 Hz = 14685.3 samples, floored.
	out, truncated := Truncate(make([]float32, 20000), 44100, 333)

	require.True(t, truncated)
	assert.Len(t, out, 14685)
}
