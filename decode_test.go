package mldrummer

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MusicallyEmbodiedML/MEMLNaut-MLDrummer/container"
	"github.com/MusicallyEmbodiedML/MEMLNaut-MLDrummer/internal/audiotest"
)

func TestDefaultRegistry_KnownExtensions(t *testing.T) {
	t.Parallel()

	for _, ext := range []string{".wav", ".mp3", ".ogg", ".aiff", ".aif"} {
		_, ok := DefaultRegistry().Get(ext)
		assert.True(t, ok, "no decoder registered for %s", ext)
	}

	_, ok := DefaultRegistry().Get(".flac")
	assert.False(t, ok)
}

func TestDecodeSourceMono_StereoDownmix(t *testing.T) {
	t.Parallel()

	src := audiotest.NewMockSource(44100, 2, 1000, func(frame, channel int) float32 {
		if channel == 0 {
			return 0.2
		}
		return 0.6
	})

	samples, err := DecodeSourceMono(src, 44100)
	require.NoError(t, err)
	require.NotEmpty(t, samples)

	for i, s := range samples {
		assert.InDeltaf(t, 0.4, s, 0.01, "sample %d", i)
	}
}

func TestDecodeSourceMono_SineThroughPipeline(t *testing.T) {
	t.Parallel()

	src := audiotest.NewSineSource(22050, 1, 2205, 440)
	samples, err := DecodeSourceMono(src, 44100)
	require.NoError(t, err)

	assert.InDelta(t, 4410, len(samples), 16)

	var peak float64
	for _, s := range samples {
		peak = math.Max(peak, math.Abs(float64(s)))
	}
	assert.InDelta(t, 1.0, peak, 0.05, "sine peak should survive resampling")
}

func TestDecodeSourceMono_SilenceStaysSilent(t *testing.T) {
	t.Parallel()

	src := audiotest.NewSilentSource(44100, 2, 500)
	samples, err := DecodeSourceMono(src, 44100)
	require.NoError(t, err)

	for _, s := range samples {
		assert.Zero(t, s)
	}

	// Silence passes through normalization unchanged.
	normalized := container.Normalize(samples)
	assert.Equal(t, samples, normalized)
}
