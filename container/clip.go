// SPDX-License-Identifier: EPL-2.0

package container

// Clip is one decoded, processed mono buffer, ready to pack. It is
// built once by the decode/normalize/truncate pipeline and not
// modified afterwards.
type Clip struct {
	// Name is the semantic identifier, usually the source file stem.
	Name string

	// Samples in [-1, 1] after normalization.
	Samples []float32

	// Truncated reports that the clip exceeded the configured length
	// bound and was cut.
	Truncated bool
}

// Normalize rescales samples so the loudest one sits at ±1.0, keeping
// every sample's sign. Silence is returned unchanged, as is an empty
// buffer. The input slice is never modified.
func Normalize(samples []float32) []float32 {
	var peak float32
	for _, s := range samples {
		if s < 0 {
			s = -s
		}
		if s > peak {
			peak = s
		}
	}

	if peak == 0 {
		return samples
	}

	out := make([]float32, len(samples))
	inv := 1.0 / peak
	for i, s := range samples {
		out[i] = s * inv
	}
	return out
}

// Truncate bounds a clip to maxLengthMS milliseconds at sampleRate,
// keeping the leading samples. maxLengthMS <= 0 disables the bound.
// The returned flag reports whether anything was cut.
func Truncate(samples []float32, sampleRate uint32, maxLengthMS int) ([]float32, bool) {
	if maxLengthMS <= 0 {
		return samples, false
	}

	maxSamples := int(float64(maxLengthMS) / 1000.0 * float64(sampleRate))
	if len(samples) <= maxSamples {
		return samples, false
	}
	return samples[:maxSamples], true
}
