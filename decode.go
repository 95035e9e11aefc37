// SPDX-License-Identifier: EPL-2.0

package mldrummer

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/MusicallyEmbodiedML/MEMLNaut-MLDrummer/audio"
	"github.com/MusicallyEmbodiedML/MEMLNaut-MLDrummer/formats/aiff"
	"github.com/MusicallyEmbodiedML/MEMLNaut-MLDrummer/formats/mp3"
	"github.com/MusicallyEmbodiedML/MEMLNaut-MLDrummer/formats/vorbis"
	"github.com/MusicallyEmbodiedML/MEMLNaut-MLDrummer/formats/wav"
)

var (
	registryOnce    sync.Once
	defaultRegistry *audio.Registry
)

// DefaultRegistry returns the registry holding every built-in decoder,
// keyed by file extension.
func DefaultRegistry() *audio.Registry {
	registryOnce.Do(func() {
		defaultRegistry = audio.NewRegistry()
		defaultRegistry.Register(".wav", wav.Decoder{})
		defaultRegistry.Register(".mp3", mp3.Decoder{})
		defaultRegistry.Register(".ogg", vorbis.Decoder{})
		defaultRegistry.Register(".aiff", aiff.Decoder{})
		defaultRegistry.Register(".aif", aiff.Decoder{})
	})
	return defaultRegistry
}

// DecodeSourceMono resamples an already-open source to targetRate and
// downmixes it to a single channel, collecting the whole clip.
func DecodeSourceMono(src audio.Source, targetRate int) ([]float32, error) {
	mono := audio.NewMonoMixer(audio.NewResampler(src, targetRate))
	return audio.Drain(mono)
}

// DecodeFileMono decodes one audio file, resamples it to targetRate
// and downmixes to a single channel. The whole clip is returned in
// memory; banks hold everything in RAM before writing anyway.
func DecodeFileMono(path string, targetRate int) ([]float32, error) {
	dec, ok := DefaultRegistry().Get(filepath.Ext(path))
	if !ok {
		return nil, fmt.Errorf("no decoder for %q", filepath.Ext(path))
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	src, err := dec.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	defer src.Close()

	samples, err := DecodeSourceMono(src, targetRate)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return samples, nil
}
