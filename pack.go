// SPDX-License-Identifier: EPL-2.0

package mldrummer

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/MusicallyEmbodiedML/MEMLNaut-MLDrummer/container"
)

// ErrNoAudioFiles reports a folder with nothing the registry can decode.
var ErrNoAudioFiles = errors.New("no supported audio files found")

// PackOptions control how source files are processed before packing.
type PackOptions struct {
	// SampleRate every clip is resampled to. Stored once in the bank
	// header.
	SampleRate uint32

	// Normalize rescales each clip so its peak sits at ±1.0.
	Normalize bool

	// MaxLengthMS bounds clip length in milliseconds; longer clips
	// keep only their leading samples. Zero means unlimited.
	MaxLengthMS int

	// KeepStereo is accepted for command line compatibility. Banks
	// only hold mono data, so decoding always downmixes.
	KeepStereo bool
}

// Skip records one source file that did not make it into the bank.
type Skip struct {
	Path   string
	Reason string
}

// PackSummary reports what a PackDir run produced.
type PackSummary struct {
	OutputPath string
	SampleRate uint32
	Entries    []container.Entry
	Skipped    []Skip
	Truncated  []string
	TotalBytes int64
}

// TotalDuration sums every packed clip's duration in seconds.
func (s *PackSummary) TotalDuration() float64 {
	var total float64
	for _, e := range s.Entries {
		total += float64(e.Duration)
	}
	return total
}

// ListFiles returns the candidate audio files under dir, sorted by
// name so repeat runs pack clips in the same order and produce
// byte-identical banks.
func ListFiles(dir string) ([]string, error) {
	dirents, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read folder %s: %w", dir, err)
	}

	var files []string
	for _, d := range dirents {
		if d.IsDir() {
			continue
		}
		if _, ok := DefaultRegistry().Get(filepath.Ext(d.Name())); ok {
			files = append(files, filepath.Join(dir, d.Name()))
		}
	}
	sort.Strings(files)
	return files, nil
}

// PackDir decodes every supported audio file under dir and writes one
// sample bank to outPath.
//
// Per-file failures never abort the batch: a clip that fails to decode
// or decodes to nothing is recorded as a skip and processing moves on.
// The run fails outright when the folder is unreadable, when it holds
// no candidate files, or when no clip survives processing.
func PackDir(dir, outPath string, opts PackOptions) (*PackSummary, error) {
	files, err := ListFiles(dir)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("%w in %s", ErrNoAudioFiles, dir)
	}

	summary := &PackSummary{
		OutputPath: outPath,
		SampleRate: opts.SampleRate,
	}

	var clips []container.Clip
	for _, path := range files {
		samples, err := DecodeFileMono(path, int(opts.SampleRate))
		if err != nil {
			summary.Skipped = append(summary.Skipped, Skip{Path: path, Reason: err.Error()})
			continue
		}

		if opts.Normalize {
			samples = container.Normalize(samples)
		}
		samples, truncated := container.Truncate(samples, opts.SampleRate, opts.MaxLengthMS)

		name := stem(path)
		if truncated {
			summary.Truncated = append(summary.Truncated, name)
		}

		clips = append(clips, container.Clip{
			Name:      name,
			Samples:   samples,
			Truncated: truncated,
		})
	}

	entries, kept, empty, err := container.BuildEntries(clips, opts.SampleRate)
	for _, name := range empty {
		summary.Skipped = append(summary.Skipped, Skip{Path: name, Reason: "empty clip"})
	}
	if err != nil {
		return nil, err
	}

	out, err := os.Create(outPath)
	if err != nil {
		return nil, fmt.Errorf("create %s: %w", outPath, err)
	}

	if err := container.Write(out, opts.SampleRate, entries, kept); err != nil {
		out.Close()
		return nil, err
	}
	if err := out.Close(); err != nil {
		return nil, fmt.Errorf("close %s: %w", outPath, err)
	}

	summary.Entries = entries
	summary.TotalBytes = container.TotalSize(entries)
	return summary, nil
}

// stem returns the filename without directory or extension, the
// identifier stored in the bank's table.
func stem(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
