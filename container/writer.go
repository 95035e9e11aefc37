// SPDX-License-Identifier: EPL-2.0

package container

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"
)

// Write serializes a complete bank in one forward pass: header, then
// every entry in builder order, then every clip's samples in the same
// order. entries and clips must be the matched pair returned by
// BuildEntries; the writer never recomputes or reorders offsets.
//
// I/O failures abort immediately and are returned wrapped. A partially
// written bank is left behind on failure; callers that care should
// write to a temp path and rename.
func Write(w io.Writer, sampleRate uint32, entries []Entry, clips []Clip) error {
	header := make([]byte, HeaderSize)
	copy(header[0:4], Magic)
	binary.LittleEndian.PutUint32(header[4:8], Version)
	binary.LittleEndian.PutUint32(header[8:12], uint32(len(entries)))
	binary.LittleEndian.PutUint32(header[12:16], sampleRate)

	if _, err := w.Write(header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	rec := make([]byte, EntrySize)
	for _, e := range entries {
		copy(rec[0:NameSize], e.Name[:])
		binary.LittleEndian.PutUint32(rec[16:20], e.Offset)
		binary.LittleEndian.PutUint32(rec[20:24], e.SampleCount)
		binary.LittleEndian.PutUint32(rec[24:28], math.Float32bits(e.Duration))
		binary.LittleEndian.PutUint32(rec[28:32], e.Reserved)

		if _, err := w.Write(rec); err != nil {
			return fmt.Errorf("write entry %q: %w", e.DecodedName(), err)
		}
	}

	// Sample data is converted in bounded chunks so a long clip never
	// forces one giant allocation.
	const chunkFrames = 8192
	buf := make([]byte, chunkFrames*SampleSize)

	for _, clip := range clips {
		samples := clip.Samples
		for len(samples) > 0 {
			n := min(len(samples), chunkFrames)
			for i, s := range samples[:n] {
				binary.LittleEndian.PutUint32(buf[i*SampleSize:], math.Float32bits(s))
			}
			if _, err := w.Write(buf[:n*SampleSize]); err != nil {
				return fmt.Errorf("write samples for %q: %w", clip.Name, err)
			}
			samples = samples[n:]
		}
	}

	return nil
}
