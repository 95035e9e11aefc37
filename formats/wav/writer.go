// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"encoding/binary"
	"fmt"
	"io"
)

// WriteMono16 writes samples as a canonical 44-byte-header mono 16-bit
// PCM WAV at sampleRate. Used to audition clips pulled back out of a
// packed bank, and by tests to synthesize decoder input.
func WriteMono16(w io.Writer, sampleRate int, samples []int16) error {
	const (
		numChannels   = 1
		bitsPerSample = 16
	)
	dataSize := uint32(len(samples) * 2)

	header := make([]byte, 44)
	copy(header[0:4], "RIFF")
	binary.LittleEndian.PutUint32(header[4:8], 36+dataSize)
	copy(header[8:12], "WAVE")

	copy(header[12:16], "fmt ")
	binary.LittleEndian.PutUint32(header[16:20], 16) // PCM fmt chunk size
	binary.LittleEndian.PutUint16(header[20:22], 1)  // PCM format
	binary.LittleEndian.PutUint16(header[22:24], numChannels)
	binary.LittleEndian.PutUint32(header[24:28], uint32(sampleRate))
	binary.LittleEndian.PutUint32(header[28:32], uint32(sampleRate)*numChannels*bitsPerSample/8)
	binary.LittleEndian.PutUint16(header[32:34], numChannels*bitsPerSample/8)
	binary.LittleEndian.PutUint16(header[34:36], bitsPerSample)

	copy(header[36:40], "data")
	binary.LittleEndian.PutUint32(header[40:44], dataSize)

	if _, err := w.Write(header); err != nil {
		return fmt.Errorf("write wav header: %w", err)
	}

	const chunkSamples = 8192
	buf := make([]byte, chunkSamples*2)

	for len(samples) > 0 {
		n := min(len(samples), chunkSamples)
		for i, s := range samples[:n] {
			binary.LittleEndian.PutUint16(buf[i*2:], uint16(s))
		}
		if _, err := w.Write(buf[:n*2]); err != nil {
			return fmt.Errorf("write wav samples: %w", err)
		}
		samples = samples[n:]
	}

	return nil
}
