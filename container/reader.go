// SPDX-License-Identifier: EPL-2.0

package container

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"os"
)

// Info is the metadata recovered from a written bank: everything the
// header and table hold, without touching sample data.
type Info struct {
	Version    uint32
	SampleRate uint32
	Entries    []Entry
}

// FileCount is the number of clips in the bank.
func (i *Info) FileCount() int { return len(i.Entries) }

// Size is the expected total byte length of the bank, derived from the
// table. For a well-formed bank it equals the file size on disk.
func (i *Info) Size() int64 { return TotalSize(i.Entries) }

// TotalDuration sums every entry's duration in seconds.
func (i *Info) TotalDuration() float64 {
	var total float64
	for _, e := range i.Entries {
		total += float64(e.Duration)
	}
	return total
}

// ReadInfo parses the header and entry table of a bank. The magic is
// checked before anything else is read; a mismatch fails with
// ErrInvalidMagic and no further fields are consumed. Unknown versions
// fail with ErrUnsupportedVersion since the entry stride is only known
// for layouts this code was built for.
//
// The header generators run this against every bank they consume, so
// any drift between writer and reader surfaces immediately.
func ReadInfo(r io.Reader) (*Info, error) {
	magic := make([]byte, 4)
	if _, err := io.ReadFull(r, magic); err != nil {
		return nil, fmt.Errorf("read magic: %w", err)
	}
	if string(magic) != Magic {
		return nil, ErrInvalidMagic
	}

	rest := make([]byte, HeaderSize-4)
	if _, err := io.ReadFull(r, rest); err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}

	info := &Info{
		Version:    binary.LittleEndian.Uint32(rest[0:4]),
		SampleRate: binary.LittleEndian.Uint32(rest[8:12]),
	}
	if info.Version != Version {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedVersion, info.Version)
	}

	fileCount := binary.LittleEndian.Uint32(rest[4:8])
	info.Entries = make([]Entry, 0, fileCount)

	rec := make([]byte, EntrySize)
	for i := uint32(0); i < fileCount; i++ {
		if _, err := io.ReadFull(r, rec); err != nil {
			return nil, fmt.Errorf("read entry %d: %w", i, err)
		}

		var e Entry
		copy(e.Name[:], rec[0:NameSize])
		e.Offset = binary.LittleEndian.Uint32(rec[16:20])
		e.SampleCount = binary.LittleEndian.Uint32(rec[20:24])
		e.Duration = math.Float32frombits(binary.LittleEndian.Uint32(rec[24:28]))
		e.Reserved = binary.LittleEndian.Uint32(rec[28:32])
		info.Entries = append(info.Entries, e)
	}

	return info, nil
}

// ReadInfoFile parses the header and entry table of a bank on disk.
func ReadInfoFile(path string) (*Info, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	return ReadInfo(f)
}

// ReadSamples seeks to one entry's data block and decodes its samples.
// idx indexes the bank's table; lookups are by position, not by name,
// since names are not unique.
func ReadSamples(rs io.ReadSeeker, info *Info, idx int) ([]float32, error) {
	if idx < 0 || idx >= len(info.Entries) {
		return nil, fmt.Errorf("%w: %d of %d", ErrEntryOutOfRange, idx, len(info.Entries))
	}

	e := info.Entries[idx]
	if _, err := rs.Seek(int64(e.Offset), io.SeekStart); err != nil {
		return nil, fmt.Errorf("seek to %q: %w", e.DecodedName(), err)
	}

	raw := make([]byte, e.DataSize())
	if _, err := io.ReadFull(rs, raw); err != nil {
		return nil, fmt.Errorf("read samples for %q: %w", e.DecodedName(), err)
	}

	samples := make([]float32, e.SampleCount)
	for i := range samples {
		samples[i] = math.Float32frombits(binary.LittleEndian.Uint32(raw[i*SampleSize:]))
	}
	return samples, nil
}
