// SPDX-License-Identifier: EPL-2.0

package container

// BuildEntries assigns table records and byte offsets to an ordered
// list of clips. Clips with no samples are dropped and reported in
// skipped; they never occupy a table slot and never shift a later
// offset. The remaining clips are returned in input order, matching
// the entries element for element, so callers can write sample data
// without re-deriving which clips survived.
//
// Offsets are a prefix sum: the first block starts right after the
// table, each next block starts where the previous one ends. Callers
// must supply clips in a deterministic order (for example sorted by
// source filename) to get reproducible banks.
//
// Returns ErrEmptyContainer when no clip has any samples.
func BuildEntries(clips []Clip, sampleRate uint32) (entries []Entry, kept []Clip, skipped []string, err error) {
	for _, clip := range clips {
		if len(clip.Samples) == 0 {
			skipped = append(skipped, clip.Name)
			continue
		}
		kept = append(kept, clip)
	}

	if len(kept) == 0 {
		return nil, nil, skipped, ErrEmptyContainer
	}

	cursor := uint32(HeaderSize + EntrySize*len(kept))
	entries = make([]Entry, 0, len(kept))

	for _, clip := range kept {
		count := uint32(len(clip.Samples))
		entries = append(entries, Entry{
			Name:        EncodeName(clip.Name),
			Offset:      cursor,
			SampleCount: count,
			Duration:    float32(count) / float32(sampleRate),
			Reserved:    0,
		})
		cursor += count * SampleSize
	}

	return entries, kept, skipped, nil
}

// TotalSize is the byte length of a bank holding the given entries:
// header, table, and every sample block.
func TotalSize(entries []Entry) int64 {
	size := int64(HeaderSize + EntrySize*len(entries))
	for _, e := range entries {
		size += int64(e.DataSize())
	}
	return size
}
