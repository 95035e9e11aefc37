// SPDX-License-Identifier: EPL-2.0

package container

import "bytes"

const (
	// Magic identifies a sample bank. The firmware checks it before
	// trusting anything else in flash.
	Magic = "PICO"

	// Version of the on-disk layout. Readers reject anything else;
	// any layout change that moves a field must bump this.
	Version = 1

	// HeaderSize is magic + version + file count + sample rate.
	HeaderSize = 16

	// EntrySize is the fixed stride of one table record.
	EntrySize = 32

	// NameSize is the fixed name field width, terminator included.
	NameSize = 16

	// maxNameRunes limits how many characters of an identifier are
	// considered before UTF-8 encoding.
	maxNameRunes = 15

	// SampleSize is the width of one stored sample (float32).
	SampleSize = 4
)

// Entry is one fixed-width table record, exactly as stored on disk.
type Entry struct {
	Name        [NameSize]byte
	Offset      uint32
	SampleCount uint32
	Duration    float32
	Reserved    uint32
}

// DecodedName returns the entry name with trailing null padding removed.
func (e Entry) DecodedName() string {
	return string(bytes.TrimRight(e.Name[:], "\x00"))
}

// DataSize is the byte length of the entry's sample block.
func (e Entry) DataSize() uint32 {
	return e.SampleCount * SampleSize
}

// EncodeName converts an identifier into the fixed 16-byte name field.
// At most the first 15 characters are kept; if their UTF-8 encoding
// still exceeds 15 bytes it is cut at 15 bytes, which can split a
// multi-byte character. Device code treats the field as an opaque
// null-terminated byte string, so the cut is harmless there, and the
// behavior is kept as-is for compatibility with existing banks.
// Uniqueness is not enforced; consumers index clips by position.
func EncodeName(name string) [NameSize]byte {
	runes := []rune(name)
	if len(runes) > maxNameRunes {
		runes = runes[:maxNameRunes]
	}

	encoded := []byte(string(runes))
	if len(encoded) > maxNameRunes {
		encoded = encoded[:maxNameRunes]
	}

	var out [NameSize]byte
	copy(out[:], encoded)
	return out
}
