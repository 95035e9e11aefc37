// SPDX-License-Identifier: EPL-2.0

// Package container implements the PICO sample-bank binary format: a
// fixed 16-byte header, a table of fixed 32-byte entries, and raw
// little-endian float32 sample data for every clip, concatenated in
// table order.
//
// The format is what the firmware on the device reads directly out of
// flash, so every field is fixed-width and little-endian:
//
//	Header (16 bytes):
//	  magic       'PICO' (4 bytes)
//	  version     uint32
//	  file count  uint32
//	  sample rate uint32 (Hz, container-wide)
//
//	Entry (32 bytes each):
//	  name         char[16], UTF-8, null padded
//	  offset       uint32, absolute byte offset of the clip's samples
//	  sample count uint32
//	  duration     float32, seconds
//	  reserved     uint32, zero
//
// Offsets form a gap-free prefix sum over the data region: the first
// entry's data starts right after the table, and each subsequent entry
// starts where the previous clip's samples end. Readers rely on this,
// so BuildEntries is the only place offsets are computed.
//
// Clips are always mono. The per-clip native sample rate is not
// persisted; callers resample everything to one rate before packing.
package container
