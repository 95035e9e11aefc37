// SPDX-License-Identifier: EPL-2.0

// Package mldrummer packs folders of drum samples into PICO sample
// banks for MEMLNaut devices.
//
// A bank is a single binary blob flashed into the device: a fixed
// header, a fixed-width file table, and every clip's float32 samples.
// The container package owns that format; this package owns the
// pipeline that feeds it:
//
//	samples, _ := mldrummer.DecodeFileMono("kick.wav", 44100)
//	summary, err := mldrummer.PackDir("samples/", "samples_bank.bin", mldrummer.PackOptions{
//		SampleRate: 44100,
//		Normalize:  true,
//	})
//
// Decoding is format-agnostic: WAV, MP3, Ogg Vorbis and AIFF decoders
// are registered by extension in DefaultRegistry. Every clip is
// resampled to the bank rate, downmixed to mono, optionally peak
// normalized and length bounded, then handed to the container builder.
package mldrummer
