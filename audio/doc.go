// SPDX-License-Identifier: EPL-2.0

// Package audio holds the decode pipeline primitives: the Source
// stream interface, a decoder Registry keyed by file extension, a
// cubic-interpolation Resampler, a MonoMixer, and Drain for collecting
// a whole clip into memory.
//
// A typical packing pipeline chains them:
//
//	src, _ := decoder.Decode(file)
//	samples, _ := audio.Drain(audio.NewMonoMixer(audio.NewResampler(src, 44100)))
package audio
