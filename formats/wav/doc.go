// SPDX-License-Identifier: EPL-2.0

// Package wav decodes WAV files into audio.Source streams and writes
// mono 16-bit PCM WAV output. Decoding uses github.com/go-audio/wav,
// which handles chunk scanning and the common PCM bit depths.
package wav
