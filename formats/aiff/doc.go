// SPDX-License-Identifier: EPL-2.0

// Package aiff decodes 16-bit PCM AIFF files into audio.Source streams
// using github.com/go-audio/aiff.
package aiff
