// SPDX-License-Identifier: EPL-2.0

// Package mp3 decodes MP3 files into audio.Source streams using
// github.com/hajimehoshi/go-mp3. Output is always stereo int16 at the
// file's native rate; downstream stages resample and downmix.
package mp3
