// SPDX-License-Identifier: EPL-2.0

package utils

// Float32ToInt16 converts a [-1, 1] sample to 16-bit PCM, clamping
// anything outside the range first. 32767 is used as the scale so
// +1.0 cannot overflow.
func Float32ToInt16(x float32) int16 {
	if x > 1 {
		x = 1
	} else if x < -1 {
		x = -1
	}

	return int16(x * 32767.0)
}
