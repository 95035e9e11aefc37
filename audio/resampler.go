// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"io"

	"github.com/MusicallyEmbodiedML/MEMLNaut-MLDrummer/utils"
)

// Resampler converts src to a new sample rate using Catmull-Rom cubic
// interpolation over a sliding four-frame window. Channel count is
// preserved; samples stay interleaved. When downsampling, a one-pole
// low-pass smooths the input to tame aliasing.
type Resampler struct {
	src      Source
	dstRate  int
	step     float64 // source frames advanced per output frame
	channels int

	// window[0..3] hold frames t-1, t0, t+1, t+2; interpolation happens
	// between window[1] and window[2].
	window [4][]float32
	filled [4]bool
	primed bool

	// pos is the fractional position inside [window[1], window[2]).
	pos float64

	readBuf []float32
	eof     bool

	smooth      bool
	smoothState []float32
}

func NewResampler(src Source, dstRate int) *Resampler {
	channels := src.Channels()
	r := &Resampler{
		src:         src,
		dstRate:     dstRate,
		step:        float64(src.SampleRate()) / float64(dstRate),
		channels:    channels,
		readBuf:     make([]float32, channels),
		smooth:      src.SampleRate() > dstRate,
		smoothState: make([]float32, channels),
	}
	for i := range r.window {
		r.window[i] = make([]float32, channels)
	}
	return r
}

func (r *Resampler) SampleRate() int { return r.dstRate }
func (r *Resampler) Channels() int   { return r.channels }

func (r *Resampler) Close() error {
	if err := r.src.Close(); err != nil {
		return fmt.Errorf("%w", err)
	}
	return nil
}

// advance shifts the window left by one frame and pulls the next source
// frame into the last slot.
func (r *Resampler) advance() error {
	if r.eof {
		return io.EOF
	}

	copy(r.window[0], r.window[1])
	copy(r.window[1], r.window[2])
	copy(r.window[2], r.window[3])
	r.filled[0], r.filled[1], r.filled[2] = r.filled[1], r.filled[2], r.filled[3]

	n, err := r.src.ReadSamples(r.readBuf)
	if n > 0 {
		copy(r.window[3], r.readBuf[:n])
		r.filled[3] = true
		r.applySmoothing(r.window[3])
	} else {
		r.filled[3] = false
	}

	if err == io.EOF {
		r.eof = true
		if !r.filled[3] {
			return io.EOF
		}
		return nil
	}
	if err != nil {
		return fmt.Errorf("%w", err)
	}
	return nil
}

func (r *Resampler) applySmoothing(frame []float32) {
	if !r.smooth {
		return
	}
	// One-pole low-pass, alpha 0.5.
	for c := 0; c < r.channels; c++ {
		frame[c] = 0.5*frame[c] + 0.5*r.smoothState[c]
		r.smoothState[c] = frame[c]
	}
}

// prime fills the initial window before the first interpolation.
func (r *Resampler) prime() error {
	for i := 0; i < 4; i++ {
		n, err := r.src.ReadSamples(r.readBuf)
		if n > 0 {
			copy(r.window[i], r.readBuf[:n])
			r.filled[i] = true
			if i == 0 && r.smooth {
				copy(r.smoothState, r.readBuf[:n])
			}
		}
		if err == io.EOF {
			r.eof = true
			if i == 0 {
				return io.EOF
			}
			// Pad the rest of the window with the last real frame.
			for j := i; j < 4; j++ {
				copy(r.window[j], r.window[i-1])
				r.filled[j] = true
			}
			break
		}
		if err != nil {
			return fmt.Errorf("%w", err)
		}
	}
	r.primed = true
	return nil
}

// ReadSamples produces interpolated output at the destination rate.
// len(dst) must be a multiple of the channel count.
func (r *Resampler) ReadSamples(dst []float32) (int, error) {
	if len(dst)%r.channels != 0 {
		return 0, ErrInvalidDstSize
	}

	if !r.primed {
		if err := r.prime(); err != nil {
			return 0, err
		}
	}

	written := 0
	frames := len(dst) / r.channels

	for written < frames {
		for r.pos >= 1.0 {
			r.pos -= 1.0
			if err := r.advance(); err != nil {
				if err == io.EOF {
					if written == 0 {
						return 0, io.EOF
					}
					return written * r.channels, io.EOF
				}
				return written * r.channels, err
			}
		}

		if !r.filled[1] || !r.filled[2] {
			if written == 0 {
				return 0, io.EOF
			}
			return written * r.channels, io.EOF
		}

		alpha := float32(r.pos)
		for c := 0; c < r.channels; c++ {
			y1 := r.window[1][c]
			y2 := r.window[2][c]

			y0 := y1
			if r.filled[0] {
				y0 = r.window[0][c]
			}
			y3 := y2
			if r.filled[3] {
				y3 = r.window[3][c]
			}

			dst[written*r.channels+c] = utils.CubicInterpolate(y0, y1, y2, y3, alpha)
		}

		written++
		r.pos += r.step
	}

	return written * r.channels, nil
}
