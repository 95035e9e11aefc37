package audio

import (
	"io"
	"math"
	"testing"
)

func TestMonoMixer_MonoPassthrough(t *testing.T) {
	t.Parallel()

	src := newConstantSource(8000, 1, 100, 0.5)
	mixer := NewMonoMixer(src)

	if mixer.Channels() != 1 {
		t.Errorf("MonoMixer.Channels() = %d, want 1", mixer.Channels())
	}
	if mixer.SampleRate() != 8000 {
		t.Errorf("MonoMixer.SampleRate() = %d, want 8000", mixer.SampleRate())
	}

	buf := make([]float32, 10)
	n, err := mixer.ReadSamples(buf)
	if err != nil {
		t.Fatalf("ReadSamples() error = %v", err)
	}
	if n != 10 {
		t.Fatalf("ReadSamples() n = %d, want 10", n)
	}
	for i := 0; i < n; i++ {
		if buf[i] != 0.5 {
			t.Errorf("buf[%d] = %v, want 0.5", i, buf[i])
		}
	}
}

func TestMonoMixer_StereoAverage(t *testing.T) {
	t.Parallel()

	src := newMockSource(8000, 2, 100, func(frame, channel int) float32 {
		if channel == 0 {
			return 0.4
		}
		return 0.6
	})
	mixer := NewMonoMixer(src)

	buf := make([]float32, 10)
	n, err := mixer.ReadSamples(buf)
	if err != nil {
		t.Fatalf("ReadSamples() error = %v", err)
	}
	if n != 10 {
		t.Fatalf("ReadSamples() n = %d, want 10", n)
	}

	for i := 0; i < n; i++ {
		if math.Abs(float64(buf[i]-0.5)) > 0.001 {
			t.Errorf("buf[%d] = %v, want 0.5", i, buf[i])
		}
	}
}

func TestMonoMixer_FourChannels(t *testing.T) {
	t.Parallel()

	src := newMockSource(8000, 4, 50, func(frame, channel int) float32 {
		return float32(channel) * 0.2 // 0.0, 0.2, 0.4, 0.6 -> mean 0.3
	})
	mixer := NewMonoMixer(src)

	buf := make([]float32, 8)
	n, err := mixer.ReadSamples(buf)
	if err != nil {
		t.Fatalf("ReadSamples() error = %v", err)
	}

	for i := 0; i < n; i++ {
		if math.Abs(float64(buf[i]-0.3)) > 0.001 {
			t.Errorf("buf[%d] = %v, want 0.3", i, buf[i])
		}
	}
}

func TestMonoMixer_DrainToEOF(t *testing.T) {
	t.Parallel()

	src := newConstantSource(8000, 2, 25, 0.25)
	samples, err := Drain(NewMonoMixer(src))
	if err != nil {
		t.Fatalf("Drain() error = %v", err)
	}
	if len(samples) != 25 {
		t.Errorf("Drain() len = %d, want 25 frames", len(samples))
	}
}

func TestMonoMixer_EmptyDst(t *testing.T) {
	t.Parallel()

	mixer := NewMonoMixer(newConstantSource(8000, 2, 10, 0.5))
	n, err := mixer.ReadSamples(nil)
	if n != 0 || err != nil {
		t.Errorf("ReadSamples(nil) = (%d, %v), want (0, nil)", n, err)
	}
}

func TestMonoMixer_CloseClosesSource(t *testing.T) {
	t.Parallel()

	src := newConstantSource(8000, 2, 10, 0.5)
	mixer := NewMonoMixer(src)

	if err := mixer.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}
	if !src.closed {
		t.Error("Close() did not close the underlying source")
	}
}

func TestMonoMixer_EOFAfterExhaustion(t *testing.T) {
	t.Parallel()

	mixer := NewMonoMixer(newConstantSource(8000, 2, 4, 0.5))
	buf := make([]float32, 16)

	if _, err := mixer.ReadSamples(buf); err != io.EOF {
		t.Fatalf("first ReadSamples() err = %v, want io.EOF", err)
	}
	n, err := mixer.ReadSamples(buf)
	if n != 0 || err != io.EOF {
		t.Errorf("ReadSamples() after EOF = (%d, %v), want (0, io.EOF)", n, err)
	}
}
