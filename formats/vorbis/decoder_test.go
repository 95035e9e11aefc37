package vorbis

import (
	"bytes"
	"io"
	"testing"
)

// fakeOgg feeds canned float32 samples through the oggReader interface.
type fakeOgg struct {
	data     []float32
	pos      int
	rate     int
	channels int
}

func (f *fakeOgg) SampleRate() int { return f.rate }
func (f *fakeOgg) Channels() int   { return f.channels }

func (f *fakeOgg) Read(p []float32) (int, error) {
	if f.pos >= len(f.data) {
		return 0, io.EOF
	}
	n := copy(p, f.data[f.pos:])
	f.pos += n
	return n, nil
}

func TestSource_ReadSamples(t *testing.T) {
	t.Parallel()

	in := []float32{0.1, 0.2, 0.3, 0.4, 0.5, 0.6}
	src := &source{
		dec:        &fakeOgg{data: in, rate: 48000, channels: 2},
		sampleRate: 48000,
		channels:   2,
	}

	dst := make([]float32, 6)
	n, err := src.ReadSamples(dst)
	if err != nil && err != io.EOF {
		t.Fatalf("ReadSamples() error = %v", err)
	}
	if n != 6 {
		t.Fatalf("ReadSamples() n = %d, want 6", n)
	}
	for i := range in {
		if dst[i] != in[i] {
			t.Errorf("dst[%d] = %v, want %v", i, dst[i], in[i])
		}
	}
}

func TestSource_FrameAlignment(t *testing.T) {
	t.Parallel()

	src := &source{
		dec:        &fakeOgg{data: make([]float32, 10), rate: 48000, channels: 2},
		sampleRate: 48000,
		channels:   2,
	}

	// Odd-sized dst gets trimmed to a whole number of frames.
	dst := make([]float32, 7)
	n, err := src.ReadSamples(dst)
	if err != nil && err != io.EOF {
		t.Fatalf("ReadSamples() error = %v", err)
	}
	if n != 6 {
		t.Errorf("ReadSamples() n = %d, want 6", n)
	}
}

func TestSource_EOF(t *testing.T) {
	t.Parallel()

	src := &source{
		dec:        &fakeOgg{rate: 48000, channels: 1},
		sampleRate: 48000,
		channels:   1,
	}

	n, err := src.ReadSamples(make([]float32, 4))
	if n != 0 || err != io.EOF {
		t.Errorf("ReadSamples() = (%d, %v), want (0, io.EOF)", n, err)
	}
}

func TestDecode_InvalidData(t *testing.T) {
	t.Parallel()

	_, err := Decoder{}.Decode(bytes.NewReader([]byte("not an ogg stream")))
	if err == nil {
		t.Fatal("Decode() expected an error for garbage input")
	}
}
