package audio

import (
	"io"
	"sort"
	"testing"
)

type mockDecoder struct {
	name string
}

func (d *mockDecoder) Decode(r io.Reader) (Source, error) {
	return newConstantSource(44100, 1, 10, 0), nil
}

func TestRegistry_RegisterAndGet(t *testing.T) {
	t.Parallel()

	registry := NewRegistry()
	decoder := &mockDecoder{name: "wav"}

	registry.Register(".wav", decoder)

	got, ok := registry.Get(".wav")
	if !ok {
		t.Fatal("Registry.Get() failed to retrieve registered decoder")
	}
	if got != decoder {
		t.Error("Registry.Get() returned different decoder instance")
	}
}

func TestRegistry_ExtensionNormalization(t *testing.T) {
	t.Parallel()

	registry := NewRegistry()
	decoder := &mockDecoder{name: "wav"}
	registry.Register("wav", decoder)

	for _, ext := range []string{"wav", ".wav", ".WAV", "WAV"} {
		if _, ok := registry.Get(ext); !ok {
			t.Errorf("Registry.Get(%q) = false, want true", ext)
		}
	}

	if _, ok := registry.Get(".mp3"); ok {
		t.Error("Registry.Get(.mp3) = true for unregistered extension")
	}
}

func TestRegistry_Extensions(t *testing.T) {
	t.Parallel()

	registry := NewRegistry()
	registry.Register(".wav", &mockDecoder{})
	registry.Register("mp3", &mockDecoder{})

	exts := registry.Extensions()
	sort.Strings(exts)

	want := []string{".mp3", ".wav"}
	if len(exts) != len(want) {
		t.Fatalf("Extensions() = %v, want %v", exts, want)
	}
	for i := range want {
		if exts[i] != want[i] {
			t.Errorf("Extensions()[%d] = %q, want %q", i, exts[i], want[i])
		}
	}
}

func TestRegistry_Overwrite(t *testing.T) {
	t.Parallel()

	registry := NewRegistry()
	first := &mockDecoder{name: "first"}
	second := &mockDecoder{name: "second"}

	registry.Register(".wav", first)
	registry.Register(".wav", second)

	got, ok := registry.Get(".wav")
	if !ok {
		t.Fatal("Registry.Get() failed after overwrite")
	}
	if got != second {
		t.Error("Registry.Get() did not return the overwritten decoder")
	}
}

func TestRegistry_ConcurrentAccess(t *testing.T) {
	t.Parallel()

	registry := NewRegistry()
	decoder := &mockDecoder{}

	done := make(chan struct{})
	for i := 0; i < 10; i++ {
		go func() {
			registry.Register(".wav", decoder)
			done <- struct{}{}
		}()
		go func() {
			_, _ = registry.Get(".wav")
			done <- struct{}{}
		}()
	}
	for i := 0; i < 20; i++ {
		<-done
	}

	if _, ok := registry.Get(".wav"); !ok {
		t.Error("Registry.Get() failed after concurrent operations")
	}
}

func TestDrain_CollectsEverything(t *testing.T) {
	t.Parallel()

	src := newMockSource(8000, 1, 10000, func(frame, channel int) float32 {
		return float32(frame%100) / 100.0
	})

	samples, err := Drain(src)
	if err != nil {
		t.Fatalf("Drain() error = %v", err)
	}

	if len(samples) != 10000 {
		t.Fatalf("Drain() len = %d, want 10000", len(samples))
	}

	for i, s := range samples {
		want := float32(i%100) / 100.0
		if s != want {
			t.Fatalf("samples[%d] = %v, want %v", i, s, want)
		}
	}
}

func TestDrain_EmptySource(t *testing.T) {
	t.Parallel()

	samples, err := Drain(newConstantSource(8000, 1, 0, 0))
	if err != nil {
		t.Fatalf("Drain() error = %v", err)
	}
	if len(samples) != 0 {
		t.Errorf("Drain() len = %d, want 0", len(samples))
	}
}
