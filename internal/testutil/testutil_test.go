package testutil

import (
	"math"
	"testing"
)

func TestDeterministicSineReproducible(t *testing.T) {
	a := DeterministicSine(440, 44100, 0.5, 100)
	b := DeterministicSine(440, 44100, 0.5, 100)
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("non-deterministic at index %d", i)
		}
	}
	if math.Abs(a[0]) > 1e-15 {
		t.Fatalf("a[0] = %v, want 0", a[0])
	}
}

func TestDeterministicNoiseSeeded(t *testing.T) {
	a := DeterministicNoise(42, 1.0, 64)
	b := DeterministicNoise(42, 1.0, 64)
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("noise not deterministic at index %d", i)
		}
	}
}

func TestImpulse(t *testing.T) {
	imp := Impulse(8, 3)
	for i, v := range imp {
		want := 0.0
		if i == 3 {
			want = 1
		}
		if v != want {
			t.Fatalf("imp[%d] = %v, want %v", i, v, want)
		}
	}
}

func TestStereoImpulse(t *testing.T) {
	imp := StereoImpulse(3)
	if len(imp) != 6 {
		t.Fatalf("len = %d, want 6", len(imp))
	}
	if imp[0] != 1 {
		t.Fatalf("imp[0] = %v, want 1", imp[0])
	}
	for i := 1; i < len(imp); i++ {
		if imp[i] != 0 {
			t.Fatalf("imp[%d] = %v, want 0", i, imp[i])
		}
	}
}

func TestInterleaveRoundTrip(t *testing.T) {
	left := []float64{1, 2, 3}
	right := []float64{-1, -2, -3}
	buf := Interleave(left, right)
	if len(buf) != 6 || buf[0] != 1 || buf[1] != -1 || buf[4] != 3 || buf[5] != -3 {
		t.Fatalf("interleaved = %v", buf)
	}
	l, r := Deinterleave(buf)
	for i := range left {
		if l[i] != left[i] || r[i] != right[i] {
			t.Fatalf("round trip mismatch at %d", i)
		}
	}
}

func TestSameSlice(t *testing.T) {
	a := []float64{1, 2, 3}
	if !SameSlice(a, a) {
		t.Fatal("a not same as itself")
	}
	b := append([]float64(nil), a...)
	if SameSlice(a, b) {
		t.Fatal("distinct slices reported same")
	}
	if !SameSlice(nil, nil) {
		t.Fatal("nil slices should compare same")
	}
}
