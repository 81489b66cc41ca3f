package core

import "testing"

func TestEnsureLenReusesCapacity(t *testing.T) {
	buf := make([]float64, 4, 16)
	out := EnsureLen(buf, 10)
	if len(out) != 10 {
		t.Fatalf("len = %d, want 10", len(out))
	}
	if &out[0] != &buf[0] {
		t.Fatal("expected backing array to be reused")
	}
}

func TestEnsureLenGrows(t *testing.T) {
	buf := make([]float64, 4)
	out := EnsureLen(buf, 8)
	if len(out) != 8 {
		t.Fatalf("len = %d, want 8", len(out))
	}
}

func TestEnsureLenNonPositive(t *testing.T) {
	buf := []float64{1, 2, 3}
	out := EnsureLen(buf, 0)
	if len(out) != 0 {
		t.Fatalf("len = %d, want 0", len(out))
	}
	if out = EnsureLen(buf, -5); len(out) != 0 {
		t.Fatalf("len = %d, want 0 for negative n", len(out))
	}
}

func TestZero(t *testing.T) {
	buf := []float64{1, -2, 3.5}
	Zero(buf)
	for i, v := range buf {
		if v != 0 {
			t.Fatalf("buf[%d] = %v, want 0", i, v)
		}
	}
}

func TestCopyInto(t *testing.T) {
	dst := make([]float64, 3)
	n := CopyInto(dst, []float64{1, 2, 3, 4})
	if n != 3 {
		t.Fatalf("n = %d, want 3", n)
	}
	if dst[0] != 1 || dst[1] != 2 || dst[2] != 3 {
		t.Fatalf("dst = %v", dst)
	}

	dst = make([]float64, 4)
	if n = CopyInto(dst, []float64{7}); n != 1 {
		t.Fatalf("n = %d, want 1", n)
	}
	if dst[0] != 7 || dst[1] != 0 {
		t.Fatalf("dst = %v", dst)
	}
}
