package preset

import "testing"

func TestFlatIsAllZero(t *testing.T) {
	b := Bands(Flat)
	if len(b) != NumBands {
		t.Fatalf("len = %d, want %d", len(b), NumBands)
	}
	for i, v := range b {
		if v != 0 {
			t.Fatalf("band %d = %v, want 0", i, v)
		}
	}
}

func TestEveryPresetHasTenBands(t *testing.T) {
	for _, p := range All() {
		if got := len(Bands(p)); got != NumBands {
			t.Errorf("%s: %d bands, want %d", p, got, NumBands)
		}
	}
}

func TestRockShape(t *testing.T) {
	b := Bands(Rock)
	if b[0] <= b[4] {
		t.Errorf("rock: 31Hz (%v) should exceed 500Hz (%v)", b[0], b[4])
	}
	if b[8] <= b[4] {
		t.Errorf("rock: 8kHz (%v) should exceed 500Hz (%v)", b[8], b[4])
	}
}

func TestBassBoostShape(t *testing.T) {
	b := Bands(BassBoost)
	if b[0] <= 5.0 {
		t.Errorf("bass_boost: 31Hz = %v, want > 5 dB", b[0])
	}
	if b[9] != 0.0 {
		t.Errorf("bass_boost: 16kHz = %v, want 0 dB", b[9])
	}
}

func TestUnknownPresetFallsBackToFlat(t *testing.T) {
	b := Bands(Preset("does_not_exist"))
	for i, v := range b {
		if v != 0 {
			t.Fatalf("band %d = %v, want flat fallback", i, v)
		}
	}
}

func TestByNameCaseInsensitive(t *testing.T) {
	cases := []struct {
		name string
		want Preset
	}{
		{"rock", Rock},
		{"ROCK", Rock},
		{"Rock", Rock},
		{"  bass_boost \t", BassBoost},
		{"hip_hop", HipHop},
		{"flat", Flat},
		{"", Flat},
		{"definitely not a preset", Flat},
	}
	for _, c := range cases {
		if got := ByName(c.name); got != c.want {
			t.Errorf("ByName(%q) = %q, want %q", c.name, got, c.want)
		}
	}
}

func TestBandsReturnsCopy(t *testing.T) {
	a := Bands(Rock)
	a[0] = -99
	if b := Bands(Rock); b[0] == -99 {
		t.Fatal("mutating a returned slice corrupted the registry")
	}
}

func TestLabels(t *testing.T) {
	l := Labels()
	if len(l) != NumBands {
		t.Fatalf("len = %d, want %d", len(l), NumBands)
	}
	if l[0] != "31Hz" || l[5] != "1kHz" || l[9] != "16kHz" {
		t.Fatalf("unexpected labels: %v", l)
	}
}

func TestAllOrder(t *testing.T) {
	all := All()
	if len(all) != 10 {
		t.Fatalf("len = %d, want 10", len(all))
	}
	if all[0] != Flat || all[len(all)-1] != BassBoost {
		t.Fatalf("unexpected order: %v", all)
	}
}
