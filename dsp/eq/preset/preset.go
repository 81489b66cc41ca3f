// Package preset holds the static ten-band equalizer preset table.
//
// The package is pure data: it has no dependency on the processing code and
// is consumed by hosts that feed the gain vectors into an equalizer via its
// SetBands control. Lookups never fail; anything unrecognized degrades to
// the neutral [Flat] preset.
package preset

import "strings"

// NumBands is the number of gain values per preset, matching the equalizer
// band count.
const NumBands = 10

// Preset identifies a named equalizer curve.
type Preset string

// Built-in presets.
const (
	Flat       Preset = "flat"
	Rock       Preset = "rock"
	Pop        Preset = "pop"
	Jazz       Preset = "jazz"
	Classical  Preset = "classical"
	Electronic Preset = "electronic"
	HipHop     Preset = "hip_hop"
	Acoustic   Preset = "acoustic"
	Vocal      Preset = "vocal"
	BassBoost  Preset = "bass_boost"
)

// order lists the presets in canonical (menu) order.
var order = [...]Preset{
	Flat, Rock, Pop, Jazz, Classical,
	Electronic, HipHop, Acoustic, Vocal, BassBoost,
}

// gains maps each preset to its band gains in dB, ascending by frequency:
// 31, 62, 125, 250, 500, 1k, 2k, 4k, 8k, 16k Hz. The nominal UI range is
// -12..+12 dB but the table itself enforces no clamp.
var gains = map[Preset][NumBands]float64{
	// No adjustment.
	Flat: {0, 0, 0, 0, 0, 0, 0, 0, 0, 0},

	// Enhanced lows and highs, recessed low mids.
	Rock: {5, 4, 3, 1, -1, 0, 2, 4, 5, 5},

	// Forward vocals and upper mids.
	Pop: {-2, -1, 0, 2, 4, 4, 3, 1, 0, -1},

	// Warm low mids, soft sparkle on top.
	Jazz: {3, 2, 1, 2, -1, 0, 1, 2, 3, 4},

	// Natural balance with a lift in high-frequency detail.
	Classical: {0, 0, 0, 0, 0, 0, -1, 2, 3, 4},

	// Heavy bass and bright highs.
	Electronic: {6, 5, 2, 0, -2, 0, 1, 3, 5, 6},

	// Sub-heavy.
	HipHop: {7, 6, 4, 2, 1, 0, 1, 2, 2, 3},

	// Gentle, rounded lift across the range.
	Acoustic: {3, 2, 1, 1, 2, 1, 2, 3, 2, 2},

	// Midrange emphasis for speech and vocals.
	Vocal: {-3, -2, 0, 3, 5, 5, 4, 2, 0, -2},

	// Low end only; everything above 500 Hz untouched.
	BassBoost: {8, 7, 5, 2, 0, 0, 0, 0, 0, 0},
}

// labels holds the human-readable band names, matching the canonical
// center frequencies index for index.
var labels = [NumBands]string{
	"31Hz", "62Hz", "125Hz", "250Hz", "500Hz",
	"1kHz", "2kHz", "4kHz", "8kHz", "16kHz",
}

// Bands returns a fresh copy of the ten gain values (dB) for the given
// preset. Unknown presets yield the flat (all-zero) vector.
func Bands(p Preset) []float64 {
	v, ok := gains[p]
	if !ok {
		v = gains[Flat]
	}

	out := make([]float64, NumBands)
	copy(out, v[:])
	return out
}

// ByName resolves a preset from a case-insensitive name, ignoring
// surrounding whitespace. Empty or unrecognized names resolve to [Flat];
// the lookup never fails.
func ByName(name string) Preset {
	p := Preset(strings.ToLower(strings.TrimSpace(name)))
	if _, ok := gains[p]; !ok {
		return Flat
	}
	return p
}

// All returns the built-in presets in canonical order.
func All() []Preset {
	out := make([]Preset, len(order))
	copy(out, order[:])
	return out
}

// Labels returns the human-readable band labels, ascending by frequency.
func Labels() []string {
	out := make([]string, NumBands)
	copy(out, labels[:])
	return out
}
