package wardrobe

import (
	"fmt"
	"math"
)

// GapPolicy decides what happens when an input matches a gap band.
type GapPolicy int

const (
	// GapPolicyNoop leaves the state unchanged.
	GapPolicyNoop GapPolicy = iota
	// GapPolicyError fails the run with ErrUnhandledBand.
	GapPolicyError
)

// ParseGapPolicy accepts "noop" or "error".
func ParseGapPolicy(s string) (GapPolicy, error) {
	switch s {
	case "", "noop":
		return GapPolicyNoop, nil
	case "error":
		return GapPolicyError, nil
	default:
		return GapPolicyNoop, fmt.Errorf("unknown gap policy %q", s)
	}
}

func (p GapPolicy) String() string {
	if p == GapPolicyError {
		return "error"
	}
	return "noop"
}

// TemperatureBand is one row of the temperature table: Min <= t < Max.
// A band with Gap set covers a range that has no effects.
type TemperatureBand struct {
	Name    string
	Min     float64
	Max     float64
	Gap     bool
	Effects []Effect
}

func (b TemperatureBand) contains(t float64) bool {
	return t >= b.Min && t < b.Max
}

// TemperatureBands is evaluated from the warmest band down; the first match wins.
// The [-5,0) row is a gap: no contribution.
var TemperatureBands = []TemperatureBand{
	{
		Name: "hot", Min: 30, Max: math.Inf(1),
		Effects: []Effect{Set(FieldTShirt, 10), Set(FieldFootwear, 1)},
	},
	{
		Name: "warm", Min: 20, Max: 30,
		Effects: []Effect{Add(FieldTShirt, 8), Add(FieldFootwear, 0.5)},
	},
	{
		Name: "mild", Min: 15, Max: 20,
		Effects: []Effect{Add(FieldSweater, 3), Add(FieldTShirt, 6)},
	},
	{
		Name: "cool", Min: 10, Max: 15,
		Effects: []Effect{Add(FieldTShirt, 3), Add(FieldSweater, 8), Add(FieldJacket, 5), Add(FieldFootwear, -0.1)},
	},
	{
		Name: "chilly", Min: 5, Max: 10,
		Effects: []Effect{Add(FieldSweater, 6), Add(FieldJacket, 8), Add(FieldCoat, 2), Add(FieldFootwear, -0.3)},
	},
	{
		Name: "cold", Min: 0, Max: 5,
		Effects: []Effect{Add(FieldSweater, 3), Add(FieldJacket, 9), Add(FieldTShirt, 7), Add(FieldFootwear, -0.5)},
	},
	{
		Name: "near-freezing", Min: -5, Max: 0, Gap: true,
	},
	{
		Name: "freezing", Min: math.Inf(-1), Max: -5,
		Effects: []Effect{Set(FieldCoat, 10), Add(FieldFootwear, -0.5)},
	},
}

// TemperatureBandFor returns the band that t falls into.
// ok is false when t matches no row at all (NaN).
func TemperatureBandFor(t float64) (TemperatureBand, bool) {
	for _, b := range TemperatureBands {
		if b.contains(t) {
			return b, true
		}
	}
	return TemperatureBand{}, false
}

// ScoreTemperature records the display temperature and applies the matching band.
// The display temperature is recorded even when the band is unhandled.
func ScoreTemperature(s ScoreState, avgC float64, policy GapPolicy) (ScoreState, error) {
	s = s.WithTemperature(avgC)

	band, ok := TemperatureBandFor(avgC)
	if !ok || band.Gap {
		if policy == GapPolicyError {
			return s, fmt.Errorf("%w: temperature %.1f°C", ErrUnhandledBand, avgC)
		}
		return s, nil
	}
	return s.Apply(band.Effects...), nil
}
