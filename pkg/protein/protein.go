// Package protein estimates a daily protein-intake range from height.
//
// Height is turned into a reference body mass with a fixed "optimal" BMI and
// that mass is scaled by four fixed grams-per-kilogram ratios. Every function
// here is pure: no state, no I/O, no failure modes for non-negative input.
package protein

import (
	"fmt"
	"math"
)

// Domain constants. These are kept as opaque values and must not be tuned.
const (
	OptimalBMI = 21.5

	RDAGramsPerKilogram        = 0.8
	GoodMinGramsPerKilogram    = 1.2
	OptimalMinGramsPerKilogram = 1.6
	HighMinGramsPerKilogram    = 2.2

	PoundsToKilogramsFactor = 2.2046
	InchesToMetersFactor    = 0.0254
	InchesPerFoot           = 12
)

// Thresholds holds the four breakpoints of the timeline, in grams per day.
// For any non-negative mass RDA <= GoodMin <= OptimalMin <= HighMin.
type Thresholds struct {
	RDA        float64 `json:"rda"`
	GoodMin    float64 `json:"good_min"`
	OptimalMin float64 `json:"optimal_min"`
	HighMin    float64 `json:"high_min"`
}

// PoundsToKilograms multiplies by the fixed conversion factor.
// Not reached from the form; kept as part of the estimator's public surface.
func PoundsToKilograms(pounds float64) float64 {
	return pounds * PoundsToKilogramsFactor
}

// FeetAndInchesToMeters converts a whole-feet, whole-inches height to meters.
// Any integers are accepted; catalog limits belong to the caller.
func FeetAndInchesToMeters(feet, inches int) float64 {
	return float64(feet*InchesPerFoot+inches) * InchesToMetersFactor
}

// ReferenceMass returns the body mass, in kilograms, of someone at the
// optimal BMI for the given height in meters.
func ReferenceMass(heightM float64) float64 {
	return OptimalBMI * heightM * heightM
}

// FromMass applies the four fixed ratios to a mass in kilograms.
func FromMass(massKg float64) Thresholds {
	return Thresholds{
		RDA:        massKg * RDAGramsPerKilogram,
		GoodMin:    massKg * GoodMinGramsPerKilogram,
		OptimalMin: massKg * OptimalMinGramsPerKilogram,
		HighMin:    massKg * HighMinGramsPerKilogram,
	}
}

// FromHeight is the entry point used by the presentation layer.
func FromHeight(heightM float64) Thresholds {
	return FromMass(ReferenceMass(heightM))
}

// Values returns the breakpoints in timeline order.
func (t Thresholds) Values() [4]float64 {
	return [4]float64{t.RDA, t.GoodMin, t.OptimalMin, t.HighMin}
}

// Ordered reports whether the breakpoints are non-decreasing.
func (t Thresholds) Ordered() bool {
	return t.RDA <= t.GoodMin && t.GoodMin <= t.OptimalMin && t.OptimalMin <= t.HighMin
}

// FormatGrams renders a value with zero decimals and a "g" suffix.
func FormatGrams(grams float64) string {
	return fmt.Sprintf("%.0fg", math.Round(grams))
}

// Labels returns the four breakpoints formatted for display.
func (t Thresholds) Labels() [4]string {
	var out [4]string
	for i, v := range t.Values() {
		out[i] = FormatGrams(v)
	}
	return out
}

// Summary is a single line suitable for the clipboard or a status bar.
func (t Thresholds) Summary() string {
	l := t.Labels()
	return fmt.Sprintf("RDA %s | good %s | optimal %s | high %s", l[0], l[1], l[2], l[3])
}
