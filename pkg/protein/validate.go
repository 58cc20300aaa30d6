package protein

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidMeasurement is returned when an input outside the estimator's
// documented domain reaches a boundary that accepts free-form values.
var ErrInvalidMeasurement = errors.New("invalid measurement")

// CheckHeight rejects negative feet or inches. It does not clamp.
func CheckHeight(feet, inches int) error {
	if feet < 0 {
		return fmt.Errorf("%w: feet %d is negative", ErrInvalidMeasurement, feet)
	}
	if inches < 0 {
		return fmt.Errorf("%w: inches %d is negative", ErrInvalidMeasurement, inches)
	}
	return nil
}

// CheckMass rejects negative, NaN and infinite masses.
func CheckMass(massKg float64) error {
	if math.IsNaN(massKg) || math.IsInf(massKg, 0) {
		return fmt.Errorf("%w: mass %v is not finite", ErrInvalidMeasurement, massKg)
	}
	if massKg < 0 {
		return fmt.Errorf("%w: mass %v is negative", ErrInvalidMeasurement, massKg)
	}
	return nil
}

// CheckIntake rejects negative, NaN and infinite daily intakes in grams.
func CheckIntake(grams float64) error {
	if math.IsNaN(grams) || math.IsInf(grams, 0) || grams < 0 {
		return fmt.Errorf("%w: intake %vg must be a finite, non-negative number", ErrInvalidMeasurement, grams)
	}
	return nil
}
