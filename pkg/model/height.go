package model

import (
	"errors"
	"fmt"
	"slices"

	"github.com/Dicklesworthstone/protein_viewer/pkg/protein"
)

// Selector defaults and catalogs offered by the form.
const (
	DefaultFeet   = 5
	DefaultInches = 9

	// ClearedSelection is what a selector falls back to when its input is
	// cleared. It is 5 for both selectors, not the default.
	ClearedSelection = 5
)

var (
	FeetOptions   = []int{2, 3, 4, 5, 6, 7, 8}
	InchesOptions = []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11}
)

// ErrOutOfCatalog is returned when a height is not one of the form's choices.
var ErrOutOfCatalog = errors.New("height not in catalog")

// Height is the pair of selections made in the form.
type Height struct {
	Feet   int `json:"feet" yaml:"feet"`
	Inches int `json:"inches" yaml:"inches"`
}

// DefaultHeight returns the form's initial selection (5'9").
func DefaultHeight() Height {
	return Height{Feet: DefaultFeet, Inches: DefaultInches}
}

// Validate checks the selection against the option catalogs.
func (h Height) Validate() error {
	if err := protein.CheckHeight(h.Feet, h.Inches); err != nil {
		return err
	}
	if !slices.Contains(FeetOptions, h.Feet) {
		return fmt.Errorf("%w: feet must be %d-%d, got %d", ErrOutOfCatalog, FeetOptions[0], FeetOptions[len(FeetOptions)-1], h.Feet)
	}
	if !slices.Contains(InchesOptions, h.Inches) {
		return fmt.Errorf("%w: inches must be %d-%d, got %d", ErrOutOfCatalog, InchesOptions[0], InchesOptions[len(InchesOptions)-1], h.Inches)
	}
	return nil
}

// Meters converts the selection to SI units.
func (h Height) Meters() float64 {
	return protein.FeetAndInchesToMeters(h.Feet, h.Inches)
}

// Thresholds runs the estimator for this selection.
func (h Height) Thresholds() protein.Thresholds {
	return protein.FromHeight(h.Meters())
}

// String renders the height as 5'9".
func (h Height) String() string {
	return fmt.Sprintf("%d'%d\"", h.Feet, h.Inches)
}

// Catalog enumerates every selectable height in form order.
func Catalog() []Height {
	out := make([]Height, 0, len(FeetOptions)*len(InchesOptions))
	for _, f := range FeetOptions {
		for _, i := range InchesOptions {
			out = append(out, Height{Feet: f, Inches: i})
		}
	}
	return out
}
