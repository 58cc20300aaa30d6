package model

import "github.com/Dicklesworthstone/protein_viewer/pkg/protein"

// Panels tracks which band explanations are expanded. Each flag is its own
// cell; any combination, including all open, is valid.
type Panels struct {
	Low     bool
	Good    bool
	Optimal bool
}

// Toggle flips the flag for one band. Bands without an explanation are ignored.
func (p *Panels) Toggle(b protein.Band) {
	switch b {
	case protein.BandLow:
		p.Low = !p.Low
	case protein.BandGood:
		p.Good = !p.Good
	case protein.BandOptimal:
		p.Optimal = !p.Optimal
	}
}

// Open reports whether the band's explanation is expanded.
func (p Panels) Open(b protein.Band) bool {
	switch b {
	case protein.BandLow:
		return p.Low
	case protein.BandGood:
		return p.Good
	case protein.BandOptimal:
		return p.Optimal
	default:
		return false
	}
}

// Count returns how many explanations are expanded.
func (p Panels) Count() int {
	n := 0
	for _, b := range protein.Bands {
		if p.Open(b) {
			n++
		}
	}
	return n
}
