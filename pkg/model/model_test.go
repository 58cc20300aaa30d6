package model

import (
	"errors"
	"testing"

	"github.com/Dicklesworthstone/protein_viewer/pkg/protein"
)

func TestDefaultHeight(t *testing.T) {
	h := DefaultHeight()
	if h.Feet != 5 || h.Inches != 9 {
		t.Errorf("DefaultHeight() = %v, want 5'9\"", h)
	}
	if h.String() != `5'9"` {
		t.Errorf("String() = %q", h.String())
	}
	if err := h.Validate(); err != nil {
		t.Errorf("default height should validate: %v", err)
	}
}

func TestHeightValidate(t *testing.T) {
	tests := []struct {
		name    string
		h       Height
		wantErr error
	}{
		{"min", Height{2, 0}, nil},
		{"max", Height{8, 11}, nil},
		{"feet too small", Height{1, 0}, ErrOutOfCatalog},
		{"feet too large", Height{9, 0}, ErrOutOfCatalog},
		{"inches too large", Height{5, 12}, ErrOutOfCatalog},
		{"negative inches", Height{5, -1}, protein.ErrInvalidMeasurement},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.h.Validate()
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("Validate() = %v, want nil", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestCatalog(t *testing.T) {
	c := Catalog()
	if len(c) != 7*12 {
		t.Fatalf("Catalog() has %d entries, want 84", len(c))
	}
	if c[0] != (Height{2, 0}) || c[len(c)-1] != (Height{8, 11}) {
		t.Errorf("Catalog() bounds = %v..%v", c[0], c[len(c)-1])
	}
	for i := 1; i < len(c); i++ {
		if c[i].Meters() <= c[i-1].Meters() {
			t.Errorf("catalog not increasing at %v", c[i])
		}
	}
}

func TestPanelsIndependent(t *testing.T) {
	var p Panels
	if p.Count() != 0 {
		t.Fatalf("zero Panels should be all closed")
	}

	p.Toggle(protein.BandGood)
	if p.Low || !p.Good || p.Optimal {
		t.Errorf("toggling Good changed other panels: %+v", p)
	}

	p.Toggle(protein.BandLow)
	p.Toggle(protein.BandOptimal)
	if p.Count() != 3 {
		t.Errorf("expected all panels open, got %+v", p)
	}

	p.Toggle(protein.BandGood)
	if !p.Low || p.Good || !p.Optimal {
		t.Errorf("closing Good should leave Low and Optimal open: %+v", p)
	}

	p.Toggle(protein.BandAboveHigh)
	if p.Count() != 2 {
		t.Errorf("toggling a band with no panel should be a no-op: %+v", p)
	}
}
