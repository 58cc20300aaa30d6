package export

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"gonum.org/v1/gonum/floats"

	"github.com/Dicklesworthstone/protein_viewer/pkg/model"
	"github.com/Dicklesworthstone/protein_viewer/pkg/protein"
)

// CatalogRow is one selectable height and its thresholds.
type CatalogRow struct {
	Height     model.Height
	Meters     float64
	MassKg     float64
	Thresholds protein.Thresholds
}

// CatalogSummary holds column-wise extremes across the catalog.
type CatalogSummary struct {
	Min protein.Thresholds
	Max protein.Thresholds
}

// BuildCatalog evaluates every selectable height.
func BuildCatalog() []CatalogRow {
	heights := model.Catalog()
	rows := make([]CatalogRow, len(heights))
	for i, h := range heights {
		m := h.Meters()
		rows[i] = CatalogRow{
			Height:     h,
			Meters:     m,
			MassKg:     protein.ReferenceMass(m),
			Thresholds: protein.FromHeight(m),
		}
	}
	return rows
}

// Summarize returns per-column min and max. Empty input yields zeros.
func Summarize(rows []CatalogRow) CatalogSummary {
	if len(rows) == 0 {
		return CatalogSummary{}
	}
	var cols [4][]float64
	for _, r := range rows {
		for i, v := range r.Thresholds.Values() {
			cols[i] = append(cols[i], v)
		}
	}
	return CatalogSummary{
		Min: protein.Thresholds{RDA: floats.Min(cols[0]), GoodMin: floats.Min(cols[1]), OptimalMin: floats.Min(cols[2]), HighMin: floats.Min(cols[3])},
		Max: protein.Thresholds{RDA: floats.Max(cols[0]), GoodMin: floats.Max(cols[1]), OptimalMin: floats.Max(cols[2]), HighMin: floats.Max(cols[3])},
	}
}

// WriteTable renders the catalog as a bordered table followed by its range.
func WriteTable(w io.Writer, rows []CatalogRow) error {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("Height", "Meters", "Mass", "RDA", "Good", "Optimal", "High")

	for _, r := range rows {
		l := r.Thresholds.Labels()
		t.Row(r.Height.String(), fmt.Sprintf("%.4f", r.Meters), fmt.Sprintf("%.1fkg", r.MassKg), l[0], l[1], l[2], l[3])
	}

	s := Summarize(rows)
	if _, err := fmt.Fprintln(w, t.Render()); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "Range: RDA %s-%s, high %s-%s\n",
		protein.FormatGrams(s.Min.RDA), protein.FormatGrams(s.Max.RDA),
		protein.FormatGrams(s.Min.HighMin), protein.FormatGrams(s.Max.HighMin))
	return err
}
