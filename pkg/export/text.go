package export

import (
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/Dicklesworthstone/protein_viewer/pkg/model"
	"github.com/Dicklesworthstone/protein_viewer/pkg/protein"
)

const (
	textLabelWidth   = 6
	textExplainWidth = 60
)

// WriteText writes an uncolored timeline, for pipes and non-TTY output.
func WriteText(w io.Writer, h model.Height, panels model.Panels) error {
	t := h.Thresholds()
	var b strings.Builder

	fmt.Fprintf(&b, "Protein Calculator\nHeight %s (%.4f m, reference mass %.1f kg)\n\n",
		h, h.Meters(), protein.ReferenceMass(h.Meters()))

	gutter := strings.Repeat(" ", textLabelWidth)
	for _, row := range Timeline(t, panels) {
		switch row.Kind {
		case RowBreakpoint:
			b.WriteString(runewidth.FillLeft(row.Label, textLabelWidth) + "  ●\n")
		case RowBand:
			b.WriteString(gutter + "  │  " + row.Label + "\n")
		case RowExplanation:
			for _, line := range Wrap(row.Label, textExplainWidth) {
				b.WriteString(gutter + "  │    " + line + "\n")
			}
		}
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// WriteIntake reports which band a daily intake falls in for height h.
func WriteIntake(w io.Writer, h model.Height, grams float64) error {
	if err := protein.CheckIntake(grams); err != nil {
		return err
	}
	t := h.Thresholds()
	band := protein.Classify(grams, t)

	var detail string
	switch band {
	case protein.BandBelowRDA:
		detail = "below the RDA of " + protein.FormatGrams(t.RDA)
	case protein.BandAboveHigh:
		detail = "above the high mark of " + protein.FormatGrams(t.HighMin)
	default:
		lo, hi := band.Bounds(t)
		detail = fmt.Sprintf("%s range, %s to %s", band, protein.FormatGrams(lo), protein.FormatGrams(hi))
	}

	_, err := fmt.Fprintf(w, "%s at %s: %s\n", protein.FormatGrams(grams), h, detail)
	return err
}
