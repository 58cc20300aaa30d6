// Package export renders the protein timeline outside the terminal UI:
// plain text, SVG and PNG, plus a table over every selectable height.
package export

import (
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/Dicklesworthstone/protein_viewer/pkg/model"
	"github.com/Dicklesworthstone/protein_viewer/pkg/protein"
)

// RowKind distinguishes the three kinds of timeline row.
type RowKind int

const (
	RowBreakpoint RowKind = iota
	RowBand
	RowExplanation
)

// Row is one line of the vertical timeline.
type Row struct {
	Kind  RowKind
	Label string // "53g", "Low", or explanation text
	Role  string // error, warning, info, success
	Band  protein.Band
	Last  bool // final breakpoint has no connector below it
}

// Timeline lays out thresholds and open panels top to bottom.
func Timeline(t protein.Thresholds, panels model.Panels) []Row {
	labels := t.Labels()
	dotRoles := [4]string{"error", "warning", "info", "success"}

	rows := make([]Row, 0, 10)
	for i := range labels {
		rows = append(rows, Row{Kind: RowBreakpoint, Label: labels[i], Role: dotRoles[i], Last: i == len(labels)-1})
		if i == len(protein.Bands) {
			break
		}
		b := protein.Bands[i]
		rows = append(rows, Row{Kind: RowBand, Label: b.String(), Role: b.Role(), Band: b})
		if panels.Open(b) {
			rows = append(rows, Row{Kind: RowExplanation, Label: b.Explanation(), Role: b.Role(), Band: b})
		}
	}
	return rows
}

// Wrap breaks text into lines no wider than width display cells.
func Wrap(text string, width int) []string {
	if width <= 0 {
		return []string{text}
	}
	var lines []string
	var cur strings.Builder
	curWidth := 0
	for _, word := range strings.Fields(text) {
		w := runewidth.StringWidth(word)
		if curWidth > 0 && curWidth+1+w > width {
			lines = append(lines, cur.String())
			cur.Reset()
			curWidth = 0
		}
		if curWidth > 0 {
			cur.WriteByte(' ')
			curWidth++
		}
		cur.WriteString(word)
		curWidth += w
	}
	if cur.Len() > 0 {
		lines = append(lines, cur.String())
	}
	return lines
}
