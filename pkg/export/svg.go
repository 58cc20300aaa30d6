package export

import (
	"fmt"
	"io"

	svg "github.com/ajstarks/svgo"

	"github.com/Dicklesworthstone/protein_viewer/pkg/model"
)

// Role colors, shared by the SVG and PNG renderers.
var roleHex = map[string]string{
	"error":   "#FF5555",
	"warning": "#FFB86C",
	"info":    "#8BE9FD",
	"success": "#50FA7B",
}

// Image layout, in pixels.
const (
	imgWidth       = 560
	imgMargin      = 24
	imgAxisX       = 110
	imgTitleHeight = 48
	imgDotRow      = 36
	imgBandRow     = 40
	imgLineHeight  = 16
	imgDotRadius   = 7
	imgWrapChars   = 56
)

type placedRow struct {
	Row
	y     int      // vertical center
	lines []string // wrapped explanation
}

// layout assigns vertical positions and returns the total image height.
func layout(rows []Row) ([]placedRow, int) {
	y := imgMargin + imgTitleHeight
	placed := make([]placedRow, 0, len(rows))
	for _, r := range rows {
		p := placedRow{Row: r}
		switch r.Kind {
		case RowBreakpoint:
			p.y = y + imgDotRow/2
			y += imgDotRow
		case RowBand:
			p.y = y + imgBandRow/2
			y += imgBandRow
		case RowExplanation:
			p.lines = Wrap(r.Label, imgWrapChars)
			p.y = y
			y += len(p.lines)*imgLineHeight + imgLineHeight/2
		}
		placed = append(placed, p)
	}
	return placed, y + imgMargin
}

// WriteSVG renders the timeline as an SVG document.
func WriteSVG(w io.Writer, h model.Height, panels model.Panels) error {
	rows, height := layout(Timeline(h.Thresholds(), panels))

	ew := &errWriter{w: w}
	canvas := svg.New(ew)
	canvas.Start(imgWidth, height)
	canvas.Rect(0, 0, imgWidth, height, "fill:#282A36")
	canvas.Text(imgMargin, imgMargin+20, "Protein Calculator", "fill:#F8F8F2;font-family:sans-serif;font-size:22px;font-weight:bold")
	canvas.Text(imgWidth-imgMargin, imgMargin+20, "Height "+h.String(), "fill:#BFBFBF;font-family:sans-serif;font-size:14px;text-anchor:end")

	// Connectors first so dots draw on top.
	prevDot := -1
	for _, r := range rows {
		if r.Kind != RowBreakpoint {
			continue
		}
		if prevDot >= 0 {
			canvas.Line(imgAxisX, prevDot, imgAxisX, r.y, "stroke:#6272A4;stroke-width:2")
		}
		prevDot = r.y
	}

	for _, r := range rows {
		color := roleHex[r.Role]
		switch r.Kind {
		case RowBreakpoint:
			canvas.Circle(imgAxisX, r.y, imgDotRadius, "fill:"+color)
			canvas.Text(imgAxisX-20, r.y+5, r.Label, "fill:#F8F8F2;font-family:sans-serif;font-size:16px;text-anchor:end")
		case RowBand:
			canvas.Text(imgAxisX+24, r.y+5, r.Label, fmt.Sprintf("fill:%s;font-family:sans-serif;font-size:15px;font-weight:bold", color))
		case RowExplanation:
			for i, line := range r.lines {
				canvas.Text(imgAxisX+24, r.y+(i+1)*imgLineHeight, line, "fill:#BFBFBF;font-family:sans-serif;font-size:12px")
			}
		}
	}

	canvas.End()
	return ew.err
}

// errWriter remembers the first write error; svgo does not return them.
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) Write(p []byte) (int, error) {
	if e.err != nil {
		return 0, e.err
	}
	n, err := e.w.Write(p)
	e.err = err
	return n, err
}
