package export

import (
	"io"

	"git.sr.ht/~sbinet/gg"
	"golang.org/x/image/font/basicfont"

	"github.com/Dicklesworthstone/protein_viewer/pkg/model"
)

// WritePNG renders the timeline as a PNG image using the same layout as WriteSVG.
func WritePNG(w io.Writer, h model.Height, panels model.Panels) error {
	dc := renderImage(h, panels)
	return dc.EncodePNG(w)
}

func renderImage(h model.Height, panels model.Panels) *gg.Context {
	rows, height := layout(Timeline(h.Thresholds(), panels))

	dc := gg.NewContext(imgWidth, height)
	dc.SetHexColor("#282A36")
	dc.Clear()
	dc.SetFontFace(basicfont.Face7x13)

	dc.SetHexColor("#F8F8F2")
	dc.DrawString("Protein Calculator", imgMargin, imgMargin+20)
	dc.SetHexColor("#BFBFBF")
	dc.DrawStringAnchored("Height "+h.String(), imgWidth-imgMargin, imgMargin+20, 1, 0)

	dc.SetHexColor("#6272A4")
	dc.SetLineWidth(2)
	prevDot := -1
	for _, r := range rows {
		if r.Kind != RowBreakpoint {
			continue
		}
		if prevDot >= 0 {
			dc.DrawLine(imgAxisX, float64(prevDot), imgAxisX, float64(r.y))
			dc.Stroke()
		}
		prevDot = r.y
	}

	for _, r := range rows {
		switch r.Kind {
		case RowBreakpoint:
			dc.SetHexColor(roleHex[r.Role])
			dc.DrawCircle(imgAxisX, float64(r.y), imgDotRadius)
			dc.Fill()
			dc.SetHexColor("#F8F8F2")
			dc.DrawStringAnchored(r.Label, imgAxisX-20, float64(r.y), 1, 0.35)
		case RowBand:
			dc.SetHexColor(roleHex[r.Role])
			dc.DrawStringAnchored(r.Label, imgAxisX+24, float64(r.y), 0, 0.35)
		case RowExplanation:
			dc.SetHexColor("#BFBFBF")
			for i, line := range r.lines {
				dc.DrawString(line, imgAxisX+24, float64(r.y+(i+1)*imgLineHeight))
			}
		}
	}
	return dc
}
