package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"

	"github.com/Dicklesworthstone/protein_viewer/pkg/export"
	"github.com/Dicklesworthstone/protein_viewer/pkg/protein"
)

// ExplanationMarkdown is the markdown shown under an expanded band.
func ExplanationMarkdown(b protein.Band, lo, hi float64) string {
	return fmt.Sprintf("**%s** · %s to %s\n\n%s\n",
		b, protein.FormatGrams(lo), protein.FormatGrams(hi), b.Explanation())
}

// RenderExplanation renders a band explanation with glamour, falling back to
// plain wrapped text if the renderer cannot be built.
func RenderExplanation(b protein.Band, lo, hi float64, width int, dark bool) string {
	style := "light"
	if dark {
		style = "dark"
	}
	md := ExplanationMarkdown(b, lo, hi)

	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithWordWrap(width),
	)
	if err == nil {
		if out, err := r.Render(md); err == nil {
			return strings.Trim(out, "\n")
		}
	}
	return strings.Join(export.Wrap(strings.ReplaceAll(md, "**", ""), width), "\n")
}

type explanationKey struct {
	band  protein.Band
	lo    string
	hi    string
	width int
	dark  bool
}

// explanationCache memoizes glamour output per band, bounds, width and background.
type explanationCache struct {
	entries map[explanationKey]string
}

func newExplanationCache() *explanationCache {
	return &explanationCache{entries: make(map[explanationKey]string)}
}

func (c *explanationCache) render(b protein.Band, lo, hi float64, width int, dark bool) string {
	key := explanationKey{band: b, lo: protein.FormatGrams(lo), hi: protein.FormatGrams(hi), width: width, dark: dark}
	if out, ok := c.entries[key]; ok {
		return out
	}
	out := RenderExplanation(b, lo, hi, width, dark)
	c.entries[key] = out
	return out
}
