package ui

// Layout breakpoints and limits.
const (
	// BreakpointNarrow is the width below which the selectors stack vertically.
	BreakpointNarrow = 40

	// MaxExplanationWidth caps the wrap width of band explanations so long
	// lines stay readable on wide terminals.
	MaxExplanationWidth = 72

	// MinContentHeight is the minimum height for the scrollable body.
	MinContentHeight = 5

	// labelGutter is the width reserved left of the timeline axis.
	labelGutter = 7
)

func explanationWidth(termWidth int) int {
	w := termWidth - labelGutter - 6
	if w > MaxExplanationWidth {
		w = MaxExplanationWidth
	}
	if w < 20 {
		w = 20
	}
	return w
}
