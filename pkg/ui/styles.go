package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ══════════════════════════════════════════════════════════════════════════════
// COLOR PALETTE - Dracula-inspired, with a light variant for AdaptiveColor
// ══════════════════════════════════════════════════════════════════════════════

var (
	ColorText    = lipgloss.AdaptiveColor{Light: "#282A36", Dark: "#F8F8F2"}
	ColorSubtext = lipgloss.AdaptiveColor{Light: "#44475A", Dark: "#BFBFBF"}
	ColorMuted   = lipgloss.AdaptiveColor{Light: "#7A86B6", Dark: "#6272A4"}
	ColorBorder  = lipgloss.AdaptiveColor{Light: "#C0C4D6", Dark: "#44475A"}

	ColorPrimary = lipgloss.AdaptiveColor{Light: "#7C4DDB", Dark: "#BD93F9"}
	ColorError   = lipgloss.AdaptiveColor{Light: "#D32F2F", Dark: "#FF5555"}
	ColorWarning = lipgloss.AdaptiveColor{Light: "#E67E00", Dark: "#FFB86C"}
	ColorInfo    = lipgloss.AdaptiveColor{Light: "#0288D1", Dark: "#8BE9FD"}
	ColorSuccess = lipgloss.AdaptiveColor{Light: "#2E7D32", Dark: "#50FA7B"}
)

// Theme bundles a renderer with the palette so views render consistently
// whether or not they are attached to the real terminal.
type Theme struct {
	Renderer *lipgloss.Renderer

	Primary   lipgloss.AdaptiveColor
	Secondary lipgloss.AdaptiveColor
	Text      lipgloss.AdaptiveColor
	Subtext   lipgloss.AdaptiveColor
	Border    lipgloss.AdaptiveColor

	Error   lipgloss.AdaptiveColor
	Warning lipgloss.AdaptiveColor
	Info    lipgloss.AdaptiveColor
	Success lipgloss.AdaptiveColor

	// Name is the configured theme: dark, light or auto.
	Name string

	detectedDark bool
}

// DefaultTheme builds a theme on r. "dark" and "light" pin the background;
// anything else uses what the renderer detected.
func DefaultTheme(r *lipgloss.Renderer, name string) Theme {
	return newTheme(r, name, r.HasDarkBackground())
}

// WithName rebuilds the theme for another configured name on the same
// renderer. Switching back to "auto" restores the background detected when
// the theme was first built.
func (t Theme) WithName(name string) Theme {
	return newTheme(t.Renderer, name, t.detectedDark)
}

func newTheme(r *lipgloss.Renderer, name string, detectedDark bool) Theme {
	switch name {
	case "dark":
		r.SetHasDarkBackground(true)
	case "light":
		r.SetHasDarkBackground(false)
	default:
		r.SetHasDarkBackground(detectedDark)
	}
	return Theme{
		Renderer:     r,
		Primary:      ColorPrimary,
		Secondary:    ColorMuted,
		Text:         ColorText,
		Subtext:      ColorSubtext,
		Border:       ColorBorder,
		Error:        ColorError,
		Warning:      ColorWarning,
		Info:         ColorInfo,
		Success:      ColorSuccess,
		Name:         name,
		detectedDark: detectedDark,
	}
}

// Dark reports whether content should be styled for a dark background.
func (t Theme) Dark() bool {
	if t.Renderer == nil {
		return true
	}
	return t.Renderer.HasDarkBackground()
}

// RoleColor maps a semantic role to a palette color.
func (t Theme) RoleColor(role string) lipgloss.AdaptiveColor {
	switch role {
	case "error":
		return t.Error
	case "warning":
		return t.Warning
	case "info":
		return t.Info
	case "success":
		return t.Success
	default:
		return t.Secondary
	}
}

// ══════════════════════════════════════════════════════════════════════════════
// TIMELINE PIECES
// ══════════════════════════════════════════════════════════════════════════════

// RenderDot renders a filled timeline dot in the role's color.
func RenderDot(t Theme, role string) string {
	return t.Renderer.NewStyle().Foreground(t.RoleColor(role)).Render("●")
}

// RenderConnector renders the vertical line between dots.
func RenderConnector(t Theme) string {
	return t.Renderer.NewStyle().Foreground(t.Secondary).Render("│")
}

// RenderBandButton renders a band label styled like a text button.
// The trailing marker shows whether its explanation is open.
func RenderBandButton(t Theme, label, role string, open bool) string {
	marker := "?"
	if open {
		marker = "▾"
	}
	return t.Renderer.NewStyle().
		Foreground(t.RoleColor(role)).
		Bold(true).
		Render(strings.ToUpper(label) + " " + marker)
}

// RenderDivider renders a horizontal divider line
func RenderDivider(t Theme, width int) string {
	if width <= 0 {
		return ""
	}
	return t.Renderer.NewStyle().
		Foreground(t.Border).
		Render(strings.Repeat("─", width))
}
