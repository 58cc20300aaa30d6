package ui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/lipgloss"
	"github.com/sahilm/fuzzy"
)

// SelectorModel picks one value from a fixed list of integers.
//
// It can be stepped with the arrow keys or edited like an autocomplete box:
// typed text narrows the options and enter commits the best match.
// Erasing the typed text and committing the empty box selects the fallback
// value; committing a box that was never typed in keeps the current one.
type SelectorModel struct {
	label    string
	options  []int
	index    int
	fallback int

	input   textinput.Model
	editing bool
	erased  bool
	matches []int // indexes into options
	focused bool
	theme   Theme
}

// NewSelectorModel creates a selector showing value, which must be in options.
func NewSelectorModel(label string, options []int, value, fallback int, theme Theme) SelectorModel {
	ti := textinput.New()
	ti.Placeholder = label
	ti.CharLimit = 2
	ti.Width = 4
	ti.Prompt = ""

	s := SelectorModel{
		label:    label,
		options:  options,
		fallback: fallback,
		input:    ti,
		theme:    theme,
	}
	s.SetValue(value)
	return s
}

// Value returns the selected option.
func (s SelectorModel) Value() int {
	return s.options[s.index]
}

// SetValue selects value if it is one of the options and reports whether it was.
func (s *SelectorModel) SetValue(value int) bool {
	for i, o := range s.options {
		if o == value {
			s.index = i
			return true
		}
	}
	return false
}

// Editing reports whether the autocomplete box is open.
func (s SelectorModel) Editing() bool {
	return s.editing
}

// Focus marks the selector as the active field.
func (s *SelectorModel) Focus() { s.focused = true }

// Blur deactivates the selector and abandons any edit.
func (s *SelectorModel) Blur() {
	s.focused = false
	s.stopEditing()
}

// Next steps to the following option, wrapping around.
func (s *SelectorModel) Next() {
	s.index = (s.index + 1) % len(s.options)
}

// Prev steps to the preceding option, wrapping around.
func (s *SelectorModel) Prev() {
	s.index = (s.index - 1 + len(s.options)) % len(s.options)
}

// Clear commits the fallback value, as when the box is emptied.
func (s *SelectorModel) Clear() {
	s.SetValue(s.fallback)
	s.stopEditing()
}

// StartEditing opens the autocomplete box, optionally seeded with text.
func (s *SelectorModel) StartEditing(seed string) {
	s.editing = true
	s.input.SetValue(seed)
	s.input.CursorEnd()
	s.input.Focus()
	s.filter()
}

func (s *SelectorModel) stopEditing() {
	s.editing = false
	s.erased = false
	s.input.Blur()
	s.input.SetValue("")
	s.matches = nil
}

// HandleKey processes a key while editing and reports whether the value changed.
func (s *SelectorModel) HandleKey(key string) (changed bool) {
	if !s.editing {
		return false
	}
	switch key {
	case "esc":
		s.stopEditing()
		return false
	case "enter":
		before := s.Value()
		if strings.TrimSpace(s.input.Value()) == "" {
			if s.erased {
				s.SetValue(s.fallback)
			}
		} else if len(s.matches) > 0 {
			s.index = s.matches[0]
		}
		s.stopEditing()
		return s.Value() != before
	case "backspace":
		v := s.input.Value()
		if len(v) > 0 {
			s.input.SetValue(v[:len(v)-1])
			s.erased = s.input.Value() == ""
			s.filter()
		}
		return false
	default:
		if IsDigitKey(key) && len(s.input.Value()) < s.input.CharLimit {
			s.input.SetValue(s.input.Value() + key)
			s.erased = false
			s.filter()
		}
		return false
	}
}

// Matches returns the options that match the typed text, best first.
func (s SelectorModel) Matches() []int {
	out := make([]int, len(s.matches))
	for i, idx := range s.matches {
		out[i] = s.options[idx]
	}
	return out
}

func (s *SelectorModel) filter() {
	query := strings.TrimSpace(s.input.Value())
	if query == "" {
		s.matches = make([]int, len(s.options))
		for i := range s.options {
			s.matches[i] = i
		}
		return
	}

	labels := make([]string, len(s.options))
	for i, o := range s.options {
		labels[i] = strconv.Itoa(o)
	}

	// An exact hit always wins over fuzzy ranking ("1" should pick 1, not 10).
	s.matches = s.matches[:0]
	for i, l := range labels {
		if l == query {
			s.matches = append(s.matches, i)
		}
	}
	for _, m := range fuzzy.Find(query, labels) {
		if labels[m.Index] != query {
			s.matches = append(s.matches, m.Index)
		}
	}
}

// View renders the field: label, current value and, while editing, the
// typed text with its candidate matches.
func (s SelectorModel) View() string {
	t := s.theme
	labelStyle := t.Renderer.NewStyle().Foreground(t.Subtext)
	boxStyle := t.Renderer.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Border).
		Padding(0, 1).
		Width(12)
	if s.focused {
		boxStyle = boxStyle.BorderForeground(t.Primary)
	}

	var body string
	if s.editing {
		body = s.input.View()
		if len(s.matches) > 0 {
			hint := t.Renderer.NewStyle().Foreground(t.Secondary).Render(" →" + strconv.Itoa(s.options[s.matches[0]]))
			body += hint
		}
	} else {
		valueStyle := t.Renderer.NewStyle().Foreground(t.Text).Bold(true)
		arrows := t.Renderer.NewStyle().Foreground(t.Secondary)
		body = arrows.Render("‹ ") + valueStyle.Render(strconv.Itoa(s.Value())) + arrows.Render(" ›")
	}

	return lipgloss.JoinVertical(lipgloss.Left, labelStyle.Render(s.label), boxStyle.Render(body))
}

// IsDigitKey reports whether key is a single ASCII digit.
func IsDigitKey(key string) bool {
	return len(key) == 1 && key[0] >= '0' && key[0] <= '9'
}
