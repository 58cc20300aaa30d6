package ui

import (
	"context"
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Dicklesworthstone/protein_viewer/pkg/analytics"
	"github.com/Dicklesworthstone/protein_viewer/pkg/config"
	"github.com/Dicklesworthstone/protein_viewer/pkg/export"
	"github.com/Dicklesworthstone/protein_viewer/pkg/model"
	"github.com/Dicklesworthstone/protein_viewer/pkg/protein"
)

// ConfigReloadedMsg is sent when the config file changes on disk.
type ConfigReloadedMsg struct {
	Config config.Config
}

// ConfigErrorMsg reports a config file that changed but failed to load.
type ConfigErrorMsg struct {
	Err error
}

type focusField int

const (
	focusFeet focusField = iota
	focusInches
)

// Options configures a new Model.
type Options struct {
	Height  model.Height
	Theme   Theme
	Tracker *analytics.Tracker
}

// Model is the protein calculator screen: two height selectors above a
// vertical timeline of the four thresholds.
type Model struct {
	feet   SelectorModel
	inches SelectorModel
	focus  focusField

	panels model.Panels
	help   HelpOverlayModel
	body   viewport.Model
	theme  Theme
	notes  *explanationCache

	tracker *analytics.Tracker
	copyFn  func(string) error

	width  int
	height int
	status string
}

// NewModel creates the screen with the given starting selection. A height
// outside the catalog falls back to the default selection.
func NewModel(opts Options) Model {
	h := opts.Height
	if h.Validate() != nil {
		h = model.DefaultHeight()
	}

	m := Model{
		feet:    NewSelectorModel("Feet", model.FeetOptions, h.Feet, model.ClearedSelection, opts.Theme),
		inches:  NewSelectorModel("Inches", model.InchesOptions, h.Inches, model.ClearedSelection, opts.Theme),
		help:    NewHelpOverlayModel(opts.Theme),
		body:    viewport.New(80, MinContentHeight),
		theme:   opts.Theme,
		notes:   newExplanationCache(),
		tracker: opts.Tracker,
		copyFn:  clipboard.WriteAll,
		width:   80,
		height:  24,
	}
	m.feet.Focus()
	m.resize()
	m.refresh()
	return m
}

// Height returns the current selection.
func (m Model) Height() model.Height {
	return model.Height{Feet: m.feet.Value(), Inches: m.inches.Value()}
}

// Thresholds recomputes the estimate for the current selection.
func (m Model) Thresholds() protein.Thresholds {
	return m.Height().Thresholds()
}

// Panels returns which explanations are open.
func (m Model) Panels() model.Panels {
	return m.panels
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return m.track(analytics.EventView)
}

func (m Model) track(name analytics.EventName) tea.Cmd {
	if m.tracker == nil {
		return nil
	}
	tracker := m.tracker
	return func() tea.Msg {
		tracker.Track(context.Background(), name)
		return nil
	}
}

func (m *Model) focused() *SelectorModel {
	if m.focus == focusInches {
		return &m.inches
	}
	return &m.feet
}

func (m *Model) setFocus(f focusField) {
	m.focused().Blur()
	m.focus = f
	m.focused().Focus()
}

// Update implements tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()
		m.refresh()
		return m, nil

	case ConfigReloadedMsg:
		m.applyTheme(m.theme.WithName(msg.Config.Theme))
		m.status = "Config reloaded"
		m.refresh()
		return m, nil

	case ConfigErrorMsg:
		m.status = "Config error: " + msg.Err.Error()
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	var cmd tea.Cmd
	m.body, cmd = m.body.Update(msg)
	return m, cmd
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	if m.help.IsVisible() {
		m.help, _ = m.help.Update(msg)
		return m, nil
	}

	if key == "ctrl+c" {
		return m, tea.Quit
	}

	if sel := m.focused(); sel.Editing() {
		if sel.HandleKey(key) {
			return m.selectionChanged()
		}
		return m, nil
	}

	switch key {
	case "q":
		return m, tea.Quit
	case "?":
		m.help.Toggle()
		return m, nil
	case "tab", "shift+tab":
		if m.focus == focusFeet {
			m.setFocus(focusInches)
		} else {
			m.setFocus(focusFeet)
		}
		return m, nil
	case "left", "-":
		m.focused().Prev()
		return m.selectionChanged()
	case "right", "+", "=":
		m.focused().Next()
		return m.selectionChanged()
	case "enter":
		m.focused().StartEditing("")
		return m, nil
	case "x":
		before := m.focused().Value()
		m.focused().Clear()
		if m.focused().Value() == before {
			return m, nil
		}
		return m.selectionChanged()
	case "l", "g", "o":
		m.panels.Toggle(bandForKey(key))
		m.refresh()
		return m, m.track(analytics.EventPanelToggled)
	case "y":
		return m.copySummary()
	}

	if IsDigitKey(key) {
		m.focused().StartEditing(key)
		return m, nil
	}

	var cmd tea.Cmd
	m.body, cmd = m.body.Update(msg)
	return m, cmd
}

func bandForKey(key string) protein.Band {
	switch key {
	case "l":
		return protein.BandLow
	case "g":
		return protein.BandGood
	default:
		return protein.BandOptimal
	}
}

func (m Model) selectionChanged() (tea.Model, tea.Cmd) {
	m.status = ""
	m.refresh()
	return m, m.track(analytics.EventSelectionChanged)
}

func (m Model) copySummary() (tea.Model, tea.Cmd) {
	text := fmt.Sprintf("Protein for %s: %s", m.Height(), m.Thresholds().Summary())
	if err := m.copyFn(text); err != nil {
		m.status = "Copy failed: " + err.Error()
		return m, nil
	}
	m.status = "Copied to clipboard"
	return m, m.track(analytics.EventCopied)
}

func (m *Model) applyTheme(t Theme) {
	m.theme = t
	m.feet.theme = t
	m.inches.theme = t
	m.help.theme = t
	m.notes = newExplanationCache()
}

// resize fits the body between the header and the one-line footer.
func (m *Model) resize() {
	m.body.Width = m.width
	m.body.Height = max(m.height-lipgloss.Height(m.renderHeader())-1, MinContentHeight)
}

// refresh rebuilds the timeline into the scrollable body.
func (m *Model) refresh() {
	m.body.SetContent(m.renderTimeline())
}

func (m Model) renderTimeline() string {
	t := m.theme
	gutter := strings.Repeat(" ", labelGutter)
	labelStyle := t.Renderer.NewStyle().Foreground(t.Text).Width(labelGutter).Align(lipgloss.Right)
	wrap := explanationWidth(m.width)

	var b strings.Builder
	for _, row := range export.Timeline(m.Thresholds(), m.panels) {
		switch row.Kind {
		case export.RowBreakpoint:
			b.WriteString(labelStyle.Render(row.Label) + " " + RenderDot(t, row.Role) + "\n")
		case export.RowBand:
			b.WriteString(gutter + " " + RenderConnector(t) + "  " +
				RenderBandButton(t, row.Label, row.Role, m.panels.Open(row.Band)) + "\n")
		case export.RowExplanation:
			lo, hi := row.Band.Bounds(m.Thresholds())
			text := m.notes.render(row.Band, lo, hi, wrap, t.Dark())
			for _, line := range strings.Split(strings.TrimRight(text, "\n"), "\n") {
				b.WriteString(gutter + " " + RenderConnector(t) + "  " + line + "\n")
			}
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

// View implements tea.Model
func (m Model) View() string {
	t := m.theme

	if m.help.IsVisible() {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, m.help.View())
	}

	footer := m.status
	if footer == "" {
		footer = "? help • l/g/o explain • y copy • q quit"
	}
	footer = t.Renderer.NewStyle().Faint(true).Render(footer)

	return lipgloss.JoinVertical(lipgloss.Left, m.renderHeader(), m.body.View(), footer)
}

// renderHeader renders the title, the selectors and the divider. Below
// BreakpointNarrow the selectors stack.
func (m Model) renderHeader() string {
	t := m.theme
	title := t.Renderer.NewStyle().Bold(true).Foreground(t.Primary).Render("Protein Calculator")
	heightLabel := t.Renderer.NewStyle().Foreground(t.Subtext).Render("Height")

	var selectors string
	if m.width < BreakpointNarrow {
		selectors = lipgloss.JoinVertical(lipgloss.Left, m.feet.View(), m.inches.View())
	} else {
		selectors = lipgloss.JoinHorizontal(lipgloss.Top, m.feet.View(), "  ", m.inches.View())
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		title+"  "+heightLabel,
		selectors,
		RenderDivider(t, min(m.width, 48)),
	)
}
