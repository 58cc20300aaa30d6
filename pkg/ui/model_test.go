package ui

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Dicklesworthstone/protein_viewer/pkg/analytics"
	"github.com/Dicklesworthstone/protein_viewer/pkg/config"
	"github.com/Dicklesworthstone/protein_viewer/pkg/model"
	"github.com/Dicklesworthstone/protein_viewer/pkg/protein"
)

// keyMsg creates a tea.KeyMsg for testing
func keyMsg(key string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)}
}

func testTheme() Theme {
	return DefaultTheme(lipgloss.NewRenderer(io.Discard), "dark")
}

func newTestModel(h model.Height) Model {
	return NewModel(Options{Height: h, Theme: testTheme()})
}

// send applies msgs in order and returns the resulting model.
func send(t *testing.T, m Model, msgs ...tea.Msg) Model {
	t.Helper()
	for _, msg := range msgs {
		updated, _ := m.Update(msg)
		m = updated.(Model)
	}
	return m
}

type captureRecorder struct{ events []analytics.EventName }

func (c *captureRecorder) Record(_ context.Context, ev analytics.Event) error {
	c.events = append(c.events, ev.Name)
	return nil
}
func (c *captureRecorder) Close() error { return nil }

func TestNewModelDefaults(t *testing.T) {
	m := newTestModel(model.DefaultHeight())
	if m.Height() != model.DefaultHeight() {
		t.Errorf("expected 5'9\", got %v", m.Height())
	}
	if m.Thresholds().Labels() != [4]string{"53g", "79g", "106g", "145g"} {
		t.Errorf("unexpected thresholds: %v", m.Thresholds().Labels())
	}
	if m.Panels().Count() != 0 {
		t.Error("panels should start closed")
	}
}

func TestNewModelOutOfCatalogFallsBack(t *testing.T) {
	m := newTestModel(model.Height{Feet: 12, Inches: 3})
	if m.Height() != model.DefaultHeight() {
		t.Errorf("expected default height, got %v", m.Height())
	}
}

func TestArrowKeysStepAndWrap(t *testing.T) {
	m := newTestModel(model.Height{Feet: 5, Inches: 11})

	m = send(t, m, tea.KeyMsg{Type: tea.KeyRight})
	if m.Height().Feet != 6 {
		t.Errorf("right should step feet to 6, got %d", m.Height().Feet)
	}

	m = send(t, m, tea.KeyMsg{Type: tea.KeyTab}, tea.KeyMsg{Type: tea.KeyRight})
	if m.Height().Inches != 0 {
		t.Errorf("right on 11 inches should wrap to 0, got %d", m.Height().Inches)
	}
	if m.Height().Feet != 6 {
		t.Errorf("inches change should not touch feet, got %d", m.Height().Feet)
	}

	m = send(t, m, tea.KeyMsg{Type: tea.KeyShiftTab})
	for i := 0; i < 5; i++ {
		m = send(t, m, keyMsg("-"))
	}
	if m.Height().Feet != 8 {
		t.Errorf("stepping below 2 feet should wrap to 8, got %d", m.Height().Feet)
	}
}

func TestThresholdsFollowSelection(t *testing.T) {
	m := newTestModel(model.DefaultHeight())
	before := m.Thresholds()
	m = send(t, m, tea.KeyMsg{Type: tea.KeyRight})
	after := m.Thresholds()
	if after.RDA <= before.RDA || after.HighMin <= before.HighMin {
		t.Errorf("taller selection should raise thresholds: %+v -> %+v", before, after)
	}
	want := protein.FromHeight(protein.FeetAndInchesToMeters(6, 9))
	if after != want {
		t.Errorf("thresholds = %+v, want %+v", after, want)
	}
}

func TestTypingAutocompletes(t *testing.T) {
	m := newTestModel(model.DefaultHeight())
	m = send(t, m, tea.KeyMsg{Type: tea.KeyTab})

	m = send(t, m, keyMsg("1"), keyMsg("1"), tea.KeyMsg{Type: tea.KeyEnter})
	if m.Height().Inches != 11 {
		t.Errorf("typing 11 should select 11 inches, got %d", m.Height().Inches)
	}

	m = send(t, m, keyMsg("1"), tea.KeyMsg{Type: tea.KeyEnter})
	if m.Height().Inches != 1 {
		t.Errorf("exact match 1 should beat 10 and 11, got %d", m.Height().Inches)
	}
}

func TestTypingNoMatchKeepsValue(t *testing.T) {
	m := newTestModel(model.DefaultHeight())
	m = send(t, m, keyMsg("9"), tea.KeyMsg{Type: tea.KeyEnter})
	if m.Height().Feet != 5 {
		t.Errorf("9 feet is not an option; expected 5 to remain, got %d", m.Height().Feet)
	}
}

func TestClearingFallsBackToFive(t *testing.T) {
	m := newTestModel(model.DefaultHeight())
	m = send(t, m, tea.KeyMsg{Type: tea.KeyTab}, keyMsg("x"))
	if m.Height().Inches != model.ClearedSelection {
		t.Errorf("cleared inches should fall back to 5, got %d", m.Height().Inches)
	}

	m = send(t, m, tea.KeyMsg{Type: tea.KeyRight}, keyMsg("8"), tea.KeyMsg{Type: tea.KeyBackspace}, tea.KeyMsg{Type: tea.KeyEnter})
	if m.Height().Inches != model.ClearedSelection {
		t.Errorf("committing an erased box should fall back to 5, got %d", m.Height().Inches)
	}
}

func TestEnterWithoutTypingKeepsValue(t *testing.T) {
	tests := []struct {
		name string
		keys []tea.Msg
	}{
		{"feet", []tea.Msg{tea.KeyMsg{Type: tea.KeyEnter}, tea.KeyMsg{Type: tea.KeyEnter}}},
		{"inches", []tea.Msg{tea.KeyMsg{Type: tea.KeyTab}, tea.KeyMsg{Type: tea.KeyEnter}, tea.KeyMsg{Type: tea.KeyEnter}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := send(t, newTestModel(model.DefaultHeight()), tt.keys...)
			if m.Height() != model.DefaultHeight() {
				t.Errorf("opening and committing the box changed the height to %v", m.Height())
			}
			if m.focused().Editing() {
				t.Error("enter should close the box")
			}
		})
	}
}

func TestEscCancelsTyping(t *testing.T) {
	m := newTestModel(model.DefaultHeight())
	m = send(t, m, keyMsg("7"), tea.KeyMsg{Type: tea.KeyEsc})
	if m.Height().Feet != 5 {
		t.Errorf("esc should discard typed text, got %d feet", m.Height().Feet)
	}
	if m.focused().Editing() {
		t.Error("selector should leave edit mode after esc")
	}
}

func TestPanelKeysToggleIndependently(t *testing.T) {
	m := newTestModel(model.DefaultHeight())
	closed := strings.Count(m.renderTimeline(), "\n")

	m = send(t, m, keyMsg("g"))
	if p := m.Panels(); p.Low || !p.Good || p.Optimal {
		t.Errorf("only Good should be open: %+v", p)
	}
	if strings.Count(m.renderTimeline(), "\n") <= closed {
		t.Error("open panel should add lines to the timeline")
	}

	m = send(t, m, keyMsg("l"), keyMsg("o"))
	if m.Panels().Count() != 3 {
		t.Errorf("all panels should be open: %+v", m.Panels())
	}

	m = send(t, m, keyMsg("l"))
	if p := m.Panels(); p.Low || !p.Good || !p.Optimal {
		t.Errorf("closing Low should leave the others: %+v", p)
	}
}

func TestPanelsSurviveSelectionChange(t *testing.T) {
	m := newTestModel(model.DefaultHeight())
	m = send(t, m, keyMsg("o"), tea.KeyMsg{Type: tea.KeyRight})
	if !m.Panels().Optimal {
		t.Error("changing height should not close panels")
	}
}

func TestCopySummary(t *testing.T) {
	m := newTestModel(model.DefaultHeight())
	var copied string
	m.copyFn = func(s string) error { copied = s; return nil }

	m = send(t, m, keyMsg("y"))
	want := `Protein for 5'9": RDA 53g | good 79g | optimal 106g | high 145g`
	if copied != want {
		t.Errorf("copied %q, want %q", copied, want)
	}
	if m.status != "Copied to clipboard" {
		t.Errorf("unexpected status %q", m.status)
	}

	m.copyFn = func(string) error { return errors.New("no clipboard") }
	m = send(t, m, keyMsg("y"))
	if !strings.Contains(m.status, "no clipboard") {
		t.Errorf("expected copy failure status, got %q", m.status)
	}
}

func TestHelpOverlay(t *testing.T) {
	m := newTestModel(model.DefaultHeight())
	m = send(t, m, keyMsg("?"))
	if !m.help.IsVisible() {
		t.Fatal("? should open help")
	}
	if !strings.Contains(m.View(), "Protein Calculator Help") {
		t.Error("help view not rendered")
	}

	updated, cmd := m.Update(keyMsg("q"))
	m = updated.(Model)
	if cmd != nil {
		t.Error("q while help is open should only close help")
	}
	if m.help.IsVisible() {
		t.Error("any key should close help")
	}
}

func TestQuit(t *testing.T) {
	m := newTestModel(model.DefaultHeight())
	_, cmd := m.Update(keyMsg("q"))
	if cmd == nil {
		t.Fatal("q should return a quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("expected tea.QuitMsg")
	}
}

func TestWindowResize(t *testing.T) {
	m := newTestModel(model.DefaultHeight())
	m = send(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})
	header := lipgloss.Height(m.renderHeader())
	if m.body.Width != 120 || m.body.Height != 40-header-1 {
		t.Errorf("viewport = %dx%d with a %d line header", m.body.Width, m.body.Height, header)
	}

	m = send(t, m, tea.WindowSizeMsg{Width: 30, Height: 6})
	if m.body.Height != MinContentHeight {
		t.Errorf("viewport height should clamp to %d, got %d", MinContentHeight, m.body.Height)
	}
}

func TestNarrowViewFitsWindow(t *testing.T) {
	wide := send(t, newTestModel(model.DefaultHeight()), tea.WindowSizeMsg{Width: 80, Height: 40})
	narrow := send(t, newTestModel(model.DefaultHeight()), tea.WindowSizeMsg{Width: BreakpointNarrow - 1, Height: 40})

	if lipgloss.Height(narrow.renderHeader()) <= lipgloss.Height(wide.renderHeader()) {
		t.Fatal("stacked selectors should make the header taller")
	}
	if narrow.body.Height >= wide.body.Height {
		t.Errorf("narrow body %d should be shorter than wide body %d", narrow.body.Height, wide.body.Height)
	}
	for _, m := range []Model{wide, narrow} {
		if h := lipgloss.Height(m.View()); h > 40 {
			t.Errorf("width %d: view is %d lines, window is 40", m.width, h)
		}
	}
}

func TestViewShowsThresholds(t *testing.T) {
	m := newTestModel(model.DefaultHeight())
	m = send(t, m, tea.WindowSizeMsg{Width: 80, Height: 40})
	view := m.View()
	for _, want := range []string{"Protein Calculator", "Feet", "Inches", "53g", "79g", "106g", "145g", "LOW", "GOOD", "OPTIMAL"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestConfigReload(t *testing.T) {
	m := newTestModel(model.DefaultHeight())
	cfg := config.Default()
	cfg.Theme = config.ThemeLight

	m = send(t, m, ConfigReloadedMsg{Config: cfg})
	if m.theme.Name != "light" || m.feet.theme.Name != "light" {
		t.Errorf("theme not applied: %q", m.theme.Name)
	}
	if m.status != "Config reloaded" {
		t.Errorf("unexpected status %q", m.status)
	}
	if m.Height() != model.DefaultHeight() {
		t.Error("reload should not reset the selection")
	}

	m = send(t, m, ConfigErrorMsg{Err: errors.New("bad yaml")})
	if !strings.Contains(m.status, "bad yaml") {
		t.Errorf("unexpected status %q", m.status)
	}
}

func TestConfigReloadRestoresAutoBackground(t *testing.T) {
	r := lipgloss.NewRenderer(io.Discard)
	r.SetHasDarkBackground(false)
	m := NewModel(Options{Height: model.DefaultHeight(), Theme: DefaultTheme(r, config.ThemeAuto)})
	if m.theme.Dark() {
		t.Fatal("auto should keep the detected light background")
	}

	dark := config.Default()
	dark.Theme = config.ThemeDark
	m = send(t, m, ConfigReloadedMsg{Config: dark})
	if !m.theme.Dark() {
		t.Fatal("dark theme should pin a dark background")
	}

	auto := config.Default()
	auto.Theme = config.ThemeAuto
	m = send(t, m, ConfigReloadedMsg{Config: auto})
	if m.theme.Dark() {
		t.Error("switching back to auto should restore the detected light background")
	}
}

func TestTrackingCommands(t *testing.T) {
	rec := &captureRecorder{}
	m := NewModel(Options{Height: model.DefaultHeight(), Theme: testTheme(), Tracker: analytics.NewTracker(rec)})

	if cmd := m.Init(); cmd != nil {
		cmd()
	}
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRight})
	if cmd != nil {
		cmd()
	}
	_, cmd = m.Update(keyMsg("g"))
	if cmd != nil {
		cmd()
	}

	want := []analytics.EventName{analytics.EventView, analytics.EventSelectionChanged, analytics.EventPanelToggled}
	if len(rec.events) != len(want) {
		t.Fatalf("recorded %v, want %v", rec.events, want)
	}
	for i := range want {
		if rec.events[i] != want[i] {
			t.Errorf("event %d = %s, want %s", i, rec.events[i], want[i])
		}
	}
}

func TestNoTrackerNoCommands(t *testing.T) {
	m := newTestModel(model.DefaultHeight())
	if m.Init() != nil {
		t.Error("Init should not return a command without a tracker")
	}
}
