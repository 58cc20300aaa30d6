// Package analytics records anonymous usage events.
//
// It is a side channel: nothing here feeds back into the estimator, and only
// event names and timestamps are stored, never heights or results.
package analytics

import (
	"context"
	"log"
	"time"
)

// EventName identifies a kind of interaction.
type EventName string

const (
	EventView             EventName = "view"
	EventSelectionChanged EventName = "selection_changed"
	EventPanelToggled     EventName = "panel_toggled"
	EventCopied           EventName = "copied"
	EventExported         EventName = "exported"
)

// Event is one recorded interaction.
type Event struct {
	Name EventName
	At   time.Time
}

// Recorder persists events.
type Recorder interface {
	Record(ctx context.Context, ev Event) error
	Close() error
}

// Noop discards every event.
type Noop struct{}

func (Noop) Record(context.Context, Event) error { return nil }
func (Noop) Close() error { return nil }

// Tracker stamps events and hands them to a Recorder. Failures are logged,
// not returned.
type Tracker struct {
	rec   Recorder
	clock func() time.Time
}

// NewTracker wraps rec. A nil rec behaves like Noop.
func NewTracker(rec Recorder) *Tracker {
	if rec == nil {
		rec = Noop{}
	}
	return &Tracker{rec: rec, clock: time.Now}
}

// Track records name at the current time. Safe on a nil Tracker.
func (t *Tracker) Track(ctx context.Context, name EventName) {
	if t == nil {
		return
	}
	ev := Event{Name: name, At: t.clock().UTC()}
	if err := t.rec.Record(ctx, ev); err != nil {
		log.Printf("Warning: failed to record %s event: %v", name, err)
	}
}

// Close releases the underlying recorder.
func (t *Tracker) Close() error {
	if t == nil {
		return nil
	}
	return t.rec.Close()
}
