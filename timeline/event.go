// Package timeline computes the layout of a horizontal, time-scaled timeline
// and the hover/click interaction state of its markers.
//
// The layout is a pure function of the events, the draw configuration and an
// injected "today" instant. Surfaces (SVG, HTML, terminal) consume a Layout
// and never redo the math.
package timeline

import (
	"time"
)

// TodaySubject is the subject of the synthetic event appended at draw time.
const TodaySubject = "Today"

// Event is a dated, labeled point of interest on the timeline.
type Event struct {
	Date    time.Time `json:"date" yaml:"date"`
	Subject string    `json:"subject" yaml:"subject"`
	Content string    `json:"content,omitempty" yaml:"content,omitempty"` // Optional HTML fragment

	// Synthetic marks the injected today event. It takes part in the axis
	// range and the connector lines but never gets a marker.
	Synthetic bool `json:"synthetic,omitempty" yaml:"-"`
}

// Normalize returns the render list: the events in input order with the
// synthetic today event appended last. The input slice is not modified and
// the result is never re-sorted.
func Normalize(events []Event, today time.Time) []Event {
	render := make([]Event, 0, len(events)+1)
	render = append(render, events...)
	return append(render, Event{
		Date:      today,
		Subject:   TodaySubject,
		Synthetic: true,
	})
}

// dates extracts the timestamps of events.
func dates(events []Event) []time.Time {
	out := make([]time.Time, len(events))
	for i, e := range events {
		out[i] = e.Date
	}
	return out
}
