package render

import (
	"encoding/json"
	"fmt"
	"io"

	"timeline2html/timeline"
)

// MarkerDetail is a marker together with the text surfaces show for it.
type MarkerDetail struct {
	timeline.Marker
	Subject string `json:"subject"`
	Date    string `json:"date"`
	Tooltip string `json:"tooltip"`
	Panel   string `json:"panel"`
}

// Document is the JSON view of a layout, served by the layout endpoint and
// written by the layout command.
type Document struct {
	Width      float64            `json:"width"`
	Height     float64            `json:"height"`
	Lane       float64            `json:"lane"`
	Today      string             `json:"today"`
	Scale      timeline.Scale     `json:"scale"`
	Segments   []timeline.Segment `json:"segments"`
	Markers    []MarkerDetail     `json:"markers"`
	StartLabel timeline.Label     `json:"startLabel"`
	EndLabel   timeline.Label     `json:"endLabel"`
}

// NewDocument builds the JSON view of l.
func NewDocument(l *timeline.Layout) Document {
	doc := Document{
		Width:      l.Config.Width,
		Height:     l.Config.Height,
		Lane:       l.Lane(),
		Today:      l.TooltipDate(l.Events[len(l.Events)-1]),
		Scale:      l.Scale,
		Segments:   l.Segments,
		Markers:    make([]MarkerDetail, 0, len(l.Markers)),
		StartLabel: l.Start,
		EndLabel:   l.End,
	}
	for _, m := range l.Markers {
		e := l.Events[m.Event]
		doc.Markers = append(doc.Markers, MarkerDetail{
			Marker:  m,
			Subject: e.Subject,
			Date:    l.TooltipDate(e),
			Tooltip: l.TooltipHTML(e),
			Panel:   l.PanelHTML(e),
		})
	}
	if doc.Segments == nil {
		doc.Segments = []timeline.Segment{}
	}
	return doc
}

// WriteJSON writes the indented JSON document for l.
func WriteJSON(w io.Writer, l *timeline.Layout) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(NewDocument(l)); err != nil {
		return fmt.Errorf("error encoding layout: %w", err)
	}
	return nil
}
