// Package render turns a computed timeline layout into SVG, a standalone
// interactive HTML page, or a JSON document.
package render

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/microcosm-cc/bluemonday"

	"timeline2html/timeline"
)

// SVGOptions controls optional parts of the SVG output.
type SVGOptions struct {
	// Interactive adds the data attributes the HTML page script reads:
	// panel and tooltip HTML per marker.
	Interactive bool
	// Sanitize passes event content through a user-generated-content policy
	// before it is embedded.
	Sanitize bool
}

// SVG renders the layout as a standalone SVG document.
func SVG(l *timeline.Layout, opts SVGOptions) string {
	cfg := l.Config

	var svg strings.Builder
	fmt.Fprintf(&svg, `<svg class="timeline" xmlns="http://www.w3.org/2000/svg" viewBox="0, 0, %s, %s" x="0" y="0" width="%s" height="%s">`,
		num(cfg.Width), num(cfg.Height), num(cfg.Width), num(cfg.Height))
	svg.WriteString("\n")

	// Lines first so markers are drawn on top.
	for _, s := range l.Segments {
		fmt.Fprintf(&svg, `<line class="timeline-line" x1="%s" y1="%s" x2="%s" y2="%s" style="stroke: %s; stroke-width: %s"/>`,
			num(s.X1), num(s.Y1), num(s.X2), num(s.Y2), escapeXML(cfg.Color), num(cfg.LineWidth))
		svg.WriteString("\n")
	}

	var policy *bluemonday.Policy
	if opts.Sanitize {
		policy = bluemonday.UGCPolicy()
	}

	for i, m := range l.Markers {
		e := l.Events[m.Event]
		fmt.Fprintf(&svg, `<circle class="timeline-event" id="%s" r="%s" cx="%s" cy="%s" style="stroke: %s; stroke-width: %s; fill: %s"`,
			escapeXML(m.ID), num(m.Radius), num(m.X), num(m.Y),
			escapeXML(cfg.Color), num(cfg.LineWidth), escapeXML(cfg.Background))

		if opts.Interactive {
			panelEvent := e
			if policy != nil {
				panelEvent.Content = policy.Sanitize(e.Content)
			}
			fmt.Fprintf(&svg, ` data-marker="%d" data-panel="%s" data-tooltip="%s"`,
				i, escapeXML(l.PanelHTML(panelEvent)), escapeXML(l.TooltipHTML(e)))
		}

		fmt.Fprintf(&svg, `><title>%s</title></circle>`, escapeXML(e.Subject+" - "+l.TooltipDate(e)))
		svg.WriteString("\n")
	}

	for _, label := range []timeline.Label{l.Start, l.End} {
		fmt.Fprintf(&svg, `<text class="timeline-label timeline-label-%s" x="%s" y="%s">%s</text>`,
			label.Kind, num(label.X), num(label.Y), escapeXML(label.Text))
		svg.WriteString("\n")
	}

	svg.WriteString("</svg>\n")
	return svg.String()
}

// escapeXML escapes special XML characters in a string to ensure valid SVG output.
func escapeXML(s string) string {
	s = strings.ReplaceAll(s, "&", "&amp;")
	s = strings.ReplaceAll(s, "<", "&lt;")
	s = strings.ReplaceAll(s, ">", "&gt;")
	s = strings.ReplaceAll(s, "\"", "&quot;")
	s = strings.ReplaceAll(s, "'", "&apos;")
	return s
}

// num prints a coordinate without trailing zeros.
func num(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
