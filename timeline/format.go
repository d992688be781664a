package timeline

import (
	"html"
	"strings"
	"time"

	"github.com/ncruces/go-strftime"
)

// FormatDate renders t in loc using a strftime pattern such as "%b %d %Y".
func FormatDate(pattern string, t time.Time, loc *time.Location) string {
	if loc != nil {
		t = t.In(loc)
	}
	return strftime.Format(pattern, t)
}

// PanelHTML is the side panel content for an event:
// <h2>{subject}</h2>{formatted date/time}{content}.
// The subject is escaped; content is an HTML fragment and passes through.
func (l *Layout) PanelHTML(e Event) string {
	var b strings.Builder
	b.WriteString("<h2>")
	b.WriteString(html.EscapeString(e.Subject))
	b.WriteString("</h2>")
	b.WriteString(l.PanelDate(e))
	b.WriteString(e.Content)
	return b.String()
}

// PanelDate is the long date/time shown in the side panel.
func (l *Layout) PanelDate(e Event) string {
	return FormatDate(l.Config.PanelDateFormat, e.Date, l.loc)
}

// TooltipHTML is the short date/time shown in the floating tooltip.
func (l *Layout) TooltipHTML(e Event) string {
	return "<div><small>" + html.EscapeString(l.TooltipDate(e)) + "</small></div>"
}

// TooltipDate is the plain tooltip text.
func (l *Layout) TooltipDate(e Event) string {
	return FormatDate(l.Config.LabelDateFormat, e.Date, l.loc)
}

// AxisDate formats t with the axis label pattern.
func (l *Layout) AxisDate(t time.Time) string {
	return FormatDate(l.Config.AxisDateFormat, t, l.loc)
}
