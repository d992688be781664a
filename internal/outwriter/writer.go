package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"

	"timeline2html/timeline"
)

var layoutHeader = []string{"rank", "subject", "date", "id", "x", "y"}

// layoutRows flattens the markers of l, one row per real event.
func layoutRows(l *timeline.Layout) [][]string {
	rows := make([][]string, 0, len(l.Markers))
	for i, m := range l.Markers {
		e := l.Events[m.Event]
		rows = append(rows, []string{
			strconv.Itoa(i + 1),
			e.Subject,
			l.TooltipDate(e),
			m.ID,
			formatCoord(m.X),
			formatCoord(m.Y),
		})
	}
	return rows
}

// writeLayoutTable prints the markers in a table followed by an axis summary.
func writeLayoutTable(w io.Writer, l *timeline.Layout) error {
	table := tablewriter.NewWriter(w)
	defer func() { _ = table.Close() }()

	table.Header([]string{"Rank", "Subject", "Date", "ID", "X", "Y"})
	table.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Alignment.Global = tw.AlignLeft
	})

	if err := table.Bulk(layoutRows(l)); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	s := l.Scale
	if _, err := fmt.Fprintf(w, "Axis: %s (x=%s) to %s (x=%s), today %s\n",
		l.Start.Text, formatCoord(l.Start.X), l.End.Text, formatCoord(l.End.X), l.TooltipDate(l.Events[len(l.Events)-1])); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Width %s, height %s, margin %s, lane y=%s, %d segments, degenerate=%t\n",
		formatCoord(l.Config.Width), formatCoord(l.Config.Height), formatCoord(s.Margin), formatCoord(l.Lane()), len(l.Segments), s.Degenerate); err != nil {
		return err
	}
	return nil
}

// writeLayoutCSV writes one row per marker.
func writeLayoutCSV(w io.Writer, l *timeline.Layout) error {
	csvWriter := csv.NewWriter(w)
	if err := csvWriter.Write(layoutHeader); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}
	if err := csvWriter.WriteAll(layoutRows(l)); err != nil {
		return fmt.Errorf("failed to write CSV rows: %w", err)
	}
	return nil
}

func formatCoord(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
