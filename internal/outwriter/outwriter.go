// Package outwriter has output and writer logic.
package outwriter

import (
	"fmt"
	"io"
	"os"
	"strings"

	"timeline2html/internal"
	"timeline2html/render"
	"timeline2html/timeline"
)

// Output formats.
const (
	TableOut = "table"
	JSONOut  = "json"
	CSVOut   = "csv"
	SVGOut   = "svg"
	HTMLOut  = "html"
)

// LayoutFormats are the formats accepted by WriteLayout.
var LayoutFormats = []string{TableOut, JSONOut, CSVOut}

// DrawingFormats are the formats accepted by WriteDrawing.
var DrawingFormats = []string{SVGOut, HTMLOut}

// DrawingOptions configures SVG and HTML output.
type DrawingOptions struct {
	Title    string
	TargetID string
	Sanitize bool
}

// WriteLayout prints the computed layout in the requested format to
// outputFile, or stdout when outputFile is empty.
func WriteLayout(l *timeline.Layout, format, outputFile string) error {
	// Dispatcher: Handle different output formats
	switch strings.ToLower(format) {
	case JSONOut:
		return writeWithFile(outputFile, func(w io.Writer) error {
			return render.WriteJSON(w, l)
		}, "Wrote JSON layout")
	case CSVOut:
		return writeWithFile(outputFile, func(w io.Writer) error {
			return writeLayoutCSV(w, l)
		}, "Wrote CSV layout")
	case TableOut, "":
		// Default to human-readable table
		return writeWithFile(outputFile, func(w io.Writer) error {
			return writeLayoutTable(w, l)
		}, "Wrote layout table")
	default:
		return fmt.Errorf("unknown layout format %q (want one of %s)", format, strings.Join(LayoutFormats, ", "))
	}
}

// WriteDrawing renders the layout as SVG or a standalone HTML page.
func WriteDrawing(l *timeline.Layout, format, outputFile string, opts DrawingOptions) error {
	switch strings.ToLower(format) {
	case SVGOut:
		return writeWithFile(outputFile, func(w io.Writer) error {
			_, err := io.WriteString(w, render.SVG(l, render.SVGOptions{Sanitize: opts.Sanitize}))
			return err
		}, "Wrote SVG")
	case HTMLOut, "":
		return writeWithFile(outputFile, func(w io.Writer) error {
			return render.WritePage(w, l, render.PageOptions{
				Title:    opts.Title,
				TargetID: opts.TargetID,
				Sanitize: opts.Sanitize,
			})
		}, "Wrote HTML page")
	default:
		return fmt.Errorf("unknown drawing format %q (want one of %s)", format, strings.Join(DrawingFormats, ", "))
	}
}

// SelectOutputFile returns stdout for an empty path, or creates the file.
func SelectOutputFile(filePath string) (*os.File, error) {
	if filePath == "" {
		return os.Stdout, nil
	}
	return os.Create(filePath)
}

// writeWithFile handles the common pattern of opening a file, writing to it, and cleaning up.
func writeWithFile(outputFile string, writer func(io.Writer) error, successMsg string) error {
	file, err := SelectOutputFile(outputFile)
	if err != nil {
		return fmt.Errorf("error creating output file: %w", err)
	}
	// Only close if it's not stdout
	if file != os.Stdout {
		defer func() { _ = file.Close() }()
	}

	if err := writer(file); err != nil {
		return err
	}

	if file != os.Stdout {
		internal.Success("%s to %s", successMsg, outputFile)
	}
	return nil
}
