// Package source loads timeline events from CSV, YAML, JSON and XLSX files.
package source

import (
	"bytes"
	"fmt"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	"timeline2html/timeline"
)

// Default column names for tabular sources.
const (
	DefaultDateColumn    = "date"
	DefaultSubjectColumn = "subject"
	DefaultContentColumn = "content"
)

// Options controls how a source is read.
type Options struct {
	DateColumn    string         // Column holding the event date (tabular sources, case-insensitive)
	SubjectColumn string         // Column holding the subject
	ContentColumn string         // Column holding the optional content
	Sheet         string         // XLSX sheet name, first sheet when empty
	Location      *time.Location // Zone for dates without an offset, UTC when nil
	Markdown      bool           // Convert content from markdown to HTML
	Sort          bool           // Stable sort by date after loading
}

func (o Options) withDefaults() Options {
	if o.DateColumn == "" {
		o.DateColumn = DefaultDateColumn
	}
	if o.SubjectColumn == "" {
		o.SubjectColumn = DefaultSubjectColumn
	}
	if o.ContentColumn == "" {
		o.ContentColumn = DefaultContentColumn
	}
	if o.Location == nil {
		o.Location = time.UTC
	}
	return o
}

// rawEvent is an event before its date has been parsed.
type rawEvent struct {
	Date    string `yaml:"date" json:"date"`
	Subject string `yaml:"subject" json:"subject"`
	Content string `yaml:"content" json:"content"`
}

// Load reads events from path, picking the reader from the file extension.
func Load(path string, opts Options) ([]timeline.Event, error) {
	opts = opts.withDefaults()

	var (
		raw []rawEvent
		err error
	)
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".csv":
		raw, err = readCSVFile(path, opts)
	case ".yaml", ".yml":
		raw, err = readYAMLFile(path)
	case ".json":
		raw, err = readJSONFile(path)
	case ".xlsx":
		raw, err = readXLSXFile(path, opts)
	default:
		return nil, fmt.Errorf("unsupported event file extension %q", ext)
	}
	if err != nil {
		return nil, err
	}
	return build(raw, opts)
}

// build parses dates and applies the content and ordering options.
func build(raw []rawEvent, opts Options) ([]timeline.Event, error) {
	events := make([]timeline.Event, 0, len(raw))
	for i, r := range raw {
		date, err := ParseDate(r.Date, opts.Location)
		if err != nil {
			return nil, &timeline.InvalidEventDateError{
				Index:   i,
				Subject: r.Subject,
				Value:   r.Date,
				Err:     err,
			}
		}

		content := r.Content
		if opts.Markdown && content != "" {
			content, err = markdownToHTML(content)
			if err != nil {
				return nil, fmt.Errorf("error converting content of event %d: %w", i, err)
			}
		}

		events = append(events, timeline.Event{
			Date:    date,
			Subject: r.Subject,
			Content: content,
		})
	}

	if opts.Sort {
		sort.SliceStable(events, func(i, j int) bool {
			return events[i].Date.Before(events[j].Date)
		})
	}
	return events, nil
}

// dateFormats are tried in order for values without a recognised zone.
var dateFormats = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
	"01/02/2006 15:04:05",
	"01/02/2006 15:04",
	"01/02/2006",
	"1/2/06",
	"01-02-06",
	"Jan 2, 2006 15:04:05",
	"Jan 2, 2006",
	"January 2, 2006",
	"2 Jan 2006",
	time.RFC1123Z,
	time.RFC1123,
}

// ParseDate parses a date string in one of the supported layouts, or a bare
// number as Unix milliseconds. Layouts without an offset use loc.
func ParseDate(value string, loc *time.Location) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, fmt.Errorf("empty date")
	}
	if loc == nil {
		loc = time.UTC
	}

	if ms, err := strconv.ParseInt(value, 10, 64); err == nil && len(value) > 8 {
		return time.UnixMilli(ms).In(loc), nil
	}

	var err error
	for _, layout := range dateFormats {
		var t time.Time
		t, err = time.ParseInLocation(layout, value, loc)
		if err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unable to parse timestamp '%s': %w", value, err)
}

var markdown = goldmark.New(
	goldmark.WithExtensions(extension.GFM),
)

func markdownToHTML(src string) (string, error) {
	var b bytes.Buffer
	if err := markdown.Convert([]byte(strings.TrimSpace(src)), &b); err != nil {
		return "", err
	}
	return b.String(), nil
}
