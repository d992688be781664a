package source

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"
)

// readCSVFile reads and parses the CSV file containing timeline events.
func readCSVFile(path string, opts Options) ([]rawEvent, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("error opening CSV file: %w", err)
	}
	defer func() { _ = file.Close() }()

	return readCSV(file, opts)
}

func readCSV(r io.Reader, opts Options) ([]rawEvent, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("error reading CSV header: %w", err)
	}

	var rows [][]string
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("error reading CSV: %w", err)
		}
		rows = append(rows, record)
	}
	return fromTable(header, rows, opts)
}

// readXLSXFile reads events from the configured sheet of a workbook.
// The first row is the header, like a CSV file.
func readXLSXFile(path string, opts Options) ([]rawEvent, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("error opening XLSX file: %w", err)
	}
	defer func() { _ = f.Close() }()

	sheet := opts.Sheet
	if sheet == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return nil, fmt.Errorf("workbook %s has no sheets", path)
		}
		sheet = sheets[0]
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("error reading sheet %q: %w", sheet, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("sheet %q is empty", sheet)
	}

	raw, err := fromTable(rows[0], rows[1:], opts)
	if err != nil {
		return nil, err
	}
	for i := range raw {
		raw[i].Date = excelSerialDate(raw[i].Date)
	}
	return raw, nil
}

// excelSerialDate turns an unformatted spreadsheet date serial into RFC 3339.
// Anything else is returned untouched.
func excelSerialDate(value string) string {
	serial, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil || serial <= 0 || serial > 2958465 {
		return value
	}
	t, err := excelize.ExcelDateToTime(serial, false)
	if err != nil {
		return value
	}
	return t.Format(time.RFC3339)
}

// fromTable maps a header row and data rows onto raw events using
// case-insensitive column names.
func fromTable(header []string, rows [][]string, opts Options) ([]rawEvent, error) {
	columnMap := make(map[string]int)
	for i, col := range header {
		columnMap[strings.ToLower(strings.TrimSpace(col))] = i
	}

	dateCol, ok := columnMap[strings.ToLower(opts.DateColumn)]
	if !ok {
		return nil, fmt.Errorf("date column '%s' not found. Available columns: %v", opts.DateColumn, header)
	}
	subjectCol, hasSubject := columnMap[strings.ToLower(opts.SubjectColumn)]
	contentCol, hasContent := columnMap[strings.ToLower(opts.ContentColumn)]

	cell := func(record []string, idx int, present bool) string {
		if !present || idx >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[idx])
	}

	raw := make([]rawEvent, 0, len(rows))
	for _, record := range rows {
		if isBlank(record) {
			continue
		}
		raw = append(raw, rawEvent{
			Date:    cell(record, dateCol, true),
			Subject: cell(record, subjectCol, hasSubject),
			Content: cell(record, contentCol, hasContent),
		})
	}
	return raw, nil
}

func isBlank(record []string) bool {
	for _, v := range record {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}
