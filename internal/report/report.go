// Package report serializes aggregated surgery totals for download.
package report

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
)

type Format string

const (
	CSV  Format = "csv"
	JSON Format = "json"
	XLSX Format = "xlsx"
)

var ErrUnsupportedFormat = errors.New("format must be 'csv', 'json' or 'xlsx'")

// Row is one labelled value of a report, e.g. a month and its total.
type Row struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
}

func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case CSV, JSON, XLSX:
		return f, nil
	}
	return "", ErrUnsupportedFormat
}

func (f Format) ContentType() string {
	switch f {
	case CSV:
		return "text/csv"
	case XLSX:
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	default:
		return "application/json"
	}
}

// Filename builds the attachment name for a report, e.g. "surgeries_by_month.csv".
func (f Format) Filename(base string) string {
	return base + "." + string(f)
}

// Write renders rows in the given format. header names the two columns.
func Write(w io.Writer, f Format, header [2]string, rows []Row) error {
	switch f {
	case CSV:
		return writeCSV(w, header, rows)
	case JSON:
		return writeJSON(w, rows)
	case XLSX:
		return writeXLSX(w, header, rows)
	}
	return ErrUnsupportedFormat
}

func writeCSV(w io.Writer, header [2]string, rows []Row) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(header[:]); err != nil {
		return fmt.Errorf("failed to write csv header: %w", err)
	}
	for _, r := range rows {
		if err := cw.Write([]string{r.Label, formatValue(r.Value)}); err != nil {
			return fmt.Errorf("failed to write csv row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

func writeJSON(w io.Writer, rows []Row) error {
	if rows == nil {
		rows = []Row{}
	}
	if err := json.NewEncoder(w).Encode(rows); err != nil {
		return fmt.Errorf("failed to encode json report: %w", err)
	}
	return nil
}

const sheetName = "Report"

func writeXLSX(w io.Writer, header [2]string, rows []Row) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return fmt.Errorf("failed to name sheet: %w", err)
	}

	if err := f.SetSheetRow(sheetName, "A1", &[]any{header[0], header[1]}); err != nil {
		return fmt.Errorf("failed to write xlsx header: %w", err)
	}
	for i, r := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheetName, cell, &[]any{r.Label, r.Value}); err != nil {
			return fmt.Errorf("failed to write xlsx row %d: %w", i+2, err)
		}
	}

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("failed to write xlsx: %w", err)
	}
	return nil
}

func formatValue(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
