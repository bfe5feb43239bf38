package parsers

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"
)

// Format identifies a supported tabular source format
type Format string

const (
	FormatCSV  Format = "csv"
	FormatXLSX Format = "xlsx"
)

// ErrEmptyInput is returned when a source has no header row
var ErrEmptyInput = errors.New("input has no header row")

// Formats lists the accepted format names
func Formats() []string {
	return []string{string(FormatCSV), string(FormatXLSX)}
}

// FormatFromPath infers the format from a file extension
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return FormatCSV, nil
	case ".xlsx":
		return FormatXLSX, nil
	default:
		return "", fmt.Errorf("cannot infer format from %q: file must be .csv or .xlsx", path)
	}
}

// Parse dispatches to the parser for format. Sheet is only used for XLSX.
func Parse(format Format, reader io.Reader, sheet string) ([]string, <-chan Record, <-chan error, error) {
	switch format {
	case FormatCSV:
		return ParseCSV(reader)
	case FormatXLSX:
		return ParseXLSX(reader, sheet)
	default:
		return nil, nil, nil, fmt.Errorf("unknown format %q", format)
	}
}

// Drain consumes both channels and returns every record in order along with
// the first error seen. Remaining rows are still drained after an error.
func Drain(records <-chan Record, errs <-chan error) ([]Record, error) {
	var all []Record
	var firstErr error

	for records != nil || errs != nil {
		select {
		case rec, ok := <-records:
			if !ok {
				records = nil
				continue
			}
			all = append(all, rec)
		case err, ok := <-errs:
			if !ok {
				errs = nil
				continue
			}
			if firstErr == nil {
				firstErr = err
			}
		}
	}

	return all, firstErr
}
