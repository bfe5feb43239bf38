package parsers

import (
	"encoding/csv"
	stderrors "errors"
	"fmt"
	"io"
)

// Record represents a single data row, values aligned with the header
type Record struct {
	Row    int // 1-based data row number, header excluded
	Values []string
}

// ParseCSV reads the header synchronously and streams data rows via channel.
// Returns the header and two channels: one for records, one for errors.
// Caller must consume both channels to avoid goroutine leak.
func ParseCSV(reader io.Reader) ([]string, <-chan Record, <-chan error, error) {
	csvReader := csv.NewReader(reader)
	csvReader.ReuseRecord = true   // Reuse slice for better performance
	csvReader.FieldsPerRecord = -1 // Row length is checked against the header below

	header, err := csvReader.Read()
	if err != nil {
		if err == io.EOF {
			return nil, nil, nil, ErrEmptyInput
		}
		return nil, nil, nil, err
	}

	// Make a copy of header since we're reusing the record slice
	headerCopy := make([]string, len(header))
	copy(headerCopy, header)

	records := make(chan Record, 100) // Buffered for better throughput
	errors := make(chan error, 1)

	go func() {
		defer close(records)
		defer close(errors)

		rowNum := 0
		for {
			row, err := csvReader.Read()
			if err == io.EOF {
				break
			}
			rowNum++
			if err != nil {
				errors <- fmt.Errorf("row %d: %w", rowNum, err)
				var parseErr *csv.ParseError
				if stderrors.As(err, &parseErr) {
					continue // Skip malformed rows, continue processing
				}
				return // The underlying reader failed
			}

			values, err := alignRow(row, len(headerCopy))
			if err != nil {
				errors <- fmt.Errorf("row %d: %w", rowNum, err)
				continue
			}

			records <- Record{Row: rowNum, Values: values}
		}
	}()

	return headerCopy, records, errors, nil
}

// alignRow copies row into a slice of exactly width values.
// Short rows are padded with empty cells, long rows are rejected.
func alignRow(row []string, width int) ([]string, error) {
	if len(row) > width {
		return nil, fmt.Errorf("%d fields, header has %d", len(row), width)
	}
	values := make([]string, width)
	copy(values, row)
	return values, nil
}
