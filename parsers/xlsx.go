package parsers

import (
	"fmt"
	"io"
	"strconv"

	"github.com/xuri/excelize/v2"
)

// ParseXLSX reads a worksheet from an Excel workbook with the same contract as ParseCSV.
// An empty sheet name selects the first worksheet. Blank rows are skipped.
func ParseXLSX(reader io.Reader, sheet string) ([]string, <-chan Record, <-chan error, error) {
	f, err := excelize.OpenReader(reader)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("open workbook: %w", err)
	}

	if sheet == "" {
		sheet = f.GetSheetName(0)
	}

	rows, err := f.Rows(sheet)
	if err != nil {
		f.Close()
		return nil, nil, nil, fmt.Errorf("sheet %q: %w", sheet, err)
	}

	if !rows.Next() {
		rows.Close()
		f.Close()
		return nil, nil, nil, ErrEmptyInput
	}
	header, err := rows.Columns(excelize.Options{RawCellValue: true})
	if err != nil {
		rows.Close()
		f.Close()
		return nil, nil, nil, fmt.Errorf("sheet %q header: %w", sheet, err)
	}

	for i, cell := range header {
		header[i] = headerLabel(cell)
	}

	records := make(chan Record, 100)
	errors := make(chan error, 1)

	go func() {
		defer close(records)
		defer close(errors)
		defer f.Close()
		defer rows.Close()

		rowNum := 0
		for rows.Next() {
			rowNum++
			row, err := rows.Columns(excelize.Options{RawCellValue: true})
			if err != nil {
				errors <- fmt.Errorf("row %d: %w", rowNum, err)
				continue
			}
			if isBlank(row) {
				continue
			}

			values, err := alignRow(row, len(header))
			if err != nil {
				errors <- fmt.Errorf("row %d: %w", rowNum, err)
				continue
			}

			records <- Record{Row: rowNum, Values: values}
		}

		if err := rows.Error(); err != nil {
			errors <- err
		}
	}()

	return header, records, errors, nil
}

func isBlank(row []string) bool {
	for _, v := range row {
		if v != "" {
			return false
		}
	}
	return true
}

// Serial day numbers for 1901-01-01 and 9999-12-31
const (
	minDateSerial = 367
	maxDateSerial = 2958465
)

// headerLabel renders a header cell read as a raw value. Dates stored as
// Excel serial numbers become ISO dates so they parse as periods.
func headerLabel(cell string) string {
	serial, err := strconv.ParseFloat(cell, 64)
	if err != nil || serial < minDateSerial || serial > maxDateSerial {
		return cell
	}
	ts, err := excelize.ExcelDateToTime(serial, false)
	if err != nil {
		return cell
	}
	return ts.Format("2006-01-02")
}
