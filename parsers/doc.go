// Package parsers provides streaming readers for tabular dataset sources in
// CSV and XLSX formats.
//
// Both parsers read the header row up front and then stream data rows
// through Go channels, so a large metro-level export does not have to be
// materialised twice while it is being pivoted.
//
// Each parser returns the header plus two channels:
//   - A records channel streaming rows aligned to the header width
//   - An errors channel for per-row parsing errors
//
// Callers must consume both channels to avoid goroutine leaks; Drain does
// that and returns the first error seen.
//
// Example usage for CSV:
//
//	file, _ := os.Open("Metro_mlp_uc_sfr_sm_month.csv")
//	defer file.Close()
//	header, records, errs, err := parsers.ParseCSV(file)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	rows, err := parsers.Drain(records, errs)
//	if err != nil {
//	    log.Fatalf("CSV error: %v", err)
//	}
//	fmt.Println(header[0], len(rows))
//
// Example usage for XLSX (first worksheet):
//
//	file, _ := os.Open("rents.xlsx")
//	defer file.Close()
//	header, records, errs, err := parsers.ParseXLSX(file, "")
package parsers
