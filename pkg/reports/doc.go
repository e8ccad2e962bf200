// Package reports renders usage tracker snapshots as tables, CSV, and JSON.
//
// A report is a point-in-time copy of a tracker's totals, per-provider
// breakdown, and cache statistics. Generate takes the snapshot; the Write
// functions render it without touching the tracker again, so one report can
// be rendered in several formats consistently.
//
//	report := reports.Generate(tracker)
//
//	reports.WriteTable(os.Stdout, report)
//
//	f, err := os.Create("usage.csv")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer f.Close()
//	if err := reports.WriteCSV(f, report); err != nil {
//	    log.Fatal(err)
//	}
//
// WriteTable produces a box-drawing table for terminals, WriteCSV a
// spreadsheet-friendly per-provider breakdown, and WriteJSON the full
// report including cache statistics as indented JSON.
//
// FormatCost and FormatNumber are the presentation helpers the table uses;
// they are exported because CLI output wants the same formatting.
package reports
