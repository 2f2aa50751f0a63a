package report

import (
	"encoding/csv"
	"fmt"
	"os"
	"time"
)

// csvHeader is the column layout of CSV issue reports.
var csvHeader = []string{
	"timestamp", "order_id", "issue_id", "issue_type",
	"location", "severity", "description", "recommendation",
}

// AppendCSV appends the report's issues to a CSV file, one row per issue,
// writing the header only when the file is created. A clean report produces a
// single "no issues" row so tracking sheets record the run.
func AppendCSV(path string, r Report, now time.Time) error {
	_, statErr := os.Stat(path)
	fileExists := statErr == nil

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return fmt.Errorf("failed to open CSV report %q: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	if !fileExists {
		if err := w.Write(csvHeader); err != nil {
			return fmt.Errorf("failed to write CSV header: %w", err)
		}
	}

	timestamp := now.Format("2006-01-02 15:04:05")

	if !r.IssuesFound {
		row := []string{timestamp, r.OrderID, "N/A", "None", "N/A", "N/A", "No issues found", "N/A"}
		if err := w.Write(row); err != nil {
			return fmt.Errorf("failed to write CSV row: %w", err)
		}
		return w.Error()
	}

	for i, iss := range r.Analysis {
		row := []string{
			timestamp,
			r.OrderID,
			fmt.Sprintf("%s-%d", r.OrderID, i+1),
			string(iss.Type),
			iss.Location,
			string(iss.Severity),
			iss.Description,
			iss.Recommendation,
		}
		if err := w.Write(row); err != nil {
			return fmt.Errorf("failed to write CSV row: %w", err)
		}
	}

	return w.Error()
}
