// Package report renders validation results to the supported output formats:
// JSON, CSV, SARIF, and human-readable text.
package report

import (
	"encoding/json"
	"fmt"

	"github.com/bomgrid/bomcheck/internal/issues"
	"github.com/bomgrid/bomcheck/pkg/shared/files"
)

// Report is the analysis result for one order. The JSON shape is the analysis
// wire format: {issues_found, total_issues, analysis, llm_report}.
type Report struct {
	OrderID     string         `json:"-"`
	IssuesFound bool           `json:"issues_found"`
	TotalIssues int            `json:"total_issues"`
	Analysis    []issues.Issue `json:"analysis"`
	LLMReport   string         `json:"llm_report,omitempty"`
}

// New builds a report from a deterministic issue list.
func New(orderID string, found []issues.Issue) Report {
	if found == nil {
		found = []issues.Issue{}
	}
	return Report{
		OrderID:     orderID,
		IssuesFound: len(found) > 0,
		TotalIssues: len(found),
		Analysis:    found,
	}
}

// Marshal renders the report as indented JSON.
func (r Report) Marshal() ([]byte, error) {
	data, err := json.MarshalIndent(r, "", "    ")
	if err != nil {
		return nil, fmt.Errorf("error marshaling the report: %w", err)
	}
	return data, nil
}

// WriteJSON writes the report as indented JSON to the given path.
func (r Report) WriteJSON(path string) error {
	data, err := r.Marshal()
	if err != nil {
		return err
	}
	return files.WriteJsonFile(path, data)
}
