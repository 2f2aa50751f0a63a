package report

import (
	"fmt"
	"strings"

	"github.com/bomgrid/bomcheck/internal/issues"
)

// FormatText renders the report as a human-readable summary, one block per issue.
func FormatText(r Report) string {
	if !r.IssuesFound {
		return "No issues found in the BOM order data.\n"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Found %d issue(s) in the BOM order:\n\n", r.TotalIssues)

	for i, iss := range r.Analysis {
		fmt.Fprintf(&b, "[%s] Issue #%d: %s\n", severityTag(iss.Severity), i+1, iss.Type)
		fmt.Fprintf(&b, "   Location: %s\n", iss.Location)
		fmt.Fprintf(&b, "   Description: %s\n", iss.Description)
		if iss.Recommendation != "" {
			fmt.Fprintf(&b, "   Recommendation: %s\n", iss.Recommendation)
		}
		b.WriteString("\n")
	}

	if r.LLMReport != "" {
		b.WriteString("Model analysis:\n")
		b.WriteString(r.LLMReport)
		b.WriteString("\n")
	}

	return b.String()
}

func severityTag(s issues.Severity) string {
	return strings.ToUpper(string(s))
}
