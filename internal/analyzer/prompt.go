package analyzer

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/bomgrid/bomcheck/internal/bom"
	"github.com/bomgrid/bomcheck/internal/issues"
)

const systemPrompt = "You are a BOM validator assistant that identifies issues in order data."

// BuildMessages renders the escalation prompt: the order document plus the
// issues the deterministic checks already found, with a request for analysis
// of anything the rule checks cannot judge.
func BuildMessages(order *bom.Order, found []issues.Issue) ([]Message, error) {
	orderJSON, err := json.MarshalIndent(order, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("error marshaling order for prompt: %w", err)
	}

	var b strings.Builder
	b.WriteString("You are a BOM (Bill of Materials) order validator.\n\n")
	b.WriteString("Analyze the following order data for issues such as:\n")
	b.WriteString("1. Missing required fields (all items should have line_id, item_number, description, quantity, unit_price, category)\n")
	b.WriteString("2. Incorrect item number formats\n")
	b.WriteString("3. Duplicate line IDs\n")
	b.WriteString("4. Any other anomalies or inconsistencies\n\n")
	b.WriteString("Order data:\n")
	b.Write(orderJSON)
	b.WriteString("\n\n")

	if len(found) > 0 {
		issuesJSON, err := json.MarshalIndent(found, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("error marshaling issues for prompt: %w", err)
		}
		b.WriteString("Deterministic rule checks already found these issues; do not repeat them, judge whether they are consistent and look for anything they missed:\n")
		b.Write(issuesJSON)
		b.WriteString("\n\n")
	}

	b.WriteString("Provide a concise analysis of the order quality and any residual risks.\n")

	return []Message{
		{Role: "system", Content: systemPrompt},
		{Role: "user", Content: b.String()},
	}, nil
}
