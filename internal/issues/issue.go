// Package issues defines the validation finding model shared by the rule
// validator and the report formatters.
package issues

// Type classifies a validation finding.
type Type string

const (
	TypeMissingField  Type = "MissingField"
	TypeInvalidFormat Type = "InvalidFormat"
	TypeDuplicateID   Type = "DuplicateID"
	TypeOther         Type = "Other"
)

// Severity ranks how serious a finding is.
type Severity string

const (
	SeverityLow    Severity = "low"
	SeverityMedium Severity = "medium"
	SeverityHigh   Severity = "high"
)

// Issue is a single validation finding. The JSON field names follow the
// analysis wire format consumed by downstream reporting.
type Issue struct {
	Type           Type     `json:"issue_type"`
	Location       string   `json:"location"`
	Description    string   `json:"description"`
	Severity       Severity `json:"severity"`
	Recommendation string   `json:"recommendation,omitempty"`
}
