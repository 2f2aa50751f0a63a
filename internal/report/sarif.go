package report

import (
	"fmt"

	"github.com/owenrumney/go-sarif/v2/sarif"

	"github.com/bomgrid/bomcheck/internal/issues"
)

const informationURI = "https://github.com/bomgrid/bomcheck"

// ruleIDs maps issue types to stable SARIF rule identifiers.
var ruleIDs = map[issues.Type]string{
	issues.TypeMissingField:  "bomcheck/missing-field",
	issues.TypeInvalidFormat: "bomcheck/invalid-format",
	issues.TypeDuplicateID:   "bomcheck/duplicate-id",
	issues.TypeOther:         "bomcheck/other",
}

var ruleDescriptions = map[issues.Type]string{
	issues.TypeMissingField:  "A required line-item field is absent.",
	issues.TypeInvalidFormat: "A field value does not match the expected format.",
	issues.TypeDuplicateID:   "A line_id is used by more than one line item.",
	issues.TypeOther:         "An anomaly outside the dedicated rule checks.",
}

// ToSarif converts the report into a single-run SARIF document. Line items
// have no physical file location, so each result carries a logical location
// naming the line_id (or order-level position) it refers to.
func ToSarif(r Report, version string) (*sarif.Report, error) {
	doc, err := sarif.New(sarif.Version210)
	if err != nil {
		return nil, fmt.Errorf("failed to create SARIF report: %w", err)
	}

	run := sarif.NewRunWithInformationURI("bomcheck", informationURI)
	if version != "" {
		run.Tool.Driver.Version = &version
	}

	added := map[issues.Type]bool{}
	for _, iss := range r.Analysis {
		if !added[iss.Type] {
			run.AddRule(ruleIDs[iss.Type]).WithDescription(ruleDescriptions[iss.Type])
			added[iss.Type] = true
		}

		name := iss.Location
		kind := "member"
		location := &sarif.Location{
			LogicalLocations: []*sarif.LogicalLocation{
				{Name: &name, Kind: &kind},
			},
		}

		message := iss.Description
		if iss.Recommendation != "" {
			message = fmt.Sprintf("%s %s", iss.Description, iss.Recommendation)
		}

		run.CreateResultForRule(ruleIDs[iss.Type]).
			WithLevel(sarifLevel(iss.Severity)).
			WithMessage(sarif.NewTextMessage(message)).
			WithLocations([]*sarif.Location{location})
	}

	doc.AddRun(run)
	return doc, nil
}

// WriteSarif writes the SARIF rendering of the report to the given path.
func WriteSarif(r Report, version, path string) error {
	doc, err := ToSarif(r, version)
	if err != nil {
		return err
	}
	if err := doc.WriteFile(path); err != nil {
		return fmt.Errorf("failed to write SARIF report %q: %w", path, err)
	}
	return nil
}

// sarifLevel maps issue severities onto SARIF result levels.
func sarifLevel(s issues.Severity) string {
	switch s {
	case issues.SeverityHigh:
		return "error"
	case issues.SeverityMedium:
		return "warning"
	default:
		return "note"
	}
}
