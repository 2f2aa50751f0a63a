// Package validator implements the deterministic rule checks over a BOM
// order. Validate is a pure function of the order and the catalog: it has no
// side effects and yields the same issue list for the same input, so batch
// runs can validate orders concurrently against a shared catalog.
package validator

import (
	"fmt"

	"github.com/bomgrid/bomcheck/internal/bom"
	"github.com/bomgrid/bomcheck/internal/catalog"
	"github.com/bomgrid/bomcheck/internal/issues"
)

// requiredFields are the line-item fields whose absence is always flagged.
var requiredFields = []string{"line_id", "item_number", "quantity", "unit_price"}

// Validate applies the rule checks to every line item of the order and
// returns the collected issues. An order with no items yields no issues.
func Validate(order *bom.Order, cat *catalog.Catalog) []issues.Issue {
	found := []issues.Issue{}
	seen := make(map[string]int, len(order.Items))

	for i, item := range order.Items {
		loc := itemLocation(i, &item)

		found = append(found, checkRequiredFields(loc, &item)...)

		if item.LineID != "" {
			if first, dup := seen[item.LineID]; dup {
				found = append(found, issues.Issue{
					Type:     issues.TypeDuplicateID,
					Location: item.LineID,
					Description: fmt.Sprintf("line_id %q is used by both item %d and item %d",
						item.LineID, first+1, i+1),
					Severity:       issues.SeverityHigh,
					Recommendation: fmt.Sprintf("Assign a unique line_id to item %d.", i+1),
				})
			} else {
				seen[item.LineID] = i
			}
		}

		found = append(found, checkValues(loc, &item)...)
		found = append(found, checkItemNumberFormat(loc, &item, cat)...)
	}

	return found
}

// checkRequiredFields flags every absent required field of the item.
func checkRequiredFields(loc string, item *bom.LineItem) []issues.Issue {
	var missing []string
	if item.LineID == "" {
		missing = append(missing, "line_id")
	}
	if item.ItemNumber == "" {
		missing = append(missing, "item_number")
	}
	if item.Quantity == nil {
		missing = append(missing, "quantity")
	}
	if item.UnitPrice == nil {
		missing = append(missing, "unit_price")
	}

	found := make([]issues.Issue, 0, len(missing))
	for _, field := range missing {
		found = append(found, issues.Issue{
			Type:           issues.TypeMissingField,
			Location:       loc,
			Description:    fmt.Sprintf("required field %q is missing", field),
			Severity:       issues.SeverityHigh,
			Recommendation: fmt.Sprintf("Populate %s before submitting the order.", field),
		})
	}
	return found
}

// checkValues flags present but out-of-range quantity and unit price values.
func checkValues(loc string, item *bom.LineItem) []issues.Issue {
	var found []issues.Issue
	if item.Quantity != nil && *item.Quantity <= 0 {
		found = append(found, issues.Issue{
			Type:           issues.TypeInvalidFormat,
			Location:       loc,
			Description:    fmt.Sprintf("quantity must be a positive integer, got %d", *item.Quantity),
			Severity:       issues.SeverityMedium,
			Recommendation: "Set quantity to the number of units ordered.",
		})
	}
	if item.UnitPrice != nil && *item.UnitPrice < 0 {
		found = append(found, issues.Issue{
			Type:           issues.TypeInvalidFormat,
			Location:       loc,
			Description:    fmt.Sprintf("unit_price cannot be negative, got %g", *item.UnitPrice),
			Severity:       issues.SeverityMedium,
			Recommendation: "Set unit_price to the per-unit cost.",
		})
	}
	return found
}

// checkItemNumberFormat validates the item number against the catalog pattern
// registered for the item's category. Items listed in the reference data or
// in the category's allowed-value set pass without a pattern match. A missing
// category makes the format check impossible and is flagged as a missing
// field instead.
func checkItemNumberFormat(loc string, item *bom.LineItem, cat *catalog.Catalog) []issues.Issue {
	if item.ItemNumber == "" {
		return nil
	}

	if cat.KnownItem(item.ItemNumber) {
		return nil
	}

	if item.Category == "" {
		return []issues.Issue{{
			Type:           issues.TypeMissingField,
			Location:       loc,
			Description:    fmt.Sprintf("category is missing, item number %q cannot be format-checked", item.ItemNumber),
			Severity:       issues.SeverityMedium,
			Recommendation: "Assign the item to a catalog category.",
		}}
	}

	if member, hasSet := cat.Allowed(item.Category, item.ItemNumber); hasSet && member {
		return nil
	}

	pattern, ok := cat.PatternFor(item.Category)
	if !ok {
		return []issues.Issue{{
			Type:           issues.TypeOther,
			Location:       loc,
			Description:    fmt.Sprintf("category %q has no registered item-number pattern", item.Category),
			Severity:       issues.SeverityLow,
			Recommendation: "Register the category in the reference catalog or correct the category name.",
		}}
	}

	if !pattern.MatchString(item.ItemNumber) {
		recommendation := fmt.Sprintf("Use an item number matching the %s pattern %s.", item.Category, pattern.String())
		if suggestion := cat.Suggest(item.ItemNumber); suggestion != "" {
			recommendation = fmt.Sprintf("Did you mean %q?", suggestion)
		}
		return []issues.Issue{{
			Type:     issues.TypeInvalidFormat,
			Location: loc,
			Description: fmt.Sprintf("item number %q does not match the expected pattern %s for category %q",
				item.ItemNumber, pattern.String(), item.Category),
			Severity:       issues.SeverityMedium,
			Recommendation: recommendation,
		}}
	}

	return nil
}

// itemLocation names a line item in issue records: the line_id when present,
// the 1-based item position otherwise.
func itemLocation(i int, item *bom.LineItem) string {
	if item.LineID != "" {
		return item.LineID
	}
	return fmt.Sprintf("item %d", i+1)
}
