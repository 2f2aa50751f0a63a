package validator

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/bomgrid/bomcheck/internal/bom"
	"github.com/bomgrid/bomcheck/internal/catalog"
	"github.com/bomgrid/bomcheck/internal/issues"
)

func testCatalog(t *testing.T, patterns map[string]string, allowed map[string][]string) *catalog.Catalog {
	t.Helper()
	cat, err := catalog.New(patterns, allowed)
	if err != nil {
		t.Fatalf("failed to build test catalog: %v", err)
	}
	return cat
}

func item(lineID, itemNumber, category string, quantity int, unitPrice float64) bom.LineItem {
	return bom.LineItem{
		LineID:     lineID,
		ItemNumber: itemNumber,
		Category:   category,
		Quantity:   bom.IntPtr(quantity),
		UnitPrice:  bom.FloatPtr(unitPrice),
	}
}

func countByType(found []issues.Issue, typ issues.Type) int {
	n := 0
	for _, issue := range found {
		if issue.Type == typ {
			n++
		}
	}
	return n
}

func findIssue(found []issues.Issue, typ issues.Type, substr string) (issues.Issue, bool) {
	for _, issue := range found {
		if issue.Type == typ && strings.Contains(issue.Description, substr) {
			return issue, true
		}
	}
	return issues.Issue{}, false
}

func TestValidateEmptyOrder(t *testing.T) {
	order := &bom.Order{OrderID: "ORD-1", Items: nil}
	found := Validate(order, catalog.Default())

	if found == nil {
		t.Fatal("expected an empty issue slice, got nil")
	}
	if len(found) != 0 {
		t.Fatalf("expected no issues for an order without items, got %d: %v", len(found), found)
	}
}

func TestValidateMissingFields(t *testing.T) {
	cat := catalog.Default()

	tests := []struct {
		name    string
		item    bom.LineItem
		missing []string
	}{
		{
			name:    "missing line_id",
			item:    bom.LineItem{ItemNumber: "PCB-X7700", Category: "Electronics", Quantity: bom.IntPtr(1), UnitPrice: bom.FloatPtr(1.0)},
			missing: []string{"line_id"},
		},
		{
			name:    "missing item_number",
			item:    bom.LineItem{LineID: "L001", Category: "Electronics", Quantity: bom.IntPtr(1), UnitPrice: bom.FloatPtr(1.0)},
			missing: []string{"item_number"},
		},
		{
			name:    "missing quantity",
			item:    bom.LineItem{LineID: "L001", ItemNumber: "PCB-X7700", Category: "Electronics", UnitPrice: bom.FloatPtr(1.0)},
			missing: []string{"quantity"},
		},
		{
			name:    "missing unit_price",
			item:    bom.LineItem{LineID: "L001", ItemNumber: "PCB-X7700", Category: "Electronics", Quantity: bom.IntPtr(1)},
			missing: []string{"unit_price"},
		},
		{
			name:    "empty item",
			item:    bom.LineItem{},
			missing: []string{"line_id", "item_number", "quantity", "unit_price"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			order := &bom.Order{OrderID: "ORD-1", Items: []bom.LineItem{tt.item}}
			found := Validate(order, cat)

			if got := countByType(found, issues.TypeMissingField); got != len(tt.missing) {
				t.Fatalf("expected %d missing-field issues, got %d: %v", len(tt.missing), got, found)
			}
			for _, field := range tt.missing {
				issue, ok := findIssue(found, issues.TypeMissingField, `"`+field+`"`)
				if !ok {
					t.Fatalf("expected a missing-field issue for %s, got %v", field, found)
				}
				if issue.Severity != issues.SeverityHigh {
					t.Errorf("missing %s: expected high severity, got %s", field, issue.Severity)
				}
			}
		})
	}
}

func TestValidateDuplicateLineID(t *testing.T) {
	cat := catalog.Default()
	order := &bom.Order{
		OrderID: "ORD-1",
		Items: []bom.LineItem{
			item("L001", "PCB-X7700", "Electronics", 1, 10),
			item("L002", "IC-8085", "Electronics", 2, 5),
			item("L001", "CONN-DB9-F", "Connectors", 3, 2),
		},
	}

	found := Validate(order, cat)

	if got := countByType(found, issues.TypeDuplicateID); got != 1 {
		t.Fatalf("expected exactly one duplicate-id issue, got %d: %v", got, found)
	}
	dup, _ := findIssue(found, issues.TypeDuplicateID, "L001")
	if dup.Severity != issues.SeverityHigh {
		t.Errorf("expected high severity, got %s", dup.Severity)
	}
	if dup.Location != "L001" {
		t.Errorf("expected location L001, got %q", dup.Location)
	}
	// The description names both colliding positions.
	if !strings.Contains(dup.Description, "item 1") || !strings.Contains(dup.Description, "item 3") {
		t.Errorf("expected the description to reference items 1 and 3, got %q", dup.Description)
	}
}

func TestValidateItemNumberFormat(t *testing.T) {
	cat := testCatalog(t, map[string]string{"Electronics": `PCB-\w+`}, nil)

	tests := []struct {
		name       string
		itemNumber string
		wantIssue  bool
	}{
		{name: "matching item number", itemNumber: "PCB-X7700", wantIssue: false},
		{name: "non-matching item number", itemNumber: "123", wantIssue: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			order := &bom.Order{
				OrderID: "ORD-1",
				Items:   []bom.LineItem{item("L001", tt.itemNumber, "Electronics", 1, 1)},
			}
			found := Validate(order, cat)

			got := countByType(found, issues.TypeInvalidFormat)
			if tt.wantIssue && got != 1 {
				t.Fatalf("expected one invalid-format issue, got %d: %v", got, found)
			}
			if !tt.wantIssue && got != 0 {
				t.Fatalf("expected no invalid-format issues, got %d: %v", got, found)
			}
			if tt.wantIssue {
				issue, _ := findIssue(found, issues.TypeInvalidFormat, tt.itemNumber)
				if issue.Severity != issues.SeverityMedium {
					t.Errorf("expected medium severity, got %s", issue.Severity)
				}
			}
		})
	}
}

func TestValidateMissingCategory(t *testing.T) {
	order := &bom.Order{
		OrderID: "ORD-1",
		Items:   []bom.LineItem{item("L001", "WIDGET-1", "", 1, 1)},
	}
	found := Validate(order, catalog.Default())

	issue, ok := findIssue(found, issues.TypeMissingField, "category is missing")
	if !ok {
		t.Fatalf("expected a missing-category issue, got %v", found)
	}
	if issue.Severity != issues.SeverityMedium {
		t.Errorf("expected medium severity, got %s", issue.Severity)
	}
}

func TestValidateUnknownCategory(t *testing.T) {
	order := &bom.Order{
		OrderID: "ORD-1",
		Items:   []bom.LineItem{item("L001", "WIDGET-1", "Widgets", 1, 1)},
	}
	found := Validate(order, catalog.Default())

	issue, ok := findIssue(found, issues.TypeOther, `category "Widgets"`)
	if !ok {
		t.Fatalf("expected an unknown-category issue, got %v", found)
	}
	if issue.Severity != issues.SeverityLow {
		t.Errorf("expected low severity, got %s", issue.Severity)
	}
}

func TestValidateValueRanges(t *testing.T) {
	cat := catalog.Default()

	tests := []struct {
		name string
		item bom.LineItem
		want string
	}{
		{name: "zero quantity", item: item("L001", "PCB-X7700", "Electronics", 0, 1), want: "quantity"},
		{name: "negative quantity", item: item("L001", "PCB-X7700", "Electronics", -3, 1), want: "quantity"},
		{name: "negative unit price", item: item("L001", "PCB-X7700", "Electronics", 1, -0.5), want: "unit_price"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			order := &bom.Order{OrderID: "ORD-1", Items: []bom.LineItem{tt.item}}
			found := Validate(order, cat)

			issue, ok := findIssue(found, issues.TypeInvalidFormat, tt.want)
			if !ok {
				t.Fatalf("expected an invalid-format issue for %s, got %v", tt.want, found)
			}
			if issue.Severity != issues.SeverityMedium {
				t.Errorf("expected medium severity, got %s", issue.Severity)
			}
		})
	}
}

func TestValidateReferenceItemSkipsFormatCheck(t *testing.T) {
	cat := testCatalog(t, map[string]string{"Electronics": `^PCB-[A-Z]\d{4}$`}, nil)

	path := filepath.Join(t.TempDir(), "reference_items.csv")
	csv := "item_number,description,category\nLEGACY-99,Legacy board,Electronics\n"
	if err := os.WriteFile(path, []byte(csv), 0644); err != nil {
		t.Fatalf("failed to write reference file: %v", err)
	}
	if err := cat.LoadReferenceFile(path); err != nil {
		t.Fatalf("failed to load reference data: %v", err)
	}

	order := &bom.Order{
		OrderID: "ORD-1",
		Items:   []bom.LineItem{item("L001", "LEGACY-99", "Electronics", 1, 1)},
	}
	found := Validate(order, cat)

	if len(found) != 0 {
		t.Fatalf("expected a reference-listed item to pass, got %v", found)
	}
}

func TestValidateAllowedSetSkipsFormatCheck(t *testing.T) {
	cat := testCatalog(t,
		map[string]string{"Electronics": `^PCB-[A-Z]\d{4}$`},
		map[string][]string{"Electronics": {"SPECIAL-1"}})

	order := &bom.Order{
		OrderID: "ORD-1",
		Items:   []bom.LineItem{item("L001", "SPECIAL-1", "Electronics", 1, 1)},
	}
	found := Validate(order, cat)

	if len(found) != 0 {
		t.Fatalf("expected an allow-listed item to pass, got %v", found)
	}
}

func TestValidateLocationFallsBackToPosition(t *testing.T) {
	order := &bom.Order{
		OrderID: "ORD-1",
		Items:   []bom.LineItem{{ItemNumber: "PCB-X7700", Category: "Electronics", Quantity: bom.IntPtr(1), UnitPrice: bom.FloatPtr(1.0)}},
	}
	found := Validate(order, catalog.Default())

	if len(found) != 1 {
		t.Fatalf("expected one missing line_id issue, got %v", found)
	}
	if found[0].Location != "item 1" {
		t.Errorf("expected positional location %q, got %q", "item 1", found[0].Location)
	}
}

func TestValidateIsDeterministic(t *testing.T) {
	order := bom.SampleOrder(true)
	cat := catalog.Default()

	first := Validate(order, cat)
	second := Validate(order, cat)

	if !reflect.DeepEqual(first, second) {
		t.Fatalf("expected identical results for repeated validation:\nfirst:  %v\nsecond: %v", first, second)
	}
}

func TestValidateSampleOrders(t *testing.T) {
	cat := catalog.Default()

	clean := Validate(bom.SampleOrder(false), cat)
	if len(clean) != 0 {
		t.Fatalf("expected the clean sample to pass, got %v", clean)
	}

	problematic := Validate(bom.SampleOrder(true), cat)
	if countByType(problematic, issues.TypeMissingField) == 0 {
		t.Error("expected the problematic sample to contain a missing-field issue")
	}
	if countByType(problematic, issues.TypeInvalidFormat) == 0 {
		t.Error("expected the problematic sample to contain an invalid-format issue")
	}
	if countByType(problematic, issues.TypeDuplicateID) != 1 {
		t.Errorf("expected the problematic sample to contain one duplicate-id issue, got %v", problematic)
	}
}

func TestValidateCollectsAcrossItems(t *testing.T) {
	order := &bom.Order{
		OrderID: "ORD-1",
		Items: []bom.LineItem{
			{LineID: "L001", ItemNumber: "PCB-X7700", Category: "Electronics", Quantity: bom.IntPtr(1)},
			item("L002", "CONN-DB9", "Connectors", 1, 1),
		},
	}
	found := Validate(order, catalog.Default())

	if len(found) != 2 {
		t.Fatalf("expected two issues across both items, got %d: %v", len(found), found)
	}
	if _, ok := findIssue(found, issues.TypeMissingField, "unit_price"); !ok {
		t.Errorf("expected a missing unit_price issue, got %v", found)
	}
	if _, ok := findIssue(found, issues.TypeInvalidFormat, "CONN-DB9"); !ok {
		t.Errorf("expected an invalid-format issue for CONN-DB9, got %v", found)
	}
}
