// Package bom defines the in-memory representation of a Bill-of-Materials
// order and its line items.
package bom

// Order is a single BOM order record. Items keep their input ordering.
type Order struct {
	OrderID  string     `json:"order_id"`
	Customer string     `json:"customer,omitempty"`
	Date     string     `json:"date,omitempty"`
	Priority string     `json:"priority,omitempty"`
	Items    []LineItem `json:"items"`
}

// LineItem is one row of a BOM order. Quantity and UnitPrice are pointers so
// an absent field can be told apart from a zero value; string fields use the
// empty string for absence.
type LineItem struct {
	LineID      string   `json:"line_id,omitempty"`
	ItemNumber  string   `json:"item_number,omitempty"`
	Description string   `json:"description,omitempty"`
	Quantity    *int     `json:"quantity,omitempty"`
	UnitPrice   *float64 `json:"unit_price,omitempty"`
	Category    string   `json:"category,omitempty"`
}

// IntPtr returns a pointer to the given int. Convenience for building orders in code.
func IntPtr(v int) *int {
	return &v
}

// FloatPtr returns a pointer to the given float64.
func FloatPtr(v float64) *float64 {
	return &v
}
