package bom

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
)

// LoadError reports that an input document could not be turned into an Order.
// The validator never runs against a record that failed to load.
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("invalid order document: %v", e.Err)
	}
	return fmt.Sprintf("invalid order document %q: %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// Load reads and parses an order JSON document from disk.
func Load(path string) (*Order, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}

	order, err := Parse(data)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}
	return order, nil
}

// Parse decodes an order JSON document. Structurally invalid input (not JSON,
// wrong field types, missing order_id) is rejected here so the validator only
// ever sees well-formed records.
func Parse(data []byte) (*Order, error) {
	var order Order

	dec := json.NewDecoder(bytes.NewReader(data))
	if err := dec.Decode(&order); err != nil {
		return nil, fmt.Errorf("malformed JSON: %w", err)
	}

	if order.OrderID == "" {
		return nil, fmt.Errorf("order_id is required and must be non-empty")
	}

	return &order, nil
}

// Marshal renders an order back to indented JSON, matching the input format.
func Marshal(order *Order) ([]byte, error) {
	data, err := json.MarshalIndent(order, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("error marshaling order: %w", err)
	}
	return data, nil
}
