package catalog

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
)

// referenceHeader is the expected CSV layout of reference data files.
var referenceHeader = []string{"item_number", "description", "category"}

// LoadReferenceFile loads reference data from a CSV file with the columns
// item_number,description,category. Must be called during startup, before any
// validation run starts reading the catalog.
func (c *Catalog) LoadReferenceFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open reference file: %w", err)
	}
	defer f.Close()

	if err := c.loadReference(f); err != nil {
		return fmt.Errorf("failed to load reference data from %q: %w", path, err)
	}
	return nil
}

func (c *Catalog) loadReference(r io.Reader) error {
	reader := csv.NewReader(r)

	header, err := reader.Read()
	if err != nil {
		return fmt.Errorf("failed to read CSV header: %w", err)
	}
	cols := make(map[string]int, len(header))
	for i, name := range header {
		cols[name] = i
	}
	for _, required := range referenceHeader {
		if _, ok := cols[required]; !ok {
			return fmt.Errorf("reference CSV is missing the %q column", required)
		}
	}

	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("failed to read CSV row: %w", err)
		}

		item := ReferenceItem{
			ItemNumber:  row[cols["item_number"]],
			Description: row[cols["description"]],
			Category:    row[cols["category"]],
		}
		if item.ItemNumber == "" {
			continue
		}
		c.reference[item.ItemNumber] = item
	}

	return nil
}

// sampleReference is the bundled demo reference data set.
var sampleReference = []ReferenceItem{
	{"PCB-X7700", "Main Circuit Board", "Electronics"},
	{"CAP-3300-10V", "10V Capacitor", "Components"},
	{"RES-2K-0.25W", "2K Ohm Resistor", "Components"},
	{"IC-8085", "Microprocessor", "Electronics"},
	{"CONN-DB9-F", "DB9 Female Connector", "Connectors"},
	{"CONN-DB9-M", "DB9 Male Connector", "Connectors"},
	{"DIODE-1N4001", "1A Diode", "Components"},
	{"PCB-A1234", "Power Supply Board", "Electronics"},
	{"CAP-2200-25V", "25V Capacitor", "Components"},
	{"RES-10K-0.50W", "10K Ohm Resistor", "Components"},
}

// WriteSampleReference writes the bundled sample reference data as CSV,
// suitable for later loading with LoadReferenceFile.
func WriteSampleReference(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create reference file: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	if err := w.Write(referenceHeader); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}
	for _, item := range sampleReference {
		if err := w.Write([]string{item.ItemNumber, item.Description, item.Category}); err != nil {
			return fmt.Errorf("failed to write CSV row: %w", err)
		}
	}

	return w.Error()
}
