package bom

// SampleOrder builds a sample BOM order. With includeIssues set, the order
// carries three deliberate defects: a line item without a unit price, an item
// number that does not match its category pattern, and a duplicated line_id.
func SampleOrder(includeIssues bool) *Order {
	order := &Order{
		OrderID:  "ORD-2025-7834",
		Customer: "Acme Electronics",
		Date:     "2025-02-26",
		Priority: "High",
		Items: []LineItem{
			{
				LineID:      "L001",
				ItemNumber:  "PCB-X7700",
				Description: "Main Circuit Board",
				Quantity:    IntPtr(5),
				UnitPrice:   FloatPtr(120.50),
				Category:    "Electronics",
			},
			{
				LineID:      "L002",
				ItemNumber:  "CAP-3300-10V",
				Description: "10V Capacitor",
				Quantity:    IntPtr(50),
				UnitPrice:   FloatPtr(0.75),
				Category:    "Components",
			},
			{
				LineID:      "L003",
				ItemNumber:  "RES-2K-0.25W",
				Description: "2K Ohm Resistor",
				Quantity:    IntPtr(100),
				UnitPrice:   FloatPtr(0.25),
				Category:    "Components",
			},
		},
	}

	if !includeIssues {
		return order
	}

	order.Items = append(order.Items,
		// Missing unit_price
		LineItem{
			LineID:      "L004",
			ItemNumber:  "IC-8085",
			Description: "Microprocessor",
			Quantity:    IntPtr(2),
			Category:    "Electronics",
		},
		// Wrong item number format, should be CONN-DB9-F
		LineItem{
			LineID:      "L005",
			ItemNumber:  "CONN-7777",
			Description: "DB9 Female Connector",
			Quantity:    IntPtr(10),
			UnitPrice:   FloatPtr(1.20),
			Category:    "Connectors",
		},
		// Duplicate line_id
		LineItem{
			LineID:      "L003",
			ItemNumber:  "DIODE-1N4001",
			Description: "1A Diode",
			Quantity:    IntPtr(25),
			UnitPrice:   FloatPtr(0.15),
			Category:    "Components",
		},
	)

	return order
}
