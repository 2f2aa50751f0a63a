package batch

import (
	"fmt"
	"path/filepath"

	"github.com/bomgrid/bomcheck/internal/bom"
	"github.com/bomgrid/bomcheck/pkg/shared/files"
)

// GenerateSamples writes n sample order files for batch testing, alternating
// clean and problematic orders and varying priority so the set is not uniform.
func GenerateSamples(dir string, n int) error {
	if err := files.CreateFolderIfNotExists(dir); err != nil {
		return err
	}

	for i := 1; i <= n; i++ {
		includeIssues := i%2 == 0
		order := bom.SampleOrder(includeIssues)
		order.OrderID = fmt.Sprintf("ORD-2025-%d", 7800+i)

		switch i % 3 {
		case 0:
			order.Priority = "Medium"
		case 1:
			order.Priority = "Low"
		}

		status := "clean"
		if includeIssues {
			status = "problematic"
		}
		path := filepath.Join(dir, fmt.Sprintf("sample_order_%d_%s.json", i, status))

		data, err := bom.Marshal(order)
		if err != nil {
			return err
		}
		if err := files.WriteJsonFile(path, data); err != nil {
			return err
		}
	}

	return nil
}
