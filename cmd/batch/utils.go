package batch

import (
	"github.com/hashicorp/go-hclog"

	"github.com/bomgrid/bomcheck/internal/catalog"
	"github.com/bomgrid/bomcheck/pkg/shared/config"
)

// buildCatalog creates the reference catalog, loading reference data from the
// flag path or the configured reference_file when present.
func buildCatalog(cfg *config.Config, referenceFile string, logger hclog.Logger) (*catalog.Catalog, error) {
	cat := catalog.Default()

	if referenceFile == "" && cfg != nil {
		referenceFile = cfg.Catalog.ReferenceFile
	}
	if referenceFile != "" {
		if err := cat.LoadReferenceFile(referenceFile); err != nil {
			return nil, err
		}
		logger.Info("loaded reference items", "path", referenceFile, "count", cat.ReferenceCount())
	}

	return cat, nil
}
