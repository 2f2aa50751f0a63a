// Package artifacts persists a copy of every produced report under the
// application home for later inspection.
package artifacts

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/hashicorp/go-hclog"

	"github.com/bomgrid/bomcheck/internal/report"
	"github.com/bomgrid/bomcheck/pkg/shared/config"
)

// GetArtifactName builds an artifact file name.
// Example: analyse_ORD-2025-7834_2025-09-15T08:28:46Z.bomcheck-artifact.
func GetArtifactName(command, orderID string, t time.Time) string {
	ts := t.UTC().Format(time.RFC3339)
	return fmt.Sprintf("%s_%s_%s.bomcheck-artifact", command, orderID, ts)
}

// SaveReportArtifact writes the report to <artifacts>/<name>.json and returns
// the full path.
func SaveReportArtifact(cfg *config.Config, logger hclog.Logger, command string, rep report.Report) (string, error) {
	dir := config.GetArtifactsHome(cfg)
	base := GetArtifactName(command, rep.OrderID, time.Now())
	path := filepath.Join(dir, base+".json")

	if err := rep.WriteJSON(path); err != nil {
		return path, fmt.Errorf("error writing report artifact: %w", err)
	}
	logger.Info("artifact saved to file", "path", path)

	return path, nil
}
