package upload

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bomgrid/bomcheck/pkg/shared/config"
)

func TestValidateUploadArgs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "analysis.json")
	require.NoError(t, os.WriteFile(path, []byte("{}"), 0644))

	tests := []struct {
		name    string
		options RunOptionsUpload
		config  *config.Config
		wantErr string
	}{
		{
			name:    "valid with bucket flag",
			options: RunOptionsUpload{InputPath: path, Bucket: "bom-reports"},
		},
		{
			name:    "valid with configured bucket",
			options: RunOptionsUpload{InputPath: path},
			config: &config.Config{
				Storage: config.Storage{S3: config.S3{Bucket: "bom-reports"}},
			},
		},
		{
			name:    "missing input",
			options: RunOptionsUpload{Bucket: "bom-reports"},
			wantErr: "'input' flag must be specified",
		},
		{
			name:    "nonexistent input",
			options: RunOptionsUpload{InputPath: "/nonexistent/analysis.json", Bucket: "bom-reports"},
			wantErr: "input path is not valid",
		},
		{
			name:    "missing bucket",
			options: RunOptionsUpload{InputPath: path},
			wantErr: "'bucket' flag or the storage.s3.bucket",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			AppConfig = tt.config
			t.Cleanup(func() { AppConfig = nil })

			err := validateUploadArgs(&tt.options, nil)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
