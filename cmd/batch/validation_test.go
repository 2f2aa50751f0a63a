package batch

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "github.com/bomgrid/bomcheck/internal/analyzer/providers"
)

func TestValidateBatchArgs(t *testing.T) {
	inputDir := t.TempDir()

	tests := []struct {
		name    string
		options RunOptionsBatch
		args    []string
		wantErr string
	}{
		{
			name:    "valid input directory",
			options: RunOptionsBatch{InputDir: inputDir},
		},
		{
			name:    "valid sample generation",
			options: RunOptionsBatch{GenerateSamples: 10},
		},
		{
			name:    "valid llm run",
			options: RunOptionsBatch{InputDir: inputDir, WithLLM: true, Provider: "openai", Workers: 8},
		},
		{
			name:    "positional arguments rejected",
			options: RunOptionsBatch{InputDir: inputDir},
			args:    []string{"extra"},
			wantErr: "takes flags only",
		},
		{
			name:    "negative sample count",
			options: RunOptionsBatch{GenerateSamples: -1},
			wantErr: "'generate-samples' flag must be a positive number",
		},
		{
			name:    "input dir and sample generation are exclusive",
			options: RunOptionsBatch{InputDir: inputDir, GenerateSamples: 5},
			wantErr: "cannot use the 'input-dir' flag",
		},
		{
			name:    "missing input dir",
			options: RunOptionsBatch{},
			wantErr: "either the 'input-dir' flag or the 'generate-samples' flag",
		},
		{
			name:    "negative workers",
			options: RunOptionsBatch{InputDir: inputDir, Workers: -2},
			wantErr: "'workers' flag must be a positive number",
		},
		{
			name:    "provider requires with-llm",
			options: RunOptionsBatch{InputDir: inputDir, Provider: "openai"},
			wantErr: "require the 'with-llm' flag",
		},
		{
			name:    "unknown provider",
			options: RunOptionsBatch{InputDir: inputDir, WithLLM: true, Provider: "nonexistent"},
			wantErr: "unknown provider",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateBatchArgs(&tt.options, tt.args)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
