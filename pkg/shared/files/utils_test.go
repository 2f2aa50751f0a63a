package files

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidatePath(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "order.json")
	require.NoError(t, os.WriteFile(file, []byte("{}"), 0644))

	assert.NoError(t, ValidatePath(file))
	assert.Error(t, ValidatePath(dir))
	assert.Error(t, ValidatePath(filepath.Join(dir, "absent.json")))
}

func TestValidateDirPath(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "order.json")
	require.NoError(t, os.WriteFile(file, []byte("{}"), 0644))

	assert.NoError(t, ValidateDirPath(dir))
	assert.Error(t, ValidateDirPath(file))
	assert.Error(t, ValidateDirPath(filepath.Join(dir, "absent")))
}

func TestWriteJsonFileCreatesParentFolders(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "deeper", "report.json")
	require.NoError(t, WriteJsonFile(path, []byte(`{"ok": true}`)))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, `{"ok": true}`, string(data))
}

func TestDetermineFileFullPath(t *testing.T) {
	dir := t.TempDir()
	existing := filepath.Join(dir, "analysis.json")
	require.NoError(t, os.WriteFile(existing, []byte("{}"), 0644))

	tests := []struct {
		name string
		path string
		want string
	}{
		{name: "existing directory", path: dir, want: filepath.Join(dir, "analysis_ORD-1.json")},
		{name: "existing file", path: existing, want: existing},
		{name: "new file with extension", path: filepath.Join(dir, "out.json"), want: filepath.Join(dir, "out.json")},
		{name: "new extensionless path treated as directory", path: filepath.Join(dir, "results"), want: filepath.Join(dir, "results", "analysis_ORD-1.json")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fullPath, _, err := DetermineFileFullPath(tt.path, "analysis_ORD-1.json")
			require.NoError(t, err)
			assert.Equal(t, tt.want, fullPath)
		})
	}
}
