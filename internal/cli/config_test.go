package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/contactdesk/pkg/types"
)

func TestLoadDefaultConfig(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "cfg")
	v, err := loadConfig(dir)
	require.NoError(t, err)

	cfg, err := configFromViper(v, "/data")
	require.NoError(t, err)

	want := types.DefaultConfig()
	want.DataDir = "/data"
	assert.Equal(t, want, cfg)
}

func TestLoadConfigKeepsExistingFile(t *testing.T) {
	dir := t.TempDir()
	custom := "backend: sqlite\npage_size: 10\ndefault_sort: Email\ndefault_direction: desc\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(custom), 0o644))

	v, err := loadConfig(dir)
	require.NoError(t, err)
	cfg, err := configFromViper(v, "")
	require.NoError(t, err)

	assert.Equal(t, 10, cfg.PageSize)
	assert.Equal(t, types.FieldEmail, cfg.DefaultSort)
	assert.Equal(t, types.Descending, cfg.DefaultDirection)

	data, err := os.ReadFile(filepath.Join(dir, "config.yaml"))
	require.NoError(t, err)
	assert.Equal(t, custom, string(data))
}

func TestConfigFromViperRejects(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr error
	}{
		{"unknown backend", "backend: oracle\n", types.ErrBackendUnknown},
		{"postgres without dsn", "backend: postgres\n", types.ErrDSNEmpty},
		{"negative page size", "page_size: -1\n", types.ErrPageSizeInvalid},
		{"bad direction", "default_direction: sideways\n", types.ErrInvalidDirection},
		{"unsortable default", "sortable_fields: [Email]\ndefault_sort: Phone\n", types.ErrDefaultSortUnknown},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(tt.yaml), 0o644))
			v, err := loadConfig(dir)
			require.NoError(t, err)

			_, err = configFromViper(v, "")
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestEnvironmentOverridesConfig(t *testing.T) {
	t.Setenv("CONTACTDESK_PAGE_SIZE", "7")
	v, err := loadConfig(t.TempDir())
	require.NoError(t, err)
	cfg, err := configFromViper(v, "")
	require.NoError(t, err)
	assert.Equal(t, 7, cfg.PageSize)
}
