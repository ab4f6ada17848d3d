package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)

	assert.Equal(t, DefaultTop, cfg.Profile.Top)
	assert.Equal(t, DefaultInventoryDB, cfg.Inventory.DBPath)
	assert.Equal(t, DefaultNotesOutput, cfg.Notes.OutputPath)
	assert.Empty(t, cfg.Notes.SQLitePath)
}

func TestLoad_YAMLOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "flatkit.yaml")
	content := `profile:
  top: 3
inventory:
  db_path: /tmp/inv.json
logging:
  level: debug
  format: json
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 3, cfg.Profile.Top)
	assert.Equal(t, "/tmp/inv.json", cfg.Inventory.DBPath)
	assert.Equal(t, DefaultNotesOutput, cfg.Notes.OutputPath)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
}

func TestLoad_EnvOverridesYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "flatkit.yaml")
	require.NoError(t, os.WriteFile(path, []byte("profile:\n  top: 3\n"), 0o644))

	t.Setenv("FLATKIT_TOP", "10")
	t.Setenv("FLATKIT_NOTES_SQLITE", "/tmp/notes.db")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 10, cfg.Profile.Top)
	assert.Equal(t, "/tmp/notes.db", cfg.Notes.SQLitePath)
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		env     map[string]string
		wantErr string
	}{
		{
			name:    "malformed yaml",
			yaml:    "profile: [",
			wantErr: "failed to parse config",
		},
		{
			name:    "bad top env",
			env:     map[string]string{"FLATKIT_TOP": "five"},
			wantErr: "FLATKIT_TOP",
		},
		{
			name:    "unknown log level",
			yaml:    "logging:\n  level: loud\n",
			wantErr: "logging.level",
		},
		{
			name:    "unknown log format",
			env:     map[string]string{"FLATKIT_LOG_FORMAT": "xml"},
			wantErr: "logging.format",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "flatkit.yaml")
			require.NoError(t, os.WriteFile(path, []byte(tt.yaml), 0o644))
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			_, err := Load(path)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestPath(t *testing.T) {
	t.Setenv("FLATKIT_CONFIG", "")
	assert.Equal(t, DefaultConfigPath, Path())

	t.Setenv("FLATKIT_CONFIG", "/etc/flatkit.yaml")
	assert.Equal(t, "/etc/flatkit.yaml", Path())
}
