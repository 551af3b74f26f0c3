package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, "source", cfg.Defaults.SourceFolder)
	assert.Equal(t, "backup", cfg.Defaults.BackupFolder)
	assert.Equal(t, []string{".pdf"}, cfg.Defaults.SourceExtensions)
	assert.Equal(t, "text", cfg.Log.Format)
	assert.Equal(t, 500*time.Millisecond, cfg.DebounceDuration())
}

func TestLoad_MissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_FromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
[defaults]
source_folder = "scans"
backup_folder = "photos"
source_extensions = ["PDF", " .docx ", ""]
backup_extensions = [".png"]

[picker]
start_dir = "/srv/files"
show_hidden = true

[log]
level = "debug"
format = "json"

[watch]
debounce = "2s"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "scans", cfg.Defaults.SourceFolder)
	assert.Equal(t, "photos", cfg.Defaults.BackupFolder)
	assert.Equal(t, []string{".PDF", ".docx"}, cfg.Defaults.SourceExtensions)
	assert.Equal(t, []string{".png"}, cfg.Defaults.BackupExtensions)
	assert.Equal(t, "/srv/files", cfg.Picker.StartDir)
	assert.True(t, cfg.Picker.ShowHidden)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, 2*time.Second, cfg.DebounceDuration())
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[log]\nlevel = \"error\"\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "error", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)
	assert.Equal(t, "source", cfg.Defaults.SourceFolder)
}

func TestLoad_InvalidTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[defaults\nsource_folder = "), 0o644))

	cfg, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse config")
	assert.Equal(t, Default(), cfg)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	cfg := Default()
	cfg.Defaults.SourceFolder = "inbox"
	cfg.Picker.StartDir = "/data"

	require.NoError(t, Save(cfg, path))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestDebounceDuration_Invalid(t *testing.T) {
	for _, v := range []string{"", "soon", "-1s", "0"} {
		cfg := Config{Watch: WatchConfig{Debounce: v}}
		assert.Equal(t, 500*time.Millisecond, cfg.DebounceDuration(), v)
	}
}

func TestNormalizeExtensions(t *testing.T) {
	got := NormalizeExtensions([]string{"pdf", ".PNG", "  jpg ", "", ".", " "})
	assert.Equal(t, []string{".pdf", ".PNG", ".jpg"}, got)
	assert.Empty(t, NormalizeExtensions(nil))
}

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	assert.Equal(t, home, ExpandPath("~"))
	assert.Equal(t, filepath.Join(home, "docs"), ExpandPath("~/docs"))
	assert.Equal(t, "/abs/path", ExpandPath("/abs/path"))
	assert.Equal(t, "~user/x", ExpandPath("~user/x"))
}
