// Package config handles application configuration via TOML files.
// Configuration is stored at ~/.config/file-organizer/config.toml and holds
// defaults for the command line, the folder picker, logging and watch mode.
// The organize operations themselves never read it.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/litescript/ls-file-organizer/internal/logging"
)

// Config holds application configuration
type Config struct {
	Defaults DefaultsConfig `toml:"defaults"`
	Picker   PickerConfig   `toml:"picker"`
	Log      logging.Config `toml:"log"`
	Watch    WatchConfig    `toml:"watch"`
}

// DefaultsConfig holds fallbacks for process flags left unset
type DefaultsConfig struct {
	SourceFolder     string   `toml:"source_folder"`
	BackupFolder     string   `toml:"backup_folder"`
	SourceExtensions []string `toml:"source_extensions"`
	BackupExtensions []string `toml:"backup_extensions"`
}

// PickerConfig holds folder picker settings
type PickerConfig struct {
	// StartDir is where browsing begins. Empty means the home directory.
	StartDir   string `toml:"start_dir"`
	ShowHidden bool   `toml:"show_hidden"`
}

// WatchConfig holds settings for process --watch
type WatchConfig struct {
	// Debounce is a Go duration string such as "500ms".
	Debounce string `toml:"debounce"`
}

const defaultDebounce = 500 * time.Millisecond

// Default returns the default configuration
func Default() Config {
	home, _ := os.UserHomeDir()

	return Config{
		Defaults: DefaultsConfig{
			SourceFolder:     "source",
			BackupFolder:     "backup",
			SourceExtensions: []string{".pdf"},
			BackupExtensions: []string{".png", ".jpg"},
		},
		Picker: PickerConfig{
			StartDir: home,
		},
		Log: logging.DefaultConfig(),
		Watch: WatchConfig{
			Debounce: defaultDebounce.String(),
		},
	}
}

// ConfigPath returns the path to the config file
func ConfigPath() string {
	if dir, err := os.UserConfigDir(); err == nil {
		return filepath.Join(dir, "file-organizer", "config.toml")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "file-organizer", "config.toml")
}

// Load reads config from path, or from ConfigPath when path is empty.
// A missing file yields the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		path = ConfigPath()
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Default(), fmt.Errorf("parse config %s: %w", path, err)
	}

	cfg.normalize()
	return cfg, nil
}

// Save writes config to path, or to ConfigPath when path is empty
func Save(cfg Config, path string) error {
	if path == "" {
		path = ConfigPath()
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := toml.NewEncoder(f).Encode(cfg); err != nil {
		return err
	}
	return f.Close()
}

// DebounceDuration returns the watch debounce window, falling back to the
// default when the configured value is missing or invalid.
func (c Config) DebounceDuration() time.Duration {
	d, err := time.ParseDuration(strings.TrimSpace(c.Watch.Debounce))
	if err != nil || d <= 0 {
		return defaultDebounce
	}
	return d
}

func (c *Config) normalize() {
	c.Defaults.SourceExtensions = NormalizeExtensions(c.Defaults.SourceExtensions)
	c.Defaults.BackupExtensions = NormalizeExtensions(c.Defaults.BackupExtensions)
	c.Picker.StartDir = ExpandPath(c.Picker.StartDir)
}

// NormalizeExtensions trims entries, adds a missing leading dot and drops
// blanks. Case is left alone; matching ignores it.
func NormalizeExtensions(exts []string) []string {
	out := make([]string, 0, len(exts))
	for _, e := range exts {
		e = strings.TrimSpace(e)
		if e == "" || e == "." {
			continue
		}
		if !strings.HasPrefix(e, ".") {
			e = "." + e
		}
		out = append(out, e)
	}
	return out
}

// ExpandPath replaces a leading ~ with the home directory
func ExpandPath(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}
