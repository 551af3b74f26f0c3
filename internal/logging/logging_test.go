package logging

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, "text", cfg.Format)
	assert.Equal(t, "warn", cfg.Level)
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		name     string
		level    string
		expected string
	}{
		{"debug", "debug", "DEBUG"},
		{"uppercase", "DEBUG", "DEBUG"},
		{"padded", " info ", "INFO"},
		{"warn", "warn", "WARN"},
		{"warning alias", "warning", "WARN"},
		{"error", "error", "ERROR"},
		{"unknown defaults to info", "verbose", "INFO"},
		{"empty defaults to info", "", "INFO"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, parseLevel(tt.level).String())
		})
	}
}

func TestNew_JSONFormat(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{Format: "JSON", Level: "info"}, &buf)

	logger.Info("organize finished", "moved", 2)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "organize finished", entry["msg"])
	assert.Equal(t, float64(2), entry["moved"])
}

func TestNew_LevelFilters(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{Format: "text", Level: "warn"}, &buf)

	logger.Info("hidden")
	assert.Empty(t, buf.String())

	logger.Warn("skipped", "reason", "无法复制文件: a.pdf")
	assert.Contains(t, buf.String(), "level=WARN")
	assert.Contains(t, buf.String(), "skipped")
}
