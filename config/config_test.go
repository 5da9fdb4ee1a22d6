package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sartorproj/tsviz/smoothing"
	"github.com/sartorproj/tsviz/trace"
)

func TestDefault(t *testing.T) {
	c := Default()

	require.NoError(t, c.Validate())
	assert.Equal(t, "single", c.Mode)
	assert.Equal(t, smoothing.DefaultOptions(), c.SmoothingOptions())
	assert.Equal(t, trace.DefaultPalette, c.Palette)
	assert.Equal(t, 3, c.Retries)
	assert.Equal(t, ',', c.CSVOptions().Delimiter)
}

func TestDefaultMatchesViperDefaults(t *testing.T) {
	v := viper.New()
	SetDefaults(v)

	c, err := decode(v)

	require.NoError(t, err)
	assert.Equal(t, Default(), c)
}

func TestLoadFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "tsviz.yaml")
	content := `
mode: dual
smoothing: count
window: 7
palette: ["#000000", "#ffffff"]
delimiter: ";"
`
	require.NoError(t, os.WriteFile(file, []byte(content), 0o644))

	c, err := Load(New(), file)

	require.NoError(t, err)
	assert.Equal(t, "dual", c.Mode)
	assert.Equal(t, smoothing.Options{Method: smoothing.MethodCount, Window: 7, Hours: smoothing.DefaultHours}, c.SmoothingOptions())
	assert.Equal(t, []string{"#000000", "#ffffff"}, c.Palette)
	assert.Equal(t, ';', c.CSVOptions().Delimiter)
}

func TestLoadEnvOverridesFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "tsviz.yaml")
	require.NoError(t, os.WriteFile(file, []byte("window: 7\n"), 0o644))
	t.Setenv("TSVIZ_WINDOW", "9")
	t.Setenv("TSVIZ_SMOOTHING", "count")

	c, err := Load(New(), file)

	require.NoError(t, err)
	assert.Equal(t, 9, c.Window)
	assert.Equal(t, "count", c.Smoothing)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(New(), filepath.Join(t.TempDir(), "nope.yaml"))

	assert.Error(t, err)
}

func TestLoadRejectsInvalid(t *testing.T) {
	file := filepath.Join(t.TempDir(), "tsviz.yaml")
	require.NoError(t, os.WriteFile(file, []byte("smoothing: count\nwindow: 50\n"), 0o644))

	_, err := Load(New(), file)

	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"mode", func(c *Config) { c.Mode = "triple" }},
		{"hours", func(c *Config) { c.Smoothing = "time"; c.Hours = 500 }},
		{"empty palette", func(c *Config) { c.Palette = nil }},
		{"bad color", func(c *Config) { c.Palette = []string{"blue"} }},
		{"bad accent", func(c *Config) { c.Accent = "#12345" }},
		{"retries", func(c *Config) { c.Retries = -1 }},
		{"size", func(c *Config) { c.Width = 0 }},
		{"delimiter", func(c *Config) { c.Delimiter = ";;" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Default()
			tt.mutate(c)
			assert.Error(t, c.Validate())
		})
	}
}
