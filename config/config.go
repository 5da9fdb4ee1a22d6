// Package config loads tsviz settings from defaults, an optional YAML file
// and TSVIZ_* environment variables, in increasing precedence.
package config

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/pkg/errors"
	"github.com/spf13/viper"

	"github.com/sartorproj/tsviz/recent"
	"github.com/sartorproj/tsviz/smoothing"
	"github.com/sartorproj/tsviz/timeseries"
	"github.com/sartorproj/tsviz/trace"
)

// EnvPrefix prefixes every environment variable, e.g. TSVIZ_WINDOW.
const EnvPrefix = "TSVIZ"

// Keys.
const (
	KeyMode       = "mode"
	KeySmoothing  = "smoothing"
	KeyWindow     = "window"
	KeyHours      = "hours"
	KeyBaseline   = "baseline"
	KeyPalette    = "palette"
	KeyAccent     = "accent"
	KeyRetries    = "retries"
	KeyRecentFile = "recent_file"
	KeyWidth      = "width"
	KeyHeight     = "height"
	KeyDelimiter  = "delimiter"
	KeyLogLevel   = "log_level"
)

var hexColor = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// Config holds every tunable setting.
type Config struct {
	Mode       string   `mapstructure:"mode"`
	Smoothing  string   `mapstructure:"smoothing"`
	Window     int      `mapstructure:"window"`
	Hours      float64  `mapstructure:"hours"`
	Baseline   bool     `mapstructure:"baseline"`
	Palette    []string `mapstructure:"palette"`
	Accent     string   `mapstructure:"accent"`
	Retries    int      `mapstructure:"retries"`
	RecentFile string   `mapstructure:"recent_file"`
	Width      int      `mapstructure:"width"`
	Height     int      `mapstructure:"height"`
	Delimiter  string   `mapstructure:"delimiter"`
	LogLevel   string   `mapstructure:"log_level"`
}

// Default returns the configuration with no file and no environment.
func Default() *Config {
	return &Config{
		Mode:       string(trace.ModeSingle),
		Smoothing:  string(smoothing.MethodNone),
		Window:     smoothing.DefaultWindow,
		Hours:      smoothing.DefaultHours,
		Palette:    append([]string(nil), trace.DefaultPalette...),
		Accent:     trace.DefaultAccent,
		Retries:    3,
		RecentFile: recent.DefaultPath(),
		Width:      1200,
		Height:     600,
		Delimiter:  ",",
		LogLevel:   "info",
	}
}

// SetDefaults registers the values of Default on v.
func SetDefaults(v *viper.Viper) {
	d := Default()
	v.SetDefault(KeyMode, d.Mode)
	v.SetDefault(KeySmoothing, d.Smoothing)
	v.SetDefault(KeyWindow, d.Window)
	v.SetDefault(KeyHours, d.Hours)
	v.SetDefault(KeyBaseline, d.Baseline)
	v.SetDefault(KeyPalette, d.Palette)
	v.SetDefault(KeyAccent, d.Accent)
	v.SetDefault(KeyRetries, d.Retries)
	v.SetDefault(KeyRecentFile, d.RecentFile)
	v.SetDefault(KeyWidth, d.Width)
	v.SetDefault(KeyHeight, d.Height)
	v.SetDefault(KeyDelimiter, d.Delimiter)
	v.SetDefault(KeyLogLevel, d.LogLevel)
}

// New returns a viper instance with defaults and environment binding.
func New() *viper.Viper {
	v := viper.New()
	SetDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()
	return v
}

// Load reads file into v when it is set. Without a file, tsviz.yaml is looked
// up in the user config directory and the working directory; not finding one
// is fine.
func Load(v *viper.Viper, file string) (*Config, error) {
	if file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Wrapf(err, "reading config %s", file)
		}
	} else {
		v.SetConfigName("tsviz")
		v.SetConfigType("yaml")
		if dir, err := os.UserConfigDir(); err == nil {
			v.AddConfigPath(filepath.Join(dir, "tsviz"))
		}
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, errors.Wrap(err, "reading config")
			}
		}
	}

	c, err := decode(v)
	if err != nil {
		return nil, err
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

func decode(v *viper.Viper) (*Config, error) {
	c := &Config{}
	if err := v.Unmarshal(c); err != nil {
		return nil, errors.Wrap(err, "decoding config")
	}
	return c, nil
}

// Validate checks every setting.
func (c *Config) Validate() error {
	switch trace.Mode(c.Mode) {
	case trace.ModeSingle, trace.ModeDual:
	default:
		return errors.Errorf("mode must be single or dual, got %q", c.Mode)
	}
	if err := c.SmoothingOptions().Validate(); err != nil {
		return err
	}
	if len(c.Palette) == 0 {
		return errors.New("palette must not be empty")
	}
	for _, color := range append([]string{c.Accent}, c.Palette...) {
		if !hexColor.MatchString(color) {
			return errors.Errorf("color %q is not of the form #rrggbb", color)
		}
	}
	if c.Retries < 0 {
		return errors.Errorf("retries must not be negative, got %d", c.Retries)
	}
	if c.Width <= 0 || c.Height <= 0 {
		return errors.Errorf("chart size must be positive, got %dx%d", c.Width, c.Height)
	}
	if utf8.RuneCountInString(c.Delimiter) != 1 {
		return errors.Errorf("delimiter must be a single character, got %q", c.Delimiter)
	}
	return nil
}

// SmoothingOptions returns the smoothing settings.
func (c *Config) SmoothingOptions() smoothing.Options {
	return smoothing.Options{
		Method: smoothing.Method(c.Smoothing),
		Window: c.Window,
		Hours:  c.Hours,
	}
}

// CSVOptions returns the CSV source settings.
func (c *Config) CSVOptions() *timeseries.CSVOptions {
	opts := timeseries.DefaultCSVOptions()
	if r, _ := utf8.DecodeRuneInString(c.Delimiter); r != utf8.RuneError {
		opts.Delimiter = r
	}
	return opts
}
