package easel

import (
	"bytes"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Config is the file form of the screen options. Zero fields keep the
// defaults.
//
//	width = 640
//	height = 480
//	title = "pong"
//	background = "black"
//	grid = 40
//	log_level = "debug"
type Config struct {
	Width      int     `toml:"width" yaml:"width"`
	Height     int     `toml:"height" yaml:"height"`
	Title      string  `toml:"title" yaml:"title"`
	Background string  `toml:"background" yaml:"background"`
	Backend    string  `toml:"backend" yaml:"backend"`
	Grid       float64 `toml:"grid" yaml:"grid"`
	GridColor  string  `toml:"grid_color" yaml:"grid_color"`
	LogLevel   string  `toml:"log_level" yaml:"log_level"`
}

// ConfigFormat selects the Config file syntax.
type ConfigFormat int

const (
	FormatTOML ConfigFormat = iota
	FormatYAML
)

// LoadConfig reads a TOML (.toml) or YAML (.yaml, .yml) file. Unknown keys
// are an error.
func LoadConfig(path string) (Config, error) {
	var format ConfigFormat
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		format = FormatTOML
	case ".yaml", ".yml":
		format = FormatYAML
	default:
		return Config{}, argError("LoadConfig", "path", path, "must end in .toml, .yaml or .yml")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("easel: read config: %w", err)
	}
	cfg, err := ParseConfig(bytes.NewReader(data), format)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// ParseConfig decodes a Config from r.
func ParseConfig(r io.Reader, format ConfigFormat) (Config, error) {
	var cfg Config
	switch format {
	case FormatTOML:
		dec := toml.NewDecoder(r)
		dec.DisallowUnknownFields()
		if err := dec.Decode(&cfg); err != nil {
			return Config{}, fmt.Errorf("easel: decode toml config: %w", err)
		}
	case FormatYAML:
		dec := yaml.NewDecoder(r)
		dec.KnownFields(true)
		if err := dec.Decode(&cfg); err != nil && err != io.EOF {
			return Config{}, fmt.Errorf("easel: decode yaml config: %w", err)
		}
	default:
		return Config{}, argError("ParseConfig", "format", format, "must be FormatTOML or FormatYAML")
	}
	return cfg, nil
}

// Options converts the config to screen options. Colors are parsed with
// ParseColor.
func (c Config) Options() ([]Option, error) {
	var opts []Option
	if c.Width != 0 || c.Height != 0 {
		w, h := c.Width, c.Height
		if w == 0 {
			w = defaultScreenOptions().width
		}
		if h == 0 {
			h = defaultScreenOptions().height
		}
		opts = append(opts, WithSize(w, h))
	}
	if c.Title != "" {
		opts = append(opts, WithTitle(c.Title))
	}
	if c.Background != "" {
		bg, err := ParseColor(c.Background)
		if err != nil {
			return nil, fmt.Errorf("easel: config background: %w", err)
		}
		opts = append(opts, WithBackground(bg))
	}
	if c.Backend != "" {
		opts = append(opts, WithBackend(c.Backend))
	}
	if c.Grid != 0 {
		opts = append(opts, WithGrid(c.Grid))
	}
	if c.GridColor != "" {
		gc, err := ParseColor(c.GridColor)
		if err != nil {
			return nil, fmt.Errorf("easel: config grid_color: %w", err)
		}
		opts = append(opts, WithGridColor(gc))
	}
	return opts, nil
}

// Level parses LogLevel. An empty level is slog.LevelInfo.
func (c Config) Level() (slog.Level, error) {
	var l slog.Level
	if c.LogLevel == "" {
		return slog.LevelInfo, nil
	}
	if err := l.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, argError("Config.Level", "log_level", c.LogLevel, "must be debug, info, warn or error")
	}
	return l, nil
}
