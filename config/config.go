// Package config gathers settings from, in increasing order of precedence: built-in defaults,
// an ini file, and LANTERN_* environment variables.  Command line flags are applied on top by
// the commands themselves.
package config

import (
	"errors"
	"fmt"
	"image/color"
	"io/fs"
	"os"
	"strconv"
	"time"
	"unicode"

	"github.com/caarlos0/env/v11"
	"gopkg.in/ini.v1"

	"lantern/logging"
)

const (
	DefaultFile = "lantern.ini"
	FileEnv     = "LANTERN_CONFIG"
	EnvPrefix   = "LANTERN_"
)

// UI is the [ui] section.  Colours are strings like "R255g128b0"; see ParseColour.
type UI struct {
	Tick   time.Duration `ini:"tick" env:"TICK"`
	Width  float64       `ini:"width"`
	Height float64       `ini:"height"`

	TitleColour      string `ini:"TITLE_COLOUR"`
	SelectedColour   string `ini:"SELECTED_COLOUR"`
	ErrorColour      string `ini:"ERROR_COLOUR"`
	SuccessColour    string `ini:"SUCCESS_COLOUR"`
	BackgroundColour string `ini:"BACKGROUND_COLOUR"`
}

type Config struct {
	Dir       string `ini:"dir" env:"DIR"`
	Backup    bool   `ini:"backup" env:"BACKUP"`
	LogLevel  string `ini:"log_level" env:"LOG_LEVEL"`
	LogFormat string `ini:"log_format" env:"LOG_FORMAT"`
	LogFile   string `ini:"log_file" env:"LOG_FILE"`

	UI UI `ini:"ui"`
}

func Default() Config {
	return Config{
		Dir:       ".",
		LogLevel:  "info",
		LogFormat: "text",
		UI: UI{
			Tick:             250 * time.Millisecond,
			Width:            640,
			Height:           720,
			TitleColour:      "R255g200b80",
			SelectedColour:   "R80g200b255",
			ErrorColour:      "R255g70b70",
			SuccessColour:    "R90g220b110",
			BackgroundColour: "R12g10b18",
		},
	}
}

// Path picks the config file: the argument if given, then $LANTERN_CONFIG, then lantern.ini.
func Path(explicit string) string {
	if explicit != "" {
		return explicit
	}
	if p := os.Getenv(FileEnv); p != "" {
		return p
	}
	return DefaultFile
}

// Load layers the ini file at path and the environment over the defaults.
// A missing file just means defaults; a file that exists but doesn't parse is an error.
func Load(path string) (Config, error) {
	cfg := Default()

	if _, err := os.Stat(path); err == nil {
		file, err := ini.Load(path)
		if err != nil {
			return cfg, fmt.Errorf("config file %v: %w", path, err)
		}
		if err := file.StrictMapTo(&cfg); err != nil {
			return cfg, fmt.Errorf("config file %v: %w", path, err)
		}
		// MapTo quietly skips durations that aren't positive
		if key, err := file.Section("ui").GetKey("tick"); err == nil {
			tick, err := key.Duration()
			if err != nil {
				return cfg, fmt.Errorf("config file %v: tick: %w", path, err)
			}
			cfg.UI.Tick = tick
		}
	} else if !errors.Is(err, fs.ErrNotExist) {
		return cfg, fmt.Errorf("config file %v: %w", path, err)
	}

	if err := env.ParseWithOptions(&cfg, env.Options{Prefix: EnvPrefix}); err != nil {
		return cfg, fmt.Errorf("parse env: %w", err)
	}

	if cfg.UI.Tick <= 0 {
		return cfg, fmt.Errorf("tick must be positive, got %v", cfg.UI.Tick)
	}
	return cfg, nil
}

// Logging turns the log settings into a logging.Config.  Output is left for the caller.
func (c Config) Logging() logging.Config {
	return logging.Config{Level: c.LogLevel, Format: c.LogFormat}
}

type Palette struct {
	Title      color.RGBA
	Selected   color.RGBA
	Error      color.RGBA
	Success    color.RGBA
	Background color.RGBA
}

// Palette parses the colour strings.  The first bad one is reported.
func (u UI) Palette() (Palette, error) {
	var p Palette
	for _, c := range []struct {
		name string
		str  string
		out  *color.RGBA
	}{
		{"TITLE_COLOUR", u.TitleColour, &p.Title},
		{"SELECTED_COLOUR", u.SelectedColour, &p.Selected},
		{"ERROR_COLOUR", u.ErrorColour, &p.Error},
		{"SUCCESS_COLOUR", u.SuccessColour, &p.Success},
		{"BACKGROUND_COLOUR", u.BackgroundColour, &p.Background},
	} {
		col, err := ParseColour(c.str)
		if err != nil {
			return p, fmt.Errorf("%v: %w", c.name, err)
		}
		*c.out = col
	}
	return p, nil
}

// ParseColour converts a colour string (e.g. "R255g128b0") into a color.RGBA.
// Components are r, g, b and a in any case and any order.  Missing ones are 0, except alpha,
// which is 255.  Values above 255 are clamped.
func ParseColour(str string) (color.RGBA, error) {
	out := color.RGBA{0, 0, 0, 0xFF}

	name := rune(0)
	numstr := ""
	flush := func() error {
		if name == 0 {
			return nil
		}
		number, err := strconv.Atoi(numstr)
		if errors.Is(err, strconv.ErrRange) {
			number = 255
		}
		number = min(number, 255)
		switch name {
		case 'r', 'R':
			out.R = uint8(number)
		case 'g', 'G':
			out.G = uint8(number)
		case 'b', 'B':
			out.B = uint8(number)
		case 'a', 'A':
			out.A = uint8(number)
		default:
			return fmt.Errorf("unexpected colour component %q in %q", name, str)
		}
		return nil
	}

	for _, r := range str {
		if unicode.IsDigit(r) {
			numstr += string(r)
			continue
		}
		if err := flush(); err != nil {
			return out, err
		}
		name, numstr = r, ""
	}
	return out, flush()
}
