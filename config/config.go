// Package config resolves presentation preferences from dotenv files and
// the process environment
package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/afero"
)

// Environment keys
const (
	EnvTheme        = "ASCIIHEX_THEME"
	EnvFontSize     = "ASCIIHEX_FONT_SIZE"
	EnvExportPath   = "ASCIIHEX_EXPORT_PATH"
	EnvDelimiter    = "ASCIIHEX_DELIMITER"
	EnvAudioEnabled = "ASCIIHEX_AUDIO_ENABLED"
	EnvVolume       = "ASCIIHEX_VOLUME"
	EnvLogFile      = "ASCIIHEX_LOG_FILE"
)

// DotenvFiles are tried in order; the first one present is loaded
var DotenvFiles = []string{".env.local", ".env"}

// Theme selects the color scheme
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// FontSize is a point size from the View menu
type FontSize int

const (
	FontSmall  FontSize = 8
	FontMedium FontSize = 10
	FontLarge  FontSize = 14
)

// Config holds every user preference
type Config struct {
	Theme        Theme
	FontSize     FontSize
	ExportPath   string
	Delimiter    rune
	AudioEnabled bool
	Volume       float64 // 0.0-1.0
	LogFile      string
}

// Default returns the built-in preferences
func Default() *Config {
	return &Config{
		Theme:        ThemeLight,
		FontSize:     FontMedium,
		ExportPath:   "ascii_table.csv",
		Delimiter:    ',',
		AudioEnabled: false,
		Volume:       0.5,
	}
}

// Load builds a config from defaults, the first dotenv file found on fs,
// then the process environment
func Load(fs afero.Fs) *Config {
	dotenv := readDotenv(fs)
	return resolve(func(key string) (string, bool) {
		if v, ok := os.LookupEnv(key); ok {
			return v, true
		}
		v, ok := dotenv[key]
		return v, ok
	})
}

func readDotenv(fs afero.Fs) map[string]string {
	for _, name := range DotenvFiles {
		f, err := fs.Open(name)
		if err != nil {
			continue
		}
		values, err := godotenv.Parse(f)
		f.Close()
		if err != nil {
			log.Printf("Ignoring %s: %v", name, err)
			continue
		}
		log.Printf("Loaded preferences from %s", name)
		return values
	}
	return nil
}

// resolve applies every known key found through lookup over the defaults
func resolve(lookup func(string) (string, bool)) *Config {
	cfg := Default()

	if v, ok := lookup(EnvTheme); ok {
		if theme, err := ParseTheme(v); err == nil {
			cfg.Theme = theme
		} else {
			log.Printf("%s: %v", EnvTheme, err)
		}
	}

	if v, ok := lookup(EnvFontSize); ok {
		if size, err := ParseFontSize(v); err == nil {
			cfg.FontSize = size
		} else {
			log.Printf("%s: %v", EnvFontSize, err)
		}
	}

	if v, ok := lookup(EnvExportPath); ok && strings.TrimSpace(v) != "" {
		cfg.ExportPath = strings.TrimSpace(v)
	}

	if v, ok := lookup(EnvDelimiter); ok {
		if d, err := ParseDelimiter(v); err == nil {
			cfg.Delimiter = d
		} else {
			log.Printf("%s: %v", EnvDelimiter, err)
		}
	}

	if v, ok := lookup(EnvAudioEnabled); ok {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.AudioEnabled = b
		}
	}

	// Volume is 0-100 in the environment
	if v, ok := lookup(EnvVolume); ok {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Volume = float64(n) / 100.0
			if cfg.Volume < 0 {
				cfg.Volume = 0
			}
			if cfg.Volume > 1 {
				cfg.Volume = 1
			}
		}
	}

	if v, ok := lookup(EnvLogFile); ok {
		cfg.LogFile = v
	}

	return cfg
}

// ParseTheme accepts "light" or "dark" in any case
func ParseTheme(s string) (Theme, error) {
	switch Theme(strings.ToLower(strings.TrimSpace(s))) {
	case ThemeLight:
		return ThemeLight, nil
	case ThemeDark:
		return ThemeDark, nil
	}
	return "", fmt.Errorf("unknown theme %q", s)
}

// ParseFontSize accepts a point size (8, 10, 14) or small/medium/large
func ParseFontSize(s string) (FontSize, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "8", "small":
		return FontSmall, nil
	case "10", "medium":
		return FontMedium, nil
	case "14", "large":
		return FontLarge, nil
	}
	return 0, fmt.Errorf("unsupported font size %q", s)
}

// ParseDelimiter accepts a single character or the word "tab"
func ParseDelimiter(s string) (rune, error) {
	switch strings.ToLower(s) {
	case "tab", `\t`, "\t":
		return '\t', nil
	case ",", ";", "|":
		return rune(s[0]), nil
	}
	return 0, fmt.Errorf("unsupported delimiter %q", s)
}

// Toggle returns the other theme
func (t Theme) Toggle() Theme {
	if t == ThemeDark {
		return ThemeLight
	}
	return ThemeDark
}

// String names the size the way the View menu does
func (f FontSize) String() string {
	switch f {
	case FontSmall:
		return "Small"
	case FontMedium:
		return "Medium"
	case FontLarge:
		return "Large"
	}
	return strconv.Itoa(int(f))
}
