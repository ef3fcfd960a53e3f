package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"slices"

	"github.com/Mavwarf/tabicons/internal/icon"
	"github.com/Mavwarf/tabicons/internal/paths"
	"github.com/caarlos0/env/v11"
)

// Icon is one icon to generate: an output file name and a square pixel size.
type Icon struct {
	File string `json:"file"`
	Size int    `json:"size"`
}

// FancyIcons is the built-in table for the gradient variant.
var FancyIcons = []Icon{
	{"icon-16.png", 16},   // toolbar
	{"icon-32.png", 32},   // toolbar @2x
	{"icon-48.png", 48},   // extension management
	{"icon-96.png", 96},   // extension management @2x
	{"icon-128.png", 128}, // add-ons site
}

// SimpleIcons is the built-in table for the flat placeholder variant.
var SimpleIcons = []Icon{
	{"icon-48.png", 48},
	{"icon-96.png", 96},
}

// Config holds the output directory, logging switches and icon tables.
type Config struct {
	OutDir  string `json:"out_dir,omitempty"`
	Log     bool   `json:"log,omitempty"`
	Verbose bool   `json:"verbose,omitempty"`
	Fancy   []Icon `json:"fancy,omitempty"`
	Simple  []Icon `json:"simple,omitempty"`
}

// Env holds environment overrides. Boolean switches can only turn
// features on.
type Env struct {
	OutDir  string `env:"TABICONS_OUT_DIR"`
	Log     bool   `env:"TABICONS_LOG"`
	Verbose bool   `env:"TABICONS_VERBOSE"`
}

// Default returns the built-in configuration: both tables, written to the
// current directory, with logging off.
func Default() Config {
	return Config{
		Fancy:  slices.Clone(FancyIcons),
		Simple: slices.Clone(SimpleIcons),
	}
}

// UnmarshalJSON sets defaults then decodes the JSON structure.
// Go's json.Unmarshal merges into existing struct fields, so only
// values present in JSON override the defaults.
func (c *Config) UnmarshalJSON(data []byte) error {
	*c = Default()
	type Alias Config
	return json.Unmarshal(data, (*Alias)(c))
}

// Icons returns the table for variant v.
func (c Config) Icons(v icon.Variant) []Icon {
	if v == icon.Simple {
		return c.Simple
	}
	return c.Fancy
}

// Validate checks both icon tables.
func (c Config) Validate() error {
	if err := validateTable("fancy", c.Fancy); err != nil {
		return err
	}
	return validateTable("simple", c.Simple)
}

func validateTable(name string, icons []Icon) error {
	if len(icons) == 0 {
		return fmt.Errorf("%s: no icons configured", name)
	}
	seen := make(map[string]bool, len(icons))
	for i, ic := range icons {
		if ic.File == "" {
			return fmt.Errorf("%s[%d]: missing file name", name, i)
		}
		if ic.Size <= 0 {
			return fmt.Errorf("%s[%d] %s: size must be positive, got %d", name, i, ic.File, ic.Size)
		}
		if seen[ic.File] {
			return fmt.Errorf("%s[%d]: duplicate file name %q", name, i, ic.File)
		}
		seen[ic.File] = true
	}
	return nil
}

// Load reads the config file and applies environment overrides. It tries,
// in order:
//  1. explicitPath (if non-empty)
//  2. tabicons-config.json next to the running binary
//  3. ~/.config/tabicons/tabicons-config.json
//
// If no file is found the built-in defaults are used.
func Load(explicitPath string) (Config, error) {
	cfg, err := loadFile(explicitPath)
	if err != nil {
		return Config{}, err
	}
	if err := ApplyEnv(&cfg, env.Options{}); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func loadFile(explicitPath string) (Config, error) {
	if explicitPath != "" {
		return readConfig(explicitPath)
	}

	// Next to binary
	exe, err := os.Executable()
	if err == nil {
		p := filepath.Join(filepath.Dir(exe), paths.ConfigFileName)
		if _, err := os.Stat(p); err == nil {
			return readConfig(p)
		}
	}

	// User config directory
	home, err := os.UserHomeDir()
	if err == nil {
		var p string
		if runtime.GOOS == "windows" {
			p = filepath.Join(home, "AppData", "Roaming", paths.AppDirName, paths.ConfigFileName)
		} else {
			p = filepath.Join(home, ".config", paths.AppDirName, paths.ConfigFileName)
		}
		if _, err := os.Stat(p); err == nil {
			return readConfig(p)
		}
	}

	return Default(), nil
}

// ApplyEnv overlays TABICONS_* environment variables onto cfg. opts is
// passed through to env.ParseWithOptions; tests set opts.Environment.
func ApplyEnv(cfg *Config, opts env.Options) error {
	var e Env
	if err := env.ParseWithOptions(&e, opts); err != nil {
		return fmt.Errorf("reading environment: %w", err)
	}
	if e.OutDir != "" {
		cfg.OutDir = e.OutDir
	}
	cfg.Log = cfg.Log || e.Log
	cfg.Verbose = cfg.Verbose || e.Verbose
	return nil
}

func readConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("reading config: %w", err)
	}
	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing config %s: %w", path, err)
	}
	return cfg, nil
}
