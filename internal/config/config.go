// Package config loads the optional harness configuration file.
//
// Everything has a sensible default; the file exists so the puzzle year
// or the cache location can be changed without rebuilding.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultPath is where Load looks for the configuration file.
const DefaultPath = ".data/config.yaml"

// Config holds the harness settings.
type Config struct {
	// Year selects the Advent of Code event used in download URLs.
	Year int `yaml:"year"`

	// BaseURL is the root of the puzzle input service.
	BaseURL string `yaml:"base_url"`

	// CacheDir is the directory holding cached inputs and fixtures.
	CacheDir string `yaml:"cache_dir"`

	// CookieFile is the file holding the session cookie value.
	CookieFile string `yaml:"cookie_file"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Year:       2019,
		BaseURL:    "https://adventofcode.com",
		CacheDir:   ".data",
		CookieFile: ".data/cookie.txt",
	}
}

// Load reads the configuration file at path and merges it over the
// defaults. A missing file is not an error; unknown keys are.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}

	var file Config
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&file); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}

	if file.Year != 0 {
		cfg.Year = file.Year
	}
	if file.BaseURL != "" {
		cfg.BaseURL = file.BaseURL
	}
	if file.CacheDir != "" {
		cfg.CacheDir = file.CacheDir
	}
	if file.CookieFile != "" {
		cfg.CookieFile = file.CookieFile
	}
	return cfg, nil
}
