// Copyright 2025 walteh LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package config

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/rs/zerolog"
	"github.com/walteh/slidefit/pkg/responsive"
	"gitlab.com/tozd/go/errors"
)

// 🔌 Parser is the interface for config parsers
type Parser interface {
	// 📝 Parse parses the config from bytes
	Parse(ctx context.Context, data []byte) (*Config, error)

	// 🔍 CanParse checks if this parser can handle the given file
	CanParse(filename string) bool
}

var (
	// 🗺️ parsers is a list of available parsers
	parsers []Parser
)

// 📝 Register registers a parser
func Register(p Parser) {
	parsers = append(parsers, p)
}

// 🎯 GetParser returns a parser that can handle the given file
func GetParser(filename string) Parser {
	for _, p := range parsers {
		if p.CanParse(filename) {
			return p
		}
	}
	return nil
}

// DefaultInclude matches the html files directly inside the working directory
const DefaultInclude = "*.html"

// 🔎 Candidates are the file names Discover looks for, in order
var Candidates = []string{
	".slidefit.yaml",
	".slidefit.yml",
	".slidefit.hcl",
	".slidefit.json",
	".slidefit.toml",
}

// 📐 Heading sets the font-size floor for one selector
type Heading struct {
	Selector string `json:"selector" yaml:"selector" toml:"selector"`
	Floor    int    `json:"floor" yaml:"floor" toml:"floor"`
}

// 📚 Config represents the complete configuration
type Config struct {
	Include         []string  `json:"include,omitempty" yaml:"include,omitempty" toml:"include,omitempty"`                            // Glob patterns for slide files
	Exclude         []string  `json:"exclude,omitempty" yaml:"exclude,omitempty" toml:"exclude,omitempty"`                            // Glob patterns to skip
	ReferenceWidth  int       `json:"reference_width,omitempty" yaml:"reference_width,omitempty" toml:"reference_width,omitempty"`    // Fixed slide width in px
	ReferenceHeight int       `json:"reference_height,omitempty" yaml:"reference_height,omitempty" toml:"reference_height,omitempty"` // Fixed slide height in px
	Atomic          *bool     `json:"atomic,omitempty" yaml:"atomic,omitempty" toml:"atomic,omitempty"`                               // Write through a temp file (default true)
	Headings        []Heading `json:"headings,omitempty" yaml:"headings,omitempty" toml:"headings,omitempty"`                         // Font-size floors, in order

	location string
}

// 🏭 Default returns the configuration used when no file is present
func Default() *Config {
	cfg := &Config{}
	if err := cfg.Validate(); err != nil {
		panic(fmt.Sprintf("default config is invalid: %v", err))
	}
	return cfg
}

// 🎯 Load loads the configuration from a file
func Load(ctx context.Context, path string) (*Config, error) {
	logger := zerolog.Ctx(ctx)
	logger.Debug().Str("path", path).Msg("loading configuration")

	// Read config file
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Errorf("reading config file: %w", err)
	}

	// Get parser
	p := GetParser(path)
	if p == nil {
		return nil, errors.Errorf("no parser found for file: %s", path)
	}

	// Parse config
	cfg, err := p.Parse(ctx, data)
	if err != nil {
		return nil, errors.Errorf("parsing config: %w", err)
	}

	// Validate
	if err := cfg.Validate(); err != nil {
		return nil, errors.Errorf("validating config: %w", err)
	}

	cfg.location = path
	return cfg, nil
}

// 🔍 Discover loads the first candidate file found in dir, or the defaults when there is none
func Discover(ctx context.Context, dir string) (*Config, error) {
	for _, name := range Candidates {
		path := filepath.Join(dir, name)
		info, err := os.Stat(path)
		if os.IsNotExist(err) {
			continue
		}
		if err != nil {
			return nil, errors.Errorf("checking %s: %w", path, err)
		}
		if info.IsDir() {
			continue
		}
		return Load(ctx, path)
	}

	zerolog.Ctx(ctx).Debug().Str("dir", dir).Msg("no configuration file found, using defaults")
	return Default(), nil
}

// 🔍 Validate fills in defaults and checks that the configuration is usable
func (cfg *Config) Validate() error {
	// Set defaults
	if len(cfg.Include) == 0 {
		cfg.Include = []string{DefaultInclude}
	}
	if cfg.ReferenceWidth == 0 {
		cfg.ReferenceWidth = 1920
	}
	if cfg.ReferenceHeight == 0 {
		cfg.ReferenceHeight = 1080
	}
	if cfg.Atomic == nil {
		atomic := true
		cfg.Atomic = &atomic
	}
	if cfg.Headings == nil {
		for _, h := range responsive.DefaultHeadings() {
			cfg.Headings = append(cfg.Headings, Heading{Selector: h.Selector, Floor: h.Floor})
		}
	}

	for _, pattern := range append(append([]string{}, cfg.Include...), cfg.Exclude...) {
		if !doublestar.ValidatePattern(pattern) {
			return errors.Errorf("invalid glob pattern %q", pattern)
		}
	}

	seen := make(map[string]bool, len(cfg.Headings))
	for i := range cfg.Headings {
		h := &cfg.Headings[i]
		h.Selector = strings.TrimSpace(h.Selector)
		if seen[h.Selector] {
			return errors.Errorf("heading %q is listed more than once", h.Selector)
		}
		seen[h.Selector] = true
	}

	if err := cfg.Options().Validate(); err != nil {
		return err
	}

	return nil
}

// Options converts the configuration into rewriter options
func (cfg *Config) Options() responsive.Options {
	headings := make([]responsive.HeadingFloor, 0, len(cfg.Headings))
	for _, h := range cfg.Headings {
		headings = append(headings, responsive.HeadingFloor{Selector: h.Selector, Floor: h.Floor})
	}
	return responsive.Options{
		ReferenceWidth:  cfg.ReferenceWidth,
		ReferenceHeight: cfg.ReferenceHeight,
		Headings:        headings,
	}
}

// AtomicWrites reports whether files are written through a temp file
func (cfg *Config) AtomicWrites() bool {
	return cfg.Atomic == nil || *cfg.Atomic
}

// Location returns the file the configuration was loaded from, or "" for defaults
func (cfg *Config) Location() string {
	return cfg.location
}

// 📝 String returns a string representation of the config
func (cfg *Config) String() string {
	source := cfg.location
	if source == "" {
		source = "defaults"
	}
	return fmt.Sprintf("%s (%dx%d) from %s", strings.Join(cfg.Include, ","), cfg.ReferenceWidth, cfg.ReferenceHeight, source)
}
