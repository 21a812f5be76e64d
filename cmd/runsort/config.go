// Copyright 2025 go-highway Authors
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

package main

import (
	"errors"
	"fmt"
	"slices"

	"github.com/BurntSushi/toml"

	"github.com/ajroetker/go-runsort/internal/logutil"
)

var errInvalidConfig = errors.New("invalid config")

// Config is the runsort tool configuration. A TOML file may set any field;
// command-line flags override the file.
//
//	size = 100
//	seed = 42
//	trials = 5
//	workers = 4
//	sizes = [1000, 10000]
//	patterns = ["random", "reversed"]
//
//	[log]
//	level = "debug"
//	format = "json"
type Config struct {
	// Size is the number of values sorted by demo.
	Size int `toml:"size"`
	// Seed seeds the input generators; 0 picks a time-based seed.
	Seed int64 `toml:"seed"`
	// Trials is the number of runs per pattern and size in bench.
	Trials int `toml:"trials"`
	// Workers sizes the bench worker pool; 0 uses GOMAXPROCS.
	Workers  int      `toml:"workers"`
	Sizes    []int    `toml:"sizes"`
	Patterns []string `toml:"patterns"`

	Log logutil.LogConfig `toml:"log"`
}

// DefaultConfig mirrors the original demonstration: 100 values.
func DefaultConfig() Config {
	return Config{
		Size:     100,
		Trials:   5,
		Sizes:    []int{1000, 10000, 100000},
		Patterns: patternNames(),
		Log:      logutil.DefaultConfig(),
	}
}

// loadConfigFile overlays the TOML file at path onto cfg.
func loadConfigFile(path string, cfg *Config) error {
	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return fmt.Errorf("config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return fmt.Errorf("config %s: %w: unknown key %q", path, errInvalidConfig, undecoded[0].String())
	}
	return nil
}

// Validate checks ranges and pattern names.
func (c Config) Validate() error {
	if c.Size < 0 {
		return fmt.Errorf("%w: size %d < 0", errInvalidConfig, c.Size)
	}
	if c.Trials <= 0 {
		return fmt.Errorf("%w: trials %d <= 0", errInvalidConfig, c.Trials)
	}
	if c.Workers < 0 {
		return fmt.Errorf("%w: workers %d < 0", errInvalidConfig, c.Workers)
	}
	for _, n := range c.Sizes {
		if n < 0 {
			return fmt.Errorf("%w: size %d < 0", errInvalidConfig, n)
		}
	}
	for _, p := range c.Patterns {
		if !slices.Contains(patternNames(), p) {
			return fmt.Errorf("%w: unknown pattern %q (want one of %v)", errInvalidConfig, p, patternNames())
		}
	}
	return nil
}
