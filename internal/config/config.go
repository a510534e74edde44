// Copyright 2020-2025 Buf Technologies, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package config loads stylechecker settings from a YAML or TOML file.
package config

import (
	"bytes"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/cockroachdb/errors"
	"gopkg.in/yaml.v3"

	"github.com/bufbuild/stylechecker/check"
	"github.com/bufbuild/stylechecker/internal/ext/iterx"
)

// FileNames are the names Find looks for, in order of preference.
var FileNames = []string{".stylechecker.yaml", ".stylechecker.yml", ".stylechecker.toml"}

// Config holds the settings of a stylechecker run.
type Config struct {
	// Names of the checks to run. Empty means all of them.
	Checks []string `yaml:"checks" toml:"checks"`
	// Documents to check. Entries may be doublestar globs.
	Files []string `yaml:"files" toml:"files"`
	// Directory that receives the .list and .warnings files.
	OutDir string `yaml:"out_dir" toml:"out_dir"`
	// Maximum parallelism. Zero picks a default from the CPU count.
	Jobs int `yaml:"jobs" toml:"jobs"`
	// Exit with a failure status if any check produced warnings.
	FailOnWarnings bool `yaml:"fail_on_warnings" toml:"fail_on_warnings"`
}

// Default returns the configuration used when no file is found.
func Default() *Config {
	cfg := new(Config)
	cfg.applyDefaults()
	return cfg
}

// Load reads the configuration file at path. The format is chosen by
// extension: .yaml and .yml are YAML, .toml is TOML. Unknown keys are
// rejected.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "reading config")
	}

	var cfg Config
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		// An empty document decodes to io.EOF; that is a valid, empty config.
		if err := dec.Decode(&cfg); err != nil && len(bytes.TrimSpace(data)) > 0 {
			return nil, errors.Wrapf(err, "parsing %s", path)
		}
	case ".toml":
		md, err := toml.Decode(string(data), &cfg)
		if err != nil {
			return nil, errors.Wrapf(err, "parsing %s", path)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return nil, errors.Newf("parsing %s: unknown key %q", path, undecoded[0].String())
		}
	default:
		return nil, errors.Newf("unsupported config format %q", ext)
	}

	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrapf(err, "invalid config %s", path)
	}
	cfg.applyDefaults()
	return &cfg, nil
}

// Find returns the path of the first config file in dir, if any.
func Find(dir string) (string, bool) {
	paths := iterx.Map(slices.Values(FileNames), func(name string) string {
		return filepath.Join(dir, name)
	})
	return iterx.First(iterx.Filter(paths, func(path string) bool {
		info, err := os.Stat(path)
		return err == nil && !info.IsDir()
	}))
}

// Validate checks that every named check exists.
func (c *Config) Validate() error {
	for _, name := range c.Checks {
		if _, ok := check.Lookup(name); !ok {
			return errors.Newf("unknown check %q, expected one of %s",
				name, strings.Join(check.Names(), ", "))
		}
	}
	if c.Jobs < 0 {
		return errors.Newf("jobs must not be negative, got %d", c.Jobs)
	}
	return nil
}

// Analyzers returns the checks named by c, or every check if none are.
func (c *Config) Analyzers() ([]check.Analyzer, error) {
	if len(c.Checks) == 0 {
		return check.All(), nil
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	var out []check.Analyzer
	for _, a := range check.All() {
		if slices.Contains(c.Checks, a.Name()) {
			out = append(out, a)
		}
	}
	return out, nil
}

func (c *Config) applyDefaults() {
	if c.OutDir == "" {
		c.OutDir = "."
	}
}
