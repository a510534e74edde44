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

package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bufbuild/stylechecker/check"
	"github.com/bufbuild/stylechecker/internal/config"
)

func TestLoad(t *testing.T) {
	t.Parallel()

	tests := []struct {
		file string
		want *config.Config
		err  string
	}{
		{
			file: "full.yaml",
			want: &config.Config{
				Checks:         []string{"acronyms", "hyphenations"},
				Files:          []string{"chapters/**/*.tex"},
				OutDir:         "build",
				Jobs:           2,
				FailOnWarnings: true,
			},
		},
		{
			file: "partial.toml",
			want: &config.Config{
				Checks: []string{"localization"},
				Files:  []string{"main.tex"},
				OutDir: ".",
			},
		},
		{file: "empty.yml", want: config.Default()},
		{file: "unknown-check.yaml", err: `unknown check "spelling"`},
		{file: "unknown-key.toml", err: `unknown key "check"`},
		{file: "unknown-key.yaml", err: "field outdir not found"},
		{file: "missing.yaml", err: "reading config"},
	}

	for _, test := range tests {
		t.Run(test.file, func(t *testing.T) {
			t.Parallel()
			cfg, err := config.Load(filepath.Join("testdata", test.file))
			if test.err != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), test.err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, test.want, cfg)
		})
	}
}

func TestLoadUnsupported(t *testing.T) {
	t.Parallel()

	_, err := config.Load(filepath.Join("testdata", "config.json"))
	assert.ErrorContains(t, err, "reading config")

	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte("{}"), 0o600))
	_, err = config.Load(path)
	assert.ErrorContains(t, err, `unsupported config format ".json"`)
}

func TestFind(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	_, ok := config.Find(dir)
	assert.False(t, ok)

	require.NoError(t, os.WriteFile(filepath.Join(dir, ".stylechecker.toml"), nil, 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".stylechecker.yml"), nil, 0o600))
	path, ok := config.Find(dir)
	assert.True(t, ok)
	assert.Equal(t, filepath.Join(dir, ".stylechecker.yml"), path)
}

func TestAnalyzers(t *testing.T) {
	t.Parallel()

	all, err := config.Default().Analyzers()
	require.NoError(t, err)
	assert.Equal(t, check.All(), all)

	cfg := &config.Config{Checks: []string{"localization", "hyphenations"}}
	some, err := cfg.Analyzers()
	require.NoError(t, err)
	// Checks always run in their canonical order.
	assert.Equal(t, []check.Analyzer{check.Hyphenation{}, check.Localization{}}, some)

	cfg.Checks = append(cfg.Checks, "grammar")
	_, err = cfg.Analyzers()
	assert.ErrorContains(t, err, `unknown check "grammar"`)
}
