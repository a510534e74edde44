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

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bufbuild/stylechecker/internal/config"
)

func writeDocs(t *testing.T, dir string) (intro, method string) {
	t.Helper()
	intro = filepath.Join(dir, "intro.tex")
	method = filepath.Join(dir, "method.tex")
	require.NoError(t, os.WriteFile(intro, []byte("\\section{Intro}\n\nSome text.\nbricks with blocks\n"), 0o600))
	require.NoError(t, os.WriteFile(method, []byte("We build bricks-with-blocks.\n"), 0o600))
	return intro, method
}

func execute(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := newRootCommand(&out, &errOut)
	cmd.SetArgs(args)
	err = cmd.Execute()
	return out.String(), errOut.String(), err
}

func TestRun(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	intro, method := writeDocs(t, dir)
	out := filepath.Join(dir, "out")

	_, stderr, err := execute(t, "--hyphenation", "-o", out, "-f", intro, method)
	require.NoError(t, err)

	list, err := os.ReadFile(filepath.Join(out, "hyphenations.list"))
	require.NoError(t, err)
	assert.Equal(t, "Hyphenated words appearing in this document:\nbricks-with-blocks appears 1 time", string(list))
	assert.FileExists(t, filepath.Join(out, "hyphenations.warnings"))
	assert.NoFileExists(t, filepath.Join(out, "acronyms.list"))

	assert.Contains(t, stderr, "StyleChecker Warning: "+intro+`:4: hyphenations: "bricks-with-blocks" also appears as "bricks with blocks"`)
}

func TestFailOnWarnings(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	intro, method := writeDocs(t, dir)

	_, _, err := execute(t, "--fail-on-warnings", "-o", dir, intro, method)
	require.ErrorIs(t, err, errWarnings)
	for _, name := range []string{"hyphenations", "acronyms", "localization"} {
		assert.FileExists(t, filepath.Join(dir, name+".list"))
	}

	_, _, err = execute(t, "--fail-on-warnings", "--acronyms", "-o", dir, intro, method)
	require.NoError(t, err)
}

func TestConfigFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	intro, _ := writeDocs(t, dir)
	out := filepath.Join(dir, "build")
	cfg := filepath.Join(dir, "stylechecker.toml")
	require.NoError(t, os.WriteFile(cfg, []byte(
		"checks = [\"localization\"]\nout_dir = \""+filepath.ToSlash(out)+"\"\n"), 0o600))

	_, _, err := execute(t, "--config", cfg, intro)
	require.NoError(t, err)
	assert.FileExists(t, filepath.Join(out, "localization.list"))
	assert.NoFileExists(t, filepath.Join(out, "hyphenations.list"))

	require.NoError(t, os.WriteFile(cfg, []byte("checks = [\"grammar\"]\n"), 0o600))
	_, _, err = execute(t, "--config", cfg, intro)
	assert.ErrorContains(t, err, `unknown check "grammar"`)
}

func TestMalformedDocument(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	broken := filepath.Join(dir, "broken.tex")
	require.NoError(t, os.WriteFile(broken, []byte("\\begin{document\n"), 0o600))

	_, _, err := execute(t, "-o", dir, broken)
	assert.ErrorContains(t, err, "'{' opened on line 1 is never closed")
	assert.NoFileExists(t, filepath.Join(dir, "hyphenations.list"))
}

func TestDiscovery(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "chapters", "one"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "chapters", "one", "a.tex"), []byte("The colour.\n"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("The color.\n"), 0o600))
	t.Chdir(dir)

	_, _, err := execute(t, "--localization", "-o", "out")
	require.NoError(t, err)
	list, err := os.ReadFile(filepath.Join(dir, "out", "localization.list"))
	require.NoError(t, err)
	assert.Contains(t, string(list), `In `+filepath.Join("chapters", "one", "a.tex")+`, line 1 the spellings: "colour" appear`)

	empty := t.TempDir()
	t.Chdir(empty)
	_, _, err = execute(t)
	assert.ErrorContains(t, err, "no .tex files to check")
}

func TestTree(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "doc.tex")
	require.NoError(t, os.WriteFile(path, []byte("\\section{Intro}\nSome text.\n"), 0o600))

	stdout, _, err := execute(t, "tree", path)
	require.NoError(t, err)
	assert.Equal(t, "├── Command (1): \\section\n│   └── Text (1): Intro\n└── Text (2): Some text.\n", stdout)
}

func TestApplyFlagsCheckOrder(t *testing.T) {
	t.Parallel()

	opts := &options{hyphenation: true, acronyms: true, localization: true}
	for range 20 {
		cfg := config.Default()
		require.NoError(t, applyFlags(&cobra.Command{}, opts, nil, cfg))
		assert.Equal(t, []string{"hyphenations", "acronyms", "localization"}, cfg.Checks)
	}

	cfg := config.Default()
	require.NoError(t, applyFlags(&cobra.Command{}, &options{localization: true, acronyms: true}, []string{"a.tex"}, cfg))
	assert.Equal(t, []string{"acronyms", "localization"}, cfg.Checks)
	assert.Equal(t, []string{"a.tex"}, cfg.Files)
}
