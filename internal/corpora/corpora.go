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

// Package corpora runs golden-file tests over a directory of LaTeX fixtures.
//
// Each fixture foo.tex has one expected-output file per [Output], named
// foo.tex.<extension>. A missing expected-output file means the output is
// expected to be empty.
package corpora

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/cockroachdb/errors"
	"github.com/pmezard/go-difflib/difflib"
)

// Corpus describes a directory of test fixtures.
type Corpus struct {
	// Root is the fixture directory, relative to the test file that calls
	// [Corpus.Run].
	Root string

	// Refresh names an environment variable holding a doublestar glob. Fixtures
	// whose names match it have their expected outputs rewritten instead of
	// checked.
	Refresh string

	// Extension of fixture files, without the dot.
	Extension string
	Outputs   []Output

	// Test runs one fixture. name is the fixture's path relative to the test
	// file's directory. It returns one string per element of Outputs.
	Test func(t *testing.T, name, text string) []string
}

// Output is one expected-output file of a fixture.
type Output struct {
	Extension string
	// Compare may be nil, in which case outputs must match byte-for-byte.
	Compare Compare
}

// Compare returns an empty string if got matches want, and a description of
// the difference otherwise.
type Compare func(got, want string) string

// Run executes every fixture as a subtest.
func (c Corpus) Run(t *testing.T) {
	testDir := callerDir(0)
	root := filepath.Join(testDir, c.Root)

	var fixtures []string
	err := filepath.WalkDir(root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.TrimPrefix(filepath.Ext(p), ".") == c.Extension {
			fixtures = append(fixtures, p)
		}
		return nil
	})
	if err != nil {
		t.Fatal("corpora: error while walking fixtures:", err)
	}
	if len(fixtures) == 0 {
		t.Fatalf("corpora: no .%s fixtures under %q", c.Extension, root)
	}

	var refresh string
	if c.Refresh != "" {
		refresh = os.Getenv(c.Refresh)
		if refresh != "" && !doublestar.ValidatePattern(refresh) {
			t.Fatalf("corpora: invalid glob in %s: %q", c.Refresh, refresh)
		}
	}
	if refresh != "" {
		t.Logf("corpora: refreshing outputs because %s=%s", c.Refresh, refresh)
		t.Fail()
	}

	for _, path := range fixtures {
		name, _ := filepath.Rel(testDir, path)
		name = filepath.ToSlash(name)
		t.Run(name, func(t *testing.T) {
			text, err := os.ReadFile(path)
			if err != nil {
				t.Fatalf("corpora: error while loading fixture %q: %v", path, err)
			}
			results := c.Test(t, name, string(text))
			if len(results) != len(c.Outputs) {
				t.Fatalf("corpora: got %d outputs, want %d", len(results), len(c.Outputs))
			}

			doRefresh := refresh != "" && doublestar.MatchUnvalidated(refresh, name)
			for i, output := range c.Outputs {
				outPath := fmt.Sprint(path, ".", output.Extension)
				if doRefresh {
					if err := rewrite(outPath, results[i]); err != nil {
						t.Error(err)
					}
					continue
				}

				want, err := os.ReadFile(outPath)
				if err != nil && !errors.Is(err, os.ErrNotExist) {
					t.Errorf("corpora: error while loading output %q: %v", outPath, err)
					continue
				}
				compare := output.Compare
				if compare == nil {
					compare = defaultCompare
				}
				if diff := compare(results[i], string(want)); diff != "" {
					t.Errorf("output mismatch for %q:\n%s", outPath, diff)
				}
			}
		})
	}
}

// rewrite replaces an expected-output file, deleting it if the output is
// empty.
func rewrite(path, content string) error {
	if content == "" {
		if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
			return errors.Wrapf(err, "corpora: deleting %q", path)
		}
		return nil
	}
	return errors.Wrapf(os.WriteFile(path, []byte(content), 0o644), "corpora: writing %q", path)
}

func defaultCompare(got, want string) string {
	if got == want {
		return ""
	}

	diff, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(want),
		B:        difflib.SplitLines(got),
		FromFile: "want",
		ToFile:   "got",
		Context:  2,
	})
	if err != nil {
		return err.Error()
	}
	return diff
}

func callerDir(skip int) string {
	_, file, _, ok := runtime.Caller(skip + 2)
	if !ok {
		panic("corpora: could not determine test file's directory")
	}
	return filepath.Dir(file)
}
