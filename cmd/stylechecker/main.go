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

// Command stylechecker checks LaTeX documents for inconsistent hyphenation,
// undefined acronyms and mixed US/UK spelling.
//
// For each check it writes <check>.list, and <check>.warnings if the check
// found problems, to the output directory. Every warning is also printed to
// stderr as
//
//	StyleChecker Warning: <file>:<line>: <check>: <message>
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"github.com/bufbuild/stylechecker"
	"github.com/bufbuild/stylechecker/internal/config"
	"github.com/bufbuild/stylechecker/reporter"
)

var errWarnings = errors.New("style warnings were reported")

func main() {
	if err := newRootCommand(os.Stdout, os.Stderr).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

type options struct {
	files          []string
	hyphenation    bool
	acronyms       bool
	localization   bool
	outDir         string
	jobs           int
	configPath     string
	failOnWarnings bool
	verbose        bool
}

func newRootCommand(stdout, stderr io.Writer) *cobra.Command {
	var opts options
	cmd := &cobra.Command{
		Use:   "stylechecker [flags] [file...]",
		Short: "Check LaTeX documents for consistent hyphenation, acronyms and spelling",
		Long: `Check LaTeX documents for consistent hyphenation, acronyms and spelling.

Files may be given as arguments or with --files, and may be doublestar globs
such as "chapters/**/*.tex". Without any, every .tex file under the working
directory is checked. Without any check flags, all checks run.`,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, &opts, args, stderr)
		},
	}

	flags := cmd.Flags()
	flags.StringSliceVarP(&opts.files, "files", "f", nil, "LaTeX files or globs to check")
	flags.BoolVar(&opts.hyphenation, "hyphenation", false, "Run the hyphenation check")
	flags.BoolVar(&opts.acronyms, "acronyms", false, "Run the acronym check")
	flags.BoolVar(&opts.localization, "localization", false, "Run the US/UK spelling check")
	flags.StringVarP(&opts.outDir, "out-dir", "o", ".", "Directory for .list and .warnings files")
	flags.IntVarP(&opts.jobs, "jobs", "j", 0, "Maximum parallelism (default: number of CPUs)")
	flags.StringVar(&opts.configPath, "config", "", "Config file (default: .stylechecker.{yaml,yml,toml} if present)")
	flags.BoolVar(&opts.failOnWarnings, "fail-on-warnings", false, "Exit with status 1 if any check reports warnings")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "Enable debug logging")

	cmd.AddCommand(newTreeCommand(stdout))
	return cmd
}

func newTreeCommand(stdout io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "tree <file>",
		Short: "Print the parsed structure of a LaTeX document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			checker := stylechecker.Checker{Resolver: &stylechecker.SourceResolver{}}
			trees, err := checker.Parse(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			_, err = fmt.Fprint(stdout, trees[0])
			return err
		},
	}
}

func run(cmd *cobra.Command, opts *options, args []string, stderr io.Writer) error {
	level := slog.LevelInfo
	if opts.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	cfg, err := loadConfig(opts.configPath)
	if err != nil {
		return err
	}
	if err := applyFlags(cmd, opts, args, cfg); err != nil {
		return err
	}
	analyzers, err := cfg.Analyzers()
	if err != nil {
		return err
	}

	files, err := expandFiles(cfg.Files)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return errors.New("no .tex files to check")
	}
	logger.Debug("checking documents", slog.Int("files", len(files)), slog.Any("checks", cfg.Checks))

	checker := stylechecker.Checker{
		Resolver:       &stylechecker.SourceResolver{},
		MaxParallelism: cfg.Jobs,
		Reporter: reporter.NewReporter(nil, func(w reporter.ErrorWithPos) {
			fmt.Fprintf(stderr, "StyleChecker Warning: %v\n", w)
		}),
		Logger: logger,
	}
	results, err := checker.Run(cmd.Context(), analyzers, files...)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(cfg.OutDir, 0o755); err != nil {
		return errors.Wrap(err, "creating output directory")
	}
	var warned bool
	for _, res := range results {
		if err := res.WriteFiles(cfg.OutDir); err != nil {
			return err
		}
		warned = warned || res.HasWarnings()
		logger.Debug("wrote check output",
			slog.String("check", res.Name),
			slog.String("dir", cfg.OutDir),
			slog.Bool("warnings", res.HasWarnings()))
	}

	if warned && cfg.FailOnWarnings {
		return errWarnings
	}
	return nil
}

func loadConfig(path string) (*config.Config, error) {
	if path != "" {
		return config.Load(path)
	}
	if found, ok := config.Find("."); ok {
		return config.Load(found)
	}
	return config.Default(), nil
}

// applyFlags overrides cfg with every flag set on the command line.
func applyFlags(cmd *cobra.Command, opts *options, args []string, cfg *config.Config) error {
	flags := cmd.Flags()
	if files := append(slices.Clone(opts.files), args...); len(files) > 0 {
		cfg.Files = files
	}

	var checks []string
	for _, flag := range []struct {
		name string
		on   bool
	}{
		{"hyphenations", opts.hyphenation},
		{"acronyms", opts.acronyms},
		{"localization", opts.localization},
	} {
		if flag.on {
			checks = append(checks, flag.name)
		}
	}
	if len(checks) > 0 {
		cfg.Checks = checks
	}

	if flags.Changed("out-dir") {
		cfg.OutDir = opts.outDir
	}
	if flags.Changed("jobs") {
		cfg.Jobs = opts.jobs
	}
	if flags.Changed("fail-on-warnings") {
		cfg.FailOnWarnings = opts.failOnWarnings
	}
	return cfg.Validate()
}

// expandFiles resolves globs in patterns. Plain paths are kept as given so
// that a missing file is reported when it is read. With no patterns, every
// .tex file under the working directory is returned.
func expandFiles(patterns []string) ([]string, error) {
	if len(patterns) == 0 {
		patterns = []string{"**/*.tex"}
	}

	var files []string
	for _, pattern := range patterns {
		if !strings.ContainsAny(pattern, "*?[{") {
			files = append(files, pattern)
			continue
		}
		matches, err := doublestar.FilepathGlob(pattern, doublestar.WithFilesOnly())
		if err != nil {
			return nil, errors.Wrapf(err, "expanding %q", pattern)
		}
		slices.Sort(matches)
		files = append(files, matches...)
	}

	seen := make(map[string]bool, len(files))
	return slices.DeleteFunc(files, func(f string) bool {
		f = filepath.Clean(f)
		if seen[f] {
			return true
		}
		seen[f] = true
		return false
	}), nil
}
