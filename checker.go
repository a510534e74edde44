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

package stylechecker

import (
	"context"
	"io"
	"log/slog"
	"runtime"
	"slices"
	"sync"

	"github.com/cockroachdb/errors"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"

	"github.com/bufbuild/stylechecker/check"
	"github.com/bufbuild/stylechecker/internal/ext/iterx"
	"github.com/bufbuild/stylechecker/internal/ext/stringsx"
	"github.com/bufbuild/stylechecker/reporter"
	"github.com/bufbuild/stylechecker/textree"
)

// Checker parses LaTeX documents and runs style checks over them.
type Checker struct {
	// Resolves file names into LaTeX source or already-parsed trees. This is
	// the only required field.
	Resolver Resolver
	// The maximum parallelism to use when parsing and checking. If unspecified
	// or set to a non-positive value, then min(runtime.NumCPU(),
	// runtime.GOMAXPROCS(-1)) will be used.
	MaxParallelism int
	// A custom error and warning reporter. If unspecified a default reporter
	// is used. A default reporter fails the run after encountering any
	// malformed document and ignores all warnings.
	//
	// A reporter that returns nil from its error callback causes malformed
	// documents to be skipped. The remaining documents are still checked, and
	// the run ends with reporter.ErrInvalidDocument.
	Reporter reporter.Reporter
	// Receives debug logs about parsing and checking. If nil, nothing is
	// logged.
	Logger *slog.Logger
}

// Run parses files and runs every analyzer over the resulting trees. If
// analyzers is empty, all known checks are run.
//
// Results are returned in the order of analyzers. Each finding is delivered
// to the Reporter as a warning, in the same order.
func (c *Checker) Run(ctx context.Context, analyzers []check.Analyzer, files ...string) ([]*check.Result, error) {
	if len(analyzers) == 0 {
		analyzers = check.All()
	}

	h := reporter.NewHandler(c.Reporter)
	trees, err := c.parse(ctx, h, files)
	if err != nil {
		return nil, err
	}

	results := make([]*check.Result, len(analyzers))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(c.parallelism())
	for i, a := range analyzers {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results[i] = a.Analyze(trees)
			c.logger().DebugContext(gctx, "check complete",
				slog.String("check", a.Name()),
				slog.Int("findings", len(results[i].Findings)))
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	for _, res := range results {
		for _, f := range res.Findings {
			h.HandleWarning(f.Pos, errors.Newf("%s: %s", res.Name, f.Message))
		}
	}
	return results, h.Error()
}

// Parse resolves and parses the given files, returning one tree per file in
// the same order.
//
// If the Reporter tolerates a malformed document, that document is left out
// of the returned trees and the error is reporter.ErrInvalidDocument.
func (c *Checker) Parse(ctx context.Context, files ...string) ([]*textree.Tree, error) {
	h := reporter.NewHandler(c.Reporter)
	trees, err := c.parse(ctx, h, files)
	if err != nil {
		return nil, err
	}
	return trees, h.Error()
}

func (c *Checker) parse(ctx context.Context, h *reporter.Handler, files []string) ([]*textree.Tree, error) {
	if len(files) == 0 {
		return nil, nil
	}
	if c.Resolver == nil {
		return nil, errors.New("stylechecker: Checker.Resolver is required")
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	e := executor{
		c:       c,
		h:       h,
		s:       semaphore.NewWeighted(int64(c.parallelism())),
		results: map[string]*result{},
	}

	results := make([]*result, len(files))
	for i, f := range files {
		results[i] = e.parse(ctx, f)
	}

	for _, r := range results {
		select {
		case <-r.ready:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
		if r.err != nil {
			return nil, r.err
		}
	}

	return slices.Collect(iterx.FilterMap(slices.Values(results), func(r *result) (*textree.Tree, bool) {
		return r.tree, r.tree != nil
	})), nil
}

func (c *Checker) parallelism() int {
	if c.MaxParallelism > 0 {
		return c.MaxParallelism
	}
	return min(runtime.GOMAXPROCS(-1), runtime.NumCPU())
}

func (c *Checker) logger() *slog.Logger {
	if c.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return c.Logger
}

type result struct {
	ready chan struct{}
	// nil if the document was malformed and skipped.
	tree *textree.Tree
	err  error
}

func (r *result) fail(err error) {
	r.err = err
	close(r.ready)
}

func (r *result) complete(tree *textree.Tree) {
	r.tree = tree
	close(r.ready)
}

type executor struct {
	c *Checker
	h *reporter.Handler
	s *semaphore.Weighted

	mu      sync.Mutex
	results map[string]*result
}

func (e *executor) parse(ctx context.Context, file string) *result {
	e.mu.Lock()
	defer e.mu.Unlock()
	r := e.results[file]
	if r != nil {
		return r
	}

	r = &result{
		ready: make(chan struct{}),
	}
	e.results[file] = r
	go func() {
		e.doParse(ctx, file, r)
	}()
	return r
}

func (e *executor) doParse(ctx context.Context, file string, r *result) {
	if err := e.s.Acquire(ctx, 1); err != nil {
		r.fail(err)
		return
	}
	defer e.s.Release(1)

	sr, err := e.c.Resolver.FindFileByPath(file)
	if err != nil {
		r.fail(e.h.HandleError(errors.Wrapf(err, "resolving %s", file)))
		return
	}
	if sr.Tree != nil {
		r.complete(sr.Tree)
		return
	}

	defer func() {
		// if results included a result, don't leave it open if it can be closed
		if sr.Source == nil {
			return
		}
		if c, ok := sr.Source.(io.Closer); ok {
			_ = c.Close()
		}
	}()

	if sr.Source == nil {
		r.fail(e.h.HandleError(errors.Newf("resolver returned no source for %s", file)))
		return
	}
	data, err := io.ReadAll(sr.Source)
	if err != nil {
		r.fail(e.h.HandleError(errors.Wrapf(err, "reading %s", file)))
		return
	}

	tree, err := textree.Parse(file, stringsx.TrimBOM(string(data)))
	if err != nil {
		if err := e.h.HandleError(err); err != nil {
			r.fail(err)
			return
		}
		e.c.logger().DebugContext(ctx, "skipping malformed document",
			slog.String("file", file), slog.Any("error", err))
		r.complete(nil)
		return
	}
	e.c.logger().DebugContext(ctx, "parsed document",
		slog.String("file", file), slog.Int("nodes", tree.Len()))
	r.complete(tree)
}
