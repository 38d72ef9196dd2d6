// Package batch decodes directories of layer-group files concurrently.
package batch

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/MalekBael/FFXIV-LGB-Parser/pkg/lgb"
)

// Result is the outcome of decoding one file. Exactly one of Group and
// Err is set; Warnings counts recoverable defects on a successful decode.
type Result struct {
	Path     string
	Group    *lgb.LGB
	Warnings int
	Err      error
}

// Runner decodes every matching file under a root directory.
type Runner struct {
	Workers int    // concurrent decodes, 0 = NumCPU
	Pattern string // glob matched against base names, "" = "*.lgb"
	Options lgb.Options
}

// Run walks root, decodes every file whose base name matches the
// pattern, and returns results sorted by path. Individual decode
// failures land in their Result; only walk errors and cancellation
// abort the whole run.
func (r *Runner) Run(ctx context.Context, root string) ([]Result, error) {
	paths, err := r.collect(root)
	if err != nil {
		return nil, err
	}

	workers := r.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	var mu sync.Mutex
	results := make([]Result, 0, len(paths))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for _, path := range paths {
		path := path
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			res := decodeOne(ctx, path, r.Options)
			mu.Lock()
			results = append(results, res)
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	sort.Slice(results, func(i, j int) bool { return results[i].Path < results[j].Path })
	return results, nil
}

// collect gathers matching file paths under root.
func (r *Runner) collect(root string) ([]string, error) {
	pattern := r.Pattern
	if pattern == "" {
		pattern = "*.lgb"
	}

	var paths []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		ok, err := filepath.Match(pattern, d.Name())
		if err != nil {
			return fmt.Errorf("bad pattern %q: %w", pattern, err)
		}
		if ok {
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking %s: %w", root, err)
	}
	return paths, nil
}

func decodeOne(ctx context.Context, path string, opts lgb.Options) Result {
	data, err := os.ReadFile(path)
	if err != nil {
		return Result{Path: path, Err: fmt.Errorf("reading file: %w", err)}
	}

	group, err := lgb.ParseLGBWithOptions(ctx, data, opts)
	if err != nil {
		return Result{Path: path, Err: err}
	}
	return Result{Path: path, Group: group, Warnings: len(group.Warnings)}
}

// Summarize folds a result list into totals.
func Summarize(results []Result) (decoded, failed, warnings int) {
	for _, res := range results {
		if res.Err != nil {
			failed++
			continue
		}
		decoded++
		warnings += res.Warnings
	}
	return decoded, failed, warnings
}
