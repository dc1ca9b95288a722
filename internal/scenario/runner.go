package scenario

import (
	"context"
	"path/filepath"
	"sort"

	"golang.org/x/sync/errgroup"
)

// RunAll loads and runs every scenario in paths concurrently, returning
// results in the same order as paths regardless of completion order.
// The first load/parse error (not a scenario op error, which is carried
// in its own Result.Err) is returned alongside the results; it does not
// stop the other scenarios, and ctx does not cancel them.
func RunAll(ctx context.Context, paths []string) ([]*Result, error) {
	results := make([]*Result, len(paths))
	g, _ := errgroup.WithContext(ctx)

	for i, p := range paths {
		i, p := i, p
		g.Go(func() error {
			sc, err := Load(p)
			if err != nil {
				results[i] = &Result{Path: p, Err: err}
				return err
			}
			res := sc.Run()
			res.Path = p
			results[i] = res
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return results, err
	}
	return results, nil
}

// Failures filters results down to the ones that did not pass, sorted by
// path for stable reporting.
func Failures(results []*Result) []*Result {
	out := make([]*Result, 0)
	for _, r := range results {
		if r == nil || !r.Passed || r.Err != nil {
			out = append(out, r)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Path < out[j].Path })
	return out
}

// DiscoverScenarios returns every *.toml file directly under dir.
func DiscoverScenarios(dir string) ([]string, error) {
	matches, err := filepath.Glob(filepath.Join(dir, "*.toml"))
	if err != nil {
		return nil, err
	}
	sort.Strings(matches)
	return matches, nil
}
