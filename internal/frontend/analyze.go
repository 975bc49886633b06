package frontend

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// AnalyzeFunc populates and analyzes one unit. It runs on exactly one
// goroutine; everything reachable through ctx is private to that unit.
type AnalyzeFunc func(ctx context.Context, unit *Context) error

// AnalyzeUnits runs fn across units concurrently, at most jobs at a
// time (jobs <= 0 means GOMAXPROCS). Diagnostics stay inside each
// unit's bag; the returned error is the first hard failure, and a
// cancelled context stops unstarted units.
func AnalyzeUnits(ctx context.Context, units []*Context, jobs int, fn AnalyzeFunc) error {
	if len(units) == 0 {
		return nil
	}
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}
	if jobs > len(units) {
		jobs = len(units)
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(jobs)
	for _, unit := range units {
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}
			return fn(gctx, unit)
		})
	}
	return g.Wait()
}
