package upstream

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Gather runs the given fetches concurrently under one derived context.
// The first failure cancels every other in-flight call and is returned;
// callers get either all results or one normalized error. Dashboards use
// this to fire their 3-4 collection fetches at once.
func Gather(ctx context.Context, fns ...func(ctx context.Context) error) error {
	g, ctx := errgroup.WithContext(ctx)
	for _, fn := range fns {
		fn := fn
		g.Go(func() error {
			return fn(ctx)
		})
	}
	return g.Wait()
}
