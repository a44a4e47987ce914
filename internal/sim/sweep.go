package sim

import (
	"context"
	"fmt"
	"runtime"

	"github.com/san-kum/diatomic/internal/dynamo"
	"github.com/san-kum/diatomic/internal/metrics"
	"golang.org/x/sync/errgroup"
)

// Sweep runs every parameter set on its own Simulator with the default
// metrics, in parallel, and returns the results in input order. The first
// failure cancels runs that have not started yet.
func Sweep(ctx context.Context, params []dynamo.Params, opts ...Option) ([]*dynamo.Result, error) {
	results := make([]*dynamo.Result, len(params))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))

	for i, p := range params {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			s := New(opts...)
			for _, m := range metrics.Defaults() {
				s.AddMetric(m)
			}

			res, err := s.Run(p)
			if err != nil {
				return fmt.Errorf("run %d (%s/%s): %w", i, p.Model(), p.Element(), err)
			}
			results[i] = res
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
