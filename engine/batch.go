// SPDX-License-Identifier: MIT
package engine

import (
	"context"
	"log/slog"

	"golang.org/x/sync/errgroup"
)

// ComputeBatch evaluates independent input sets concurrently, at most
// WithParallelism of them at a time. results[i] and errs[i] belong to
// batch[i]. A failing item does not stop the others; cancelling ctx
// makes every item not yet started fail with ctx.Err().
func (e *Engine) ComputeBatch(ctx context.Context, batch []map[string]float64) ([]Result, []error) {
	results := make([]Result, len(batch))
	errs := make([]error, len(batch))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(e.opts.parallelism)
	for i := range batch {
		i := i
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				errs[i] = err

				return nil
			}
			results[i], errs[i] = e.Compute(batch[i])

			return nil
		})
	}
	_ = g.Wait() // per-item errors are captured in errs

	failed := 0
	for _, err := range errs {
		if err != nil {
			failed++
		}
	}
	e.opts.logger.Debug("batch computed", slog.Int("items", len(batch)), slog.Int("failed", failed))

	return results, errs
}
