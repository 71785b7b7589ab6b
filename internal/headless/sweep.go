package headless

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"sort"
	"sync"

	"falling-sand/internal/sims/sand"
)

// Sweep runs one sandbox per gravity value, each built from base and driven
// with opts. Runs are independent and spread over workers goroutines; every
// sandbox is stepped by a single goroutine. Results are sorted by gravity.
func Sweep(ctx context.Context, base sand.Config, gravities []float64, opts Options, workers int) ([]Result, error) {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	for _, g := range gravities {
		cfg := base
		cfg.Gravity = g
		if err := cfg.Validate(); err != nil {
			return nil, err
		}
	}

	jobs := make(chan float64)
	results := make(chan Result)
	errs := make(chan error, len(gravities))
	var wg sync.WaitGroup

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for g := range jobs {
				cfg := base
				cfg.Gravity = g
				res, err := Run(ctx, sand.New(cfg), opts)
				if err != nil {
					errs <- fmt.Errorf("gravity %g: %w", g, err)
					continue
				}
				results <- res
			}
		}()
	}

	go func() {
		wg.Wait()
		close(results)
		close(errs)
	}()

	go func() {
		defer close(jobs)
		for _, g := range gravities {
			select {
			case jobs <- g:
			case <-ctx.Done():
				return
			}
		}
	}()

	all := make([]Result, 0, len(gravities))
	for res := range results {
		all = append(all, res)
	}
	var joined []error
	for err := range errs {
		joined = append(joined, err)
	}
	if err := ctx.Err(); err != nil && len(joined) == 0 {
		joined = append(joined, err)
	}

	sort.Slice(all, func(i, j int) bool { return all[i].Gravity < all[j].Gravity })
	return all, errors.Join(joined...)
}
