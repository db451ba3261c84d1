// Package batch fans one operation out over a list of object keys and
// tallies per-key outcomes. Nothing is transactional: a failing key is
// reported and the rest still run.
package batch

import (
	"context"

	"golang.org/x/sync/errgroup"
)

type KeyError struct {
	Key     string `json:"key"`
	Message string `json:"message"`
}

type Result struct {
	Succeeded []string   `json:"succeeded"`
	Errors    []KeyError `json:"errors"`
}

// Run applies op to every key concurrently and reports per-key results in
// input order. op errors never cancel the remaining keys.
func Run(ctx context.Context, keys []string, op func(ctx context.Context, key string) error) Result {
	errs := make([]error, len(keys))

	g, gctx := errgroup.WithContext(ctx)
	for i, key := range keys {
		g.Go(func() error {
			errs[i] = op(gctx, key)
			return nil // per-key failures are tallied, not propagated
		})
	}
	_ = g.Wait()

	result := Result{Succeeded: []string{}, Errors: []KeyError{}}
	for i, key := range keys {
		if errs[i] != nil {
			result.Errors = append(result.Errors, KeyError{Key: key, Message: errs[i].Error()})
		} else {
			result.Succeeded = append(result.Succeeded, key)
		}
	}
	return result
}
