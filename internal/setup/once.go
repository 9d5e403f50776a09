package setup

import (
	"context"
	"sync"

	"github.com/bornholm/shopvibe/internal/config"
	"github.com/pkg/errors"
)

// createFromConfigOnce memoizes fn so that every caller shares the same
// instance for the lifetime of the process.
func createFromConfigOnce[T any](fn func(ctx context.Context, conf *config.Config) (T, error)) func(ctx context.Context, conf *config.Config) (T, error) {
	var (
		once  sync.Once
		value T
		err   error
	)

	return func(ctx context.Context, conf *config.Config) (T, error) {
		once.Do(func() {
			value, err = fn(ctx, conf)
		})
		if err != nil {
			var zero T
			return zero, errors.WithStack(err)
		}

		return value, nil
	}
}
