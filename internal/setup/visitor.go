package setup

import (
	"context"
	"time"

	"github.com/bornholm/shopvibe/internal/config"
	"github.com/bornholm/shopvibe/internal/navbar"
	"github.com/bornholm/shopvibe/internal/ratelimit"
	"github.com/bornholm/shopvibe/internal/storefront"
	"github.com/bornholm/shopvibe/internal/visitor"
	"github.com/pkg/errors"
)

var NewVisitorRegistryFromConfig = createFromConfigOnce(func(ctx context.Context, conf *config.Config) (*visitor.Registry, error) {
	catalogue, err := NewCatalogueFromConfig(ctx, conf)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	animator, err := NewAnimatorFromConfig(ctx, conf)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	limiter, err := NewRateLimiterFromConfig(ctx, conf)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	brand := string(conf.Storefront.Brand)
	cartCount := int(conf.Storefront.CartCount)

	registry := visitor.NewRegistry(func() *navbar.Navbar {
		return navbar.New(
			catalogue,
			navbar.WithAnimator(animator),
			navbar.WithBrand(brand),
			navbar.WithCartCount(cartCount),
		)
	}, visitor.WithOnEvict(forgetRateLimit(limiter)))

	return registry, nil
})

// forgetRateLimit drops the rate limiter bucket of evicted visitors.
func forgetRateLimit(limiter *ratelimit.RateLimiter) visitor.EvictFunc {
	return func(visitorID string) {
		limiter.Forget(storefront.VisitorRateLimitKey(visitorID))
	}
}

// RunVisitorSweeper evicts idle visitors until ctx is done.
func RunVisitorSweeper(ctx context.Context, conf *config.Config) error {
	registry, err := NewVisitorRegistryFromConfig(ctx, conf)
	if err != nil {
		return errors.WithStack(err)
	}

	interval := time.Minute
	if conf.Visitors.SweepInterval != nil {
		interval = time.Duration(*conf.Visitors.SweepInterval)
	}

	idleTimeout := 30 * time.Minute
	if conf.Visitors.IdleTimeout != nil {
		idleTimeout = time.Duration(*conf.Visitors.IdleTimeout)
	}

	registry.Run(ctx, interval, idleTimeout)

	return nil
}
