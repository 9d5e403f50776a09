package setup

import (
	"context"

	"github.com/bornholm/shopvibe/internal/config"
	"github.com/bornholm/shopvibe/internal/ratelimit"
	"golang.org/x/time/rate"
)

var NewRateLimiterFromConfig = createFromConfigOnce(func(ctx context.Context, conf *config.Config) (*ratelimit.RateLimiter, error) {
	return ratelimit.New(rate.Limit(conf.HTTP.RateLimit.Rate), int(conf.HTTP.RateLimit.Burst)), nil
})
