package storefront

import (
	"github.com/bornholm/shopvibe/internal/animation/htmx"
	"github.com/bornholm/shopvibe/internal/metrics"
	"github.com/bornholm/shopvibe/internal/ratelimit"
)

type Options struct {
	SessionName    string
	Brand          string
	AnimationEvent string
	Metrics        *metrics.Metrics
	RateLimit      float64
	RateBurst      int
	// RateLimiter, when set, takes precedence over RateLimit and RateBurst
	RateLimiter    *ratelimit.RateLimiter
}

type OptionFunc func(opts *Options)

func NewOptions(funcs ...OptionFunc) *Options {
	opts := &Options{
		SessionName:    "shopvibe_visitor",
		Brand:          "ShopVibe",
		AnimationEvent: htmx.DefaultEvent,
		Metrics:        nil,
		RateLimit:      20,
		RateBurst:      40,
	}

	for _, fn := range funcs {
		fn(opts)
	}

	return opts
}

func WithSessionName(name string) OptionFunc {
	return func(opts *Options) {
		opts.SessionName = name
	}
}

func WithBrand(brand string) OptionFunc {
	return func(opts *Options) {
		opts.Brand = brand
	}
}

func WithAnimationEvent(event string) OptionFunc {
	return func(opts *Options) {
		opts.AnimationEvent = event
	}
}

func WithMetrics(m *metrics.Metrics) OptionFunc {
	return func(opts *Options) {
		opts.Metrics = m
	}
}

func WithRateLimit(limit float64, burst int) OptionFunc {
	return func(opts *Options) {
		opts.RateLimit = limit
		opts.RateBurst = burst
	}
}

func WithRateLimiter(limiter *ratelimit.RateLimiter) OptionFunc {
	return func(opts *Options) {
		opts.RateLimiter = limiter
	}
}
