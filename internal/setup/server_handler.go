package setup

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/bornholm/shopvibe/internal/config"
	"github.com/bornholm/shopvibe/internal/metrics"
	"github.com/bornholm/shopvibe/internal/pprof"
	"github.com/bornholm/shopvibe/internal/storefront"
	"github.com/bornholm/shopvibe/internal/ui"
	"github.com/pkg/errors"

	sloghttp "github.com/samber/slog-http"
)

func NewHandlerFromConfig(ctx context.Context, conf *config.Config) (http.Handler, error) {
	mux := &http.ServeMux{}

	slogMiddleware := sloghttp.New(slog.Default())

	catalogue, err := NewCatalogueFromConfig(ctx, conf)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	registry, err := NewVisitorRegistryFromConfig(ctx, conf)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	sessionStore, err := NewSessionStoreFromConfig(ctx, conf)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	limiter, err := NewRateLimiterFromConfig(ctx, conf)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	animationEvent, err := animationEventFromConfig(conf)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	opts := []storefront.OptionFunc{
		storefront.WithSessionName(string(conf.HTTP.Session.Name)),
		storefront.WithBrand(string(conf.Storefront.Brand)),
		storefront.WithAnimationEvent(animationEvent),
		storefront.WithRateLimiter(limiter),
	}

	if conf.HTTP.Metrics.Enabled {
		m := metrics.New(func() float64 {
			return float64(registry.Len())
		})

		mux.Handle("GET /metrics", m.Handler())

		opts = append(opts, storefront.WithMetrics(m))
	}

	if conf.HTTP.Debug.Enabled {
		pprof.PublishFunc("shopvibe_visitors", func() any {
			return registry.Len()
		})

		mux.Handle("/debug/pprof/", pprof.NewHandler("/debug/pprof"))
	}

	mux.Handle("GET /static/", ui.StaticHandler("/static/"))

	mux.Handle("/", slogMiddleware(storefront.NewHandler(registry, catalogue, sessionStore, opts...)))

	return mux, nil
}
