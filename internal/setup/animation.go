package setup

import (
	"context"
	"log/slog"

	"github.com/bornholm/shopvibe/internal/animation"
	"github.com/bornholm/shopvibe/internal/animation/htmx"
	"github.com/bornholm/shopvibe/internal/config"
	"github.com/pkg/errors"
)

var NewAnimatorFromConfig = createFromConfigOnce(func(ctx context.Context, conf *config.Config) (animation.Animator, error) {
	animator, err := animation.New(animation.Type(conf.Animation.Type), animationOptions(conf))
	if err != nil {
		return nil, errors.WithStack(err)
	}

	slog.DebugContext(ctx, "animation driver ready", slog.String("type", string(conf.Animation.Type)))

	return animator, nil
})

// animationEventFromConfig returns the client event name the page script
// listens to.
func animationEventFromConfig(conf *config.Config) (string, error) {
	if animation.Type(conf.Animation.Type) != htmx.Type {
		return htmx.DefaultEvent, nil
	}

	opts, err := htmx.ParseOptions(animationOptions(conf))
	if err != nil {
		return "", errors.WithStack(err)
	}

	return opts.Event, nil
}

func animationOptions(conf *config.Config) any {
	if conf.Animation.Options == nil {
		return map[string]any{}
	}

	return conf.Animation.Options.Data
}
