package logging

import (
	"context"
	"log/slog"

	"github.com/bornholm/shopvibe/internal/animation"
	"github.com/go-viper/mapstructure/v2"
	"github.com/pkg/errors"
)

const Type animation.Type = "log"

func init() {
	animation.Register(Type, CreateAnimatorFromOptions)
}

type Options struct {
	Level string `mapstructure:"level"`
}

func CreateAnimatorFromOptions(options any) (animation.Animator, error) {
	opts := Options{
		Level: slog.LevelDebug.String(),
	}

	if err := mapstructure.Decode(options, &opts); err != nil {
		return nil, errors.Wrapf(err, "could not parse '%s' animation options", Type)
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(opts.Level)); err != nil {
		return nil, errors.Wrapf(err, "could not parse '%s' animation level", Type)
	}

	return NewAnimator(slog.Default(), level), nil
}

type Animator struct {
	logger *slog.Logger
	level  slog.Level
}

// Play implements animation.Animator.
func (a *Animator) Play(ctx context.Context, cmd animation.Command) {
	a.logger.Log(ctx, a.level, "playing animation",
		slog.String("kind", string(cmd.Kind)),
		slog.String("target", cmd.Target),
		slog.Duration("delay", cmd.Delay),
	)
}

func NewAnimator(logger *slog.Logger, level slog.Level) *Animator {
	return &Animator{
		logger: logger,
		level:  level,
	}
}

var _ animation.Animator = &Animator{}
