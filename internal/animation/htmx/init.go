package htmx

import (
	"context"

	"github.com/bornholm/shopvibe/internal/animation"
	"github.com/go-viper/mapstructure/v2"
	"github.com/pkg/errors"
)

const Type animation.Type = "htmx"

const DefaultEvent = "animate"

func init() {
	animation.Register(Type, CreateAnimatorFromOptions)
}

type Options struct {
	Event string `mapstructure:"event"`
}

// ParseOptions decodes raw driver options, applying defaults.
func ParseOptions(options any) (*Options, error) {
	opts := &Options{
		Event: DefaultEvent,
	}

	if err := mapstructure.Decode(options, opts); err != nil {
		return nil, errors.Wrapf(err, "could not parse '%s' animation options", Type)
	}

	if opts.Event == "" {
		return nil, errors.Errorf("'%s' animation requires a non-empty event name", Type)
	}

	return opts, nil
}

func CreateAnimatorFromOptions(options any) (animation.Animator, error) {
	opts, err := ParseOptions(options)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return NewAnimator(opts.Event), nil
}

// Animator forwards commands to the request's animation.Recorder. The HTTP
// layer ships them to the browser as a client-side event.
type Animator struct {
	event string
}

// Play implements animation.Animator.
func (a *Animator) Play(ctx context.Context, cmd animation.Command) {
	recorder, ok := animation.ContextRecorder(ctx)
	if !ok {
		return
	}

	recorder.Record(a.event, cmd)
}

func NewAnimator(event string) *Animator {
	return &Animator{event: event}
}

var _ animation.Animator = &Animator{}
