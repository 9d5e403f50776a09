package animation

import (
	"context"
	"fmt"
	"log/slog"
)

// Animator plays visual transitions. Playback is fire-and-forget: callers
// never wait for it and nothing is returned.
type Animator interface {
	Play(ctx context.Context, cmd Command)
}

type AnimatorFunc func(ctx context.Context, cmd Command)

// Play implements Animator.
func (fn AnimatorFunc) Play(ctx context.Context, cmd Command) {
	fn(ctx, cmd)
}

type Noop struct{}

// Play implements Animator.
func (Noop) Play(ctx context.Context, cmd Command) {}

// Safe wraps a so that a nil or panicking animator behaves as a no-op.
func Safe(a Animator) Animator {
	if a == nil {
		return Noop{}
	}

	if _, ok := a.(safeAnimator); ok {
		return a
	}

	return safeAnimator{a}
}

type safeAnimator struct {
	backend Animator
}

// Play implements Animator.
func (s safeAnimator) Play(ctx context.Context, cmd Command) {
	defer func() {
		if r := recover(); r != nil {
			slog.WarnContext(ctx, "animation playback failed",
				slog.String("kind", string(cmd.Kind)),
				slog.String("target", cmd.Target),
				slog.String("panic", fmt.Sprintf("%v", r)),
			)
		}
	}()

	s.backend.Play(ctx, cmd)
}

var (
	_ Animator = Noop{}
	_ Animator = AnimatorFunc(nil)
	_ Animator = safeAnimator{}
)
