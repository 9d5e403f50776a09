package noop

import (
	"github.com/bornholm/shopvibe/internal/animation"
)

const Type animation.Type = "noop"

func init() {
	animation.Register(Type, CreateAnimatorFromOptions)
}

func CreateAnimatorFromOptions(options any) (animation.Animator, error) {
	return animation.Noop{}, nil
}
