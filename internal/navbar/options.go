package navbar

import "github.com/bornholm/shopvibe/internal/animation"

type Options struct {
	Animator  animation.Animator
	Brand     string
	CartCount int
}

type OptionFunc func(opts *Options)

func NewOptions(funcs ...OptionFunc) *Options {
	opts := &Options{
		Animator:  animation.Noop{},
		Brand:     "ShopVibe",
		CartCount: 3,
	}

	for _, fn := range funcs {
		fn(opts)
	}

	return opts
}

func WithAnimator(animator animation.Animator) OptionFunc {
	return func(opts *Options) {
		opts.Animator = animator
	}
}

func WithBrand(brand string) OptionFunc {
	return func(opts *Options) {
		opts.Brand = brand
	}
}

func WithCartCount(count int) OptionFunc {
	return func(opts *Options) {
		opts.CartCount = count
	}
}
