package animation

import (
	"slices"
	"sync"

	"github.com/pkg/errors"
)

var ErrUnknownType = errors.New("unknown animation type")

type Type string

type FactoryFunc func(options any) (Animator, error)

var (
	factoriesMu sync.RWMutex
	factories   = map[Type]FactoryFunc{}
)

func Register(typ Type, factory FactoryFunc) {
	factoriesMu.Lock()
	defer factoriesMu.Unlock()

	factories[typ] = factory
}

func Registered() []Type {
	factoriesMu.RLock()
	defer factoriesMu.RUnlock()

	types := make([]Type, 0, len(factories))
	for typ := range factories {
		types = append(types, typ)
	}

	slices.Sort(types)

	return types
}

// New creates the animator registered under typ. The result is always
// wrapped with Safe.
func New(typ Type, options any) (Animator, error) {
	factoriesMu.RLock()
	factory, exists := factories[typ]
	factoriesMu.RUnlock()

	if !exists {
		return nil, errors.Wrapf(ErrUnknownType, "could not find animation type '%s'", typ)
	}

	animator, err := factory(options)
	if err != nil {
		return nil, errors.Wrapf(err, "could not create animation '%s'", typ)
	}

	return Safe(animator), nil
}
