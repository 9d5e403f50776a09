package viewport

import (
	"sync"
)

type Listener func(offset int)

// Signal broadcasts the vertical scroll offset of a viewport to its
// subscribers. Delivery is synchronous, in subscription order.
type Signal struct {
	mu        sync.RWMutex
	nextID    uint64
	listeners map[uint64]Listener
	order     []uint64
	offset    int
}

func NewSignal() *Signal {
	return &Signal{
		listeners: make(map[uint64]Listener),
	}
}

// Subscribe registers fn and returns the function releasing it.
// Calling release more than once has no effect.
func (s *Signal) Subscribe(fn Listener) (release func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextID
	s.nextID++

	s.listeners[id] = fn
	s.order = append(s.order, id)

	var once sync.Once

	return func() {
		once.Do(func() {
			s.unsubscribe(id)
		})
	}
}

func (s *Signal) unsubscribe(id uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.listeners, id)

	for idx, existing := range s.order {
		if existing == id {
			s.order = append(s.order[:idx], s.order[idx+1:]...)
			break
		}
	}
}

// Publish records offset and notifies every current listener.
func (s *Signal) Publish(offset int) {
	s.mu.Lock()
	s.offset = offset
	listeners := make([]Listener, 0, len(s.order))
	for _, id := range s.order {
		listeners = append(listeners, s.listeners[id])
	}
	s.mu.Unlock()

	for _, fn := range listeners {
		fn(offset)
	}
}

// Offset returns the last published offset.
func (s *Signal) Offset() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.offset
}

// Listeners returns the number of active subscriptions.
func (s *Signal) Listeners() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.listeners)
}
