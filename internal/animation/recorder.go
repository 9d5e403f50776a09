package animation

import (
	"context"
	"encoding/json"
	"sync"
)

// Recorder collects the commands issued while handling one request so they
// can be shipped to the browser afterwards, grouped by client event name.
type Recorder struct {
	mu     sync.Mutex
	events map[string][]Command
}

func NewRecorder() *Recorder {
	return &Recorder{
		events: make(map[string][]Command),
	}
}

func (r *Recorder) Record(event string, cmd Command) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.events[event] = append(r.events[event], cmd)
}

func (r *Recorder) Commands(event string) []Command {
	r.mu.Lock()
	defer r.mu.Unlock()

	commands := make([]Command, len(r.events[event]))
	copy(commands, r.events[event])

	return commands
}

func (r *Recorder) Empty() bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	return len(r.events) == 0
}

// MarshalJSON implements json.Marshaler.
func (r *Recorder) MarshalJSON() ([]byte, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return json.Marshal(r.events)
}

var _ json.Marshaler = &Recorder{}

type contextKey string

const contextKeyRecorder contextKey = "animationRecorder"

func WithRecorder(ctx context.Context, r *Recorder) context.Context {
	return context.WithValue(ctx, contextKeyRecorder, r)
}

func ContextRecorder(ctx context.Context) (*Recorder, bool) {
	r, ok := ctx.Value(contextKeyRecorder).(*Recorder)
	return r, ok
}
