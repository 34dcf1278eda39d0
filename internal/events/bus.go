package events

import (
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	cerrors "github.com/tessro/chorus/internal/errors"
)

// Publisher publishes events.
type Publisher interface {
	Publish(e Event)
}

// Listener handles events of one kind and of every kind below it.
type Listener struct {
	Name    string
	Accepts Kind
	Handle  func(Event) error
}

// Bus is a synchronous in-process event bus. The listener table is fixed at
// construction. Publish runs matching listeners one at a time, in
// registration order, on the caller's goroutine.
type Bus struct {
	listeners []Listener
	logger    *slog.Logger
	now       func() time.Time

	dispatched atomic.Int64
	failures   atomic.Int64
}

// NewBus creates a bus that dispatches to the given listeners.
func NewBus(logger *slog.Logger, listeners ...Listener) *Bus {
	if logger == nil {
		logger = slog.Default()
	}
	return &Bus{
		listeners: append([]Listener(nil), listeners...),
		logger:    logger,
		now:       time.Now,
	}
}

// Publish stamps e and delivers it to every listener whose declared kind is
// e's kind or one of its ancestors. A failing listener is logged and skipped;
// the failure never reaches the caller. Listeners may publish further events,
// which are fully dispatched before the outer call continues.
func (b *Bus) Publish(e Event) {
	if e == nil {
		panic("events: publish of nil event")
	}
	h := e.header()
	if h.Source == "" {
		panic(fmt.Sprintf("events: %s published without a source", e.Kind()))
	}
	h.ID = uuid.New()
	h.Timestamp = b.now()

	kind := e.Kind()
	for _, l := range b.listeners {
		if !kind.Is(l.Accepts) {
			continue
		}
		b.dispatched.Add(1)
		if err := b.invoke(l, e); err != nil {
			b.failures.Add(1)
			b.logger.Error(err.Error(), "listener", l.Name, "event_id", h.ID)
		}
	}
}

// invoke runs a single listener, turning a panic into an error.
func (b *Bus) invoke(l Listener, e Event) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = &cerrors.ListenerError{Listener: l.Name, Event: e.String(), Err: fmt.Errorf("panic: %v", r)}
		}
	}()
	if herr := l.Handle(e); herr != nil {
		return &cerrors.ListenerError{Listener: l.Name, Event: e.String(), Err: herr}
	}
	return nil
}

// Listeners returns the number of registered listeners.
func (b *Bus) Listeners() int {
	return len(b.listeners)
}

// Dispatched returns how many listener invocations the bus has made.
func (b *Bus) Dispatched() int64 {
	return b.dispatched.Load()
}

// Failures returns how many listener invocations have failed.
func (b *Bus) Failures() int64 {
	return b.failures.Load()
}
