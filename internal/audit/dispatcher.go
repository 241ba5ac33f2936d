package audit

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

const (
	ActionUserRegistered = "user_registered"
	ActionUserUpdated    = "user_updated"
	ActionUserDeleted    = "user_deleted"
	ActionLoginFailed    = "login_failed"
	ActionServiceCreated = "service_created"
)

// Sink accepts events for asynchronous recording.
type Sink interface {
	Dispatch(ev Event)
}

type Event struct {
	UserID   *uint
	Action   string
	Entity   string
	EntityID *uint
	Metadata any
}

// Dispatcher writes events in the background so a slow audit store never
// delays a request.
type Dispatcher struct {
	recorder Recorder
	logger   *slog.Logger
	queue    chan Event

	mu     sync.RWMutex
	closed bool
	done   chan struct{}
}

func NewDispatcher(recorder Recorder, logger *slog.Logger) *Dispatcher {
	d := &Dispatcher{
		recorder: recorder,
		logger:   logger.With("component", "audit"),
		queue:    make(chan Event, 100),
		done:     make(chan struct{}),
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	defer close(d.done)

	for ev := range d.queue {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		if err := d.recorder.Record(ctx, ev); err != nil {
			d.logger.Error("audit write failed", "action", ev.Action, "error", err)
		}
		cancel()
	}
}

// Dispatch enqueues ev. It never blocks; a full or closed queue drops the event.
func (d *Dispatcher) Dispatch(ev Event) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	if d.closed {
		return
	}

	select {
	case d.queue <- ev:
	default:
		d.logger.Warn("audit queue full, dropping event", "action", ev.Action)
	}
}

// Close stops accepting events and waits for the queue to drain.
func (d *Dispatcher) Close(ctx context.Context) error {
	d.mu.Lock()
	if !d.closed {
		d.closed = true
		close(d.queue)
	}
	d.mu.Unlock()

	select {
	case <-d.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

var _ Sink = (*Dispatcher)(nil)

// Ptr is a helper for the optional id fields of Event.
func Ptr(id uint) *uint {
	return &id
}
