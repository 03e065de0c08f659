package audit

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

type Event struct {
	HubID    uuid.UUID
	Subject  string
	Action   string
	Entity   string
	EntityID *uuid.UUID
	Metadata any
}

// Dispatcher writes audit events from a single background worker so request
// handlers never wait on the audit table.
type Dispatcher struct {
	writer Writer
	log    zerolog.Logger
	queue  chan Event

	closeOnce sync.Once
	done      chan struct{}
}

func NewDispatcher(writer Writer, log zerolog.Logger) *Dispatcher {
	d := &Dispatcher{
		writer: writer,
		log:    log,
		queue:  make(chan Event, 100),
		done:   make(chan struct{}),
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	defer close(d.done)
	for ev := range d.queue {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		if err := d.writer.Log(ctx, ev); err != nil {
			d.log.Error().Err(err).
				Str("hub_id", ev.HubID.String()).
				Str("action", ev.Action).
				Msg("audit write failed")
		}
		cancel()
	}
}

// Dispatch never blocks; when the queue is full the event is dropped.
func (d *Dispatcher) Dispatch(ev Event) {
	if d == nil {
		return
	}
	select {
	case d.queue <- ev:
	default:
		d.log.Warn().Str("action", ev.Action).Msg("audit queue full, dropping event")
	}
}

// Close waits for queued events to be written. Dispatch must not be called
// after Close.
func (d *Dispatcher) Close() {
	if d == nil {
		return
	}
	d.closeOnce.Do(func() { close(d.queue) })
	<-d.done
}
