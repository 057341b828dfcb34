package worker

import (
	"context"
	"log/slog"

	"voting-poll/internal/metrics"
)

type EventKind string

const (
	PollCreated       EventKind = "poll_created"
	ProposalCreated   EventKind = "proposal_created"
	ProposalActivated EventKind = "proposal_activated"
)

// Event describes a registry mutation that already committed.
type Event struct {
	Kind       EventKind
	PollID     int64
	ProposalID int64
	Caller     int64
}

type EventWorker struct {
	ch     <-chan Event
	logger *slog.Logger
}

func NewEventWorker(ch <-chan Event, logger *slog.Logger) *EventWorker {
	if logger == nil {
		logger = slog.Default()
	}
	return &EventWorker{ch: ch, logger: logger}
}

// Run consumes events until ctx is done or the channel is closed.
func (w *EventWorker) Run(ctx context.Context) {
	w.logger.Info("event worker started")
	defer w.logger.Info("event worker stopped")

	for {
		select {
		case <-ctx.Done():
			return
		case ev, ok := <-w.ch:
			if !ok {
				return
			}
			w.handle(ev)
		}
	}
}

func (w *EventWorker) handle(ev Event) {
	metrics.IncEvent(string(ev.Kind))

	attrs := []any{"kind", ev.Kind, "poll_id", ev.PollID, "caller", ev.Caller}
	if ev.Kind != PollCreated {
		attrs = append(attrs, "proposal_id", ev.ProposalID)
	}
	w.logger.Info("registry event", attrs...)
}

// Publish offers ev to ch without blocking; events are dropped when the
// worker falls behind.
func Publish(ch chan<- Event, ev Event) bool {
	if ch == nil {
		return false
	}
	select {
	case ch <- ev:
		return true
	default:
		metrics.IncDroppedEvent()
		return false
	}
}
