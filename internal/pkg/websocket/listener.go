package websocket

import (
	"context"
	"time"

	"github.com/rs/zerolog"
)

// EventFunc reacts to a schedule change inside the process
type EventFunc func(ctx context.Context, event Event) error

// Listener runs an EventFunc for every broadcast event. Bursts of events
// (an import touches many rooms) are coalesced: fn sees the last event of a burst.
type Listener struct {
	hub      *Hub
	fn       EventFunc
	debounce time.Duration
	timeout  time.Duration
	logger   zerolog.Logger
}

// NewListener creates a listener with the given debounce window
func NewListener(hub *Hub, fn EventFunc, debounce time.Duration, logger zerolog.Logger) *Listener {
	return &Listener{
		hub:      hub,
		fn:       fn,
		debounce: debounce,
		timeout:  30 * time.Second,
		logger:   logger,
	}
}

// Start processes events until ctx is cancelled
func (l *Listener) Start(ctx context.Context) {
	events := make(chan *Event, 64)
	l.hub.AddListener(events)

	go func() {
		defer l.hub.RemoveListener(events)

		var (
			pending *Event
			timer   <-chan time.Time
		)
		for {
			select {
			case <-ctx.Done():
				return
			case event := <-events:
				pending = event
				timer = time.After(l.debounce)
			case <-timer:
				l.handle(ctx, *pending)
				pending, timer = nil, nil
			}
		}
	}()
}

func (l *Listener) handle(ctx context.Context, event Event) {
	ctx, cancel := context.WithTimeout(ctx, l.timeout)
	defer cancel()

	if err := l.fn(ctx, event); err != nil {
		l.logger.Error().Err(err).Str("type", event.Type).Str("corps", event.Corps).Msg("Schedule change handler failed")
		return
	}
	l.logger.Debug().Str("type", event.Type).Msg("Schedule change handled")
}
