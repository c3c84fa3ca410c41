// Package services holds the business rules between controllers and repositories.
package services

import (
	"github.com/Dermofet/MephiApp-sub000/internal/pkg/websocket"
)

// EventPublisher delivers schedule change notifications
type EventPublisher interface {
	Publish(event websocket.Event)
}

type noopPublisher struct{}

func (noopPublisher) Publish(websocket.Event) {}

func publisherOrNoop(p EventPublisher) EventPublisher {
	if p == nil {
		return noopPublisher{}
	}
	return p
}
