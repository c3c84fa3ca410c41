package websocket

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// Schedule change event types
const (
	EventLessonCreated     = "lesson.created"
	EventLessonUpdated     = "lesson.updated"
	EventLessonDeleted     = "lesson.deleted"
	EventRoomChanged       = "room.changed"
	EventCorpsChanged      = "corps.changed"
	EventSemesterUpdated   = "semester.updated"
	EventTimetableImported = "timetable.imported"
)

// AllCorps is the topic of clients that follow every corps
const AllCorps = ""

// Event tells subscribers that the schedule of a corps changed
type Event struct {
	Type      string    `json:"type"`
	Corps     string    `json:"corps,omitempty"`
	RoomID    int64     `json:"roomId,omitempty"`
	LessonID  int64     `json:"lessonId,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// Hub maintains the set of active clients and broadcasts events to them
type Hub struct {
	// Registered clients organized by corps topic
	clients map[string]map[*Client]bool

	broadcast  chan *Event
	register   chan *Client
	unregister chan *Client
	done       chan struct{}

	// Mutex for concurrent access to clients map
	mu sync.RWMutex

	listenersMu sync.RWMutex
	listeners   []chan *Event

	logger zerolog.Logger
}

// NewHub creates a new Hub instance
func NewHub(logger zerolog.Logger) *Hub {
	return &Hub{
		broadcast:  make(chan *Event, 64),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		done:       make(chan struct{}),
		clients:    make(map[string]map[*Client]bool),
		logger:     logger,
	}
}

// Run handles registrations and broadcasts until ctx is cancelled
func (h *Hub) Run(ctx context.Context) {
	defer close(h.done)
	for {
		select {
		case <-ctx.Done():
			h.closeAll()
			return

		case client := <-h.register:
			h.registerClient(client)

		case client := <-h.unregister:
			h.unregisterClient(client)

		case event := <-h.broadcast:
			h.broadcastEvent(event)
		}
	}
}

// Publish queues an event for broadcast. It drops the event once the hub has stopped.
func (h *Hub) Publish(event Event) {
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now().UTC()
	}
	select {
	case h.broadcast <- &event:
	case <-h.done:
		h.logger.Debug().Str("type", event.Type).Msg("Hub stopped, event dropped")
	}
}

func (h *Hub) registerClient(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := h.clients[client.corps]; !ok {
		h.clients[client.corps] = make(map[*Client]bool)
	}
	h.clients[client.corps][client] = true

	h.logger.Info().
		Str("corps", client.corps).
		Str("addr", client.remoteAddr).
		Msg("Client registered")
}

func (h *Hub) unregisterClient(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.removeLocked(client)
}

// removeLocked drops a client; h.mu must be held for writing
func (h *Hub) removeLocked(client *Client) {
	topic, ok := h.clients[client.corps]
	if !ok {
		return
	}
	if _, ok := topic[client]; !ok {
		return
	}

	delete(topic, client)
	close(client.send)
	if len(topic) == 0 {
		delete(h.clients, client.corps)
	}

	h.logger.Info().
		Str("corps", client.corps).
		Str("addr", client.remoteAddr).
		Msg("Client unregistered")
}

// broadcastEvent delivers an event to its corps topic and to the all-corps topic.
// Events without a corps reach every client.
func (h *Hub) broadcastEvent(event *Event) {
	h.notifyListeners(event)

	data, err := json.Marshal(event)
	if err != nil {
		h.logger.Error().Err(err).Str("type", event.Type).Msg("Failed to marshal event for broadcast")
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	var targets []map[*Client]bool
	if event.Corps == AllCorps {
		for _, topic := range h.clients {
			targets = append(targets, topic)
		}
	} else {
		targets = append(targets, h.clients[event.Corps], h.clients[AllCorps])
	}

	var slow []*Client
	delivered := 0
	for _, topic := range targets {
		for client := range topic {
			select {
			case client.send <- data:
				delivered++
			default:
				// send buffer full: the client is too slow or gone
				slow = append(slow, client)
			}
		}
	}
	for _, client := range slow {
		h.removeLocked(client)
	}

	h.logger.Debug().
		Str("type", event.Type).
		Str("corps", event.Corps).
		Int("clientCount", delivered).
		Msg("Event broadcasted")
}

func (h *Hub) closeAll() {
	h.mu.Lock()
	defer h.mu.Unlock()
	for _, topic := range h.clients {
		for client := range topic {
			h.removeLocked(client)
		}
	}
}

// notifyListeners hands the event to in-process listeners without blocking
func (h *Hub) notifyListeners(event *Event) {
	h.listenersMu.RLock()
	defer h.listenersMu.RUnlock()

	for _, listener := range h.listeners {
		select {
		case listener <- event:
		default:
			h.logger.Warn().Str("type", event.Type).Msg("Skipped slow event listener")
		}
	}
}

// ClientsCount returns the number of clients following a corps topic
func (h *Hub) ClientsCount(corps string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients[corps])
}

// AddListener registers a channel that receives every broadcast event
func (h *Hub) AddListener(listener chan *Event) {
	h.listenersMu.Lock()
	defer h.listenersMu.Unlock()
	h.listeners = append(h.listeners, listener)
}

// RemoveListener unregisters a listener channel
func (h *Hub) RemoveListener(listener chan *Event) {
	h.listenersMu.Lock()
	defer h.listenersMu.Unlock()

	for i, l := range h.listeners {
		if l == listener {
			h.listeners[i] = h.listeners[len(h.listeners)-1]
			h.listeners = h.listeners[:len(h.listeners)-1]
			break
		}
	}
}
