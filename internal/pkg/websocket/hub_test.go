package websocket

import (
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"
)

func newTestClient(corps string, buffer int) *Client {
	return &Client{send: make(chan []byte, buffer), corps: corps, remoteAddr: "test"}
}

func received(t *testing.T, c *Client) []Event {
	t.Helper()
	var out []Event
	for {
		select {
		case data, ok := <-c.send:
			if !ok {
				return out
			}
			var ev Event
			if err := json.Unmarshal(data, &ev); err != nil {
				t.Fatalf("bad event payload: %v", err)
			}
			out = append(out, ev)
		default:
			return out
		}
	}
}

func TestHubTopics(t *testing.T) {
	hub := NewHub(zerolog.New(io.Discard))
	a := newTestClient("А", 8)
	b := newTestClient("Б", 8)
	all := newTestClient(AllCorps, 8)
	for _, c := range []*Client{a, b, all} {
		hub.registerClient(c)
	}

	hub.broadcastEvent(&Event{Type: EventLessonCreated, Corps: "А", LessonID: 5})
	hub.broadcastEvent(&Event{Type: EventSemesterUpdated})

	if got := received(t, a); len(got) != 2 || got[0].LessonID != 5 {
		t.Errorf("corps А got %+v", got)
	}
	if got := received(t, b); len(got) != 1 || got[0].Type != EventSemesterUpdated {
		t.Errorf("corps Б got %+v", got)
	}
	if got := received(t, all); len(got) != 2 {
		t.Errorf("all-corps subscriber got %+v", got)
	}
}

func TestHubDropsSlowClient(t *testing.T) {
	hub := NewHub(zerolog.New(io.Discard))
	slow := newTestClient("А", 0)
	hub.registerClient(slow)

	hub.broadcastEvent(&Event{Type: EventRoomChanged, Corps: "А"})

	if hub.ClientsCount("А") != 0 {
		t.Error("slow client must be unregistered")
	}
	if _, ok := <-slow.send; ok {
		t.Error("send channel of a dropped client must be closed")
	}
}

func TestHandleConnectionStreamsEvents(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	hub := NewHub(zerolog.New(io.Discard))
	go hub.Run(ctx)

	router := gin.New()
	router.GET("/ws/schedule", NewHandler(hub, zerolog.New(io.Discard)).HandleConnection)
	srv := httptest.NewServer(router)
	defer srv.Close()

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws/schedule?corps=%D0%90" // corps=А
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	defer conn.Close()

	deadline := time.Now().Add(2 * time.Second)
	for hub.ClientsCount("А") == 0 {
		if time.Now().After(deadline) {
			t.Fatal("client was not registered")
		}
		time.Sleep(10 * time.Millisecond)
	}

	hub.Publish(Event{Type: EventLessonUpdated, Corps: "Б"})
	hub.Publish(Event{Type: EventLessonDeleted, Corps: "А", LessonID: 9})

	_ = conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	var ev Event
	if err := conn.ReadJSON(&ev); err != nil {
		t.Fatalf("read: %v", err)
	}
	if ev.Type != EventLessonDeleted || ev.LessonID != 9 || ev.Timestamp.IsZero() {
		t.Errorf("unexpected event %+v", ev)
	}
}

func TestListenerCoalescesBursts(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	hub := NewHub(zerolog.New(io.Discard))
	go hub.Run(ctx)

	calls := make(chan Event, 8)
	NewListener(hub, func(_ context.Context, ev Event) error {
		calls <- ev
		return nil
	}, 100*time.Millisecond, zerolog.New(io.Discard)).Start(ctx)

	// listener registration happens synchronously in Start
	hub.Publish(Event{Type: EventLessonCreated, Corps: "А"})
	hub.Publish(Event{Type: EventLessonUpdated, Corps: "А"})
	hub.Publish(Event{Type: EventTimetableImported})

	select {
	case ev := <-calls:
		if ev.Type != EventTimetableImported {
			t.Errorf("handler saw %q, want the last event of the burst", ev.Type)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("handler was not called")
	}

	select {
	case ev := <-calls:
		t.Errorf("unexpected second call with %+v", ev)
	case <-time.After(300 * time.Millisecond):
	}
}
