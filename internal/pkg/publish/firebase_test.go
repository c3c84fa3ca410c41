package publish

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/Dermofet/MephiApp-sub000/internal/pkg/apperrors"
	"github.com/rs/zerolog"
)

type recordingSetter struct {
	values map[string]interface{}
	err    error
}

func (r *recordingSetter) Set(_ context.Context, path string, v interface{}) error {
	if r.err != nil {
		return r.err
	}
	r.values[path] = v
	return nil
}

func TestKey(t *testing.T) {
	tests := map[string]string{
		"А":          "А",
		"Corps 7.1":  "Corps 7_1",
		"a/b#c[d]$":  "a_b_c_d__",
		"  ":         "_",
		"2026-09-01": "2026-09-01",
	}
	for in, want := range tests {
		if got := Key(in); got != want {
			t.Errorf("Key(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestPublishFreeRooms(t *testing.T) {
	rec := &recordingSetter{values: map[string]interface{}{}}
	p := &FirebasePublisher{db: rec, logger: zerolog.New(io.Discard)}

	path, err := p.PublishFreeRooms(context.Background(), FreeRoomsSnapshot{
		Date:       "2026-09-01",
		TimeStart:  "08:30",
		TimeEnd:    "22:50",
		Corps:      map[string][]Slot{"К.2": {{Room: "100", TimeStart: "08:30", TimeEnd: "22:50"}}},
		LastUpdate: "2026-09-01T05:00:00Z",
	})
	if err != nil {
		t.Fatalf("PublishFreeRooms: %v", err)
	}
	if path != "free_rooms/2026-09-01" {
		t.Errorf("path = %q", path)
	}

	doc, ok := rec.values[path].(FreeRoomsSnapshot)
	if !ok {
		t.Fatalf("snapshot not written: %v", rec.values)
	}
	if _, ok := doc.Corps["К_2"]; !ok {
		t.Errorf("corps key not sanitized: %v", doc.Corps)
	}
	if rec.values["free_rooms/last_update"] != "2026-09-01T05:00:00Z" {
		t.Errorf("last_update = %v", rec.values["free_rooms/last_update"])
	}
}

func TestPublishFreeRoomsError(t *testing.T) {
	boom := errors.New("permission denied")
	p := &FirebasePublisher{db: &recordingSetter{err: boom}, logger: zerolog.New(io.Discard)}
	if _, err := p.PublishFreeRooms(context.Background(), FreeRoomsSnapshot{Date: "2026-09-01"}); !errors.Is(err, boom) {
		t.Errorf("expected wrapped error, got %v", err)
	}
}

func TestDisabled(t *testing.T) {
	_, err := Disabled{}.PublishFreeRooms(context.Background(), FreeRoomsSnapshot{})
	if !errors.Is(err, apperrors.ErrServiceUnavailable) {
		t.Errorf("expected ErrServiceUnavailable, got %v", err)
	}
}
