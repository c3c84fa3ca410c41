package availability

import (
	"context"
	"fmt"
	"time"

	"github.com/Dermofet/MephiApp-sub000/internal/app/models"
)

// Store exposes the three reads a free-room query needs.
// All of them must observe the same snapshot of the data.
type Store interface {
	OccupancySource
	// RoomsByCorps returns the rooms of the named corps joined with the corps name.
	// Unknown names match nothing.
	RoomsByCorps(ctx context.Context, corps []string) ([]models.Room, error)
	// SemesterStart returns apperrors.ErrSemesterNotConfigured when no start is stored.
	SemesterStart(ctx context.Context) (time.Time, error)
}

// Query is one free-room request
type Query struct {
	Corps  []string
	Date   time.Time
	Window Window
}

// FindFreeRooms runs the whole pipeline against one store snapshot.
// An empty corps list gives an empty result without touching the store.
func FindFreeRooms(ctx context.Context, store Store, q Query, minGap time.Duration) ([]FreeInterval, error) {
	if err := q.Window.Validate(); err != nil {
		return nil, err
	}
	if len(q.Corps) == 0 {
		return []FreeInterval{}, nil
	}

	start, err := store.SemesterStart(ctx)
	if err != nil {
		return nil, err
	}
	clock := NewSemesterClock(&start)
	_, parity, err := clock.Week(q.Date)
	if err != nil {
		return nil, err
	}

	rooms, err := store.RoomsByCorps(ctx, q.Corps)
	if err != nil {
		return nil, fmt.Errorf("failed to load rooms: %w", err)
	}
	if len(rooms) == 0 {
		return []FreeInterval{}, nil
	}

	occupancy, err := Collect(ctx, store, rooms, OccupancyQuery{
		Weekday: Weekday(q.Date),
		Parity:  parity,
		Date:    q.Date,
		Window:  q.Window,
	})
	if err != nil {
		return nil, err
	}

	return Resolve(rooms, occupancy, q.Window, minGap)
}
