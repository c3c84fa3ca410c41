package services

import (
	"context"
	"fmt"
	"time"

	"github.com/Dermofet/MephiApp-sub000/internal/app/availability"
	"github.com/Dermofet/MephiApp-sub000/internal/pkg/helpers"
	"github.com/Dermofet/MephiApp-sub000/internal/pkg/publish"
	"github.com/Dermofet/MephiApp-sub000/internal/pkg/websocket"
	"github.com/rs/zerolog"
)

// SnapshotReader runs availability reads against one consistent snapshot
type SnapshotReader interface {
	ReadSnapshot(ctx context.Context, fn func(ctx context.Context, store availability.Store) error) error
}

// FreeRoomsQuery asks for the free slots of the named corps. A nil Date means today.
type FreeRoomsQuery struct {
	Corps  []string
	Date   *time.Time
	Window availability.Window
}

// PublishResult describes a published snapshot
type PublishResult struct {
	Path       string
	Date       time.Time
	SlotCount  int
	LastUpdate time.Time
}

// FreeRoomService defines the room availability operations
type FreeRoomService interface {
	GetFreeRooms(ctx context.Context, q FreeRoomsQuery) ([]availability.FreeInterval, error)
	// PublishFreeRooms computes the free slots of every corps and hands them to the publisher
	PublishFreeRooms(ctx context.Context, date *time.Time, window availability.Window) (*PublishResult, error)
	// RepublishToday refreshes today's snapshot after a schedule change
	RepublishToday(ctx context.Context, event websocket.Event) error
}

type freeRoomServiceImpl struct {
	snapshots     SnapshotReader
	corpsRepo     CorpsStore
	publisher     publish.Publisher
	minGap        time.Duration
	publishWindow availability.Window
	loc           *time.Location
	now           func() time.Time
	logger        zerolog.Logger
}

// FreeRoomOptions configures a FreeRoomService
type FreeRoomOptions struct {
	MinGap        time.Duration
	Location      *time.Location
	PublishWindow availability.Window
}

// NewFreeRoomService creates a new free room service instance
func NewFreeRoomService(snapshots SnapshotReader, corpsRepo CorpsStore, publisher publish.Publisher, opts FreeRoomOptions, logger zerolog.Logger) FreeRoomService {
	if publisher == nil {
		publisher = publish.Disabled{}
	}
	if opts.Location == nil {
		opts.Location = time.UTC
	}
	return &freeRoomServiceImpl{
		snapshots:     snapshots,
		corpsRepo:     corpsRepo,
		publisher:     publisher,
		minGap:        opts.MinGap,
		publishWindow: opts.PublishWindow,
		loc:           opts.Location,
		now:           time.Now,
		logger:        logger,
	}
}

func (s *freeRoomServiceImpl) resolveDate(date *time.Time) time.Time {
	if date == nil {
		return today(s.now, s.loc)
	}
	return helpers.DateOf(*date)
}

// GetFreeRooms computes free intervals inside a single read snapshot
func (s *freeRoomServiceImpl) GetFreeRooms(ctx context.Context, q FreeRoomsQuery) ([]availability.FreeInterval, error) {
	query := availability.Query{
		Corps:  q.Corps,
		Date:   s.resolveDate(q.Date),
		Window: q.Window,
	}

	var result []availability.FreeInterval
	err := s.snapshots.ReadSnapshot(ctx, func(ctx context.Context, store availability.Store) error {
		var err error
		result, err = availability.FindFreeRooms(ctx, store, query, s.minGap)
		return err
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// PublishFreeRooms publishes the free slots of every corps for a date
func (s *freeRoomServiceImpl) PublishFreeRooms(ctx context.Context, date *time.Time, window availability.Window) (*PublishResult, error) {
	day := s.resolveDate(date)

	corps, err := s.corpsRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving corps: %w", err)
	}
	names := make([]string, 0, len(corps))
	for _, c := range corps {
		names = append(names, c.Name)
	}

	free, err := s.GetFreeRooms(ctx, FreeRoomsQuery{Corps: names, Date: &day, Window: window})
	if err != nil {
		return nil, err
	}

	updated := s.now().UTC()
	snapshot := BuildSnapshot(day, window, names, free, updated)
	path, err := s.publisher.PublishFreeRooms(ctx, snapshot)
	if err != nil {
		return nil, err
	}

	return &PublishResult{Path: path, Date: day, SlotCount: len(free), LastUpdate: updated}, nil
}

// RepublishToday publishes today's snapshot over the configured window
func (s *freeRoomServiceImpl) RepublishToday(ctx context.Context, event websocket.Event) error {
	result, err := s.PublishFreeRooms(ctx, nil, s.publishWindow)
	if err != nil {
		return err
	}
	s.logger.Info().Str("trigger", event.Type).Str("path", result.Path).Int("slots", result.SlotCount).Msg("Free rooms republished")
	return nil
}

// BuildSnapshot groups free intervals by corps. Every corps gets an entry, possibly empty.
func BuildSnapshot(date time.Time, window availability.Window, corps []string, free []availability.FreeInterval, updated time.Time) publish.FreeRoomsSnapshot {
	byCorps := make(map[string][]publish.Slot, len(corps))
	for _, name := range corps {
		byCorps[name] = []publish.Slot{}
	}
	for _, f := range free {
		byCorps[f.Corps] = append(byCorps[f.Corps], publish.Slot{
			Room:      f.Room,
			TimeStart: f.Start.String(),
			TimeEnd:   f.End.String(),
		})
	}

	return publish.FreeRoomsSnapshot{
		Date:       date.Format(helpers.DateLayout),
		TimeStart:  window.Start.String(),
		TimeEnd:    window.End.String(),
		Corps:      byCorps,
		LastUpdate: updated.Format(time.RFC3339),
	}
}
