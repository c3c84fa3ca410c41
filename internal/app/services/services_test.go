package services

import (
	"bytes"
	"context"
	"errors"
	"io"
	"mime/multipart"
	"sync"
	"testing"
	"time"

	"github.com/Dermofet/MephiApp-sub000/internal/app/availability"
	"github.com/Dermofet/MephiApp-sub000/internal/app/models"
	"github.com/Dermofet/MephiApp-sub000/internal/app/models/dto"
	"github.com/Dermofet/MephiApp-sub000/internal/app/repositories"
	"github.com/Dermofet/MephiApp-sub000/internal/importer"
	"github.com/Dermofet/MephiApp-sub000/internal/pkg/apperrors"
	"github.com/Dermofet/MephiApp-sub000/internal/pkg/auth"
	"github.com/Dermofet/MephiApp-sub000/internal/pkg/filestorage"
	"github.com/Dermofet/MephiApp-sub000/internal/pkg/publish"
	"github.com/Dermofet/MephiApp-sub000/internal/pkg/websocket"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"
)

var nopLogger = zerolog.New(io.Discard)

type recordedEvents struct {
	mu     sync.Mutex
	events []websocket.Event
}

func (r *recordedEvents) Publish(e websocket.Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, e)
}

// fakeCorpsStore keeps corps in memory
type fakeCorpsStore struct {
	corps  map[int64]*models.Corps
	nextID int64
	err    error
}

func newFakeCorpsStore(names ...string) *fakeCorpsStore {
	s := &fakeCorpsStore{corps: map[int64]*models.Corps{}}
	for _, n := range names {
		_ = s.Create(context.Background(), &models.Corps{Name: n})
	}
	return s
}

func (s *fakeCorpsStore) Create(_ context.Context, c *models.Corps) error {
	for _, existing := range s.corps {
		if existing.Name == c.Name {
			return apperrors.ErrCorpsAlreadyExists
		}
	}
	s.nextID++
	c.ID = s.nextID
	copied := *c
	s.corps[c.ID] = &copied
	return nil
}

func (s *fakeCorpsStore) GetByID(_ context.Context, id int64) (*models.Corps, error) {
	c, ok := s.corps[id]
	if !ok {
		return nil, apperrors.ErrCorpsNotFound
	}
	copied := *c
	return &copied, nil
}

func (s *fakeCorpsStore) GetAll(context.Context) ([]*models.Corps, error) {
	if s.err != nil {
		return nil, s.err
	}
	out := []*models.Corps{}
	for id := int64(1); id <= s.nextID; id++ {
		if c, ok := s.corps[id]; ok {
			out = append(out, c)
		}
	}
	return out, nil
}

func (s *fakeCorpsStore) Update(_ context.Context, c *models.Corps) error {
	if _, ok := s.corps[c.ID]; !ok {
		return apperrors.ErrCorpsNotFound
	}
	for id, existing := range s.corps {
		if id != c.ID && existing.Name == c.Name {
			return apperrors.ErrCorpsAlreadyExists
		}
	}
	copied := *c
	s.corps[c.ID] = &copied
	return nil
}

func (s *fakeCorpsStore) Delete(_ context.Context, id int64) error {
	if _, ok := s.corps[id]; !ok {
		return apperrors.ErrCorpsNotFound
	}
	delete(s.corps, id)
	return nil
}

func TestCorpsService(t *testing.T) {
	ctx := context.Background()
	events := &recordedEvents{}
	svc := NewCorpsService(newFakeCorpsStore(), events)

	created, err := svc.CreateCorps(ctx, "  А ")
	if err != nil {
		t.Fatalf("CreateCorps: %v", err)
	}
	if created.Name != "А" || created.ID == 0 {
		t.Errorf("unexpected corps %+v", created)
	}

	if _, err := svc.CreateCorps(ctx, "А"); !errors.Is(err, apperrors.ErrCorpsAlreadyExists) {
		t.Errorf("expected ErrCorpsAlreadyExists, got %v", err)
	}
	if _, err := svc.CreateCorps(ctx, "   "); !errors.Is(err, apperrors.ErrValidationFailed) {
		t.Errorf("expected ErrValidationFailed, got %v", err)
	}
	if _, err := svc.GetCorpsByID(ctx, 99); !errors.Is(err, apperrors.ErrCorpsNotFound) {
		t.Errorf("expected ErrCorpsNotFound, got %v", err)
	}

	if _, err := svc.UpdateCorps(ctx, created.ID, "Б"); err != nil {
		t.Fatalf("UpdateCorps: %v", err)
	}
	if err := svc.DeleteCorps(ctx, created.ID); err != nil {
		t.Fatalf("DeleteCorps: %v", err)
	}
	if err := svc.DeleteCorps(ctx, created.ID); !errors.Is(err, apperrors.ErrCorpsNotFound) {
		t.Errorf("expected ErrCorpsNotFound, got %v", err)
	}

	if len(events.events) != 3 {
		t.Fatalf("got %d events, want 3", len(events.events))
	}
	if events.events[2].Type != websocket.EventCorpsChanged || events.events[2].Corps != "Б" {
		t.Errorf("unexpected event %+v", events.events[2])
	}
}

// fakeRoomStore keeps rooms of a fakeCorpsStore in memory
type fakeRoomStore struct {
	corps  *fakeCorpsStore
	rooms  map[int64]*models.Room
	nextID int64
}

func (s *fakeRoomStore) Create(_ context.Context, r *models.Room) error {
	if _, ok := s.corps.corps[r.CorpsID]; !ok {
		return apperrors.ErrCorpsNotFound
	}
	for _, existing := range s.rooms {
		if existing.CorpsID == r.CorpsID && existing.Number == r.Number {
			return apperrors.ErrRoomAlreadyExists
		}
	}
	s.nextID++
	r.ID = s.nextID
	copied := *r
	s.rooms[r.ID] = &copied
	return nil
}

func (s *fakeRoomStore) GetByID(_ context.Context, id int64) (*models.Room, error) {
	r, ok := s.rooms[id]
	if !ok {
		return nil, apperrors.ErrRoomNotFound
	}
	copied := *r
	copied.CorpsName = s.corps.corps[r.CorpsID].Name
	return &copied, nil
}

func (s *fakeRoomStore) List(_ context.Context, corps []string) ([]*models.Room, error) {
	out := []*models.Room{}
	for id := int64(1); id <= s.nextID; id++ {
		r, ok := s.rooms[id]
		if !ok {
			continue
		}
		name := s.corps.corps[r.CorpsID].Name
		if len(corps) > 0 && !contains(corps, name) {
			continue
		}
		copied := *r
		copied.CorpsName = name
		out = append(out, &copied)
	}
	return out, nil
}

func (s *fakeRoomStore) Update(_ context.Context, r *models.Room) error {
	if _, ok := s.rooms[r.ID]; !ok {
		return apperrors.ErrRoomNotFound
	}
	if _, ok := s.corps.corps[r.CorpsID]; !ok {
		return apperrors.ErrCorpsNotFound
	}
	copied := *r
	s.rooms[r.ID] = &copied
	return nil
}

func (s *fakeRoomStore) Delete(_ context.Context, id int64) error {
	if _, ok := s.rooms[id]; !ok {
		return apperrors.ErrRoomNotFound
	}
	delete(s.rooms, id)
	return nil
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

func TestRoomService(t *testing.T) {
	ctx := context.Background()
	corps := newFakeCorpsStore("А", "Б")
	events := &recordedEvents{}
	svc := NewRoomService(&fakeRoomStore{corps: corps, rooms: map[int64]*models.Room{}}, events)

	room, err := svc.CreateRoom(ctx, &models.Room{Number: " 100 ", CorpsID: 1})
	if err != nil {
		t.Fatalf("CreateRoom: %v", err)
	}
	if room.Number != "100" || room.CorpsName != "А" {
		t.Errorf("unexpected room %+v", room)
	}

	tests := []struct {
		name string
		room *models.Room
		want error
	}{
		{"duplicate", &models.Room{Number: "100", CorpsID: 1}, apperrors.ErrRoomAlreadyExists},
		{"unknown corps", &models.Room{Number: "101", CorpsID: 42}, apperrors.ErrCorpsNotFound},
		{"empty number", &models.Room{Number: "", CorpsID: 1}, apperrors.ErrValidationFailed},
		{"bad number", &models.Room{Number: "#1", CorpsID: 1}, apperrors.ErrValidationFailed},
		{"no corps", &models.Room{Number: "102"}, apperrors.ErrValidationFailed},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := svc.CreateRoom(ctx, tt.room); !errors.Is(err, tt.want) {
				t.Errorf("got %v, want %v", err, tt.want)
			}
		})
	}

	if _, err := svc.CreateRoom(ctx, &models.Room{Number: "200", CorpsID: 2}); err != nil {
		t.Fatal(err)
	}
	rooms, err := svc.ListRooms(ctx, []string{"Б", " "})
	if err != nil || len(rooms) != 1 || rooms[0].Number != "200" {
		t.Fatalf("ListRooms = %v, %v", rooms, err)
	}

	// moving a room notifies both corps
	events.events = nil
	if _, err := svc.UpdateRoom(ctx, &models.Room{ID: room.ID, Number: "100", CorpsID: 2}); err != nil {
		t.Fatalf("UpdateRoom: %v", err)
	}
	if len(events.events) != 2 || events.events[0].Corps != "А" || events.events[1].Corps != "Б" {
		t.Errorf("unexpected events %+v", events.events)
	}

	if err := svc.DeleteRoom(ctx, room.ID); err != nil {
		t.Fatalf("DeleteRoom: %v", err)
	}
	if _, err := svc.GetRoomByID(ctx, room.ID); !errors.Is(err, apperrors.ErrRoomNotFound) {
		t.Errorf("expected ErrRoomNotFound, got %v", err)
	}
}

// fakeLessonStore keeps lessons in memory; rooms 1..9 exist and belong to corps "А"
type fakeLessonStore struct {
	lessons map[int64]*models.Lesson
	nextID  int64
}

func (s *fakeLessonStore) Create(_ context.Context, l *models.Lesson) error {
	if l.RoomID >= 10 {
		return apperrors.ErrRoomNotFound
	}
	s.nextID++
	l.ID = s.nextID
	copied := *l
	s.lessons[l.ID] = &copied
	return nil
}

func (s *fakeLessonStore) GetByID(_ context.Context, id int64) (*models.Lesson, error) {
	l, ok := s.lessons[id]
	if !ok {
		return nil, apperrors.ErrLessonNotFound
	}
	copied := *l
	copied.Room = &models.Room{ID: l.RoomID, Number: "100", CorpsName: "А"}
	return &copied, nil
}

func (s *fakeLessonStore) List(_ context.Context, filter repositories.LessonFilter, offset, limit uint64) ([]*models.Lesson, int64, error) {
	all := []*models.Lesson{}
	for id := int64(1); id <= s.nextID; id++ {
		l, ok := s.lessons[id]
		if !ok || (filter.RoomID != 0 && l.RoomID != filter.RoomID) || (filter.Weekday != 0 && l.Weekday != filter.Weekday) {
			continue
		}
		all = append(all, l)
	}
	total := int64(len(all))
	if offset >= uint64(len(all)) {
		return []*models.Lesson{}, total, nil
	}
	end := offset + limit
	if end > uint64(len(all)) {
		end = uint64(len(all))
	}
	return all[offset:end], total, nil
}

func (s *fakeLessonStore) Update(_ context.Context, l *models.Lesson) error {
	if _, ok := s.lessons[l.ID]; !ok {
		return apperrors.ErrLessonNotFound
	}
	copied := *l
	s.lessons[l.ID] = &copied
	return nil
}

func (s *fakeLessonStore) Delete(_ context.Context, id int64) error {
	if _, ok := s.lessons[id]; !ok {
		return apperrors.ErrLessonNotFound
	}
	delete(s.lessons, id)
	return nil
}

func validLesson() *models.Lesson {
	return &models.Lesson{
		RoomID:     1,
		Weekday:    1,
		WeekParity: models.ParityEvery,
		TimeStart:  models.MustParseTimeOfDay("08:30"),
		TimeEnd:    models.MustParseTimeOfDay("10:05"),
		Subject:    "Физика",
	}
}

func date(s string) *time.Time {
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return &d
}

func TestValidateLesson(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(l *models.Lesson)
		ok     bool
	}{
		{"valid", func(*models.Lesson) {}, true},
		{"single date", func(l *models.Lesson) { l.DateStart = date("2026-09-01") }, true},
		{"date range", func(l *models.Lesson) { l.DateStart, l.DateEnd = date("2026-09-01"), date("2026-12-28") }, true},
		{"date_end only", func(l *models.Lesson) { l.DateEnd = date("2026-12-28") }, false},
		{"reversed dates", func(l *models.Lesson) { l.DateStart, l.DateEnd = date("2026-12-28"), date("2026-09-01") }, false},
		{"weekday zero", func(l *models.Lesson) { l.Weekday = 0 }, false},
		{"weekday eight", func(l *models.Lesson) { l.Weekday = 8 }, false},
		{"bad parity", func(l *models.Lesson) { l.WeekParity = 5 }, false},
		{"equal times", func(l *models.Lesson) { l.TimeEnd = l.TimeStart }, false},
		{"empty subject", func(l *models.Lesson) { l.Subject = "  " }, false},
		{"no room", func(l *models.Lesson) { l.RoomID = 0 }, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := validLesson()
			tt.mutate(l)
			err := ValidateLesson(l)
			if tt.ok && err != nil {
				t.Errorf("unexpected error %v", err)
			}
			if !tt.ok && !errors.Is(err, apperrors.ErrValidationFailed) {
				t.Errorf("expected ErrValidationFailed, got %v", err)
			}
		})
	}
}

func TestLessonService(t *testing.T) {
	ctx := context.Background()
	events := &recordedEvents{}
	svc := NewLessonService(&fakeLessonStore{lessons: map[int64]*models.Lesson{}}, events)

	created, err := svc.CreateLesson(ctx, validLesson())
	if err != nil {
		t.Fatalf("CreateLesson: %v", err)
	}
	if created.Room == nil || created.Room.CorpsName != "А" {
		t.Errorf("created lesson must carry its room: %+v", created)
	}

	missingRoom := validLesson()
	missingRoom.RoomID = 11
	if _, err := svc.CreateLesson(ctx, missingRoom); !errors.Is(err, apperrors.ErrRoomNotFound) {
		t.Errorf("expected ErrRoomNotFound, got %v", err)
	}

	second := validLesson()
	second.Weekday = 3
	if _, err := svc.CreateLesson(ctx, second); err != nil {
		t.Fatal(err)
	}

	page, total, err := svc.ListLessons(ctx, repositories.LessonFilter{Weekday: 3}, 1, 10)
	if err != nil || total != 1 || len(page) != 1 {
		t.Fatalf("ListLessons = %d items, total %d, %v", len(page), total, err)
	}
	if _, _, err := svc.ListLessons(ctx, repositories.LessonFilter{Weekday: 9}, 1, 10); !errors.Is(err, apperrors.ErrValidationFailed) {
		t.Errorf("expected ErrValidationFailed, got %v", err)
	}

	update := validLesson()
	update.ID = created.ID
	update.Subject = "Химия"
	updated, err := svc.UpdateLesson(ctx, update)
	if err != nil || updated.Subject != "Химия" {
		t.Fatalf("UpdateLesson = %+v, %v", updated, err)
	}

	if err := svc.DeleteLesson(ctx, created.ID); err != nil {
		t.Fatalf("DeleteLesson: %v", err)
	}
	if err := svc.DeleteLesson(ctx, created.ID); !errors.Is(err, apperrors.ErrLessonNotFound) {
		t.Errorf("expected ErrLessonNotFound, got %v", err)
	}

	types := []string{}
	for _, e := range events.events {
		types = append(types, e.Type)
	}
	want := []string{websocket.EventLessonCreated, websocket.EventLessonCreated, websocket.EventLessonUpdated, websocket.EventLessonDeleted}
	if len(types) != len(want) {
		t.Fatalf("events = %v, want %v", types, want)
	}
	for i := range want {
		if types[i] != want[i] {
			t.Errorf("event %d = %s, want %s", i, types[i], want[i])
		}
	}
}

type fakeSemesterStore struct {
	start *models.SemesterStart
}

func (s *fakeSemesterStore) Get(context.Context) (*models.SemesterStart, error) {
	if s.start == nil {
		return nil, apperrors.ErrSemesterNotConfigured
	}
	return s.start, nil
}

func (s *fakeSemesterStore) Set(_ context.Context, d time.Time) (*models.SemesterStart, error) {
	s.start = &models.SemesterStart{Date: d, UpdatedAt: time.Now()}
	return s.start, nil
}

func TestSemesterService(t *testing.T) {
	ctx := context.Background()
	store := &fakeSemesterStore{}
	events := &recordedEvents{}
	svc := NewSemesterService(store, events, time.UTC).(*semesterServiceImpl)
	svc.now = func() time.Time { return time.Date(2026, 9, 15, 10, 0, 0, 0, time.UTC) }

	if _, err := svc.WeekInfo(ctx, nil); !errors.Is(err, apperrors.ErrSemesterNotConfigured) {
		t.Fatalf("expected ErrSemesterNotConfigured, got %v", err)
	}

	if _, err := svc.SetSemesterStart(ctx, time.Date(2026, 9, 1, 15, 30, 0, 0, time.UTC)); err != nil {
		t.Fatalf("SetSemesterStart: %v", err)
	}
	if store.start.Date.Hour() != 0 {
		t.Errorf("stored date must be truncated: %v", store.start.Date)
	}
	if len(events.events) != 1 || events.events[0].Type != websocket.EventSemesterUpdated {
		t.Errorf("unexpected events %+v", events.events)
	}

	info, err := svc.WeekInfo(ctx, nil)
	if err != nil {
		t.Fatal(err)
	}
	if info.WeekNumber != 3 || info.Parity != models.ParityOdd {
		t.Errorf("today: week %d parity %s, want 3 odd", info.WeekNumber, info.Parity)
	}

	info, err = svc.WeekInfo(ctx, date("2026-09-08"))
	if err != nil {
		t.Fatal(err)
	}
	if info.WeekNumber != 2 || info.Parity != models.ParityEven {
		t.Errorf("2026-09-08: week %d parity %s, want 2 even", info.WeekNumber, info.Parity)
	}
}

// fakeAvailabilityStore serves a fixed roster and lesson set
type fakeAvailabilityStore struct {
	start   *time.Time
	rooms   []models.Room
	lessons []models.Occupancy
}

func (s *fakeAvailabilityStore) RoomsByCorps(_ context.Context, corps []string) ([]models.Room, error) {
	out := []models.Room{}
	for _, r := range s.rooms {
		if contains(corps, r.CorpsName) {
			out = append(out, r)
		}
	}
	return out, nil
}

func (s *fakeAvailabilityStore) Occupancies(_ context.Context, roomIDs []int64, _ availability.OccupancyQuery) ([]models.Occupancy, error) {
	out := []models.Occupancy{}
	for _, o := range s.lessons {
		for _, id := range roomIDs {
			if o.RoomID == id {
				out = append(out, o)
			}
		}
	}
	return out, nil
}

func (s *fakeAvailabilityStore) SemesterStart(context.Context) (time.Time, error) {
	if s.start == nil {
		return time.Time{}, apperrors.ErrSemesterNotConfigured
	}
	return *s.start, nil
}

type fakeSnapshots struct {
	store availability.Store
	calls int
}

func (f *fakeSnapshots) ReadSnapshot(ctx context.Context, fn func(ctx context.Context, store availability.Store) error) error {
	f.calls++
	return fn(ctx, f.store)
}

type recordingPublisher struct {
	snapshots []publish.FreeRoomsSnapshot
}

func (p *recordingPublisher) PublishFreeRooms(_ context.Context, s publish.FreeRoomsSnapshot) (string, error) {
	p.snapshots = append(p.snapshots, s)
	return publish.FreeRoomsRoot + "/" + s.Date, nil
}

func newAvailabilityFixture() *fakeAvailabilityStore {
	return &fakeAvailabilityStore{
		start: date("2026-09-01"),
		rooms: []models.Room{
			{ID: 1, Number: "100", CorpsID: 1, CorpsName: "А"},
			{ID: 2, Number: "200", CorpsID: 2, CorpsName: "Б"},
		},
		lessons: []models.Occupancy{
			// Monday 2026-09-07, every week
			{RoomID: 1, Weekday: 1, WeekParity: models.ParityEvery, TimeStart: models.MustParseTimeOfDay("10:00"), TimeEnd: models.MustParseTimeOfDay("11:30")},
		},
	}
}

func TestFreeRoomServiceGetFreeRooms(t *testing.T) {
	ctx := context.Background()
	snapshots := &fakeSnapshots{store: newAvailabilityFixture()}
	svc := NewFreeRoomService(snapshots, newFakeCorpsStore("А", "Б"), nil, FreeRoomOptions{MinGap: 10 * time.Minute}, nopLogger)

	window, err := availability.NewWindow(models.MustParseTimeOfDay("09:00"), models.MustParseTimeOfDay("12:00"))
	if err != nil {
		t.Fatal(err)
	}

	free, err := svc.GetFreeRooms(ctx, FreeRoomsQuery{Corps: []string{"А"}, Date: date("2026-09-07"), Window: window})
	if err != nil {
		t.Fatalf("GetFreeRooms: %v", err)
	}
	if snapshots.calls != 1 {
		t.Errorf("snapshot opened %d times, want 1", snapshots.calls)
	}
	if len(free) != 2 || free[0].End != models.MustParseTimeOfDay("10:00") || free[1].Start != models.MustParseTimeOfDay("11:30") {
		t.Errorf("unexpected intervals %+v", free)
	}

	empty, err := svc.GetFreeRooms(ctx, FreeRoomsQuery{Corps: []string{"Нет"}, Date: date("2026-09-07"), Window: window})
	if err != nil || len(empty) != 0 {
		t.Errorf("unknown corps: %v, %v", empty, err)
	}

	bad := availability.Window{Start: window.End, End: window.Start}
	if _, err := svc.GetFreeRooms(ctx, FreeRoomsQuery{Corps: []string{"А"}, Window: bad}); !errors.Is(err, apperrors.ErrInvalidWindow) {
		t.Errorf("expected ErrInvalidWindow, got %v", err)
	}

	unconfigured := NewFreeRoomService(&fakeSnapshots{store: &fakeAvailabilityStore{}}, newFakeCorpsStore(), nil, FreeRoomOptions{}, nopLogger)
	if _, err := unconfigured.GetFreeRooms(ctx, FreeRoomsQuery{Corps: []string{"А"}, Window: window}); !errors.Is(err, apperrors.ErrSemesterNotConfigured) {
		t.Errorf("expected ErrSemesterNotConfigured, got %v", err)
	}
}

func TestFreeRoomServicePublish(t *testing.T) {
	ctx := context.Background()
	window, _ := availability.NewWindow(models.MustParseTimeOfDay("09:00"), models.MustParseTimeOfDay("12:00"))
	pub := &recordingPublisher{}
	svc := NewFreeRoomService(&fakeSnapshots{store: newAvailabilityFixture()}, newFakeCorpsStore("А", "Б", "В"), pub,
		FreeRoomOptions{MinGap: 10 * time.Minute, PublishWindow: window}, nopLogger).(*freeRoomServiceImpl)
	svc.now = func() time.Time { return time.Date(2026, 9, 7, 6, 0, 0, 0, time.UTC) }

	if err := svc.RepublishToday(ctx, websocket.Event{Type: websocket.EventLessonCreated}); err != nil {
		t.Fatalf("RepublishToday: %v", err)
	}
	if len(pub.snapshots) != 1 {
		t.Fatalf("published %d snapshots, want 1", len(pub.snapshots))
	}

	snap := pub.snapshots[0]
	if snap.Date != "2026-09-07" || snap.TimeStart != "09:00" || snap.TimeEnd != "12:00" {
		t.Errorf("unexpected snapshot header %+v", snap)
	}
	if len(snap.Corps["А"]) != 2 || len(snap.Corps["Б"]) != 1 {
		t.Errorf("unexpected corps slots %+v", snap.Corps)
	}
	if slots, ok := snap.Corps["В"]; !ok || len(slots) != 0 {
		t.Errorf("corps without rooms must be present and empty: %+v", snap.Corps)
	}
	if snap.LastUpdate != "2026-09-07T06:00:00Z" {
		t.Errorf("last_update = %s", snap.LastUpdate)
	}

	disabled := NewFreeRoomService(&fakeSnapshots{store: newAvailabilityFixture()}, newFakeCorpsStore("А"), nil, FreeRoomOptions{}, nopLogger)
	if _, err := disabled.PublishFreeRooms(ctx, date("2026-09-07"), window); !errors.Is(err, apperrors.ErrServiceUnavailable) {
		t.Errorf("expected ErrServiceUnavailable, got %v", err)
	}
}

func TestAuthServiceLogin(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.MinCost)
	if err != nil {
		t.Fatal(err)
	}
	jwtSvc := auth.NewJWTService(auth.JWTConfig{SecretKey: "test", AccessTokenExp: time.Hour, TokenIssuer: "test"})
	svc := NewAuthService(AdminAccount{Username: "admin", PasswordHash: string(hash)}, jwtSvc, nopLogger)
	ctx := context.Background()

	resp, err := svc.Login(ctx, &dto.LoginRequest{Username: "admin", Password: "s3cret"})
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	claims, err := jwtSvc.ValidateToken(resp.AccessToken)
	if err != nil || claims.Role != auth.RoleAdmin {
		t.Fatalf("token claims %+v, %v", claims, err)
	}

	for _, req := range []dto.LoginRequest{
		{Username: "admin", Password: "wrong"},
		{Username: "root", Password: "s3cret"},
	} {
		if _, err := svc.Login(ctx, &req); !errors.Is(err, apperrors.ErrInvalidCredentials) {
			t.Errorf("%+v: expected ErrInvalidCredentials, got %v", req, err)
		}
	}

	noHash := NewAuthService(AdminAccount{Username: "admin"}, jwtSvc, nopLogger)
	if _, err := noHash.Login(ctx, &dto.LoginRequest{Username: "admin", Password: "x"}); !errors.Is(err, apperrors.ErrInvalidCredentials) {
		t.Errorf("expected ErrInvalidCredentials without a configured hash, got %v", err)
	}
}

type fakeLoader struct {
	rows    []importer.Row
	replace bool
	err     error
}

func (f *fakeLoader) Load(_ context.Context, rows []importer.Row, replace bool) (*importer.Result, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.rows, f.replace = rows, replace
	return &importer.Result{Rows: len(rows), LessonsAdded: len(rows)}, nil
}

func uploadedFile(t *testing.T, name, content string) *multipart.FileHeader {
	t.Helper()
	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	part, err := w.CreateFormFile("file", name)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := part.Write([]byte(content)); err != nil {
		t.Fatal(err)
	}
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}

	form, err := multipart.NewReader(&body, w.Boundary()).ReadForm(1 << 20)
	if err != nil {
		t.Fatal(err)
	}
	return form.File["file"][0]
}

func TestImportService(t *testing.T) {
	ctx := context.Background()
	storage, err := filestorage.NewLocalStorage(t.TempDir(), "")
	if err != nil {
		t.Fatal(err)
	}
	loader := &fakeLoader{}
	events := &recordedEvents{}
	svc := NewImportService(storage, loader, events, nopLogger)

	csv := "corps,room,weekday,time_start,time_end,subject\nА,100,1,08:30,10:05,Физика\n"
	result, err := svc.ImportTimetable(ctx, uploadedFile(t, "week.csv", csv), ImportOptions{Replace: true})
	if err != nil {
		t.Fatalf("ImportTimetable: %v", err)
	}
	if result.Archived == "" || len(loader.rows) != 1 || !loader.replace {
		t.Errorf("unexpected result %+v, loader %+v", result, loader)
	}
	if len(events.events) != 1 || events.events[0].Type != websocket.EventTimetableImported {
		t.Errorf("unexpected events %+v", events.events)
	}

	if _, err := svc.ImportTimetable(ctx, uploadedFile(t, "week.pdf", "x"), ImportOptions{}); !errors.Is(err, apperrors.ErrValidationFailed) {
		t.Errorf("expected ErrValidationFailed for pdf, got %v", err)
	}

	broken := "corps,room,weekday,time_start,time_end,subject\nА,100,9,08:30,10:05,Физика\n"
	if _, err := svc.ImportTimetable(ctx, uploadedFile(t, "week.csv", broken), ImportOptions{}); !errors.Is(err, apperrors.ErrValidationFailed) {
		t.Errorf("expected ErrValidationFailed for a bad row, got %v", err)
	}

	loader.err = errors.New("connection reset")
	if _, err := svc.ImportTimetable(ctx, uploadedFile(t, "week.csv", csv), ImportOptions{}); err == nil {
		t.Error("expected loader error")
	}
}
