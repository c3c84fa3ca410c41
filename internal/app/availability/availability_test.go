package availability

import (
	"context"
	"errors"
	"math/rand"
	"reflect"
	"testing"
	"time"

	"github.com/Dermofet/MephiApp-sub000/internal/app/models"
	"github.com/Dermofet/MephiApp-sub000/internal/pkg/apperrors"
)

func tm(s string) models.TimeOfDay { return models.MustParseTimeOfDay(s) }

func day(s string) time.Time {
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return d
}

func datePtr(s string) *time.Time {
	d := day(s)
	return &d
}

func iv(start, end string) Interval { return Interval{Start: tm(start), End: tm(end)} }

// 2026-09-01 is a Tuesday
var semesterStart = day("2026-09-01")

func TestWeekNumber(t *testing.T) {
	tests := []struct {
		date string
		want int
	}{
		{"2026-09-01", 1},
		{"2026-09-07", 1},
		{"2026-09-08", 2},
		{"2026-09-15", 3},
		{"2026-08-31", 0},
		{"2026-08-25", 0},
		{"2026-08-24", -1},
	}
	for _, tt := range tests {
		if got := WeekNumber(day(tt.date), semesterStart); got != tt.want {
			t.Errorf("WeekNumber(%s) = %d, want %d", tt.date, got, tt.want)
		}
	}
}

func TestWeekNumberIgnoresClockTime(t *testing.T) {
	late := time.Date(2026, 9, 7, 23, 59, 0, 0, time.FixedZone("MSK", 3*3600))
	if got := WeekNumber(late, semesterStart); got != 1 {
		t.Errorf("WeekNumber = %d, want 1", got)
	}
}

func TestWeekParity(t *testing.T) {
	tests := []struct {
		date string
		want models.WeekParity
	}{
		{"2026-09-01", models.ParityOdd},
		{"2026-09-08", models.ParityEven},
		{"2026-09-15", models.ParityOdd},
		{"2026-08-31", models.ParityOdd}, // week 0
		{"2026-08-20", models.ParityOdd}, // week -1
	}
	for _, tt := range tests {
		if got := WeekParity(day(tt.date), semesterStart); got != tt.want {
			t.Errorf("WeekParity(%s) = %v, want %v", tt.date, got, tt.want)
		}
	}
}

func TestWeekday(t *testing.T) {
	tests := map[string]int{
		"2026-09-07": 1,
		"2026-09-01": 2,
		"2026-09-05": 6,
		"2026-09-06": 7,
	}
	for date, want := range tests {
		if got := Weekday(day(date)); got != want {
			t.Errorf("Weekday(%s) = %d, want %d", date, got, want)
		}
	}
}

func TestSemesterClockNotConfigured(t *testing.T) {
	_, _, err := NewSemesterClock(nil).Week(day("2026-09-01"))
	if !errors.Is(err, apperrors.ErrSemesterNotConfigured) {
		t.Fatalf("expected ErrSemesterNotConfigured, got %v", err)
	}
}

func TestValidOn(t *testing.T) {
	date := day("2026-10-05")
	tests := []struct {
		name  string
		start *time.Time
		end   *time.Time
		want  bool
	}{
		{"no dates", nil, nil, true},
		{"single day match", datePtr("2026-10-05"), nil, true},
		{"single day other", datePtr("2026-10-06"), nil, false},
		{"range inside", datePtr("2026-09-01"), datePtr("2026-12-28"), true},
		{"range starts on date", datePtr("2026-10-05"), datePtr("2026-12-28"), true},
		{"range ends on date", datePtr("2026-09-01"), datePtr("2026-10-05"), true},
		{"range before", datePtr("2026-09-01"), datePtr("2026-10-04"), false},
		{"range after", datePtr("2026-10-06"), datePtr("2026-12-28"), false},
		{"end only", nil, datePtr("2026-12-28"), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := models.Occupancy{DateStart: tt.start, DateEnd: tt.end}
			if got := ValidOn(o, date); got != tt.want {
				t.Errorf("ValidOn = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestMatchesParity(t *testing.T) {
	base := models.Occupancy{RoomID: 1, Weekday: 1, TimeStart: tm("10:00"), TimeEnd: tm("11:30")}
	window := iv("09:00", "12:00")

	for _, parity := range []models.WeekParity{models.ParityOdd, models.ParityEven} {
		q := OccupancyQuery{Weekday: 1, Parity: parity, Date: day("2026-09-07"), Window: window}

		every := base
		every.WeekParity = models.ParityEvery
		if !q.Matches(every) {
			t.Errorf("every-week lesson must occupy on %v weeks", parity)
		}

		same := base
		same.WeekParity = parity
		if !q.Matches(same) {
			t.Errorf("%v lesson must occupy on %v weeks", parity, parity)
		}
	}

	odd := base
	odd.WeekParity = models.ParityOdd
	evenQuery := OccupancyQuery{Weekday: 1, Parity: models.ParityEven, Date: day("2026-09-14"), Window: window}
	if evenQuery.Matches(odd) {
		t.Error("odd lesson must not occupy on even weeks")
	}
}

func TestMatchesHalfOpenOverlap(t *testing.T) {
	q := OccupancyQuery{Weekday: 3, Parity: models.ParityOdd, Date: day("2026-09-02"), Window: iv("10:00", "12:00")}
	tests := []struct {
		lesson Interval
		want   bool
	}{
		{iv("08:30", "10:00"), false}, // ends at window start
		{iv("12:00", "13:30"), false}, // starts at window end
		{iv("09:59", "10:01"), true},
		{iv("11:59", "13:00"), true},
		{iv("08:00", "14:00"), true},
	}
	for _, tt := range tests {
		o := models.Occupancy{Weekday: 3, WeekParity: models.ParityEvery, TimeStart: tt.lesson.Start, TimeEnd: tt.lesson.End}
		if got := q.Matches(o); got != tt.want {
			t.Errorf("Matches(%s) = %v, want %v", tt.lesson, got, tt.want)
		}
	}

	wrongDay := models.Occupancy{Weekday: 4, WeekParity: models.ParityEvery, TimeStart: tm("10:00"), TimeEnd: tm("11:00")}
	if q.Matches(wrongDay) {
		t.Error("lesson on another weekday must not match")
	}
}

type fakeSource struct {
	records []models.Occupancy
	calls   int
	err     error
}

func (f *fakeSource) Occupancies(_ context.Context, _ []int64, _ OccupancyQuery) ([]models.Occupancy, error) {
	f.calls++
	return f.records, f.err
}

func every(roomID int64, weekday int, start, end string) models.Occupancy {
	return models.Occupancy{RoomID: roomID, Weekday: weekday, WeekParity: models.ParityEvery, TimeStart: tm(start), TimeEnd: tm(end)}
}

func TestCollect(t *testing.T) {
	rooms := []models.Room{{ID: 1, Number: "100"}, {ID: 2, Number: "101"}}
	src := &fakeSource{records: []models.Occupancy{
		every(1, 1, "12:00", "13:00"),
		every(1, 1, "09:00", "11:00"),
		every(1, 1, "09:00", "10:00"),
		every(1, 2, "09:00", "10:00"), // other weekday
		every(3, 1, "09:00", "10:00"), // room not in roster
		every(1, 1, "18:00", "19:00"), // outside window
	}}
	q := OccupancyQuery{Weekday: 1, Parity: models.ParityOdd, Date: day("2026-09-07"), Window: iv("08:30", "16:00")}

	got, err := Collect(context.Background(), src, rooms, q)
	if err != nil {
		t.Fatalf("Collect: %v", err)
	}
	if src.calls != 1 {
		t.Errorf("expected one batched read, got %d", src.calls)
	}

	want := Occupancy{
		1: {iv("09:00", "10:00"), iv("09:00", "11:00"), iv("12:00", "13:00")},
		2: {},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Collect = %v, want %v", got, want)
	}
}

func TestCollectEmptyRoster(t *testing.T) {
	src := &fakeSource{}
	got, err := Collect(context.Background(), src, nil, OccupancyQuery{})
	if err != nil {
		t.Fatalf("Collect: %v", err)
	}
	if len(got) != 0 || src.calls != 0 {
		t.Errorf("expected empty map without a read, got %v after %d calls", got, src.calls)
	}
}

func TestCollectSourceError(t *testing.T) {
	boom := errors.New("boom")
	_, err := Collect(context.Background(), &fakeSource{err: boom}, []models.Room{{ID: 1}}, OccupancyQuery{})
	if !errors.Is(err, boom) {
		t.Fatalf("expected wrapped source error, got %v", err)
	}
}

func TestFreeGaps(t *testing.T) {
	tests := []struct {
		name     string
		occupied []Interval
		window   Interval
		want     []Interval
	}{
		{
			name:     "boundary exactness",
			occupied: []Interval{iv("10:00", "11:30")},
			window:   iv("09:00", "12:00"),
			want:     []Interval{iv("09:00", "10:00"), iv("11:30", "12:00")},
		},
		{
			name:   "empty room",
			window: iv("08:30", "22:50"),
			want:   []Interval{iv("08:30", "22:50")},
		},
		{
			name:     "short gap merged",
			occupied: []Interval{iv("09:00", "10:00"), iv("10:05", "11:00")},
			window:   iv("09:00", "11:00"),
			want:     nil,
		},
		{
			name:     "gap equal to min gap dropped",
			occupied: []Interval{iv("09:00", "10:00"), iv("10:10", "11:00")},
			window:   iv("09:00", "11:00"),
			want:     nil,
		},
		{
			name:     "gap just above min gap kept",
			occupied: []Interval{iv("09:00", "10:00"), iv("10:11", "11:00")},
			window:   iv("09:00", "11:00"),
			want:     []Interval{iv("10:00", "10:11")},
		},
		{
			name:     "fully booked",
			occupied: []Interval{iv("08:30", "12:00"), iv("12:00", "18:00"), iv("17:00", "22:50")},
			window:   iv("08:30", "22:50"),
			want:     nil,
		},
		{
			name:     "nested interval does not move cursor back",
			occupied: []Interval{iv("09:00", "13:00"), iv("10:00", "11:00"), iv("14:00", "15:00")},
			window:   iv("08:00", "16:00"),
			want:     []Interval{iv("08:00", "09:00"), iv("13:00", "14:00"), iv("15:00", "16:00")},
		},
		{
			name:     "lessons sticking out of the window",
			occupied: []Interval{iv("07:00", "09:30"), iv("11:00", "20:00")},
			window:   iv("09:00", "12:00"),
			want:     []Interval{iv("09:30", "11:00")},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FreeGaps(tt.occupied, tt.window, DefaultMinGap)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("FreeGaps = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestResolveOrdering(t *testing.T) {
	rooms := []models.Room{
		{ID: 3, Number: "200", CorpsName: "Б"},
		{ID: 1, Number: "100", CorpsName: "Б"},
		{ID: 2, Number: "100", CorpsName: "А"},
	}
	occ := Occupancy{3: {}, 1: {iv("10:00", "11:00")}, 2: {}}

	got, err := Resolve(rooms, occ, iv("09:00", "12:00"), DefaultMinGap)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}

	want := []FreeInterval{
		{RoomID: 2, Room: "100", Corps: "А", Interval: iv("09:00", "12:00")},
		{RoomID: 1, Room: "100", Corps: "Б", Interval: iv("09:00", "10:00")},
		{RoomID: 1, Room: "100", Corps: "Б", Interval: iv("11:00", "12:00")},
		{RoomID: 3, Room: "200", Corps: "Б", Interval: iv("09:00", "12:00")},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Resolve = %v, want %v", got, want)
	}

	again, _ := Resolve(rooms, occ, iv("09:00", "12:00"), DefaultMinGap)
	if !reflect.DeepEqual(got, again) {
		t.Error("Resolve is not idempotent")
	}
}

func TestResolveEmptyRoom(t *testing.T) {
	rooms := []models.Room{{ID: 7, Number: "А-100", CorpsName: "А"}}
	got, err := Resolve(rooms, Occupancy{7: {}}, iv("08:30", "22:50"), DefaultMinGap)
	if err != nil {
		t.Fatal(err)
	}
	want := []FreeInterval{{RoomID: 7, Room: "А-100", Corps: "А", Interval: iv("08:30", "22:50")}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Resolve = %v, want %v", got, want)
	}
}

func TestResolveInvalidWindow(t *testing.T) {
	for _, w := range []Interval{iv("12:00", "12:00"), iv("13:00", "12:00")} {
		if _, err := Resolve(nil, nil, w, DefaultMinGap); !errors.Is(err, apperrors.ErrInvalidWindow) {
			t.Errorf("Resolve(%s) error = %v, want ErrInvalidWindow", w, err)
		}
	}
}

// randomOccupied builds sorted intervals inside [06:00, 24:00)
func randomOccupied(r *rand.Rand) []Interval {
	n := r.Intn(8)
	list := make([]Interval, 0, n)
	for i := 0; i < n; i++ {
		start := models.TimeOfDay(360 + r.Intn(1000))
		end := start + models.TimeOfDay(5+r.Intn(120))
		list = append(list, Interval{Start: start, End: min(end, models.MinutesPerDay)})
	}
	sortIntervals(list)
	return list
}

func sortIntervals(list []Interval) {
	for i := 1; i < len(list); i++ {
		for j := i; j > 0 && (list[j].Start < list[j-1].Start || (list[j].Start == list[j-1].Start && list[j].End < list[j-1].End)); j-- {
			list[j], list[j-1] = list[j-1], list[j]
		}
	}
}

func TestFreeGapsCoverageAndNoOverlap(t *testing.T) {
	r := rand.New(rand.NewSource(42))
	window := iv("08:30", "22:50")

	for round := 0; round < 500; round++ {
		occupied := randomOccupied(r)
		free := FreeGaps(occupied, window, DefaultMinGap)

		for _, f := range free {
			if f.Start < window.Start || f.End > window.End || f.Start >= f.End {
				t.Fatalf("round %d: free interval %s outside window", round, f)
			}
			if f.Duration() <= DefaultMinGap {
				t.Fatalf("round %d: sliver %s emitted", round, f)
			}
			for _, o := range occupied {
				if f.Overlaps(o) {
					t.Fatalf("round %d: free %s overlaps occupied %s", round, f, o)
				}
			}
		}

		// every minute of the window is occupied, free, or part of a sliver no longer than minGap
		covered := make([]bool, window.End-window.Start)
		mark := func(i Interval) {
			for m := max(i.Start, window.Start); m < min(i.End, window.End); m++ {
				covered[m-window.Start] = true
			}
		}
		for _, o := range occupied {
			mark(o)
		}
		for _, f := range free {
			mark(f)
		}
		run := 0
		for _, c := range covered {
			if c {
				run = 0
				continue
			}
			run++
			if minutes(models.TimeOfDay(run)) > DefaultMinGap {
				t.Fatalf("round %d: %d uncovered minutes in %v", round, run, occupied)
			}
		}
	}
}

type fakeStore struct {
	fakeSource
	rooms      []models.Room
	start      *time.Time
	roomsCalls int
}

func (f *fakeStore) RoomsByCorps(_ context.Context, corps []string) ([]models.Room, error) {
	f.roomsCalls++
	wanted := make(map[string]bool, len(corps))
	for _, c := range corps {
		wanted[c] = true
	}
	var out []models.Room
	for _, r := range f.rooms {
		if wanted[r.CorpsName] {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeStore) SemesterStart(_ context.Context) (time.Time, error) {
	if f.start == nil {
		return time.Time{}, apperrors.ErrSemesterNotConfigured
	}
	return *f.start, nil
}

func newFakeStore() *fakeStore {
	start := semesterStart
	odd := every(1, 1, "10:00", "11:30")
	odd.WeekParity = models.ParityOdd
	return &fakeStore{
		fakeSource: fakeSource{records: []models.Occupancy{odd, every(2, 1, "09:00", "12:00")}},
		rooms: []models.Room{
			{ID: 1, Number: "100", CorpsName: "А"},
			{ID: 2, Number: "101", CorpsName: "А"},
			{ID: 3, Number: "200", CorpsName: "Б"},
		},
		start: &start,
	}
}

func TestFindFreeRoomsParity(t *testing.T) {
	store := newFakeStore()
	window := iv("09:00", "12:00")

	// 2026-09-07: Monday of week 1 (odd)
	got, err := FindFreeRooms(context.Background(), store, Query{Corps: []string{"А"}, Date: day("2026-09-07"), Window: window}, DefaultMinGap)
	if err != nil {
		t.Fatalf("FindFreeRooms: %v", err)
	}
	want := []FreeInterval{
		{RoomID: 1, Room: "100", Corps: "А", Interval: iv("09:00", "10:00")},
		{RoomID: 1, Room: "100", Corps: "А", Interval: iv("11:30", "12:00")},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("odd week = %v, want %v", got, want)
	}

	// 2026-09-14: Monday of week 2 (even); the odd lesson does not count
	got, err = FindFreeRooms(context.Background(), store, Query{Corps: []string{"А"}, Date: day("2026-09-14"), Window: window}, DefaultMinGap)
	if err != nil {
		t.Fatalf("FindFreeRooms: %v", err)
	}
	want = []FreeInterval{{RoomID: 1, Room: "100", Corps: "А", Interval: window}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("even week = %v, want %v", got, want)
	}
}

func TestFindFreeRoomsEmptyResults(t *testing.T) {
	store := newFakeStore()
	window := iv("09:00", "12:00")

	got, err := FindFreeRooms(context.Background(), store, Query{Date: day("2026-09-07"), Window: window}, DefaultMinGap)
	if err != nil || len(got) != 0 {
		t.Errorf("no corps: got %v, %v", got, err)
	}
	if store.roomsCalls != 0 || store.calls != 0 {
		t.Error("no corps must not read the store")
	}

	got, err = FindFreeRooms(context.Background(), store, Query{Corps: []string{"Z"}, Date: day("2026-09-07"), Window: window}, DefaultMinGap)
	if err != nil || len(got) != 0 {
		t.Errorf("unknown corps: got %v, %v", got, err)
	}
}

func TestFindFreeRoomsErrors(t *testing.T) {
	store := newFakeStore()
	store.start = nil

	_, err := FindFreeRooms(context.Background(), store, Query{Corps: []string{"А"}, Date: day("2026-09-07"), Window: iv("09:00", "12:00")}, DefaultMinGap)
	if !errors.Is(err, apperrors.ErrSemesterNotConfigured) {
		t.Errorf("expected ErrSemesterNotConfigured, got %v", err)
	}

	_, err = FindFreeRooms(context.Background(), store, Query{Corps: []string{"А"}, Date: day("2026-09-07"), Window: iv("12:00", "09:00")}, DefaultMinGap)
	if !errors.Is(err, apperrors.ErrInvalidWindow) {
		t.Errorf("expected ErrInvalidWindow, got %v", err)
	}
}
