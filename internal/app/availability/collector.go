package availability

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/Dermofet/MephiApp-sub000/internal/app/models"
)

// OccupancyQuery selects the lessons that take a room during a window of a date
type OccupancyQuery struct {
	Weekday int
	Parity  models.WeekParity
	Date    time.Time
	Window  Window
}

// Matches reports whether the lesson occupies its room for this query
func (q OccupancyQuery) Matches(o models.Occupancy) bool {
	if o.Weekday != q.Weekday {
		return false
	}
	if !o.WeekParity.Includes(q.Parity) {
		return false
	}
	if !ValidOn(o, q.Date) {
		return false
	}
	return Interval{Start: o.TimeStart, End: o.TimeEnd}.Overlaps(q.Window)
}

// ValidOn applies the date range of a lesson.
// No dates: the whole semester. Only a start date: that single day.
// Both: the inclusive range. An end date without a start never matches.
func ValidOn(o models.Occupancy, date time.Time) bool {
	switch {
	case o.DateStart == nil && o.DateEnd == nil:
		return true
	case o.DateStart != nil && o.DateEnd == nil:
		return sameDay(*o.DateStart, date)
	case o.DateStart != nil && o.DateEnd != nil:
		return !beforeDay(date, *o.DateStart) && !beforeDay(*o.DateEnd, date)
	default:
		return false
	}
}

// OccupancySource loads the lessons of a set of rooms in one round trip.
// It may return extra records; the collector filters them with Matches.
type OccupancySource interface {
	Occupancies(ctx context.Context, roomIDs []int64, q OccupancyQuery) ([]models.Occupancy, error)
}

// Occupancy maps a room id to its occupied intervals, sorted by start then end
type Occupancy map[int64][]Interval

// Collect gathers the occupied intervals of every room in the roster.
// Rooms without lessons are present with an empty list.
func Collect(ctx context.Context, src OccupancySource, rooms []models.Room, q OccupancyQuery) (Occupancy, error) {
	result := make(Occupancy, len(rooms))
	if len(rooms) == 0 {
		return result, nil
	}

	ids := make([]int64, 0, len(rooms))
	for _, r := range rooms {
		if _, seen := result[r.ID]; seen {
			continue
		}
		result[r.ID] = []Interval{}
		ids = append(ids, r.ID)
	}

	records, err := src.Occupancies(ctx, ids, q)
	if err != nil {
		return nil, fmt.Errorf("failed to load occupancies: %w", err)
	}

	for _, rec := range records {
		list, ok := result[rec.RoomID]
		if !ok || !q.Matches(rec) {
			continue
		}
		result[rec.RoomID] = append(list, Interval{Start: rec.TimeStart, End: rec.TimeEnd})
	}

	for id, list := range result {
		sort.Slice(list, func(i, j int) bool {
			if list[i].Start != list[j].Start {
				return list[i].Start < list[j].Start
			}
			return list[i].End < list[j].End
		})
		result[id] = list
	}

	return result, nil
}

func sameDay(a, b time.Time) bool {
	return daysBetween(a, b) == 0
}

// beforeDay reports whether a falls on an earlier calendar day than b
func beforeDay(a, b time.Time) bool {
	return daysBetween(a, b) > 0
}
