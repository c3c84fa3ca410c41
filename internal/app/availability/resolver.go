package availability

import (
	"sort"
	"time"

	"github.com/Dermofet/MephiApp-sub000/internal/app/models"
)

// FreeInterval is a continuous free slot of a room
type FreeInterval struct {
	RoomID int64
	Room   string
	Corps  string
	Interval
}

// Resolve computes the free intervals of every room in the roster within window.
// Gaps not longer than minGap are dropped. A room with no occupied intervals is free
// for the whole window. The result is sorted by room name, corps name and start.
func Resolve(rooms []models.Room, occupancy Occupancy, window Window, minGap time.Duration) ([]FreeInterval, error) {
	if err := window.Validate(); err != nil {
		return nil, err
	}

	result := make([]FreeInterval, 0, len(rooms))
	seen := make(map[int64]struct{}, len(rooms))
	for _, room := range rooms {
		if _, dup := seen[room.ID]; dup {
			continue
		}
		seen[room.ID] = struct{}{}

		for _, gap := range FreeGaps(occupancy[room.ID], window, minGap) {
			result = append(result, FreeInterval{
				RoomID:   room.ID,
				Room:     room.Number,
				Corps:    room.CorpsName,
				Interval: gap,
			})
		}
	}

	sort.SliceStable(result, func(i, j int) bool {
		a, b := result[i], result[j]
		if a.Room != b.Room {
			return a.Room < b.Room
		}
		if a.Corps != b.Corps {
			return a.Corps < b.Corps
		}
		return a.Start < b.Start
	})

	return result, nil
}

// FreeGaps walks the sorted occupied intervals of one room and returns the gaps
// longer than minGap. The cursor never moves back, which merges overlapping
// and touching intervals.
func FreeGaps(occupied []Interval, window Window, minGap time.Duration) []Interval {
	if len(occupied) == 0 {
		return []Interval{window}
	}

	var gaps []Interval
	cursor := window.Start
	for _, iv := range occupied {
		start := min(iv.Start, window.End)
		if start > cursor && minutes(start-cursor) > minGap {
			gaps = append(gaps, Interval{Start: cursor, End: start})
		}
		if iv.End > cursor {
			cursor = iv.End
		}
	}
	if window.End > cursor && minutes(window.End-cursor) > minGap {
		gaps = append(gaps, Interval{Start: cursor, End: window.End})
	}
	return gaps
}
