package models

import "time"

// Lesson is a scheduled class held in a room.
// DateStart alone marks a single occurrence, DateStart with DateEnd a bounded range,
// neither a lesson recurring for the whole semester.
type Lesson struct {
	ID         int64      `json:"id"`
	RoomID     int64      `json:"room_id"`
	Weekday    int        `json:"weekday"`
	WeekParity WeekParity `json:"week_parity"`
	TimeStart  TimeOfDay  `json:"time_start"`
	TimeEnd    TimeOfDay  `json:"time_end"`
	DateStart  *time.Time `json:"date_start,omitempty"`
	DateEnd    *time.Time `json:"date_end,omitempty"`
	Subject    string     `json:"subject"`
	LessonType string     `json:"lesson_type,omitempty"`
	Teacher    string     `json:"teacher,omitempty"`
	GroupName  string     `json:"group,omitempty"`
	Room       *Room      `json:"room,omitempty"`
}

// Occupancy returns the part of the lesson the availability computation reads
func (l *Lesson) Occupancy() Occupancy {
	return Occupancy{
		RoomID:     l.RoomID,
		Weekday:    l.Weekday,
		WeekParity: l.WeekParity,
		TimeStart:  l.TimeStart,
		TimeEnd:    l.TimeEnd,
		DateStart:  l.DateStart,
		DateEnd:    l.DateEnd,
	}
}

// Occupancy is a read-only projection of a lesson: when a room is taken.
type Occupancy struct {
	RoomID     int64
	Weekday    int
	WeekParity WeekParity
	TimeStart  TimeOfDay
	TimeEnd    TimeOfDay
	DateStart  *time.Time
	DateEnd    *time.Time
}
