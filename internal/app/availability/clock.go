package availability

import (
	"time"

	"github.com/Dermofet/MephiApp-sub000/internal/app/models"
	"github.com/Dermofet/MephiApp-sub000/internal/pkg/apperrors"
)

// WeekNumber returns the academic week of date, week 1 starting on start.
// Dates before start give zero or negative weeks.
func WeekNumber(date, start time.Time) int {
	days := daysBetween(start, date)
	week := days / 7
	if days%7 != 0 && days < 0 {
		week-- // floor division
	}
	return week + 1
}

// WeekParity returns the parity of the academic week containing date.
// Weeks numbered zero or below count as odd, like week 1.
func WeekParity(date, start time.Time) models.WeekParity {
	week := WeekNumber(date, start)
	if week <= 0 {
		return models.ParityOdd
	}
	return models.WeekParity(week % 2)
}

// Weekday returns 1 for Monday through 7 for Sunday
func Weekday(date time.Time) int {
	wd := int(date.Weekday())
	if wd == 0 {
		return 7
	}
	return wd
}

// SemesterClock resolves dates against a stored semester start
type SemesterClock struct {
	start *time.Time
}

// NewSemesterClock creates a clock; a nil start means the semester is not configured
func NewSemesterClock(start *time.Time) SemesterClock {
	return SemesterClock{start: start}
}

// Week returns the week number and parity of date
func (c SemesterClock) Week(date time.Time) (int, models.WeekParity, error) {
	if c.start == nil {
		return 0, 0, apperrors.ErrSemesterNotConfigured
	}
	return WeekNumber(date, *c.start), WeekParity(date, *c.start), nil
}

// daysBetween counts calendar days from a to b, ignoring clock time and zone offsets
func daysBetween(a, b time.Time) int {
	ua := time.Date(a.Year(), a.Month(), a.Day(), 0, 0, 0, 0, time.UTC)
	ub := time.Date(b.Year(), b.Month(), b.Day(), 0, 0, 0, 0, time.UTC)
	return int(ub.Sub(ua).Hours() / 24)
}
