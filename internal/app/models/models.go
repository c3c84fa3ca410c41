package models

import (
	"fmt"
	"strconv"
	"strings"
)

// WeekParity says on which academic weeks a lesson takes place.
// Even and Odd equal week_number mod 2.
type WeekParity int

const (
	ParityEven  WeekParity = 0 // "чет"
	ParityOdd   WeekParity = 1 // "нечет"
	ParityEvery WeekParity = 2
)

// Valid reports whether p is one of the known parities
func (p WeekParity) Valid() bool {
	return p == ParityEven || p == ParityOdd || p == ParityEvery
}

// Includes reports whether a lesson with parity p runs on a week of parity week.
func (p WeekParity) Includes(week WeekParity) bool {
	return p == ParityEvery || p == week
}

func (p WeekParity) String() string {
	switch p {
	case ParityEven:
		return "even"
	case ParityOdd:
		return "odd"
	case ParityEvery:
		return "every"
	default:
		return "WeekParity(" + strconv.Itoa(int(p)) + ")"
	}
}

// ParseWeekParity accepts english, russian and numeric forms.
func ParseWeekParity(s string) (WeekParity, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "even", "чет", "чёт", "0":
		return ParityEven, nil
	case "odd", "нечет", "нечёт", "1":
		return ParityOdd, nil
	case "every", "все", "всегда", "", "2":
		return ParityEvery, nil
	}
	return 0, fmt.Errorf("unknown week parity %q", s)
}

// MarshalText implements encoding.TextMarshaler
func (p WeekParity) MarshalText() ([]byte, error) {
	if !p.Valid() {
		return nil, fmt.Errorf("invalid week parity %d", int(p))
	}
	return []byte(p.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (p *WeekParity) UnmarshalText(text []byte) error {
	parsed, err := ParseWeekParity(string(text))
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}

// MinutesPerDay bounds TimeOfDay values
const MinutesPerDay = 24 * 60

// TimeOfDay is a wall-clock time with minute granularity, stored as minutes since midnight.
type TimeOfDay int

// NewTimeOfDay builds a TimeOfDay from hours and minutes
func NewTimeOfDay(hour, minute int) TimeOfDay {
	return TimeOfDay(hour*60 + minute)
}

// ParseTimeOfDay parses "HH:MM" (also "H:MM" and "HH.MM" as found in timetables).
// "24:00" is accepted as the end of the day.
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	s = strings.TrimSpace(s)
	sep := strings.IndexAny(s, ":.")
	if sep <= 0 || sep > 2 || len(s)-sep-1 != 2 {
		return 0, fmt.Errorf("invalid time %q, expected HH:MM", s)
	}

	hour, err := strconv.Atoi(s[:sep])
	if err != nil {
		return 0, fmt.Errorf("invalid time %q, expected HH:MM", s)
	}
	minute, err := strconv.Atoi(s[sep+1:])
	if err != nil {
		return 0, fmt.Errorf("invalid time %q, expected HH:MM", s)
	}

	if hour < 0 || minute < 0 || minute > 59 || hour > 24 || (hour == 24 && minute != 0) {
		return 0, fmt.Errorf("time %q out of range", s)
	}
	return NewTimeOfDay(hour, minute), nil
}

// MustParseTimeOfDay is ParseTimeOfDay for constants; it panics on malformed input.
func MustParseTimeOfDay(s string) TimeOfDay {
	t, err := ParseTimeOfDay(s)
	if err != nil {
		panic(err)
	}
	return t
}

// Hour returns the hour component
func (t TimeOfDay) Hour() int { return int(t) / 60 }

// Minute returns the minute component
func (t TimeOfDay) Minute() int { return int(t) % 60 }

// Valid reports whether t lies within a day
func (t TimeOfDay) Valid() bool {
	return t >= 0 && t <= MinutesPerDay
}

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour(), t.Minute())
}

// MarshalText implements encoding.TextMarshaler
func (t TimeOfDay) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (t *TimeOfDay) UnmarshalText(text []byte) error {
	parsed, err := ParseTimeOfDay(string(text))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}
