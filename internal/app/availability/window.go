// Package availability computes free time slots of rooms from their scheduled lessons.
//
// A query runs in three steps: the semester clock resolves the week parity of the date,
// the collector gathers the lessons overlapping the window per room, and the resolver
// turns those occupied intervals into free intervals.
package availability

import (
	"fmt"
	"time"

	"github.com/Dermofet/MephiApp-sub000/internal/app/models"
	"github.com/Dermofet/MephiApp-sub000/internal/pkg/apperrors"
)

// DefaultMinGap is the shortest gap reported as free
const DefaultMinGap = 10 * time.Minute

// Interval is a half-open range [Start, End) of a day
type Interval struct {
	Start models.TimeOfDay
	End   models.TimeOfDay
}

// Window is the queried part of the day
type Window = Interval

// NewWindow builds a validated window
func NewWindow(start, end models.TimeOfDay) (Window, error) {
	w := Window{Start: start, End: end}
	if err := w.Validate(); err != nil {
		return Window{}, err
	}
	return w, nil
}

// Validate fails with ErrInvalidWindow unless Start < End and both lie within a day
func (i Interval) Validate() error {
	if !i.Start.Valid() || !i.End.Valid() {
		return fmt.Errorf("%w: %s-%s is outside of a day", apperrors.ErrInvalidWindow, i.Start, i.End)
	}
	if i.Start >= i.End {
		return fmt.Errorf("%w: start %s must be before end %s", apperrors.ErrInvalidWindow, i.Start, i.End)
	}
	return nil
}

// Overlaps reports whether the half-open intervals share at least one minute
func (i Interval) Overlaps(o Interval) bool {
	return i.Start < o.End && i.End > o.Start
}

// Duration returns the length of the interval
func (i Interval) Duration() time.Duration {
	return minutes(i.End - i.Start)
}

func (i Interval) String() string {
	return "[" + i.Start.String() + "," + i.End.String() + ")"
}

func minutes(t models.TimeOfDay) time.Duration {
	return time.Duration(t) * time.Minute
}
