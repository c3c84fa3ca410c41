package services

import (
	"context"
	"fmt"
	"time"

	"github.com/Dermofet/MephiApp-sub000/internal/app/availability"
	"github.com/Dermofet/MephiApp-sub000/internal/app/models"
	"github.com/Dermofet/MephiApp-sub000/internal/pkg/apperrors"
	"github.com/Dermofet/MephiApp-sub000/internal/pkg/helpers"
	"github.com/Dermofet/MephiApp-sub000/internal/pkg/websocket"
)

// SemesterStore is the persistence a SemesterService needs
type SemesterStore interface {
	Get(ctx context.Context) (*models.SemesterStart, error)
	Set(ctx context.Context, date time.Time) (*models.SemesterStart, error)
}

// WeekInfo places a date in the academic calendar
type WeekInfo struct {
	Date       time.Time
	WeekNumber int
	Parity     models.WeekParity
}

// SemesterService defines the interface for semester calendar operations
type SemesterService interface {
	GetSemesterStart(ctx context.Context) (*models.SemesterStart, error)
	SetSemesterStart(ctx context.Context, date time.Time) (*models.SemesterStart, error)
	// WeekInfo resolves date, or today when date is nil
	WeekInfo(ctx context.Context, date *time.Time) (*WeekInfo, error)
}

type semesterServiceImpl struct {
	semesterRepo SemesterStore
	events       EventPublisher
	loc          *time.Location
	now          func() time.Time
}

// NewSemesterService creates a new semester service. loc decides what "today" is.
func NewSemesterService(semesterRepo SemesterStore, events EventPublisher, loc *time.Location) SemesterService {
	if loc == nil {
		loc = time.UTC
	}
	return &semesterServiceImpl{
		semesterRepo: semesterRepo,
		events:       publisherOrNoop(events),
		loc:          loc,
		now:          time.Now,
	}
}

// GetSemesterStart returns the configured semester start
func (s *semesterServiceImpl) GetSemesterStart(ctx context.Context) (*models.SemesterStart, error) {
	start, err := s.semesterRepo.Get(ctx)
	if err != nil {
		if apperrors.Is(err, apperrors.ErrSemesterNotConfigured) {
			return nil, apperrors.ErrSemesterNotConfigured
		}
		return nil, fmt.Errorf("error retrieving semester start: %w", err)
	}
	return start, nil
}

// SetSemesterStart stores a new semester start
func (s *semesterServiceImpl) SetSemesterStart(ctx context.Context, date time.Time) (*models.SemesterStart, error) {
	if date.IsZero() {
		return nil, apperrors.NewValidationError("date", "date is required")
	}

	start, err := s.semesterRepo.Set(ctx, helpers.DateOf(date))
	if err != nil {
		return nil, fmt.Errorf("error setting semester start: %w", err)
	}

	s.events.Publish(websocket.Event{Type: websocket.EventSemesterUpdated, Corps: websocket.AllCorps})
	return start, nil
}

// WeekInfo returns the week number and parity of a date
func (s *semesterServiceImpl) WeekInfo(ctx context.Context, date *time.Time) (*WeekInfo, error) {
	day := today(s.now, s.loc)
	if date != nil {
		day = helpers.DateOf(*date)
	}

	start, err := s.GetSemesterStart(ctx)
	if err != nil {
		return nil, err
	}

	week, parity, err := availability.NewSemesterClock(&start.Date).Week(day)
	if err != nil {
		return nil, err
	}
	return &WeekInfo{Date: day, WeekNumber: week, Parity: parity}, nil
}

// today is the current calendar date in loc
func today(now func() time.Time, loc *time.Location) time.Time {
	return helpers.DateOf(now().In(loc))
}
