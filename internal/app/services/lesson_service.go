package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Dermofet/MephiApp-sub000/internal/app/models"
	"github.com/Dermofet/MephiApp-sub000/internal/app/repositories"
	"github.com/Dermofet/MephiApp-sub000/internal/pkg/apperrors"
	"github.com/Dermofet/MephiApp-sub000/internal/pkg/helpers"
	"github.com/Dermofet/MephiApp-sub000/internal/pkg/validation"
	"github.com/Dermofet/MephiApp-sub000/internal/pkg/websocket"
)

// LessonStore is the persistence a LessonService needs
type LessonStore interface {
	Create(ctx context.Context, lesson *models.Lesson) error
	GetByID(ctx context.Context, id int64) (*models.Lesson, error)
	List(ctx context.Context, filter repositories.LessonFilter, offset, limit uint64) ([]*models.Lesson, int64, error)
	Update(ctx context.Context, lesson *models.Lesson) error
	Delete(ctx context.Context, id int64) error
}

// LessonService defines the interface for lesson-related operations
type LessonService interface {
	CreateLesson(ctx context.Context, lesson *models.Lesson) (*models.Lesson, error)
	GetLessonByID(ctx context.Context, id int64) (*models.Lesson, error)
	ListLessons(ctx context.Context, filter repositories.LessonFilter, page, size int) ([]*models.Lesson, int64, error)
	UpdateLesson(ctx context.Context, lesson *models.Lesson) (*models.Lesson, error)
	DeleteLesson(ctx context.Context, id int64) error
}

type lessonServiceImpl struct {
	lessonRepo LessonStore
	events     EventPublisher
}

// NewLessonService creates a new lesson service instance
func NewLessonService(lessonRepo LessonStore, events EventPublisher) LessonService {
	return &lessonServiceImpl{
		lessonRepo: lessonRepo,
		events:     publisherOrNoop(events),
	}
}

// ValidateLesson checks the schedule constraints of a lesson
func ValidateLesson(lesson *models.Lesson) error {
	if lesson == nil {
		return fmt.Errorf("%w: lesson is nil", apperrors.ErrValidationFailed)
	}

	if lesson.RoomID <= 0 {
		return apperrors.NewValidationError("roomId", "invalid room ID")
	}
	if !validation.IsWeekday(lesson.Weekday) {
		return apperrors.NewValidationError("weekday", "weekday must be between 1 (Monday) and 7 (Sunday)")
	}
	if !lesson.WeekParity.Valid() {
		return apperrors.NewValidationError("weekParity", "week parity must be even, odd or every")
	}
	if !lesson.TimeStart.Valid() || !lesson.TimeEnd.Valid() {
		return apperrors.NewValidationError("timeStart", "lesson times must lie within a day")
	}
	if lesson.TimeStart >= lesson.TimeEnd {
		return apperrors.NewValidationError("timeEnd", "lesson must end after it starts")
	}
	if lesson.DateEnd != nil {
		if lesson.DateStart == nil {
			return apperrors.NewValidationError("dateEnd", "dateEnd requires dateStart")
		}
		if lesson.DateEnd.Before(*lesson.DateStart) {
			return apperrors.NewValidationError("dateEnd", "dateEnd must not be before dateStart")
		}
	}

	lesson.Subject = strings.TrimSpace(lesson.Subject)
	if lesson.Subject == "" {
		return apperrors.NewValidationError("subject", "subject cannot be empty")
	}
	if !validation.NewStringValidation(lesson.Subject).WithMaxLength(validation.TextMaxLength).Validate() {
		return apperrors.NewValidationError("subject", "subject is too long")
	}

	return nil
}

// CreateLesson schedules a new lesson
func (s *lessonServiceImpl) CreateLesson(ctx context.Context, lesson *models.Lesson) (*models.Lesson, error) {
	if err := ValidateLesson(lesson); err != nil {
		return nil, err
	}

	if err := s.lessonRepo.Create(ctx, lesson); err != nil {
		if apperrors.Is(err, apperrors.ErrRoomNotFound, apperrors.ErrValidationFailed) {
			return nil, err
		}
		return nil, fmt.Errorf("error creating lesson: %w", err)
	}

	created, err := s.GetLessonByID(ctx, lesson.ID)
	if err != nil {
		return nil, err
	}
	s.publish(websocket.EventLessonCreated, created)
	return created, nil
}

// GetLessonByID retrieves a lesson by ID
func (s *lessonServiceImpl) GetLessonByID(ctx context.Context, id int64) (*models.Lesson, error) {
	if id <= 0 {
		return nil, fmt.Errorf("%w: invalid lesson ID", apperrors.ErrValidationFailed)
	}

	lesson, err := s.lessonRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, apperrors.ErrLessonNotFound) {
			return nil, apperrors.ErrLessonNotFound
		}
		return nil, fmt.Errorf("error retrieving lesson: %w", err)
	}
	return lesson, nil
}

// ListLessons returns one page of lessons and the total count
func (s *lessonServiceImpl) ListLessons(ctx context.Context, filter repositories.LessonFilter, page, size int) ([]*models.Lesson, int64, error) {
	if filter.Weekday != 0 && !validation.IsWeekday(filter.Weekday) {
		return nil, 0, apperrors.NewValidationError("weekday", "weekday must be between 1 and 7")
	}

	offset, limit := helpers.CalculateOffsetLimit(page, size)
	lessons, total, err := s.lessonRepo.List(ctx, filter, offset, limit)
	if err != nil {
		return nil, 0, fmt.Errorf("error retrieving lessons: %w", err)
	}
	return lessons, total, nil
}

// UpdateLesson replaces a lesson
func (s *lessonServiceImpl) UpdateLesson(ctx context.Context, lesson *models.Lesson) (*models.Lesson, error) {
	if err := ValidateLesson(lesson); err != nil {
		return nil, err
	}

	previous, err := s.GetLessonByID(ctx, lesson.ID)
	if err != nil {
		return nil, err
	}

	if err := s.lessonRepo.Update(ctx, lesson); err != nil {
		if apperrors.Is(err, apperrors.ErrLessonNotFound, apperrors.ErrRoomNotFound, apperrors.ErrValidationFailed) {
			return nil, err
		}
		return nil, fmt.Errorf("error updating lesson: %w", err)
	}

	updated, err := s.GetLessonByID(ctx, lesson.ID)
	if err != nil {
		return nil, err
	}
	if previous.RoomID != updated.RoomID {
		s.publish(websocket.EventLessonUpdated, previous)
	}
	s.publish(websocket.EventLessonUpdated, updated)
	return updated, nil
}

// DeleteLesson removes a lesson
func (s *lessonServiceImpl) DeleteLesson(ctx context.Context, id int64) error {
	lesson, err := s.GetLessonByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.lessonRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, apperrors.ErrLessonNotFound) {
			return apperrors.ErrLessonNotFound
		}
		return fmt.Errorf("error deleting lesson: %w", err)
	}

	s.publish(websocket.EventLessonDeleted, lesson)
	return nil
}

func (s *lessonServiceImpl) publish(eventType string, lesson *models.Lesson) {
	event := websocket.Event{Type: eventType, RoomID: lesson.RoomID, LessonID: lesson.ID}
	if lesson.Room != nil {
		event.Corps = lesson.Room.CorpsName
	}
	s.events.Publish(event)
}
