package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Dermofet/MephiApp-sub000/internal/app/models"
	"github.com/Dermofet/MephiApp-sub000/internal/pkg/apperrors"
	"github.com/Dermofet/MephiApp-sub000/internal/pkg/validation"
	"github.com/Dermofet/MephiApp-sub000/internal/pkg/websocket"
)

// CorpsStore is the persistence a CorpsService needs
type CorpsStore interface {
	Create(ctx context.Context, corps *models.Corps) error
	GetByID(ctx context.Context, id int64) (*models.Corps, error)
	GetAll(ctx context.Context) ([]*models.Corps, error)
	Update(ctx context.Context, corps *models.Corps) error
	Delete(ctx context.Context, id int64) error
}

// CorpsService defines the interface for corps-related operations
type CorpsService interface {
	CreateCorps(ctx context.Context, name string) (*models.Corps, error)
	GetCorpsByID(ctx context.Context, id int64) (*models.Corps, error)
	GetAllCorps(ctx context.Context) ([]*models.Corps, error)
	UpdateCorps(ctx context.Context, id int64, name string) (*models.Corps, error)
	DeleteCorps(ctx context.Context, id int64) error
}

type corpsServiceImpl struct {
	corpsRepo CorpsStore
	events    EventPublisher
}

// NewCorpsService creates a new corps service instance
func NewCorpsService(corpsRepo CorpsStore, events EventPublisher) CorpsService {
	return &corpsServiceImpl{
		corpsRepo: corpsRepo,
		events:    publisherOrNoop(events),
	}
}

func normalizeCorpsName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", fmt.Errorf("%w: name cannot be empty", apperrors.ErrValidationFailed)
	}
	if !validation.IsCorpsName(name) {
		return "", fmt.Errorf("%w: invalid corps name %q", apperrors.ErrValidationFailed, name)
	}
	return name, nil
}

// CreateCorps creates a new corps
func (s *corpsServiceImpl) CreateCorps(ctx context.Context, name string) (*models.Corps, error) {
	name, err := normalizeCorpsName(name)
	if err != nil {
		return nil, err
	}

	corps := &models.Corps{Name: name}
	if err := s.corpsRepo.Create(ctx, corps); err != nil {
		if errors.Is(err, apperrors.ErrCorpsAlreadyExists) {
			return nil, apperrors.ErrCorpsAlreadyExists
		}
		return nil, fmt.Errorf("error creating corps: %w", err)
	}

	s.events.Publish(websocket.Event{Type: websocket.EventCorpsChanged, Corps: corps.Name})
	return corps, nil
}

// GetCorpsByID retrieves a corps by ID
func (s *corpsServiceImpl) GetCorpsByID(ctx context.Context, id int64) (*models.Corps, error) {
	if id <= 0 {
		return nil, fmt.Errorf("%w: invalid corps ID", apperrors.ErrValidationFailed)
	}

	corps, err := s.corpsRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, apperrors.ErrCorpsNotFound) {
			return nil, apperrors.ErrCorpsNotFound
		}
		return nil, fmt.Errorf("error retrieving corps: %w", err)
	}
	return corps, nil
}

// GetAllCorps retrieves all corps ordered by name
func (s *corpsServiceImpl) GetAllCorps(ctx context.Context) ([]*models.Corps, error) {
	corps, err := s.corpsRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving corps: %w", err)
	}
	return corps, nil
}

// UpdateCorps renames a corps
func (s *corpsServiceImpl) UpdateCorps(ctx context.Context, id int64, name string) (*models.Corps, error) {
	if id <= 0 {
		return nil, fmt.Errorf("%w: invalid corps ID", apperrors.ErrValidationFailed)
	}
	name, err := normalizeCorpsName(name)
	if err != nil {
		return nil, err
	}

	corps := &models.Corps{ID: id, Name: name}
	if err := s.corpsRepo.Update(ctx, corps); err != nil {
		if errors.Is(err, apperrors.ErrCorpsNotFound) {
			return nil, apperrors.ErrCorpsNotFound
		}
		if errors.Is(err, apperrors.ErrCorpsAlreadyExists) {
			return nil, apperrors.ErrCorpsAlreadyExists
		}
		return nil, fmt.Errorf("error updating corps: %w", err)
	}

	s.events.Publish(websocket.Event{Type: websocket.EventCorpsChanged, Corps: corps.Name})
	return corps, nil
}

// DeleteCorps deletes a corps with its rooms and lessons
func (s *corpsServiceImpl) DeleteCorps(ctx context.Context, id int64) error {
	corps, err := s.GetCorpsByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.corpsRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, apperrors.ErrCorpsNotFound) {
			return apperrors.ErrCorpsNotFound
		}
		return fmt.Errorf("error deleting corps: %w", err)
	}

	s.events.Publish(websocket.Event{Type: websocket.EventCorpsChanged, Corps: corps.Name})
	return nil
}
