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

// RoomStore is the persistence a RoomService needs
type RoomStore interface {
	Create(ctx context.Context, room *models.Room) error
	GetByID(ctx context.Context, id int64) (*models.Room, error)
	List(ctx context.Context, corps []string) ([]*models.Room, error)
	Update(ctx context.Context, room *models.Room) error
	Delete(ctx context.Context, id int64) error
}

// RoomService defines the interface for room-related operations
type RoomService interface {
	CreateRoom(ctx context.Context, room *models.Room) (*models.Room, error)
	GetRoomByID(ctx context.Context, id int64) (*models.Room, error)
	ListRooms(ctx context.Context, corps []string) ([]*models.Room, error)
	UpdateRoom(ctx context.Context, room *models.Room) (*models.Room, error)
	DeleteRoom(ctx context.Context, id int64) error
}

type roomServiceImpl struct {
	roomRepo RoomStore
	events   EventPublisher
}

// NewRoomService creates a new room service instance
func NewRoomService(roomRepo RoomStore, events EventPublisher) RoomService {
	return &roomServiceImpl{
		roomRepo: roomRepo,
		events:   publisherOrNoop(events),
	}
}

func (s *roomServiceImpl) validateRoom(room *models.Room) error {
	if room == nil {
		return fmt.Errorf("%w: room is nil", apperrors.ErrValidationFailed)
	}

	room.Number = strings.TrimSpace(room.Number)
	if room.Number == "" {
		return fmt.Errorf("%w: number cannot be empty", apperrors.ErrValidationFailed)
	}
	if !validation.IsRoomNumber(room.Number) {
		return fmt.Errorf("%w: invalid room number %q", apperrors.ErrValidationFailed, room.Number)
	}
	if room.CorpsID <= 0 {
		return fmt.Errorf("%w: invalid corps ID", apperrors.ErrValidationFailed)
	}

	return nil
}

// CreateRoom creates a room and returns it joined with its corps name
func (s *roomServiceImpl) CreateRoom(ctx context.Context, room *models.Room) (*models.Room, error) {
	if err := s.validateRoom(room); err != nil {
		return nil, err
	}

	if err := s.roomRepo.Create(ctx, room); err != nil {
		if errors.Is(err, apperrors.ErrRoomAlreadyExists) || errors.Is(err, apperrors.ErrCorpsNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("error creating room: %w", err)
	}

	created, err := s.GetRoomByID(ctx, room.ID)
	if err != nil {
		return nil, err
	}
	s.publish(created)
	return created, nil
}

// GetRoomByID retrieves a room by ID
func (s *roomServiceImpl) GetRoomByID(ctx context.Context, id int64) (*models.Room, error) {
	if id <= 0 {
		return nil, fmt.Errorf("%w: invalid room ID", apperrors.ErrValidationFailed)
	}

	room, err := s.roomRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, apperrors.ErrRoomNotFound) {
			return nil, apperrors.ErrRoomNotFound
		}
		return nil, fmt.Errorf("error retrieving room: %w", err)
	}
	return room, nil
}

// ListRooms lists rooms, optionally restricted to the named corps
func (s *roomServiceImpl) ListRooms(ctx context.Context, corps []string) ([]*models.Room, error) {
	names := make([]string, 0, len(corps))
	for _, c := range corps {
		if c = strings.TrimSpace(c); c != "" {
			names = append(names, c)
		}
	}

	rooms, err := s.roomRepo.List(ctx, names)
	if err != nil {
		return nil, fmt.Errorf("error retrieving rooms: %w", err)
	}
	return rooms, nil
}

// UpdateRoom changes the number or the corps of a room
func (s *roomServiceImpl) UpdateRoom(ctx context.Context, room *models.Room) (*models.Room, error) {
	if err := s.validateRoom(room); err != nil {
		return nil, err
	}

	previous, err := s.GetRoomByID(ctx, room.ID)
	if err != nil {
		return nil, err
	}

	if err := s.roomRepo.Update(ctx, room); err != nil {
		if apperrors.Is(err, apperrors.ErrRoomNotFound, apperrors.ErrRoomAlreadyExists, apperrors.ErrCorpsNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("error updating room: %w", err)
	}

	updated, err := s.GetRoomByID(ctx, room.ID)
	if err != nil {
		return nil, err
	}
	if previous.CorpsID != updated.CorpsID {
		s.publish(previous)
	}
	s.publish(updated)
	return updated, nil
}

// DeleteRoom deletes a room with its lessons
func (s *roomServiceImpl) DeleteRoom(ctx context.Context, id int64) error {
	room, err := s.GetRoomByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.roomRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, apperrors.ErrRoomNotFound) {
			return apperrors.ErrRoomNotFound
		}
		return fmt.Errorf("error deleting room: %w", err)
	}

	s.publish(room)
	return nil
}

func (s *roomServiceImpl) publish(room *models.Room) {
	s.events.Publish(websocket.Event{Type: websocket.EventRoomChanged, Corps: room.CorpsName, RoomID: room.ID})
}
