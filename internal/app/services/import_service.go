package services

import (
	"context"
	"fmt"
	"mime/multipart"
	"path/filepath"
	"strings"

	"github.com/Dermofet/MephiApp-sub000/internal/importer"
	"github.com/Dermofet/MephiApp-sub000/internal/pkg/apperrors"
	"github.com/Dermofet/MephiApp-sub000/internal/pkg/filestorage"
	"github.com/Dermofet/MephiApp-sub000/internal/pkg/websocket"
	"github.com/rs/zerolog"
)

// ImportSubPath is the storage folder of archived timetables
const ImportSubPath = "timetables"

// TimetableLoader writes parsed timetable rows
type TimetableLoader interface {
	Load(ctx context.Context, rows []importer.Row, replace bool) (*importer.Result, error)
}

// ImportOptions controls how an uploaded timetable is read and loaded
type ImportOptions struct {
	Encoding string
	Replace  bool
}

// ImportService defines the timetable upload operation
type ImportService interface {
	ImportTimetable(ctx context.Context, file *multipart.FileHeader, opts ImportOptions) (*importer.Result, error)
}

type importServiceImpl struct {
	storage filestorage.FileStorage
	loader  TimetableLoader
	events  EventPublisher
	logger  zerolog.Logger
}

// NewImportService creates a new import service instance
func NewImportService(storage filestorage.FileStorage, loader TimetableLoader, events EventPublisher, logger zerolog.Logger) ImportService {
	return &importServiceImpl{
		storage: storage,
		loader:  loader,
		events:  publisherOrNoop(events),
		logger:  logger,
	}
}

// ImportTimetable archives the upload, parses it and loads it in one transaction.
// The archived copy is removed when the timetable is rejected.
func (s *importServiceImpl) ImportTimetable(ctx context.Context, file *multipart.FileHeader, opts ImportOptions) (*importer.Result, error) {
	if file == nil {
		return nil, apperrors.NewValidationError("file", "file is required")
	}
	switch strings.ToLower(filepath.Ext(file.Filename)) {
	case ".csv", ".xls":
	default:
		return nil, apperrors.NewValidationError("file", "only .csv and .xls timetables are supported")
	}

	stored, err := s.storage.SaveFile(file, ImportSubPath)
	if err != nil {
		return nil, fmt.Errorf("error archiving timetable: %w", err)
	}

	result, err := s.load(ctx, stored, opts)
	if err != nil {
		if delErr := s.storage.DeleteFile(stored); delErr != nil {
			s.logger.Warn().Err(delErr).Str("path", stored).Msg("Failed to remove rejected timetable")
		}
		return nil, err
	}

	result.Archived = stored
	s.events.Publish(websocket.Event{Type: websocket.EventTimetableImported, Corps: websocket.AllCorps})
	s.logger.Info().
		Str("file", file.Filename).
		Str("archived", stored).
		Int("lessons", result.LessonsAdded).
		Msg("Timetable uploaded")
	return result, nil
}

func (s *importServiceImpl) load(ctx context.Context, stored string, opts ImportOptions) (*importer.Result, error) {
	rows, err := importer.ReadFile(s.storage.GetFullPath(stored), opts.Encoding)
	if err != nil {
		return nil, apperrors.NewCustomError(apperrors.ErrValidationFailed, err.Error())
	}
	if len(rows) == 0 {
		return nil, apperrors.NewValidationError("file", "timetable has no lessons")
	}

	result, err := s.loader.Load(ctx, rows, opts.Replace)
	if err != nil {
		return nil, fmt.Errorf("error loading timetable: %w", err)
	}
	return result, nil
}
