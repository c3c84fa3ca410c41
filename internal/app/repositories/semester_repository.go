package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Dermofet/MephiApp-sub000/internal/app/models"
	"github.com/Dermofet/MephiApp-sub000/internal/pkg/apperrors"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

// semesterRowID pins the single row of semester_start
const semesterRowID = 1

// SemesterRepository stores the start date of the current semester
type SemesterRepository struct {
	db DBTX
}

// NewSemesterRepository creates a new SemesterRepository
func NewSemesterRepository(db DBTX) *SemesterRepository {
	return &SemesterRepository{db: db}
}

// Get returns the stored semester start or apperrors.ErrSemesterNotConfigured
func (r *SemesterRepository) Get(ctx context.Context) (*models.SemesterStart, error) {
	var (
		date    pgtype.Date
		updated time.Time
	)
	err := r.db.QueryRow(ctx, `SELECT date, updated_at FROM semester_start WHERE id = $1`, semesterRowID).
		Scan(&date, &updated)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrSemesterNotConfigured
		}
		return nil, fmt.Errorf("error getting semester start: %w", err)
	}
	if !date.Valid {
		return nil, apperrors.ErrSemesterNotConfigured
	}

	return &models.SemesterStart{Date: date.Time, UpdatedAt: updated}, nil
}

// SemesterStart returns only the date, for the availability store
func (r *SemesterRepository) SemesterStart(ctx context.Context) (time.Time, error) {
	s, err := r.Get(ctx)
	if err != nil {
		return time.Time{}, err
	}
	return s.Date, nil
}

// Set stores the semester start, replacing any previous value
func (r *SemesterRepository) Set(ctx context.Context, date time.Time) (*models.SemesterStart, error) {
	var updated time.Time
	err := r.db.QueryRow(ctx, `
		INSERT INTO semester_start (id, date, updated_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (id) DO UPDATE SET date = EXCLUDED.date, updated_at = EXCLUDED.updated_at
		RETURNING updated_at`,
		semesterRowID, toPgDate(&date)).Scan(&updated)
	if err != nil {
		return nil, fmt.Errorf("error setting semester start: %w", err)
	}

	return &models.SemesterStart{Date: *fromPgDate(toPgDate(&date)), UpdatedAt: updated}, nil
}

// EnsureDefault stores date only when no semester start exists yet
func (r *SemesterRepository) EnsureDefault(ctx context.Context, date time.Time) (bool, error) {
	tag, err := r.db.Exec(ctx, `
		INSERT INTO semester_start (id, date, updated_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (id) DO NOTHING`,
		semesterRowID, toPgDate(&date))
	if err != nil {
		return false, fmt.Errorf("error seeding semester start: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}
