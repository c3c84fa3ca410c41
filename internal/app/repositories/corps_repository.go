package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Dermofet/MephiApp-sub000/internal/app/models"
	"github.com/Dermofet/MephiApp-sub000/internal/pkg/apperrors"
	"github.com/Dermofet/MephiApp-sub000/internal/pkg/dberrors"
	"github.com/Dermofet/MephiApp-sub000/internal/pkg/logger"
	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
)

// CorpsRepository handles corps database operations
type CorpsRepository struct {
	db DBTX
	sb squirrel.StatementBuilderType
}

// NewCorpsRepository creates a new CorpsRepository
func NewCorpsRepository(db DBTX) *CorpsRepository {
	return &CorpsRepository{
		db: db,
		sb: statementBuilder(),
	}
}

// Create inserts a corps and sets its ID
func (r *CorpsRepository) Create(ctx context.Context, corps *models.Corps) error {
	sql, args, err := r.sb.Insert("corps").
		Columns("name").
		Values(corps.Name).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build create corps query: %w", err)
	}

	if err := r.db.QueryRow(ctx, sql, args...).Scan(&corps.ID); err != nil {
		if dberrors.IsDuplicateConstraintError(err, "corps_name_key") {
			return apperrors.ErrCorpsAlreadyExists
		}
		logger.Error().Err(err).Str("name", corps.Name).Msg("Error executing create corps query")
		return fmt.Errorf("error creating corps: %w", err)
	}

	return nil
}

// GetByID retrieves a corps by ID
func (r *CorpsRepository) GetByID(ctx context.Context, id int64) (*models.Corps, error) {
	sql, args, err := r.sb.Select("id", "name").
		From("corps").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get corps query: %w", err)
	}

	corps := &models.Corps{}
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&corps.ID, &corps.Name); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrCorpsNotFound
		}
		return nil, fmt.Errorf("error getting corps by ID: %w", err)
	}

	return corps, nil
}

// GetAll retrieves all corps ordered by name
func (r *CorpsRepository) GetAll(ctx context.Context) ([]*models.Corps, error) {
	sql, args, err := r.sb.Select("id", "name").
		From("corps").
		OrderBy("name ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get all corps query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error querying corps: %w", err)
	}
	defer rows.Close()

	list := []*models.Corps{}
	for rows.Next() {
		corps := &models.Corps{}
		if err := rows.Scan(&corps.ID, &corps.Name); err != nil {
			return nil, fmt.Errorf("error scanning corps row: %w", err)
		}
		list = append(list, corps)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating corps rows: %w", err)
	}

	return list, nil
}

// Update renames a corps
func (r *CorpsRepository) Update(ctx context.Context, corps *models.Corps) error {
	sql, args, err := r.sb.Update("corps").
		Set("name", corps.Name).
		Where(squirrel.Eq{"id": corps.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update corps query: %w", err)
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "corps_name_key") {
			return apperrors.ErrCorpsAlreadyExists
		}
		return fmt.Errorf("error updating corps: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrCorpsNotFound
	}

	return nil
}

// Delete removes a corps; its rooms and lessons go with it
func (r *CorpsRepository) Delete(ctx context.Context, id int64) error {
	sql, args, err := r.sb.Delete("corps").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete corps query: %w", err)
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("error deleting corps: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrCorpsNotFound
	}

	return nil
}

// EnsureExists inserts the named corps unless it is already present
func (r *CorpsRepository) EnsureExists(ctx context.Context, name string) (bool, error) {
	sql, args, err := r.sb.Insert("corps").
		Columns("name").
		Values(name).
		Suffix("ON CONFLICT (name) DO NOTHING").
		ToSql()
	if err != nil {
		return false, fmt.Errorf("failed to build ensure corps query: %w", err)
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return false, fmt.Errorf("error ensuring corps %q: %w", name, err)
	}

	return tag.RowsAffected() > 0, nil
}
