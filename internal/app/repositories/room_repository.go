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

// RoomRepository handles room database operations
type RoomRepository struct {
	db DBTX
	sb squirrel.StatementBuilderType
}

// NewRoomRepository creates a new RoomRepository
func NewRoomRepository(db DBTX) *RoomRepository {
	return &RoomRepository{
		db: db,
		sb: statementBuilder(),
	}
}

func (r *RoomRepository) selectRooms() squirrel.SelectBuilder {
	return r.sb.Select("r.id", "r.number", "r.corps_id", "c.name").
		From("rooms r").
		Join("corps c ON c.id = r.corps_id")
}

func scanRoom(row pgx.Row) (*models.Room, error) {
	room := &models.Room{}
	if err := row.Scan(&room.ID, &room.Number, &room.CorpsID, &room.CorpsName); err != nil {
		return nil, err
	}
	return room, nil
}

// Create inserts a room and sets its ID
func (r *RoomRepository) Create(ctx context.Context, room *models.Room) error {
	sql, args, err := r.sb.Insert("rooms").
		Columns("number", "corps_id").
		Values(room.Number, room.CorpsID).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build create room query: %w", err)
	}

	if err := r.db.QueryRow(ctx, sql, args...).Scan(&room.ID); err != nil {
		return r.mapWriteError(err, room)
	}

	return nil
}

// GetByID retrieves a room with its corps name
func (r *RoomRepository) GetByID(ctx context.Context, id int64) (*models.Room, error) {
	sql, args, err := r.selectRooms().
		Where(squirrel.Eq{"r.id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get room query: %w", err)
	}

	room, err := scanRoom(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrRoomNotFound
		}
		return nil, fmt.Errorf("error getting room by ID: %w", err)
	}

	return room, nil
}

// List returns rooms ordered by corps and number. A non-empty corps list filters by corps name.
func (r *RoomRepository) List(ctx context.Context, corps []string) ([]*models.Room, error) {
	query := r.selectRooms().OrderBy("c.name ASC", "r.number ASC")
	if len(corps) > 0 {
		query = query.Where(squirrel.Eq{"c.name": corps})
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list rooms query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error querying rooms: %w", err)
	}
	defer rows.Close()

	rooms := []*models.Room{}
	for rows.Next() {
		room, err := scanRoom(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning room row: %w", err)
		}
		rooms = append(rooms, room)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating room rows: %w", err)
	}

	return rooms, nil
}

// RoomsByCorps returns the roster of the named corps. An empty list matches nothing.
func (r *RoomRepository) RoomsByCorps(ctx context.Context, corps []string) ([]models.Room, error) {
	if len(corps) == 0 {
		return []models.Room{}, nil
	}

	list, err := r.List(ctx, corps)
	if err != nil {
		return nil, err
	}

	rooms := make([]models.Room, 0, len(list))
	for _, room := range list {
		rooms = append(rooms, *room)
	}
	return rooms, nil
}

// Update changes the number or the corps of a room
func (r *RoomRepository) Update(ctx context.Context, room *models.Room) error {
	sql, args, err := r.sb.Update("rooms").
		SetMap(map[string]interface{}{
			"number":   room.Number,
			"corps_id": room.CorpsID,
		}).
		Where(squirrel.Eq{"id": room.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update room query: %w", err)
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return r.mapWriteError(err, room)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrRoomNotFound
	}

	return nil
}

// Delete removes a room and its lessons
func (r *RoomRepository) Delete(ctx context.Context, id int64) error {
	sql, args, err := r.sb.Delete("rooms").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete room query: %w", err)
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("error deleting room: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrRoomNotFound
	}

	return nil
}

func (r *RoomRepository) mapWriteError(err error, room *models.Room) error {
	switch {
	case dberrors.IsDuplicateConstraintError(err, "rooms_corps_id_number_key"):
		return apperrors.ErrRoomAlreadyExists
	case dberrors.IsForeignKeyError(err):
		return apperrors.ErrCorpsNotFound
	}
	logger.Error().Err(err).Str("number", room.Number).Int64("corpsID", room.CorpsID).Msg("Error writing room")
	return fmt.Errorf("error writing room: %w", err)
}
