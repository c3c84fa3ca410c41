package repositories

import (
	"context"
	"time"

	"github.com/Dermofet/MephiApp-sub000/internal/app/models"
	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

// DBTX is satisfied by both *pgxpool.Pool and pgx.Tx, so a repository can run
// inside a snapshot transaction as well as against the pool.
type DBTX interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Repositories holds all the repository instances
type Repositories struct {
	CorpsRepository        *CorpsRepository
	RoomRepository         *RoomRepository
	LessonRepository       *LessonRepository
	SemesterRepository     *SemesterRepository
	AvailabilityRepository *AvailabilityRepository
}

// NewRepositories initializes all repositories
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		CorpsRepository:        NewCorpsRepository(db),
		RoomRepository:         NewRoomRepository(db),
		LessonRepository:       NewLessonRepository(db),
		SemesterRepository:     NewSemesterRepository(db),
		AvailabilityRepository: NewAvailabilityRepository(db),
	}
}

func statementBuilder() squirrel.StatementBuilderType {
	return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
}

const microsPerMinute = int64(time.Minute / time.Microsecond)

func toPgTime(t models.TimeOfDay) pgtype.Time {
	return pgtype.Time{Microseconds: int64(t) * microsPerMinute, Valid: true}
}

func fromPgTime(t pgtype.Time) models.TimeOfDay {
	return models.TimeOfDay(t.Microseconds / microsPerMinute)
}

func toPgDate(d *time.Time) pgtype.Date {
	if d == nil {
		return pgtype.Date{}
	}
	y, m, day := d.Date()
	return pgtype.Date{Time: time.Date(y, m, day, 0, 0, 0, 0, time.UTC), Valid: true}
}

func fromPgDate(d pgtype.Date) *time.Time {
	if !d.Valid {
		return nil
	}
	t := d.Time
	return &t
}
