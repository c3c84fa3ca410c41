package importer

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Dermofet/MephiApp-sub000/internal/pkg/helpers"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/rs/zerolog"
)

// Result summarizes one import
type Result struct {
	Rows           int    `json:"rows"`
	Corps          int    `json:"corps"`
	Rooms          int    `json:"rooms"`
	LessonsAdded   int    `json:"lessonsAdded"`
	LessonsDeleted int64  `json:"lessonsDeleted"`
	Archived       string `json:"archived,omitempty"`
}

// Loader writes parsed rows to Postgres in a single transaction
type Loader struct {
	db     *sqlx.DB
	logger zerolog.Logger
}

// Open connects the loader's own database handle through lib/pq
func Open(dsn string) (*sqlx.DB, error) {
	db, err := sqlx.Connect("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	return db, nil
}

// NewLoader creates a new Loader
func NewLoader(db *sqlx.DB, logger zerolog.Logger) *Loader {
	return &Loader{db: db, logger: logger}
}

type roomKey struct {
	corps  string
	number string
}

type lessonRecord struct {
	RoomID     int64        `db:"room_id"`
	Weekday    int          `db:"weekday"`
	WeekParity int          `db:"week_parity"`
	TimeStart  string       `db:"time_start"`
	TimeEnd    string       `db:"time_end"`
	DateStart  sql.NullTime `db:"date_start"`
	DateEnd    sql.NullTime `db:"date_end"`
	Subject    string       `db:"subject"`
	LessonType string       `db:"lesson_type"`
	Teacher    string       `db:"teacher"`
	GroupName  string       `db:"group_name"`
}

const insertLesson = `
	INSERT INTO lessons (room_id, weekday, week_parity, time_start, time_end, date_start, date_end,
		subject, lesson_type, teacher, group_name)
	VALUES (:room_id, :weekday, :week_parity, :time_start, :time_end, :date_start, :date_end,
		:subject, :lesson_type, :teacher, :group_name)`

// Load upserts the corps and rooms named by rows and inserts their lessons.
// With replace set, the existing lessons of every touched room are deleted first.
func (l *Loader) Load(ctx context.Context, rows []Row, replace bool) (*Result, error) {
	tx, err := l.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin import transaction: %w", err)
	}
	defer tx.Rollback()

	result := &Result{Rows: len(rows)}

	corpsIDs := make(map[string]int64)
	roomIDs := make(map[roomKey]int64)
	for _, row := range rows {
		corpsID, ok := corpsIDs[row.Corps]
		if !ok {
			if corpsID, err = upsertCorps(ctx, tx, row.Corps); err != nil {
				return nil, &RowError{Line: row.Line, Column: ColCorps, Err: err}
			}
			corpsIDs[row.Corps] = corpsID
		}

		key := roomKey{corps: row.Corps, number: row.Room}
		if _, ok := roomIDs[key]; !ok {
			roomID, err := upsertRoom(ctx, tx, corpsID, row.Room)
			if err != nil {
				return nil, &RowError{Line: row.Line, Column: ColRoom, Err: err}
			}
			roomIDs[key] = roomID
		}
	}
	result.Corps = len(corpsIDs)
	result.Rooms = len(roomIDs)

	if replace && len(roomIDs) > 0 {
		ids := make([]int64, 0, len(roomIDs))
		for _, id := range roomIDs {
			ids = append(ids, id)
		}
		res, err := tx.ExecContext(ctx, `DELETE FROM lessons WHERE room_id = ANY($1)`, pq.Array(ids))
		if err != nil {
			return nil, fmt.Errorf("failed to delete previous lessons: %w", err)
		}
		result.LessonsDeleted, _ = res.RowsAffected()
	}

	for _, row := range rows {
		rec := toLessonRecord(row, roomIDs[roomKey{corps: row.Corps, number: row.Room}])
		if _, err := tx.NamedExecContext(ctx, insertLesson, rec); err != nil {
			return nil, &RowError{Line: row.Line, Err: fmt.Errorf("failed to insert lesson: %w", err)}
		}
		result.LessonsAdded++
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit import: %w", err)
	}

	l.logger.Info().
		Int("rows", result.Rows).
		Int("corps", result.Corps).
		Int("rooms", result.Rooms).
		Int64("deleted", result.LessonsDeleted).
		Msg("Timetable imported")
	return result, nil
}

func upsertCorps(ctx context.Context, tx *sqlx.Tx, name string) (int64, error) {
	if _, err := tx.ExecContext(ctx, `INSERT INTO corps (name) VALUES ($1) ON CONFLICT (name) DO NOTHING`, name); err != nil {
		return 0, err
	}
	var id int64
	err := tx.GetContext(ctx, &id, `SELECT id FROM corps WHERE name = $1`, name)
	return id, err
}

func upsertRoom(ctx context.Context, tx *sqlx.Tx, corpsID int64, number string) (int64, error) {
	if _, err := tx.ExecContext(ctx,
		`INSERT INTO rooms (corps_id, number) VALUES ($1, $2) ON CONFLICT (corps_id, number) DO NOTHING`,
		corpsID, number); err != nil {
		return 0, err
	}
	var id int64
	err := tx.GetContext(ctx, &id, `SELECT id FROM rooms WHERE corps_id = $1 AND number = $2`, corpsID, number)
	return id, err
}

func toLessonRecord(row Row, roomID int64) lessonRecord {
	return lessonRecord{
		RoomID:     roomID,
		Weekday:    row.Weekday,
		WeekParity: int(row.WeekParity),
		TimeStart:  row.TimeStart.String(),
		TimeEnd:    row.TimeEnd.String(),
		DateStart:  helpers.GetNullDate(row.DateStart),
		DateEnd:    helpers.GetNullDate(row.DateEnd),
		Subject:    row.Subject,
		LessonType: row.LessonType,
		Teacher:    row.Teacher,
		GroupName:  row.Group,
	}
}
