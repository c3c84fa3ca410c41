package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Dermofet/MephiApp-sub000/internal/app/availability"
	"github.com/Dermofet/MephiApp-sub000/internal/app/models"
	"github.com/Dermofet/MephiApp-sub000/internal/pkg/apperrors"
	"github.com/Dermofet/MephiApp-sub000/internal/pkg/dberrors"
	"github.com/Dermofet/MephiApp-sub000/internal/pkg/logger"
	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

// LessonFilter narrows the lesson listing; zero values mean no filter
type LessonFilter struct {
	RoomID  int64
	Weekday int
}

// LessonRepository handles lesson database operations
type LessonRepository struct {
	db DBTX
	sb squirrel.StatementBuilderType
}

// NewLessonRepository creates a new LessonRepository
func NewLessonRepository(db DBTX) *LessonRepository {
	return &LessonRepository{
		db: db,
		sb: statementBuilder(),
	}
}

var lessonColumns = []string{
	"l.id", "l.room_id", "l.weekday", "l.week_parity", "l.time_start", "l.time_end",
	"l.date_start", "l.date_end", "l.subject", "l.lesson_type", "l.teacher", "l.group_name",
	"r.number", "r.corps_id", "c.name",
}

func (r *LessonRepository) selectLessons(extra ...string) squirrel.SelectBuilder {
	return r.sb.Select(append(lessonColumns, extra...)...).
		From("lessons l").
		Join("rooms r ON r.id = l.room_id").
		Join("corps c ON c.id = r.corps_id")
}

// scanLesson reads lessonColumns followed by any extra destinations
func scanLesson(row pgx.Row, extra ...any) (*models.Lesson, error) {
	var (
		lesson             models.Lesson
		room               models.Room
		parity             int16
		timeStart, timeEnd pgtype.Time
		dateStart, dateEnd pgtype.Date
	)
	dest := []any{
		&lesson.ID, &lesson.RoomID, &lesson.Weekday, &parity, &timeStart, &timeEnd,
		&dateStart, &dateEnd, &lesson.Subject, &lesson.LessonType, &lesson.Teacher, &lesson.GroupName,
		&room.Number, &room.CorpsID, &room.CorpsName,
	}
	if err := row.Scan(append(dest, extra...)...); err != nil {
		return nil, err
	}

	lesson.WeekParity = models.WeekParity(parity)
	lesson.TimeStart = fromPgTime(timeStart)
	lesson.TimeEnd = fromPgTime(timeEnd)
	lesson.DateStart = fromPgDate(dateStart)
	lesson.DateEnd = fromPgDate(dateEnd)
	room.ID = lesson.RoomID
	lesson.Room = &room
	return &lesson, nil
}

func lessonValues(l *models.Lesson) map[string]interface{} {
	return map[string]interface{}{
		"room_id":     l.RoomID,
		"weekday":     l.Weekday,
		"week_parity": int(l.WeekParity),
		"time_start":  toPgTime(l.TimeStart),
		"time_end":    toPgTime(l.TimeEnd),
		"date_start":  toPgDate(l.DateStart),
		"date_end":    toPgDate(l.DateEnd),
		"subject":     l.Subject,
		"lesson_type": l.LessonType,
		"teacher":     l.Teacher,
		"group_name":  l.GroupName,
	}
}

// Create inserts a lesson and sets its ID
func (r *LessonRepository) Create(ctx context.Context, lesson *models.Lesson) error {
	sql, args, err := r.sb.Insert("lessons").
		SetMap(lessonValues(lesson)).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build create lesson query: %w", err)
	}

	if err := r.db.QueryRow(ctx, sql, args...).Scan(&lesson.ID); err != nil {
		return mapLessonWriteError(err, lesson)
	}

	return nil
}

// GetByID retrieves a lesson with its room and corps
func (r *LessonRepository) GetByID(ctx context.Context, id int64) (*models.Lesson, error) {
	sql, args, err := r.selectLessons().
		Where(squirrel.Eq{"l.id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get lesson query: %w", err)
	}

	lesson, err := scanLesson(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrLessonNotFound
		}
		return nil, fmt.Errorf("error getting lesson by ID: %w", err)
	}

	return lesson, nil
}

// List returns one page of lessons and the total number of matches
func (r *LessonRepository) List(ctx context.Context, filter LessonFilter, offset, limit uint64) ([]*models.Lesson, int64, error) {
	query := r.selectLessons("COUNT(*) OVER()").
		OrderBy("l.weekday ASC", "l.time_start ASC", "l.id ASC").
		Offset(offset).
		Limit(limit)
	if filter.RoomID > 0 {
		query = query.Where(squirrel.Eq{"l.room_id": filter.RoomID})
	}
	if filter.Weekday > 0 {
		query = query.Where(squirrel.Eq{"l.weekday": filter.Weekday})
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build list lessons query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("error querying lessons: %w", err)
	}
	defer rows.Close()

	var total int64
	lessons := []*models.Lesson{}
	for rows.Next() {
		lesson, err := scanLesson(rows, &total)
		if err != nil {
			return nil, 0, fmt.Errorf("error scanning lesson row: %w", err)
		}
		lessons = append(lessons, lesson)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating lesson rows: %w", err)
	}

	// an out-of-range page returns no rows and so no window count
	if len(lessons) == 0 && offset > 0 {
		total, err = r.count(ctx, filter)
		if err != nil {
			return nil, 0, err
		}
	}

	return lessons, total, nil
}

func (r *LessonRepository) count(ctx context.Context, filter LessonFilter) (int64, error) {
	query := r.sb.Select("COUNT(*)").From("lessons l")
	if filter.RoomID > 0 {
		query = query.Where(squirrel.Eq{"l.room_id": filter.RoomID})
	}
	if filter.Weekday > 0 {
		query = query.Where(squirrel.Eq{"l.weekday": filter.Weekday})
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build count lessons query: %w", err)
	}

	var total int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("error counting lessons: %w", err)
	}
	return total, nil
}

// Update replaces every field of a lesson
func (r *LessonRepository) Update(ctx context.Context, lesson *models.Lesson) error {
	sql, args, err := r.sb.Update("lessons").
		SetMap(lessonValues(lesson)).
		Where(squirrel.Eq{"id": lesson.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update lesson query: %w", err)
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return mapLessonWriteError(err, lesson)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrLessonNotFound
	}

	return nil
}

// Delete removes a lesson
func (r *LessonRepository) Delete(ctx context.Context, id int64) error {
	sql, args, err := r.sb.Delete("lessons").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete lesson query: %w", err)
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("error deleting lesson: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrLessonNotFound
	}

	return nil
}

// Occupancies loads, in one query, the lessons of the given rooms that may occupy them
// during the query window. The SQL filter is a superset; callers re-check each record.
func (r *LessonRepository) Occupancies(ctx context.Context, roomIDs []int64, q availability.OccupancyQuery) ([]models.Occupancy, error) {
	if len(roomIDs) == 0 {
		return []models.Occupancy{}, nil
	}

	date := toPgDate(&q.Date)
	sql, args, err := r.sb.Select("room_id", "weekday", "week_parity", "time_start", "time_end", "date_start", "date_end").
		From("lessons").
		Where(squirrel.Eq{"room_id": roomIDs}).
		Where(squirrel.Eq{"weekday": q.Weekday}).
		Where(squirrel.Eq{"week_parity": []int{int(q.Parity), int(models.ParityEvery)}}).
		Where(squirrel.Lt{"time_start": toPgTime(q.Window.End)}).
		Where(squirrel.Gt{"time_end": toPgTime(q.Window.Start)}).
		Where(squirrel.Or{squirrel.Eq{"date_start": nil}, squirrel.LtOrEq{"date_start": date}}).
		Where(squirrel.Or{squirrel.Eq{"date_end": nil}, squirrel.GtOrEq{"date_end": date}}).
		OrderBy("room_id", "time_start", "time_end").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build occupancy query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error querying occupancies: %w", err)
	}
	defer rows.Close()

	result := []models.Occupancy{}
	for rows.Next() {
		var (
			o                  models.Occupancy
			parity             int16
			timeStart, timeEnd pgtype.Time
			dateStart, dateEnd pgtype.Date
		)
		if err := rows.Scan(&o.RoomID, &o.Weekday, &parity, &timeStart, &timeEnd, &dateStart, &dateEnd); err != nil {
			return nil, fmt.Errorf("error scanning occupancy row: %w", err)
		}
		o.WeekParity = models.WeekParity(parity)
		o.TimeStart = fromPgTime(timeStart)
		o.TimeEnd = fromPgTime(timeEnd)
		o.DateStart = fromPgDate(dateStart)
		o.DateEnd = fromPgDate(dateEnd)
		result = append(result, o)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating occupancy rows: %w", err)
	}

	return result, nil
}

func mapLessonWriteError(err error, lesson *models.Lesson) error {
	switch {
	case dberrors.IsForeignKeyError(err):
		return apperrors.ErrRoomNotFound
	case dberrors.IsCheckViolation(err):
		return apperrors.NewCustomError(apperrors.ErrValidationFailed, "lesson violates a schedule constraint")
	}
	logger.Error().Err(err).Int64("roomID", lesson.RoomID).Msg("Error writing lesson")
	return fmt.Errorf("error writing lesson: %w", err)
}
