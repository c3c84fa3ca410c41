// Package importer loads timetables exported as CSV or XLS into the schedule database.
package importer

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/Dermofet/MephiApp-sub000/internal/app/models"
	"github.com/Dermofet/MephiApp-sub000/internal/pkg/helpers"
	"github.com/Dermofet/MephiApp-sub000/internal/pkg/validation"
)

// Row is one parsed timetable line
type Row struct {
	Line       int
	Corps      string
	Room       string
	Weekday    int
	WeekParity models.WeekParity
	TimeStart  models.TimeOfDay
	TimeEnd    models.TimeOfDay
	DateStart  *time.Time
	DateEnd    *time.Time
	Subject    string
	LessonType string
	Teacher    string
	Group      string
}

// RowError points at the offending line and column of the source file
type RowError struct {
	Line   int
	Column string
	Err    error
}

func (e *RowError) Error() string {
	if e.Column == "" {
		return fmt.Sprintf("line %d: %v", e.Line, e.Err)
	}
	return fmt.Sprintf("line %d, column %s: %v", e.Line, e.Column, e.Err)
}

func (e *RowError) Unwrap() error { return e.Err }

// ErrMissingColumn is returned when the header lacks a required column
var ErrMissingColumn = errors.New("missing required column")

// Column names
const (
	ColCorps      = "corps"
	ColRoom       = "room"
	ColWeekday    = "weekday"
	ColWeekParity = "week_parity"
	ColTimeStart  = "time_start"
	ColTimeEnd    = "time_end"
	ColDateStart  = "date_start"
	ColDateEnd    = "date_end"
	ColSubject    = "subject"
	ColLessonType = "lesson_type"
	ColTeacher    = "teacher"
	ColGroup      = "group"
)

var requiredColumns = []string{ColCorps, ColRoom, ColWeekday, ColTimeStart, ColTimeEnd, ColSubject}

// headerAliases maps the russian headings used in faculty exports
var headerAliases = map[string]string{
	"корпус":        ColCorps,
	"аудитория":     ColRoom,
	"день":          ColWeekday,
	"день недели":   ColWeekday,
	"неделя":        ColWeekParity,
	"четность":      ColWeekParity,
	"чётность":      ColWeekParity,
	"начало":        ColTimeStart,
	"конец":         ColTimeEnd,
	"дата начала":   ColDateStart,
	"дата конца":    ColDateEnd,
	"предмет":       ColSubject,
	"дисциплина":    ColSubject,
	"тип":           ColLessonType,
	"вид занятия":   ColLessonType,
	"преподаватель": ColTeacher,
	"группа":        ColGroup,
}

var weekdayNames = map[string]int{
	"пн": 1, "понедельник": 1, "mon": 1, "monday": 1,
	"вт": 2, "вторник": 2, "tue": 2, "tuesday": 2,
	"ср": 3, "среда": 3, "wed": 3, "wednesday": 3,
	"чт": 4, "четверг": 4, "thu": 4, "thursday": 4,
	"пт": 5, "пятница": 5, "fri": 5, "friday": 5,
	"сб": 6, "суббота": 6, "sat": 6, "saturday": 6,
	"вс": 7, "воскресенье": 7, "sun": 7, "sunday": 7,
}

// Header resolves column positions from the header row
type Header map[string]int

// ParseHeader maps header cells to known columns. Unknown headings are ignored.
func ParseHeader(cells []string) (Header, error) {
	h := make(Header, len(cells))
	for i, cell := range cells {
		name := strings.ToLower(strings.TrimSpace(strings.TrimPrefix(cell, "\ufeff")))
		if alias, ok := headerAliases[name]; ok {
			name = alias
		}
		if _, dup := h[name]; !dup {
			h[name] = i
		}
	}

	for _, col := range requiredColumns {
		if _, ok := h[col]; !ok {
			return nil, fmt.Errorf("%w: %s", ErrMissingColumn, col)
		}
	}
	return h, nil
}

func (h Header) value(cells []string, col string) string {
	i, ok := h[col]
	if !ok || i >= len(cells) {
		return ""
	}
	return strings.TrimSpace(cells[i])
}

// ParseRow converts the cells of one data line. Blank lines give ok == false.
func (h Header) ParseRow(line int, cells []string) (row Row, ok bool, err error) {
	blank := true
	for _, c := range cells {
		if strings.TrimSpace(c) != "" {
			blank = false
			break
		}
	}
	if blank {
		return Row{}, false, nil
	}

	fail := func(col string, err error) (Row, bool, error) {
		return Row{}, false, &RowError{Line: line, Column: col, Err: err}
	}

	row = Row{
		Line:       line,
		Corps:      h.value(cells, ColCorps),
		Room:       strings.TrimSuffix(h.value(cells, ColRoom), ".0"),
		Subject:    h.value(cells, ColSubject),
		LessonType: h.value(cells, ColLessonType),
		Teacher:    h.value(cells, ColTeacher),
		Group:      h.value(cells, ColGroup),
	}

	if !validation.IsCorpsName(row.Corps) {
		return fail(ColCorps, fmt.Errorf("invalid corps name %q", row.Corps))
	}
	if !validation.IsRoomNumber(row.Room) {
		return fail(ColRoom, fmt.Errorf("invalid room number %q", row.Room))
	}
	if row.Subject == "" {
		return fail(ColSubject, errors.New("subject is empty"))
	}

	if row.Weekday, err = parseWeekday(h.value(cells, ColWeekday)); err != nil {
		return fail(ColWeekday, err)
	}
	if row.WeekParity, err = models.ParseWeekParity(h.value(cells, ColWeekParity)); err != nil {
		return fail(ColWeekParity, err)
	}
	if row.TimeStart, err = models.ParseTimeOfDay(h.value(cells, ColTimeStart)); err != nil {
		return fail(ColTimeStart, err)
	}
	if row.TimeEnd, err = models.ParseTimeOfDay(h.value(cells, ColTimeEnd)); err != nil {
		return fail(ColTimeEnd, err)
	}
	if row.TimeStart >= row.TimeEnd {
		return fail(ColTimeEnd, fmt.Errorf("lesson ends at %s before it starts at %s", row.TimeEnd, row.TimeStart))
	}

	if row.DateStart, err = parseOptionalDate(h.value(cells, ColDateStart)); err != nil {
		return fail(ColDateStart, err)
	}
	if row.DateEnd, err = parseOptionalDate(h.value(cells, ColDateEnd)); err != nil {
		return fail(ColDateEnd, err)
	}
	if row.DateEnd != nil {
		if row.DateStart == nil {
			return fail(ColDateEnd, errors.New("date_end requires date_start"))
		}
		if row.DateEnd.Before(*row.DateStart) {
			return fail(ColDateEnd, errors.New("date_end is before date_start"))
		}
	}

	return row, true, nil
}

func parseWeekday(s string) (int, error) {
	key := strings.ToLower(strings.Trim(s, ". "))
	if d, ok := weekdayNames[key]; ok {
		return d, nil
	}
	d, err := strconv.Atoi(strings.TrimSuffix(key, ".0"))
	if err != nil || !validation.IsWeekday(d) {
		return 0, fmt.Errorf("invalid weekday %q", s)
	}
	return d, nil
}

func parseOptionalDate(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	d, err := helpers.ParseDate(s)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

// Lesson converts the row into a lesson of the given room
func (r Row) Lesson(roomID int64) *models.Lesson {
	return &models.Lesson{
		RoomID:     roomID,
		Weekday:    r.Weekday,
		WeekParity: r.WeekParity,
		TimeStart:  r.TimeStart,
		TimeEnd:    r.TimeEnd,
		DateStart:  r.DateStart,
		DateEnd:    r.DateEnd,
		Subject:    r.Subject,
		LessonType: r.LessonType,
		Teacher:    r.Teacher,
		GroupName:  r.Group,
	}
}
