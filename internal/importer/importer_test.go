package importer

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Dermofet/MephiApp-sub000/internal/app/models"
	"golang.org/x/text/encoding/charmap"
)

const sampleCSV = `corps,room,weekday,week_parity,time_start,time_end,date_start,date_end,subject,lesson_type,teacher,group
А,100,1,odd,08:30,10:05,,,Математический анализ,Лекция,Иванов И.И.,Б22-504
Б,305а,пт,чет,10:15,11:50,2026-09-01,2026-12-28,Физика,Практика,,

К,лабФИЗ,3,,12.45,14.20,2026-10-07,,Лабораторная работа,,,
`

func TestReadCSV(t *testing.T) {
	rows, err := ReadCSV(strings.NewReader(sampleCSV), EncodingUTF8)
	if err != nil {
		t.Fatalf("ReadCSV: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("got %d rows, want 3", len(rows))
	}

	first := rows[0]
	if first.Line != 2 || first.Corps != "А" || first.Room != "100" || first.Weekday != 1 {
		t.Errorf("unexpected first row %+v", first)
	}
	if first.WeekParity != models.ParityOdd {
		t.Errorf("parity = %v, want odd", first.WeekParity)
	}
	if first.TimeStart != models.NewTimeOfDay(8, 30) || first.TimeEnd != models.NewTimeOfDay(10, 5) {
		t.Errorf("times = %s-%s", first.TimeStart, first.TimeEnd)
	}
	if first.DateStart != nil || first.DateEnd != nil {
		t.Error("dates must be empty")
	}

	second := rows[1]
	if second.Weekday != 5 || second.WeekParity != models.ParityEven || second.DateEnd == nil {
		t.Errorf("unexpected second row %+v", second)
	}

	third := rows[2]
	if third.Line != 5 {
		t.Errorf("line = %d, want 5 (blank line counted)", third.Line)
	}
	if third.WeekParity != models.ParityEvery || third.TimeStart != models.NewTimeOfDay(12, 45) {
		t.Errorf("unexpected third row %+v", third)
	}
	if third.DateStart == nil || third.DateEnd != nil {
		t.Error("single occurrence must keep only date_start")
	}
}

func TestReadCSVWindows1251Semicolon(t *testing.T) {
	src := "Корпус;Аудитория;День;Неделя;Начало;Конец;Предмет\nА;100;Понедельник;нечет;08:30;10:05;Физика\n"
	encoded, err := charmap.Windows1251.NewEncoder().String(src)
	if err != nil {
		t.Fatal(err)
	}

	rows, err := ReadCSV(strings.NewReader(encoded), EncodingWindows1251)
	if err != nil {
		t.Fatalf("ReadCSV: %v", err)
	}
	if len(rows) != 1 || rows[0].Corps != "А" || rows[0].Subject != "Физика" || rows[0].Weekday != 1 {
		t.Fatalf("unexpected rows %+v", rows)
	}
}

func TestReadCSVByteOrderMark(t *testing.T) {
	var buf bytes.Buffer
	buf.WriteString("\xef\xbb\xbf")
	buf.WriteString("corps,room,weekday,time_start,time_end,subject\nА,100,2,09:00,10:00,Химия\n")

	// the mark wins over the declared encoding
	rows, err := ReadCSV(&buf, EncodingWindows1251)
	if err != nil {
		t.Fatalf("ReadCSV: %v", err)
	}
	if len(rows) != 1 || rows[0].Corps != "А" {
		t.Fatalf("unexpected rows %+v", rows)
	}
}

func TestReadCSVErrors(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		line   int
		column string
	}{
		{"missing column", "corps,room\nА,100\n", 1, ""},
		{"bad weekday", "corps,room,weekday,time_start,time_end,subject\nА,100,9,09:00,10:00,X\n", 2, ColWeekday},
		{"bad time", "corps,room,weekday,time_start,time_end,subject\nА,100,1,9-00,10:00,X\n", 2, ColTimeStart},
		{"reversed times", "corps,room,weekday,time_start,time_end,subject\nА,100,1,11:00,10:00,X\n", 2, ColTimeEnd},
		{"date_end only", "corps,room,weekday,time_start,time_end,date_end,subject\nА,100,1,09:00,10:00,2026-09-01,X\n", 2, ColDateEnd},
		{"bad parity", "corps,room,weekday,week_parity,time_start,time_end,subject\nА,100,1,weekly,09:00,10:00,X\n", 2, ColWeekParity},
		{"empty subject", "corps,room,weekday,time_start,time_end,subject\nА,100,1,09:00,10:00,\n", 2, ColSubject},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ReadCSV(strings.NewReader(tt.input), EncodingUTF8)
			var rowErr *RowError
			if !errors.As(err, &rowErr) {
				t.Fatalf("expected RowError, got %v", err)
			}
			if rowErr.Line != tt.line || rowErr.Column != tt.column {
				t.Errorf("got line %d column %q, want line %d column %q", rowErr.Line, rowErr.Column, tt.line, tt.column)
			}
		})
	}
}

func TestReadCSVEmpty(t *testing.T) {
	if _, err := ReadCSV(strings.NewReader("\n\n"), EncodingUTF8); !errors.Is(err, ErrEmptyFile) {
		t.Fatalf("expected ErrEmptyFile, got %v", err)
	}
}

func TestUnsupportedEncoding(t *testing.T) {
	if _, err := ReadCSV(strings.NewReader(sampleCSV), "koi8-r"); err == nil {
		t.Fatal("expected error for unsupported encoding")
	}
}

func TestReadFile(t *testing.T) {
	dir := t.TempDir()

	csvPath := filepath.Join(dir, "timetable.csv")
	if err := os.WriteFile(csvPath, []byte(sampleCSV), 0o644); err != nil {
		t.Fatal(err)
	}
	rows, err := ReadFile(csvPath, "")
	if err != nil || len(rows) != 3 {
		t.Fatalf("ReadFile: %d rows, %v", len(rows), err)
	}

	pdfPath := filepath.Join(dir, "timetable.pdf")
	if err := os.WriteFile(pdfPath, []byte("%PDF"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := ReadFile(pdfPath, ""); !errors.Is(err, ErrUnsupportedFormat) {
		t.Fatalf("expected ErrUnsupportedFormat, got %v", err)
	}
}

func TestRowLesson(t *testing.T) {
	rows, err := ReadCSV(strings.NewReader(sampleCSV), EncodingUTF8)
	if err != nil {
		t.Fatal(err)
	}
	lesson := rows[0].Lesson(12)
	if lesson.RoomID != 12 || lesson.GroupName != "Б22-504" || lesson.WeekParity != models.ParityOdd {
		t.Errorf("unexpected lesson %+v", lesson)
	}
	if ds := toLessonRecord(rows[1], 7).DateStart; !ds.Valid {
		t.Error("date_start must be set")
	}
}
