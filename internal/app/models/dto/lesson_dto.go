package dto

// LessonRequest is used both to create and to replace a lesson.
// Times are "HH:MM", dates "YYYY-MM-DD".
type LessonRequest struct {
	RoomID     int64  `json:"roomId" binding:"required,gt=0"`
	Weekday    int    `json:"weekday" binding:"required,min=1,max=7"`
	WeekParity string `json:"weekParity" binding:"omitempty,weekparity" example:"every"`
	TimeStart  string `json:"timeStart" binding:"required,hhmm" example:"08:30"`
	TimeEnd    string `json:"timeEnd" binding:"required,hhmm" example:"10:05"`
	DateStart  string `json:"dateStart,omitempty" binding:"omitempty,isodate" example:"2026-09-01"`
	DateEnd    string `json:"dateEnd,omitempty" binding:"omitempty,isodate" example:"2026-12-28"`
	Subject    string `json:"subject" binding:"required,max=255"`
	LessonType string `json:"lessonType,omitempty" binding:"max=64"`
	Teacher    string `json:"teacher,omitempty" binding:"max=255"`
	Group      string `json:"group,omitempty" binding:"max=64"`
}

// LessonResponse represents a scheduled lesson
type LessonResponse struct {
	ID         int64  `json:"id" example:"42"`
	RoomID     int64  `json:"roomId" example:"12"`
	Room       string `json:"room,omitempty" example:"100"`
	Corps      string `json:"corps,omitempty" example:"А"`
	Weekday    int    `json:"weekday" example:"1"`
	WeekParity string `json:"weekParity" example:"odd"`
	TimeStart  string `json:"timeStart" example:"08:30"`
	TimeEnd    string `json:"timeEnd" example:"10:05"`
	DateStart  string `json:"dateStart,omitempty" example:"2026-09-01"`
	DateEnd    string `json:"dateEnd,omitempty" example:"2026-12-28"`
	Subject    string `json:"subject" example:"Математический анализ"`
	LessonType string `json:"lessonType,omitempty" example:"Лекция"`
	Teacher    string `json:"teacher,omitempty" example:"Иванов И.И."`
	Group      string `json:"group,omitempty" example:"Б22-504"`
}

// LessonFilter holds the query parameters of the lesson listing
type LessonFilter struct {
	RoomID  int64 `form:"room_id" binding:"omitempty,gt=0"`
	Weekday int   `form:"weekday" binding:"omitempty,min=1,max=7"`
}
