package dto

// SemesterStartRequest sets the first day of the first academic week
type SemesterStartRequest struct {
	Date string `json:"date" binding:"required,isodate" example:"2026-09-01"`
}

// SemesterStartResponse represents the configured semester start
type SemesterStartResponse struct {
	Date string `json:"date" example:"2026-09-01"`
}

// WeekInfoResponse describes the academic week a date falls into
type WeekInfoResponse struct {
	Date       string `json:"date" example:"2026-09-08"`
	WeekNumber int    `json:"weekNumber" example:"2"`
	Parity     string `json:"parity" example:"even"`
}
