package models

import "time"

// SemesterStart is the first day of week 1 of the current term
type SemesterStart struct {
	Date      time.Time `json:"date"`
	UpdatedAt time.Time `json:"updated_at"`
}
