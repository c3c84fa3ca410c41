package models

// Room represents a room inside a corps
type Room struct {
	ID        int64  `json:"id"`
	Number    string `json:"number"`
	CorpsID   int64  `json:"corps_id"`
	CorpsName string `json:"corps,omitempty"`
}
