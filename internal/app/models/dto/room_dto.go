package dto

// RoomResponse represents a room with the name of its corps
type RoomResponse struct {
	ID      int64  `json:"id" example:"12"`
	Number  string `json:"number" example:"100"`
	CorpsID int64  `json:"corpsId" example:"1"`
	Corps   string `json:"corps" example:"А"`
}

// CreateRoomRequest represents room creation data
type CreateRoomRequest struct {
	Number  string `json:"number" binding:"required,max=32"`
	CorpsID int64  `json:"corpsId" binding:"required,gt=0"`
}

// UpdateRoomRequest represents room update data
type UpdateRoomRequest struct {
	Number  string `json:"number" binding:"required,max=32"`
	CorpsID int64  `json:"corpsId" binding:"required,gt=0"`
}
