package dto

// CorpsResponse represents a corps (university building)
type CorpsResponse struct {
	ID   int64  `json:"id" example:"1"`
	Name string `json:"name" example:"А"`
}

// CreateCorpsRequest represents corps creation data
type CreateCorpsRequest struct {
	Name string `json:"name" binding:"required,max=64"`
}

// UpdateCorpsRequest represents corps update data
type UpdateCorpsRequest struct {
	Name string `json:"name" binding:"required,max=64"`
}
