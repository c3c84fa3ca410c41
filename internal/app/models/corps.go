package models

// Corps is a university building; rooms belong to exactly one corps
type Corps struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}
