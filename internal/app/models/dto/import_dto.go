package dto

// ImportResultResponse summarizes an uploaded timetable
type ImportResultResponse struct {
	Rows           int    `json:"rows" example:"412"`
	Corps          int    `json:"corps" example:"4"`
	Rooms          int    `json:"rooms" example:"57"`
	LessonsAdded   int    `json:"lessonsAdded" example:"412"`
	LessonsDeleted int64  `json:"lessonsDeleted" example:"398"`
	Archived       string `json:"archived,omitempty" example:"timetables/4f9a7c1e-2b1d-4c55-9a8e-3d2f0c6b7a10.csv"`
}
