package dto

// FreeRoomsRequest is the availability query. Date defaults to today.
type FreeRoomsRequest struct {
	Corps     []string `json:"corps" form:"corps"`
	Date      string   `json:"date" form:"date" binding:"omitempty,isodate" example:"2026-09-01"`
	TimeStart string   `json:"timeStart" form:"time_start" binding:"required,hhmm" example:"08:30"`
	TimeEnd   string   `json:"timeEnd" form:"time_end" binding:"required,hhmm" example:"22:50"`
}

// FreeSlotResponse is one continuous free interval of a room
type FreeSlotResponse struct {
	Name      string `json:"name" example:"А-100"`
	TimeStart string `json:"time_start" example:"08:30"`
	TimeEnd   string `json:"time_end" example:"10:00"`
	Corps     string `json:"corps" example:"А"`
}

// FreeRoomsResponse lists free slots sorted by room name, corps and start time
type FreeRoomsResponse struct {
	Rooms []FreeSlotResponse `json:"rooms"`
}

// PublishFreeRoomsResponse reports where a free-room snapshot was published
type PublishFreeRoomsResponse struct {
	Path       string `json:"path" example:"free_rooms/2026-09-01"`
	SlotCount  int    `json:"slotCount" example:"37"`
	LastUpdate string `json:"lastUpdate" example:"2026-09-01T07:00:00Z"`
}

// PublishFreeRoomsRequest selects the date and window of a published snapshot.
// Empty fields fall back to today and the configured publishing window.
type PublishFreeRoomsRequest struct {
	Date      string `json:"date" binding:"omitempty,isodate" example:"2026-09-01"`
	TimeStart string `json:"timeStart" binding:"omitempty,hhmm" example:"08:30"`
	TimeEnd   string `json:"timeEnd" binding:"omitempty,hhmm" example:"22:50"`
}
