// Package controllers binds HTTP requests to the services.
package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/Dermofet/MephiApp-sub000/internal/app/availability"
	"github.com/Dermofet/MephiApp-sub000/internal/app/models"
	"github.com/Dermofet/MephiApp-sub000/internal/app/models/dto"
	"github.com/Dermofet/MephiApp-sub000/internal/middleware"
	"github.com/Dermofet/MephiApp-sub000/internal/pkg/helpers"
	"github.com/gin-gonic/gin"
)

// parseIDParam reads a positive int64 path parameter, answering 400 otherwise
func parseIDParam(ctx *gin.Context, name, label string) (int64, bool) {
	id, err := strconv.ParseInt(ctx.Param(name), 10, 64)
	if err != nil || id <= 0 {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid "+label+" ID").
			WithDetails(label + " ID must be a positive number")
		ctx.AbortWithStatusJSON(http.StatusBadRequest, middleware.ErrorResponse(errorDetail))
		return 0, false
	}
	return id, true
}

// parseOptionalDate returns nil for an empty value. The value was validated by binding.
func parseOptionalDate(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	d, err := helpers.ParseDate(value)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func formatOptionalDate(d *time.Time) string {
	if d == nil {
		return ""
	}
	return d.Format(helpers.DateLayout)
}

// parseWindow parses "HH:MM" bounds; ordering is checked by the availability package
func parseWindow(start, end string) (availability.Window, error) {
	s, err := models.ParseTimeOfDay(start)
	if err != nil {
		return availability.Window{}, err
	}
	e, err := models.ParseTimeOfDay(end)
	if err != nil {
		return availability.Window{}, err
	}
	return availability.Window{Start: s, End: e}, nil
}

func toCorpsResponse(c *models.Corps) dto.CorpsResponse {
	return dto.CorpsResponse{ID: c.ID, Name: c.Name}
}

func toRoomResponse(r *models.Room) dto.RoomResponse {
	return dto.RoomResponse{ID: r.ID, Number: r.Number, CorpsID: r.CorpsID, Corps: r.CorpsName}
}

func toLessonResponse(l *models.Lesson) dto.LessonResponse {
	resp := dto.LessonResponse{
		ID:         l.ID,
		RoomID:     l.RoomID,
		Weekday:    l.Weekday,
		WeekParity: l.WeekParity.String(),
		TimeStart:  l.TimeStart.String(),
		TimeEnd:    l.TimeEnd.String(),
		DateStart:  formatOptionalDate(l.DateStart),
		DateEnd:    formatOptionalDate(l.DateEnd),
		Subject:    l.Subject,
		LessonType: l.LessonType,
		Teacher:    l.Teacher,
		Group:      l.GroupName,
	}
	if l.Room != nil {
		resp.Room = l.Room.Number
		resp.Corps = l.Room.CorpsName
	}
	return resp
}
