package controllers

import (
	"errors"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/Dermofet/MephiApp-sub000/internal/app/availability"
	"github.com/Dermofet/MephiApp-sub000/internal/app/models/dto"
	"github.com/Dermofet/MephiApp-sub000/internal/app/services"
	"github.com/Dermofet/MephiApp-sub000/internal/middleware"
	"github.com/Dermofet/MephiApp-sub000/internal/pkg/apperrors"
	"github.com/Dermofet/MephiApp-sub000/internal/pkg/helpers"
	"github.com/gin-gonic/gin"
)

// FreeRoomController answers room availability queries
type FreeRoomController struct {
	freeRoomService services.FreeRoomService
	publishWindow   availability.Window
}

// NewFreeRoomController creates a new FreeRoomController.
// publishWindow is used when a publish request leaves the window empty.
func NewFreeRoomController(freeRoomService services.FreeRoomService, publishWindow availability.Window) *FreeRoomController {
	return &FreeRoomController{
		freeRoomService: freeRoomService,
		publishWindow:   publishWindow,
	}
}

// splitCorps accepts both repeated and comma separated corps values
func splitCorps(values []string) []string {
	corps := make([]string, 0, len(values))
	for _, v := range values {
		for _, name := range strings.Split(v, ",") {
			if name = strings.TrimSpace(name); name != "" {
				corps = append(corps, name)
			}
		}
	}
	return corps
}

// GetFreeRooms lists free slots of the selected corps
// @Summary Find free rooms
// @Description Returns continuous free intervals of every room of the selected corps within the time window
// @Tags free-rooms
// @Produce json
// @Param corps query []string true "Corps names" collectionFormat(multi)
// @Param date query string false "Date (YYYY-MM-DD), defaults to today"
// @Param time_start query string true "Window start (HH:MM)"
// @Param time_end query string true "Window end (HH:MM)"
// @Success 200 {object} dto.APIResponse{data=dto.FreeRoomsResponse} "Free rooms retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data or no building selected"
// @Failure 409 {object} dto.ErrorResponse "Semester start is not configured"
// @Failure 422 {object} dto.ErrorResponse "Window start is not before window end"
// @Router /rooms/free [get]
func (c *FreeRoomController) GetFreeRooms(ctx *gin.Context) {
	var req dto.FreeRoomsRequest
	if err := ctx.ShouldBindQuery(&req); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}
	c.findFreeRooms(ctx, &req)
}

// PostFreeRooms is GetFreeRooms with a JSON body
// @Summary Find free rooms
// @Tags free-rooms
// @Accept json
// @Produce json
// @Param request body dto.FreeRoomsRequest true "Availability query"
// @Success 200 {object} dto.APIResponse{data=dto.FreeRoomsResponse} "Free rooms retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data or no building selected"
// @Failure 409 {object} dto.ErrorResponse "Semester start is not configured"
// @Failure 422 {object} dto.ErrorResponse "Window start is not before window end"
// @Router /rooms/free [post]
func (c *FreeRoomController) PostFreeRooms(ctx *gin.Context) {
	var req dto.FreeRoomsRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}
	c.findFreeRooms(ctx, &req)
}

func (c *FreeRoomController) findFreeRooms(ctx *gin.Context, req *dto.FreeRoomsRequest) {
	corps := splitCorps(req.Corps)
	if len(corps) == 0 {
		middleware.HandleAPIError(ctx, apperrors.NewBadRequestError("no building selected"))
		return
	}

	window, err := parseWindow(req.TimeStart, req.TimeEnd)
	if err != nil {
		middleware.HandleAPIError(ctx, apperrors.NewValidationError("timeStart", err.Error()))
		return
	}
	date, err := parseOptionalDate(req.Date)
	if err != nil {
		middleware.HandleAPIError(ctx, apperrors.NewValidationError("date", err.Error()))
		return
	}

	free, err := c.freeRoomService.GetFreeRooms(ctx.Request.Context(), services.FreeRoomsQuery{
		Corps:  corps,
		Date:   date,
		Window: window,
	})
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	resp := dto.FreeRoomsResponse{Rooms: make([]dto.FreeSlotResponse, 0, len(free))}
	for _, slot := range free {
		resp.Rooms = append(resp.Rooms, dto.FreeSlotResponse{
			Name:      slot.Room,
			TimeStart: slot.Start.String(),
			TimeEnd:   slot.End.String(),
			Corps:     slot.Corps,
		})
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(resp, ""))
}

// PublishFreeRooms pushes the free slots of every corps to the realtime database
// @Summary Publish free rooms
// @Tags free-rooms
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.PublishFreeRoomsRequest false "Date and window, defaults to today and the configured window"
// @Success 200 {object} dto.APIResponse{data=dto.PublishFreeRoomsResponse} "Free rooms published successfully"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 403 {object} dto.ErrorResponse "Forbidden - User does not have permission"
// @Failure 503 {object} dto.ErrorResponse "Publishing is disabled or failed"
// @Router /rooms/free/publish [post]
func (c *FreeRoomController) PublishFreeRooms(ctx *gin.Context) {
	// the body is optional
	var req dto.PublishFreeRoomsRequest
	if err := ctx.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		middleware.HandleBindingError(ctx, err)
		return
	}

	window := c.publishWindow
	if req.TimeStart != "" || req.TimeEnd != "" {
		var err error
		window, err = parseWindow(req.TimeStart, req.TimeEnd)
		if err != nil {
			middleware.HandleAPIError(ctx, apperrors.NewValidationError("timeStart", err.Error()))
			return
		}
	}
	date, err := parseOptionalDate(req.Date)
	if err != nil {
		middleware.HandleAPIError(ctx, apperrors.NewValidationError("date", err.Error()))
		return
	}

	result, err := c.freeRoomService.PublishFreeRooms(ctx.Request.Context(), date, window)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.PublishFreeRoomsResponse{
		Path:       result.Path,
		SlotCount:  result.SlotCount,
		LastUpdate: result.LastUpdate.UTC().Format(time.RFC3339),
	}, "Free rooms published for "+result.Date.Format(helpers.DateLayout)))
}
