package controllers

import (
	"net/http"

	"github.com/Dermofet/MephiApp-sub000/internal/app/models"
	"github.com/Dermofet/MephiApp-sub000/internal/app/models/dto"
	"github.com/Dermofet/MephiApp-sub000/internal/app/services"
	"github.com/Dermofet/MephiApp-sub000/internal/middleware"
	"github.com/gin-gonic/gin"
)

// RoomController handles room-related operations
type RoomController struct {
	roomService services.RoomService
}

// NewRoomController creates a new RoomController
func NewRoomController(roomService services.RoomService) *RoomController {
	return &RoomController{
		roomService: roomService,
	}
}

// CreateRoom handles room creation
// @Summary Create a new room
// @Tags rooms
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateRoomRequest true "Room information"
// @Success 201 {object} dto.APIResponse{data=dto.RoomResponse} "Room created successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 403 {object} dto.ErrorResponse "Forbidden - User does not have permission"
// @Failure 404 {object} dto.ErrorResponse "Corps not found"
// @Failure 409 {object} dto.ErrorResponse "Room already exists in the corps"
// @Router /rooms [post]
func (c *RoomController) CreateRoom(ctx *gin.Context) {
	var req dto.CreateRoomRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	room, err := c.roomService.CreateRoom(ctx, &models.Room{Number: req.Number, CorpsID: req.CorpsID})
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(toRoomResponse(room), "Room created successfully"))
}

// GetRoomByID retrieves a room by ID
// @Summary Get room details
// @Tags rooms
// @Produce json
// @Param id path int true "Room ID" Format(int64) minimum(1)
// @Success 200 {object} dto.APIResponse{data=dto.RoomResponse} "Room retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid room ID format"
// @Failure 404 {object} dto.ErrorResponse "Room not found"
// @Router /rooms/{id} [get]
func (c *RoomController) GetRoomByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id", "Room")
	if !ok {
		return
	}

	room, err := c.roomService.GetRoomByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(toRoomResponse(room), ""))
}

// ListRooms lists rooms, optionally of the given corps
// @Summary List rooms
// @Tags rooms
// @Produce json
// @Param corps query []string false "Corps names" collectionFormat(multi)
// @Success 200 {object} dto.APIResponse{data=[]dto.RoomResponse} "Rooms retrieved successfully"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /rooms [get]
func (c *RoomController) ListRooms(ctx *gin.Context) {
	rooms, err := c.roomService.ListRooms(ctx, ctx.QueryArray("corps"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	resp := make([]dto.RoomResponse, 0, len(rooms))
	for _, room := range rooms {
		resp = append(resp, toRoomResponse(room))
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(resp, ""))
}

// UpdateRoom changes the number or the corps of a room
// @Summary Update a room
// @Tags rooms
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Room ID" Format(int64) minimum(1)
// @Param request body dto.UpdateRoomRequest true "Updated room information"
// @Success 200 {object} dto.APIResponse{data=dto.RoomResponse} "Room updated successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 403 {object} dto.ErrorResponse "Forbidden - User does not have permission"
// @Failure 404 {object} dto.ErrorResponse "Room or corps not found"
// @Failure 409 {object} dto.ErrorResponse "Room already exists in the corps"
// @Router /rooms/{id} [put]
func (c *RoomController) UpdateRoom(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id", "Room")
	if !ok {
		return
	}

	var req dto.UpdateRoomRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	room, err := c.roomService.UpdateRoom(ctx, &models.Room{ID: id, Number: req.Number, CorpsID: req.CorpsID})
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(toRoomResponse(room), "Room updated successfully"))
}

// DeleteRoom deletes a room with its lessons
// @Summary Delete a room
// @Tags rooms
// @Produce json
// @Security BearerAuth
// @Param id path int true "Room ID" Format(int64) minimum(1)
// @Success 200 {object} dto.APIResponse "Room deleted successfully"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 403 {object} dto.ErrorResponse "Forbidden - User does not have permission"
// @Failure 404 {object} dto.ErrorResponse "Room not found"
// @Router /rooms/{id} [delete]
func (c *RoomController) DeleteRoom(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id", "Room")
	if !ok {
		return
	}

	if err := c.roomService.DeleteRoom(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(nil, "Room deleted successfully"))
}
