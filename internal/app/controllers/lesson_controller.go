package controllers

import (
	"net/http"

	"github.com/Dermofet/MephiApp-sub000/internal/app/models"
	"github.com/Dermofet/MephiApp-sub000/internal/app/models/dto"
	"github.com/Dermofet/MephiApp-sub000/internal/app/repositories"
	"github.com/Dermofet/MephiApp-sub000/internal/app/services"
	"github.com/Dermofet/MephiApp-sub000/internal/middleware"
	"github.com/Dermofet/MephiApp-sub000/internal/pkg/apperrors"
	"github.com/Dermofet/MephiApp-sub000/internal/pkg/helpers"
	"github.com/gin-gonic/gin"
)

// LessonController handles lesson-related operations
type LessonController struct {
	lessonService services.LessonService
}

// NewLessonController creates a new LessonController
func NewLessonController(lessonService services.LessonService) *LessonController {
	return &LessonController{
		lessonService: lessonService,
	}
}

// lessonFromRequest converts a bound request. Formats were checked by the binding rules.
func lessonFromRequest(req *dto.LessonRequest) (*models.Lesson, error) {
	parity, err := models.ParseWeekParity(req.WeekParity)
	if err != nil {
		return nil, apperrors.NewValidationError("weekParity", err.Error())
	}
	start, err := models.ParseTimeOfDay(req.TimeStart)
	if err != nil {
		return nil, apperrors.NewValidationError("timeStart", err.Error())
	}
	end, err := models.ParseTimeOfDay(req.TimeEnd)
	if err != nil {
		return nil, apperrors.NewValidationError("timeEnd", err.Error())
	}
	dateStart, err := parseOptionalDate(req.DateStart)
	if err != nil {
		return nil, apperrors.NewValidationError("dateStart", err.Error())
	}
	dateEnd, err := parseOptionalDate(req.DateEnd)
	if err != nil {
		return nil, apperrors.NewValidationError("dateEnd", err.Error())
	}

	return &models.Lesson{
		RoomID:     req.RoomID,
		Weekday:    req.Weekday,
		WeekParity: parity,
		TimeStart:  start,
		TimeEnd:    end,
		DateStart:  dateStart,
		DateEnd:    dateEnd,
		Subject:    req.Subject,
		LessonType: req.LessonType,
		Teacher:    req.Teacher,
		GroupName:  req.Group,
	}, nil
}

// CreateLesson schedules a lesson
// @Summary Create a new lesson
// @Tags lessons
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.LessonRequest true "Lesson information"
// @Success 201 {object} dto.APIResponse{data=dto.LessonResponse} "Lesson created successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 403 {object} dto.ErrorResponse "Forbidden - User does not have permission"
// @Failure 404 {object} dto.ErrorResponse "Room not found"
// @Router /lessons [post]
func (c *LessonController) CreateLesson(ctx *gin.Context) {
	var req dto.LessonRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	lesson, err := lessonFromRequest(&req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	created, err := c.lessonService.CreateLesson(ctx, lesson)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(toLessonResponse(created), "Lesson created successfully"))
}

// GetLessonByID retrieves a lesson by ID
// @Summary Get lesson details
// @Tags lessons
// @Produce json
// @Param id path int true "Lesson ID" Format(int64) minimum(1)
// @Success 200 {object} dto.APIResponse{data=dto.LessonResponse} "Lesson retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid lesson ID format"
// @Failure 404 {object} dto.ErrorResponse "Lesson not found"
// @Router /lessons/{id} [get]
func (c *LessonController) GetLessonByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id", "Lesson")
	if !ok {
		return
	}

	lesson, err := c.lessonService.GetLessonByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(toLessonResponse(lesson), ""))
}

// ListLessons returns a page of lessons
// @Summary List lessons
// @Tags lessons
// @Produce json
// @Param room_id query int false "Room ID"
// @Param weekday query int false "Weekday, 1 = Monday"
// @Param page query int false "Page number (1-based)" default(1)
// @Param size query int false "Page size" default(50)
// @Success 200 {object} dto.APIResponse{data=[]dto.LessonResponse} "Lessons retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid filter"
// @Router /lessons [get]
func (c *LessonController) ListLessons(ctx *gin.Context) {
	var filter dto.LessonFilter
	if err := ctx.ShouldBindQuery(&filter); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}
	page, size := helpers.ParsePaginationParams(ctx)

	lessons, total, err := c.lessonService.ListLessons(ctx, repositories.LessonFilter{
		RoomID:  filter.RoomID,
		Weekday: filter.Weekday,
	}, page, size)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	items := make([]dto.LessonResponse, 0, len(lessons))
	for _, lesson := range lessons {
		items = append(items, toLessonResponse(lesson))
	}
	ctx.JSON(http.StatusOK, dto.NewPaginatedResponse(items, helpers.NewPaginationInfo(total, page, size), ""))
}

// UpdateLesson replaces a lesson
// @Summary Update a lesson
// @Tags lessons
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Lesson ID" Format(int64) minimum(1)
// @Param request body dto.LessonRequest true "Lesson information"
// @Success 200 {object} dto.APIResponse{data=dto.LessonResponse} "Lesson updated successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 403 {object} dto.ErrorResponse "Forbidden - User does not have permission"
// @Failure 404 {object} dto.ErrorResponse "Lesson or room not found"
// @Router /lessons/{id} [put]
func (c *LessonController) UpdateLesson(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id", "Lesson")
	if !ok {
		return
	}

	var req dto.LessonRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	lesson, err := lessonFromRequest(&req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	lesson.ID = id

	updated, err := c.lessonService.UpdateLesson(ctx, lesson)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(toLessonResponse(updated), "Lesson updated successfully"))
}

// DeleteLesson removes a lesson
// @Summary Delete a lesson
// @Tags lessons
// @Produce json
// @Security BearerAuth
// @Param id path int true "Lesson ID" Format(int64) minimum(1)
// @Success 200 {object} dto.APIResponse "Lesson deleted successfully"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 403 {object} dto.ErrorResponse "Forbidden - User does not have permission"
// @Failure 404 {object} dto.ErrorResponse "Lesson not found"
// @Router /lessons/{id} [delete]
func (c *LessonController) DeleteLesson(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id", "Lesson")
	if !ok {
		return
	}

	if err := c.lessonService.DeleteLesson(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(nil, "Lesson deleted successfully"))
}
