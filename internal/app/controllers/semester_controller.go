package controllers

import (
	"net/http"

	"github.com/Dermofet/MephiApp-sub000/internal/app/models/dto"
	"github.com/Dermofet/MephiApp-sub000/internal/app/services"
	"github.com/Dermofet/MephiApp-sub000/internal/middleware"
	"github.com/Dermofet/MephiApp-sub000/internal/pkg/apperrors"
	"github.com/Dermofet/MephiApp-sub000/internal/pkg/helpers"
	"github.com/gin-gonic/gin"
)

// SemesterController exposes the academic calendar
type SemesterController struct {
	semesterService services.SemesterService
}

// NewSemesterController creates a new SemesterController
func NewSemesterController(semesterService services.SemesterService) *SemesterController {
	return &SemesterController{
		semesterService: semesterService,
	}
}

// GetSemesterStart returns the first day of the semester
// @Summary Get semester start
// @Tags semester
// @Produce json
// @Success 200 {object} dto.APIResponse{data=dto.SemesterStartResponse} "Semester start retrieved successfully"
// @Failure 409 {object} dto.ErrorResponse "Semester start is not configured"
// @Router /semester/start [get]
func (c *SemesterController) GetSemesterStart(ctx *gin.Context) {
	start, err := c.semesterService.GetSemesterStart(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.SemesterStartResponse{
		Date: start.Date.Format(helpers.DateLayout),
	}, ""))
}

// SetSemesterStart replaces the first day of the semester
// @Summary Set semester start
// @Tags semester
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.SemesterStartRequest true "Semester start"
// @Success 200 {object} dto.APIResponse{data=dto.SemesterStartResponse} "Semester start updated successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid date"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 403 {object} dto.ErrorResponse "Forbidden - User does not have permission"
// @Router /semester/start [put]
func (c *SemesterController) SetSemesterStart(ctx *gin.Context) {
	var req dto.SemesterStartRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	date, err := helpers.ParseDate(req.Date)
	if err != nil {
		middleware.HandleAPIError(ctx, apperrors.NewValidationError("date", err.Error()))
		return
	}

	start, err := c.semesterService.SetSemesterStart(ctx, date)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.SemesterStartResponse{
		Date: start.Date.Format(helpers.DateLayout),
	}, "Semester start updated successfully"))
}

// GetWeekInfo tells the academic week and its parity
// @Summary Get academic week of a date
// @Tags semester
// @Produce json
// @Param date query string false "Date (YYYY-MM-DD), defaults to today"
// @Success 200 {object} dto.APIResponse{data=dto.WeekInfoResponse} "Week retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid date"
// @Failure 409 {object} dto.ErrorResponse "Semester start is not configured"
// @Router /semester/week [get]
func (c *SemesterController) GetWeekInfo(ctx *gin.Context) {
	date, err := parseOptionalDate(ctx.Query("date"))
	if err != nil {
		middleware.HandleAPIError(ctx, apperrors.NewValidationError("date", err.Error()))
		return
	}

	info, err := c.semesterService.WeekInfo(ctx, date)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.WeekInfoResponse{
		Date:       info.Date.Format(helpers.DateLayout),
		WeekNumber: info.WeekNumber,
		Parity:     info.Parity.String(),
	}, ""))
}
