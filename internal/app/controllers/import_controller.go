package controllers

import (
	"net/http"
	"strconv"

	"github.com/Dermofet/MephiApp-sub000/internal/app/models/dto"
	"github.com/Dermofet/MephiApp-sub000/internal/app/services"
	"github.com/Dermofet/MephiApp-sub000/internal/importer"
	"github.com/Dermofet/MephiApp-sub000/internal/middleware"
	"github.com/Dermofet/MephiApp-sub000/internal/pkg/apperrors"
	"github.com/gin-gonic/gin"
)

// ImportController accepts timetable uploads
type ImportController struct {
	importService services.ImportService
}

// NewImportController creates a new ImportController
func NewImportController(importService services.ImportService) *ImportController {
	return &ImportController{
		importService: importService,
	}
}

// ImportTimetable loads an uploaded timetable
// @Summary Import a timetable
// @Description Loads a CSV or XLS timetable. With replace the previous lessons of every room in the file are dropped first.
// @Tags lessons
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param file formData file true "Timetable (.csv or .xls)"
// @Param encoding formData string false "utf-8 or windows-1251" default(utf-8)
// @Param replace formData bool false "Replace lessons of the imported rooms" default(false)
// @Success 201 {object} dto.APIResponse{data=dto.ImportResultResponse} "Timetable imported successfully"
// @Failure 400 {object} dto.ErrorResponse "Missing file or malformed rows"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 403 {object} dto.ErrorResponse "Forbidden - User does not have permission"
// @Router /lessons/import [post]
func (c *ImportController) ImportTimetable(ctx *gin.Context) {
	file, err := ctx.FormFile("file")
	if err != nil {
		middleware.HandleAPIError(ctx, apperrors.NewValidationError("file", "file is required"))
		return
	}

	opts := services.ImportOptions{Encoding: ctx.DefaultPostForm("encoding", importer.EncodingUTF8)}
	if v := ctx.PostForm("replace"); v != "" {
		opts.Replace, err = strconv.ParseBool(v)
		if err != nil {
			middleware.HandleAPIError(ctx, apperrors.NewValidationError("replace", "replace must be a boolean"))
			return
		}
	}

	result, err := c.importService.ImportTimetable(ctx.Request.Context(), file, opts)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(dto.ImportResultResponse{
		Rows:           result.Rows,
		Corps:          result.Corps,
		Rooms:          result.Rooms,
		LessonsAdded:   result.LessonsAdded,
		LessonsDeleted: result.LessonsDeleted,
		Archived:       result.Archived,
	}, "Timetable imported successfully"))
}
