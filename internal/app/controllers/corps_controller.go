package controllers

import (
	"net/http"

	"github.com/Dermofet/MephiApp-sub000/internal/app/models/dto"
	"github.com/Dermofet/MephiApp-sub000/internal/app/services"
	"github.com/Dermofet/MephiApp-sub000/internal/middleware"
	"github.com/gin-gonic/gin"
)

// CorpsController handles corps-related operations
type CorpsController struct {
	corpsService services.CorpsService
}

// NewCorpsController creates a new CorpsController
func NewCorpsController(corpsService services.CorpsService) *CorpsController {
	return &CorpsController{
		corpsService: corpsService,
	}
}

// CreateCorps handles corps creation
// @Summary Create a new corps
// @Description Creates a university building
// @Tags corps
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateCorpsRequest true "Corps information"
// @Success 201 {object} dto.APIResponse{data=dto.CorpsResponse} "Corps created successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 403 {object} dto.ErrorResponse "Forbidden - User does not have permission"
// @Failure 409 {object} dto.ErrorResponse "Corps already exists"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /corps [post]
func (c *CorpsController) CreateCorps(ctx *gin.Context) {
	var req dto.CreateCorpsRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	corps, err := c.corpsService.CreateCorps(ctx, req.Name)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(toCorpsResponse(corps), "Corps created successfully"))
}

// GetCorpsByID retrieves a corps by ID
// @Summary Get corps details
// @Tags corps
// @Produce json
// @Param id path int true "Corps ID" Format(int64) minimum(1)
// @Success 200 {object} dto.APIResponse{data=dto.CorpsResponse} "Corps retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid corps ID format"
// @Failure 404 {object} dto.ErrorResponse "Corps not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /corps/{id} [get]
func (c *CorpsController) GetCorpsByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id", "Corps")
	if !ok {
		return
	}

	corps, err := c.corpsService.GetCorpsByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(toCorpsResponse(corps), ""))
}

// GetAllCorps lists every corps
// @Summary Get all corps
// @Tags corps
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]dto.CorpsResponse} "Corps retrieved successfully"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /corps [get]
func (c *CorpsController) GetAllCorps(ctx *gin.Context) {
	list, err := c.corpsService.GetAllCorps(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	resp := make([]dto.CorpsResponse, 0, len(list))
	for _, corps := range list {
		resp = append(resp, toCorpsResponse(corps))
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(resp, ""))
}

// UpdateCorps renames a corps
// @Summary Update a corps
// @Tags corps
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Corps ID" Format(int64) minimum(1)
// @Param request body dto.UpdateCorpsRequest true "Updated corps information"
// @Success 200 {object} dto.APIResponse{data=dto.CorpsResponse} "Corps updated successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 403 {object} dto.ErrorResponse "Forbidden - User does not have permission"
// @Failure 404 {object} dto.ErrorResponse "Corps not found"
// @Failure 409 {object} dto.ErrorResponse "Corps already exists"
// @Router /corps/{id} [put]
func (c *CorpsController) UpdateCorps(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id", "Corps")
	if !ok {
		return
	}

	var req dto.UpdateCorpsRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	corps, err := c.corpsService.UpdateCorps(ctx, id, req.Name)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(toCorpsResponse(corps), "Corps updated successfully"))
}

// DeleteCorps deletes a corps with its rooms and lessons
// @Summary Delete a corps
// @Tags corps
// @Produce json
// @Security BearerAuth
// @Param id path int true "Corps ID" Format(int64) minimum(1)
// @Success 200 {object} dto.APIResponse "Corps deleted successfully"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 403 {object} dto.ErrorResponse "Forbidden - User does not have permission"
// @Failure 404 {object} dto.ErrorResponse "Corps not found"
// @Router /corps/{id} [delete]
func (c *CorpsController) DeleteCorps(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id", "Corps")
	if !ok {
		return
	}

	if err := c.corpsService.DeleteCorps(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(nil, "Corps deleted successfully"))
}
