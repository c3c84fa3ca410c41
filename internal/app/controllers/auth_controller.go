package controllers

import (
	"context"
	"net/http"

	"github.com/Dermofet/MephiApp-sub000/internal/app/models/dto"
	"github.com/Dermofet/MephiApp-sub000/internal/app/services"
	"github.com/Dermofet/MephiApp-sub000/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// Authenticator issues access tokens
type Authenticator interface {
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error)
}

var _ Authenticator = (*services.AuthService)(nil)

// AuthController handles authentication related operations
type AuthController struct {
	authService Authenticator
	logger      zerolog.Logger
}

// NewAuthController creates a new AuthController
func NewAuthController(authService Authenticator, logger zerolog.Logger) *AuthController {
	return &AuthController{
		authService: authService,
		logger:      logger,
	}
}

// Login handles administrator login
// @Summary Log in
// @Description Exchanges the administrator credentials for an access token used by the editing endpoints
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Administrator credentials"
// @Success 200 {object} dto.APIResponse{data=dto.TokenResponse} "Login successful"
// @Failure 400 {object} dto.ErrorResponse "Invalid request format"
// @Failure 401 {object} dto.ErrorResponse "Invalid credentials"
// @Router /auth/login [post]
func (c *AuthController) Login(ctx *gin.Context) {
	var req dto.LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.logger.Warn().Err(err).Msg("Invalid login request payload")
		middleware.HandleBindingError(ctx, err)
		return
	}

	tokenResponse, err := c.authService.Login(ctx.Request.Context(), &req)
	if err != nil {
		c.logger.Warn().Err(err).Str("username", req.Username).Msg("Login failed")
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.logger.Info().Str("username", req.Username).Msg("Administrator logged in")
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(tokenResponse, ""))
}
