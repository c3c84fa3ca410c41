package services

import (
	"context"
	"crypto/subtle"
	"fmt"
	"strings"

	"github.com/Dermofet/MephiApp-sub000/internal/app/models/dto"
	"github.com/Dermofet/MephiApp-sub000/internal/pkg/apperrors"
	"github.com/Dermofet/MephiApp-sub000/internal/pkg/auth"
	"github.com/rs/zerolog"
)

// AdminAccount is the single account allowed to edit the schedule
type AdminAccount struct {
	Username     string
	PasswordHash string
}

// AuthService handles authentication operations
type AuthService struct {
	admin      AdminAccount
	jwtService *auth.JWTService
	logger     zerolog.Logger
}

// NewAuthService creates a new AuthService
func NewAuthService(admin AdminAccount, jwtService *auth.JWTService, logger zerolog.Logger) *AuthService {
	return &AuthService{
		admin:      admin,
		jwtService: jwtService,
		logger:     logger,
	}
}

// Login checks the admin credentials and issues an access token
func (s *AuthService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error) {
	username := strings.TrimSpace(req.Username)
	if username == "" || req.Password == "" {
		return nil, apperrors.NewValidationError("username", "username and password are required")
	}

	if s.admin.PasswordHash == "" {
		s.logger.Warn().Msg("Login attempted but no admin password hash is configured")
		return nil, apperrors.ErrInvalidCredentials
	}

	// bcrypt runs even for a wrong username so both failures take as long
	passwordOK := auth.CheckPassword(s.admin.PasswordHash, req.Password)
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(s.admin.Username)) == 1
	if !passwordOK || !userOK {
		s.logger.Warn().Str("username", username).Msg("Failed login attempt")
		return nil, apperrors.ErrInvalidCredentials
	}

	token, expiresIn, err := s.jwtService.GenerateAccessToken(username, auth.RoleAdmin)
	if err != nil {
		return nil, fmt.Errorf("error generating token: %w", err)
	}

	s.logger.Info().Str("username", username).Msg("Admin logged in")
	return &dto.TokenResponse{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresIn:   expiresIn,
	}, nil
}
