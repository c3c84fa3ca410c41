package middleware

import (
	"errors"
	"net/http"
	"time"

	"github.com/Dermofet/MephiApp-sub000/internal/app/models/dto"
	"github.com/Dermofet/MephiApp-sub000/internal/pkg/apperrors"
	"github.com/Dermofet/MephiApp-sub000/internal/pkg/auth"
	"github.com/Dermofet/MephiApp-sub000/internal/pkg/logger"
	"github.com/gin-gonic/gin"
)

// apiError is a resolved HTTP status with its error code and default message
type apiError struct {
	status  int
	code    dto.ErrorCode
	message string
}

// resolveError maps domain sentinels onto HTTP responses. Order matters: the
// specific not-found sentinels come before the generic ones.
func resolveError(err error) apiError {
	switch {
	case apperrors.Is(err, apperrors.ErrCorpsNotFound):
		return apiError{http.StatusNotFound, dto.ErrorCodeResourceNotFound, "Corps not found"}
	case apperrors.Is(err, apperrors.ErrRoomNotFound):
		return apiError{http.StatusNotFound, dto.ErrorCodeResourceNotFound, "Room not found"}
	case apperrors.Is(err, apperrors.ErrLessonNotFound):
		return apiError{http.StatusNotFound, dto.ErrorCodeResourceNotFound, "Lesson not found"}
	case apperrors.Is(err, apperrors.ErrResourceNotFound):
		return apiError{http.StatusNotFound, dto.ErrorCodeResourceNotFound, "Resource not found"}

	case apperrors.Is(err, apperrors.ErrCorpsAlreadyExists, apperrors.ErrRoomAlreadyExists, apperrors.ErrResourceAlreadyExists):
		return apiError{http.StatusConflict, dto.ErrorCodeResourceAlreadyExists, "Resource already exists"}
	case apperrors.Is(err, apperrors.ErrConflict):
		return apiError{http.StatusConflict, dto.ErrorCodeResourceConflict, "Conflict"}
	case apperrors.Is(err, apperrors.ErrSemesterNotConfigured):
		return apiError{http.StatusConflict, dto.ErrorCodeSemesterNotConfigured, "Semester start date is not configured"}

	case apperrors.Is(err, apperrors.ErrInvalidWindow):
		return apiError{http.StatusUnprocessableEntity, dto.ErrorCodeInvalidWindow, "time_start must be before time_end"}
	case apperrors.Is(err, apperrors.ErrValidationFailed, apperrors.ErrBadRequest):
		return apiError{http.StatusBadRequest, dto.ErrorCodeValidationFailed, "Validation failed"}

	case apperrors.Is(err, apperrors.ErrInvalidCredentials):
		return apiError{http.StatusUnauthorized, dto.ErrorCodeInvalidCredentials, "Invalid credentials"}
	case apperrors.Is(err, apperrors.ErrTokenExpired, auth.ErrExpiredToken):
		return apiError{http.StatusUnauthorized, dto.ErrorCodeExpiredToken, "Token expired"}
	case apperrors.Is(err, apperrors.ErrTokenInvalid, auth.ErrInvalidToken, auth.ErrInvalidFormat):
		return apiError{http.StatusUnauthorized, dto.ErrorCodeInvalidToken, "Invalid token"}
	case apperrors.Is(err, apperrors.ErrPermissionDenied):
		return apiError{http.StatusForbidden, dto.ErrorCodeForbidden, "Permission denied"}

	case apperrors.Is(err, apperrors.ErrServiceUnavailable):
		return apiError{http.StatusServiceUnavailable, dto.ErrorCodeExternalServiceError, "Service unavailable"}
	}
	return apiError{http.StatusInternalServerError, dto.ErrorCodeInternalServer, "Internal server error"}
}

// HandleAPIError writes the error response for err
func HandleAPIError(c *gin.Context, err error) {
	resolved := resolveError(err)
	detail := dto.NewErrorDetail(resolved.code, resolved.message)

	if resolved.status >= http.StatusInternalServerError {
		logger.Error().Err(err).
			Str("path", c.Request.URL.Path).
			Str("requestID", c.GetString(RequestIDKey)).
			Msg("Request failed")
		if resolved.status == http.StatusServiceUnavailable {
			detail = detail.WithDetails(err.Error())
		}
	} else {
		detail = detail.WithDetails(err.Error())
		var custom *apperrors.CustomError
		if errors.As(err, &custom) {
			if field, ok := custom.Details["field"].(string); ok {
				detail = detail.WithField(field)
			}
		}
	}

	c.AbortWithStatusJSON(resolved.status, ErrorResponse(detail))
}

// HandleBindingError answers 400 for a request that failed binding or validation
func HandleBindingError(c *gin.Context, err error) {
	c.AbortWithStatusJSON(http.StatusBadRequest, ErrorResponse(dto.HandleValidationError(err)))
}

// ErrorResponse wraps an ErrorDetail into the response envelope
func ErrorResponse(detail *dto.ErrorDetail) dto.APIResponse {
	return dto.APIResponse{
		Success:   false,
		Error:     detail,
		Timestamp: time.Now(),
	}
}
