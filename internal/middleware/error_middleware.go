package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/kaan/campushub/internal/app/models/dto"
	"github.com/kaan/campushub/internal/pkg/apperrors"
	"github.com/kaan/campushub/internal/pkg/logger"
)

// HandleAPIError converts a service error into the matching status code
// and the uniform `{"error": string}` body. Unexpected failures are logged
// with their cause and answered with a generic message — internal detail
// never reaches the client.
func HandleAPIError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, apperrors.ErrEmptyContent),
		errors.Is(err, apperrors.ErrSelfFollow),
		errors.Is(err, apperrors.ErrInvalidID):
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(err.Error()))

	case errors.Is(err, apperrors.ErrUnauthorized),
		errors.Is(err, apperrors.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, dto.NewErrorResponse("Invalid credentials"))

	case errors.Is(err, apperrors.ErrUserNotFound),
		errors.Is(err, apperrors.ErrPostNotFound):
		c.JSON(http.StatusNotFound, dto.NewErrorResponse(err.Error()))

	case errors.Is(err, apperrors.ErrEmailTaken),
		errors.Is(err, apperrors.ErrStudentIDTaken):
		c.JSON(http.StatusConflict, dto.NewErrorResponse("User with this email or student ID already exists"))

	default:
		logger.Error().Err(err).Str("path", c.FullPath()).Msg("Unhandled API error")
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse("Internal server error"))
	}
}
