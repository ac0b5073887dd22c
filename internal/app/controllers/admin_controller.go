package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/kaan/campushub/internal/app/models/dto"
	"github.com/kaan/campushub/internal/app/services"
	"github.com/kaan/campushub/internal/middleware"
)

// AdminController handles administrative operations
type AdminController struct {
	userService *services.UserService
	logger      zerolog.Logger
}

// NewAdminController creates a new AdminController
func NewAdminController(userService *services.UserService, logger zerolog.Logger) *AdminController {
	return &AdminController{
		userService: userService,
		logger:      logger,
	}
}

// DeleteUser removes an account together with its posts
// @Summary Delete a user
// @Description Deletes the user and all their posts in one transaction. Dependent likes, comments and follows cascade.
// @Tags admin
// @Accept json
// @Produce json
// @Param request body dto.DeleteUserRequest true "User to delete"
// @Success 200 {object} dto.MessageResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /admin/delete-user [post]
func (c *AdminController) DeleteUser(ctx *gin.Context) {
	var req dto.DeleteUserRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("User ID is required"))
		return
	}

	if err := c.userService.DeleteUser(ctx.Request.Context(), req.UserID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.logger.Warn().
		Int64("userID", req.UserID).
		Msg("Admin removed a user account")

	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "User and their posts deleted successfully"})
}
