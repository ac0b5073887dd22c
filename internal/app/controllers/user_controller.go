package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/kaan/campushub/internal/app/models/dto"
	"github.com/kaan/campushub/internal/app/services"
	"github.com/kaan/campushub/internal/middleware"
)

// peopleListLimit caps the classmates sidebar listing
const peopleListLimit = 5

// UserController handles user listings, profiles, follows and settings
type UserController struct {
	userService     *services.UserService
	relationService *services.RelationService
	sessions        *services.SessionService
	logger          zerolog.Logger
}

// NewUserController creates a new UserController
func NewUserController(userService *services.UserService, relationService *services.RelationService, sessions *services.SessionService, logger zerolog.Logger) *UserController {
	return &UserController{
		userService:     userService,
		relationService: relationService,
		sessions:        sessions,
		logger:          logger,
	}
}

// ListUsers returns the newest users, excluding the caller when logged in.
// The session here is optional, so the handler resolves it itself instead
// of sitting behind RequireSession.
// @Summary List users
// @Tags users
// @Produce json
// @Success 200 {array} dto.UserCard
// @Router /users [get]
func (c *UserController) ListUsers(ctx *gin.Context) {
	var excludeID int64
	user, err := c.sessions.Current(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	if user != nil {
		excludeID = user.ID
	}

	users, err := c.userService.ListPeople(ctx.Request.Context(), excludeID, peopleListLimit)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, users)
}

// parseUserID reads the :userId path parameter as an integer id
func parseUserID(ctx *gin.Context) (int64, bool) {
	userID, err := strconv.ParseInt(ctx.Param("userId"), 10, 64)
	if err != nil || userID <= 0 {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Invalid user ID"))
		return 0, false
	}
	return userID, true
}

// GetProfile returns a user's public profile with their posts
// @Summary Get a profile
// @Tags users
// @Produce json
// @Param userId path int true "User ID"
// @Success 200 {object} dto.ProfileResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /users/{userId} [get]
func (c *UserController) GetProfile(ctx *gin.Context) {
	userID, ok := parseUserID(ctx)
	if !ok {
		return
	}

	profile, err := c.userService.GetProfile(ctx.Request.Context(), userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, profile)
}

// ToggleFollow flips the session user's follow on the target user
// @Summary Toggle a follow
// @Description Follows the target when no follow exists, removes it otherwise. Self-follows are rejected.
// @Tags users
// @Produce json
// @Param userId path int true "Target user ID"
// @Success 200 {object} dto.FollowToggleResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid id or self-follow"
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /users/{userId}/follow [post]
func (c *UserController) ToggleFollow(ctx *gin.Context) {
	followerID, ok := middleware.CurrentUserID(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse("Unauthorized"))
		return
	}

	followingID, ok := parseUserID(ctx)
	if !ok {
		return
	}

	following, err := c.relationService.ToggleFollow(ctx.Request.Context(), followerID, followingID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.FollowToggleResponse{Following: following})
}

// UpdateSettings updates the session user's name and major
// @Summary Update settings
// @Tags users
// @Accept json
// @Produce json
// @Param request body dto.UpdateSettingsRequest true "New name and major"
// @Success 200 {object} dto.UserSummary
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Router /settings/update [post]
func (c *UserController) UpdateSettings(ctx *gin.Context) {
	userID, ok := middleware.CurrentUserID(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse("Unauthorized"))
		return
	}

	var req dto.UpdateSettingsRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Name and major are required"))
		return
	}

	summary, err := c.userService.UpdateSettings(ctx.Request.Context(), userID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, summary)
}
