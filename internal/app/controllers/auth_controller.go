// Package controllers handles HTTP request handling
package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/kaan/campushub/internal/app/models"
	"github.com/kaan/campushub/internal/app/models/dto"
	"github.com/kaan/campushub/internal/app/services"
	"github.com/kaan/campushub/internal/middleware"
)

// AuthController handles authentication related operations
type AuthController struct {
	authService *services.AuthService
	sessions    *services.SessionService
	logger      zerolog.Logger
}

// NewAuthController creates a new AuthController
func NewAuthController(authService *services.AuthService, sessions *services.SessionService, logger zerolog.Logger) *AuthController {
	return &AuthController{
		authService: authService,
		sessions:    sessions,
		logger:      logger,
	}
}

// Register handles user registration
// @Summary Register a new user
// @Description Creates a new account with name, email, student id, major and password
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.RegisterRequest true "User registration information"
// @Success 201 {object} dto.MessageResponse
// @Failure 400 {object} dto.ErrorResponse "Missing or malformed field"
// @Failure 409 {object} dto.ErrorResponse "Email or student id already exists"
// @Failure 500 {object} dto.ErrorResponse
// @Router /auth/register [post]
func (c *AuthController) Register(ctx *gin.Context) {
	var req dto.RegisterRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.logger.Warn().Err(err).Msg("Invalid registration request payload")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("All fields are required"))
		return
	}

	if _, err := c.authService.Register(ctx.Request.Context(), &req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.MessageResponse{Message: "User created successfully"})
}

// Login handles user login and issues the session cookie
// @Summary Log in
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Login credentials"
// @Success 200 {object} dto.MessageResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse "Invalid credentials"
// @Router /auth/login [post]
func (c *AuthController) Login(ctx *gin.Context) {
	var req dto.LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Email and password are required"))
		return
	}

	user, err := c.authService.Login(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.sessions.Issue(ctx, user.ID)
	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Login successful"})
}

// Logout destroys the session cookie
// @Summary Log out
// @Tags auth
// @Produce json
// @Success 200 {object} dto.MessageResponse
// @Router /auth/logout [post]
func (c *AuthController) Logout(ctx *gin.Context) {
	c.sessions.Clear(ctx)
	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Logged out"})
}

// Me returns the authenticated user's account summary
// @Summary Current user
// @Tags auth
// @Produce json
// @Success 200 {object} dto.UserSummary
// @Failure 401 {object} dto.ErrorResponse
// @Router /auth/me [get]
func (c *AuthController) Me(ctx *gin.Context) {
	value, exists := ctx.Get(middleware.ContextUserKey)
	user, ok := value.(*models.User)
	if !exists || !ok {
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse("Unauthorized"))
		return
	}

	ctx.JSON(http.StatusOK, services.ToUserSummary(user))
}
