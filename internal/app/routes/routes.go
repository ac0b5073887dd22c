package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/kaan/campushub/internal/app/controllers"
	"github.com/kaan/campushub/internal/app/models/dto"
	"github.com/kaan/campushub/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	postController *controllers.PostController,
	userController *controllers.UserController,
	adminController *controllers.AdminController,
	fileController *controllers.FileController,
	pageController *controllers.PageController,
	authMiddleware *middleware.AuthMiddleware,
	sessionCookieName string,
) {
	// --- Page routes behind the edge gate ---
	// The gate only looks at cookie presence; /api and /uploads are never
	// gated and every API handler re-checks the session against the store.
	pages := router.Group("", middleware.PageGate(sessionCookieName))
	{
		pages.GET("/", pageController.Home)
		pages.GET("/login", pageController.Login)
		pages.GET("/register", pageController.Register)
	}

	api := router.Group("/api")

	// --- Auth routes ---
	auth := api.Group("/auth")
	{
		auth.POST("/register", authController.Register)
		auth.POST("/login", authController.Login)
		auth.POST("/logout", authController.Logout)
		auth.GET("/me", authMiddleware.RequireSession(), authController.Me)
	}

	// --- Post routes ---
	posts := api.Group("/posts")
	{
		// The feed and comment listings are public
		posts.GET("", postController.ListPosts)
		posts.GET("/:postId/comments", postController.ListComments)

		postsProtected := posts.Group("")
		postsProtected.Use(authMiddleware.RequireSession())
		{
			postsProtected.POST("", postController.CreatePost)
			postsProtected.POST("/:postId/like", postController.ToggleLike)
			postsProtected.POST("/:postId/comments", postController.CreateComment)
		}
	}

	// --- User routes ---
	users := api.Group("/users")
	{
		users.GET("", userController.ListUsers)
		users.GET("/:userId", userController.GetProfile)
		users.POST("/:userId/follow", authMiddleware.RequireSession(), userController.ToggleFollow)
	}

	// --- Settings ---
	api.POST("/settings/update", authMiddleware.RequireSession(), userController.UpdateSettings)

	// --- Files ---
	api.POST("/files", authMiddleware.RequireSession(), fileController.Upload)

	// --- Admin ---
	api.POST("/admin/delete-user", adminController.DeleteUser)

	// Health check endpoint (public)
	api.GET("/health", func(c *gin.Context) {
		c.JSON(200, dto.MessageResponse{Message: "ok"})
	})
}
