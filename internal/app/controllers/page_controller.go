package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// PageController serves the page routes behind the edge gate. The pages
// themselves are placeholders; the client application renders the real
// UI from the /api endpoints.
type PageController struct{}

// NewPageController creates a new PageController
func NewPageController() *PageController {
	return &PageController{}
}

// Home serves the home feed page
func (c *PageController) Home(ctx *gin.Context) {
	ctx.String(http.StatusOK, "CampusHub")
}

// Login serves the login page
func (c *PageController) Login(ctx *gin.Context) {
	ctx.String(http.StatusOK, "Login")
}

// Register serves the registration page
func (c *PageController) Register(ctx *gin.Context) {
	ctx.String(http.StatusOK, "Register")
}
