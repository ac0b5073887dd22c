package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/kaan/campushub/internal/app/models/dto"
	"github.com/kaan/campushub/internal/pkg/filestorage"
)

// FileController handles attachment uploads for posts and avatars
type FileController struct {
	storage *filestorage.LocalStorage
	logger  zerolog.Logger
}

// NewFileController creates a new FileController
func NewFileController(storage *filestorage.LocalStorage, logger zerolog.Logger) *FileController {
	return &FileController{
		storage: storage,
		logger:  logger,
	}
}

// Upload stores a multipart file and returns its public URL
// @Summary Upload a file
// @Tags files
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "File to upload"
// @Success 201 {object} dto.FileUploadResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Router /files [post]
func (c *FileController) Upload(ctx *gin.Context) {
	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("File is required"))
		return
	}

	url, err := c.storage.SaveFile(fileHeader)
	if err != nil {
		c.logger.Error().Err(err).Str("filename", fileHeader.Filename).Msg("Failed to store upload")
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse("Internal server error"))
		return
	}

	ctx.JSON(http.StatusCreated, dto.FileUploadResponse{URL: url})
}
