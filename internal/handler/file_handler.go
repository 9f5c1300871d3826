package handler

import (
	"context"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/novazone/learnhub-api/internal/models"
	appErrors "github.com/novazone/learnhub-api/pkg/errors"
	"github.com/novazone/learnhub-api/pkg/response"
)

type fileService interface {
	Upload(ctx context.Context, filename, contentType string, content []byte) (*models.FileUploadResponse, error)
	Get(ctx context.Context, id string) (*models.FileDownloadResponse, error)
}

// FileHandler wires blob storage to HTTP endpoints.
type FileHandler struct {
	service fileService
}

// NewFileHandler constructs the handler.
func NewFileHandler(service fileService) *FileHandler {
	return &FileHandler{service: service}
}

// Upload godoc
// @Summary Upload a file
// @Tags Files
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "File to upload"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /upload [post]
func (h *FileHandler) Upload(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "file field is required"))
		return
	}

	src, err := fileHeader.Open()
	if err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to open upload"))
		return
	}
	defer src.Close()

	content, err := io.ReadAll(src)
	if err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to read upload"))
		return
	}

	res, err := h.service.Upload(c.Request.Context(), fileHeader.Filename, fileHeader.Header.Get("Content-Type"), content)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, res)
}

// Get godoc
// @Summary Download a stored file
// @Tags Files
// @Produce json
// @Param id path string true "File ID"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /files/{id} [get]
func (h *FileHandler) Get(c *gin.Context) {
	file, err := h.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, file)
}
