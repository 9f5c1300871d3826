package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/novazone/learnhub-api/internal/models"
	appErrors "github.com/novazone/learnhub-api/pkg/errors"
	"github.com/novazone/learnhub-api/pkg/response"
)

type communityService interface {
	List(ctx context.Context, category string) ([]models.CommunityPost, error)
	Create(ctx context.Context, authorID, authorName string, req models.CreatePostRequest) (*models.CommunityPost, error)
}

// CommunityHandler wires the discussion board to HTTP endpoints.
type CommunityHandler struct {
	service communityService
}

// NewCommunityHandler constructs the handler.
func NewCommunityHandler(service communityService) *CommunityHandler {
	return &CommunityHandler{service: service}
}

// List godoc
// @Summary List community posts
// @Tags Community
// @Produce json
// @Param category query string false "Category filter"
// @Success 200 {object} response.Envelope
// @Router /community/posts [get]
func (h *CommunityHandler) List(c *gin.Context) {
	posts, err := h.service.List(c.Request.Context(), c.Query("category"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, posts)
}

// Create godoc
// @Summary Create community post
// @Tags Community
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param payload body models.CreatePostRequest true "Post payload"
// @Success 200 {object} response.Envelope
// @Router /community/posts [post]
func (h *CommunityHandler) Create(c *gin.Context) {
	claims := claimsFromContext(c)
	if claims == nil {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}

	var req models.CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid post payload"))
		return
	}

	post, err := h.service.Create(c.Request.Context(), claims.UserID, claims.FullName, req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, post)
}
