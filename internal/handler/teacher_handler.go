package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/novazone/learnhub-api/internal/models"
	appErrors "github.com/novazone/learnhub-api/pkg/errors"
	"github.com/novazone/learnhub-api/pkg/response"
)

type teacherService interface {
	List(ctx context.Context, subject string) ([]models.TeacherProfile, error)
	Recommendations(ctx context.Context, subject, studentID string) []models.TeacherRecommendation
	UpdateProfile(ctx context.Context, userID string, req models.UpdateTeacherProfileRequest) (*models.TeacherProfile, error)
}

// TeacherHandler wires the teacher directory to HTTP endpoints.
type TeacherHandler struct {
	service teacherService
}

// NewTeacherHandler constructs the handler.
func NewTeacherHandler(service teacherService) *TeacherHandler {
	return &TeacherHandler{service: service}
}

// List godoc
// @Summary List teachers
// @Tags Teachers
// @Produce json
// @Param subject query string false "Subject filter"
// @Success 200 {object} response.Envelope
// @Router /teachers [get]
func (h *TeacherHandler) List(c *gin.Context) {
	teachers, err := h.service.List(c.Request.Context(), c.Query("subject"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, teachers)
}

// Recommendations godoc
// @Summary Teacher recommendations for a subject
// @Tags Teachers
// @Produce json
// @Security BearerAuth
// @Param subject path string true "Subject"
// @Success 200 {object} response.Envelope
// @Router /teachers/recommendations/{subject} [get]
func (h *TeacherHandler) Recommendations(c *gin.Context) {
	claims := claimsFromContext(c)
	if claims == nil {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}

	recs := h.service.Recommendations(c.Request.Context(), c.Param("subject"), claims.UserID)
	response.JSON(c, http.StatusOK, recs)
}

// UpdateProfile godoc
// @Summary Update teaching profile
// @Tags Teachers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param payload body models.UpdateTeacherProfileRequest true "Profile payload"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /teachers/profile [put]
func (h *TeacherHandler) UpdateProfile(c *gin.Context) {
	claims := claimsFromContext(c)
	if claims == nil {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}

	var req models.UpdateTeacherProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid profile payload"))
		return
	}

	profile, err := h.service.UpdateProfile(c.Request.Context(), claims.UserID, req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, profile)
}
