package handler

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/novazone/learnhub-api/internal/models"
	appErrors "github.com/novazone/learnhub-api/pkg/errors"
	"github.com/novazone/learnhub-api/pkg/response"
)

type progressService interface {
	Overview(ctx context.Context, studentID string) (*models.ProgressOverview, error)
	Update(ctx context.Context, id string, completion, timeSpent float64) (*models.Progress, error)
}

// ProgressHandler wires progress tracking to HTTP endpoints.
type ProgressHandler struct {
	service progressService
}

// NewProgressHandler constructs the handler.
func NewProgressHandler(service progressService) *ProgressHandler {
	return &ProgressHandler{service: service}
}

// Overview godoc
// @Summary Student progress overview
// @Tags Progress
// @Produce json
// @Param id path string true "Student ID"
// @Success 200 {object} response.Envelope
// @Router /progress/{id} [get]
func (h *ProgressHandler) Overview(c *gin.Context) {
	overview, err := h.service.Overview(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, overview)
}

// Update godoc
// @Summary Update a progress record
// @Tags Progress
// @Produce json
// @Param id path string true "Progress record ID"
// @Param completion_percentage query number true "Completion percentage"
// @Param time_spent_hours query number true "Time spent in hours"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /progress/{id} [put]
func (h *ProgressHandler) Update(c *gin.Context) {
	completion, err := strconv.ParseFloat(c.Query("completion_percentage"), 64)
	if err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "completion_percentage must be a number"))
		return
	}
	timeSpent, err := strconv.ParseFloat(c.Query("time_spent_hours"), 64)
	if err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "time_spent_hours must be a number"))
		return
	}

	record, err := h.service.Update(c.Request.Context(), c.Param("id"), completion, timeSpent)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, record)
}
