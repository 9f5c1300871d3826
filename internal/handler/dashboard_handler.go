package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/novazone/learnhub-api/internal/models"
	"github.com/novazone/learnhub-api/pkg/response"
)

type dashboardService interface {
	StudentDashboard(ctx context.Context, studentID string) (*models.StudentDashboard, error)
	TeacherDashboard(ctx context.Context, teacherID string) (*models.TeacherDashboard, error)
}

// DashboardHandler wires the aggregate home views to HTTP endpoints.
type DashboardHandler struct {
	service dashboardService
}

// NewDashboardHandler constructs the handler.
func NewDashboardHandler(service dashboardService) *DashboardHandler {
	return &DashboardHandler{service: service}
}

// Student godoc
// @Summary Student dashboard
// @Tags Dashboard
// @Produce json
// @Param id path string true "Student ID"
// @Success 200 {object} response.Envelope
// @Router /dashboard/student/{id} [get]
func (h *DashboardHandler) Student(c *gin.Context) {
	dashboard, err := h.service.StudentDashboard(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, dashboard)
}

// Teacher godoc
// @Summary Teacher dashboard
// @Tags Dashboard
// @Produce json
// @Param id path string true "Teacher ID"
// @Success 200 {object} response.Envelope
// @Router /dashboard/teacher/{id} [get]
func (h *DashboardHandler) Teacher(c *gin.Context) {
	dashboard, err := h.service.TeacherDashboard(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, dashboard)
}
