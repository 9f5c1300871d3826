package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/novazone/learnhub-api/internal/models"
	appErrors "github.com/novazone/learnhub-api/pkg/errors"
	"github.com/novazone/learnhub-api/pkg/response"
)

type quizService interface {
	GetForCourse(ctx context.Context, courseID string) (*models.Quiz, error)
	Submit(ctx context.Context, studentID string, req models.SubmitQuizRequest) (*models.QuizResult, error)
}

// QuizHandler wires the quiz engine to HTTP endpoints.
type QuizHandler struct {
	service quizService
}

// NewQuizHandler constructs the handler.
func NewQuizHandler(service quizService) *QuizHandler {
	return &QuizHandler{service: service}
}

// GetForCourse godoc
// @Summary Course quiz
// @Description Returns the course quiz, generating it on first access
// @Tags Quiz
// @Produce json
// @Param courseId path string true "Course ID"
// @Success 200 {object} response.Envelope
// @Router /quiz/{courseId} [get]
func (h *QuizHandler) GetForCourse(c *gin.Context) {
	quiz, err := h.service.GetForCourse(c.Request.Context(), c.Param("courseId"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, quiz)
}

// Submit godoc
// @Summary Submit quiz answers
// @Tags Quiz
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param payload body models.SubmitQuizRequest true "Submission payload"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /quiz/submit [post]
func (h *QuizHandler) Submit(c *gin.Context) {
	claims := claimsFromContext(c)
	if claims == nil {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}

	var req models.SubmitQuizRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid submission payload"))
		return
	}

	result, err := h.service.Submit(c.Request.Context(), claims.UserID, req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, result)
}
