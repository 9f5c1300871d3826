package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/novazone/learnhub-api/pkg/response"
)

type seedService interface {
	Seed(ctx context.Context) error
}

// SeedHandler exposes the destructive sample data loader.
type SeedHandler struct {
	service seedService
}

// NewSeedHandler constructs the handler.
func NewSeedHandler(service seedService) *SeedHandler {
	return &SeedHandler{service: service}
}

// Seed godoc
// @Summary Reset and load sample data
// @Tags Seed
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /seed-data [post]
func (h *SeedHandler) Seed(c *gin.Context) {
	if err := h.service.Seed(c.Request.Context()); err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, gin.H{"message": "Database seeded with sample data successfully"})
}
