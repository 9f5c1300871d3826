package handler

import (
	"context"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/novazone/learnhub-api/internal/models"
	appErrors "github.com/novazone/learnhub-api/pkg/errors"
)

type fakeProgressService struct {
	overview    *models.ProgressOverview
	overviewFor string
	updated     *models.Progress
	updateID    string
	completion  float64
	timeSpent   float64
}

func (f *fakeProgressService) Overview(ctx context.Context, studentID string) (*models.ProgressOverview, error) {
	f.overviewFor = studentID
	return f.overview, nil
}

func (f *fakeProgressService) Update(ctx context.Context, id string, completion, timeSpent float64) (*models.Progress, error) {
	f.updateID = id
	f.completion = completion
	f.timeSpent = timeSpent
	return f.updated, nil
}

func TestProgressOverviewUsesPathParam(t *testing.T) {
	svc := &fakeProgressService{overview: &models.ProgressOverview{}}
	h := NewProgressHandler(svc)

	c, w := newTestContext(t, http.MethodGet, "/api/progress/student-1", nil)
	c.Params = gin.Params{{Key: "id", Value: "student-1"}}
	h.Overview(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "student-1", svc.overviewFor)
}

func TestProgressUpdateParsesQueryValues(t *testing.T) {
	svc := &fakeProgressService{updated: &models.Progress{ID: "p1"}}
	h := NewProgressHandler(svc)

	c, w := newTestContext(t, http.MethodPut, "/api/progress/p1?completion_percentage=62.5&time_spent_hours=4.25", nil)
	c.Params = gin.Params{{Key: "id", Value: "p1"}}
	h.Update(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "p1", svc.updateID)
	assert.Equal(t, 62.5, svc.completion)
	assert.Equal(t, 4.25, svc.timeSpent)
}

func TestProgressUpdateRejectsMissingCompletion(t *testing.T) {
	h := NewProgressHandler(&fakeProgressService{})

	c, w := newTestContext(t, http.MethodPut, "/api/progress/p1?time_spent_hours=1", nil)
	c.Params = gin.Params{{Key: "id", Value: "p1"}}
	h.Update(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	env := decodeEnvelope(t, w)
	assert.Equal(t, appErrors.ErrValidation.Code, env.Error.Code)
}

func TestProgressUpdateRejectsNonNumericHours(t *testing.T) {
	h := NewProgressHandler(&fakeProgressService{})

	c, w := newTestContext(t, http.MethodPut, "/api/progress/p1?completion_percentage=10&time_spent_hours=lots", nil)
	c.Params = gin.Params{{Key: "id", Value: "p1"}}
	h.Update(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
