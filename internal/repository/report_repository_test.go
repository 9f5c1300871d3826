package repository

import (
	"context"
	"regexp"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/novazone/learnhub-api/internal/models"
)

func TestReportJobCreateDefaults(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewReportRepository(db)

	mock.ExpectExec("INSERT INTO report_jobs").WillReturnResult(sqlmock.NewResult(1, 1))

	job := &models.ReportJob{
		Type:      models.ReportTypeProgress,
		Params:    models.ReportJobParams{TeacherID: "teacher_1", Format: models.ReportFormatCSV},
		CreatedBy: "teacher_1",
	}
	err := repo.Create(context.Background(), job)
	require.NoError(t, err)
	assert.NotEmpty(t, job.ID)
	assert.Equal(t, models.ReportStatusQueued, job.Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReportJobUpdatePartial(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewReportRepository(db)

	status := models.ReportStatusProcessing
	progress := 10
	mock.ExpectExec(regexp.QuoteMeta("UPDATE report_jobs SET status = $1, progress = $2 WHERE id = $3")).
		WithArgs(string(status), progress, "job-1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Update(context.Background(), "job-1", UpdateReportJobParams{Status: &status, Progress: &progress})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReportJobUpdateNoFields(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewReportRepository(db)

	err := repo.Update(context.Background(), "job-1", UpdateReportJobParams{})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReportJobListQueued(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewReportRepository(db)

	rows := sqlmock.NewRows([]string{"id", "type", "params", "status", "progress", "result_url", "created_by", "created_at", "finished_at", "error_message"}).
		AddRow("job-1", string(models.ReportTypeProgress), []byte(`{"teacher_id":"teacher_1","format":"csv"}`), string(models.ReportStatusQueued), 0, nil, "teacher_1", time.Now(), nil, nil)
	mock.ExpectQuery("FROM report_jobs WHERE status = 'QUEUED'").
		WithArgs(50).
		WillReturnRows(rows)

	jobs, err := repo.ListQueued(context.Background(), 50)
	require.NoError(t, err)
	require.Len(t, jobs, 1)
	assert.Equal(t, models.ReportFormatCSV, jobs[0].Params.Format)
	assert.NoError(t, mock.ExpectationsWereMet())
}
