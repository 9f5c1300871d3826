package service

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/novazone/learnhub-api/internal/models"
	"github.com/novazone/learnhub-api/pkg/export"
	"github.com/novazone/learnhub-api/pkg/storage"
)

type exportCourseRepository interface {
	ListByTeacher(ctx context.Context, teacherID string, limit int) ([]models.Course, error)
}

type exportProgressRepository interface {
	ListByCourseIDs(ctx context.Context, courseIDs []string, limit int) ([]models.Progress, error)
}

type fileStorage interface {
	Save(filename string, data []byte) (string, error)
	Open(filename string) (*os.File, error)
	Delete(filename string) error
	CleanupOlderThan(ttl time.Duration) ([]string, error)
}

type csvRenderer interface {
	Render(table export.Table) ([]byte, error)
}

type pdfRenderer interface {
	Render(table export.Table, title string) ([]byte, error)
}

// ExportConfig tunes export behaviour.
type ExportConfig struct {
	APIPrefix string
	ResultTTL time.Duration
}

// ExportResult captures successful generation metadata.
type ExportResult struct {
	RelativePath string
	Token        string
	URL          string
	Format       models.ReportFormat
	ExpiresAt    time.Time
}

// ExportService builds report datasets and persists rendered files.
type ExportService struct {
	courses  exportCourseRepository
	progress exportProgressRepository
	storage  fileStorage
	csv      csvRenderer
	pdf      pdfRenderer
	signer   *storage.SignedURLSigner
	logger   *zap.Logger
	cfg      ExportConfig
}

// NewExportService constructs an ExportService.
func NewExportService(courses exportCourseRepository, progress exportProgressRepository, store fileStorage, signer *storage.SignedURLSigner, cfg ExportConfig, logger *zap.Logger, csv csvRenderer, pdf pdfRenderer) *ExportService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg.ResultTTL <= 0 {
		cfg.ResultTTL = 24 * time.Hour
	}
	if csv == nil {
		csv = export.NewCSVExporter()
	}
	if pdf == nil {
		pdf = export.NewPDFExporter()
	}
	return &ExportService{
		courses:  courses,
		progress: progress,
		storage:  store,
		csv:      csv,
		pdf:      pdf,
		signer:   signer,
		logger:   logger,
		cfg:      cfg,
	}
}

// Generate builds the dataset for a job and stores the rendered export.
func (s *ExportService) Generate(ctx context.Context, job *models.ReportJob) (*ExportResult, error) {
	if job == nil {
		return nil, fmt.Errorf("job nil")
	}

	var (
		table export.Table
		title string
		err   error
	)
	switch job.Type {
	case models.ReportTypeProgress:
		table, title, err = s.buildProgressTable(ctx, job.Params)
	default:
		err = fmt.Errorf("unsupported report type %s", job.Type)
	}
	if err != nil {
		return nil, err
	}

	var payload []byte
	switch job.Params.Format {
	case models.ReportFormatCSV:
		payload, err = s.csv.Render(table)
	case models.ReportFormatPDF:
		payload, err = s.pdf.Render(table, title)
	default:
		err = fmt.Errorf("unsupported format %s", job.Params.Format)
	}
	if err != nil {
		return nil, err
	}

	filename := s.buildFilename(job)
	relPath, err := s.storage.Save(filename, payload)
	if err != nil {
		return nil, err
	}

	token, expiresAt, err := s.signer.Generate(job.ID, relPath)
	if err != nil {
		return nil, err
	}
	prefix := strings.TrimRight(s.cfg.APIPrefix, "/")
	if prefix == "" {
		prefix = "/api"
	}
	signedURL := fmt.Sprintf("%s/reports/download?token=%s", prefix, token)

	return &ExportResult{
		RelativePath: relPath,
		Token:        token,
		URL:          signedURL,
		Format:       job.Params.Format,
		ExpiresAt:    expiresAt,
	}, nil
}

// ParseToken validates download token metadata.
func (s *ExportService) ParseToken(token string, allowExpired bool) (jobID, relPath string, expiresAt time.Time, err error) {
	return s.signer.Parse(token, allowExpired)
}

// Open returns a handle to the stored file.
func (s *ExportService) Open(relPath string) (*os.File, error) {
	return s.storage.Open(relPath)
}

// Delete removes a stored export file.
func (s *ExportService) Delete(relPath string) error {
	return s.storage.Delete(relPath)
}

// Cleanup removes files older than ttl (ResultTTL when ttl <= 0).
func (s *ExportService) Cleanup(ttl time.Duration) ([]string, error) {
	if ttl <= 0 {
		ttl = s.cfg.ResultTTL
	}
	return s.storage.CleanupOlderThan(ttl)
}

func (s *ExportService) buildProgressTable(ctx context.Context, params models.ReportJobParams) (export.Table, string, error) {
	courses, err := s.courses.ListByTeacher(ctx, params.TeacherID, 0)
	if err != nil {
		return export.Table{}, "", err
	}

	courseIDs := make([]string, 0, len(courses))
	titles := make(map[string]string, len(courses))
	for _, course := range courses {
		courseIDs = append(courseIDs, course.ID)
		titles[course.ID] = course.Title
	}

	records, err := s.progress.ListByCourseIDs(ctx, courseIDs, 0)
	if err != nil {
		return export.Table{}, "", err
	}

	rows := make([][]string, 0, len(records))
	for _, rec := range records {
		title := titles[rec.CourseID]
		if title == "" {
			title = rec.CourseTitle
		}
		rows = append(rows, []string{
			rec.StudentID,
			title,
			fmt.Sprintf("%.2f", rec.CompletionPercentage),
			fmt.Sprintf("%.2f", rec.TimeSpentHours),
			rec.LastAccessed.UTC().Format(time.RFC3339),
		})
	}

	table := export.Table{
		Headers: []string{"Student ID", "Course", "Completion (%)", "Time Spent (h)", "Last Accessed"},
		Rows:    rows,
	}
	return table, "Student Progress Report", nil
}

func (s *ExportService) buildFilename(job *models.ReportJob) string {
	timestamp := time.Now().UTC().Format("20060102_150405")
	return fmt.Sprintf("%s_%s_%s.%s", strings.ToLower(string(job.Type)), sanitizeFilename(job.Params.TeacherID), timestamp, job.Params.Format)
}

func sanitizeFilename(raw string) string {
	if raw == "" {
		return "na"
	}
	replacer := strings.NewReplacer(" ", "_", "/", "-", "\\", "-", ":", "-", "..", ".")
	result := replacer.Replace(raw)
	if len(result) > 100 {
		return result[:100]
	}
	return result
}
