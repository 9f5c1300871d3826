package service

import (
	"context"
	"database/sql"
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/novazone/learnhub-api/internal/models"
	appErrors "github.com/novazone/learnhub-api/pkg/errors"
)

type mockFileRepo struct {
	files map[string]*models.StoredFile
}

func (m *mockFileRepo) Create(ctx context.Context, file *models.StoredFile) error {
	if m.files == nil {
		m.files = make(map[string]*models.StoredFile)
	}
	m.files[file.ID] = file
	return nil
}

func (m *mockFileRepo) FindByID(ctx context.Context, id string) (*models.StoredFile, error) {
	if f, ok := m.files[id]; ok {
		return f, nil
	}
	return nil, sql.ErrNoRows
}

func TestUploadEncodesContent(t *testing.T) {
	repo := &mockFileRepo{}
	svc := NewFileService(repo, 1024, nil)

	resp, err := svc.Upload(context.Background(), "notes.txt", "text/plain", []byte("hello world"))
	require.NoError(t, err)
	assert.NotEmpty(t, resp.FileID)
	assert.Equal(t, "notes.txt", resp.Filename)
	assert.Equal(t, "File uploaded successfully", resp.Message)

	stored := repo.files[resp.FileID]
	require.NotNil(t, stored)
	assert.Equal(t, base64.StdEncoding.EncodeToString([]byte("hello world")), stored.Content)
	assert.Equal(t, "text/plain", stored.ContentType)
}

func TestUploadDefaultsContentType(t *testing.T) {
	repo := &mockFileRepo{}
	svc := NewFileService(repo, 1024, nil)

	resp, err := svc.Upload(context.Background(), "blob.bin", "", []byte{0x01, 0x02})
	require.NoError(t, err)
	assert.Equal(t, "application/octet-stream", repo.files[resp.FileID].ContentType)
}

func TestUploadRejectsOversizedFile(t *testing.T) {
	svc := NewFileService(&mockFileRepo{}, 4, nil)

	_, err := svc.Upload(context.Background(), "big.bin", "", []byte("too large"))
	require.Error(t, err)
	appErr := appErrors.FromError(err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErr.Code)
	assert.Contains(t, appErr.Message, "maximum size")
}

func TestGetRoundTrip(t *testing.T) {
	repo := &mockFileRepo{}
	svc := NewFileService(repo, 0, nil)

	resp, err := svc.Upload(context.Background(), "notes.txt", "text/plain", []byte("hello"))
	require.NoError(t, err)

	file, err := svc.Get(context.Background(), resp.FileID)
	require.NoError(t, err)
	assert.Equal(t, "notes.txt", file.Filename)
	decoded, err := base64.StdEncoding.DecodeString(file.Content)
	require.NoError(t, err)
	assert.Equal(t, "hello", string(decoded))
}

func TestGetUnknownFile(t *testing.T) {
	svc := NewFileService(&mockFileRepo{}, 0, nil)

	_, err := svc.Get(context.Background(), "missing")
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrNotFound.Code, appErrors.FromError(err).Code)
}
