package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/novazone/learnhub-api/internal/models"
	appErrors "github.com/novazone/learnhub-api/pkg/errors"
)

type mockPostRepo struct {
	posts []models.CommunityPost
}

func (m *mockPostRepo) List(ctx context.Context, category string, limit int) ([]models.CommunityPost, error) {
	var out []models.CommunityPost
	for _, p := range m.posts {
		if category != "" && p.Category != category {
			continue
		}
		out = append(out, p)
		if len(out) == limit {
			break
		}
	}
	return out, nil
}

func (m *mockPostRepo) Create(ctx context.Context, post *models.CommunityPost) error {
	m.posts = append(m.posts, *post)
	return nil
}

func TestPostListFiltersByCategory(t *testing.T) {
	repo := &mockPostRepo{posts: []models.CommunityPost{
		{ID: "post_1", Category: models.CategoryQuestion},
		{ID: "post_2", Category: models.CategoryAnnouncement},
	}}
	svc := NewCommunityService(repo, nil, nil)

	posts, err := svc.List(context.Background(), models.CategoryQuestion)
	require.NoError(t, err)
	require.Len(t, posts, 1)
	assert.Equal(t, "post_1", posts[0].ID)
}

func TestPostCreateSnapshotsAuthor(t *testing.T) {
	repo := &mockPostRepo{}
	svc := NewCommunityService(repo, nil, nil)

	post, err := svc.Create(context.Background(), "student-1", "Alex Johnson", models.CreatePostRequest{
		Title:    "Stuck on recursion",
		Content:  "How do I reason about base cases?",
		Category: models.CategoryQuestion,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, post.ID)
	assert.Equal(t, "student-1", post.AuthorID)
	assert.Equal(t, "Alex Johnson", post.AuthorName)
	assert.Equal(t, 0, post.Likes)
	assert.NotNil(t, post.Replies)
	assert.Empty(t, post.Replies)
}

func TestPostCreateRejectsUnknownCategory(t *testing.T) {
	svc := NewCommunityService(&mockPostRepo{}, nil, nil)

	_, err := svc.Create(context.Background(), "student-1", "Alex", models.CreatePostRequest{
		Title: "T", Content: "C", Category: "random",
	})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)
}
