package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/novazone/learnhub-api/internal/models"
)

type seedCourseRecorder struct {
	deletes int
	created []models.Course
	ops     *[]string
}

func (r *seedCourseRecorder) Create(ctx context.Context, course *models.Course) error {
	r.created = append(r.created, *course)
	*r.ops = append(*r.ops, "course:create")
	return nil
}

func (r *seedCourseRecorder) DeleteAll(ctx context.Context) error {
	r.deletes++
	*r.ops = append(*r.ops, "course:delete")
	return nil
}

type seedTeacherRecorder struct {
	deletes int
	created []models.TeacherProfile
	ops     *[]string
}

func (r *seedTeacherRecorder) Create(ctx context.Context, profile *models.TeacherProfile) error {
	r.created = append(r.created, *profile)
	*r.ops = append(*r.ops, "teacher:create")
	return nil
}

func (r *seedTeacherRecorder) DeleteAll(ctx context.Context) error {
	r.deletes++
	*r.ops = append(*r.ops, "teacher:delete")
	return nil
}

type seedPostRecorder struct {
	deletes int
	created []models.CommunityPost
	ops     *[]string
}

func (r *seedPostRecorder) Create(ctx context.Context, post *models.CommunityPost) error {
	r.created = append(r.created, *post)
	*r.ops = append(*r.ops, "post:create")
	return nil
}

func (r *seedPostRecorder) DeleteAll(ctx context.Context) error {
	r.deletes++
	*r.ops = append(*r.ops, "post:delete")
	return nil
}

func TestSeedLoadsSampleDataset(t *testing.T) {
	var ops []string
	courses := &seedCourseRecorder{ops: &ops}
	teachers := &seedTeacherRecorder{ops: &ops}
	posts := &seedPostRecorder{ops: &ops}
	svc := NewSeedService(courses, teachers, posts, nil)

	require.NoError(t, svc.Seed(context.Background()))

	assert.Equal(t, 1, courses.deletes)
	assert.Equal(t, 1, teachers.deletes)
	assert.Equal(t, 1, posts.deletes)
	require.Len(t, courses.created, 3)
	require.Len(t, teachers.created, 2)
	require.Len(t, posts.created, 2)

	assert.Equal(t, "course_1", courses.created[0].ID)
	assert.Equal(t, "Introduction to Python Programming", courses.created[0].Title)
	assert.Equal(t, "Dr. Sarah Chen", teachers.created[0].FullName)
	assert.Equal(t, models.CategoryQuestion, posts.created[0].Category)
	assert.Equal(t, 12, posts.created[1].Likes)
}

func TestSeedDeletesBeforeCreating(t *testing.T) {
	var ops []string
	svc := NewSeedService(
		&seedCourseRecorder{ops: &ops},
		&seedTeacherRecorder{ops: &ops},
		&seedPostRecorder{ops: &ops},
		nil,
	)

	require.NoError(t, svc.Seed(context.Background()))

	// Each collection is cleared before its fixtures are inserted.
	require.NotEmpty(t, ops)
	assert.Equal(t, "course:delete", ops[0])
	for i, op := range ops {
		switch op {
		case "teacher:create":
			assert.Contains(t, ops[:i], "teacher:delete")
		case "post:create":
			assert.Contains(t, ops[:i], "post:delete")
		}
	}
}
