package service

import (
	"context"
	"database/sql"
	"testing"

	"github.com/lib/pq"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/novazone/learnhub-api/internal/models"
	appErrors "github.com/novazone/learnhub-api/pkg/errors"
)

type mockTeacherRepo struct {
	profiles map[string]*models.TeacherProfile
	updates  []models.UpdateTeacherProfileRequest
}

func (m *mockTeacherRepo) List(ctx context.Context, subject string, limit int) ([]models.TeacherProfile, error) {
	var out []models.TeacherProfile
	for _, p := range m.profiles {
		if subject != "" {
			found := false
			for _, s := range p.Subjects {
				if s == subject {
					found = true
					break
				}
			}
			if !found {
				continue
			}
		}
		out = append(out, *p)
	}
	return out, nil
}

func (m *mockTeacherRepo) FindByUserID(ctx context.Context, userID string) (*models.TeacherProfile, error) {
	for _, p := range m.profiles {
		if p.UserID == userID {
			copied := *p
			return &copied, nil
		}
	}
	return nil, sql.ErrNoRows
}

func (m *mockTeacherRepo) UpdateByUserID(ctx context.Context, userID string, req models.UpdateTeacherProfileRequest) error {
	m.updates = append(m.updates, req)
	for _, p := range m.profiles {
		if p.UserID != userID {
			continue
		}
		if req.Subjects != nil {
			p.Subjects = req.Subjects
		}
		if req.ExperienceYears != nil {
			p.ExperienceYears = *req.ExperienceYears
		}
		if req.Bio != nil {
			p.Bio = req.Bio
		}
		if req.HourlyRate != nil {
			p.HourlyRate = req.HourlyRate
		}
	}
	return nil
}

func TestTeacherListFiltersBySubject(t *testing.T) {
	repo := &mockTeacherRepo{profiles: map[string]*models.TeacherProfile{
		"t1": {ID: "t1", UserID: "t1", Subjects: []string{"Programming", "Data Science"}},
		"t2": {ID: "t2", UserID: "t2", Subjects: []string{"Mathematics"}},
	}}
	svc := NewTeacherService(repo, NewInsightService(), nil, nil)

	profiles, err := svc.List(context.Background(), "Mathematics")
	require.NoError(t, err)
	require.Len(t, profiles, 1)
	assert.Equal(t, "t2", profiles[0].ID)
}

func TestRecommendationsDelegateToInsights(t *testing.T) {
	svc := NewTeacherService(&mockTeacherRepo{}, NewInsightService(), nil, nil)

	recs := svc.Recommendations(context.Background(), "Physics", "student-1")
	require.Len(t, recs, 2)
	assert.Equal(t, "Expert in Physics with 10+ years experience", recs[0].Reason)
}

func TestUpdateProfileAppliesPartialUpdate(t *testing.T) {
	years := 8
	repo := &mockTeacherRepo{profiles: map[string]*models.TeacherProfile{
		"t1": {ID: "t1", UserID: "user-1", FullName: "Dr. Sarah Chen", Subjects: []string{"Programming"}},
	}}
	svc := NewTeacherService(repo, NewInsightService(), nil, nil)

	profile, err := svc.UpdateProfile(context.Background(), "user-1", models.UpdateTeacherProfileRequest{
		Subjects:        []string{"Programming", "Web Development"},
		ExperienceYears: &years,
	})
	require.NoError(t, err)
	assert.Equal(t, pq.StringArray{"Programming", "Web Development"}, profile.Subjects)
	assert.Equal(t, 8, profile.ExperienceYears)
	assert.Equal(t, "Dr. Sarah Chen", profile.FullName)
}

func TestUpdateProfileLeavesCourseSnapshotsAlone(t *testing.T) {
	// teacher_name on a course is captured at creation and never re-synced.
	courses := &mockCourseRepo{courses: map[string]*models.Course{
		"course_1": {ID: "course_1", TeacherID: "user-1", TeacherName: "Dr. Sarah Chen"},
	}}
	repo := &mockTeacherRepo{profiles: map[string]*models.TeacherProfile{
		"t1": {ID: "t1", UserID: "user-1", FullName: "Dr. Sarah Chen"},
	}}
	svc := NewTeacherService(repo, NewInsightService(), nil, nil)

	bio := "Now teaching full time"
	_, err := svc.UpdateProfile(context.Background(), "user-1", models.UpdateTeacherProfileRequest{
		Subjects: []string{"Go"},
		Bio:      &bio,
	})
	require.NoError(t, err)
	assert.Equal(t, "Dr. Sarah Chen", courses.courses["course_1"].TeacherName)
}

func TestUpdateProfileRejectsNegativeRate(t *testing.T) {
	rate := -10.0
	svc := NewTeacherService(&mockTeacherRepo{}, NewInsightService(), nil, nil)

	_, err := svc.UpdateProfile(context.Background(), "user-1", models.UpdateTeacherProfileRequest{HourlyRate: &rate})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)
}

func TestUpdateProfileUnknownUser(t *testing.T) {
	svc := NewTeacherService(&mockTeacherRepo{}, NewInsightService(), nil, nil)

	_, err := svc.UpdateProfile(context.Background(), "ghost", models.UpdateTeacherProfileRequest{})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrNotFound.Code, appErrors.FromError(err).Code)
}
