package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLearningPathShape(t *testing.T) {
	svc := NewInsightService()

	path := svc.LearningPath("student-1")
	assert.Equal(t, "Intermediate", path.CurrentLevel)
	require.Len(t, path.RecommendedCourses, 2)
	assert.Equal(t, "high", path.RecommendedCourses[0].Priority)
	assert.Len(t, path.LearningGoals, 3)
	assert.Equal(t, "6 weeks", path.EstimatedCompletion)
}

func TestRecommendTeachersInterpolatesSubject(t *testing.T) {
	svc := NewInsightService()

	recs := svc.RecommendTeachers("Mathematics", "student-1")
	require.Len(t, recs, 2)
	assert.Equal(t, 95, recs[0].MatchScore)
	assert.Equal(t, "Expert in Mathematics with 10+ years experience", recs[0].Reason)
	assert.Contains(t, recs[0].Specialties, "Mathematics")
	assert.Equal(t, 88, recs[1].MatchScore)
}

func TestGenerateQuizQuestionsMintsFreshIDs(t *testing.T) {
	svc := NewInsightService()

	first := svc.GenerateQuizQuestions("course_1", "programming")
	second := svc.GenerateQuizQuestions("course_1", "programming")
	require.Len(t, first, 2)
	require.Len(t, second, 2)
	assert.NotEqual(t, first[0].ID, second[0].ID)
	assert.Equal(t, 1, first[0].CorrectAnswer)
	assert.Equal(t, 2, first[1].CorrectAnswer)
	assert.Len(t, first[0].Options, 4)
	require.NotNil(t, first[0].Explanation)
}

func TestAnalyzeProgressIsDeterministic(t *testing.T) {
	svc := NewInsightService()

	analysis := svc.AnalyzeProgress("student-1")
	assert.Equal(t, "Good", analysis.OverallPerformance)
	assert.Len(t, analysis.Strengths, 2)
	assert.Len(t, analysis.Recommendations, 3)
	assert.Equal(t, analysis, svc.AnalyzeProgress("student-2"))
}
