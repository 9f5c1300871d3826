package models

// The insight types below describe the canned payloads returned by the mock
// generators. They are placeholders for a future inference backend; the
// shapes are the contract, the content is fixed.

// CourseRecommendation is one entry of a learning path.
type CourseRecommendation struct {
	CourseID string `json:"course_id"`
	Title    string `json:"title"`
	Priority string `json:"priority"`
	Reason   string `json:"reason"`
}

// LearningPath is a suggested study plan for a student.
type LearningPath struct {
	CurrentLevel        string                 `json:"current_level"`
	RecommendedCourses  []CourseRecommendation `json:"recommended_courses"`
	LearningGoals       []string               `json:"learning_goals"`
	EstimatedCompletion string                 `json:"estimated_completion"`
}

// TeacherRecommendation pairs a teacher with a match score for a subject.
type TeacherRecommendation struct {
	TeacherID   string   `json:"teacher_id"`
	Name        string   `json:"name"`
	MatchScore  int      `json:"match_score"`
	Reason      string   `json:"reason"`
	Specialties []string `json:"specialties"`
	Rating      float64  `json:"rating"`
}

// ProgressAnalysis is a canned performance review for a student.
type ProgressAnalysis struct {
	OverallPerformance  string   `json:"overall_performance"`
	Strengths           []string `json:"strengths"`
	AreasForImprovement []string `json:"areas_for_improvement"`
	Recommendations     []string `json:"recommendations"`
	NextMilestone       string   `json:"next_milestone"`
	MotivationMessage   string   `json:"motivation_message"`
}
