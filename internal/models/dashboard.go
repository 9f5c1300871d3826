package models

// StudentDashboard is the fan-out aggregate for a student's home view.
type StudentDashboard struct {
	LearningPath    LearningPath     `json:"learning_path"`
	EnrolledCourses []Course         `json:"enrolled_courses"`
	Progress        []Progress       `json:"progress"`
	RecentPosts     []CommunityPost  `json:"recent_posts"`
	AIInsights      ProgressAnalysis `json:"ai_insights"`
}

// TeacherAnalytics summarizes a teacher's reach. average_completion and
// total_hours_taught are placeholder constants, not derived from data.
type TeacherAnalytics struct {
	TotalStudents     int     `json:"total_students"`
	TotalCourses      int     `json:"total_courses"`
	AverageCompletion float64 `json:"average_completion"`
	TotalHoursTaught  float64 `json:"total_hours_taught"`
}

// TeacherDashboard aggregates a teacher's courses with student progress.
type TeacherDashboard struct {
	Courses         []Course         `json:"courses"`
	StudentProgress []Progress       `json:"student_progress"`
	Analytics       TeacherAnalytics `json:"analytics"`
}

// ProgressOverview is the response of the progress view endpoint.
type ProgressOverview struct {
	Courses    []Progress       `json:"courses"`
	Stats      ProgressStats    `json:"stats"`
	AIAnalysis ProgressAnalysis `json:"ai_analysis"`
}
