package service

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/novazone/learnhub-api/internal/models"
)

// InsightService produces canned AI-style recommendations. Each method is a
// seam for a future inference backend: pure, deterministic given its input,
// and never failing. Nothing here touches the persistence layer.
type InsightService struct{}

// NewInsightService constructs the generator.
func NewInsightService() *InsightService {
	return &InsightService{}
}

// LearningPath returns a fixed study plan; studentID is accepted for the
// future personalized variant and currently ignored.
func (s *InsightService) LearningPath(studentID string) models.LearningPath {
	return models.LearningPath{
		CurrentLevel: "Intermediate",
		RecommendedCourses: []models.CourseRecommendation{
			{
				CourseID: "course_1",
				Title:    "Advanced Python Programming",
				Priority: "high",
				Reason:   "Based on your progress in basic Python, this is the next logical step",
			},
			{
				CourseID: "course_2",
				Title:    "Data Structures & Algorithms",
				Priority: "medium",
				Reason:   "Will strengthen your programming foundation",
			},
		},
		LearningGoals: []string{
			"Master object-oriented programming",
			"Understand algorithm complexity",
			"Build real-world projects",
		},
		EstimatedCompletion: "6 weeks",
	}
}

// RecommendTeachers returns fixed matches with the subject interpolated into
// the reasoning.
func (s *InsightService) RecommendTeachers(subject, studentID string) []models.TeacherRecommendation {
	return []models.TeacherRecommendation{
		{
			TeacherID:   "teacher_1",
			Name:        "Dr. Sarah Chen",
			MatchScore:  95,
			Reason:      fmt.Sprintf("Expert in %s with 10+ years experience", subject),
			Specialties: []string{subject, "Project-based learning"},
			Rating:      4.9,
		},
		{
			TeacherID:   "teacher_2",
			Name:        "Prof. Michael Rodriguez",
			MatchScore:  88,
			Reason:      "Excellent track record with beginner to intermediate students",
			Specialties: []string{subject, "Hands-on approach"},
			Rating:      4.7,
		},
	}
}

// GenerateQuizQuestions returns the fixed seed question set used for lazy
// quiz creation. Fresh question ids are minted per call.
func (s *InsightService) GenerateQuizQuestions(courseID, topic string) []models.QuizQuestion {
	oopExplanation := "OOP helps organize code into reusable, maintainable objects."
	encapsulationExplanation := "Encapsulation hides the internal state and implementation details."
	return []models.QuizQuestion{
		{
			ID:       uuid.NewString(),
			Question: "What is the main purpose of object-oriented programming?",
			Options: []string{
				"To make code run faster",
				"To organize code into reusable objects",
				"To use less memory",
				"To write shorter programs",
			},
			CorrectAnswer: 1,
			Explanation:   &oopExplanation,
		},
		{
			ID:       uuid.NewString(),
			Question: "Which principle of OOP allows hiding internal implementation?",
			Options: []string{
				"Inheritance",
				"Polymorphism",
				"Encapsulation",
				"Abstraction",
			},
			CorrectAnswer: 2,
			Explanation:   &encapsulationExplanation,
		},
	}
}

// AnalyzeProgress returns a fixed performance review.
func (s *InsightService) AnalyzeProgress(studentID string) models.ProgressAnalysis {
	return models.ProgressAnalysis{
		OverallPerformance: "Good",
		Strengths:          []string{"Problem solving", "Code implementation"},
		AreasForImprovement: []string{
			"Algorithm optimization",
			"Code documentation",
		},
		Recommendations: []string{
			"Focus more on time complexity analysis",
			"Practice writing clean, documented code",
			"Take on more challenging projects",
		},
		NextMilestone:     "Complete advanced algorithms course",
		MotivationMessage: "You're making excellent progress! Keep up the great work.",
	}
}
