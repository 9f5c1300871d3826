package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/novazone/learnhub-api/internal/models"
	appErrors "github.com/novazone/learnhub-api/pkg/errors"
)

type seedCourseRepository interface {
	Create(ctx context.Context, course *models.Course) error
	DeleteAll(ctx context.Context) error
}

type seedTeacherRepository interface {
	Create(ctx context.Context, profile *models.TeacherProfile) error
	DeleteAll(ctx context.Context) error
}

type seedPostRepository interface {
	Create(ctx context.Context, post *models.CommunityPost) error
	DeleteAll(ctx context.Context) error
}

// SeedService resets courses, teachers and community posts to a fixed sample
// dataset. Users, progress, quizzes and files are left untouched.
type SeedService struct {
	courses  seedCourseRepository
	teachers seedTeacherRepository
	posts    seedPostRepository
	logger   *zap.Logger
}

// NewSeedService constructs a SeedService instance.
func NewSeedService(courses seedCourseRepository, teachers seedTeacherRepository, posts seedPostRepository, logger *zap.Logger) *SeedService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SeedService{courses: courses, teachers: teachers, posts: posts, logger: logger}
}

// Seed wipes and reloads the sample dataset.
func (s *SeedService) Seed(ctx context.Context) error {
	if err := s.courses.DeleteAll(ctx); err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to clear courses")
	}
	for _, course := range sampleCourses() {
		c := course
		if err := s.courses.Create(ctx, &c); err != nil {
			return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to seed courses")
		}
	}

	if err := s.teachers.DeleteAll(ctx); err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to clear teachers")
	}
	for _, teacher := range sampleTeachers() {
		t := teacher
		if err := s.teachers.Create(ctx, &t); err != nil {
			return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to seed teachers")
		}
	}

	if err := s.posts.DeleteAll(ctx); err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to clear posts")
	}
	for _, post := range samplePosts() {
		p := post
		if err := s.posts.Create(ctx, &p); err != nil {
			return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to seed posts")
		}
	}

	s.logger.Info("sample data seeded")
	return nil
}

func sampleCourses() []models.Course {
	now := time.Now().UTC()
	return []models.Course{
		{
			ID:               "course_1",
			Title:            "Introduction to Python Programming",
			Description:      "Learn Python from scratch with hands-on projects",
			TeacherID:        "teacher_1",
			TeacherName:      "Dr. Sarah Chen",
			Subject:          "Programming",
			DifficultyLevel:  models.DifficultyBeginner,
			DurationHours:    40,
			TotalLessons:     20,
			Rating:           4.8,
			EnrolledStudents: []string{"student_1", "student_2"},
			CreatedAt:        now,
		},
		{
			ID:               "course_2",
			Title:            "Data Structures & Algorithms",
			Description:      "Master fundamental CS concepts",
			TeacherID:        "teacher_2",
			TeacherName:      "Prof. Michael Rodriguez",
			Subject:          "Computer Science",
			DifficultyLevel:  models.DifficultyIntermediate,
			DurationHours:    60,
			TotalLessons:     30,
			Rating:           4.7,
			EnrolledStudents: []string{"student_1"},
			CreatedAt:        now,
		},
		{
			ID:               "course_3",
			Title:            "Web Development with React",
			Description:      "Build modern web applications",
			TeacherID:        "teacher_1",
			TeacherName:      "Dr. Sarah Chen",
			Subject:          "Web Development",
			DifficultyLevel:  models.DifficultyIntermediate,
			DurationHours:    50,
			TotalLessons:     25,
			Rating:           4.9,
			EnrolledStudents: []string{"student_2"},
			CreatedAt:        now,
		},
	}
}

func sampleTeachers() []models.TeacherProfile {
	chenBio := "Passionate educator with 12+ years of experience in software engineering and education."
	rodriguezBio := "Computer Science professor specializing in algorithms and theoretical CS."
	chenRate := 75.0
	rodriguezRate := 80.0
	return []models.TeacherProfile{
		{
			ID:              "teacher_1",
			UserID:          "teacher_1",
			FullName:        "Dr. Sarah Chen",
			Email:           "sarah.chen@novazone.edu",
			Subjects:        []string{"Programming", "Web Development", "Data Science"},
			ExperienceYears: 12,
			Rating:          4.9,
			TotalStudents:   150,
			Bio:             &chenBio,
			HourlyRate:      &chenRate,
		},
		{
			ID:              "teacher_2",
			UserID:          "teacher_2",
			FullName:        "Prof. Michael Rodriguez",
			Email:           "michael.rodriguez@novazone.edu",
			Subjects:        []string{"Computer Science", "Algorithms", "Mathematics"},
			ExperienceYears: 15,
			Rating:          4.7,
			TotalStudents:   200,
			Bio:             &rodriguezBio,
			HourlyRate:      &rodriguezRate,
		},
	}
}

func samplePosts() []models.CommunityPost {
	now := time.Now().UTC()
	return []models.CommunityPost{
		{
			ID:         "post_1",
			AuthorID:   "student_1",
			AuthorName: "Alex Johnson",
			Title:      "Best practices for Python coding?",
			Content:    "I'm new to Python and wondering what are some best practices I should follow from the beginning?",
			Category:   models.CategoryQuestion,
			CreatedAt:  now,
			Likes:      5,
			Replies:    []string{},
		},
		{
			ID:         "post_2",
			AuthorID:   "teacher_1",
			AuthorName: "Dr. Sarah Chen",
			Title:      "New React Course Available!",
			Content:    "I'm excited to announce my new React course is now live. Perfect for those wanting to learn modern web development!",
			Category:   models.CategoryAnnouncement,
			CreatedAt:  now,
			Likes:      12,
			Replies:    []string{},
		},
	}
}
