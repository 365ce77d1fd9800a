package services

import (
	"context"

	"github.com/oguzk/coursereg/internal/app/models"
)

// CourseService defines the interface for course catalog reads
type CourseService interface {
	GetAllCourses(ctx context.Context) ([]models.Course, error)
}

// courseServiceImpl implements the CourseService interface
type courseServiceImpl struct {
	courseRepo courseStore
}

// NewCourseService creates a new course service instance
func NewCourseService(courseRepo courseStore) CourseService {
	return &courseServiceImpl{
		courseRepo: courseRepo,
	}
}

func (s *courseServiceImpl) GetAllCourses(ctx context.Context) ([]models.Course, error) {
	return s.courseRepo.GetAllCourses(ctx)
}
