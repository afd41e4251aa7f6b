package service

import (
	"context"

	"github.com/amowaisusmani/student-management-backend/internal/model"
	"github.com/amowaisusmani/student-management-backend/internal/repository"
	"github.com/amowaisusmani/student-management-backend/internal/response"
)

// CourseService handles course business logic.
type CourseService struct {
	courseRepo      *repository.CourseRepository
	defaultPageSize int
}

// NewCourseService creates a new CourseService.
func NewCourseService(courseRepo *repository.CourseRepository, defaultPageSize int) *CourseService {
	return &CourseService{courseRepo: courseRepo, defaultPageSize: defaultPageSize}
}

// GetByID retrieves a course by ID.
func (s *CourseService) GetByID(ctx context.Context, id int64) (*model.Course, error) {
	return s.courseRepo.GetByID(ctx, id)
}

// List retrieves courses with pagination.
func (s *CourseService) List(ctx context.Context, page, perPage int) ([]model.Course, *response.Pagination, error) {
	limit, offset, page, perPage := normalizePaging(page, perPage, s.defaultPageSize)

	courses, total, err := s.courseRepo.ListPaginated(ctx, limit, offset)
	if err != nil {
		return nil, nil, err
	}
	if courses == nil {
		courses = []model.Course{}
	}

	return courses, buildPagination(page, perPage, total), nil
}

// All retrieves every course, ordered by primary key.
func (s *CourseService) All(ctx context.Context) ([]model.Course, error) {
	return s.courseRepo.All(ctx)
}

// Create adds a new course.
func (s *CourseService) Create(ctx context.Context, course *model.Course) error {
	return s.courseRepo.Create(ctx, course)
}

// Update renames a course by ID, returning the affected-row count.
func (s *CourseService) Update(ctx context.Context, course *model.Course) (int64, error) {
	return s.courseRepo.Update(ctx, course)
}

// Delete removes a course by ID, returning the affected-row count.
func (s *CourseService) Delete(ctx context.Context, id int64) (int64, error) {
	return s.courseRepo.Delete(ctx, id)
}
