package service

import (
	"context"

	"github.com/amowaisusmani/student-management-backend/internal/model"
	"github.com/amowaisusmani/student-management-backend/internal/repository"
	"github.com/amowaisusmani/student-management-backend/internal/response"
)

// StudentService handles student business logic.
type StudentService struct {
	studentRepo     *repository.StudentRepository
	defaultPageSize int
}

// NewStudentService creates a new StudentService.
func NewStudentService(studentRepo *repository.StudentRepository, defaultPageSize int) *StudentService {
	return &StudentService{studentRepo: studentRepo, defaultPageSize: defaultPageSize}
}

// GetByID retrieves a student by ID.
func (s *StudentService) GetByID(ctx context.Context, id int64) (*model.Student, error) {
	return s.studentRepo.GetByID(ctx, id)
}

// List retrieves students with pagination and an optional search term.
func (s *StudentService) List(ctx context.Context, q string, page, perPage int) ([]model.Student, *response.Pagination, error) {
	limit, offset, page, perPage := normalizePaging(page, perPage, s.defaultPageSize)

	students, total, err := s.studentRepo.ListPaginated(ctx, q, limit, offset)
	if err != nil {
		return nil, nil, err
	}
	if students == nil {
		students = []model.Student{}
	}

	return students, buildPagination(page, perPage, total), nil
}

// All retrieves every student, ordered by primary key.
func (s *StudentService) All(ctx context.Context) ([]model.Student, error) {
	return s.studentRepo.All(ctx)
}

// Create registers a new student. Input shape is validated at the boundary
// before this call; uniqueness surfaces as a duplicate sentinel.
func (s *StudentService) Create(ctx context.Context, student *model.Student) error {
	return s.studentRepo.Create(ctx, student)
}

// Update modifies a student by ID, returning the affected-row count.
// A zero count means the id did not exist.
func (s *StudentService) Update(ctx context.Context, student *model.Student) (int64, error) {
	return s.studentRepo.Update(ctx, student)
}

// Delete removes a student by ID, returning the affected-row count.
// Related enrollment/attendance/result rows are intentionally left behind.
func (s *StudentService) Delete(ctx context.Context, id int64) (int64, error) {
	return s.studentRepo.Delete(ctx, id)
}
