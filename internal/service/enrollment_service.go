package service

import (
	"context"

	"github.com/amowaisusmani/student-management-backend/internal/model"
	"github.com/amowaisusmani/student-management-backend/internal/repository"
	"github.com/amowaisusmani/student-management-backend/internal/response"
)

// EnrollmentService handles enrollment business logic.
type EnrollmentService struct {
	enrollmentRepo  *repository.EnrollmentRepository
	defaultPageSize int
}

// NewEnrollmentService creates a new EnrollmentService.
func NewEnrollmentService(enrollmentRepo *repository.EnrollmentRepository, defaultPageSize int) *EnrollmentService {
	return &EnrollmentService{enrollmentRepo: enrollmentRepo, defaultPageSize: defaultPageSize}
}

// List retrieves enrollments with student identity, paginated and
// optionally filtered by course and/or student.
func (s *EnrollmentService) List(ctx context.Context, courseID, studentID int64, page, perPage int) ([]model.EnrollmentRecord, *response.Pagination, error) {
	limit, offset, page, perPage := normalizePaging(page, perPage, s.defaultPageSize)

	records, total, err := s.enrollmentRepo.ListPaginated(ctx, courseID, studentID, limit, offset)
	if err != nil {
		return nil, nil, err
	}
	if records == nil {
		records = []model.EnrollmentRecord{}
	}

	return records, buildPagination(page, perPage, total), nil
}

// All retrieves every enrollment, ordered by primary key.
func (s *EnrollmentService) All(ctx context.Context) ([]model.Enrollment, error) {
	return s.enrollmentRepo.All(ctx)
}

// Create enrolls a student in a course. The pair must be unique; whether
// either side exists is not checked (references are advisory).
func (s *EnrollmentService) Create(ctx context.Context, e *model.Enrollment) error {
	return s.enrollmentRepo.Create(ctx, e)
}

// Delete removes an enrollment by ID, returning the affected-row count.
func (s *EnrollmentService) Delete(ctx context.Context, id int64) (int64, error) {
	return s.enrollmentRepo.Delete(ctx, id)
}
