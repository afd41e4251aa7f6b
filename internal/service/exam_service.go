package service

import (
	"context"

	"github.com/amowaisusmani/student-management-backend/internal/model"
	"github.com/amowaisusmani/student-management-backend/internal/repository"
	"github.com/amowaisusmani/student-management-backend/internal/response"
)

// ExamService handles exam business logic.
type ExamService struct {
	examRepo        *repository.ExamRepository
	defaultPageSize int
}

// NewExamService creates a new ExamService.
func NewExamService(examRepo *repository.ExamRepository, defaultPageSize int) *ExamService {
	return &ExamService{examRepo: examRepo, defaultPageSize: defaultPageSize}
}

// GetByID retrieves an exam by ID.
func (s *ExamService) GetByID(ctx context.Context, id int64) (*model.Exam, error) {
	return s.examRepo.GetByID(ctx, id)
}

// List retrieves exams with pagination and an optional course filter.
func (s *ExamService) List(ctx context.Context, courseID int64, page, perPage int) ([]model.Exam, *response.Pagination, error) {
	limit, offset, page, perPage := normalizePaging(page, perPage, s.defaultPageSize)

	exams, total, err := s.examRepo.ListPaginated(ctx, courseID, limit, offset)
	if err != nil {
		return nil, nil, err
	}
	if exams == nil {
		exams = []model.Exam{}
	}

	return exams, buildPagination(page, perPage, total), nil
}

// All retrieves every exam, ordered by primary key.
func (s *ExamService) All(ctx context.Context) ([]model.Exam, error) {
	return s.examRepo.All(ctx)
}

// Create schedules a new exam.
func (s *ExamService) Create(ctx context.Context, e *model.Exam) error {
	return s.examRepo.Create(ctx, e)
}

// Update reschedules an exam by ID, returning the affected-row count.
func (s *ExamService) Update(ctx context.Context, e *model.Exam) (int64, error) {
	return s.examRepo.Update(ctx, e)
}

// Delete removes an exam by ID, returning the affected-row count.
func (s *ExamService) Delete(ctx context.Context, id int64) (int64, error) {
	return s.examRepo.Delete(ctx, id)
}
