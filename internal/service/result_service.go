package service

import (
	"context"

	"github.com/amowaisusmani/student-management-backend/internal/model"
	"github.com/amowaisusmani/student-management-backend/internal/repository"
	"github.com/amowaisusmani/student-management-backend/internal/response"
)

// ResultService handles exam result business logic.
type ResultService struct {
	resultRepo      *repository.ResultRepository
	defaultPageSize int
}

// NewResultService creates a new ResultService.
func NewResultService(resultRepo *repository.ResultRepository, defaultPageSize int) *ResultService {
	return &ResultService{resultRepo: resultRepo, defaultPageSize: defaultPageSize}
}

// GetByID retrieves a result by ID.
func (s *ResultService) GetByID(ctx context.Context, id int64) (*model.Result, error) {
	return s.resultRepo.GetByID(ctx, id)
}

// List retrieves results with joined student/exam detail, paginated and
// optionally filtered by exam and/or student.
func (s *ResultService) List(ctx context.Context, examID, studentID int64, page, perPage int) ([]model.ResultRecord, *response.Pagination, error) {
	limit, offset, page, perPage := normalizePaging(page, perPage, s.defaultPageSize)

	records, total, err := s.resultRepo.ListPaginated(ctx, examID, studentID, limit, offset)
	if err != nil {
		return nil, nil, err
	}
	if records == nil {
		records = []model.ResultRecord{}
	}

	return records, buildPagination(page, perPage, total), nil
}

// All retrieves every result, ordered by primary key.
func (s *ResultService) All(ctx context.Context) ([]model.Result, error) {
	return s.resultRepo.All(ctx)
}

// Create records marks for a student in an exam.
func (s *ResultService) Create(ctx context.Context, res *model.Result) error {
	return s.resultRepo.Create(ctx, res)
}

// Update corrects a result by ID, returning the affected-row count.
func (s *ResultService) Update(ctx context.Context, res *model.Result) (int64, error) {
	return s.resultRepo.Update(ctx, res)
}

// Delete removes a result by ID, returning the affected-row count.
func (s *ResultService) Delete(ctx context.Context, id int64) (int64, error) {
	return s.resultRepo.Delete(ctx, id)
}
