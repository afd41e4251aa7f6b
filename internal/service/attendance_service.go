package service

import (
	"context"

	"github.com/amowaisusmani/student-management-backend/internal/model"
	"github.com/amowaisusmani/student-management-backend/internal/repository"
	"github.com/amowaisusmani/student-management-backend/internal/response"
)

// AttendanceService handles attendance business logic.
type AttendanceService struct {
	attendanceRepo  *repository.AttendanceRepository
	defaultPageSize int
}

// NewAttendanceService creates a new AttendanceService.
func NewAttendanceService(attendanceRepo *repository.AttendanceRepository, defaultPageSize int) *AttendanceService {
	return &AttendanceService{attendanceRepo: attendanceRepo, defaultPageSize: defaultPageSize}
}

// GetByID retrieves an attendance mark by ID.
func (s *AttendanceService) GetByID(ctx context.Context, id int64) (*model.Attendance, error) {
	return s.attendanceRepo.GetByID(ctx, id)
}

// List retrieves attendance marks with student identity, paginated and
// narrowed by the given filter.
func (s *AttendanceService) List(ctx context.Context, f model.AttendanceFilter, page, perPage int) ([]model.AttendanceRecord, *response.Pagination, error) {
	limit, offset, page, perPage := normalizePaging(page, perPage, s.defaultPageSize)

	records, total, err := s.attendanceRepo.ListPaginated(ctx, f, limit, offset)
	if err != nil {
		return nil, nil, err
	}
	if records == nil {
		records = []model.AttendanceRecord{}
	}

	return records, buildPagination(page, perPage, total), nil
}

// All retrieves every attendance mark, ordered by primary key.
func (s *AttendanceService) All(ctx context.Context) ([]model.Attendance, error) {
	return s.attendanceRepo.All(ctx)
}

// Create records an attendance mark. Duplicate marks for the same
// student/course/date are allowed by design.
func (s *AttendanceService) Create(ctx context.Context, a *model.Attendance) error {
	return s.attendanceRepo.Create(ctx, a)
}

// Update corrects an attendance mark by ID, returning the affected-row
// count.
func (s *AttendanceService) Update(ctx context.Context, a *model.Attendance) (int64, error) {
	return s.attendanceRepo.Update(ctx, a)
}

// Delete removes an attendance mark by ID, returning the affected-row
// count.
func (s *AttendanceService) Delete(ctx context.Context, id int64) (int64, error) {
	return s.attendanceRepo.Delete(ctx, id)
}
