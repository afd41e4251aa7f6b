package repository

import (
	"context"
	"strconv"

	"github.com/amowaisusmani/student-management-backend/internal/model"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ExamRepository handles exam data access.
type ExamRepository struct {
	pool *pgxpool.Pool
}

// NewExamRepository creates a new ExamRepository.
func NewExamRepository(pool *pgxpool.Pool) *ExamRepository {
	return &ExamRepository{pool: pool}
}

// GetByID retrieves an exam by ID.
func (r *ExamRepository) GetByID(ctx context.Context, id int64) (*model.Exam, error) {
	e := &model.Exam{}
	err := r.pool.QueryRow(ctx,
		`SELECT exam_id, course_id, exam_type, exam_date, created_at, updated_at
		 FROM exams WHERE exam_id = $1`, id,
	).Scan(&e.ID, &e.CourseID, &e.ExamType, &e.ExamDate, &e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return e, nil
}

// ListPaginated retrieves exams ordered by primary key with pagination and
// an optional course filter.
func (r *ExamRepository) ListPaginated(ctx context.Context, courseID int64, limit, offset int) ([]model.Exam, int, error) {
	where := ``
	var args []interface{}
	if courseID > 0 {
		where = ` WHERE course_id = $1`
		args = append(args, courseID)
	}

	var total int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM exams`+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	argIdx := len(args) + 1
	query := `SELECT exam_id, course_id, exam_type, exam_date, created_at, updated_at FROM exams` + where +
		` ORDER BY exam_id LIMIT $` + strconv.Itoa(argIdx) + ` OFFSET $` + strconv.Itoa(argIdx+1)
	args = append(args, limit, offset)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var exams []model.Exam
	for rows.Next() {
		var e model.Exam
		if err := rows.Scan(&e.ID, &e.CourseID, &e.ExamType, &e.ExamDate, &e.CreatedAt, &e.UpdatedAt); err != nil {
			return nil, 0, err
		}
		exams = append(exams, e)
	}
	return exams, total, rows.Err()
}

// All retrieves every exam ordered by primary key. Used by CSV export.
func (r *ExamRepository) All(ctx context.Context) ([]model.Exam, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT exam_id, course_id, exam_type, exam_date, created_at, updated_at
		 FROM exams ORDER BY exam_id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var exams []model.Exam
	for rows.Next() {
		var e model.Exam
		if err := rows.Scan(&e.ID, &e.CourseID, &e.ExamType, &e.ExamDate, &e.CreatedAt, &e.UpdatedAt); err != nil {
			return nil, err
		}
		exams = append(exams, e)
	}
	return exams, rows.Err()
}

// Create inserts a new exam and fills in the generated identifier.
func (r *ExamRepository) Create(ctx context.Context, e *model.Exam) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO exams (course_id, exam_type, exam_date)
		 VALUES ($1, $2, $3)
		 RETURNING exam_id, created_at, updated_at`,
		e.CourseID, e.ExamType, e.ExamDate,
	).Scan(&e.ID, &e.CreatedAt, &e.UpdatedAt)
}

// Update modifies an exam by primary key and returns the affected-row count.
func (r *ExamRepository) Update(ctx context.Context, e *model.Exam) (int64, error) {
	tag, err := r.pool.Exec(ctx,
		`UPDATE exams SET course_id = $1, exam_type = $2, exam_date = $3, updated_at = CURRENT_TIMESTAMP
		 WHERE exam_id = $4`,
		e.CourseID, e.ExamType, e.ExamDate, e.ID,
	)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

// Delete removes an exam by primary key and returns the affected-row count.
// Results referencing the exam are left in place (no cascade).
func (r *ExamRepository) Delete(ctx context.Context, id int64) (int64, error) {
	tag, err := r.pool.Exec(ctx, `DELETE FROM exams WHERE exam_id = $1`, id)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}
